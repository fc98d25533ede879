package models

import (
	"fmt"
	"strconv"
)

// Parameter values arrive from the dialog platform in one of three shapes
// depending on upstream extraction confidence: a scalar, an ordered list of
// values, or a nested object. The helpers below resolve each ambiguous field
// to one canonical shape at the boundary so the dialog logic never branches
// on types.

// Duration is one extracted duration entity, e.g. {"amount": 5, "unit": "days"}.
type Duration struct {
	Amount int
	Unit   string
}

// FirstString resolves a scalar-or-list parameter to a single string. Lists
// resolve to their first element; anything else is rendered as text.
func FirstString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []interface{}:
		if len(val) == 0 {
			return ""
		}
		return FirstString(val[0])
	default:
		return fmt.Sprintf("%v", val)
	}
}

// PersonName resolves a person parameter, which may be a plain string, a
// list of candidates, or an object with a "name" field. List unwrapping is
// applied before object-field unwrapping.
func PersonName(v interface{}) string {
	if list, ok := v.([]interface{}); ok {
		if len(list) == 0 {
			return ""
		}
		v = list[0]
	}
	if obj, ok := v.(map[string]interface{}); ok {
		if name, ok := obj["name"]; ok {
			return FirstString(name)
		}
		return ""
	}
	return FirstString(v)
}

// Durations resolves a duration parameter into its extracted entities.
// Returns nil when the value is not the expected list-of-objects shape.
func Durations(v interface{}) []Duration {
	list, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]Duration, 0, len(list))
	for _, item := range list {
		obj, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		out = append(out, Duration{
			Amount: coerceInt(obj["amount"]),
			Unit:   FirstString(obj["unit"]),
		})
	}
	return out
}

// Stringify renders an arbitrary parameter value for the interaction log.
func Stringify(v interface{}) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

func coerceInt(v interface{}) int {
	switch val := v.(type) {
	case nil:
		return 0
	case float64:
		return int(val)
	case int:
		return val
	case string:
		n, err := strconv.Atoi(val)
		if err != nil {
			f, ferr := strconv.ParseFloat(val, 64)
			if ferr != nil {
				return 0
			}
			return int(f)
		}
		return n
	default:
		return 0
	}
}
