package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstString(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected string
	}{
		{name: "nil", input: nil, expected: ""},
		{name: "scalar", input: "English", expected: "English"},
		{name: "list takes first", input: []interface{}{"English", "Chinese"}, expected: "English"},
		{name: "empty list", input: []interface{}{}, expected: ""},
		{name: "nested list", input: []interface{}{[]interface{}{"English"}}, expected: "English"},
		{name: "number renders as text", input: float64(5), expected: "5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FirstString(tt.input))
		})
	}
}

func TestPersonName(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected string
	}{
		{name: "scalar", input: "Ketut", expected: "Ketut"},
		{name: "list unwraps first", input: []interface{}{"Ketut", "Wayan"}, expected: "Ketut"},
		{name: "object name field", input: map[string]interface{}{"name": "Ketut"}, expected: "Ketut"},
		{
			name:     "list before object unwrap",
			input:    []interface{}{map[string]interface{}{"name": "Ketut"}, map[string]interface{}{"name": "Wayan"}},
			expected: "Ketut",
		},
		{name: "object without name field", input: map[string]interface{}{"given": "Ketut"}, expected: ""},
		{name: "nil", input: nil, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PersonName(tt.input))
		})
	}
}

func TestDurations(t *testing.T) {
	t.Run("list of entities", func(t *testing.T) {
		out := Durations([]interface{}{
			map[string]interface{}{"amount": float64(5), "unit": "days"},
			map[string]interface{}{"amount": "2", "unit": "weeks"},
		})
		require.Len(t, out, 2)
		assert.Equal(t, Duration{Amount: 5, Unit: "days"}, out[0])
		assert.Equal(t, Duration{Amount: 2, Unit: "weeks"}, out[1])
	})

	t.Run("defaults for missing fields", func(t *testing.T) {
		out := Durations([]interface{}{map[string]interface{}{}})
		require.Len(t, out, 1)
		assert.Equal(t, Duration{Amount: 0, Unit: ""}, out[0])
	})

	t.Run("non-list shapes", func(t *testing.T) {
		assert.Nil(t, Durations("5 days"))
		assert.Nil(t, Durations(nil))
	})

	t.Run("non-object entries are skipped", func(t *testing.T) {
		out := Durations([]interface{}{"junk", map[string]interface{}{"amount": float64(1), "unit": "day"}})
		require.Len(t, out, 1)
		assert.Equal(t, Duration{Amount: 1, Unit: "day"}, out[0])
	})
}

func TestStringify(t *testing.T) {
	assert.Equal(t, "", Stringify(nil))
	assert.Equal(t, "abc", Stringify("abc"))
	assert.Equal(t, "[a b]", Stringify([]interface{}{"a", "b"}))
}
