package convo

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// State is the accumulated parameter set of one conversation plus its
// stable identity. The identity is assigned on the first turn and reused
// for every persistence write of the conversation.
type State struct {
	UserID    string                 `json:"userId"`
	Params    map[string]interface{} `json:"params"`
	CreatedAt time.Time              `json:"createdAt"`
	UpdatedAt time.Time              `json:"updatedAt"`
}

// NewState creates an empty conversation state with a fresh identity.
func NewState() *State {
	now := time.Now()
	return &State{
		UserID:    uuid.New().String(),
		Params:    make(map[string]interface{}),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Merge folds one turn's parameters into the accumulated set. A key seen for
// the first time is inserted as-is. A recurring key grows into an ordered
// list reflecting turn arrival order: a scalar or object becomes a
// two-element list [old, new], an existing list gets the new value appended.
// Keys are never removed within a conversation.
func (s *State) Merge(turnParams map[string]interface{}) {
	if s.Params == nil {
		s.Params = make(map[string]interface{})
	}
	for key, value := range turnParams {
		existing, seen := s.Params[key]
		if !seen {
			s.Params[key] = value
			continue
		}
		if list, ok := existing.([]interface{}); ok {
			s.Params[key] = append(list, value)
		} else {
			s.Params[key] = []interface{}{existing, value}
		}
	}
	s.UpdatedAt = time.Now()
}

// Clone returns a deep copy of the state. Stores hand out clones so a turn
// can keep reading its snapshot after the session lock is released while the
// next turn merges into the stored copy.
func (s *State) Clone() *State {
	if s == nil {
		return nil
	}
	copied := *s
	copied.Params = cloneParams(s.Params)
	return &copied
}

func cloneParams(params map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(params))
	for key, value := range params {
		out[key] = cloneValue(value)
	}
	return out
}

func cloneValue(value interface{}) interface{} {
	switch v := value.(type) {
	case map[string]interface{}:
		return cloneParams(v)
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, item := range v {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}

// Store keeps conversation states keyed by the dialog platform's session
// identifier, with bounded lifetime so idle conversations expire.
type Store interface {
	// Get returns the state for a session, or nil when none exists.
	Get(ctx context.Context, sessionID string) (*State, error)
	Save(ctx context.Context, sessionID string, state *State, ttl time.Duration) error
	Delete(ctx context.Context, sessionID string) error

	Close() error
	HealthCheck(ctx context.Context) error
}
