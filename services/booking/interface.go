package booking

import (
	"context"

	"go.uber.org/zap"

	repo "guidely/database/repository/booking"
	"guidely/services/convo"
)

// Recorder persists booking state derived from conversation turns. All
// operations are best-effort: persistence must never fail a user-visible
// turn, so errors are logged and swallowed.
type Recorder interface {
	// RecordTurn snapshots the accumulated conversation state (joined with
	// the current turn's fields) into the booking summary row.
	RecordTurn(ctx context.Context, sessionID string, state *convo.State, turnParams map[string]interface{})

	// RecordSlot appends one extracted slot value to the interaction trail.
	RecordSlot(ctx context.Context, sessionID, intent, field string, value interface{})
}

// DefaultRecorder writes through the booking repository.
type DefaultRecorder struct {
	Repo   repo.Repository
	Logger *zap.Logger
}

func NewDefaultRecorder(repository repo.Repository, logger *zap.Logger) *DefaultRecorder {
	return &DefaultRecorder{Repo: repository, Logger: logger}
}
