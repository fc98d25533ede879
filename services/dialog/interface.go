package dialog

import (
	"context"

	"go.uber.org/zap"

	"guidely/services/nlp"
)

// Intent display names configured on the dialog platform's agent.
const (
	IntentLanguagePreference    = "LanguagePreference"
	IntentTourGuideAvailability = "TourGuideAvailability"
	IntentGuideDuration         = "GuideDuration"
	IntentSendReceipt           = "SendReceipt"
	IntentUserConfirmation      = "UserConfirmation"
	IntentDefaultWelcome        = "Default Welcome Intent"
)

// paramChangeIntention marks a mid-flow correction ("change the date",
// "change the guide") and takes precedence over the matched intent name.
const paramChangeIntention = "changeintention"

// Service derives the fulfillment reply for one turn.
type Service interface {
	Respond(ctx context.Context, sessionID, intentName string, params map[string]interface{}) string
}

// SlotRecorder appends extracted slot values to the interaction audit trail.
// Implementations must be best-effort: failures are logged, never returned.
type SlotRecorder interface {
	RecordSlot(ctx context.Context, sessionID, intent, field string, value interface{})
}

// DefaultDialogService routes intents to their response generators.
type DefaultDialogService struct {
	Extractor nlp.DateExtractor
	Recorder  SlotRecorder
	Logger    *zap.Logger
}

func NewDefaultDialogService(extractor nlp.DateExtractor, recorder SlotRecorder, logger *zap.Logger) *DefaultDialogService {
	return &DefaultDialogService{
		Extractor: extractor,
		Recorder:  recorder,
		Logger:    logger,
	}
}
