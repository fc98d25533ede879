package dialog

import (
	"context"

	"go.uber.org/zap"

	"guidely/models"
)

// fallbackReply is returned verbatim for unrecognized intents.
const fallbackReply = "I'm not sure how to respond to that."

// Respond dispatches one turn to its response generator. A changeintention
// parameter takes precedence over the intent name; any changeintention value
// other than "date" or "guide" falls through to intent-name dispatch.
func (s *DefaultDialogService) Respond(ctx context.Context, sessionID, intentName string, params map[string]interface{}) string {
	if raw, ok := params[paramChangeIntention]; ok {
		switch models.FirstString(raw) {
		case "date":
			date := models.FirstString(params["date"])
			s.record(ctx, sessionID, intentName, "date", date)
			return ChangeBookingDate(date)
		case "guide":
			language := models.FirstString(params["languagePreference"])
			s.record(ctx, sessionID, intentName, "languagePreference", language)
			return ChangeGuideLanguage(language)
		}
		s.Logger.Debug("unrecognized changeintention value, dispatching on intent name",
			zap.String("session", sessionID),
			zap.String("changeintention", models.FirstString(raw)))
	}

	switch intentName {
	case IntentLanguagePreference:
		preferred := params["preferredLanguage"]
		s.record(ctx, sessionID, intentName, "preferredLanguage", preferred)
		return SetLanguagePreference(preferred)

	case IntentTourGuideAvailability:
		dateText := models.FirstString(params["date"])
		if span, found := s.Extractor.ExtractDate(ctx, dateText); found {
			dateText = span
		}
		s.record(ctx, sessionID, intentName, "date", dateText)
		return CheckTourGuideAvailability(dateText)

	case IntentGuideDuration:
		duration := params["duration"]
		s.record(ctx, sessionID, intentName, "duration", duration)
		return GetGuideDuration(duration)

	case IntentSendReceipt:
		email := models.FirstString(params["email"])
		person := params["person"]
		s.record(ctx, sessionID, intentName, "email", email)
		s.record(ctx, sessionID, intentName, "person", person)
		return SendReceipt(email, person)

	case IntentUserConfirmation:
		return UserConfirmation()

	case IntentDefaultWelcome:
		return DefaultWelcome()

	default:
		return fallbackReply
	}
}

func (s *DefaultDialogService) record(ctx context.Context, sessionID, intent, field string, value interface{}) {
	if s.Recorder == nil {
		return
	}
	s.Recorder.RecordSlot(ctx, sessionID, intent, field, value)
}
