package booking

import (
	"context"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"guidely/models"
	"guidely/services/convo"
)

func (r *DefaultRecorder) RecordTurn(ctx context.Context, sessionID string, state *convo.State, turnParams map[string]interface{}) {
	language := strings.Join(languageList(state.Params["preferredLanguage"]), ", ")

	var guideID *int
	if language != "" {
		guide, err := r.Repo.GuideByLanguage(ctx, language)
		if err != nil {
			r.Logger.Warn("guide resolution failed",
				zap.String("session", sessionID), zap.Error(err))
		} else if guide != nil {
			guideID = &guide.GuideID
		}
	}

	record := models.BookingRecord{
		SessionID:   sessionID,
		UserID:      state.UserID,
		GuideID:     guideID,
		Name:        optional(models.PersonName(turnParams["person"])),
		Email:       optional(models.FirstString(state.Params["email"])),
		Language:    language,
		BookingDate: isoBookingDate(state.Params["date"]),
		Duration:    optional(strings.Join(durationAmounts(state.Params["duration"]), ", ")),
	}

	if err := r.Repo.UpsertBooking(ctx, record); err != nil {
		r.Logger.Warn("booking upsert failed",
			zap.String("session", sessionID), zap.Error(err))
	}
}

func (r *DefaultRecorder) RecordSlot(ctx context.Context, sessionID, intent, field string, value interface{}) {
	record := models.InteractionRecord{
		SessionID: sessionID,
		Intent:    intent,
		Field:     field,
		Value:     models.Stringify(value),
		CreatedAt: time.Now(),
	}
	if err := r.Repo.AppendInteraction(ctx, record); err != nil {
		r.Logger.Warn("interaction append failed",
			zap.String("session", sessionID),
			zap.String("intent", intent),
			zap.Error(err))
	}
}

// languageList flattens an accumulated preferredLanguage value, which may be
// a scalar after one turn or a list after several, into its string entries.
func languageList(v interface{}) []string {
	switch val := v.(type) {
	case nil:
		return nil
	case []interface{}:
		out := make([]string, 0, len(val))
		for _, item := range val {
			if s := models.FirstString(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		if s := models.FirstString(val); s != "" {
			return []string{s}
		}
		return nil
	}
}

// durationAmounts collects the amount of every accumulated duration entity.
// Accumulation can nest turn lists inside the stored list, so one level of
// lists is walked through.
func durationAmounts(v interface{}) []string {
	list, ok := v.([]interface{})
	if !ok {
		return nil
	}
	var amounts []string
	for _, item := range list {
		switch entry := item.(type) {
		case map[string]interface{}:
			for _, d := range models.Durations([]interface{}{entry}) {
				amounts = append(amounts, strconv.Itoa(d.Amount))
			}
		case []interface{}:
			for _, d := range models.Durations(entry) {
				amounts = append(amounts, strconv.Itoa(d.Amount))
			}
		}
	}
	return amounts
}

// isoBookingDate normalizes the accumulated date value to an ISO calendar
// date, or absence when it doesn't parse.
func isoBookingDate(v interface{}) *string {
	text := models.FirstString(v)
	if text == "" {
		return nil
	}
	for _, layout := range []string{"2006-01-02T15:04:05Z07:00", "2006-01-02T15:04:05", "2006-01-02"} {
		if parsed, err := time.Parse(layout, text); err == nil {
			date := parsed.Format("2006-01-02")
			return &date
		}
	}
	return nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
