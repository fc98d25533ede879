package models

import "time"

// Guide is a row of the read-only guide directory. Guides are matched by
// substring of their spoken languages against a visitor's accumulated
// language preferences.
type Guide struct {
	GuideID        int    `json:"guideId"`
	LanguageSpoken string `json:"languageSpoken"`
}

// BookingRecord is the single booking-summary row kept per conversation.
// Slots fill in across turns; the row is upserted on every turn.
type BookingRecord struct {
	SessionID   string  `json:"sessionId"`
	UserID      string  `json:"userId"`
	GuideID     *int    `json:"guideId,omitempty"`
	Name        *string `json:"name,omitempty"`
	Email       *string `json:"email,omitempty"`
	Language    string  `json:"language"`
	BookingDate *string `json:"bookingDate,omitempty"` // ISO calendar date
	Duration    *string `json:"duration,omitempty"`    // comma-joined amounts
}

// InteractionRecord is one row of the append-only interaction audit trail.
// Rows are written best-effort on every turn and never updated or deleted.
type InteractionRecord struct {
	SessionID string    `json:"sessionId"`
	Intent    string    `json:"intent"`
	Field     string    `json:"field"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"createdAt"`
}
