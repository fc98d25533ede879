package booking

import (
	"context"

	"guidely/models"
)

// Repository is the persistence sink for booking state. Inserts into the
// interaction trail are append-only; the booking summary is one upserted row
// per conversation.
type Repository interface {
	// GuideByLanguage resolves a guide whose spoken languages contain the
	// given text. Returns (nil, nil) when no guide matches.
	GuideByLanguage(ctx context.Context, language string) (*models.Guide, error)

	UpsertBooking(ctx context.Context, record models.BookingRecord) error
	AppendInteraction(ctx context.Context, record models.InteractionRecord) error

	HealthCheck(ctx context.Context) error
	Close() error
}
