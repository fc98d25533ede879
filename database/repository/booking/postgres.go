package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"guidely/models"
)

const queryTimeout = 5 * time.Second

// PostgresBookingRepo implements Repository over a Postgres pool.
type PostgresBookingRepo struct {
	db *sql.DB
}

// NewPostgresBookingRepo creates the Postgres-backed booking repository.
func NewPostgresBookingRepo(db *sql.DB) *PostgresBookingRepo {
	return &PostgresBookingRepo{db: db}
}

func (r *PostgresBookingRepo) GuideByLanguage(ctx context.Context, language string) (*models.Guide, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var guide models.Guide
	err := r.db.QueryRowContext(ctx,
		`SELECT guide_id, language_spoken FROM guide WHERE language_spoken LIKE '%' || $1 || '%' LIMIT 1`,
		language,
	).Scan(&guide.GuideID, &guide.LanguageSpoken)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("guide lookup failed: %w", err)
	}
	return &guide, nil
}

func (r *PostgresBookingRepo) UpsertBooking(ctx context.Context, record models.BookingRecord) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO booking (session_id, user_id, guide_id, name, email, language, booking_date, duration, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, CURRENT_TIMESTAMP)
		 ON CONFLICT (session_id) DO UPDATE SET
			user_id      = EXCLUDED.user_id,
			guide_id     = EXCLUDED.guide_id,
			name         = COALESCE(EXCLUDED.name, booking.name),
			email        = COALESCE(EXCLUDED.email, booking.email),
			language     = EXCLUDED.language,
			booking_date = COALESCE(EXCLUDED.booking_date, booking.booking_date),
			duration     = COALESCE(EXCLUDED.duration, booking.duration),
			updated_at   = CURRENT_TIMESTAMP`,
		record.SessionID,
		record.UserID,
		record.GuideID,
		record.Name,
		record.Email,
		record.Language,
		record.BookingDate,
		record.Duration,
	)
	if err != nil {
		return fmt.Errorf("booking upsert failed: %w", err)
	}
	return nil
}

func (r *PostgresBookingRepo) AppendInteraction(ctx context.Context, record models.InteractionRecord) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO interaction (session_id, intent, field, value) VALUES ($1, $2, $3, $4)`,
		record.SessionID,
		record.Intent,
		record.Field,
		record.Value,
	)
	if err != nil {
		return fmt.Errorf("interaction insert failed: %w", err)
	}
	return nil
}

func (r *PostgresBookingRepo) HealthCheck(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *PostgresBookingRepo) Close() error {
	return r.db.Close()
}
