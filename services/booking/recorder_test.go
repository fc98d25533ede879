package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"guidely/models"
	"guidely/services/convo"
)

type fakeRepo struct {
	guide         *models.Guide
	guideErr      error
	upsertErr     error
	appendErr     error
	languageQuery string
	bookings      []models.BookingRecord
	interactions  []models.InteractionRecord
}

func (f *fakeRepo) GuideByLanguage(ctx context.Context, language string) (*models.Guide, error) {
	f.languageQuery = language
	return f.guide, f.guideErr
}

func (f *fakeRepo) UpsertBooking(ctx context.Context, record models.BookingRecord) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.bookings = append(f.bookings, record)
	return nil
}

func (f *fakeRepo) AppendInteraction(ctx context.Context, record models.InteractionRecord) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.interactions = append(f.interactions, record)
	return nil
}

func (f *fakeRepo) HealthCheck(ctx context.Context) error { return nil }
func (f *fakeRepo) Close() error                          { return nil }

func accumulatedState(turns ...map[string]interface{}) *convo.State {
	state := convo.NewState()
	for _, turn := range turns {
		state.Merge(turn)
	}
	return state
}

func TestRecordTurnSnapshotsAccumulatedState(t *testing.T) {
	repo := &fakeRepo{guide: &models.Guide{GuideID: 7, LanguageSpoken: "English, Bahasa"}}
	recorder := NewDefaultRecorder(repo, zap.NewNop())

	state := accumulatedState(
		map[string]interface{}{"preferredLanguage": "English"},
		map[string]interface{}{"date": "2063-05-04T10:00:00+08:00"},
		map[string]interface{}{"duration": []interface{}{map[string]interface{}{"amount": float64(5), "unit": "days"}}},
		map[string]interface{}{"email": "ketut@example.com"},
	)
	turn := map[string]interface{}{"person": map[string]interface{}{"name": "Ketut"}}

	recorder.RecordTurn(context.Background(), "sess-1", state, turn)

	require.Len(t, repo.bookings, 1)
	record := repo.bookings[0]
	assert.Equal(t, "sess-1", record.SessionID)
	assert.Equal(t, state.UserID, record.UserID)
	require.NotNil(t, record.GuideID)
	assert.Equal(t, 7, *record.GuideID)
	require.NotNil(t, record.Name)
	assert.Equal(t, "Ketut", *record.Name)
	require.NotNil(t, record.Email)
	assert.Equal(t, "ketut@example.com", *record.Email)
	assert.Equal(t, "English", record.Language)
	require.NotNil(t, record.BookingDate)
	assert.Equal(t, "2063-05-04", *record.BookingDate)
	require.NotNil(t, record.Duration)
	assert.Equal(t, "5", *record.Duration)
}

func TestRecordTurnJoinsRecurringLanguages(t *testing.T) {
	repo := &fakeRepo{}
	recorder := NewDefaultRecorder(repo, zap.NewNop())

	state := accumulatedState(
		map[string]interface{}{"preferredLanguage": "English"},
		map[string]interface{}{"preferredLanguage": "Chinese"},
	)

	recorder.RecordTurn(context.Background(), "sess-1", state, nil)

	assert.Equal(t, "English, Chinese", repo.languageQuery)
	require.Len(t, repo.bookings, 1)
	assert.Equal(t, "English, Chinese", repo.bookings[0].Language)
	assert.Nil(t, repo.bookings[0].GuideID)
}

func TestRecordTurnJoinsRecurringDurations(t *testing.T) {
	repo := &fakeRepo{}
	recorder := NewDefaultRecorder(repo, zap.NewNop())

	state := accumulatedState(
		map[string]interface{}{"duration": []interface{}{map[string]interface{}{"amount": float64(5), "unit": "days"}}},
		map[string]interface{}{"duration": []interface{}{map[string]interface{}{"amount": float64(2), "unit": "weeks"}}},
	)

	recorder.RecordTurn(context.Background(), "sess-1", state, nil)

	require.Len(t, repo.bookings, 1)
	require.NotNil(t, repo.bookings[0].Duration)
	assert.Equal(t, "5, 2", *repo.bookings[0].Duration)
}

func TestRecordTurnEmptyStateYieldsSparseRow(t *testing.T) {
	repo := &fakeRepo{}
	recorder := NewDefaultRecorder(repo, zap.NewNop())

	recorder.RecordTurn(context.Background(), "sess-1", convo.NewState(), nil)

	require.Len(t, repo.bookings, 1)
	record := repo.bookings[0]
	assert.Equal(t, "", repo.languageQuery, "guide lookup must be skipped without a language")
	assert.Nil(t, record.GuideID)
	assert.Nil(t, record.Name)
	assert.Nil(t, record.Email)
	assert.Nil(t, record.BookingDate)
	assert.Nil(t, record.Duration)
}

func TestRecordTurnUnparseableDateOmitted(t *testing.T) {
	repo := &fakeRepo{}
	recorder := NewDefaultRecorder(repo, zap.NewNop())

	state := accumulatedState(map[string]interface{}{"date": "next friday"})

	recorder.RecordTurn(context.Background(), "sess-1", state, nil)

	require.Len(t, repo.bookings, 1)
	assert.Nil(t, repo.bookings[0].BookingDate)
}

func TestRecordTurnSwallowsRepositoryErrors(t *testing.T) {
	repo := &fakeRepo{
		guideErr:  errors.New("guide table offline"),
		upsertErr: errors.New("booking table offline"),
	}
	recorder := NewDefaultRecorder(repo, zap.NewNop())

	state := accumulatedState(map[string]interface{}{"preferredLanguage": "English"})

	assert.NotPanics(t, func() {
		recorder.RecordTurn(context.Background(), "sess-1", state, nil)
	})
}

func TestRecordSlot(t *testing.T) {
	repo := &fakeRepo{}
	recorder := NewDefaultRecorder(repo, zap.NewNop())

	recorder.RecordSlot(context.Background(), "sess-1", "LanguagePreference", "preferredLanguage", "Bahasa")

	require.Len(t, repo.interactions, 1)
	record := repo.interactions[0]
	assert.Equal(t, "sess-1", record.SessionID)
	assert.Equal(t, "LanguagePreference", record.Intent)
	assert.Equal(t, "preferredLanguage", record.Field)
	assert.Equal(t, "Bahasa", record.Value)
	assert.False(t, record.CreatedAt.IsZero())
}

func TestRecordSlotSwallowsErrors(t *testing.T) {
	repo := &fakeRepo{appendErr: errors.New("interaction table offline")}
	recorder := NewDefaultRecorder(repo, zap.NewNop())

	assert.NotPanics(t, func() {
		recorder.RecordSlot(context.Background(), "sess-1", "SendReceipt", "email", "a@b.c")
	})
}
