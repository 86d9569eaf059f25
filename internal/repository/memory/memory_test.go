package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/safety_alert_system/internal/alert"
	"github.com/shenikar/safety_alert_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationStore_OrderingAndWindows(t *testing.T) {
	ctx := context.Background()
	s := NewLocationStore()
	base := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

	for _, offset := range []time.Duration{0, 2 * time.Minute, time.Minute, -48 * time.Hour} {
		require.NoError(t, s.Append(ctx, &models.LocationSample{UserID: "u1", Timestamp: base.Add(offset)}))
	}
	require.NoError(t, s.Append(ctx, &models.LocationSample{UserID: "u2", Timestamp: base}))

	recent, err := s.Recent(ctx, "u1", 3)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, base.Add(2*time.Minute), recent[0].Timestamp)
	assert.Equal(t, base.Add(time.Minute), recent[1].Timestamp)
	assert.Equal(t, base, recent[2].Timestamp)

	since, err := s.Since(ctx, "u1", base.Add(-time.Hour))
	require.NoError(t, err)
	assert.Len(t, since, 3)

	last, err := s.Last(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, base.Add(2*time.Minute), last.Timestamp)

	_, err = s.Last(ctx, "nobody")
	assert.True(t, models.IsNotFound(err))
}

func TestContactStore_PriorityOrder(t *testing.T) {
	ctx := context.Background()
	s := NewContactStore()
	s.Add(models.EmergencyContact{UserID: "u1", Name: "Brother", Priority: 2})
	s.Add(models.EmergencyContact{UserID: "u1", Name: "Mother", Priority: 1})
	s.Add(models.EmergencyContact{UserID: "u2", Name: "Friend", Priority: 1})

	got, err := s.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Mother", got[0].Name)
	assert.Equal(t, "Brother", got[1].Name)
}

func newPending(userID string, triggered time.Time, timeout time.Duration) *models.Alert {
	deadline := triggered.Add(timeout)
	return &models.Alert{
		ID:               uuid.New(),
		UserID:           userID,
		Level:            models.AlertLevelWarning,
		Source:           models.AlertSourceLocation,
		Status:           models.AlertStatusPendingResponse,
		TriggeredAt:      triggered,
		ResponseDeadline: &deadline,
	}
}

func TestAlertStore_CreateUnlessOpen(t *testing.T) {
	ctx := context.Background()
	s := NewAlertStore()
	now := time.Date(2024, 1, 15, 22, 0, 0, 0, time.UTC)

	first, err := s.CreateUnlessOpen(ctx, newPending("u1", now, 2*time.Minute), now.Add(-5*time.Minute))
	require.NoError(t, err)

	_, err = s.CreateUnlessOpen(ctx, newPending("u1", now.Add(time.Minute), 2*time.Minute), now.Add(-4*time.Minute))
	var conflict *models.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, first.ID, conflict.Existing.ID)

	// вне окна дедупликации создается новая тревога
	_, err = s.CreateUnlessOpen(ctx, newPending("u1", now.Add(6*time.Minute), 2*time.Minute), now.Add(time.Minute))
	require.NoError(t, err)
}

func TestAlertStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewAlertStore()
	a := newPending("u1", time.Now(), time.Minute)
	require.NoError(t, s.Insert(ctx, a))

	got, err := s.GetByID(ctx, a.ID)
	require.NoError(t, err)
	got.Status = models.AlertStatusResolved
	*got.ResponseDeadline = time.Time{}

	again, err := s.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AlertStatusPendingResponse, again.Status)
	assert.False(t, again.ResponseDeadline.IsZero())
}

func TestAlertStore_ExpiredPendingAndEscalate(t *testing.T) {
	ctx := context.Background()
	s := NewAlertStore()
	now := time.Date(2024, 1, 15, 22, 0, 0, 0, time.UTC)

	expired := newPending("u1", now.Add(-3*time.Minute), 2*time.Minute)
	fresh := newPending("u2", now, 2*time.Minute)
	require.NoError(t, s.Insert(ctx, expired))
	require.NoError(t, s.Insert(ctx, fresh))

	list, err := s.ListExpiredPending(ctx, now, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, expired.ID, list[0].ID)

	esc := alert.Escalation{Condition: alert.EscalateIfExpired, At: now, Reason: "NO USER RESPONSE after 2 minutes"}
	updated, ok, err := s.Escalate(ctx, expired.ID, esc)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, updated.LoggedToOperator)
	assert.True(t, updated.RequiresImmediateAttention)

	_, ok, err = s.Escalate(ctx, expired.ID, esc)
	require.NoError(t, err)
	assert.False(t, ok)

	list, err = s.ListExpiredPending(ctx, now, 10)
	require.NoError(t, err)
	assert.Empty(t, list)

	total, critical, err := s.CountForOperator(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, 1, critical)
}

func TestAlertStore_FinalizeTerminal(t *testing.T) {
	ctx := context.Background()
	s := NewAlertStore()
	a := newPending("u1", time.Now(), time.Minute)
	require.NoError(t, s.Insert(ctx, a))

	fin := alert.Finalization{Status: models.AlertStatusFalseAlarm, At: time.Now(), NotePrefix: models.NoteFalseAlarm, Note: "test", Action: "mark false alarm"}
	closed, err := s.Finalize(ctx, a.ID, fin)
	require.NoError(t, err)
	assert.Equal(t, models.AlertStatusFalseAlarm, closed.Status)
	assert.NotNil(t, closed.ResolvedAt)

	_, err = s.Finalize(ctx, a.ID, fin)
	assert.True(t, models.IsState(err))

	_, err = s.Finalize(ctx, uuid.New(), fin)
	assert.True(t, models.IsNotFound(err))
}
