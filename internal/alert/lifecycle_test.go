package alert_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/safety_alert_system/internal/alert"
	"github.com/shenikar/safety_alert_system/internal/models"
	"github.com/shenikar/safety_alert_system/internal/repository/memory"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newLifecycle(t *testing.T) (*alert.Lifecycle, *memory.AlertStore, *fakeClock) {
	t.Helper()
	store := memory.NewAlertStore()
	clock := &fakeClock{now: time.Date(2024, 1, 15, 22, 0, 0, 0, time.UTC)}
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	lc := alert.NewLifecycle(store, alert.DefaultConfig(), logger).WithClock(clock.Now)
	return lc, store, clock
}

func highRisk(userID string) alert.Trigger {
	return alert.Trigger{
		UserID:    userID,
		Latitude:  5.125086,
		Longitude: 7.356695,
		RiskScore: 100,
		Reason:    "Near Test Zone (risk: 80) + Night time + Slow/stopped movement",
		Source:    models.AlertSourceLocation,
	}
}

func TestLifecycle_TriggerSetsDeadline(t *testing.T) {
	lc, _, clock := newLifecycle(t)
	ctx := context.Background()

	a, created, err := lc.Trigger(ctx, highRisk("u1"))
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, models.AlertStatusPendingResponse, a.Status)
	assert.Equal(t, models.AlertLevelEmergency, a.Level)
	require.NotNil(t, a.ResponseDeadline)
	assert.Equal(t, clock.Now().Add(2*time.Minute), *a.ResponseDeadline)
	assert.False(t, a.LoggedToOperator)
}

func TestLifecycle_WarningLevelAtOrBelow85(t *testing.T) {
	lc, _, _ := newLifecycle(t)
	tr := highRisk("u1")
	tr.RiskScore = 85
	a, _, err := lc.Trigger(context.Background(), tr)
	require.NoError(t, err)
	assert.Equal(t, models.AlertLevelWarning, a.Level)
}

func TestLifecycle_DedupWindow(t *testing.T) {
	lc, _, clock := newLifecycle(t)
	ctx := context.Background()

	first, created, err := lc.Trigger(ctx, highRisk("u1"))
	require.NoError(t, err)
	require.True(t, created)

	clock.Advance(3 * time.Minute)
	second, created, err := lc.Trigger(ctx, highRisk("u1"))
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)

	clock.Advance(3 * time.Minute)
	third, created, err := lc.Trigger(ctx, highRisk("u1"))
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEqual(t, first.ID, third.ID)
}

func TestLifecycle_ConcurrentTriggersCreateOneAlert(t *testing.T) {
	lc, store, _ := newLifecycle(t)
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	ids := make(chan uuid.UUID, n)
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			a, _, err := lc.Trigger(ctx, highRisk("u1"))
			if err == nil {
				ids <- a.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[uuid.UUID]struct{}{}
	for id := range ids {
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, 1)

	open, err := store.ListOpenByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, open, 1)
}

func TestLifecycle_SweepEscalatesOnce(t *testing.T) {
	lc, _, clock := newLifecycle(t)
	ctx := context.Background()

	a, _, err := lc.Trigger(ctx, highRisk("u1"))
	require.NoError(t, err)

	clock.Advance(time.Minute)
	escalated, err := lc.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Empty(t, escalated)

	clock.Advance(90 * time.Second)
	escalated, err = lc.SweepExpired(ctx)
	require.NoError(t, err)
	require.Len(t, escalated, 1)
	assert.Equal(t, a.ID, escalated[0].ID)
	assert.True(t, escalated[0].LoggedToOperator)
	assert.True(t, escalated[0].RequiresImmediateAttention)
	assert.Contains(t, escalated[0].OperatorNotes, "[AUTO] NO USER RESPONSE after 2 minutes")
	assert.Equal(t, models.AlertStatusPendingResponse, escalated[0].Status)

	again, err := lc.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Empty(t, again)

	got, err := lc.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, countSubstr(got.OperatorNotes, "[AUTO]"))
}

func TestLifecycle_SweepBatches(t *testing.T) {
	store := memory.NewAlertStore()
	clock := &fakeClock{now: time.Date(2024, 1, 15, 22, 0, 0, 0, time.UTC)}
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	cfg := alert.DefaultConfig()
	cfg.SweepBatchSize = 2
	lc := alert.NewLifecycle(store, cfg, logger).WithClock(clock.Now)
	ctx := context.Background()

	for _, u := range []string{"a", "b", "c", "d", "e"} {
		_, created, err := lc.Trigger(ctx, highRisk(u))
		require.NoError(t, err)
		require.True(t, created)
	}
	clock.Advance(3 * time.Minute)

	escalated, err := lc.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Len(t, escalated, 5)
}

func TestLifecycle_ConfirmSafeKeepsLoggedFlag(t *testing.T) {
	lc, _, clock := newLifecycle(t)
	ctx := context.Background()

	a, _, err := lc.Trigger(ctx, highRisk("u1"))
	require.NoError(t, err)
	clock.Advance(3 * time.Minute)
	_, err = lc.SweepExpired(ctx)
	require.NoError(t, err)

	n, err := lc.ConfirmSafe(ctx, "u1", &a.ID, "walking home")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := lc.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AlertStatusResolved, got.Status)
	assert.True(t, got.LoggedToOperator)
	require.NotNil(t, got.ResolvedAt)
	assert.Contains(t, got.OperatorNotes, "[USER CONFIRMED SAFE] walking home")

	// повторное подтверждение ничего не меняет
	n, err = lc.ConfirmSafe(ctx, "u1", &a.ID, "again")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestLifecycle_SweepRacesConfirmSafe(t *testing.T) {
	for i := 0; i < 200; i++ {
		// Подготовка: тревога ждет ответа, срок истек
		lc, _, clock := newLifecycle(t)
		ctx := context.Background()

		a, _, err := lc.Trigger(ctx, highRisk("u1"))
		require.NoError(t, err)
		clock.Advance(3 * time.Minute)

		// Действие: обход и подтверждение пользователя одновременно
		var (
			wg         sync.WaitGroup
			escalated  []*models.Alert
			sweepErr   error
			confirmed  int
			confirmErr error
		)
		start := make(chan struct{})
		wg.Add(2)
		go func() {
			defer wg.Done()
			<-start
			escalated, sweepErr = lc.SweepExpired(ctx)
		}()
		go func() {
			defer wg.Done()
			<-start
			confirmed, confirmErr = lc.ConfirmSafe(ctx, "u1", &a.ID, "walking home")
		}()
		close(start)
		wg.Wait()

		// Проверки
		require.NoError(t, sweepErr)
		require.NoError(t, confirmErr)
		assert.Equal(t, 1, confirmed)

		got, err := lc.Get(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, models.AlertStatusResolved, got.Status)
		require.NotNil(t, got.ResolvedAt)
		assert.Contains(t, got.OperatorNotes, "[USER CONFIRMED SAFE] walking home")
		// если обход успел передать тревогу оператору, флаг переживает закрытие
		assert.Equal(t, len(escalated) == 1, got.LoggedToOperator, "iteration %d", i)
		assert.LessOrEqual(t, countSubstr(got.OperatorNotes, "[AUTO]"), 1)

		_, err = lc.OperatorResolve(ctx, a.ID, "late")
		assert.True(t, models.IsState(err), "iteration %d: %v", i, err)
	}
}

func TestLifecycle_ConfirmSafeAllOpen(t *testing.T) {
	lc, _, clock := newLifecycle(t)
	ctx := context.Background()

	_, _, err := lc.Trigger(ctx, highRisk("u1"))
	require.NoError(t, err)
	_, err = lc.TriggerManual(ctx, "u1", 5.1, 7.3, "")
	require.NoError(t, err)
	clock.Advance(time.Second)

	n, err := lc.ConfirmSafe(ctx, "u1", nil, "")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	q, err := lc.OperatorQueue(ctx, false, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, q.Total)
}

func TestLifecycle_ConfirmSafeForeignAlert(t *testing.T) {
	lc, _, _ := newLifecycle(t)
	ctx := context.Background()

	a, _, err := lc.Trigger(ctx, highRisk("u1"))
	require.NoError(t, err)

	_, err = lc.ConfirmSafe(ctx, "u2", &a.ID, "")
	assert.True(t, models.IsNotFound(err))

	missing := uuid.New()
	_, err = lc.ConfirmSafe(ctx, "u1", &missing, "")
	assert.True(t, models.IsNotFound(err))
}

func TestLifecycle_ManualSOSBypassesDedup(t *testing.T) {
	lc, _, _ := newLifecycle(t)
	ctx := context.Background()

	existing, _, err := lc.Trigger(ctx, highRisk("u1"))
	require.NoError(t, err)

	sos, err := lc.TriggerManual(ctx, "u1", 5.1, 7.3, "being followed")
	require.NoError(t, err)
	assert.NotEqual(t, existing.ID, sos.ID)
	assert.Equal(t, models.AlertSourceManual, sos.Source)
	assert.Equal(t, models.AlertLevelEmergency, sos.Level)
	assert.Equal(t, 100.0, sos.RiskScore)
	assert.Equal(t, models.AlertStatusActive, sos.Status)
	assert.True(t, sos.LoggedToOperator)
	assert.True(t, sos.RequiresImmediateAttention)
	assert.Nil(t, sos.ResponseDeadline)
	assert.Contains(t, sos.OperatorNotes, "USER TRIGGERED EMERGENCY - being followed")
}

func TestLifecycle_VoiceCrisis(t *testing.T) {
	lc, _, clock := newLifecycle(t)
	ctx := context.Background()

	tr := highRisk("u1")
	a, escalated, err := lc.TriggerVoiceCrisis(ctx, tr, "keywords: help, police")
	require.NoError(t, err)
	assert.True(t, escalated)
	assert.Equal(t, models.AlertSourceVoice, a.Source)
	assert.Equal(t, models.AlertLevelEmergency, a.Level)
	assert.Equal(t, models.AlertStatusActive, a.Status)
	assert.True(t, a.LoggedToOperator)
	assert.Nil(t, a.ResponseDeadline)

	active, err := lc.HasActiveVoiceAlert(ctx, "u1", clock.Now().Add(time.Minute))
	require.NoError(t, err)
	assert.True(t, active)

	active, err = lc.HasActiveVoiceAlert(ctx, "u1", clock.Now().Add(6*time.Minute))
	require.NoError(t, err)
	assert.False(t, active)
}

func TestLifecycle_VoiceCrisisEscalatesExistingAlert(t *testing.T) {
	lc, _, clock := newLifecycle(t)
	ctx := context.Background()

	pending, _, err := lc.Trigger(ctx, highRisk("u1"))
	require.NoError(t, err)
	clock.Advance(30 * time.Second)

	a, escalated, err := lc.TriggerVoiceCrisis(ctx, highRisk("u1"), "")
	require.NoError(t, err)
	assert.True(t, escalated)
	assert.Equal(t, pending.ID, a.ID)
	assert.True(t, a.LoggedToOperator)
	assert.Equal(t, models.AlertStatusPendingResponse, a.Status)
	assert.Contains(t, a.OperatorNotes, "VOICE CRISIS DETECTED")

	again, escalated, err := lc.TriggerVoiceCrisis(ctx, highRisk("u1"), "")
	require.NoError(t, err)
	assert.False(t, escalated)
	assert.Equal(t, pending.ID, again.ID)
}

func TestLifecycle_OperatorTransitions(t *testing.T) {
	lc, _, _ := newLifecycle(t)
	ctx := context.Background()

	sos, err := lc.TriggerManual(ctx, "u1", 5.1, 7.3, "")
	require.NoError(t, err)

	q, err := lc.OperatorQueue(ctx, true, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, q.Total)
	assert.Equal(t, 1, q.Critical)
	require.Len(t, q.Alerts, 1)

	resolved, err := lc.OperatorResolve(ctx, sos.ID, "contact reached user")
	require.NoError(t, err)
	assert.Equal(t, models.AlertStatusResolved, resolved.Status)
	assert.False(t, resolved.RequiresImmediateAttention)
	assert.Contains(t, resolved.OperatorNotes, "[OPERATOR RESOLVED] contact reached user")

	_, err = lc.OperatorMarkFalseAlarm(ctx, sos.ID, "")
	assert.True(t, models.IsState(err))

	_, err = lc.OperatorResolve(ctx, uuid.New(), "")
	assert.True(t, models.IsNotFound(err))
}

func TestLifecycle_FalseAlarm(t *testing.T) {
	lc, _, _ := newLifecycle(t)
	ctx := context.Background()

	a, _, err := lc.Trigger(ctx, highRisk("u1"))
	require.NoError(t, err)

	closed, err := lc.OperatorMarkFalseAlarm(ctx, a.ID, "phone dropped")
	require.NoError(t, err)
	assert.Equal(t, models.AlertStatusFalseAlarm, closed.Status)
	assert.Contains(t, closed.OperatorNotes, "[FALSE ALARM] phone dropped")

	n, err := lc.ConfirmSafe(ctx, "u1", &a.ID, "")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func countSubstr(s, sub string) int {
	n := 0
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			n++
		}
	}
	return n
}
