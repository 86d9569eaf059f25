package service_test

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shenikar/safety_alert_system/internal/alert"
	"github.com/shenikar/safety_alert_system/internal/models"
	"github.com/shenikar/safety_alert_system/internal/notify"
	notifymocks "github.com/shenikar/safety_alert_system/internal/notify/mocks"
	"github.com/shenikar/safety_alert_system/internal/predictor"
	"github.com/shenikar/safety_alert_system/internal/repository/memory"
	"github.com/shenikar/safety_alert_system/internal/risk"
	"github.com/shenikar/safety_alert_system/internal/service"
	"github.com/shenikar/safety_alert_system/internal/zoneindex"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type stepClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *stepClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type engine struct {
	svc      service.SafetyService
	alerts   *memory.AlertStore
	notifier *notifymocks.MockNotifier
	clock    *stepClock
}

// newEngine собирает движок на хранилищах в памяти, как в режиме STORAGE_DRIVER=memory
func newEngine(t *testing.T) *engine {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	clock := &stepClock{now: time.Date(2026, 3, 2, 23, 0, 0, 0, time.UTC)}
	locations := memory.NewLocationStore()
	alertStore := memory.NewAlertStore()
	contacts := memory.NewContactStore()
	contacts.Add(models.EmergencyContact{UserID: "u1", Name: "Ada", Phone: "+2348000000001", Priority: 1})

	index := zoneindex.New(memory.DefaultZones())
	lifecycle := alert.NewLifecycle(alertStore, alert.DefaultConfig(), logger).WithClock(clock.Now)
	aggregator := risk.NewAggregator(index, locations, lifecycle, predictor.Disabled{}, time.UTC, logger)

	notifier := notifymocks.NewMockNotifier(gomock.NewController(t))
	fanout := notify.NewFanout(notifier, nil, 10*time.Second, "", time.UTC, logger)

	svc := service.NewSafetyService(locations, aggregator, lifecycle, contacts, memory.NewActionStore(), index, fanout, logger)
	return &engine{svc: svc, alerts: alertStore, notifier: notifier, clock: clock}
}

func TestEngine_HighRiskAlertEscalatesAfterTimeout(t *testing.T) {
	// Подготовка
	e := newEngine(t)
	ctx := context.Background()

	// Действие: пользователь стоит в центре Itam Park (риск 85)
	res, err := e.svc.SubmitLocation(ctx, service.LocationInput{
		UserID: "u1", Latitude: 5.0515, Longitude: 7.8975, SpeedKmh: 0, BatteryPct: 40,
	})

	// Проверки
	require.NoError(t, err)
	require.True(t, res.Assessment.ShouldAlert)
	assert.Equal(t, 100.0, res.Assessment.RiskScore)
	assert.True(t, res.AlertTriggered)
	require.NotNil(t, res.AlertID)

	a, err := e.svc.GetAlert(ctx, *res.AlertID)
	require.NoError(t, err)
	assert.Equal(t, models.AlertStatusPendingResponse, a.Status)
	assert.Equal(t, models.AlertLevelEmergency, a.Level)
	assert.False(t, a.LoggedToOperator)

	// Повторная точка в окне дедупликации не создает вторую тревогу
	again, err := e.svc.EvaluateRisk(ctx, "u1", 5.0515, 7.8975, 0)
	require.NoError(t, err)
	assert.False(t, again.AlertTriggered)
	assert.Equal(t, *res.AlertID, *again.AlertID)

	// До дедлайна sweep ничего не делает
	count, err := e.svc.RunExpirySweep(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	// После дедлайна тревога уходит оператору, контакты оповещаются
	e.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)
	e.clock.Advance(2*time.Minute + time.Second)
	count, err = e.svc.RunExpirySweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = e.svc.RunExpirySweep(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	q, err := e.svc.OperatorAlerts(ctx, true, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, q.Critical)

	// Пользователь подтверждает безопасность, флаг передачи оператору сохраняется
	cancelled, err := e.svc.ConfirmSafe(ctx, "u1", nil, "")
	require.NoError(t, err)
	assert.True(t, cancelled)

	a, err = e.svc.GetAlert(ctx, *res.AlertID)
	require.NoError(t, err)
	assert.Equal(t, models.AlertStatusResolved, a.Status)
	assert.True(t, a.LoggedToOperator)

	_, err = e.svc.OperatorMarkFalseAlarm(ctx, a.ID, "")
	assert.True(t, models.IsState(err))
}

func TestEngine_SOSIgnoresOpenAlert(t *testing.T) {
	// Подготовка
	e := newEngine(t)
	ctx := context.Background()

	_, err := e.svc.SubmitLocation(ctx, service.LocationInput{UserID: "u1", Latitude: 5.0515, Longitude: 7.8975})
	require.NoError(t, err)

	// Ожидания
	e.notifier.EXPECT().
		Notify(gomock.Any(), models.EmergencyContact{ID: 1, UserID: "u1", Name: "Ada", Phone: "+2348000000001", Priority: 1}, gomock.Any()).
		Return(nil).
		Times(1)

	// Действие: координаты не переданы, берется последняя точка
	sos, err := e.svc.TriggerSOS(ctx, "u1", nil, nil, "car following me")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 1, sos.ContactsNotified)
	assert.Equal(t, models.AlertSourceManual, sos.Alert.Source)
	assert.Equal(t, 5.0515, sos.Alert.Latitude)

	open, err := e.alerts.ListOpenByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, open, 2)
}

func TestEngine_VoiceCrisisRaisesVoiceRisk(t *testing.T) {
	// Подготовка
	e := newEngine(t)
	ctx := context.Background()
	e.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)

	// Действие
	vr, err := e.svc.SubmitVoiceSignal(ctx, service.VoiceInput{
		UserID:    "u1",
		Latitude:  ptr(5.0200),
		Longitude: ptr(7.9700),
		Analysis:  models.AudioAnalysisResult{Transcript: "call the police"},
	})

	// Проверки
	require.NoError(t, err)
	assert.True(t, vr.AlertCreated)
	assert.Equal(t, 1, vr.ContactsNotified)

	a, err := e.svc.GetAlert(ctx, *vr.AlertID)
	require.NoError(t, err)
	assert.Equal(t, models.AlertSourceVoice, a.Source)
	assert.True(t, a.RequiresImmediateAttention)
	assert.Contains(t, a.OperatorNotes, "VOICE CRISIS DETECTED - keywords: police")
}
