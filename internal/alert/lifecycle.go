package alert

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/safety_alert_system/internal/metrics"
	"github.com/shenikar/safety_alert_system/internal/models"
	"github.com/shenikar/safety_alert_system/internal/syncutil"
	"github.com/sirupsen/logrus"
)

const (
	// EmergencyScore - оценка, выше которой тревога получает уровень Emergency
	EmergencyScore = 85.0
	maxSweepRounds = 100
)

// Config - параметры жизненного цикла тревог
type Config struct {
	DedupWindow     time.Duration
	ResponseTimeout time.Duration
	SweepBatchSize  int
}

// DefaultConfig возвращает параметры по умолчанию
func DefaultConfig() Config {
	return Config{
		DedupWindow:     5 * time.Minute,
		ResponseTimeout: 2 * time.Minute,
		SweepBatchSize:  500,
	}
}

// Trigger - входные данные для создания тревоги
type Trigger struct {
	UserID    string
	Latitude  float64
	Longitude float64
	RiskScore float64
	Reason    string
	Source    models.AlertSource
	// Level переопределяет уровень, вычисляемый по оценке
	Level models.AlertLevel
}

// OperatorQueue - очередь тревог оператора со счетчиками
type OperatorQueue struct {
	Alerts   []*models.Alert
	Total    int
	Critical int
}

// Lifecycle управляет созданием и переходами тревог
type Lifecycle struct {
	store  Store
	locks  *syncutil.ShardedMutex
	cfg    Config
	logger *logrus.Logger
	now    func() time.Time
}

// NewLifecycle создает Lifecycle
func NewLifecycle(store Store, cfg Config, logger *logrus.Logger) *Lifecycle {
	if cfg.SweepBatchSize <= 0 {
		cfg.SweepBatchSize = DefaultConfig().SweepBatchSize
	}
	return &Lifecycle{
		store:  store,
		locks:  &syncutil.ShardedMutex{},
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

// WithClock подменяет источник времени
func (l *Lifecycle) WithClock(now func() time.Time) *Lifecycle {
	l.now = now
	return l
}

func levelFor(score float64) models.AlertLevel {
	if score > EmergencyScore {
		return models.AlertLevelEmergency
	}
	return models.AlertLevelWarning
}

func (l *Lifecycle) newAlert(t Trigger, now time.Time) *models.Alert {
	level := t.Level
	if level == "" {
		level = levelFor(t.RiskScore)
	}
	return &models.Alert{
		ID:          uuid.New(),
		UserID:      t.UserID,
		Level:       level,
		Source:      t.Source,
		Latitude:    t.Latitude,
		Longitude:   t.Longitude,
		RiskScore:   t.RiskScore,
		Reason:      t.Reason,
		Status:      models.AlertStatusActive,
		TriggeredAt: now,
	}
}

// Trigger создает тревогу высокого риска с таймером ответа пользователя.
// Если у пользователя уже есть открытая тревога в окне дедупликации, возвращается она и created=false.
func (l *Lifecycle) Trigger(ctx context.Context, t Trigger) (*models.Alert, bool, error) {
	now := l.now()
	a := l.newAlert(t, now)
	deadline := now.Add(l.cfg.ResponseTimeout)
	a.ResponseDeadline = &deadline
	a.Status = models.AlertStatusPendingResponse

	return l.create(ctx, a, now)
}

// TriggerVoiceCrisis создает голосовую тревогу и сразу передает ее оператору.
// Открытая тревога пользователя в окне дедупликации эскалируется вместо создания новой.
// escalated=true, если именно этот вызов передал тревогу оператору (новую или существующую).
func (l *Lifecycle) TriggerVoiceCrisis(ctx context.Context, t Trigger, detail string) (*models.Alert, bool, error) {
	now := l.now()
	t.Source = models.AlertSourceVoice
	t.Level = models.AlertLevelEmergency
	a := l.newAlert(t, now)
	reason := "VOICE CRISIS DETECTED"
	if detail != "" {
		reason = fmt.Sprintf("%s - %s", reason, detail)
	}
	a.Escalate(now, reason)

	created, isNew, err := l.create(ctx, a, now)
	if err != nil {
		return nil, false, err
	}
	if isNew {
		metrics.AlertsEscalatedTotal.WithLabelValues("voice").Inc()
		return created, true, nil
	}

	escalated, ok, err := l.store.Escalate(ctx, created.ID, Escalation{
		Condition: EscalateIfOpen,
		At:        now,
		Reason:    reason,
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to escalate alert %s: %w", created.ID, err)
	}
	if ok {
		metrics.AlertsEscalatedTotal.WithLabelValues("voice").Inc()
		return escalated, true, nil
	}
	return escalated, false, nil
}

// TriggerManual создает ручную SOS-тревогу без дедупликации и сразу передает ее оператору
func (l *Lifecycle) TriggerManual(ctx context.Context, userID string, lat, lon float64, userContext string) (*models.Alert, error) {
	now := l.now()
	a := l.newAlert(Trigger{
		UserID:    userID,
		Latitude:  lat,
		Longitude: lon,
		RiskScore: 100,
		Reason:    "User triggered emergency",
		Source:    models.AlertSourceManual,
		Level:     models.AlertLevelEmergency,
	}, now)
	reason := "USER TRIGGERED EMERGENCY"
	if userContext != "" {
		reason = fmt.Sprintf("%s - %s", reason, userContext)
	}
	a.Escalate(now, reason)

	if err := l.store.Insert(ctx, a); err != nil {
		return nil, fmt.Errorf("failed to insert manual alert: %w", err)
	}
	metrics.AlertsCreatedTotal.WithLabelValues(string(a.Source), string(a.Level)).Inc()
	metrics.AlertsEscalatedTotal.WithLabelValues("manual").Inc()

	l.logger.WithFields(logrus.Fields{
		"alert_id": a.ID,
		"user_id":  userID,
	}).Warn("Manual SOS alert created")
	return a, nil
}

func (l *Lifecycle) create(ctx context.Context, a *models.Alert, now time.Time) (*models.Alert, bool, error) {
	unlock := l.locks.Lock(a.UserID)
	created, err := l.store.CreateUnlessOpen(ctx, a, now.Add(-l.cfg.DedupWindow))
	unlock()

	if err != nil {
		var conflict *models.ConflictError
		if errors.As(err, &conflict) {
			metrics.AlertsDeduplicatedTotal.Inc()
			l.logger.WithFields(logrus.Fields{
				"alert_id": conflict.Existing.ID,
				"user_id":  a.UserID,
			}).Debug("Open alert already exists, skipping creation")
			return conflict.Existing, false, nil
		}
		return nil, false, fmt.Errorf("failed to create alert: %w", err)
	}

	metrics.AlertsCreatedTotal.WithLabelValues(string(created.Source), string(created.Level)).Inc()
	l.logger.WithFields(logrus.Fields{
		"alert_id":   created.ID,
		"user_id":    created.UserID,
		"level":      created.Level,
		"source":     created.Source,
		"risk_score": created.RiskScore,
	}).Info("Alert created")
	return created, true, nil
}

// ConfirmSafe закрывает тревогу (или все открытые тревоги пользователя) как Resolved.
// Уже закрытые тревоги пропускаются. Возвращает число закрытых тревог.
func (l *Lifecycle) ConfirmSafe(ctx context.Context, userID string, alertID *uuid.UUID, userContext string) (int, error) {
	if userContext == "" {
		userContext = "User confirmed safe"
	}
	fin := Finalization{
		Status:     models.AlertStatusResolved,
		NotePrefix: models.NoteUserConfirmed,
		Note:       userContext,
		Action:     "confirm safe",
	}

	var targets []*models.Alert
	if alertID != nil {
		a, err := l.store.GetByID(ctx, *alertID)
		if err != nil {
			return 0, err
		}
		if a.UserID != userID {
			return 0, &models.NotFoundError{Entity: "alert", ID: alertID.String()}
		}
		targets = []*models.Alert{a}
	} else {
		open, err := l.store.ListOpenByUser(ctx, userID)
		if err != nil {
			return 0, fmt.Errorf("failed to list open alerts: %w", err)
		}
		targets = open
	}

	resolved := 0
	for _, a := range targets {
		if a.Status.IsTerminal() {
			continue
		}
		fin.At = l.now()
		if _, err := l.store.Finalize(ctx, a.ID, fin); err != nil {
			if models.IsState(err) {
				continue
			}
			return resolved, fmt.Errorf("failed to resolve alert %s: %w", a.ID, err)
		}
		resolved++
		metrics.AlertTransitionsTotal.WithLabelValues(string(models.AlertStatusResolved), "user").Inc()
	}

	l.logger.WithFields(logrus.Fields{
		"user_id":  userID,
		"resolved": resolved,
	}).Info("User confirmed safe")
	return resolved, nil
}

// SweepExpired передает оператору все тревоги, по которым истек срок ответа.
// Повторный запуск не меняет уже переданные тревоги.
func (l *Lifecycle) SweepExpired(ctx context.Context) ([]*models.Alert, error) {
	now := l.now()
	esc := Escalation{
		Condition: EscalateIfExpired,
		At:        now,
		Reason:    fmt.Sprintf("NO USER RESPONSE after %s", humanDuration(l.cfg.ResponseTimeout)),
	}

	var escalated []*models.Alert
	for round := 0; round < maxSweepRounds; round++ {
		batch, err := l.store.ListExpiredPending(ctx, now, l.cfg.SweepBatchSize)
		if err != nil {
			return escalated, fmt.Errorf("failed to list expired alerts: %w", err)
		}
		for _, a := range batch {
			updated, ok, err := l.store.Escalate(ctx, a.ID, esc)
			if err != nil {
				return escalated, fmt.Errorf("failed to escalate alert %s: %w", a.ID, err)
			}
			if ok {
				escalated = append(escalated, updated)
				metrics.AlertsEscalatedTotal.WithLabelValues("timeout").Inc()
			}
		}
		if len(batch) < l.cfg.SweepBatchSize {
			break
		}
	}

	if len(escalated) > 0 {
		l.logger.WithField("count", len(escalated)).Warn("Alerts escalated after response timeout")
	}
	return escalated, nil
}

// OperatorResolve закрывает тревогу решением оператора
func (l *Lifecycle) OperatorResolve(ctx context.Context, id uuid.UUID, notes string) (*models.Alert, error) {
	if notes == "" {
		notes = "Resolved by operator"
	}
	return l.finalizeByOperator(ctx, id, Finalization{
		Status:         models.AlertStatusResolved,
		NotePrefix:     models.NoteResolved,
		Note:           notes,
		ClearAttention: true,
		Action:         "resolve",
	})
}

// OperatorMarkFalseAlarm помечает тревогу ложной
func (l *Lifecycle) OperatorMarkFalseAlarm(ctx context.Context, id uuid.UUID, notes string) (*models.Alert, error) {
	if notes == "" {
		notes = "Marked as false alarm by operator"
	}
	return l.finalizeByOperator(ctx, id, Finalization{
		Status:         models.AlertStatusFalseAlarm,
		NotePrefix:     models.NoteFalseAlarm,
		Note:           notes,
		ClearAttention: true,
		Action:         "mark false alarm",
	})
}

func (l *Lifecycle) finalizeByOperator(ctx context.Context, id uuid.UUID, fin Finalization) (*models.Alert, error) {
	fin.At = l.now()
	a, err := l.store.Finalize(ctx, id, fin)
	if err != nil {
		return nil, err
	}
	metrics.AlertTransitionsTotal.WithLabelValues(string(fin.Status), "operator").Inc()
	l.logger.WithFields(logrus.Fields{
		"alert_id": id,
		"status":   fin.Status,
	}).Info("Alert closed by operator")
	return a, nil
}

// Get возвращает тревогу по идентификатору
func (l *Lifecycle) Get(ctx context.Context, id uuid.UUID) (*models.Alert, error) {
	return l.store.GetByID(ctx, id)
}

// OperatorQueue возвращает тревоги, переданные оператору и еще не закрытые
func (l *Lifecycle) OperatorQueue(ctx context.Context, criticalOnly bool, limit int) (*OperatorQueue, error) {
	alerts, err := l.store.ListForOperator(ctx, OperatorFilter{CriticalOnly: criticalOnly, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("failed to list operator alerts: %w", err)
	}
	total, critical, err := l.store.CountForOperator(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count operator alerts: %w", err)
	}
	return &OperatorQueue{Alerts: alerts, Total: total, Critical: critical}, nil
}

// HasActiveVoiceAlert сообщает, есть ли у пользователя свежая открытая голосовая тревога
func (l *Lifecycle) HasActiveVoiceAlert(ctx context.Context, userID string, at time.Time) (bool, error) {
	return l.store.HasActiveVoiceAlert(ctx, userID, at.Add(-l.cfg.DedupWindow))
}

func humanDuration(d time.Duration) string {
	if d > 0 && d%time.Minute == 0 {
		m := int(d / time.Minute)
		if m == 1 {
			return "1 minute"
		}
		return fmt.Sprintf("%d minutes", m)
	}
	return d.String()
}
