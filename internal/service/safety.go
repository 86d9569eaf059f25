// Package service - сценарии движка безопасности: прием точек и голосовых сигналов,
// оценка риска, тревоги, SOS и действия оператора.
package service

//go:generate mockgen -source=safety.go -destination=mocks/safety_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/safety_alert_system/internal/alert"
	"github.com/shenikar/safety_alert_system/internal/models"
	"github.com/shenikar/safety_alert_system/internal/notify"
	"github.com/shenikar/safety_alert_system/internal/risk"
	"github.com/shenikar/safety_alert_system/internal/tracing"
	"github.com/shenikar/safety_alert_system/internal/voice"
	"github.com/shenikar/safety_alert_system/internal/zoneindex"
	"github.com/sirupsen/logrus"
)

const (
	// voiceCrisisScore - оценка голосовой тревоги
	voiceCrisisScore = 100.0
	// MaxNearbyRadius ограничивает радиус поиска зон
	MaxNearbyRadius = 50000.0
)

// LocationStore определяет контракт журнала точек пользователя
type LocationStore interface {
	Append(ctx context.Context, sample *models.LocationSample) error
	Last(ctx context.Context, userID string) (*models.LocationSample, error)
}

// RiskEvaluator вычисляет риск пользователя в точке
type RiskEvaluator interface {
	Evaluate(ctx context.Context, userID string, lat, lon, speedKmh float64, now time.Time) (*models.RiskAssessment, error)
}

// AlertManager определяет контракт жизненного цикла тревог
type AlertManager interface {
	Trigger(ctx context.Context, t alert.Trigger) (*models.Alert, bool, error)
	TriggerVoiceCrisis(ctx context.Context, t alert.Trigger, detail string) (*models.Alert, bool, error)
	TriggerManual(ctx context.Context, userID string, lat, lon float64, userContext string) (*models.Alert, error)
	ConfirmSafe(ctx context.Context, userID string, alertID *uuid.UUID, userContext string) (int, error)
	SweepExpired(ctx context.Context) ([]*models.Alert, error)
	OperatorResolve(ctx context.Context, id uuid.UUID, notes string) (*models.Alert, error)
	OperatorMarkFalseAlarm(ctx context.Context, id uuid.UUID, notes string) (*models.Alert, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Alert, error)
	OperatorQueue(ctx context.Context, criticalOnly bool, limit int) (*alert.OperatorQueue, error)
}

// ContactRepository возвращает экстренные контакты пользователя по приоритету
type ContactRepository interface {
	ListByUser(ctx context.Context, userID string) ([]models.EmergencyContact, error)
}

// ActionRecorder записывает действия пользователя
type ActionRecorder interface {
	Record(ctx context.Context, action *models.SafetyAction) error
}

// ZoneCatalog - чтение зон риска
type ZoneCatalog interface {
	All() []models.RiskZone
	Within(lat, lon, radiusMeters float64) []zoneindex.Match
}

// Dispatcher рассылает оповещение по контактам
type Dispatcher interface {
	Notify(ctx context.Context, a *models.Alert, contacts []models.EmergencyContact) notify.Result
}

// LocationInput - новая точка трека
type LocationInput struct {
	UserID     string
	Latitude   float64
	Longitude  float64
	SpeedKmh   float64
	BatteryPct int
	Timestamp  time.Time
}

// VoiceInput - результат анализа голоса. Координаты необязательны.
type VoiceInput struct {
	UserID    string
	Latitude  *float64
	Longitude *float64
	Analysis  models.AudioAnalysisResult
}

// EvaluationResult - оценка риска и решение по тревоге
type EvaluationResult struct {
	Assessment     *models.RiskAssessment
	AlertTriggered bool
	AlertID        *uuid.UUID
}

// LocationResult - сохраненная точка и оценка риска по ней
type LocationResult struct {
	Sample *models.LocationSample
	EvaluationResult
}

// VoiceResult - итог обработки голосового сигнала
type VoiceResult struct {
	Analysis          models.AudioAnalysisResult
	AlertCreated      bool
	AlertID           *uuid.UUID
	ContactsNotified  int
	ContactsAttempted int
}

// SOSResult - итог ручной тревоги
type SOSResult struct {
	Alert             *models.Alert
	ContactsNotified  int
	ContactsAttempted int
}

// SafetyService определяет контракт бизнес-логики движка безопасности
type SafetyService interface {
	SubmitLocation(ctx context.Context, in LocationInput) (*LocationResult, error)
	SubmitVoiceSignal(ctx context.Context, in VoiceInput) (*VoiceResult, error)
	EvaluateRisk(ctx context.Context, userID string, lat, lon, speedKmh float64) (*EvaluationResult, error)
	ConfirmSafe(ctx context.Context, userID string, alertID *uuid.UUID, userContext string) (bool, error)
	TriggerSOS(ctx context.Context, userID string, lat, lon *float64, userContext string) (*SOSResult, error)
	RunExpirySweep(ctx context.Context) (int, error)
	OperatorResolve(ctx context.Context, id uuid.UUID, notes string) (*models.Alert, error)
	OperatorMarkFalseAlarm(ctx context.Context, id uuid.UUID, notes string) (*models.Alert, error)
	OperatorAlerts(ctx context.Context, criticalOnly bool, limit int) (*alert.OperatorQueue, error)
	GetAlert(ctx context.Context, id uuid.UUID) (*models.Alert, error)
	ListZones(ctx context.Context) []models.RiskZone
	NearbyZones(ctx context.Context, lat, lon, radiusMeters float64) ([]zoneindex.Match, error)
}

type safetyService struct {
	locations  LocationStore
	evaluator  RiskEvaluator
	alerts     AlertManager
	contacts   ContactRepository
	actions    ActionRecorder
	zones      ZoneCatalog
	dispatcher Dispatcher
	logger     *logrus.Logger
	now        func() time.Time
}

// NewSafetyService создает SafetyService
func NewSafetyService(
	locations LocationStore,
	evaluator RiskEvaluator,
	alerts AlertManager,
	contacts ContactRepository,
	actions ActionRecorder,
	zones ZoneCatalog,
	dispatcher Dispatcher,
	logger *logrus.Logger,
) SafetyService {
	return &safetyService{
		locations:  locations,
		evaluator:  evaluator,
		alerts:     alerts,
		contacts:   contacts,
		actions:    actions,
		zones:      zones,
		dispatcher: dispatcher,
		logger:     logger,
		now:        time.Now,
	}
}

func validateUserID(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return &models.ValidationError{Field: "user_id", Message: "is required"}
	}
	return nil
}

// SubmitLocation сохраняет точку и сразу оценивает по ней риск
func (s *safetyService) SubmitLocation(ctx context.Context, in LocationInput) (*LocationResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "safety",
		"method":  "SubmitLocation",
		"user_id": in.UserID,
	})

	if err := validateUserID(in.UserID); err != nil {
		return nil, err
	}
	if err := risk.ValidateInput(in.Latitude, in.Longitude, in.SpeedKmh); err != nil {
		return nil, err
	}
	if in.BatteryPct < 0 || in.BatteryPct > 100 {
		return nil, &models.ValidationError{Field: "battery_pct", Message: "must be in [0, 100]"}
	}

	sample := &models.LocationSample{
		UserID:     in.UserID,
		Latitude:   in.Latitude,
		Longitude:  in.Longitude,
		SpeedKmh:   in.SpeedKmh,
		BatteryPct: in.BatteryPct,
		Timestamp:  in.Timestamp,
	}
	if sample.Timestamp.IsZero() {
		sample.Timestamp = s.now()
	}

	if err := s.locations.Append(ctx, sample); err != nil {
		log.WithError(err).Error("Failed to append location sample")
		return nil, fmt.Errorf("service: could not save location: %w", err)
	}

	eval, err := s.evaluate(ctx, log, in.UserID, in.Latitude, in.Longitude, in.SpeedKmh)
	if err != nil {
		return nil, err
	}
	return &LocationResult{Sample: sample, EvaluationResult: *eval}, nil
}

// EvaluateRisk оценивает риск и при превышении порога поднимает тревогу
func (s *safetyService) EvaluateRisk(ctx context.Context, userID string, lat, lon, speedKmh float64) (*EvaluationResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "safety",
		"method":  "EvaluateRisk",
		"user_id": userID,
	})
	if err := validateUserID(userID); err != nil {
		return nil, err
	}
	return s.evaluate(ctx, log, userID, lat, lon, speedKmh)
}

func (s *safetyService) evaluate(ctx context.Context, log *logrus.Entry, userID string, lat, lon, speedKmh float64) (*EvaluationResult, error) {
	now := s.now()
	assessment, err := s.evaluator.Evaluate(ctx, userID, lat, lon, speedKmh, now)
	if err != nil {
		if models.IsValidation(err) {
			return nil, err
		}
		log.WithError(err).Error("Risk evaluation failed")
		return nil, fmt.Errorf("service: could not evaluate risk: %w", err)
	}
	s.recordDetections(ctx, log, assessment)

	res := &EvaluationResult{Assessment: assessment}
	if !assessment.ShouldAlert {
		return res, nil
	}

	trigger := alert.Trigger{
		UserID:    userID,
		Latitude:  lat,
		Longitude: lon,
		RiskScore: assessment.RiskScore,
		Reason:    assessment.Reason,
		Source:    sourceFor(assessment.Factors),
	}

	var a *models.Alert
	if assessment.Factors.VoiceCrisisRisk > 0 {
		var escalated bool
		a, escalated, err = s.alerts.TriggerVoiceCrisis(ctx, trigger, assessment.Reason)
		if err == nil && escalated {
			res.AlertTriggered = a.Source == models.AlertSourceVoice
			s.dispatch(ctx, log, a)
		}
	} else {
		a, res.AlertTriggered, err = s.alerts.Trigger(ctx, trigger)
	}
	if err != nil {
		log.WithError(err).Error("Failed to trigger alert")
		return nil, fmt.Errorf("service: could not trigger alert: %w", err)
	}

	res.AlertID = &a.ID
	log.WithFields(logrus.Fields{
		"alert_id":   a.ID,
		"created":    res.AlertTriggered,
		"risk_score": assessment.RiskScore,
	}).Info("High risk detected")
	return res, nil
}

// sourceFor определяет источник тревоги по вкладу факторов
func sourceFor(f models.RiskFactors) models.AlertSource {
	locationSignal := f.ZoneRisk > 0 || f.AnomalyRisk > 0
	switch {
	case f.PredictionRisk > 0 && locationSignal:
		return models.AlertSourceCombined
	case f.PredictionRisk > 0:
		return models.AlertSourcePrediction
	default:
		return models.AlertSourceLocation
	}
}

// recordDetections пишет в журнал действия, найденные детекторами. Ошибки записи не прерывают оценку.
func (s *safetyService) recordDetections(ctx context.Context, log *logrus.Entry, assessment *models.RiskAssessment) {
	for _, d := range assessment.Detections {
		if !d.IsAnomaly || d.Action == nil {
			continue
		}
		action := *d.Action
		action.UserID = assessment.UserID
		if err := s.actions.Record(ctx, &action); err != nil {
			log.WithError(err).WithField("action", action.ActionType).Warn("Failed to record safety action")
		}
	}
}

// SubmitVoiceSignal обрабатывает результат анализа голоса. Кризис поднимает голосовую тревогу.
func (s *safetyService) SubmitVoiceSignal(ctx context.Context, in VoiceInput) (*VoiceResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "safety",
		"method":  "SubmitVoiceSignal",
		"user_id": in.UserID,
	})

	if err := validateUserID(in.UserID); err != nil {
		return nil, err
	}
	analysis := voice.Normalize(in.Analysis)
	res := &VoiceResult{Analysis: analysis}
	if !analysis.CrisisDetected {
		log.Debug("No crisis in voice signal")
		return res, nil
	}

	lat, lon, err := s.resolvePosition(ctx, in.UserID, in.Latitude, in.Longitude)
	if err != nil {
		return nil, err
	}

	a, escalated, err := s.alerts.TriggerVoiceCrisis(ctx, alert.Trigger{
		UserID:    in.UserID,
		Latitude:  lat,
		Longitude: lon,
		RiskScore: voiceCrisisScore,
		Reason:    "Voice crisis detected",
	}, voice.Describe(analysis))
	if err != nil {
		log.WithError(err).Error("Failed to trigger voice crisis alert")
		return nil, fmt.Errorf("service: could not trigger voice alert: %w", err)
	}

	res.AlertID = &a.ID
	// существующая тревога другого источника эскалируется, но новой не считается
	res.AlertCreated = escalated && a.Source == models.AlertSourceVoice
	if escalated {
		result := s.dispatch(ctx, log, a)
		res.ContactsNotified = result.Notified
		res.ContactsAttempted = result.Attempted
	}

	log.WithFields(logrus.Fields{
		"alert_id":  a.ID,
		"escalated": escalated,
		"keywords":  analysis.Keywords,
	}).Warn("Voice crisis detected")
	return res, nil
}

// ConfirmSafe закрывает тревогу пользователя или все его открытые тревоги
func (s *safetyService) ConfirmSafe(ctx context.Context, userID string, alertID *uuid.UUID, userContext string) (bool, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "safety",
		"method":  "ConfirmSafe",
		"user_id": userID,
	})
	if err := validateUserID(userID); err != nil {
		return false, err
	}

	resolved, err := s.alerts.ConfirmSafe(ctx, userID, alertID, userContext)
	if err != nil {
		if models.IsNotFound(err) {
			log.WithError(err).Warn("Alert to confirm not found")
			return false, err
		}
		log.WithError(err).Error("Failed to confirm safe")
		return false, fmt.Errorf("service: could not confirm safe: %w", err)
	}
	return resolved > 0, nil
}

// TriggerSOS создает ручную тревогу и оповещает контакты до возврата
func (s *safetyService) TriggerSOS(ctx context.Context, userID string, lat, lon *float64, userContext string) (*SOSResult, error) {
	ctx, span := tracing.StartSpan(ctx, "service.TriggerSOS", tracing.UserID(userID))
	defer span.End()

	log := s.logger.WithFields(logrus.Fields{
		"service": "safety",
		"method":  "TriggerSOS",
		"user_id": userID,
	})
	if err := validateUserID(userID); err != nil {
		return nil, err
	}

	latitude, longitude, err := s.resolvePosition(ctx, userID, lat, lon)
	if err != nil {
		return nil, err
	}

	a, err := s.alerts.TriggerManual(ctx, userID, latitude, longitude, userContext)
	if err != nil {
		tracing.RecordError(span, err)
		log.WithError(err).Error("Failed to create SOS alert")
		return nil, fmt.Errorf("service: could not trigger SOS: %w", err)
	}
	span.SetAttributes(tracing.AlertID(a.ID.String()))

	action := &models.SafetyAction{
		UserID:     userID,
		ActionType: models.ActionPanicButton,
		Latitude:   latitude,
		Longitude:  longitude,
		Timestamp:  a.TriggeredAt,
		Outcome:    models.OutcomeAlertTriggered,
		Notes:      userContext,
	}
	if err := s.actions.Record(ctx, action); err != nil {
		log.WithError(err).Warn("Failed to record panic button action")
	}

	result := s.dispatch(ctx, log, a)
	return &SOSResult{
		Alert:             a,
		ContactsNotified:  result.Notified,
		ContactsAttempted: result.Attempted,
	}, nil
}

// resolvePosition берет переданные координаты, иначе последнюю известную точку
func (s *safetyService) resolvePosition(ctx context.Context, userID string, lat, lon *float64) (float64, float64, error) {
	if lat != nil && lon != nil {
		if err := risk.ValidateInput(*lat, *lon, 0); err != nil {
			return 0, 0, err
		}
		return *lat, *lon, nil
	}
	if lat != nil || lon != nil {
		return 0, 0, &models.ValidationError{Field: "coordinates", Message: "latitude and longitude must be set together"}
	}

	last, err := s.locations.Last(ctx, userID)
	if err != nil {
		if models.IsNotFound(err) {
			return 0, 0, &models.ValidationError{Field: "coordinates", Message: "required: no known location for user"}
		}
		return 0, 0, fmt.Errorf("service: could not resolve last location: %w", err)
	}
	return last.Latitude, last.Longitude, nil
}

// dispatch рассылает оповещения после фиксации тревоги. Ошибки рассылки не меняют тревогу.
func (s *safetyService) dispatch(ctx context.Context, log *logrus.Entry, a *models.Alert) notify.Result {
	contacts, err := s.contacts.ListByUser(ctx, a.UserID)
	if err != nil {
		log.WithError(err).WithField("alert_id", a.ID).Error("Failed to load emergency contacts")
		return notify.Result{}
	}
	result := s.dispatcher.Notify(ctx, a, contacts)
	log.WithFields(logrus.Fields{
		"alert_id":  a.ID,
		"attempted": result.Attempted,
		"notified":  result.Notified,
		"queued":    result.Queued,
	}).Info("Emergency contacts notified")
	return result
}

// RunExpirySweep передает оператору тревоги без ответа и оповещает контакты по ним
func (s *safetyService) RunExpirySweep(ctx context.Context) (int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "safety",
		"method":  "RunExpirySweep",
	})

	escalated, err := s.alerts.SweepExpired(ctx)
	for _, a := range escalated {
		s.dispatch(ctx, log, a)
	}
	if err != nil {
		log.WithError(err).Error("Expiry sweep failed")
		return len(escalated), fmt.Errorf("service: expiry sweep failed: %w", err)
	}
	return len(escalated), nil
}

// OperatorResolve закрывает тревогу решением оператора
func (s *safetyService) OperatorResolve(ctx context.Context, id uuid.UUID, notes string) (*models.Alert, error) {
	return s.operatorAction(ctx, "OperatorResolve", id, func() (*models.Alert, error) {
		return s.alerts.OperatorResolve(ctx, id, notes)
	})
}

// OperatorMarkFalseAlarm помечает тревогу ложной
func (s *safetyService) OperatorMarkFalseAlarm(ctx context.Context, id uuid.UUID, notes string) (*models.Alert, error) {
	return s.operatorAction(ctx, "OperatorMarkFalseAlarm", id, func() (*models.Alert, error) {
		return s.alerts.OperatorMarkFalseAlarm(ctx, id, notes)
	})
}

func (s *safetyService) operatorAction(ctx context.Context, method string, id uuid.UUID, run func() (*models.Alert, error)) (*models.Alert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "safety",
		"method":   method,
		"alert_id": id,
	})
	a, err := run()
	if err != nil {
		if models.IsNotFound(err) || models.IsState(err) {
			log.WithError(err).Warn("Operator action rejected")
			return nil, err
		}
		log.WithError(err).Error("Operator action failed")
		return nil, fmt.Errorf("service: operator action failed: %w", err)
	}
	return a, nil
}

// OperatorAlerts возвращает очередь оператора
func (s *safetyService) OperatorAlerts(ctx context.Context, criticalOnly bool, limit int) (*alert.OperatorQueue, error) {
	if limit < 0 || limit > 500 {
		limit = 100
	}
	q, err := s.alerts.OperatorQueue(ctx, criticalOnly, limit)
	if err != nil {
		return nil, fmt.Errorf("service: could not load operator queue: %w", err)
	}
	return q, nil
}

// GetAlert возвращает тревогу по ID
func (s *safetyService) GetAlert(ctx context.Context, id uuid.UUID) (*models.Alert, error) {
	a, err := s.alerts.Get(ctx, id)
	if err != nil {
		if models.IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("service: could not get alert: %w", err)
	}
	return a, nil
}

// ListZones возвращает все зоны риска
func (s *safetyService) ListZones(_ context.Context) []models.RiskZone {
	return s.zones.All()
}

// NearbyZones возвращает зоны в радиусе, самые опасные первыми
func (s *safetyService) NearbyZones(_ context.Context, lat, lon, radiusMeters float64) ([]zoneindex.Match, error) {
	if err := risk.ValidateInput(lat, lon, 0); err != nil {
		return nil, err
	}
	if radiusMeters <= 0 || radiusMeters > MaxNearbyRadius {
		return nil, &models.ValidationError{Field: "radius_meters", Message: fmt.Sprintf("must be in (0, %.0f]", MaxNearbyRadius)}
	}
	return s.zones.Within(lat, lon, radiusMeters), nil
}
