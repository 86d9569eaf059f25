// Package risk сводит независимые сигналы риска в одну оценку.
package risk

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/shenikar/safety_alert_system/internal/detector"
	"github.com/shenikar/safety_alert_system/internal/geo"
	"github.com/shenikar/safety_alert_system/internal/history"
	"github.com/shenikar/safety_alert_system/internal/metrics"
	"github.com/shenikar/safety_alert_system/internal/models"
	"github.com/shenikar/safety_alert_system/internal/predictor"
	"github.com/shenikar/safety_alert_system/internal/tracing"
	"github.com/sirupsen/logrus"
)

// ZoneIndex - поиск зон риска рядом с точкой
type ZoneIndex interface {
	detector.ZoneLocator
	Nearest(lat, lon float64) (models.RiskZone, float64, bool)
}

// VoiceSignals сообщает о свежих голосовых тревогах пользователя
type VoiceSignals interface {
	HasActiveVoiceAlert(ctx context.Context, userID string, at time.Time) (bool, error)
}

// Aggregator вычисляет факторы риска для пользователя в точке
type Aggregator struct {
	zones     ZoneIndex
	history   history.Reader
	voice     VoiceSignals
	predictor predictor.Predictor
	location  *time.Location
	logger    *logrus.Logger
}

// NewAggregator создает новый Aggregator. Часы суток считаются в поясе location.
func NewAggregator(
	zones ZoneIndex,
	hist history.Reader,
	voice VoiceSignals,
	pred predictor.Predictor,
	location *time.Location,
	logger *logrus.Logger,
) *Aggregator {
	if location == nil {
		location = time.UTC
	}
	return &Aggregator{
		zones:     zones,
		history:   hist,
		voice:     voice,
		predictor: pred,
		location:  location,
		logger:    logger,
	}
}

// ValidateInput проверяет координаты и скорость
func ValidateInput(lat, lon, speedKmh float64) error {
	if !geo.ValidCoordinates(lat, lon) {
		return &models.ValidationError{Field: "coordinates", Message: "must be latitude in [-90, 90] and longitude in [-180, 180]"}
	}
	if math.IsNaN(speedKmh) || math.IsInf(speedKmh, 0) || speedKmh < 0 {
		return &models.ValidationError{Field: "speed_kmh", Message: "must be a non-negative number"}
	}
	return nil
}

// Evaluate оценивает риск. Недоступные зависимости дают нулевой вклад и не прерывают оценку.
func (a *Aggregator) Evaluate(ctx context.Context, userID string, lat, lon, speedKmh float64, now time.Time) (*models.RiskAssessment, error) {
	if err := ValidateInput(lat, lon, speedKmh); err != nil {
		return nil, err
	}

	ctx, span := tracing.StartSpan(ctx, "risk.Evaluate", tracing.UserID(userID))
	defer span.End()

	log := a.logger.WithFields(logrus.Fields{
		"service": "RiskAggregator",
		"method":  "Evaluate",
		"user_id": userID,
	})

	local := now.In(a.location)
	out := &models.RiskAssessment{
		UserID:      userID,
		Latitude:    lat,
		Longitude:   lon,
		SpeedKmh:    speedKmh,
		EvaluatedAt: now,
	}
	f := &out.Factors

	if zone, distance, ok := a.zones.Nearest(lat, lon); ok {
		f.ZoneRisk = ZoneRisk(zone, distance)
		out.NearestZone = &models.NearestZone{
			Name:           zone.Name,
			DistanceMeters: math.Round(distance*10) / 10,
			RiskLevel:      zone.RiskLevel,
		}
	}
	f.TimeRisk = TimeRisk(local.Hour())
	f.SpeedRisk = SpeedRisk(speedKmh)

	window, err := history.LoadWindow(ctx, a.history, userID, now)
	if err != nil {
		metrics.DependencyErrorsTotal.WithLabelValues("location_history").Inc()
		log.WithError(err).Warn("Location history unavailable, skipping anomaly detection")
	} else {
		out.Detections = detector.RunAll(local, window, a.zones)
		f.AnomalyRisk = detector.TotalRisk(out.Detections)
		for _, d := range out.Detections {
			if d.IsAnomaly {
				metrics.AnomaliesTotal.WithLabelValues(string(d.Detector)).Inc()
			}
		}
	}

	active, err := a.voice.HasActiveVoiceAlert(ctx, userID, now)
	if err != nil {
		metrics.DependencyErrorsTotal.WithLabelValues("voice_alerts").Inc()
		log.WithError(err).Warn("Voice alert lookup failed, voice risk set to zero")
	} else if active {
		f.VoiceCrisisRisk = VoiceCrisisRisk
	}

	pred, err := a.predictor.Predict(ctx, lat, lon, local.Hour(), predictor.Weekday(local))
	switch {
	case err == nil:
		out.Prediction = &pred
		f.PredictionRisk = PredictionRisk(pred.Probability)
	case errors.Is(err, predictor.ErrDisabled):
	default:
		metrics.DependencyErrorsTotal.WithLabelValues("predictor").Inc()
		log.WithError(err).Warn("Threat prediction failed, prediction risk set to zero")
	}

	out.TotalRisk = f.Total()
	out.RiskScore = f.Score()
	out.ShouldAlert = f.ShouldAlert()
	out.RiskLevel = models.RiskLevelFor(out.RiskScore)
	out.Reason = BuildReason(*f, out.NearestZone, out.Detections, out.Prediction)

	metrics.ObserveEvaluation(out.RiskScore, out.ShouldAlert)
	span.SetAttributes(tracing.RiskScore(out.RiskScore))

	log.WithFields(logrus.Fields{
		"total_risk":   out.TotalRisk,
		"risk_score":   out.RiskScore,
		"should_alert": out.ShouldAlert,
	}).Debug("Risk evaluated")
	return out, nil
}
