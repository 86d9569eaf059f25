package risk

import (
	"fmt"
	"math"
	"strings"

	"github.com/shenikar/safety_alert_system/internal/detector"
	"github.com/shenikar/safety_alert_system/internal/models"
)

const (
	// VoiceCrisisRisk - вклад открытой голосовой тревоги
	VoiceCrisisRisk = 50.0

	zoneDecayMeters     = 500.0
	zoneDecayWeight     = 0.4
	predictionThreshold = 0.3
	predictionWeight    = 20.0

	zoneReasonMin  = 20.0
	timeReasonMin  = 10.0
	speedReasonMin = 10.0

	lowRiskReason = "Low risk area"
)

// ZoneRisk - полный уровень зоны внутри радиуса, за радиусом линейное затухание до 500 м
func ZoneRisk(zone models.RiskZone, distanceMeters float64) float64 {
	if distanceMeters <= float64(zone.RadiusMeters) {
		return float64(zone.RiskLevel)
	}
	decay := math.Max(0, 1-distanceMeters/zoneDecayMeters)
	return float64(zone.RiskLevel) * zoneDecayWeight * decay
}

// TimeRisk - ночь 22-05 дает 20, вечер 18-21 дает 10, остальное 5
func TimeRisk(hour int) float64 {
	switch {
	case detector.IsLateNight(hour):
		return 20
	case hour >= 18 && hour <= 21:
		return 10
	default:
		return 5
	}
}

// SpeedRisk - остановка или очень медленное движение подозрительны
func SpeedRisk(speedKmh float64) float64 {
	switch {
	case speedKmh < 2:
		return 20
	case speedKmh < 5:
		return 10
	default:
		return 0
	}
}

// PredictionRisk учитывает только прогнозы выше порога 0.3
func PredictionRisk(probability float64) float64 {
	if probability > predictionThreshold {
		return probability * predictionWeight
	}
	return 0
}

// BuildReason собирает описание из значимых факторов
func BuildReason(f models.RiskFactors, zone *models.NearestZone, detections []models.DetectionResult, pred *models.Prediction) string {
	var parts []string
	if f.ZoneRisk > zoneReasonMin && zone != nil {
		parts = append(parts, fmt.Sprintf("Near %s (risk: %d)", zone.Name, zone.RiskLevel))
	}
	if f.TimeRisk > timeReasonMin {
		parts = append(parts, "Night time")
	}
	if f.SpeedRisk > speedReasonMin {
		parts = append(parts, "Slow/stopped movement")
	}
	for _, d := range detections {
		if d.IsAnomaly {
			parts = append(parts, d.Reason)
		}
	}
	if f.PredictionRisk > 0 && pred != nil {
		parts = append(parts, fmt.Sprintf("Threat model: %.0f%% probability (%s confidence)", pred.Probability*100, pred.Confidence))
	}
	if len(parts) == 0 {
		return lowRiskReason
	}
	return strings.Join(parts, " + ")
}
