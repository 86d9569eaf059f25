package models

import (
	"math"
	"time"
)

const (
	// AlertThreshold применяется к немасштабированной сумме факторов
	AlertThreshold = 70.0
	scoreScale     = 1.25
	maxRiskScore   = 100.0
)

// RiskFactors - независимо посчитанные составляющие риска
type RiskFactors struct {
	ZoneRisk        float64 `json:"zone_risk"`
	TimeRisk        float64 `json:"time_risk"`
	SpeedRisk       float64 `json:"speed_risk"`
	AnomalyRisk     float64 `json:"anomaly_risk"`
	VoiceCrisisRisk float64 `json:"voice_crisis_risk"`
	PredictionRisk  float64 `json:"prediction_risk"`
}

// Total возвращает сумму всех факторов
func (f RiskFactors) Total() float64 {
	return f.ZoneRisk + f.TimeRisk + f.SpeedRisk + f.AnomalyRisk + f.VoiceCrisisRisk + f.PredictionRisk
}

// Score возвращает отображаемую оценку min(100, total*1.25)
func (f RiskFactors) Score() float64 {
	return math.Min(maxRiskScore, f.Total()*scoreScale)
}

// ShouldAlert сравнивает с порогом именно немасштабированную сумму
func (f RiskFactors) ShouldAlert() bool {
	return f.Total() > AlertThreshold
}

type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "Low"
	RiskLevelMedium RiskLevel = "Medium"
	RiskLevelHigh   RiskLevel = "High"
)

// RiskLevelFor переводит оценку в текстовый уровень
func RiskLevelFor(score float64) RiskLevel {
	switch {
	case score > 70:
		return RiskLevelHigh
	case score > 40:
		return RiskLevelMedium
	default:
		return RiskLevelLow
	}
}

// Prediction - ответ внешней модели угроз
type Prediction struct {
	Probability float64 `json:"probability"`
	Confidence  string  `json:"confidence"`
}

// NearestZone - ближайшая к пользователю зона риска
type NearestZone struct {
	Name           string  `json:"name"`
	DistanceMeters float64 `json:"distance_meters"`
	RiskLevel      int     `json:"risk_level"`
}

// RiskAssessment - результат одной оценки риска
type RiskAssessment struct {
	UserID      string            `json:"user_id"`
	Latitude    float64           `json:"latitude"`
	Longitude   float64           `json:"longitude"`
	SpeedKmh    float64           `json:"speed_kmh"`
	EvaluatedAt time.Time         `json:"evaluated_at"`
	Factors     RiskFactors       `json:"factors"`
	TotalRisk   float64           `json:"total_risk"`
	RiskScore   float64           `json:"risk_score"`
	RiskLevel   RiskLevel         `json:"risk_level"`
	Reason      string            `json:"reason"`
	ShouldAlert bool              `json:"should_alert"`
	NearestZone *NearestZone      `json:"nearest_danger_zone,omitempty"`
	Prediction  *Prediction       `json:"prediction,omitempty"`
	Detections  []DetectionResult `json:"detections,omitempty"`
}
