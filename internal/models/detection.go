package models

// DetectorKind определяет, какой детектор произвел результат
type DetectorKind string

const (
	DetectorStoppedMovement DetectorKind = "stopped_movement"
	DetectorRouteDeviation  DetectorKind = "route_deviation"
	DetectorTimePattern     DetectorKind = "time_pattern"
)

// DetectionResult - результат одного детектора аномалий.
// Контекстные поля заполняются только детектором соответствующего вида.
type DetectionResult struct {
	Detector     DetectorKind `json:"detector"`
	IsAnomaly    bool         `json:"is_anomaly"`
	Reason       string       `json:"reason"`
	RiskIncrease float64      `json:"risk_increase"`

	// stopped_movement
	StoppedSeconds int    `json:"stopped_seconds,omitempty"`
	ZoneName       string `json:"zone_name,omitempty"`

	// route_deviation
	DistanceFromTypical int `json:"distance_from_typical,omitempty"`

	// time_pattern
	CurrentHour  int   `json:"current_hour,omitempty"`
	TypicalHours []int `json:"typical_hours,omitempty"`

	// Action - действие, которое нужно записать в журнал (побочный эффект выполняет вызывающий)
	Action *SafetyAction `json:"-"`
}
