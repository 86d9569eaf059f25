package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/safety_alert_system/internal/models"
)

// SubmitLocationRequest DTO для отправки точки трека
// @Description DTO для отправки точки трека
type SubmitLocationRequest struct {
	UserID     string     `json:"user_id" validate:"required,max=128"`
	Latitude   *float64   `json:"latitude" validate:"required,latitude"`
	Longitude  *float64   `json:"longitude" validate:"required,longitude"`
	SpeedKmh   float64    `json:"speed_kmh" validate:"gte=0,lte=400"`
	BatteryPct int        `json:"battery_pct" validate:"gte=0,lte=100"`
	Timestamp  *time.Time `json:"timestamp,omitempty"`
}

// EvaluateRiskRequest DTO для оценки риска без сохранения точки
// @Description DTO для оценки риска без сохранения точки
type EvaluateRiskRequest struct {
	UserID    string   `json:"user_id" validate:"required,max=128"`
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
	SpeedKmh  float64  `json:"speed_kmh" validate:"gte=0,lte=400"`
}

// VoiceSignalRequest DTO с результатом анализа голоса
// @Description DTO с результатом анализа голоса
type VoiceSignalRequest struct {
	UserID         string   `json:"user_id" validate:"required,max=128"`
	Latitude       *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude      *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
	Transcript     string   `json:"transcript" validate:"max=10000"`
	Language       string   `json:"language,omitempty"`
	CrisisDetected bool     `json:"crisis_detected"`
	Keywords       []string `json:"keywords,omitempty"`
	Confidence     float64  `json:"confidence" validate:"gte=0,lte=1"`
}

// ConfirmSafeRequest DTO для подтверждения безопасности
// @Description DTO для подтверждения безопасности. Без alert_id закрываются все открытые тревоги.
type ConfirmSafeRequest struct {
	UserID  string `json:"user_id" validate:"required,max=128"`
	AlertID string `json:"alert_id,omitempty" validate:"omitempty,uuid"`
	Context string `json:"context,omitempty" validate:"max=1000"`
}

// SOSRequest DTO для ручной тревоги
// @Description DTO для ручной тревоги. Без координат берется последняя известная точка.
type SOSRequest struct {
	UserID    string   `json:"user_id" validate:"required,max=128"`
	Latitude  *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
	Context   string   `json:"context,omitempty" validate:"max=1000"`
}

// OperatorNoteRequest DTO с заметкой оператора
// @Description DTO с заметкой оператора
type OperatorNoteRequest struct {
	Notes string `json:"notes,omitempty" validate:"max=2000"`
}

// RiskEvaluationResponse DTO с результатом оценки риска
// @Description DTO с результатом оценки риска
type RiskEvaluationResponse struct {
	RiskScore         float64                  `json:"risk_score"`
	RiskLevel         models.RiskLevel         `json:"risk_level"`
	TotalRisk         float64                  `json:"total_risk"`
	Factors           models.RiskFactors       `json:"factors"`
	Reason            string                   `json:"reason"`
	ShouldAlert       bool                     `json:"should_alert"`
	AlertTriggered    bool                     `json:"alert_triggered"`
	AlertID           *uuid.UUID               `json:"alert_id,omitempty"`
	NearestDangerZone *models.NearestZone      `json:"nearest_danger_zone,omitempty"`
	Prediction        *models.Prediction       `json:"prediction,omitempty"`
	Detections        []models.DetectionResult `json:"detections,omitempty"`
	EvaluatedAt       time.Time                `json:"evaluated_at"`
}

// LocationResponse DTO с сохраненной точкой и оценкой риска
// @Description DTO с сохраненной точкой и оценкой риска
type LocationResponse struct {
	Sample     models.LocationSample  `json:"sample"`
	Evaluation RiskEvaluationResponse `json:"evaluation"`
}

// VoiceSignalResponse DTO с итогом обработки голосового сигнала
// @Description DTO с итогом обработки голосового сигнала
type VoiceSignalResponse struct {
	CrisisDetected   bool       `json:"crisis_detected"`
	Keywords         []string   `json:"keywords,omitempty"`
	Confidence       float64    `json:"confidence"`
	AlertCreated     bool       `json:"alert_created"`
	AlertID          *uuid.UUID `json:"alert_id,omitempty"`
	ContactsNotified int        `json:"contacts_notified"`
}

// ConfirmSafeResponse DTO с итогом подтверждения безопасности
// @Description DTO с итогом подтверждения безопасности
type ConfirmSafeResponse struct {
	AlertCancelled bool `json:"alert_cancelled"`
}

// SOSResponse DTO с итогом ручной тревоги
// @Description DTO с итогом ручной тревоги
type SOSResponse struct {
	AlertID           uuid.UUID `json:"alert_id"`
	ContactsNotified  int       `json:"contacts_notified"`
	ContactsAttempted int       `json:"contacts_attempted"`
	Message           string    `json:"message"`
}

// AlertResponse DTO с информацией о тревоге
// @Description DTO с информацией о тревоге
type AlertResponse struct {
	ID                         uuid.UUID          `json:"id"`
	UserID                     string             `json:"user_id"`
	Level                      models.AlertLevel  `json:"alert_level"`
	Source                     models.AlertSource `json:"alert_source"`
	Latitude                   float64            `json:"latitude"`
	Longitude                  float64            `json:"longitude"`
	RiskScore                  float64            `json:"risk_score"`
	Reason                     string             `json:"reason"`
	Status                     models.AlertStatus `json:"status"`
	TriggeredAt                time.Time          `json:"triggered_at"`
	ResolvedAt                 *time.Time         `json:"resolved_at,omitempty"`
	ResponseDeadline           *time.Time         `json:"user_response_deadline,omitempty"`
	LoggedToOperator           bool               `json:"logged_to_operator"`
	OperatorNotifiedAt         *time.Time         `json:"operator_notified_at,omitempty"`
	RequiresImmediateAttention bool               `json:"requires_immediate_attention"`
	OperatorNotes              string             `json:"operator_notes,omitempty"`
}

// OperatorAlertsResponse DTO с очередью оператора
// @Description DTO с очередью оператора
type OperatorAlertsResponse struct {
	TotalAlerts    int              `json:"total_alerts"`
	CriticalAlerts int              `json:"critical_alerts"`
	Alerts         []*AlertResponse `json:"alerts"`
}

// SweepResponse DTO с числом переданных оператору тревог
// @Description DTO с числом переданных оператору тревог
type SweepResponse struct {
	Escalated int `json:"escalated"`
}

// ZoneResponse DTO с информацией о зоне риска
// @Description DTO с информацией о зоне риска
type ZoneResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	RiskLevel      int       `json:"risk_level"`
	RadiusMeters   int       `json:"radius_meters"`
	Description    string    `json:"description,omitempty"`
	DistanceMeters *float64  `json:"distance_meters,omitempty"`
}
