package models

import "time"

// SafetyActionType - тип действия пользователя, зафиксированного движком
type SafetyActionType string

const (
	ActionPanicButton    SafetyActionType = "Panic Button"
	ActionRouteIgnored   SafetyActionType = "Route Ignored"
	ActionWarningIgnored SafetyActionType = "Warning Ignored"
)

const (
	OutcomeSafe           = "Safe"
	OutcomeAlertTriggered = "Alert Triggered"
	OutcomeUnknown        = "Unknown"
)

// SafetyAction - запись журнала действий пользователя
type SafetyAction struct {
	ID         int64            `json:"id"`
	UserID     string           `json:"user_id"`
	ActionType SafetyActionType `json:"action_type"`
	Latitude   float64          `json:"latitude"`
	Longitude  float64          `json:"longitude"`
	Timestamp  time.Time        `json:"timestamp"`
	Outcome    string           `json:"outcome"`
	Notes      string           `json:"notes,omitempty"`
}
