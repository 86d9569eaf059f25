package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type AlertLevel string

const (
	AlertLevelWarning   AlertLevel = "Warning"
	AlertLevelEmergency AlertLevel = "Emergency"
)

type AlertSource string

const (
	AlertSourceLocation   AlertSource = "Location"
	AlertSourceVoice      AlertSource = "Voice"
	AlertSourcePrediction AlertSource = "Prediction"
	AlertSourceManual     AlertSource = "Manual"
	AlertSourceCombined   AlertSource = "Combined"
)

type AlertStatus string

const (
	AlertStatusActive          AlertStatus = "Active"
	AlertStatusPendingResponse AlertStatus = "Pending Response"
	AlertStatusResolved        AlertStatus = "Resolved"
	AlertStatusFalseAlarm      AlertStatus = "False Alarm"
)

// IsTerminal сообщает, что из статуса больше нет переходов
func (s AlertStatus) IsTerminal() bool {
	return s == AlertStatusResolved || s == AlertStatusFalseAlarm
}

// IsOpen сообщает, что тревога еще ждет решения пользователя или оператора
func (s AlertStatus) IsOpen() bool {
	return s == AlertStatusActive || s == AlertStatusPendingResponse
}

// Alert - тревога по пользователю. Записи не удаляются, терминальные статусы окончательны.
type Alert struct {
	ID                         uuid.UUID   `json:"id"`
	UserID                     string      `json:"user_id"`
	Level                      AlertLevel  `json:"alert_level"`
	Source                     AlertSource `json:"alert_source"`
	Latitude                   float64     `json:"latitude"`
	Longitude                  float64     `json:"longitude"`
	RiskScore                  float64     `json:"risk_score"`
	Reason                     string      `json:"reason"`
	Status                     AlertStatus `json:"status"`
	TriggeredAt                time.Time   `json:"triggered_at"`
	ResolvedAt                 *time.Time  `json:"resolved_at,omitempty"`
	ResponseDeadline           *time.Time  `json:"user_response_deadline,omitempty"`
	LoggedToOperator           bool        `json:"logged_to_operator"`
	OperatorNotifiedAt         *time.Time  `json:"operator_notified_at,omitempty"`
	RequiresImmediateAttention bool        `json:"requires_immediate_attention"`
	OperatorNotes              string      `json:"operator_notes,omitempty"`
}

// Note prefixes
const (
	NoteAuto          = "[AUTO]"
	NoteUserConfirmed = "[USER CONFIRMED SAFE]"
	NoteResolved      = "[OPERATOR RESOLVED]"
	NoteFalseAlarm    = "[FALSE ALARM]"
)

// PrependNote добавляет заметку в начало журнала оператора (новые записи сверху)
func (a *Alert) PrependNote(prefix, text string) {
	if text == "" {
		return
	}
	a.OperatorNotes = fmt.Sprintf("%s %s\n%s", prefix, text, a.OperatorNotes)
}

// Escalate помечает тревогу для обязательного просмотра оператором
func (a *Alert) Escalate(at time.Time, reason string) {
	a.LoggedToOperator = true
	a.RequiresImmediateAttention = true
	notifiedAt := at
	a.OperatorNotifiedAt = &notifiedAt
	a.PrependNote(NoteAuto, reason)
}

// Clone возвращает копию тревоги, не разделяющую указатели с оригиналом
func (a *Alert) Clone() *Alert {
	if a == nil {
		return nil
	}
	c := *a
	c.ResolvedAt = cloneTime(a.ResolvedAt)
	c.ResponseDeadline = cloneTime(a.ResponseDeadline)
	c.OperatorNotifiedAt = cloneTime(a.OperatorNotifiedAt)
	return &c
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
