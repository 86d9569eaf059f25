package v1

import (
	"math"

	"github.com/google/uuid"
	"github.com/shenikar/safety_alert_system/internal/alert"
	"github.com/shenikar/safety_alert_system/internal/models"
	"github.com/shenikar/safety_alert_system/internal/service"
	"github.com/shenikar/safety_alert_system/internal/zoneindex"
)

// ToEvaluationResponse преобразует результат оценки в DTO
func ToEvaluationResponse(res *service.EvaluationResult) RiskEvaluationResponse {
	a := res.Assessment
	return RiskEvaluationResponse{
		RiskScore:         a.RiskScore,
		RiskLevel:         a.RiskLevel,
		TotalRisk:         a.TotalRisk,
		Factors:           a.Factors,
		Reason:            a.Reason,
		ShouldAlert:       a.ShouldAlert,
		AlertTriggered:    res.AlertTriggered,
		AlertID:           res.AlertID,
		NearestDangerZone: a.NearestZone,
		Prediction:        a.Prediction,
		Detections:        a.Detections,
		EvaluatedAt:       a.EvaluatedAt,
	}
}

// ToLocationResponse преобразует сохраненную точку и оценку в DTO
func ToLocationResponse(res *service.LocationResult) *LocationResponse {
	return &LocationResponse{
		Sample:     *res.Sample,
		Evaluation: ToEvaluationResponse(&res.EvaluationResult),
	}
}

// ToVoiceSignalInput преобразует DTO в вход сервиса
func ToVoiceSignalInput(req VoiceSignalRequest) service.VoiceInput {
	return service.VoiceInput{
		UserID:    req.UserID,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Analysis: models.AudioAnalysisResult{
			Transcript:     req.Transcript,
			Language:       req.Language,
			CrisisDetected: req.CrisisDetected,
			Keywords:       req.Keywords,
			Confidence:     req.Confidence,
		},
	}
}

// ToVoiceSignalResponse преобразует итог обработки голоса в DTO
func ToVoiceSignalResponse(res *service.VoiceResult) *VoiceSignalResponse {
	return &VoiceSignalResponse{
		CrisisDetected:   res.Analysis.CrisisDetected,
		Keywords:         res.Analysis.Keywords,
		Confidence:       res.Analysis.Confidence,
		AlertCreated:     res.AlertCreated,
		AlertID:          res.AlertID,
		ContactsNotified: res.ContactsNotified,
	}
}

// ParseOptionalAlertID разбирает необязательный идентификатор тревоги (формат уже проверен валидатором)
func ParseOptionalAlertID(raw string) *uuid.UUID {
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}

// ModelToAlertResponse преобразует доменную модель в DTO для ответа
func ModelToAlertResponse(a *models.Alert) *AlertResponse {
	return &AlertResponse{
		ID:                         a.ID,
		UserID:                     a.UserID,
		Level:                      a.Level,
		Source:                     a.Source,
		Latitude:                   a.Latitude,
		Longitude:                  a.Longitude,
		RiskScore:                  a.RiskScore,
		Reason:                     a.Reason,
		Status:                     a.Status,
		TriggeredAt:                a.TriggeredAt,
		ResolvedAt:                 a.ResolvedAt,
		ResponseDeadline:           a.ResponseDeadline,
		LoggedToOperator:           a.LoggedToOperator,
		OperatorNotifiedAt:         a.OperatorNotifiedAt,
		RequiresImmediateAttention: a.RequiresImmediateAttention,
		OperatorNotes:              a.OperatorNotes,
	}
}

// ToOperatorAlertsResponse преобразует очередь оператора в DTO
func ToOperatorAlertsResponse(q *alert.OperatorQueue) *OperatorAlertsResponse {
	alerts := make([]*AlertResponse, len(q.Alerts))
	for i, a := range q.Alerts {
		alerts[i] = ModelToAlertResponse(a)
	}
	return &OperatorAlertsResponse{
		TotalAlerts:    q.Total,
		CriticalAlerts: q.Critical,
		Alerts:         alerts,
	}
}

func zoneResponse(z models.RiskZone) ZoneResponse {
	return ZoneResponse{
		ID:           z.ID,
		Name:         z.Name,
		Latitude:     z.Latitude,
		Longitude:    z.Longitude,
		RiskLevel:    z.RiskLevel,
		RadiusMeters: z.RadiusMeters,
		Description:  z.Description,
	}
}

// ModelsToZoneResponses преобразует слайс зон в слайс DTO
func ModelsToZoneResponses(zones []models.RiskZone) []ZoneResponse {
	responses := make([]ZoneResponse, len(zones))
	for i, z := range zones {
		responses[i] = zoneResponse(z)
	}
	return responses
}

// MatchesToZoneResponses преобразует результаты поиска в радиусе в DTO с расстоянием
func MatchesToZoneResponses(matches []zoneindex.Match) []ZoneResponse {
	responses := make([]ZoneResponse, len(matches))
	for i, m := range matches {
		r := zoneResponse(m.Zone)
		d := math.Round(m.DistanceMeters*10) / 10
		r.DistanceMeters = &d
		responses[i] = r
	}
	return responses
}
