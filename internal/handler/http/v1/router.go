package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)

	user := api.Group("", APIKeyAuthMiddleware(h.cfg.APIKeys, h.logger))
	{
		user.POST("/locations", h.submitLocation)
		user.POST("/voice-signals", h.submitVoiceSignal)
		user.POST("/risk/evaluate", h.evaluateRisk)
		user.POST("/alerts/confirm-safe", h.confirmSafe)
		user.POST("/alerts/sos", h.triggerSOS)
		user.GET("/alerts/:id", h.getAlert)
		user.GET("/zones", h.listZones)
		user.GET("/zones/nearby", h.nearbyZones)
	}

	// Маршруты оператора, отдельный набор ключей
	operator := api.Group("/operator", APIKeyAuthMiddleware(h.cfg.OperatorAPIKeys, h.logger))
	{
		operator.GET("/alerts", h.operatorAlerts)
		operator.POST("/alerts/:id/resolve", h.operatorResolve)
		operator.POST("/alerts/:id/false-alarm", h.operatorFalseAlarm)
		operator.POST("/alerts/sweep", h.runSweep)
	}
}
