package v1

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/safety_alert_system/internal/config"
	"github.com/shenikar/safety_alert_system/internal/models"
	"github.com/shenikar/safety_alert_system/internal/service"
	"github.com/sirupsen/logrus"
)

const defaultNearbyRadius = 2000.0

type Handler struct {
	safetyService service.SafetyService
	logger        *logrus.Logger
	validate      *validator.Validate
	cfg           *config.Config
}

func NewHandler(safetyService service.SafetyService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		safetyService: safetyService,
		logger:        logger,
		validate:      validator.New(),
		cfg:           cfg,
	}
}

// bindAndValidate разбирает тело запроса и проверяет его валидатором
func (h *Handler) bindAndValidate(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// writeError переводит ошибки сервиса в HTTP-статусы
func (h *Handler) writeError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case models.IsValidation(err):
		log.WithError(err).Warn("Request rejected")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case models.IsNotFound(err):
		log.WithError(err).Warn("Resource not found")
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case models.IsState(err):
		log.WithError(err).Warn("Transition rejected")
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case models.IsDependency(err):
		log.WithError(err).Error("Dependency unavailable")
		c.JSON(http.StatusBadGateway, gin.H{"error": "dependency unavailable"})
	default:
		log.WithError(err).Error("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func parseAlertID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert ID"})
		return uuid.Nil, false
	}
	return id, true
}

// @Summary Submit a location sample
// @Description Store a GPS sample and evaluate the user's risk at that point. Requires API key.
// @Tags Location
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param location body SubmitLocationRequest true "Location sample"
// @Success 201 {object} LocationResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /locations [post]
func (h *Handler) submitLocation(c *gin.Context) {
	var input SubmitLocationRequest
	log := h.logger.WithField("method", "submitLocation")
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	in := service.LocationInput{
		UserID:     input.UserID,
		Latitude:   *input.Latitude,
		Longitude:  *input.Longitude,
		SpeedKmh:   input.SpeedKmh,
		BatteryPct: input.BatteryPct,
	}
	if input.Timestamp != nil {
		in.Timestamp = *input.Timestamp
	}

	res, err := h.safetyService.SubmitLocation(c.Request.Context(), in)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ToLocationResponse(res))
}

// @Summary Submit a voice analysis result
// @Description Submit the result of voice analysis. A transcript without a verdict is checked for crisis keywords. Requires API key.
// @Tags Voice
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param signal body VoiceSignalRequest true "Voice analysis result"
// @Success 200 {object} VoiceSignalResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /voice-signals [post]
func (h *Handler) submitVoiceSignal(c *gin.Context) {
	var input VoiceSignalRequest
	log := h.logger.WithField("method", "submitVoiceSignal")
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	res, err := h.safetyService.SubmitVoiceSignal(c.Request.Context(), ToVoiceSignalInput(input))
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ToVoiceSignalResponse(res))
}

// @Summary Evaluate risk
// @Description Evaluate the user's risk at a point and raise an alert when the threshold is crossed. Requires API key.
// @Tags Risk
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body EvaluateRiskRequest true "Risk evaluation request"
// @Success 200 {object} RiskEvaluationResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /risk/evaluate [post]
func (h *Handler) evaluateRisk(c *gin.Context) {
	var input EvaluateRiskRequest
	log := h.logger.WithField("method", "evaluateRisk")
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	res, err := h.safetyService.EvaluateRisk(c.Request.Context(), input.UserID, *input.Latitude, *input.Longitude, input.SpeedKmh)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ToEvaluationResponse(res))
}

// @Summary Confirm the user is safe
// @Description Resolve one alert, or every open alert of the user when alert_id is omitted. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body ConfirmSafeRequest true "Confirm safe request"
// @Success 200 {object} ConfirmSafeResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Alert not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/confirm-safe [post]
func (h *Handler) confirmSafe(c *gin.Context) {
	var input ConfirmSafeRequest
	log := h.logger.WithField("method", "confirmSafe")
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	cancelled, err := h.safetyService.ConfirmSafe(c.Request.Context(), input.UserID, ParseOptionalAlertID(input.AlertID), input.Context)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ConfirmSafeResponse{AlertCancelled: cancelled})
}

// @Summary Trigger SOS
// @Description Raise a manual emergency alert and notify emergency contacts before responding. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body SOSRequest true "SOS request"
// @Success 201 {object} SOSResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/sos [post]
func (h *Handler) triggerSOS(c *gin.Context) {
	var input SOSRequest
	log := h.logger.WithField("method", "triggerSOS")
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	res, err := h.safetyService.TriggerSOS(c.Request.Context(), input.UserID, input.Latitude, input.Longitude, input.Context)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, SOSResponse{
		AlertID:           res.Alert.ID,
		ContactsNotified:  res.ContactsNotified,
		ContactsAttempted: res.ContactsAttempted,
		Message:           "Emergency alert sent to " + strconv.Itoa(res.ContactsNotified) + " contacts",
	})
}

// @Summary Get alert by ID
// @Description Get a single alert by its ID. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Alert ID"
// @Success 200 {object} AlertResponse
// @Failure 400 {object} map[string]string "Invalid alert ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Alert not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/{id} [get]
func (h *Handler) getAlert(c *gin.Context) {
	id, ok := parseAlertID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getAlert").WithField("id", id)

	a, err := h.safetyService.GetAlert(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToAlertResponse(a))
}

// @Summary List risk zones
// @Description Get all known risk zones. Requires API key.
// @Tags Zones
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} ZoneResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /zones [get]
func (h *Handler) listZones(c *gin.Context) {
	c.JSON(http.StatusOK, ModelsToZoneResponses(h.safetyService.ListZones(c.Request.Context())))
}

// @Summary Risk zones near a point
// @Description Get risk zones within a radius of a point, most dangerous first. Requires API key.
// @Tags Zones
// @Produce json
// @Security ApiKeyAuth
// @Param latitude query number true "Latitude"
// @Param longitude query number true "Longitude"
// @Param radius_meters query number false "Search radius in meters" default(2000)
// @Success 200 {array} ZoneResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /zones/nearby [get]
func (h *Handler) nearbyZones(c *gin.Context) {
	log := h.logger.WithField("method", "nearbyZones")

	lat, errLat := strconv.ParseFloat(c.Query("latitude"), 64)
	lon, errLon := strconv.ParseFloat(c.Query("longitude"), 64)
	if errLat != nil || errLon != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "latitude and longitude query parameters are required"})
		return
	}
	radius := defaultNearbyRadius
	if raw := c.Query("radius_meters"); raw != "" {
		r, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid radius_meters"})
			return
		}
		radius = r
	}

	matches, err := h.safetyService.NearbyZones(c.Request.Context(), lat, lon, radius)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, MatchesToZoneResponses(matches))
}

// @Summary Operator alert queue
// @Description Get alerts handed to the operator and not yet closed, newest first. Requires operator API key.
// @Tags Operator
// @Produce json
// @Security ApiKeyAuth
// @Param critical_only query bool false "Only alerts requiring immediate attention"
// @Param limit query int false "Maximum number of alerts" default(100)
// @Success 200 {object} OperatorAlertsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /operator/alerts [get]
func (h *Handler) operatorAlerts(c *gin.Context) {
	log := h.logger.WithField("method", "operatorAlerts")
	criticalOnly, _ := strconv.ParseBool(c.DefaultQuery("critical_only", "false"))
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil {
		limit = 100
	}

	q, err := h.safetyService.OperatorAlerts(c.Request.Context(), criticalOnly, limit)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ToOperatorAlertsResponse(q))
}

// @Summary Resolve an alert
// @Description Close an alert as resolved by the operator. Requires operator API key.
// @Tags Operator
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Alert ID"
// @Param request body OperatorNoteRequest false "Operator notes"
// @Success 200 {object} AlertResponse
// @Failure 400 {object} map[string]string "Invalid alert ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Alert not found"
// @Failure 409 {object} map[string]string "Alert already closed"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /operator/alerts/{id}/resolve [post]
func (h *Handler) operatorResolve(c *gin.Context) {
	h.operatorClose(c, "operatorResolve", h.safetyService.OperatorResolve)
}

// @Summary Mark an alert as false alarm
// @Description Close an alert as a false alarm. Requires operator API key.
// @Tags Operator
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Alert ID"
// @Param request body OperatorNoteRequest false "Operator notes"
// @Success 200 {object} AlertResponse
// @Failure 400 {object} map[string]string "Invalid alert ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Alert not found"
// @Failure 409 {object} map[string]string "Alert already closed"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /operator/alerts/{id}/false-alarm [post]
func (h *Handler) operatorFalseAlarm(c *gin.Context) {
	h.operatorClose(c, "operatorFalseAlarm", h.safetyService.OperatorMarkFalseAlarm)
}

type closeFunc func(ctx context.Context, id uuid.UUID, notes string) (*models.Alert, error)

func (h *Handler) operatorClose(c *gin.Context, method string, closeAlert closeFunc) {
	id, ok := parseAlertID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", method).WithField("id", id)

	var input OperatorNoteRequest
	if c.Request.ContentLength > 0 && !h.bindAndValidate(c, log, &input) {
		return
	}

	a, err := closeAlert(c.Request.Context(), id, input.Notes)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToAlertResponse(a))
}

// @Summary Run expiry sweep
// @Description Hand over to the operator every alert whose response deadline passed. Requires operator API key.
// @Tags Operator
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} SweepResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /operator/alerts/sweep [post]
func (h *Handler) runSweep(c *gin.Context) {
	log := h.logger.WithField("method", "runSweep")

	count, err := h.safetyService.RunExpirySweep(c.Request.Context())
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, SweepResponse{Escalated: count})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
