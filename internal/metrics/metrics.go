// Package metrics - Prometheus-метрики движка оценки риска и HTTP-слоя.
package metrics

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "safety"

var (
	// HTTPRequestsTotal считает HTTP-запросы по методу, шаблону пути и классу статуса
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests by method, path pattern, and status class.",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration - время обработки запроса
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// EvaluationsTotal считает оценки риска по решению о тревоге
	EvaluationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "risk_evaluations_total",
			Help:      "Total risk evaluations by alert decision.",
		},
		[]string{"should_alert"},
	)

	// RiskScore - распределение итоговых оценок
	RiskScore = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "risk_score",
			Help:      "Distribution of composite risk scores.",
			Buckets:   []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		},
	)

	// AnomaliesTotal считает сработавшие детекторы
	AnomaliesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "anomalies_detected_total",
			Help:      "Anomalies reported by detector.",
		},
		[]string{"detector"},
	)

	// DependencyErrorsTotal считает деградации внешних зависимостей
	DependencyErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dependency_errors_total",
			Help:      "Failed calls to external collaborators by dependency.",
		},
		[]string{"dependency"},
	)

	// AlertsCreatedTotal считает созданные тревоги
	AlertsCreatedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alerts_created_total",
			Help:      "Alerts created by source and level.",
		},
		[]string{"source", "level"},
	)

	// AlertsDeduplicatedTotal считает попытки создания, вернувшие уже открытую тревогу
	AlertsDeduplicatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alerts_deduplicated_total",
			Help:      "Alert creation attempts answered with an existing open alert.",
		},
	)

	// AlertTransitionsTotal считает переходы в терминальные статусы
	AlertTransitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alert_transitions_total",
			Help:      "Terminal alert transitions by target status and actor.",
		},
		[]string{"status", "actor"},
	)

	// AlertsEscalatedTotal считает передачи тревог оператору
	AlertsEscalatedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alerts_escalated_total",
			Help:      "Alerts logged to the operator by escalation path.",
		},
		[]string{"path"},
	)

	// NotificationsTotal считает отправки экстренным контактам
	NotificationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Emergency contact notifications by result.",
		},
		[]string{"result"},
	)
)

func init() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		EvaluationsTotal,
		RiskScore,
		AnomaliesTotal,
		DependencyErrorsTotal,
		AlertsCreatedTotal,
		AlertsDeduplicatedTotal,
		AlertTransitionsTotal,
		AlertsEscalatedTotal,
		NotificationsTotal,
	)
}

// ObserveEvaluation записывает результат одной оценки
func ObserveEvaluation(score float64, shouldAlert bool) {
	EvaluationsTotal.WithLabelValues(strconv.FormatBool(shouldAlert)).Inc()
	RiskScore.Observe(score)
}

// Middleware возвращает gin middleware, который пишет метрики запросов
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		timer := prometheus.NewTimer(HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		))

		c.Next()

		timer.ObserveDuration()
		HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			statusBucket(c.Writer.Status()),
		).Inc()
	}
}

// Handler возвращает обработчик /metrics
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}

func statusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}
