// Package predictor - клиент внешней статистической модели угроз.
package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/shenikar/safety_alert_system/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// ErrDisabled - модель не настроена
var ErrDisabled = errors.New("predictor is not configured")

const dependencyName = "threat predictor"

// Predictor - модель угроз. Load вызывается один раз при старте процесса,
// Predict сам дозагружает модель, если Load не удался.
type Predictor interface {
	Load(ctx context.Context) error
	Predict(ctx context.Context, lat, lon float64, hour, weekday int) (models.Prediction, error)
}

// ConfidenceFor переводит вероятность в текстовую уверенность
func ConfidenceFor(p float64) string {
	switch {
	case p > 0.8:
		return "Very High"
	case p > 0.6:
		return "High"
	case p > 0.4:
		return "Medium"
	default:
		return "Low"
	}
}

// Weekday возвращает день недели с понедельником = 0
func Weekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

type predictRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Hour      int     `json:"hour"`
	DayOfWeek int     `json:"day_of_week"`
}

type predictResponse struct {
	RiskProbability float64 `json:"risk_probability"`
	Confidence      string  `json:"confidence"`
}

// HTTPPredictor обращается к сервису модели по HTTP
type HTTPPredictor struct {
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger

	// одновременные проверки готовности сливаются в один запрос
	health singleflight.Group
	loaded atomic.Bool
}

// NewHTTPPredictor создает новый HTTPPredictor
func NewHTTPPredictor(baseURL string, timeout time.Duration, logger *logrus.Logger) *HTTPPredictor {
	return &HTTPPredictor{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Load проверяет, что модель готова отвечать. Блокировки на время запроса не держатся.
func (p *HTTPPredictor) Load(ctx context.Context) error {
	if p.loaded.Load() {
		return nil
	}
	_, err, _ := p.health.Do("health", func() (any, error) {
		if p.loaded.Load() {
			return nil, nil
		}
		if err := p.checkHealth(ctx); err != nil {
			return nil, err
		}
		p.loaded.Store(true)
		p.logger.WithField("url", p.baseURL).Info("Threat predictor loaded")
		return nil, nil
	})
	return err
}

func (p *HTTPPredictor) checkHealth(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("failed to create predictor health request: %w", err)
	}
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return &models.DependencyError{Dependency: dependencyName, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &models.DependencyError{
			Dependency: dependencyName,
			Err:        fmt.Errorf("health check returned status %d", resp.StatusCode),
		}
	}
	return nil
}

// Predict запрашивает вероятность угрозы для точки и времени
func (p *HTTPPredictor) Predict(ctx context.Context, lat, lon float64, hour, weekday int) (models.Prediction, error) {
	if err := p.Load(ctx); err != nil {
		return models.Prediction{}, err
	}

	body, err := json.Marshal(predictRequest{Latitude: lat, Longitude: lon, Hour: hour, DayOfWeek: weekday})
	if err != nil {
		return models.Prediction{}, fmt.Errorf("failed to marshal predict request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return models.Prediction{}, fmt.Errorf("failed to create predict request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return models.Prediction{}, &models.DependencyError{Dependency: dependencyName, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.Prediction{}, &models.DependencyError{
			Dependency: dependencyName,
			Err:        fmt.Errorf("predict returned status %d", resp.StatusCode),
		}
	}

	var out predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return models.Prediction{}, &models.DependencyError{Dependency: dependencyName, Err: err}
	}
	if out.RiskProbability < 0 || out.RiskProbability > 1 {
		return models.Prediction{}, &models.DependencyError{
			Dependency: dependencyName,
			Err:        fmt.Errorf("probability %v out of range", out.RiskProbability),
		}
	}
	if out.Confidence == "" {
		out.Confidence = ConfidenceFor(out.RiskProbability)
	}
	return models.Prediction{Probability: out.RiskProbability, Confidence: out.Confidence}, nil
}

// Disabled - модель, которая всегда недоступна. Вклад прогноза в риск будет нулевым.
type Disabled struct{}

func (Disabled) Load(context.Context) error { return nil }

func (Disabled) Predict(context.Context, float64, float64, int, int) (models.Prediction, error) {
	return models.Prediction{}, ErrDisabled
}
