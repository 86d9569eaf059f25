// Package notify оповещает экстренные контакты пользователя о тревоге.
package notify

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shenikar/safety_alert_system/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=gateway.go -destination=mocks/notifier_mock.go -package=mocks

const (
	signatureHeader = "X-Signature"
	dependencyName  = "notification gateway"
)

// Notifier доставляет одно сообщение одному контакту
type Notifier interface {
	Notify(ctx context.Context, contact models.EmergencyContact, message string) error
}

type gatewayMessage struct {
	To      string `json:"to"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

// HTTPGateway отправляет сообщения во внешний шлюз (WhatsApp/SMS) по HTTP
type HTTPGateway struct {
	url        string
	secret     string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewHTTPGateway создает новый HTTPGateway
func NewHTTPGateway(url, secret string, timeout time.Duration, logger *logrus.Logger) *HTTPGateway {
	return &HTTPGateway{
		url:    url,
		secret: secret,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Notify отправляет сообщение; любой ответ вне 2xx считается ошибкой
func (g *HTTPGateway) Notify(ctx context.Context, contact models.EmergencyContact, message string) error {
	if g.url == "" {
		return &models.DependencyError{Dependency: dependencyName, Err: fmt.Errorf("gateway URL is not configured")}
	}

	payload, err := json.Marshal(gatewayMessage{To: contact.Phone, Name: contact.Name, Message: message})
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Подпись HMAC, если задан секрет шлюза
	if g.secret != "" {
		req.Header.Set(signatureHeader, Sign(payload, g.secret))
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return &models.DependencyError{Dependency: dependencyName, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &models.DependencyError{
			Dependency: dependencyName,
			Err:        fmt.Errorf("gateway returned status %d", resp.StatusCode),
		}
	}
	return nil
}

// Sign вычисляет HMAC-SHA256 подпись тела запроса
func Sign(payload []byte, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(payload)
	return hex.EncodeToString(h.Sum(nil))
}
