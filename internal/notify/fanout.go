package notify

import (
	"context"
	"time"

	"github.com/shenikar/safety_alert_system/internal/metrics"
	"github.com/shenikar/safety_alert_system/internal/models"
	"github.com/sirupsen/logrus"
)

// Result - итог рассылки по контактам
type Result struct {
	Attempted int
	Notified  int
	Failed    int
	Queued    int
}

// Fanout рассылает сообщение о тревоге контактам по порядку приоритета.
// Состояние тревоги должно быть сохранено до вызова: ошибки доставки его не откатывают.
type Fanout struct {
	notifier     Notifier
	retry        RetryPublisher
	logger       *logrus.Logger
	timeout      time.Duration
	dashboardURL string
	location     *time.Location
}

// NewFanout создает Fanout. retry может быть nil, тогда неудачи не повторяются.
func NewFanout(notifier Notifier, retry RetryPublisher, timeout time.Duration, dashboardURL string, location *time.Location, logger *logrus.Logger) *Fanout {
	return &Fanout{
		notifier:     notifier,
		retry:        retry,
		logger:       logger,
		timeout:      timeout,
		dashboardURL: dashboardURL,
		location:     location,
	}
}

// Notify последовательно оповещает контакты. Общий таймаут прерывает оставшуюся рассылку,
// неотправленные сообщения уходят в очередь повторов.
func (f *Fanout) Notify(ctx context.Context, a *models.Alert, contacts []models.EmergencyContact) Result {
	log := f.logger.WithFields(logrus.Fields{
		"alert_id": a.ID,
		"user_id":  a.UserID,
	})

	var res Result
	if len(contacts) == 0 {
		log.Warn("No emergency contacts for user")
		return res
	}

	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	message := FormatMessage(a, f.dashboardURL, f.location)
	for _, c := range contacts {
		if ctx.Err() != nil {
			res.Failed++
			f.enqueue(a, c, message, &res)
			continue
		}

		res.Attempted++
		if err := f.notifier.Notify(ctx, c, message); err != nil {
			res.Failed++
			metrics.NotificationsTotal.WithLabelValues("failed").Inc()
			log.WithError(err).WithField("contact", c.Name).Error("Failed to alert contact")
			f.enqueue(a, c, message, &res)
			continue
		}
		res.Notified++
		metrics.NotificationsTotal.WithLabelValues("sent").Inc()
		log.WithField("contact", c.Name).Info("Alert sent to contact")
	}
	return res
}

func (f *Fanout) enqueue(a *models.Alert, c models.EmergencyContact, message string, res *Result) {
	if f.retry == nil {
		return
	}
	// Очередь не должна зависеть от истекшего контекста рассылки
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := f.retry.Publish(ctx, RetryJob{
		AlertID:    a.ID,
		Contact:    c,
		Message:    message,
		EnqueuedAt: time.Now().UTC(),
	})
	if err != nil {
		f.logger.WithError(err).WithField("alert_id", a.ID).Error("Failed to queue notification retry")
		return
	}
	res.Queued++
}
