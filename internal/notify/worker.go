package notify

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/safety_alert_system/internal/metrics"
	"github.com/sirupsen/logrus"
)

const popTimeout = 5 * time.Second

// RetryWorker забирает задачи из очереди повторов и доставляет их с экспоненциальной задержкой
type RetryWorker struct {
	redisClient *redis.Client
	notifier    Notifier
	logger      *logrus.Logger
	maxRetries  int
	baseDelay   time.Duration
}

// NewRetryWorker создает новый RetryWorker
func NewRetryWorker(redisClient *redis.Client, notifier Notifier, maxRetries int, baseDelay time.Duration, logger *logrus.Logger) *RetryWorker {
	if maxRetries <= 0 {
		maxRetries = 1
	}
	return &RetryWorker{
		redisClient: redisClient,
		notifier:    notifier,
		logger:      logger,
		maxRetries:  maxRetries,
		baseDelay:   baseDelay,
	}
}

// Start запускает горутину обработки очереди
func (w *RetryWorker) Start(ctx context.Context) {
	w.logger.Info("Starting notification retry worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping notification retry worker.")
				return
			default:
				result, err := w.redisClient.BRPop(ctx, popTimeout, retryQueueKey).Result()
				if err != nil {
					if errors.Is(err, redis.Nil) || errors.Is(err, context.Canceled) {
						continue
					}
					w.logger.WithError(err).Error("Failed to pop retry job from Redis")
					sleepCtx(ctx, popTimeout)
					continue
				}

				// result[0] - ключ, result[1] - значение
				var job RetryJob
				if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal retry job")
					continue
				}
				w.Process(ctx, job)
			}
		}
	}()
}

// Process доставляет одну задачу, делая до maxRetries попыток
func (w *RetryWorker) Process(ctx context.Context, job RetryJob) bool {
	log := w.logger.WithFields(logrus.Fields{
		"alert_id":   job.AlertID,
		"contact_id": job.Contact.ID,
	})

	delay := w.baseDelay
	for i := 0; i < w.maxRetries; i++ {
		err := w.notifier.Notify(ctx, job.Contact, job.Message)
		if err == nil {
			metrics.NotificationsTotal.WithLabelValues("retried").Inc()
			log.Info("Notification delivered on retry")
			return true
		}
		left := w.maxRetries - 1 - i
		log.WithError(err).Warnf("Notification retry failed. Retries left: %d", left)
		if left == 0 || !sleepCtx(ctx, delay) {
			break
		}
		delay *= 2
	}

	metrics.NotificationsTotal.WithLabelValues("dropped").Inc()
	log.Errorf("Failed to deliver notification after %d retries", w.maxRetries)
	return false
}

// sleepCtx ждет d или отмены контекста; false - контекст отменен
func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
