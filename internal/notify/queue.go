package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/safety_alert_system/internal/models"
)

//go:generate mockgen -source=queue.go -destination=mocks/retry_mock.go -package=mocks

const retryQueueKey = "notifications:retry"

// RetryJob - неудавшаяся отправка, ожидающая повтора
type RetryJob struct {
	AlertID    uuid.UUID               `json:"alert_id"`
	Contact    models.EmergencyContact `json:"contact"`
	Message    string                  `json:"message"`
	EnqueuedAt time.Time               `json:"enqueued_at"`
}

// RetryPublisher ставит неудавшиеся отправки в очередь повторов
type RetryPublisher interface {
	Publish(ctx context.Context, job RetryJob) error
}

// RedisRetryQueue - очередь повторов на списке Redis
type RedisRetryQueue struct {
	redisClient *redis.Client
}

// NewRedisRetryQueue создает новый RedisRetryQueue
func NewRedisRetryQueue(client *redis.Client) *RedisRetryQueue {
	return &RedisRetryQueue{
		redisClient: client,
	}
}

// Publish добавляет задачу в левую часть списка, воркер забирает справа
func (q *RedisRetryQueue) Publish(ctx context.Context, job RetryJob) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal retry job: %w", err)
	}
	if err := q.redisClient.LPush(ctx, retryQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish retry job to Redis: %w", err)
	}
	return nil
}
