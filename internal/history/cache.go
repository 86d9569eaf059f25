package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/safety_alert_system/internal/models"
	"github.com/sirupsen/logrus"
)

const recentKeyTTL = 24 * time.Hour

// pushScript добавляет точку в голову кэша, только если с момента резервирования версии
// кэш никто не трогал и точка не старше головы. Иначе кэш сбрасывается.
// KEYS: список, метаданные. ARGV: версия, время точки (мкс), точка, размер окна, TTL (с).
var pushScript = redis.NewScript(`
local ver = redis.call('HGET', KEYS[2], 'ver') or '0'
local head = redis.call('HGET', KEYS[2], 'head')
redis.call('EXPIRE', KEYS[2], ARGV[5])
if ver ~= ARGV[1] or not head or tonumber(head) > tonumber(ARGV[2]) then
	redis.call('DEL', KEYS[1])
	redis.call('HDEL', KEYS[2], 'head')
	return 0
end
redis.call('LPUSH', KEYS[1], ARGV[3])
redis.call('LTRIM', KEYS[1], 0, tonumber(ARGV[4]) - 1)
redis.call('EXPIRE', KEYS[1], ARGV[5])
redis.call('HSET', KEYS[2], 'head', ARGV[2])
return 1
`)

// warmScript заменяет кэш снимком основного хранилища, если версия не менялась с момента чтения.
// KEYS: список, метаданные. ARGV: версия, время головы снимка (мкс), TTL (с), точки от новых к старым.
var warmScript = redis.NewScript(`
local ver = redis.call('HGET', KEYS[2], 'ver') or '0'
if ver ~= ARGV[1] then
	return 0
end
redis.call('DEL', KEYS[1])
if #ARGV > 3 then
	redis.call('RPUSH', KEYS[1], unpack(ARGV, 4))
	redis.call('EXPIRE', KEYS[1], ARGV[3])
end
redis.call('HINCRBY', KEYS[2], 'ver', 1)
redis.call('HSET', KEYS[2], 'head', ARGV[2])
redis.call('EXPIRE', KEYS[2], ARGV[3])
return 1
`)

// CachedStore держит в Redis последние RecentWindow точек каждого пользователя поверх
// основного хранилища. Запись идет сначала в основное хранилище, затем в кэш.
//
// Кэш всегда префикс истории. Метаданные хранят время головы и версию: каждая запись
// и каждый прогрев увеличивают версию, и при гонке кэш сбрасывается, а не дописывается.
type CachedStore struct {
	durable     Store
	redisClient *redis.Client
	logger      *logrus.Logger
}

// NewCachedStore создает CachedStore
func NewCachedStore(durable Store, redisClient *redis.Client, logger *logrus.Logger) *CachedStore {
	return &CachedStore{
		durable:     durable,
		redisClient: redisClient,
		logger:      logger,
	}
}

// ключи одного пользователя попадают в один слот кластера
func recentKey(userID string) string {
	return fmt.Sprintf("locations:recent:{%s}", userID)
}

func recentMetaKey(userID string) string {
	return fmt.Sprintf("locations:recent:{%s}:meta", userID)
}

func cacheTTLSeconds() int64 {
	return int64(recentKeyTTL / time.Second)
}

// Append сохраняет точку и обновляет кэш последних точек
func (s *CachedStore) Append(ctx context.Context, sample *models.LocationSample) error {
	// версия резервируется до записи, чтобы параллельный прогрев не потерял эту точку
	ver, verErr := s.redisClient.HIncrBy(ctx, recentMetaKey(sample.UserID), "ver", 1).Result()

	if err := s.durable.Append(ctx, sample); err != nil {
		return err
	}

	if verErr != nil {
		s.logger.WithError(verErr).WithField("user_id", sample.UserID).Warn("Failed to reserve recent locations cache version")
		s.invalidate(ctx, sample.UserID)
		return nil
	}

	payload, err := json.Marshal(sample)
	if err != nil {
		return fmt.Errorf("failed to marshal location sample for cache: %w", err)
	}

	keys := []string{recentKey(sample.UserID), recentMetaKey(sample.UserID)}
	err = pushScript.Run(ctx, s.redisClient, keys,
		ver, sample.Timestamp.UnixMicro(), payload, RecentWindow, cacheTTLSeconds()).Err()
	if err != nil {
		// Кэш не критичен: при промахе Recent прочитает основное хранилище
		s.logger.WithError(err).WithField("user_id", sample.UserID).Warn("Failed to update recent locations cache")
		s.invalidate(ctx, sample.UserID)
	}
	return nil
}

// Recent отдает последние точки из кэша, при нехватке - из основного хранилища
func (s *CachedStore) Recent(ctx context.Context, userID string, limit int) ([]models.LocationSample, error) {
	if limit <= 0 {
		return nil, nil
	}
	if limit <= RecentWindow {
		cached, err := s.fromCache(ctx, userID, limit)
		if err != nil {
			s.logger.WithError(err).WithField("user_id", userID).Warn("Failed to read recent locations cache")
		} else if len(cached) == limit {
			return cached, nil
		}
	}

	ver, verErr := s.cacheVersion(ctx, userID)

	samples, err := s.durable.Recent(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	if verErr == nil && limit >= RecentWindow {
		s.warm(ctx, userID, ver, samples)
	}
	return samples, nil
}

// Last возвращает последнюю известную точку пользователя
func (s *CachedStore) Last(ctx context.Context, userID string) (*models.LocationSample, error) {
	samples, err := s.Recent(ctx, userID, 1)
	if err != nil {
		return nil, err
	}
	if len(samples) == 0 {
		return nil, &models.NotFoundError{Entity: "location", ID: userID}
	}
	return &samples[0], nil
}

// Since всегда читает основное хранилище, кэш держит только хвост истории
func (s *CachedStore) Since(ctx context.Context, userID string, since time.Time) ([]models.LocationSample, error) {
	return s.durable.Since(ctx, userID, since)
}

func (s *CachedStore) fromCache(ctx context.Context, userID string, limit int) ([]models.LocationSample, error) {
	raw, err := s.redisClient.LRange(ctx, recentKey(userID), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read recent locations from cache: %w", err)
	}
	samples := make([]models.LocationSample, 0, len(raw))
	for _, item := range raw {
		var sample models.LocationSample
		if err := json.Unmarshal([]byte(item), &sample); err != nil {
			return nil, fmt.Errorf("failed to unmarshal cached location sample: %w", err)
		}
		samples = append(samples, sample)
	}
	return samples, nil
}

func (s *CachedStore) cacheVersion(ctx context.Context, userID string) (string, error) {
	ver, err := s.redisClient.HGet(ctx, recentMetaKey(userID), "ver").Result()
	if errors.Is(err, redis.Nil) {
		return "0", nil
	}
	return ver, err
}

// warm заполняет кэш из основного хранилища (samples от новых к старым).
// Снимок не пишется, если после чтения версии кэш успел измениться.
func (s *CachedStore) warm(ctx context.Context, userID, ver string, samples []models.LocationSample) {
	if len(samples) > RecentWindow {
		samples = samples[:RecentWindow]
	}
	var head int64
	if len(samples) > 0 {
		head = samples[0].Timestamp.UnixMicro()
	}
	args := make([]interface{}, 0, len(samples)+3)
	args = append(args, ver, head, cacheTTLSeconds())
	for _, sample := range samples {
		payload, err := json.Marshal(sample)
		if err != nil {
			return
		}
		args = append(args, payload)
	}

	keys := []string{recentKey(userID), recentMetaKey(userID)}
	if err := warmScript.Run(ctx, s.redisClient, keys, args...).Err(); err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Warn("Failed to warm recent locations cache")
	}
}

// invalidate сбрасывает кэш и поднимает версию, чтобы незавершенный прогрев не записал старый снимок
func (s *CachedStore) invalidate(ctx context.Context, userID string) {
	pipe := s.redisClient.TxPipeline()
	pipe.Del(ctx, recentKey(userID))
	pipe.HDel(ctx, recentMetaKey(userID), "head")
	pipe.HIncrBy(ctx, recentMetaKey(userID), "ver", 1)
	pipe.Expire(ctx, recentMetaKey(userID), recentKeyTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Warn("Failed to invalidate recent locations cache")
	}
}
