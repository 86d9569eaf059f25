// Package memory - хранилища в памяти процесса для локального запуска и тестов.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shenikar/safety_alert_system/internal/models"
)

// LocationStore хранит треки пользователей, отсортированные от новых точек к старым
type LocationStore struct {
	mu     sync.RWMutex
	nextID int64
	byUser map[string][]models.LocationSample
}

// NewLocationStore создает пустой LocationStore
func NewLocationStore() *LocationStore {
	return &LocationStore{byUser: make(map[string][]models.LocationSample)}
}

// Append добавляет точку, сохраняя порядок по времени даже для запоздавших точек
func (s *LocationStore) Append(_ context.Context, sample *models.LocationSample) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	sample.ID = s.nextID

	track := s.byUser[sample.UserID]
	i := sort.Search(len(track), func(i int) bool {
		return !track[i].Timestamp.After(sample.Timestamp)
	})
	track = append(track, models.LocationSample{})
	copy(track[i+1:], track[i:])
	track[i] = *sample
	s.byUser[sample.UserID] = track
	return nil
}

// Recent возвращает до limit последних точек
func (s *LocationStore) Recent(_ context.Context, userID string, limit int) ([]models.LocationSample, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	track := s.byUser[userID]
	if limit > len(track) {
		limit = len(track)
	}
	if limit <= 0 {
		return nil, nil
	}
	out := make([]models.LocationSample, limit)
	copy(out, track[:limit])
	return out, nil
}

// Since возвращает точки не старше since
func (s *LocationStore) Since(_ context.Context, userID string, since time.Time) ([]models.LocationSample, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	track := s.byUser[userID]
	n := sort.Search(len(track), func(i int) bool {
		return track[i].Timestamp.Before(since)
	})
	out := make([]models.LocationSample, n)
	copy(out, track[:n])
	return out, nil
}

// Last возвращает последнюю известную точку пользователя
func (s *LocationStore) Last(_ context.Context, userID string) (*models.LocationSample, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	track := s.byUser[userID]
	if len(track) == 0 {
		return nil, &models.NotFoundError{Entity: "location", ID: userID}
	}
	last := track[0]
	return &last, nil
}
