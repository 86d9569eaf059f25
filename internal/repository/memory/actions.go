package memory

import (
	"context"
	"sync"

	"github.com/shenikar/safety_alert_system/internal/models"
)

// ActionStore - журнал действий пользователей
type ActionStore struct {
	mu      sync.RWMutex
	nextID  int64
	actions []models.SafetyAction
}

// NewActionStore создает пустой журнал
func NewActionStore() *ActionStore {
	return &ActionStore{}
}

// Record записывает действие
func (s *ActionStore) Record(_ context.Context, action *models.SafetyAction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	action.ID = s.nextID
	s.actions = append(s.actions, *action)
	return nil
}

// ListByUser возвращает действия пользователя в порядке записи
func (s *ActionStore) ListByUser(_ context.Context, userID string) ([]models.SafetyAction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.SafetyAction
	for _, a := range s.actions {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}
