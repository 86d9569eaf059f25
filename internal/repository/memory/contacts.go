package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/shenikar/safety_alert_system/internal/models"
)

// ContactStore - экстренные контакты пользователей
type ContactStore struct {
	mu     sync.RWMutex
	nextID int64
	byUser map[string][]models.EmergencyContact
}

// NewContactStore создает пустой ContactStore
func NewContactStore() *ContactStore {
	return &ContactStore{byUser: make(map[string][]models.EmergencyContact)}
}

// Add добавляет контакт
func (s *ContactStore) Add(c models.EmergencyContact) models.EmergencyContact {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	c.ID = s.nextID
	s.byUser[c.UserID] = append(s.byUser[c.UserID], c)
	return c
}

// ListByUser возвращает контакты пользователя в порядке приоритета
func (s *ContactStore) ListByUser(_ context.Context, userID string) ([]models.EmergencyContact, error) {
	s.mu.RLock()
	out := make([]models.EmergencyContact, len(s.byUser[userID]))
	copy(out, s.byUser[userID])
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].Priority < out[j].Priority })
	return out, nil
}
