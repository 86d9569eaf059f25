package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/safety_alert_system/internal/alert"
	"github.com/shenikar/safety_alert_system/internal/models"
)

// AlertStore хранит тревоги под одним мьютексом, что делает проверку и вставку атомарными.
// Наружу отдаются только копии.
type AlertStore struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]*models.Alert
	byUser  map[string][]uuid.UUID
	pending map[uuid.UUID]struct{}
}

var _ alert.Store = (*AlertStore)(nil)

// NewAlertStore создает пустой AlertStore
func NewAlertStore() *AlertStore {
	return &AlertStore{
		byID:    make(map[uuid.UUID]*models.Alert),
		byUser:  make(map[string][]uuid.UUID),
		pending: make(map[uuid.UUID]struct{}),
	}
}

func (s *AlertStore) put(a *models.Alert) {
	c := a.Clone()
	if _, ok := s.byID[c.ID]; !ok {
		s.byUser[c.UserID] = append(s.byUser[c.UserID], c.ID)
	}
	s.byID[c.ID] = c
	s.trackPending(c)
}

func (s *AlertStore) trackPending(a *models.Alert) {
	if a.Status == models.AlertStatusPendingResponse && !a.LoggedToOperator {
		s.pending[a.ID] = struct{}{}
		return
	}
	delete(s.pending, a.ID)
}

func (s *AlertStore) openSince(userID string, since time.Time) *models.Alert {
	var newest *models.Alert
	for _, id := range s.byUser[userID] {
		a := s.byID[id]
		if !a.Status.IsOpen() || a.TriggeredAt.Before(since) {
			continue
		}
		if newest == nil || a.TriggeredAt.After(newest.TriggeredAt) {
			newest = a
		}
	}
	return newest
}

// CreateUnlessOpen сохраняет тревогу, если в окне нет открытой тревоги пользователя
func (s *AlertStore) CreateUnlessOpen(_ context.Context, a *models.Alert, since time.Time) (*models.Alert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing := s.openSince(a.UserID, since); existing != nil {
		return nil, &models.ConflictError{Existing: existing.Clone()}
	}
	s.put(a)
	return a.Clone(), nil
}

// Insert сохраняет тревогу без проверки
func (s *AlertStore) Insert(_ context.Context, a *models.Alert) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.put(a)
	return nil
}

// GetByID возвращает тревогу по идентификатору
func (s *AlertStore) GetByID(_ context.Context, id uuid.UUID) (*models.Alert, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.byID[id]
	if !ok {
		return nil, &models.NotFoundError{Entity: "alert", ID: id.String()}
	}
	return a.Clone(), nil
}

// ListOpenByUser возвращает открытые тревоги пользователя, новые первыми
func (s *AlertStore) ListOpenByUser(_ context.Context, userID string) ([]*models.Alert, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Alert
	for _, id := range s.byUser[userID] {
		if a := s.byID[id]; a.Status.IsOpen() {
			out = append(out, a.Clone())
		}
	}
	sortNewestFirst(out)
	return out, nil
}

// HasActiveVoiceAlert ищет открытую голосовую тревогу, созданную не раньше since
func (s *AlertStore) HasActiveVoiceAlert(_ context.Context, userID string, since time.Time) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.byUser[userID] {
		a := s.byID[id]
		if a.Source == models.AlertSourceVoice && a.Status == models.AlertStatusActive && !a.TriggeredAt.Before(since) {
			return true, nil
		}
	}
	return false, nil
}

// Escalate передает тревогу оператору при выполнении условия
func (s *AlertStore) Escalate(_ context.Context, id uuid.UUID, e alert.Escalation) (*models.Alert, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.byID[id]
	if !ok {
		return nil, false, &models.NotFoundError{Entity: "alert", ID: id.String()}
	}
	if !e.Matches(a) {
		return a.Clone(), false, nil
	}
	a.Escalate(e.At, e.Reason)
	s.trackPending(a)
	return a.Clone(), true, nil
}

// ListExpiredPending возвращает просроченные тревоги, ждущие ответа, самые старые первыми
func (s *AlertStore) ListExpiredPending(_ context.Context, now time.Time, limit int) ([]*models.Alert, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cond := alert.Escalation{Condition: alert.EscalateIfExpired, At: now}
	var out []*models.Alert
	for id := range s.pending {
		if a := s.byID[id]; cond.Matches(a) {
			out = append(out, a.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ResponseDeadline.Before(*out[j].ResponseDeadline) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Finalize переводит тревогу в терминальный статус
func (s *AlertStore) Finalize(_ context.Context, id uuid.UUID, f alert.Finalization) (*models.Alert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.byID[id]
	if !ok {
		return nil, &models.NotFoundError{Entity: "alert", ID: id.String()}
	}
	if err := f.Apply(a); err != nil {
		return nil, err
	}
	s.trackPending(a)
	return a.Clone(), nil
}

// ListForOperator возвращает открытые тревоги, переданные оператору, новые первыми
func (s *AlertStore) ListForOperator(_ context.Context, f alert.OperatorFilter) ([]*models.Alert, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Alert
	for _, a := range s.byID {
		if !operatorVisible(a) {
			continue
		}
		if f.CriticalOnly && !a.RequiresImmediateAttention {
			continue
		}
		out = append(out, a.Clone())
	}
	sortNewestFirst(out)
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

// CountForOperator считает очередь оператора и критические тревоги в ней
func (s *AlertStore) CountForOperator(_ context.Context) (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total, critical := 0, 0
	for _, a := range s.byID {
		if !operatorVisible(a) {
			continue
		}
		total++
		if a.RequiresImmediateAttention {
			critical++
		}
	}
	return total, critical, nil
}

func operatorVisible(a *models.Alert) bool {
	return a.LoggedToOperator && a.Status.IsOpen()
}

func sortNewestFirst(alerts []*models.Alert) {
	sort.Slice(alerts, func(i, j int) bool {
		return alerts[i].TriggeredAt.After(alerts[j].TriggeredAt)
	})
}
