// Package alert - жизненный цикл тревог: дедупликация, таймер ответа, передача оператору.
package alert

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/safety_alert_system/internal/models"
)

// EscalationCondition - условие, при котором хранилище выполняет эскалацию
type EscalationCondition int

const (
	// EscalateIfOpen - тревога открыта и еще не передана оператору
	EscalateIfOpen EscalationCondition = iota
	// EscalateIfExpired - тревога ждет ответа, дедлайн прошел, оператору не передана
	EscalateIfExpired
)

// Escalation описывает условную передачу тревоги оператору
type Escalation struct {
	Condition EscalationCondition
	At        time.Time
	Reason    string
}

// Matches проверяет условие эскалации для тревоги
func (e Escalation) Matches(a *models.Alert) bool {
	if a.LoggedToOperator {
		return false
	}
	switch e.Condition {
	case EscalateIfExpired:
		return a.Status == models.AlertStatusPendingResponse &&
			a.ResponseDeadline != nil &&
			!a.ResponseDeadline.After(e.At)
	default:
		return a.Status.IsOpen()
	}
}

// Finalization описывает переход тревоги в терминальный статус
type Finalization struct {
	Status         models.AlertStatus
	At             time.Time
	NotePrefix     string
	Note           string
	ClearAttention bool
	Action         string
}

// Apply выполняет переход над тревогой. Терминальные тревоги не меняются.
func (f Finalization) Apply(a *models.Alert) error {
	if a.Status.IsTerminal() {
		return &models.StateError{AlertID: a.ID, Status: a.Status, Action: f.Action}
	}
	at := f.At
	a.Status = f.Status
	a.ResolvedAt = &at
	if f.ClearAttention {
		a.RequiresImmediateAttention = false
	}
	a.PrependNote(f.NotePrefix, f.Note)
	return nil
}

// OperatorFilter - фильтр очереди оператора
type OperatorFilter struct {
	CriticalOnly bool
	Limit        int
}

// Store определяет контракт хранилища тревог.
// Все изменяющие методы атомарны относительно друг друга.
type Store interface {
	// CreateUnlessOpen сохраняет тревогу, если у пользователя нет открытой тревоги,
	// созданной не раньше since. Иначе возвращает *models.ConflictError с существующей.
	CreateUnlessOpen(ctx context.Context, a *models.Alert, since time.Time) (*models.Alert, error)
	// Insert сохраняет тревогу без проверки дедупликации
	Insert(ctx context.Context, a *models.Alert) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Alert, error)
	ListOpenByUser(ctx context.Context, userID string) ([]*models.Alert, error)
	HasActiveVoiceAlert(ctx context.Context, userID string, since time.Time) (bool, error)
	// Escalate выполняет эскалацию, только если выполнено условие. false - условие не выполнено.
	Escalate(ctx context.Context, id uuid.UUID, e Escalation) (*models.Alert, bool, error)
	// ListExpiredPending возвращает до limit тревог, подходящих под EscalateIfExpired
	ListExpiredPending(ctx context.Context, now time.Time, limit int) ([]*models.Alert, error)
	Finalize(ctx context.Context, id uuid.UUID, f Finalization) (*models.Alert, error)
	ListForOperator(ctx context.Context, f OperatorFilter) ([]*models.Alert, error)
	CountForOperator(ctx context.Context) (total int, critical int, err error)
}
