package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/safety_alert_system/internal/alert"
	"github.com/shenikar/safety_alert_system/internal/models"
)

type AlertRepository struct {
	db *pgxpool.Pool
}

var _ alert.Store = (*AlertRepository)(nil)

func NewAlertRepository(db *pgxpool.Pool) *AlertRepository {
	return &AlertRepository{db: db}
}

// execer - общее у пула и транзакции
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

const alertColumns = `
	id,
	user_id,
	alert_level,
	alert_source,
	ST_Y(location::geometry) AS latitude,
	ST_X(location::geometry) AS longitude,
	risk_score,
	reason,
	status,
	triggered_at,
	resolved_at,
	response_deadline,
	logged_to_operator,
	operator_notified_at,
	requires_immediate_attention,
	operator_notes`

const openCondition = `status IN ('Active', 'Pending Response')`

// prependNoteSQL повторяет models.Alert.PrependNote: новая запись сверху
const prependNoteSQL = `CASE WHEN $%[1]d = '' THEN operator_notes ELSE $%[1]d || E'\n' || operator_notes END`

func scanAlert(row pgx.Row) (*models.Alert, error) {
	a := &models.Alert{}
	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.Level,
		&a.Source,
		&a.Latitude,
		&a.Longitude,
		&a.RiskScore,
		&a.Reason,
		&a.Status,
		&a.TriggeredAt,
		&a.ResolvedAt,
		&a.ResponseDeadline,
		&a.LoggedToOperator,
		&a.OperatorNotifiedAt,
		&a.RequiresImmediateAttention,
		&a.OperatorNotes,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func collectAlerts(rows pgx.Rows) ([]*models.Alert, error) {
	defer rows.Close()
	var out []*models.Alert
	for rows.Next() {
		a, err := scanAlert(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alert: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating alert rows: %w", err)
	}
	return out, nil
}

func insertAlert(ctx context.Context, db execer, a *models.Alert) error {
	query := `
		INSERT INTO alerts (
			id, user_id, alert_level, alert_source, location, risk_score, reason, status,
			triggered_at, resolved_at, response_deadline, logged_to_operator,
			operator_notified_at, requires_immediate_attention, operator_notes
		)
		VALUES ($1, $2, $3, $4, ST_SetSRID(ST_MakePoint($5, $6), 4326), $7, $8, $9,
			$10, $11, $12, $13, $14, $15, $16);
	`
	_, err := db.Exec(ctx, query,
		a.ID,
		a.UserID,
		a.Level,
		a.Source,
		a.Longitude,
		a.Latitude,
		a.RiskScore,
		a.Reason,
		a.Status,
		a.TriggeredAt,
		a.ResolvedAt,
		a.ResponseDeadline,
		a.LoggedToOperator,
		a.OperatorNotifiedAt,
		a.RequiresImmediateAttention,
		a.OperatorNotes,
	)
	if err != nil {
		return fmt.Errorf("failed to insert alert: %w", err)
	}
	return nil
}

// CreateUnlessOpen проверяет и вставляет в одной транзакции под advisory-блокировкой пользователя
func (r *AlertRepository) CreateUnlessOpen(ctx context.Context, a *models.Alert, since time.Time) (*models.Alert, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1));`, a.UserID); err != nil {
		return nil, fmt.Errorf("failed to lock user %s: %w", a.UserID, err)
	}

	query := `SELECT` + alertColumns + `
		FROM alerts
		WHERE user_id = $1 AND ` + openCondition + ` AND triggered_at >= $2
		ORDER BY triggered_at DESC
		LIMIT 1;
	`
	existing, err := scanAlert(tx.QueryRow(ctx, query, a.UserID, since))
	switch {
	case err == nil:
		return nil, &models.ConflictError{Existing: existing}
	case !errors.Is(err, pgx.ErrNoRows):
		return nil, fmt.Errorf("failed to check open alerts: %w", err)
	}

	if err := insertAlert(ctx, tx, a); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit alert: %w", err)
	}
	return a.Clone(), nil
}

// Insert сохраняет тревогу без проверки дедупликации
func (r *AlertRepository) Insert(ctx context.Context, a *models.Alert) error {
	return insertAlert(ctx, r.db, a)
}

// GetByID возвращает тревогу по UUID
func (r *AlertRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Alert, error) {
	query := `SELECT` + alertColumns + ` FROM alerts WHERE id = $1;`
	a, err := scanAlert(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &models.NotFoundError{Entity: "alert", ID: id.String()}
		}
		return nil, fmt.Errorf("failed to get alert by id: %w", err)
	}
	return a, nil
}

// ListOpenByUser возвращает открытые тревоги пользователя, новые первыми
func (r *AlertRepository) ListOpenByUser(ctx context.Context, userID string) ([]*models.Alert, error) {
	query := `SELECT` + alertColumns + `
		FROM alerts
		WHERE user_id = $1 AND ` + openCondition + `
		ORDER BY triggered_at DESC;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list open alerts: %w", err)
	}
	return collectAlerts(rows)
}

// HasActiveVoiceAlert проверяет наличие активной голосовой тревоги не старше since
func (r *AlertRepository) HasActiveVoiceAlert(ctx context.Context, userID string, since time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM alerts
			WHERE user_id = $1 AND alert_source = $2 AND status = $3 AND triggered_at >= $4
		);
	`
	var exists bool
	err := r.db.QueryRow(ctx, query, userID, models.AlertSourceVoice, models.AlertStatusActive, since).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check voice alerts: %w", err)
	}
	return exists, nil
}

// Escalate - условный UPDATE: строка меняется, только если условие еще выполнено
func (r *AlertRepository) Escalate(ctx context.Context, id uuid.UUID, e alert.Escalation) (*models.Alert, bool, error) {
	condition := openCondition
	args := []any{id, e.At, models.NoteAuto + " " + e.Reason}
	if e.Condition == alert.EscalateIfExpired {
		condition = `status = $4 AND response_deadline <= $2`
		args = append(args, models.AlertStatusPendingResponse)
	}

	query := `
		UPDATE alerts SET
			logged_to_operator = TRUE,
			requires_immediate_attention = TRUE,
			operator_notified_at = $2,
			operator_notes = ` + fmt.Sprintf(prependNoteSQL, 3) + `
		WHERE id = $1 AND logged_to_operator = FALSE AND ` + condition + `
		RETURNING` + alertColumns + `;`

	a, err := scanAlert(r.db.QueryRow(ctx, query, args...))
	if err == nil {
		return a, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, fmt.Errorf("failed to escalate alert: %w", err)
	}

	current, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, false, err
	}
	return current, false, nil
}

// ListExpiredPending использует частичный индекс (status, response_deadline)
func (r *AlertRepository) ListExpiredPending(ctx context.Context, now time.Time, limit int) ([]*models.Alert, error) {
	query := `SELECT` + alertColumns + `
		FROM alerts
		WHERE status = $1 AND logged_to_operator = FALSE AND response_deadline <= $2
		ORDER BY response_deadline
		LIMIT $3;
	`
	rows, err := r.db.Query(ctx, query, models.AlertStatusPendingResponse, now, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list expired alerts: %w", err)
	}
	return collectAlerts(rows)
}

// Finalize - условный переход в терминальный статус
func (r *AlertRepository) Finalize(ctx context.Context, id uuid.UUID, f alert.Finalization) (*models.Alert, error) {
	note := ""
	if f.Note != "" {
		note = f.NotePrefix + " " + f.Note
	}

	query := `
		UPDATE alerts SET
			status = $2,
			resolved_at = $3,
			requires_immediate_attention = CASE WHEN $4 THEN FALSE ELSE requires_immediate_attention END,
			operator_notes = ` + fmt.Sprintf(prependNoteSQL, 5) + `
		WHERE id = $1 AND ` + openCondition + `
		RETURNING` + alertColumns + `;`

	a, err := scanAlert(r.db.QueryRow(ctx, query, id, f.Status, f.At, f.ClearAttention, note))
	if err == nil {
		return a, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to finalize alert: %w", err)
	}

	current, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return nil, &models.StateError{AlertID: id, Status: current.Status, Action: f.Action}
}

// ListForOperator возвращает очередь оператора, новые первыми. Limit 0 - без ограничения.
func (r *AlertRepository) ListForOperator(ctx context.Context, f alert.OperatorFilter) ([]*models.Alert, error) {
	query := `SELECT` + alertColumns + `
		FROM alerts
		WHERE logged_to_operator = TRUE AND ` + openCondition + `
			AND ($1 = FALSE OR requires_immediate_attention = TRUE)
		ORDER BY triggered_at DESC
		LIMIT NULLIF($2, 0);
	`
	rows, err := r.db.Query(ctx, query, f.CriticalOnly, f.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list operator alerts: %w", err)
	}
	return collectAlerts(rows)
}

// CountForOperator считает очередь оператора и критические тревоги
func (r *AlertRepository) CountForOperator(ctx context.Context) (int, int, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE requires_immediate_attention)
		FROM alerts
		WHERE logged_to_operator = TRUE AND ` + openCondition + `;
	`
	var total, critical int
	if err := r.db.QueryRow(ctx, query).Scan(&total, &critical); err != nil {
		return 0, 0, fmt.Errorf("failed to count operator alerts: %w", err)
	}
	return total, critical, nil
}
