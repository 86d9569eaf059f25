package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/safety_alert_system/internal/models"
)

type ActionRepository struct {
	db *pgxpool.Pool
}

func NewActionRepository(db *pgxpool.Pool) *ActionRepository {
	return &ActionRepository{db: db}
}

// Record записывает действие пользователя в журнал
func (r *ActionRepository) Record(ctx context.Context, action *models.SafetyAction) error {
	query := `
		INSERT INTO safety_actions (user_id, action_type, location, occurred_at, outcome, notes)
		VALUES ($1, $2, ST_SetSRID(ST_MakePoint($3, $4), 4326), $5, $6, $7)
		RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		action.UserID,
		action.ActionType,
		action.Longitude,
		action.Latitude,
		action.Timestamp,
		action.Outcome,
		action.Notes,
	).Scan(&action.ID)
	if err != nil {
		return fmt.Errorf("failed to record safety action: %w", err)
	}
	return nil
}
