package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/safety_alert_system/internal/models"
)

type ZoneRepository struct {
	db *pgxpool.Pool
}

func NewZoneRepository(db *pgxpool.Pool) *ZoneRepository {
	return &ZoneRepository{db: db}
}

// ListZones возвращает все зоны риска
func (r *ZoneRepository) ListZones(ctx context.Context) ([]models.RiskZone, error) {
	query := `
		SELECT
			id,
			name,
			ST_Y(location::geometry) AS latitude,
			ST_X(location::geometry) AS longitude,
			risk_level,
			radius_meters,
			description,
			created_at
		FROM risk_zones
		ORDER BY risk_level DESC, name;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list risk zones: %w", err)
	}
	defer rows.Close()

	var zones []models.RiskZone
	for rows.Next() {
		var z models.RiskZone
		if err := rows.Scan(
			&z.ID,
			&z.Name,
			&z.Latitude,
			&z.Longitude,
			&z.RiskLevel,
			&z.RadiusMeters,
			&z.Description,
			&z.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan risk zone: %w", err)
		}
		zones = append(zones, z)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating risk zone rows: %w", err)
	}
	return zones, nil
}
