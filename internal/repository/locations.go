// Package repository - хранилища PostgreSQL/PostGIS.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/safety_alert_system/internal/models"
)

type LocationRepository struct {
	db *pgxpool.Pool
}

func NewLocationRepository(db *pgxpool.Pool) *LocationRepository {
	return &LocationRepository{db: db}
}

const locationColumns = `
	id,
	user_id,
	ST_Y(location::geometry) AS latitude,
	ST_X(location::geometry) AS longitude,
	speed_kmh,
	battery_pct,
	recorded_at`

// Append сохраняет точку трека
func (r *LocationRepository) Append(ctx context.Context, sample *models.LocationSample) error {
	query := `
		INSERT INTO location_samples (user_id, location, speed_kmh, battery_pct, recorded_at)
		VALUES ($1, ST_SetSRID(ST_MakePoint($2, $3), 4326), $4, $5, $6)
		RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		sample.UserID,
		sample.Longitude,
		sample.Latitude,
		sample.SpeedKmh,
		sample.BatteryPct,
		sample.Timestamp,
	).Scan(&sample.ID)
	if err != nil {
		return fmt.Errorf("failed to append location sample: %w", err)
	}
	return nil
}

// Recent возвращает последние limit точек пользователя
func (r *LocationRepository) Recent(ctx context.Context, userID string, limit int) ([]models.LocationSample, error) {
	query := `SELECT` + locationColumns + `
		FROM location_samples
		WHERE user_id = $1
		ORDER BY recorded_at DESC
		LIMIT $2;
	`
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent locations: %w", err)
	}
	return collectSamples(rows)
}

// Since возвращает точки пользователя не старше since
func (r *LocationRepository) Since(ctx context.Context, userID string, since time.Time) ([]models.LocationSample, error) {
	query := `SELECT` + locationColumns + `
		FROM location_samples
		WHERE user_id = $1 AND recorded_at >= $2
		ORDER BY recorded_at DESC;
	`
	rows, err := r.db.Query(ctx, query, userID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query locations since %s: %w", since, err)
	}
	return collectSamples(rows)
}

// Last возвращает последнюю известную точку пользователя
func (r *LocationRepository) Last(ctx context.Context, userID string) (*models.LocationSample, error) {
	query := `SELECT` + locationColumns + `
		FROM location_samples
		WHERE user_id = $1
		ORDER BY recorded_at DESC
		LIMIT 1;
	`
	var s models.LocationSample
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&s.ID, &s.UserID, &s.Latitude, &s.Longitude, &s.SpeedKmh, &s.BatteryPct, &s.Timestamp,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &models.NotFoundError{Entity: "location", ID: userID}
		}
		return nil, fmt.Errorf("failed to get last location: %w", err)
	}
	return &s, nil
}

func collectSamples(rows pgx.Rows) ([]models.LocationSample, error) {
	defer rows.Close()
	var out []models.LocationSample
	for rows.Next() {
		var s models.LocationSample
		if err := rows.Scan(&s.ID, &s.UserID, &s.Latitude, &s.Longitude, &s.SpeedKmh, &s.BatteryPct, &s.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan location sample: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating location rows: %w", err)
	}
	return out, nil
}
