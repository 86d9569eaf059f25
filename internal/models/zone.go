package models

import (
	"time"

	"github.com/google/uuid"
)

// RiskZone - именованная круглая геозона с уровнем риска 0..100
type RiskZone struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	RiskLevel    int       `json:"risk_level"`
	RadiusMeters int       `json:"radius_meters"`
	Description  string    `json:"description,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
