package models

import (
	"time"
)

// LocationSample представляет точку GPS-трека пользователя. После записи не изменяется.
type LocationSample struct {
	ID         int64     `json:"id"`
	UserID     string    `json:"user_id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	SpeedKmh   float64   `json:"speed_kmh"`
	BatteryPct int       `json:"battery_pct"`
	Timestamp  time.Time `json:"timestamp"`
}

// Point - географическая точка
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Point возвращает координаты точки трека
func (s LocationSample) Point() Point {
	return Point{Latitude: s.Latitude, Longitude: s.Longitude}
}
