package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/safety_alert_system/internal/models"
)

// ZoneStore - справочник зон риска
type ZoneStore struct {
	mu    sync.RWMutex
	zones []models.RiskZone
}

// NewZoneStore создает справочник с заданными зонами
func NewZoneStore(zones ...models.RiskZone) *ZoneStore {
	s := &ZoneStore{}
	for _, z := range zones {
		s.Add(z)
	}
	return s
}

// Add добавляет зону, недостающие поля заполняются
func (s *ZoneStore) Add(z models.RiskZone) models.RiskZone {
	if z.ID == uuid.Nil {
		z.ID = uuid.New()
	}
	if z.CreatedAt.IsZero() {
		z.CreatedAt = time.Now().UTC()
	}
	s.mu.Lock()
	s.zones = append(s.zones, z)
	s.mu.Unlock()
	return z
}

// ListZones возвращает все зоны
func (s *ZoneStore) ListZones(_ context.Context) ([]models.RiskZone, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.RiskZone, len(s.zones))
	copy(out, s.zones)
	return out, nil
}

// DefaultZones - зоны риска, с которыми сервис стартует без базы данных
func DefaultZones() []models.RiskZone {
	return []models.RiskZone{
		{Name: "Ikot Ekpene Road Junction", Latitude: 5.0380, Longitude: 7.9090, RiskLevel: 75, RadiusMeters: 400, Description: "Frequent late-night robberies"},
		{Name: "Uyo Main Market", Latitude: 5.0333, Longitude: 7.9266, RiskLevel: 60, RadiusMeters: 500, Description: "Pickpocketing in crowded hours"},
		{Name: "Itam Park", Latitude: 5.0515, Longitude: 7.8975, RiskLevel: 85, RadiusMeters: 300, Description: "Reported kidnapping attempts"},
		{Name: "Aba Road Underpass", Latitude: 5.0155, Longitude: 7.9402, RiskLevel: 50, RadiusMeters: 250, Description: "Poor lighting"},
	}
}
