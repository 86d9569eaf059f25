// Package zoneindex хранит геозоны риска в памяти и отвечает на запросы
// "ближайшая зона" и "зоны в радиусе". Центры зон раскладываются по ячейкам S2,
// запрос по радиусу покрывает окрестность точки ячейками и проверяет только их.
package zoneindex

import (
	"sort"
	"sync"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/shenikar/safety_alert_system/internal/geo"
	"github.com/shenikar/safety_alert_system/internal/models"
)

const (
	// cellLevel 13 - ячейки с ребром около километра
	cellLevel = 13
	// capMargin расширяет покрывающую шапку, плоское приближение не совпадает со сферой
	capMargin = 1.05
)

// Match - зона и расстояние до нее от точки запроса
type Match struct {
	Zone           models.RiskZone `json:"zone"`
	DistanceMeters float64         `json:"distance_meters"`
}

// Index - потокобезопасный индекс геозон
type Index struct {
	mu      sync.RWMutex
	zones   []models.RiskZone
	cells   map[s2.CellID][]int
	coverer *s2.RegionCoverer
}

// New создает индекс по набору зон
func New(zones []models.RiskZone) *Index {
	ix := &Index{
		coverer: &s2.RegionCoverer{MinLevel: cellLevel, MaxLevel: cellLevel, MaxCells: 64},
	}
	ix.Replace(zones)
	return ix
}

// Replace атомарно заменяет содержимое индекса
func (ix *Index) Replace(zones []models.RiskZone) {
	copied := make([]models.RiskZone, len(zones))
	copy(copied, zones)

	cells := make(map[s2.CellID][]int, len(copied))
	for i, z := range copied {
		id := cellFor(z.Latitude, z.Longitude)
		cells[id] = append(cells[id], i)
	}

	ix.mu.Lock()
	ix.zones = copied
	ix.cells = cells
	ix.mu.Unlock()
}

// Len возвращает число зон в индексе
func (ix *Index) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.zones)
}

// All возвращает копию всех зон
func (ix *Index) All() []models.RiskZone {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	out := make([]models.RiskZone, len(ix.zones))
	copy(out, ix.zones)
	return out
}

// Nearest находит зону с ближайшим центром без ограничения расстояния
func (ix *Index) Nearest(lat, lon float64) (models.RiskZone, float64, bool) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	best, bestDist, found := -1, 0.0, false
	for i, z := range ix.zones {
		d := geo.DistanceMeters(lat, lon, z.Latitude, z.Longitude)
		if !found || d < bestDist {
			best, bestDist, found = i, d, true
		}
	}
	if !found {
		return models.RiskZone{}, 0, false
	}
	return ix.zones[best], bestDist, true
}

// NearestWithin находит ближайшую зону, центр которой не дальше maxMeters
func (ix *Index) NearestWithin(lat, lon, maxMeters float64) (models.RiskZone, float64, bool) {
	matches := ix.candidates(lat, lon, maxMeters)
	if len(matches) == 0 {
		return models.RiskZone{}, 0, false
	}
	best := matches[0]
	for _, m := range matches[1:] {
		if m.DistanceMeters < best.DistanceMeters {
			best = m
		}
	}
	return best.Zone, best.DistanceMeters, true
}

// Within возвращает зоны в радиусе, самые опасные первыми
func (ix *Index) Within(lat, lon, radiusMeters float64) []Match {
	matches := ix.candidates(lat, lon, radiusMeters)
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Zone.RiskLevel != matches[j].Zone.RiskLevel {
			return matches[i].Zone.RiskLevel > matches[j].Zone.RiskLevel
		}
		return matches[i].DistanceMeters < matches[j].DistanceMeters
	})
	return matches
}

func (ix *Index) candidates(lat, lon, radiusMeters float64) []Match {
	if radiusMeters < 0 {
		return nil
	}
	center := s2.PointFromLatLng(s2.LatLngFromDegrees(lat, lon))
	angle := s1.Angle(geo.MetersToDegrees(radiusMeters)*capMargin) * s1.Degree
	covering := ix.coverer.Covering(s2.CapFromCenterAngle(center, angle))

	ix.mu.RLock()
	defer ix.mu.RUnlock()

	matches := make([]Match, 0)
	for _, cell := range covering {
		for _, i := range ix.cells[cell] {
			z := ix.zones[i]
			d := geo.DistanceMeters(lat, lon, z.Latitude, z.Longitude)
			if d <= radiusMeters {
				matches = append(matches, Match{Zone: z, DistanceMeters: d})
			}
		}
	}
	return matches
}

func cellFor(lat, lon float64) s2.CellID {
	return s2.CellIDFromLatLng(s2.LatLngFromDegrees(lat, lon)).Parent(cellLevel)
}
