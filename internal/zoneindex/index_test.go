package zoneindex

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/safety_alert_system/internal/geo"
	"github.com/shenikar/safety_alert_system/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	baseLat = 5.125086
	baseLon = 7.356695
)

// offset сдвигает точку на заданное число метров к северу и востоку
func offset(north, east float64) (float64, float64) {
	return baseLat + geo.MetersToDegrees(north), baseLon + geo.MetersToDegrees(east)
}

func zoneAt(name string, north, east float64, risk, radius int) models.RiskZone {
	lat, lon := offset(north, east)
	return models.RiskZone{ID: uuid.New(), Name: name, Latitude: lat, Longitude: lon, RiskLevel: risk, RadiusMeters: radius}
}

func testZones() []models.RiskZone {
	return []models.RiskZone{
		zoneAt("Generator House", 150, 0, 65, 80),
		zoneAt("Back Gate", 0, 400, 80, 100),
		zoneAt("Library", -900, -900, 20, 50),
		zoneAt("Far Market", 20000, 0, 90, 300),
	}
}

func TestIndex_Nearest(t *testing.T) {
	ix := New(testZones())

	zone, dist, ok := ix.Nearest(baseLat, baseLon)
	require.True(t, ok)
	assert.Equal(t, "Generator House", zone.Name)
	assert.InDelta(t, 150, dist, 0.01)

	lat, lon := offset(19000, 0)
	zone, _, ok = ix.Nearest(lat, lon)
	require.True(t, ok)
	assert.Equal(t, "Far Market", zone.Name)
}

func TestIndex_NearestEmpty(t *testing.T) {
	ix := New(nil)
	_, _, ok := ix.Nearest(baseLat, baseLon)
	assert.False(t, ok)
	_, _, ok = ix.NearestWithin(baseLat, baseLon, 200)
	assert.False(t, ok)
}

func TestIndex_NearestWithin(t *testing.T) {
	ix := New(testZones())

	zone, dist, ok := ix.NearestWithin(baseLat, baseLon, 200)
	require.True(t, ok)
	assert.Equal(t, "Generator House", zone.Name)
	assert.InDelta(t, 150, dist, 0.01)

	_, _, ok = ix.NearestWithin(baseLat, baseLon, 100)
	assert.False(t, ok, "zone at 150 m must not be returned for a 100 m query")
}

func TestIndex_WithinOrdersByRisk(t *testing.T) {
	ix := New(testZones())

	matches := ix.Within(baseLat, baseLon, 1000)
	require.Len(t, matches, 2)
	assert.Equal(t, "Back Gate", matches[0].Zone.Name)
	assert.Equal(t, "Generator House", matches[1].Zone.Name)

	matches = ix.Within(baseLat, baseLon, 1500)
	require.Len(t, matches, 3)
	assert.Equal(t, "Library", matches[2].Zone.Name)
}

func TestIndex_WithinMatchesLinearScan(t *testing.T) {
	zones := make([]models.RiskZone, 0, 400)
	for i := 0; i < 20; i++ {
		for j := 0; j < 20; j++ {
			zones = append(zones, zoneAt("grid", float64(i*173-1700), float64(j*191-1900), (i*j)%100, 50))
		}
	}
	ix := New(zones)

	for _, radius := range []float64{50, 200, 750, 2500} {
		expected := 0
		for _, z := range zones {
			if geo.DistanceMeters(baseLat, baseLon, z.Latitude, z.Longitude) <= radius {
				expected++
			}
		}
		assert.Len(t, ix.Within(baseLat, baseLon, radius), expected, "radius %v", radius)
	}
}

func TestIndex_Replace(t *testing.T) {
	ix := New(testZones())
	assert.Equal(t, 4, ix.Len())

	ix.Replace([]models.RiskZone{zoneAt("Only", 10, 10, 50, 30)})
	assert.Equal(t, 1, ix.Len())
	zone, _, ok := ix.NearestWithin(baseLat, baseLon, 200)
	require.True(t, ok)
	assert.Equal(t, "Only", zone.Name)
}

type stubLoader struct {
	zones []models.RiskZone
	err   error
}

func (s *stubLoader) ListZones(_ context.Context) ([]models.RiskZone, error) {
	return s.zones, s.err
}

func TestRefresher_Load(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	ix := New(nil)
	loader := &stubLoader{zones: testZones()}
	r := NewRefresher(ix, loader, 0, logger)

	require.NoError(t, r.Load(context.Background()))
	assert.Equal(t, 4, ix.Len())

	// Ошибка загрузки не стирает последний снимок
	loader.err = errors.New("db down")
	require.Error(t, r.Load(context.Background()))
	assert.Equal(t, 4, ix.Len())
}
