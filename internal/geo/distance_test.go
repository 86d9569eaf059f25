package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceMeters(t *testing.T) {
	assert.InDelta(t, 0, DistanceMeters(5.12, 7.35, 5.12, 7.35), 1e-9)
	assert.InDelta(t, 111000, DistanceMeters(0, 0, 1, 0), 1e-6)
	assert.InDelta(t, 111000, DistanceMeters(0, 0, 0, 1), 1e-6)
	assert.InDelta(t, 111000*math.Sqrt2*0.01, DistanceMeters(5.0, 7.0, 5.01, 7.01), 1e-6)
}

func TestMetersToDegrees(t *testing.T) {
	assert.InDelta(t, 0.0018018, MetersToDegrees(200), 1e-6)
}

func TestValidCoordinates(t *testing.T) {
	assert.True(t, ValidCoordinates(5.12, 7.35))
	assert.True(t, ValidCoordinates(-90, 180))
	assert.False(t, ValidCoordinates(91, 0))
	assert.False(t, ValidCoordinates(0, -180.5))
	assert.False(t, ValidCoordinates(math.NaN(), 0))
}

func TestCentroid(t *testing.T) {
	lat, lon := Centroid([]float64{1, 2, 3}, []float64{10, 20, 30})
	assert.InDelta(t, 2, lat, 1e-9)
	assert.InDelta(t, 20, lon, 1e-9)

	lat, lon = Centroid(nil, nil)
	assert.Zero(t, lat)
	assert.Zero(t, lon)
}
