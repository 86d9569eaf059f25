package detector

import (
	"testing"
	"time"

	"github.com/shenikar/safety_alert_system/internal/geo"
	"github.com/shenikar/safety_alert_system/internal/history"
	"github.com/shenikar/safety_alert_system/internal/models"
	"github.com/shenikar/safety_alert_system/internal/zoneindex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	baseLat = 5.125086
	baseLon = 7.356695
)

var now = time.Date(2024, 1, 15, 22, 30, 0, 0, time.UTC)

// track строит трек от новых точек к старым с шагом step
func track(n int, step time.Duration, speed float64) []models.LocationSample {
	out := make([]models.LocationSample, n)
	for i := range out {
		out[i] = models.LocationSample{
			UserID:    "u1",
			Latitude:  baseLat,
			Longitude: baseLon,
			SpeedKmh:  speed,
			Timestamp: now.Add(-time.Duration(i) * step),
		}
	}
	return out
}

// trackOver строит трек из n точек, равномерно покрывающий ровно span
func trackOver(n int, span time.Duration, speed float64) []models.LocationSample {
	out := track(n, 0, speed)
	for i := range out {
		out[i].Timestamp = now.Add(-span * time.Duration(i) / time.Duration(n-1))
	}
	return out
}

func zoneNorth(meters float64, risk int) *zoneindex.Index {
	return zoneindex.New([]models.RiskZone{{
		Name:         "Generator House",
		Latitude:     baseLat + geo.MetersToDegrees(meters),
		Longitude:    baseLon,
		RiskLevel:    risk,
		RadiusMeters: 100,
	}})
}

func TestStoppedMovement_AnomalyNearRiskyZone(t *testing.T) {
	// 15 точек со скоростью 0 на протяжении 90 секунд
	recent := trackOver(15, 90*time.Second, 0)
	require.Equal(t, 90*time.Second, recent[0].Timestamp.Sub(recent[14].Timestamp))

	res := StoppedMovement(now, recent, zoneNorth(150, 65))

	assert.True(t, res.IsAnomaly)
	assert.Equal(t, 25.0, res.RiskIncrease)
	assert.Equal(t, "Generator House", res.ZoneName)
	assert.Equal(t, 90, res.StoppedSeconds)
	require.NotNil(t, res.Action)
	assert.Equal(t, models.ActionWarningIgnored, res.Action.ActionType)
	assert.Equal(t, models.OutcomeUnknown, res.Action.Outcome)
}

func TestStoppedMovement_NoAnomaly(t *testing.T) {
	tests := []struct {
		name   string
		recent []models.LocationSample
		zones  *zoneindex.Index
		reason string
	}{
		{"insufficient history", track(9, 10*time.Second, 0), zoneNorth(50, 90), "Insufficient location history"},
		{"moving", track(20, 10*time.Second, 30), zoneNorth(50, 90), "User is currently moving"},
		{"short stop", track(12, 5*time.Second, 0), zoneNorth(50, 90), "Stopped for only 55s (threshold: 60s)"},
		{"low risk zone", track(15, 10*time.Second, 0), zoneNorth(50, 59), "Stopped in safe area"},
		{"zone too far", track(15, 10*time.Second, 0), zoneNorth(250, 90), "Stopped in safe area"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := StoppedMovement(now, tt.recent, tt.zones)
			assert.False(t, res.IsAnomaly)
			assert.Zero(t, res.RiskIncrease)
			assert.Equal(t, tt.reason, res.Reason)
			assert.Nil(t, res.Action)
		})
	}
}

func TestStoppedMovement_StopsAtFirstMovingSample(t *testing.T) {
	recent := track(20, 10*time.Second, 0)
	// движение 40 секунд назад обрывает остановку
	for i := 4; i < len(recent); i++ {
		recent[i].SpeedKmh = 12
	}

	res := StoppedMovement(now, recent, zoneNorth(50, 90))
	assert.False(t, res.IsAnomaly)
	assert.Contains(t, res.Reason, "Stopped for only 30s")
}

func TestStoppedMovement_UsesOnlyLast30Samples(t *testing.T) {
	// 100 неподвижных точек с шагом 10с: окно 30 точек дает 290 секунд
	res := StoppedMovement(now, track(100, 10*time.Second, 0), zoneNorth(50, 90))
	assert.True(t, res.IsAnomaly)
	assert.Equal(t, 290, res.StoppedSeconds)
}

func TestRouteDeviation(t *testing.T) {
	recent := track(20, time.Minute, 10)
	res := RouteDeviation(now, recent)
	assert.False(t, res.IsAnomaly)
	assert.Equal(t, "Within typical activity area", res.Reason)

	// текущая точка в 0.05 градуса от остальных 19
	recent[0].Latitude += 0.05
	res = RouteDeviation(now, recent)
	assert.True(t, res.IsAnomaly)
	assert.Equal(t, 15.0, res.RiskIncrease)
	// центр смещен на 1/20 отклонения: 0.05*0.95*111000
	assert.Equal(t, 5272, res.DistanceFromTypical)
	assert.Equal(t, "5272m from typical activity area", res.Reason)
	require.NotNil(t, res.Action)
	assert.Equal(t, models.ActionRouteIgnored, res.Action.ActionType)

	res = RouteDeviation(now, recent[:9])
	assert.False(t, res.IsAnomaly)
	assert.Equal(t, "Insufficient location history for pattern analysis", res.Reason)
}

func weekAt(hours ...int) []models.LocationSample {
	var out []models.LocationSample
	for day := 1; day <= 5; day++ {
		for _, h := range hours {
			out = append(out, models.LocationSample{
				UserID:    "u1",
				Timestamp: time.Date(2024, 1, 15-day, h, 15, 0, 0, time.UTC),
			})
		}
	}
	return out
}

func TestTimePattern(t *testing.T) {
	week := weekAt(8, 9, 17, 18)

	res := TimePattern(time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC), week)
	assert.False(t, res.IsAnomaly)

	res = TimePattern(time.Date(2024, 1, 15, 14, 0, 0, 0, time.UTC), week)
	assert.True(t, res.IsAnomaly)
	assert.Equal(t, 10.0, res.RiskIncrease)
	assert.Equal(t, 14, res.CurrentHour)
	assert.Equal(t, []int{8, 9, 17, 18}, res.TypicalHours)
	assert.Equal(t, "Active at 14:00 (unusual for this user)", res.Reason)

	res = TimePattern(time.Date(2024, 1, 15, 2, 0, 0, 0, time.UTC), week)
	assert.True(t, res.IsAnomaly)
	assert.Equal(t, 20.0, res.RiskIncrease)
	assert.Equal(t, "Active at 2:00 (unusual for this user) + late night", res.Reason)

	res = TimePattern(now, week[:19])
	assert.False(t, res.IsAnomaly)
	assert.Equal(t, "Insufficient data for time pattern analysis", res.Reason)
}

func TestTimePattern_SingleOccurrenceIsNotTypical(t *testing.T) {
	week := weekAt(8, 9, 17, 18)
	week = append(week, models.LocationSample{Timestamp: time.Date(2024, 1, 14, 14, 0, 0, 0, time.UTC)})

	res := TimePattern(time.Date(2024, 1, 15, 14, 0, 0, 0, time.UTC), week)
	assert.True(t, res.IsAnomaly)
}

func TestIsLateNight(t *testing.T) {
	for _, h := range []int{22, 23, 0, 3, 5} {
		assert.True(t, IsLateNight(h), "hour %d", h)
	}
	for _, h := range []int{6, 12, 18, 21} {
		assert.False(t, IsLateNight(h), "hour %d", h)
	}
}

func TestRunAllAndTotalRisk(t *testing.T) {
	w := history.Window{
		Recent: track(15, 10*time.Second, 0),
		Week:   weekAt(8, 9, 17, 18),
	}
	results := RunAll(now, w, zoneNorth(50, 80))
	require.Len(t, results, 3)
	assert.Equal(t, models.DetectorStoppedMovement, results[0].Detector)
	assert.Equal(t, models.DetectorRouteDeviation, results[1].Detector)
	assert.Equal(t, models.DetectorTimePattern, results[2].Detector)

	// остановка 25 + непривычный поздний час 20
	assert.Equal(t, 45.0, TotalRisk(results))
}
