// Package detector - детекторы поведенческих аномалий по истории перемещений.
// Детекторы не имеют состояния и не пишут в хранилища: действие для журнала
// возвращается в DetectionResult.Action, записывает его вызывающий.
package detector

import (
	"fmt"
	"sort"
	"time"

	"github.com/shenikar/safety_alert_system/internal/geo"
	"github.com/shenikar/safety_alert_system/internal/history"
	"github.com/shenikar/safety_alert_system/internal/models"
)

const (
	stoppedWindow      = 30
	stoppedMinSamples  = 10
	stoppedSpeedKmh    = 2.0
	stoppedMinDuration = 60 * time.Second
	stoppedZoneRadius  = 200.0
	stoppedZoneRisk    = 60
	stoppedRisk        = 25.0

	routeWindow        = history.RecentWindow
	routeMinSamples    = 10
	routeThresholdM    = 2000.0
	routeDeviationRisk = 15.0

	patternMinSamples   = 20
	patternMinHourCount = 2
	unusualLateRisk     = 20.0
	unusualHourRisk     = 10.0
)

// ZoneLocator ищет ближайшую зону в радиусе
type ZoneLocator interface {
	NearestWithin(lat, lon, maxMeters float64) (models.RiskZone, float64, bool)
}

// StoppedMovement ищет остановку дольше минуты рядом с опасной зоной.
// recent - последние точки от новых к старым.
func StoppedMovement(now time.Time, recent []models.LocationSample, zones ZoneLocator) models.DetectionResult {
	res := models.DetectionResult{Detector: models.DetectorStoppedMovement}
	if len(recent) > stoppedWindow {
		recent = recent[:stoppedWindow]
	}
	if len(recent) < stoppedMinSamples {
		res.Reason = "Insufficient location history"
		return res
	}

	stopped := 0
	for _, s := range recent {
		if s.SpeedKmh >= stoppedSpeedKmh {
			break
		}
		stopped++
	}
	if stopped == 0 {
		res.Reason = "User is currently moving"
		return res
	}

	newest := recent[0]
	duration := newest.Timestamp.Sub(recent[stopped-1].Timestamp)
	seconds := int(duration.Seconds())
	if duration < stoppedMinDuration {
		res.Reason = fmt.Sprintf("Stopped for only %ds (threshold: %ds)", seconds, int(stoppedMinDuration.Seconds()))
		return res
	}

	zone, _, ok := zones.NearestWithin(newest.Latitude, newest.Longitude, stoppedZoneRadius)
	if !ok || zone.RiskLevel < stoppedZoneRisk {
		res.Reason = "Stopped in safe area"
		return res
	}

	res.IsAnomaly = true
	res.RiskIncrease = stoppedRisk
	res.StoppedSeconds = seconds
	res.ZoneName = zone.Name
	res.Reason = fmt.Sprintf("Stopped for %ds in high-risk zone (%s)", seconds, zone.Name)
	res.Action = &models.SafetyAction{
		UserID:     newest.UserID,
		ActionType: models.ActionWarningIgnored,
		Latitude:   newest.Latitude,
		Longitude:  newest.Longitude,
		Timestamp:  now,
		Outcome:    models.OutcomeUnknown,
		Notes:      fmt.Sprintf("Stopped for %ds in %s", seconds, zone.Name),
	}
	return res
}

// RouteDeviation сравнивает текущую точку с центром привычной области пользователя
func RouteDeviation(now time.Time, recent []models.LocationSample) models.DetectionResult {
	res := models.DetectionResult{Detector: models.DetectorRouteDeviation}
	if len(recent) > routeWindow {
		recent = recent[:routeWindow]
	}
	if len(recent) < routeMinSamples {
		res.Reason = "Insufficient location history for pattern analysis"
		return res
	}

	lats := make([]float64, len(recent))
	lons := make([]float64, len(recent))
	for i, s := range recent {
		lats[i] = s.Latitude
		lons[i] = s.Longitude
	}
	centerLat, centerLon := geo.Centroid(lats, lons)

	current := recent[0]
	distance := geo.DistanceMeters(current.Latitude, current.Longitude, centerLat, centerLon)
	if distance <= routeThresholdM {
		res.Reason = "Within typical activity area"
		return res
	}

	meters := int(distance)
	res.IsAnomaly = true
	res.RiskIncrease = routeDeviationRisk
	res.DistanceFromTypical = meters
	res.Reason = fmt.Sprintf("%dm from typical activity area", meters)
	res.Action = &models.SafetyAction{
		UserID:     current.UserID,
		ActionType: models.ActionRouteIgnored,
		Latitude:   current.Latitude,
		Longitude:  current.Longitude,
		Timestamp:  now,
		Outcome:    models.OutcomeUnknown,
		Notes:      fmt.Sprintf("Deviated %dm from typical area", meters),
	}
	return res
}

// TimePattern проверяет, привычен ли текущий час для пользователя.
// Часы считаются в часовом поясе now.
func TimePattern(now time.Time, week []models.LocationSample) models.DetectionResult {
	res := models.DetectionResult{Detector: models.DetectorTimePattern}
	if len(week) < patternMinSamples {
		res.Reason = "Insufficient data for time pattern analysis"
		return res
	}

	counts := make(map[int]int, 24)
	for _, s := range week {
		counts[s.Timestamp.In(now.Location()).Hour()]++
	}
	var typical []int
	for hour, n := range counts {
		if n >= patternMinHourCount {
			typical = append(typical, hour)
		}
	}
	sort.Ints(typical)

	hour := now.Hour()
	if counts[hour] >= patternMinHourCount {
		res.Reason = "Active during typical hours"
		return res
	}

	res.IsAnomaly = true
	res.CurrentHour = hour
	res.TypicalHours = typical
	if IsLateNight(hour) {
		res.RiskIncrease = unusualLateRisk
		res.Reason = fmt.Sprintf("Active at %d:00 (unusual for this user) + late night", hour)
	} else {
		res.RiskIncrease = unusualHourRisk
		res.Reason = fmt.Sprintf("Active at %d:00 (unusual for this user)", hour)
	}
	return res
}

// IsLateNight - 22:00-05:59 с переходом через полночь
func IsLateNight(hour int) bool {
	return hour >= 22 || hour <= 5
}

// RunAll запускает все детекторы над окном истории
func RunAll(now time.Time, w history.Window, zones ZoneLocator) []models.DetectionResult {
	return []models.DetectionResult{
		StoppedMovement(now, w.Recent, zones),
		RouteDeviation(now, w.Recent),
		TimePattern(now, w.Week),
	}
}

// TotalRisk суммирует вклад сработавших детекторов
func TotalRisk(results []models.DetectionResult) float64 {
	total := 0.0
	for _, r := range results {
		if r.IsAnomaly {
			total += r.RiskIncrease
		}
	}
	return total
}
