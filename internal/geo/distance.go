// Package geo содержит геометрию, общую для всего движка.
//
// Расстояния считаются по плоскому приближению: 1 градус ≈ 111 000 м по обеим осям.
// Для масштаба города этого достаточно, и все компоненты используют одну и ту же формулу.
package geo

import "math"

// MetersPerDegree - длина одного градуса в принятом приближении
const MetersPerDegree = 111000.0

// DistanceMeters возвращает плоское расстояние между двумя точками в метрах
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	return math.Hypot(lat2-lat1, lon2-lon1) * MetersPerDegree
}

// MetersToDegrees переводит метры в градусы того же приближения
func MetersToDegrees(meters float64) float64 {
	return meters / MetersPerDegree
}

// ValidCoordinates проверяет диапазоны широты и долготы
func ValidCoordinates(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) {
		return false
	}
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// Centroid возвращает среднюю широту и долготу набора точек
func Centroid(lats, lons []float64) (float64, float64) {
	if len(lats) == 0 || len(lats) != len(lons) {
		return 0, 0
	}
	var sumLat, sumLon float64
	for i := range lats {
		sumLat += lats[i]
		sumLon += lons[i]
	}
	n := float64(len(lats))
	return sumLat / n, sumLon / n
}
