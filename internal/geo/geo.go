// Package geo holds the pure geometry used by the cache and the evaluator:
// great-circle distance and the exact point-in-polygon test. No state, no
// dependencies, unit-testable without a spatial database.
package geo

import "math"

const earthRadiusM = 6371000.0

func Deg2Rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// HaversineM returns the great-circle distance between two points in meters.
func HaversineM(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := Deg2Rad(lat2 - lat1)
	dLng := Deg2Rad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(Deg2Rad(lat1))*math.Cos(Deg2Rad(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusM * c
}

func ValidLat(lat float64) bool { return lat >= -90 && lat <= 90 }
func ValidLng(lng float64) bool { return lng >= -180 && lng <= 180 }

// PointInRing runs the ray casting test against a closed lng/lat ring.
// The ring is treated as closed whether or not the last vertex repeats the
// first. Boundary points are EXCLUSIVE on the top and right edges and
// inclusive on the bottom and left, per the usual crossing-number asymmetry.
// Callers must not rely on boundary points being inside.
func PointInRing(lat, lng float64, ring [][2]float64) bool {
	n := len(ring)
	if n < 3 {
		return false
	}
	// Ignore a repeated closing vertex so it is not counted twice.
	if ring[0] == ring[n-1] {
		n--
		if n < 3 {
			return false
		}
	}

	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := ring[i][0], ring[i][1]
		xj, yj := ring[j][0], ring[j][1]

		if (yi > lat) != (yj > lat) &&
			lng < (xj-xi)*(lat-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}
	return inside
}

// RingClosed reports whether the ring has at least 3 distinct vertices and
// the first vertex equals the last.
func RingClosed(ring [][2]float64) bool {
	if len(ring) < 4 {
		return false
	}
	return ring[0] == ring[len(ring)-1]
}

// MaxDistanceFromM returns the largest distance in meters from (lat,lng) to
// any ring vertex. Used to verify a geofence radius upper-bounds its polygon.
func MaxDistanceFromM(lat, lng float64, ring [][2]float64) float64 {
	var max float64
	for _, v := range ring {
		if d := HaversineM(lat, lng, v[1], v[0]); d > max {
			max = d
		}
	}
	return max
}
