package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"

	"github.com/emresource/emresource/internal/pkg/models"
)

// CoarseGeohashPrecision is the cell size used when a donor hides their
// exact location: 6 characters is roughly a 1.2km x 0.6km cell.
const CoarseGeohashPrecision = 6

// CalculateDistance returns the great-circle distance between two points in
// kilometers using the Haversine formula.
func CalculateDistance(p1, p2 models.GeoPoint) float64 {
	// Earth's radius in kilometers
	const earthRadius = 6371.0

	lat1 := p1.Latitude * math.Pi / 180.0
	lon1 := p1.Longitude * math.Pi / 180.0
	lat2 := p2.Latitude * math.Pi / 180.0
	lon2 := p2.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}

// CoarsePoint snaps a point to the center of its coarse geohash cell,
// hiding the exact address while preserving approximate proximity. Snapping
// is idempotent: a cell center maps back to the same cell.
func CoarsePoint(p models.GeoPoint) models.GeoPoint {
	hash := geohash.EncodeWithPrecision(p.Latitude, p.Longitude, CoarseGeohashPrecision)
	box := geohash.BoundingBox(hash)
	lat, lng := box.Center()
	return models.GeoPoint{Longitude: lng, Latitude: lat}
}

// EncodeLocation converts a point to a geohash string.
func EncodeLocation(p models.GeoPoint, precision uint) string {
	return geohash.EncodeWithPrecision(p.Latitude, p.Longitude, precision)
}

// ClampRadiusKm bounds a client-provided radius: non-positive values fall
// back to the default, anything beyond the maximum is clamped to it.
func ClampRadiusKm(radiusKm, defaultKm, maxKm float64) float64 {
	if radiusKm <= 0 {
		radiusKm = defaultKm
	}
	if radiusKm > maxKm {
		return maxKm
	}
	return radiusKm
}
