package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/emresource/emresource/internal/pkg/models"
)

func TestCalculateDistance(t *testing.T) {
	bengaluru := models.GeoPoint{Longitude: 77.5946, Latitude: 12.9716}
	mysuru := models.GeoPoint{Longitude: 76.6394, Latitude: 12.2958}

	// Roughly 128km apart by road-crow distance.
	distance := CalculateDistance(bengaluru, mysuru)
	assert.InDelta(t, 128, distance, 5)

	assert.Zero(t, CalculateDistance(bengaluru, bengaluru))
}

func TestCoarsePoint_MovesExactLocation(t *testing.T) {
	exact := models.GeoPoint{Longitude: 77.59461, Latitude: 12.97163}
	coarse := CoarsePoint(exact)

	assert.NotEqual(t, exact, coarse)
	// The cell center stays within the cell, so it cannot drift beyond the
	// cell diagonal (~1.3km for 6 characters).
	assert.Less(t, CalculateDistance(exact, coarse), 1.5)
}

func TestCoarsePoint_Idempotent(t *testing.T) {
	exact := models.GeoPoint{Longitude: 77.59461, Latitude: 12.97163}
	once := CoarsePoint(exact)
	twice := CoarsePoint(once)

	assert.Equal(t, once, twice)
}

func TestClampRadiusKm(t *testing.T) {
	assert.Equal(t, 10.0, ClampRadiusKm(0, 10, 100))
	assert.Equal(t, 10.0, ClampRadiusKm(-5, 10, 100))
	assert.Equal(t, 42.0, ClampRadiusKm(42, 10, 100))
	assert.Equal(t, 100.0, ClampRadiusKm(5000, 10, 100))
}
