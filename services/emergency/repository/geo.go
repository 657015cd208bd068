package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/emresource/emresource/internal/pkg/constants"
	"github.com/emresource/emresource/internal/pkg/models"
)

// The proximity index keeps one geo set per entity kind. Queries return raw
// (id, point, distance) hits ascending by distance; any further ranking
// belongs to the usecase.

func (r *EmergencyRepo) indexLocation(ctx context.Context, key string, id uuid.UUID, point models.GeoPoint) error {
	if err := r.cache.GeoAdd(ctx, key, point.Longitude, point.Latitude, id.String()); err != nil {
		return fmt.Errorf("failed to index location in %s: %w", key, err)
	}
	return nil
}

func (r *EmergencyRepo) nearby(ctx context.Context, key string, origin models.GeoPoint, radiusKm float64) ([]models.NearbyEntity, error) {
	locations, err := r.cache.GeoRadius(ctx, key, origin.Longitude, origin.Latitude, radiusKm, "km")
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", key, err)
	}

	entities := make([]models.NearbyEntity, 0, len(locations))
	for _, loc := range locations {
		entities = append(entities, models.NearbyEntity{
			ID:       loc.Name,
			Point:    models.GeoPoint{Longitude: loc.Longitude, Latitude: loc.Latitude},
			Distance: loc.Dist,
		})
	}
	return entities, nil
}

func (r *EmergencyRepo) IndexRequestLocation(ctx context.Context, id uuid.UUID, point models.GeoPoint) error {
	return r.indexLocation(ctx, constants.KeyRequestGeo, id, point)
}

// RemoveRequestLocation drops a closed request from the index so it stops
// surfacing in proximity queries.
func (r *EmergencyRepo) RemoveRequestLocation(ctx context.Context, id uuid.UUID) error {
	if err := r.cache.GeoRemove(ctx, constants.KeyRequestGeo, id.String()); err != nil {
		return fmt.Errorf("failed to remove request from index: %w", err)
	}
	return nil
}

func (r *EmergencyRepo) NearbyRequests(ctx context.Context, origin models.GeoPoint, radiusKm float64) ([]models.NearbyEntity, error) {
	return r.nearby(ctx, constants.KeyRequestGeo, origin, radiusKm)
}

func (r *EmergencyRepo) IndexDonorLocation(ctx context.Context, id uuid.UUID, point models.GeoPoint) error {
	return r.indexLocation(ctx, constants.KeyDonorGeo, id, point)
}

func (r *EmergencyRepo) NearbyDonors(ctx context.Context, origin models.GeoPoint, radiusKm float64) ([]models.NearbyEntity, error) {
	return r.nearby(ctx, constants.KeyDonorGeo, origin, radiusKm)
}

func (r *EmergencyRepo) IndexFacilityLocation(ctx context.Context, id uuid.UUID, point models.GeoPoint) error {
	return r.indexLocation(ctx, constants.KeyFacilityGeo, id, point)
}

func (r *EmergencyRepo) NearbyFacilities(ctx context.Context, origin models.GeoPoint, radiusKm float64) ([]models.NearbyEntity, error) {
	return r.nearby(ctx, constants.KeyFacilityGeo, origin, radiusKm)
}
