package usecase

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/emresource/emresource/internal/pkg/apperrors"
	"github.com/emresource/emresource/internal/pkg/logger"
	"github.com/emresource/emresource/internal/pkg/models"
	"github.com/emresource/emresource/internal/utils"
)

// CreateFacility registers a medical facility owned by the caller and
// indexes its location.
func (uc *EmergencyUC) CreateFacility(ctx context.Context, ownerID uuid.UUID, payload *models.FacilityPayload) (*models.MedicalFacility, error) {
	if payload.Name == "" {
		return nil, apperrors.Validation("facility name is required")
	}
	if !payload.Type.Valid() {
		return nil, apperrors.Validation("unknown facility type")
	}
	if !payload.Location.Valid() {
		return nil, apperrors.Validation("location is out of bounds")
	}

	facility := &models.MedicalFacility{
		ID:       uuid.New(),
		OwnerID:  ownerID,
		Name:     payload.Name,
		Type:     payload.Type,
		Location: payload.Location,
		Address:  payload.Address,
		Phone:    payload.Phone,
		IsActive: true,
	}
	if err := uc.repo.CreateFacility(ctx, facility); err != nil {
		return nil, err
	}

	if err := uc.repo.IndexFacilityLocation(ctx, facility.ID, facility.Location); err != nil {
		logger.Warn("failed to index facility location",
			logger.String("facility_id", facility.ID.String()),
			logger.Err(err))
	}

	return facility, nil
}

// FindNearbyFacilities runs a radius query over active facilities, verified
// ones first, then by distance.
func (uc *EmergencyUC) FindNearbyFacilities(ctx context.Context, origin models.GeoPoint, radiusKm float64, facilityType models.FacilityType) ([]*models.MedicalFacility, error) {
	if !origin.Valid() {
		return nil, apperrors.Validation("location is out of bounds")
	}
	if facilityType != "" && !facilityType.Valid() {
		return nil, apperrors.Validation("unknown facility type")
	}
	radiusKm = utils.ClampRadiusKm(radiusKm, uc.cfg.Geo.DefaultRequestRadiusKm, uc.cfg.Geo.MaxRadiusKm)

	hits, err := uc.repo.NearbyFacilities(ctx, origin, radiusKm)
	if err != nil {
		return nil, err
	}
	if len(hits) == 0 {
		return []*models.MedicalFacility{}, nil
	}

	distances := make(map[string]float64, len(hits))
	ids := make([]uuid.UUID, 0, len(hits))
	for _, hit := range hits {
		id, err := uuid.Parse(hit.ID)
		if err != nil {
			continue
		}
		ids = append(ids, id)
		distances[hit.ID] = hit.Distance
	}

	facilities, err := uc.repo.GetFacilitiesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	matched := make([]*models.MedicalFacility, 0, len(facilities))
	for _, facility := range facilities {
		if facilityType != "" && facility.Type != facilityType {
			continue
		}
		facility.DistanceKm = distances[facility.ID.String()]
		matched = append(matched, facility)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].IsVerified != matched[j].IsVerified {
			return matched[i].IsVerified
		}
		return matched[i].DistanceKm < matched[j].DistanceKm
	})

	return matched, nil
}
