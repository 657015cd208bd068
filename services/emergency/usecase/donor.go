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

func validateDonorRegistration(reg *models.DonorRegistration) error {
	if reg.FullName == "" || reg.Phone == "" {
		return apperrors.Validation("full name and phone are required")
	}
	if !reg.BloodType.Valid() {
		return apperrors.Validation("unknown blood type")
	}
	if !reg.Location.Valid() {
		return apperrors.Validation("location is out of bounds")
	}
	return nil
}

// RegisterDonor creates the caller's donor profile, one per identity, and
// indexes its location.
func (uc *EmergencyUC) RegisterDonor(ctx context.Context, userID uuid.UUID, reg *models.DonorRegistration) (*models.BloodDonor, error) {
	if err := validateDonorRegistration(reg); err != nil {
		return nil, err
	}

	donor := &models.BloodDonor{
		ID:          uuid.New(),
		UserID:      userID,
		FullName:    reg.FullName,
		Phone:       reg.Phone,
		BloodType:   reg.BloodType,
		Location:    reg.Location,
		Address:     reg.Address,
		IsAvailable: reg.IsAvailable,
		Privacy:     reg.Privacy,
		Status:      models.DonorStatusActive,
	}
	if err := uc.repo.CreateDonor(ctx, donor); err != nil {
		return nil, err
	}

	if err := uc.repo.IndexDonorLocation(ctx, donor.ID, donor.Location); err != nil {
		logger.Warn("failed to index donor location",
			logger.String("donor_id", donor.ID.String()),
			logger.Err(err))
	}

	return donor, nil
}

// UpdateDonor replaces the caller's profile fields and refreshes the
// location index.
func (uc *EmergencyUC) UpdateDonor(ctx context.Context, userID uuid.UUID, reg *models.DonorRegistration) (*models.BloodDonor, error) {
	if err := validateDonorRegistration(reg); err != nil {
		return nil, err
	}

	donor, err := uc.repo.GetDonorByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	donor.FullName = reg.FullName
	donor.Phone = reg.Phone
	donor.BloodType = reg.BloodType
	donor.Location = reg.Location
	donor.Address = reg.Address
	donor.IsAvailable = reg.IsAvailable
	donor.Privacy = reg.Privacy

	if err := uc.repo.UpdateDonor(ctx, donor); err != nil {
		return nil, err
	}

	if err := uc.repo.IndexDonorLocation(ctx, donor.ID, donor.Location); err != nil {
		logger.Warn("failed to reindex donor location",
			logger.String("donor_id", donor.ID.String()),
			logger.Err(err))
	}

	return donor, nil
}

func (uc *EmergencyUC) SetDonorAvailability(ctx context.Context, userID uuid.UUID, available bool) error {
	return uc.repo.SetDonorAvailability(ctx, userID, available)
}

// GetDonorProfile returns the caller's own profile, unredacted: the privacy
// redactor guards disclosure to third parties, not self-view.
func (uc *EmergencyUC) GetDonorProfile(ctx context.Context, userID uuid.UUID) (*models.BloodDonor, error) {
	return uc.repo.GetDonorByUserID(ctx, userID)
}

// FindNearbyDonors runs a radius query, filters to available (and optionally
// blood-type matching) donors, and redacts every record before it leaves the
// engine. Ordering: distance ascending, then verified first, then rating.
func (uc *EmergencyUC) FindNearbyDonors(ctx context.Context, origin models.GeoPoint, radiusKm float64, bloodType models.BloodType) ([]*models.DonorView, error) {
	if !origin.Valid() {
		return nil, apperrors.Validation("location is out of bounds")
	}
	if bloodType != "" && !bloodType.Valid() {
		return nil, apperrors.Validation("unknown blood type")
	}
	radiusKm = utils.ClampRadiusKm(radiusKm, uc.cfg.Geo.DefaultDonorRadiusKm, uc.cfg.Geo.MaxRadiusKm)

	hits, err := uc.repo.NearbyDonors(ctx, origin, radiusKm)
	if err != nil {
		return nil, err
	}
	if len(hits) == 0 {
		return []*models.DonorView{}, nil
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

	donors, err := uc.repo.GetDonorsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	views := make([]*models.DonorView, 0, len(donors))
	for _, donor := range donors {
		if !donor.IsAvailable || donor.Status != models.DonorStatusActive {
			continue
		}
		if bloodType != "" && donor.BloodType != bloodType {
			continue
		}
		distance := distances[donor.ID.String()]
		// Donors cap how far away they are willing to be surfaced.
		if donor.Privacy.MaxDistanceKm > 0 && distance > donor.Privacy.MaxDistanceKm {
			continue
		}
		views = append(views, RedactDonor(donor, distance))
	}

	sort.SliceStable(views, func(i, j int) bool {
		if views[i].DistanceKm != views[j].DistanceKm {
			return views[i].DistanceKm < views[j].DistanceKm
		}
		if views[i].IsVerified != views[j].IsVerified {
			return views[i].IsVerified
		}
		return views[i].Rating > views[j].Rating
	})

	return views, nil
}
