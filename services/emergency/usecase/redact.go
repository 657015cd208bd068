package usecase

import (
	"github.com/emresource/emresource/internal/pkg/models"
	"github.com/emresource/emresource/internal/utils"
)

// RedactDonor produces the disclosed view of a donor record under the
// donor's own privacy preferences. It is pure: two calls with equal input
// yield equal output, and re-redacting a view's fields changes nothing.
// Blood type, availability and distance are always preserved.
func RedactDonor(donor *models.BloodDonor, distanceKm float64) *models.DonorView {
	view := &models.DonorView{
		ID:          donor.ID.String(),
		Name:        donor.FullName,
		BloodType:   donor.BloodType,
		Location:    donor.Location,
		City:        donor.Address.City,
		IsAvailable: donor.IsAvailable,
		IsVerified:  donor.IsVerified,
		Rating:      donor.Rating,
		DistanceKm:  distanceKm,
	}

	if !donor.Privacy.ShowFullName {
		view.Name = utils.MaskName(donor.FullName)
		view.Redacted = true
	}
	if donor.Privacy.ShowPhone {
		view.Phone = donor.Phone
	} else if donor.Phone != "" {
		view.Phone = utils.MaskPhone(donor.Phone)
		view.Redacted = true
	}
	if !donor.Privacy.ShowExactLocation {
		view.Location = utils.CoarsePoint(donor.Location)
		view.Redacted = true
	}

	return view
}
