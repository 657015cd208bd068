package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/emresource/emresource/internal/pkg/apperrors"
	"github.com/emresource/emresource/internal/pkg/models"
)

const donorColumns = `id, user_id, full_name, phone, blood_type, longitude, latitude,
	street, city, state, zip_code, country, is_available,
	show_full_name, show_phone, show_exact_location, max_distance_km,
	is_verified, rating, status, created_at, updated_at`

// CreateDonor inserts a donor profile. The unique index on user_id enforces
// one profile per identity.
func (r *EmergencyRepo) CreateDonor(ctx context.Context, donor *models.BloodDonor) error {
	query := `INSERT INTO donors (
		id, user_id, full_name, phone, blood_type, longitude, latitude,
		street, city, state, zip_code, country, is_available,
		show_full_name, show_phone, show_exact_location, max_distance_km,
		is_verified, rating, status, created_at, updated_at
	) VALUES (
		:id, :user_id, :full_name, :phone, :blood_type, :longitude, :latitude,
		:street, :city, :state, :zip_code, :country, :is_available,
		:show_full_name, :show_phone, :show_exact_location, :max_distance_km,
		:is_verified, :rating, :status, NOW(), NOW()
	) ON CONFLICT (user_id) DO NOTHING`

	result, err := r.db.NamedExecContext(ctx, query, donor.ToDTO())
	if err != nil {
		return fmt.Errorf("failed to create donor: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check donor insert: %w", err)
	}
	if rows == 0 {
		return apperrors.Conflict("a donor profile already exists for this account")
	}
	return nil
}

// UpdateDonor replaces the mutable fields of an existing profile.
func (r *EmergencyRepo) UpdateDonor(ctx context.Context, donor *models.BloodDonor) error {
	query := `UPDATE donors SET
		full_name = :full_name, phone = :phone, blood_type = :blood_type,
		longitude = :longitude, latitude = :latitude,
		street = :street, city = :city, state = :state, zip_code = :zip_code, country = :country,
		is_available = :is_available,
		show_full_name = :show_full_name, show_phone = :show_phone,
		show_exact_location = :show_exact_location, max_distance_km = :max_distance_km,
		updated_at = NOW()
	WHERE user_id = :user_id`

	result, err := r.db.NamedExecContext(ctx, query, donor.ToDTO())
	if err != nil {
		return fmt.Errorf("failed to update donor: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check donor update: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound("donor profile not found")
	}
	return nil
}

// GetDonorByUserID loads the profile owned by an identity.
func (r *EmergencyRepo) GetDonorByUserID(ctx context.Context, userID uuid.UUID) (*models.BloodDonor, error) {
	query := `SELECT ` + donorColumns + ` FROM donors WHERE user_id = $1`

	var dto models.DonorDTO
	err := r.db.GetContext(ctx, &dto, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("donor profile not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get donor: %w", err)
	}
	return dto.ToDonor(), nil
}

// GetDonorsByIDs loads a batch of profiles by donor id. Missing ids are
// skipped: the proximity index may hold points for deactivated profiles.
func (r *EmergencyRepo) GetDonorsByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.BloodDonor, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`SELECT `+donorColumns+` FROM donors WHERE id IN (?)`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build donor batch query: %w", err)
	}
	query = r.db.Rebind(query)

	var dtos []models.DonorDTO
	if err := r.db.SelectContext(ctx, &dtos, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get donors: %w", err)
	}

	donors := make([]*models.BloodDonor, 0, len(dtos))
	for i := range dtos {
		donors = append(donors, dtos[i].ToDonor())
	}
	return donors, nil
}

// SetDonorAvailability flips the availability flag on the caller's profile.
func (r *EmergencyRepo) SetDonorAvailability(ctx context.Context, userID uuid.UUID, available bool) error {
	query := `UPDATE donors SET is_available = $1, updated_at = NOW() WHERE user_id = $2`

	result, err := r.db.ExecContext(ctx, query, available, userID)
	if err != nil {
		return fmt.Errorf("failed to set donor availability: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check availability update: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound("donor profile not found")
	}
	return nil
}
