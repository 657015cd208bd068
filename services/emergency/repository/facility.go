package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/emresource/emresource/internal/pkg/models"
)

const facilityColumns = `id, owner_id, name, type, longitude, latitude,
	street, city, state, zip_code, country, phone,
	is_verified, rating, is_active, created_at, updated_at`

// CreateFacility inserts a new medical facility.
func (r *EmergencyRepo) CreateFacility(ctx context.Context, facility *models.MedicalFacility) error {
	query := `INSERT INTO facilities (
		id, owner_id, name, type, longitude, latitude,
		street, city, state, zip_code, country, phone,
		is_verified, rating, is_active, created_at, updated_at
	) VALUES (
		:id, :owner_id, :name, :type, :longitude, :latitude,
		:street, :city, :state, :zip_code, :country, :phone,
		:is_verified, :rating, :is_active, NOW(), NOW()
	)`

	if _, err := r.db.NamedExecContext(ctx, query, facility.ToDTO()); err != nil {
		return fmt.Errorf("failed to create facility: %w", err)
	}
	return nil
}

// GetFacilitiesByIDs loads a batch of facilities by id; inactive ones are
// filtered out at the store so they never reach a search result.
func (r *EmergencyRepo) GetFacilitiesByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.MedicalFacility, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`SELECT `+facilityColumns+` FROM facilities WHERE is_active = TRUE AND id IN (?)`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build facility batch query: %w", err)
	}
	query = r.db.Rebind(query)

	var dtos []models.FacilityDTO
	if err := r.db.SelectContext(ctx, &dtos, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get facilities: %w", err)
	}

	facilities := make([]*models.MedicalFacility, 0, len(dtos))
	for i := range dtos {
		facilities = append(facilities, dtos[i].ToFacility())
	}
	return facilities, nil
}
