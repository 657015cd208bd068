package models

import (
	"time"

	"github.com/google/uuid"
)

// FacilityType is the kind of medical facility.
type FacilityType string

const (
	FacilityHospital       FacilityType = "hospital"
	FacilityClinic         FacilityType = "clinic"
	FacilityPharmacy       FacilityType = "pharmacy"
	FacilityDiagnostic     FacilityType = "diagnostic"
	FacilityBloodBank      FacilityType = "blood_bank"
	FacilityOxygenSupplier FacilityType = "oxygen_supplier"
)

// Valid reports whether the facility type is known.
func (t FacilityType) Valid() bool {
	switch t {
	case FacilityHospital, FacilityClinic, FacilityPharmacy,
		FacilityDiagnostic, FacilityBloodBank, FacilityOxygenSupplier:
		return true
	}
	return false
}

// MedicalFacility is a care provider location. Its GeoPoint is authoritative
// and mutable only by its owner.
type MedicalFacility struct {
	ID         uuid.UUID    `json:"id" db:"id"`
	OwnerID    uuid.UUID    `json:"owner_id" db:"owner_id"`
	Name       string       `json:"name" db:"name"`
	Type       FacilityType `json:"type" db:"type"`
	Location   GeoPoint     `json:"location"`
	Address    Address      `json:"address"`
	Phone      string       `json:"phone" db:"phone"`
	IsVerified bool         `json:"is_verified" db:"is_verified"`
	Rating     float64      `json:"rating" db:"rating"`
	IsActive   bool         `json:"is_active" db:"is_active"`
	DistanceKm float64      `json:"distance_km,omitempty"`
	CreatedAt  time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at" db:"updated_at"`
}

// FacilityPayload is the creation/update payload for a facility.
type FacilityPayload struct {
	Name     string       `json:"name"`
	Type     FacilityType `json:"type"`
	Location GeoPoint     `json:"location"`
	Address  Address      `json:"address"`
	Phone    string       `json:"phone"`
}
