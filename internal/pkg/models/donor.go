package models

import (
	"time"

	"github.com/google/uuid"
)

// BloodType is one of the 8 ABO/Rh combinations.
type BloodType string

const (
	BloodAPos  BloodType = "A+"
	BloodANeg  BloodType = "A-"
	BloodBPos  BloodType = "B+"
	BloodBNeg  BloodType = "B-"
	BloodABPos BloodType = "AB+"
	BloodABNeg BloodType = "AB-"
	BloodOPos  BloodType = "O+"
	BloodONeg  BloodType = "O-"
)

// Valid reports whether the blood type is a known ABO/Rh combination.
func (b BloodType) Valid() bool {
	switch b {
	case BloodAPos, BloodANeg, BloodBPos, BloodBNeg, BloodABPos, BloodABNeg, BloodOPos, BloodONeg:
		return true
	}
	return false
}

// DonorStatus is the administrative state of a donor profile.
type DonorStatus string

const (
	DonorStatusActive    DonorStatus = "active"
	DonorStatusInactive  DonorStatus = "inactive"
	DonorStatusSuspended DonorStatus = "suspended"
)

// PrivacyPrefs are the donor's own disclosure preferences, applied by the
// redactor before any donor record leaves the engine.
type PrivacyPrefs struct {
	ShowFullName      bool    `json:"show_full_name" db:"show_full_name"`
	ShowPhone         bool    `json:"show_phone" db:"show_phone"`
	ShowExactLocation bool    `json:"show_exact_location" db:"show_exact_location"`
	MaxDistanceKm     float64 `json:"max_distance_km" db:"max_distance_km"`
}

// BloodDonor is a donor profile. One profile per identity; mutable by its
// owner or an admin, availability toggled by the donor.
type BloodDonor struct {
	ID          uuid.UUID    `json:"id" db:"id"`
	UserID      uuid.UUID    `json:"user_id" db:"user_id"`
	FullName    string       `json:"full_name" db:"full_name"`
	Phone       string       `json:"phone" db:"phone"`
	BloodType   BloodType    `json:"blood_type" db:"blood_type"`
	Location    GeoPoint     `json:"location"`
	Address     Address      `json:"address"`
	IsAvailable bool         `json:"is_available" db:"is_available"`
	Privacy     PrivacyPrefs `json:"privacy"`
	IsVerified  bool         `json:"is_verified" db:"is_verified"`
	Rating      float64      `json:"rating" db:"rating"`
	Status      DonorStatus  `json:"status" db:"status"`
	CreatedAt   time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at" db:"updated_at"`
}

// DonorView is the disclosed form of a donor record. Blood type,
// availability and distance are never redacted, only identity, contact and
// location precision.
type DonorView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone,omitempty"`
	BloodType   BloodType `json:"blood_type"`
	Location    GeoPoint  `json:"location"`
	City        string    `json:"city,omitempty"`
	IsAvailable bool      `json:"is_available"`
	IsVerified  bool      `json:"is_verified"`
	Rating      float64   `json:"rating"`
	DistanceKm  float64   `json:"distance_km"`
	Redacted    bool      `json:"-"`
}

// DonorRegistration is the payload for donor profile creation and update.
type DonorRegistration struct {
	FullName    string       `json:"full_name"`
	Phone       string       `json:"phone"`
	BloodType   BloodType    `json:"blood_type"`
	Location    GeoPoint     `json:"location"`
	Address     Address      `json:"address"`
	IsAvailable bool         `json:"is_available"`
	Privacy     PrivacyPrefs `json:"privacy"`
}

// DonorDTO flattens nested structs for database operations.
type DonorDTO struct {
	ID                uuid.UUID   `db:"id"`
	UserID            uuid.UUID   `db:"user_id"`
	FullName          string      `db:"full_name"`
	Phone             string      `db:"phone"`
	BloodType         BloodType   `db:"blood_type"`
	Longitude         float64     `db:"longitude"`
	Latitude          float64     `db:"latitude"`
	Street            string      `db:"street"`
	City              string      `db:"city"`
	State             string      `db:"state"`
	ZipCode           string      `db:"zip_code"`
	Country           string      `db:"country"`
	IsAvailable       bool        `db:"is_available"`
	ShowFullName      bool        `db:"show_full_name"`
	ShowPhone         bool        `db:"show_phone"`
	ShowExactLocation bool        `db:"show_exact_location"`
	MaxDistanceKm     float64     `db:"max_distance_km"`
	IsVerified        bool        `db:"is_verified"`
	Rating            float64     `db:"rating"`
	Status            DonorStatus `db:"status"`
	CreatedAt         time.Time   `db:"created_at"`
	UpdatedAt         time.Time   `db:"updated_at"`
}

// ToDonor converts a flat DTO back into the nested model.
func (dto *DonorDTO) ToDonor() *BloodDonor {
	return &BloodDonor{
		ID:        dto.ID,
		UserID:    dto.UserID,
		FullName:  dto.FullName,
		Phone:     dto.Phone,
		BloodType: dto.BloodType,
		Location:  GeoPoint{Longitude: dto.Longitude, Latitude: dto.Latitude},
		Address: Address{
			Street:  dto.Street,
			City:    dto.City,
			State:   dto.State,
			ZipCode: dto.ZipCode,
			Country: dto.Country,
		},
		IsAvailable: dto.IsAvailable,
		Privacy: PrivacyPrefs{
			ShowFullName:      dto.ShowFullName,
			ShowPhone:         dto.ShowPhone,
			ShowExactLocation: dto.ShowExactLocation,
			MaxDistanceKm:     dto.MaxDistanceKm,
		},
		IsVerified: dto.IsVerified,
		Rating:     dto.Rating,
		Status:     dto.Status,
		CreatedAt:  dto.CreatedAt,
		UpdatedAt:  dto.UpdatedAt,
	}
}

// ToDTO flattens the donor for named-parameter SQL.
func (d *BloodDonor) ToDTO() *DonorDTO {
	return &DonorDTO{
		ID:                d.ID,
		UserID:            d.UserID,
		FullName:          d.FullName,
		Phone:             d.Phone,
		BloodType:         d.BloodType,
		Longitude:         d.Location.Longitude,
		Latitude:          d.Location.Latitude,
		Street:            d.Address.Street,
		City:              d.Address.City,
		State:             d.Address.State,
		ZipCode:           d.Address.ZipCode,
		Country:           d.Address.Country,
		IsAvailable:       d.IsAvailable,
		ShowFullName:      d.Privacy.ShowFullName,
		ShowPhone:         d.Privacy.ShowPhone,
		ShowExactLocation: d.Privacy.ShowExactLocation,
		MaxDistanceKm:     d.Privacy.MaxDistanceKm,
		IsVerified:        d.IsVerified,
		Rating:            d.Rating,
		Status:            d.Status,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}
