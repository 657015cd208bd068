package models

import (
	"time"

	"github.com/google/uuid"
)

// RequestDTO flattens an emergency request for database operations.
type RequestDTO struct {
	ID          uuid.UUID     `db:"id"`
	RequesterID uuid.UUID     `db:"requester_id"`
	Type        ResourceType  `db:"type"`
	Urgency     Urgency       `db:"urgency"`
	BloodType   BloodType     `db:"blood_type"`
	Longitude   float64       `db:"longitude"`
	Latitude    float64       `db:"latitude"`
	Street      string        `db:"street"`
	City        string        `db:"city"`
	State       string        `db:"state"`
	ZipCode     string        `db:"zip_code"`
	Country     string        `db:"country"`
	Description string        `db:"description"`
	Deadline    *time.Time    `db:"deadline"`
	Status      RequestStatus `db:"status"`
	FulfilledBy *uuid.UUID    `db:"fulfilled_by"`
	FulfilledAt *time.Time    `db:"fulfilled_at"`
	Notes       string        `db:"fulfillment_notes"`
	CreatedAt   time.Time     `db:"created_at"`
	UpdatedAt   time.Time     `db:"updated_at"`
}

// ToRequest converts a flat DTO back into the nested model.
func (dto *RequestDTO) ToRequest() *EmergencyRequest {
	req := &EmergencyRequest{
		ID:          dto.ID,
		RequesterID: dto.RequesterID,
		Type:        dto.Type,
		Urgency:     dto.Urgency,
		BloodType:   dto.BloodType,
		Location:    GeoPoint{Longitude: dto.Longitude, Latitude: dto.Latitude},
		Address: Address{
			Street:  dto.Street,
			City:    dto.City,
			State:   dto.State,
			ZipCode: dto.ZipCode,
			Country: dto.Country,
		},
		Description: dto.Description,
		Deadline:    dto.Deadline,
		Status:      dto.Status,
		CreatedAt:   dto.CreatedAt,
		UpdatedAt:   dto.UpdatedAt,
	}
	if dto.FulfilledBy != nil && dto.FulfilledAt != nil {
		req.Fulfillment = &Fulfillment{
			FulfilledBy: *dto.FulfilledBy,
			FulfilledAt: *dto.FulfilledAt,
			Notes:       dto.Notes,
		}
	}
	return req
}

// ToDTO flattens the request for named-parameter SQL.
func (r *EmergencyRequest) ToDTO() *RequestDTO {
	dto := &RequestDTO{
		ID:          r.ID,
		RequesterID: r.RequesterID,
		Type:        r.Type,
		Urgency:     r.Urgency,
		BloodType:   r.BloodType,
		Longitude:   r.Location.Longitude,
		Latitude:    r.Location.Latitude,
		Street:      r.Address.Street,
		City:        r.Address.City,
		State:       r.Address.State,
		ZipCode:     r.Address.ZipCode,
		Country:     r.Address.Country,
		Description: r.Description,
		Deadline:    r.Deadline,
		Status:      r.Status,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if r.Fulfillment != nil {
		dto.FulfilledBy = &r.Fulfillment.FulfilledBy
		dto.FulfilledAt = &r.Fulfillment.FulfilledAt
		dto.Notes = r.Fulfillment.Notes
	}
	return dto
}

// FacilityDTO flattens a medical facility for database operations.
type FacilityDTO struct {
	ID         uuid.UUID    `db:"id"`
	OwnerID    uuid.UUID    `db:"owner_id"`
	Name       string       `db:"name"`
	Type       FacilityType `db:"type"`
	Longitude  float64      `db:"longitude"`
	Latitude   float64      `db:"latitude"`
	Street     string       `db:"street"`
	City       string       `db:"city"`
	State      string       `db:"state"`
	ZipCode    string       `db:"zip_code"`
	Country    string       `db:"country"`
	Phone      string       `db:"phone"`
	IsVerified bool         `db:"is_verified"`
	Rating     float64      `db:"rating"`
	IsActive   bool         `db:"is_active"`
	CreatedAt  time.Time    `db:"created_at"`
	UpdatedAt  time.Time    `db:"updated_at"`
}

// ToFacility converts a flat DTO back into the nested model.
func (dto *FacilityDTO) ToFacility() *MedicalFacility {
	return &MedicalFacility{
		ID:       dto.ID,
		OwnerID:  dto.OwnerID,
		Name:     dto.Name,
		Type:     dto.Type,
		Location: GeoPoint{Longitude: dto.Longitude, Latitude: dto.Latitude},
		Address: Address{
			Street:  dto.Street,
			City:    dto.City,
			State:   dto.State,
			ZipCode: dto.ZipCode,
			Country: dto.Country,
		},
		Phone:      dto.Phone,
		IsVerified: dto.IsVerified,
		Rating:     dto.Rating,
		IsActive:   dto.IsActive,
		CreatedAt:  dto.CreatedAt,
		UpdatedAt:  dto.UpdatedAt,
	}
}

// ToDTO flattens the facility for named-parameter SQL.
func (f *MedicalFacility) ToDTO() *FacilityDTO {
	return &FacilityDTO{
		ID:         f.ID,
		OwnerID:    f.OwnerID,
		Name:       f.Name,
		Type:       f.Type,
		Longitude:  f.Location.Longitude,
		Latitude:   f.Location.Latitude,
		Street:     f.Address.Street,
		City:       f.Address.City,
		State:      f.Address.State,
		ZipCode:    f.Address.ZipCode,
		Country:    f.Address.Country,
		Phone:      f.Phone,
		IsVerified: f.IsVerified,
		Rating:     f.Rating,
		IsActive:   f.IsActive,
		CreatedAt:  f.CreatedAt,
		UpdatedAt:  f.UpdatedAt,
	}
}
