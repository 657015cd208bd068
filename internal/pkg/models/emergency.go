package models

import (
	"time"

	"github.com/google/uuid"
)

// ResourceType is the kind of resource an emergency request asks for.
type ResourceType string

const (
	ResourceBlood     ResourceType = "blood"
	ResourceOxygen    ResourceType = "oxygen"
	ResourceAmbulance ResourceType = "ambulance"
	ResourceBed       ResourceType = "bed"
	ResourceMedicine  ResourceType = "medicine"
	ResourcePlasma    ResourceType = "plasma"
	ResourcePlatelets ResourceType = "platelets"
)

// Valid reports whether the resource type is a known kind.
func (t ResourceType) Valid() bool {
	switch t {
	case ResourceBlood, ResourceOxygen, ResourceAmbulance, ResourceBed,
		ResourceMedicine, ResourcePlasma, ResourcePlatelets:
		return true
	}
	return false
}

// Urgency is the ordinal priority of a request. It dominates distance in
// the default ranking exposed to responders.
type Urgency string

const (
	UrgencyCritical Urgency = "critical"
	UrgencyHigh     Urgency = "high"
	UrgencyMedium   Urgency = "medium"
	UrgencyLow      Urgency = "low"
)

// Rank returns the total order: critical > high > medium > low. Unknown
// urgencies rank lowest.
func (u Urgency) Rank() int {
	switch u {
	case UrgencyCritical:
		return 4
	case UrgencyHigh:
		return 3
	case UrgencyMedium:
		return 2
	case UrgencyLow:
		return 1
	}
	return 0
}

// Valid reports whether the urgency is a known level.
func (u Urgency) Valid() bool {
	return u.Rank() > 0
}

// RequestStatus is the lifecycle state of an emergency request. active is
// the sole non-terminal state.
type RequestStatus string

const (
	RequestStatusActive    RequestStatus = "active"
	RequestStatusFulfilled RequestStatus = "fulfilled"
	RequestStatusCancelled RequestStatus = "cancelled"
	RequestStatusExpired   RequestStatus = "expired"
)

// Terminal reports whether the status admits no further transitions.
func (s RequestStatus) Terminal() bool {
	switch s {
	case RequestStatusFulfilled, RequestStatusCancelled, RequestStatusExpired:
		return true
	}
	return false
}

// ResponseStatus is the state of a single responder's offer.
type ResponseStatus string

const (
	ResponseStatusPending  ResponseStatus = "pending"
	ResponseStatusAccepted ResponseStatus = "accepted"
	ResponseStatusDeclined ResponseStatus = "declined"
)

// Response is a third party's committed offer to help fulfill a request.
// At most one per (request, responder) pair.
type Response struct {
	ID           uuid.UUID      `json:"id" db:"id"`
	RequestID    uuid.UUID      `json:"request_id" db:"request_id"`
	ResponderID  uuid.UUID      `json:"responder_id" db:"responder_id"`
	Message      string         `json:"message" db:"message"`
	ContactInfo  string         `json:"contact_info" db:"contact_info"`
	Availability string         `json:"availability" db:"availability"`
	Status       ResponseStatus `json:"status" db:"status"`
	RespondedAt  time.Time      `json:"responded_at" db:"responded_at"`
}

// Fulfillment records who closed out a request and when.
type Fulfillment struct {
	FulfilledBy uuid.UUID `json:"fulfilled_by"`
	FulfilledAt time.Time `json:"fulfilled_at"`
	Notes       string    `json:"notes,omitempty"`
}

// EmergencyRequest is a time-critical resource request with its response
// sub-lifecycle.
type EmergencyRequest struct {
	ID          uuid.UUID     `json:"id" db:"id"`
	RequesterID uuid.UUID     `json:"requester_id" db:"requester_id"`
	Type        ResourceType  `json:"type" db:"type"`
	Urgency     Urgency       `json:"urgency" db:"urgency"`
	BloodType   BloodType     `json:"blood_type,omitempty" db:"blood_type"`
	Location    GeoPoint      `json:"location"`
	Address     Address       `json:"address"`
	Description string        `json:"description" db:"description"`
	Deadline    *time.Time    `json:"deadline,omitempty" db:"deadline"`
	Status      RequestStatus `json:"status" db:"status"`
	Responses   []Response    `json:"responses,omitempty"`
	Fulfillment *Fulfillment  `json:"fulfillment,omitempty"`
	DistanceKm  float64       `json:"distance_km,omitempty"`
	CreatedAt   time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" db:"updated_at"`
}

// RequestPayload is the creation payload for an emergency request.
type RequestPayload struct {
	Type        ResourceType `json:"type"`
	Urgency     Urgency      `json:"urgency"`
	BloodType   BloodType    `json:"blood_type,omitempty"`
	Location    GeoPoint     `json:"location"`
	Address     Address      `json:"address"`
	Description string       `json:"description"`
	Deadline    *time.Time   `json:"deadline,omitempty"`
}

// ResponsePayload is the body of POST /emergency/requests/:id/respond.
type ResponsePayload struct {
	Message      string `json:"message"`
	ContactInfo  string `json:"contact_info"`
	Availability string `json:"availability"`
}

// StatusUpdatePayload is the body of PATCH /emergency/requests/:id/status.
type StatusUpdatePayload struct {
	Status RequestStatus `json:"status"`
	Notes  string        `json:"notes,omitempty"`
}

// NearbyRequestsFilter narrows a proximity query over active requests.
type NearbyRequestsFilter struct {
	Type      ResourceType
	Urgency   Urgency
	BloodType BloodType
}

// RequestListFilter narrows the paged request listing.
type RequestListFilter struct {
	Type      ResourceType
	Urgency   Urgency
	Status    RequestStatus
	BloodType BloodType
	City      string
	Page      int
	Limit     int
}

// EmergencyStats is the platform-level overview counters.
type EmergencyStats struct {
	ActiveRequests    int `json:"active_requests"`
	FulfilledRequests int `json:"fulfilled_requests"`
	CriticalRequests  int `json:"critical_requests"`
	AvailableDonors   int `json:"available_donors"`
	ActiveFacilities  int `json:"active_facilities"`
}

// EmergencyContact is one person on a user's SOS list.
type EmergencyContact struct {
	ID           uuid.UUID `json:"id" db:"id"`
	UserID       uuid.UUID `json:"user_id" db:"user_id"`
	Name         string    `json:"name" db:"name"`
	Phone        string    `json:"phone" db:"phone"`
	Relationship string    `json:"relationship" db:"relationship"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// SOSAlertPayload triggers a critical request at the caller's location.
type SOSAlertPayload struct {
	Location GeoPoint `json:"location"`
	Message  string   `json:"message,omitempty"`
}

// RequestCreatedEvent is published when a request enters the system so an
// external notifier can fan out to nearby responders.
type RequestCreatedEvent struct {
	RequestID string       `json:"request_id"`
	Type      ResourceType `json:"type"`
	Urgency   Urgency      `json:"urgency"`
	BloodType BloodType    `json:"blood_type,omitempty"`
	Location  GeoPoint     `json:"location"`
}

// SOSEvent is published on SOS alerts; delivery to the contact list is the
// external notifier's job.
type SOSEvent struct {
	RequestID string             `json:"request_id"`
	UserID    string             `json:"user_id"`
	Location  GeoPoint           `json:"location"`
	Message   string             `json:"message"`
	Contacts  []EmergencyContact `json:"contacts"`
}
