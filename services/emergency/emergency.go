package emergency

import (
	"context"

	"github.com/google/uuid"

	"github.com/emresource/emresource/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/emresource/emresource/services/emergency EmergencyUC

// EmergencyUC is the matching engine: requests, responses, proximity search
// with privacy redaction, facilities and SOS.
type EmergencyUC interface {
	// Emergency requests
	CreateRequest(ctx context.Context, requesterID uuid.UUID, payload *models.RequestPayload) (*models.EmergencyRequest, error)
	GetRequest(ctx context.Context, id uuid.UUID) (*models.EmergencyRequest, error)
	ListRequests(ctx context.Context, filter *models.RequestListFilter) ([]*models.EmergencyRequest, error)
	ListMyRequests(ctx context.Context, requesterID uuid.UUID) ([]*models.EmergencyRequest, error)
	ListOutgoingResponses(ctx context.Context, responderID uuid.UUID) ([]*models.Response, error)
	FindNearbyRequests(ctx context.Context, origin models.GeoPoint, radiusKm float64, filter *models.NearbyRequestsFilter) ([]*models.EmergencyRequest, error)
	RespondToRequest(ctx context.Context, requestID, responderID uuid.UUID, payload *models.ResponsePayload) (*models.Response, error)
	UpdateRequestStatus(ctx context.Context, requestID, actorID uuid.UUID, actorRole models.Role, payload *models.StatusUpdatePayload) (*models.EmergencyRequest, error)
	Stats(ctx context.Context) (*models.EmergencyStats, error)

	// Donor profiles and search
	RegisterDonor(ctx context.Context, userID uuid.UUID, reg *models.DonorRegistration) (*models.BloodDonor, error)
	UpdateDonor(ctx context.Context, userID uuid.UUID, reg *models.DonorRegistration) (*models.BloodDonor, error)
	SetDonorAvailability(ctx context.Context, userID uuid.UUID, available bool) error
	GetDonorProfile(ctx context.Context, userID uuid.UUID) (*models.BloodDonor, error)
	FindNearbyDonors(ctx context.Context, origin models.GeoPoint, radiusKm float64, bloodType models.BloodType) ([]*models.DonorView, error)

	// Facilities
	CreateFacility(ctx context.Context, ownerID uuid.UUID, payload *models.FacilityPayload) (*models.MedicalFacility, error)
	FindNearbyFacilities(ctx context.Context, origin models.GeoPoint, radiusKm float64, facilityType models.FacilityType) ([]*models.MedicalFacility, error)

	// SOS
	ListContacts(ctx context.Context, userID uuid.UUID) ([]*models.EmergencyContact, error)
	AddContact(ctx context.Context, userID uuid.UUID, contact *models.EmergencyContact) (*models.EmergencyContact, error)
	TriggerSOS(ctx context.Context, userID uuid.UUID, payload *models.SOSAlertPayload) (*models.EmergencyRequest, error)
}

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/emresource/emresource/services/emergency EmergencyRepo

// EmergencyRepo persists the engine's state in Postgres and keeps the
// proximity index in Redis.
type EmergencyRepo interface {
	// Requests
	CreateRequest(ctx context.Context, req *models.EmergencyRequest) error
	GetRequest(ctx context.Context, id uuid.UUID) (*models.EmergencyRequest, error)
	GetRequestsByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.EmergencyRequest, error)
	ListRequests(ctx context.Context, filter *models.RequestListFilter) ([]*models.EmergencyRequest, error)
	ListRequestsByRequester(ctx context.Context, requesterID uuid.UUID) ([]*models.EmergencyRequest, error)

	// Responses. CreateResponse must reject with Conflict when the request
	// is not active or the responder already responded.
	CreateResponse(ctx context.Context, resp *models.Response) error
	ListResponses(ctx context.Context, requestID uuid.UUID) ([]models.Response, error)
	ListResponsesByResponder(ctx context.Context, responderID uuid.UUID) ([]*models.Response, error)

	// CloseRequest performs the active-to-terminal transition as one
	// conditional update.
	CloseRequest(ctx context.Context, requestID uuid.UUID, status models.RequestStatus, fulfillment *models.Fulfillment) error

	Stats(ctx context.Context) (*models.EmergencyStats, error)

	// Donors
	CreateDonor(ctx context.Context, donor *models.BloodDonor) error
	UpdateDonor(ctx context.Context, donor *models.BloodDonor) error
	GetDonorByUserID(ctx context.Context, userID uuid.UUID) (*models.BloodDonor, error)
	GetDonorsByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.BloodDonor, error)
	SetDonorAvailability(ctx context.Context, userID uuid.UUID, available bool) error

	// Facilities
	CreateFacility(ctx context.Context, facility *models.MedicalFacility) error
	GetFacilitiesByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.MedicalFacility, error)

	// Emergency contacts
	ListContacts(ctx context.Context, userID uuid.UUID) ([]*models.EmergencyContact, error)
	AddContact(ctx context.Context, contact *models.EmergencyContact) error

	// Proximity index
	IndexRequestLocation(ctx context.Context, id uuid.UUID, point models.GeoPoint) error
	RemoveRequestLocation(ctx context.Context, id uuid.UUID) error
	NearbyRequests(ctx context.Context, origin models.GeoPoint, radiusKm float64) ([]models.NearbyEntity, error)
	IndexDonorLocation(ctx context.Context, id uuid.UUID, point models.GeoPoint) error
	NearbyDonors(ctx context.Context, origin models.GeoPoint, radiusKm float64) ([]models.NearbyEntity, error)
	IndexFacilityLocation(ctx context.Context, id uuid.UUID, point models.GeoPoint) error
	NearbyFacilities(ctx context.Context, origin models.GeoPoint, radiusKm float64) ([]models.NearbyEntity, error)
}

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/emresource/emresource/services/emergency EmergencyGW

// EmergencyGW publishes engine events for the external notifier.
type EmergencyGW interface {
	PublishRequestCreated(ctx context.Context, event *models.RequestCreatedEvent) error
	PublishSOS(ctx context.Context, event *models.SOSEvent) error
}
