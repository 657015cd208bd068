package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emresource/emresource/internal/pkg/apperrors"
	"github.com/emresource/emresource/internal/pkg/models"
	"github.com/emresource/emresource/services/emergency/mocks"
)

func testGeoConfig() *models.Config {
	return &models.Config{
		Geo: models.GeoConfig{
			MaxRadiusKm:            100,
			DefaultRequestRadiusKm: 10,
			DefaultDonorRadiusKm:   10,
		},
	}
}

func TestCreateRequest_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockEmergencyRepo(ctrl)
	mockGW := mocks.NewMockEmergencyGW(ctrl)
	uc := NewEmergencyUC(testGeoConfig(), mockRepo, mockGW)

	requesterID := uuid.New()
	payload := &models.RequestPayload{
		Type:      models.ResourceBlood,
		Urgency:   models.UrgencyCritical,
		BloodType: models.BloodONeg,
		Location:  models.GeoPoint{Longitude: 77.59, Latitude: 12.97},
	}

	mockRepo.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *models.EmergencyRequest) error {
			assert.Equal(t, models.RequestStatusActive, req.Status)
			assert.Equal(t, requesterID, req.RequesterID)
			return nil
		})
	mockRepo.EXPECT().IndexRequestLocation(gomock.Any(), gomock.Any(), payload.Location).Return(nil)
	mockGW.EXPECT().PublishRequestCreated(gomock.Any(), gomock.Any()).Return(nil)

	req, err := uc.CreateRequest(context.Background(), requesterID, payload)
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusActive, req.Status)
}

func TestCreateRequest_BloodRequiresBloodType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewEmergencyUC(testGeoConfig(), mocks.NewMockEmergencyRepo(ctrl), mocks.NewMockEmergencyGW(ctrl))

	_, err := uc.CreateRequest(context.Background(), uuid.New(), &models.RequestPayload{
		Type:     models.ResourceBlood,
		Urgency:  models.UrgencyHigh,
		Location: models.GeoPoint{Longitude: 77.59, Latitude: 12.97},
	})
	assert.True(t, apperrors.Is(err, apperrors.KindValidation))
}

func TestCreateRequest_InvalidLocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewEmergencyUC(testGeoConfig(), mocks.NewMockEmergencyRepo(ctrl), mocks.NewMockEmergencyGW(ctrl))

	_, err := uc.CreateRequest(context.Background(), uuid.New(), &models.RequestPayload{
		Type:     models.ResourceOxygen,
		Urgency:  models.UrgencyHigh,
		Location: models.GeoPoint{Longitude: 200, Latitude: 12.97},
	})
	assert.True(t, apperrors.Is(err, apperrors.KindValidation))
}

func nearbyRequest(id uuid.UUID, urgency models.Urgency, createdAt time.Time) *models.EmergencyRequest {
	return &models.EmergencyRequest{
		ID:        id,
		Type:      models.ResourceBlood,
		Urgency:   urgency,
		BloodType: models.BloodONeg,
		Status:    models.RequestStatusActive,
		CreatedAt: createdAt,
	}
}

func TestFindNearbyRequests_UrgencyDominatesDistance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockEmergencyRepo(ctrl)
	uc := NewEmergencyUC(testGeoConfig(), mockRepo, mocks.NewMockEmergencyGW(ctrl))

	origin := models.GeoPoint{Longitude: 77.59, Latitude: 12.97}
	criticalID := uuid.New()
	mediumID := uuid.New()
	now := time.Now()

	// The medium request is closer, the critical one still ranks first.
	mockRepo.EXPECT().NearbyRequests(gomock.Any(), origin, 10.0).Return([]models.NearbyEntity{
		{ID: mediumID.String(), Distance: 1.0},
		{ID: criticalID.String(), Distance: 2.0},
	}, nil)
	mockRepo.EXPECT().GetRequestsByIDs(gomock.Any(), gomock.Any()).Return([]*models.EmergencyRequest{
		nearbyRequest(mediumID, models.UrgencyMedium, now),
		nearbyRequest(criticalID, models.UrgencyCritical, now),
	}, nil)

	results, err := uc.FindNearbyRequests(context.Background(), origin, 0, nil)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, criticalID, results[0].ID)
	assert.Equal(t, mediumID, results[1].ID)
}

func TestFindNearbyRequests_SkipsNonActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockEmergencyRepo(ctrl)
	uc := NewEmergencyUC(testGeoConfig(), mockRepo, mocks.NewMockEmergencyGW(ctrl))

	origin := models.GeoPoint{Longitude: 77.59, Latitude: 12.97}
	activeID := uuid.New()
	closedID := uuid.New()

	closed := nearbyRequest(closedID, models.UrgencyCritical, time.Now())
	closed.Status = models.RequestStatusFulfilled

	mockRepo.EXPECT().NearbyRequests(gomock.Any(), origin, 10.0).Return([]models.NearbyEntity{
		{ID: activeID.String(), Distance: 1.0},
		{ID: closedID.String(), Distance: 2.0},
	}, nil)
	mockRepo.EXPECT().GetRequestsByIDs(gomock.Any(), gomock.Any()).Return([]*models.EmergencyRequest{
		nearbyRequest(activeID, models.UrgencyLow, time.Now()),
		closed,
	}, nil)

	results, err := uc.FindNearbyRequests(context.Background(), origin, 0, nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, activeID, results[0].ID)
}

func TestFindNearbyRequests_RadiusClamped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockEmergencyRepo(ctrl)
	uc := NewEmergencyUC(testGeoConfig(), mockRepo, mocks.NewMockEmergencyGW(ctrl))

	origin := models.GeoPoint{Longitude: 77.59, Latitude: 12.97}

	// A 10000km request is clamped to the configured maximum.
	mockRepo.EXPECT().NearbyRequests(gomock.Any(), origin, 100.0).Return(nil, nil)

	results, err := uc.FindNearbyRequests(context.Background(), origin, 10000, nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestRespondToRequest_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockEmergencyRepo(ctrl)
	uc := NewEmergencyUC(testGeoConfig(), mockRepo, mocks.NewMockEmergencyGW(ctrl))

	requestID := uuid.New()
	responderID := uuid.New()

	mockRepo.EXPECT().CreateResponse(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, resp *models.Response) error {
			assert.Equal(t, requestID, resp.RequestID)
			assert.Equal(t, responderID, resp.ResponderID)
			assert.Equal(t, models.ResponseStatusPending, resp.Status)
			return nil
		})

	resp, err := uc.RespondToRequest(context.Background(), requestID, responderID, &models.ResponsePayload{
		Message:     "I can donate",
		ContactInfo: "9876543210",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ResponseStatusPending, resp.Status)
}

func TestRespondToRequest_ClosedRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockEmergencyRepo(ctrl)
	uc := NewEmergencyUC(testGeoConfig(), mockRepo, mocks.NewMockEmergencyGW(ctrl))

	mockRepo.EXPECT().CreateResponse(gomock.Any(), gomock.Any()).
		Return(apperrors.Conflict("request is no longer active"))

	_, err := uc.RespondToRequest(context.Background(), uuid.New(), uuid.New(), &models.ResponsePayload{
		ContactInfo: "9876543210",
	})
	assert.True(t, apperrors.Is(err, apperrors.KindConflict))
}

func TestUpdateRequestStatus_OwnerCloses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockEmergencyRepo(ctrl)
	uc := NewEmergencyUC(testGeoConfig(), mockRepo, mocks.NewMockEmergencyGW(ctrl))

	requestID := uuid.New()
	ownerID := uuid.New()

	mockRepo.EXPECT().GetRequest(gomock.Any(), requestID).Return(&models.EmergencyRequest{
		ID:          requestID,
		RequesterID: ownerID,
		Status:      models.RequestStatusActive,
	}, nil)
	mockRepo.EXPECT().CloseRequest(gomock.Any(), requestID, models.RequestStatusFulfilled, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ models.RequestStatus, f *models.Fulfillment) error {
			require.NotNil(t, f)
			assert.Equal(t, ownerID, f.FulfilledBy)
			return nil
		})
	mockRepo.EXPECT().RemoveRequestLocation(gomock.Any(), requestID).Return(nil)

	req, err := uc.UpdateRequestStatus(context.Background(), requestID, ownerID, models.RoleRequester,
		&models.StatusUpdatePayload{Status: models.RequestStatusFulfilled, Notes: "done"})
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusFulfilled, req.Status)
}

func TestUpdateRequestStatus_NonOwnerForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockEmergencyRepo(ctrl)
	uc := NewEmergencyUC(testGeoConfig(), mockRepo, mocks.NewMockEmergencyGW(ctrl))

	requestID := uuid.New()

	mockRepo.EXPECT().GetRequest(gomock.Any(), requestID).Return(&models.EmergencyRequest{
		ID:          requestID,
		RequesterID: uuid.New(),
		Status:      models.RequestStatusActive,
	}, nil)

	_, err := uc.UpdateRequestStatus(context.Background(), requestID, uuid.New(), models.RoleDonor,
		&models.StatusUpdatePayload{Status: models.RequestStatusCancelled})
	assert.True(t, apperrors.Is(err, apperrors.KindForbidden))
}

func TestUpdateRequestStatus_AdminMayClose(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockEmergencyRepo(ctrl)
	uc := NewEmergencyUC(testGeoConfig(), mockRepo, mocks.NewMockEmergencyGW(ctrl))

	requestID := uuid.New()
	adminID := uuid.New()

	mockRepo.EXPECT().GetRequest(gomock.Any(), requestID).Return(&models.EmergencyRequest{
		ID:          requestID,
		RequesterID: uuid.New(),
		Status:      models.RequestStatusActive,
	}, nil)
	mockRepo.EXPECT().CloseRequest(gomock.Any(), requestID, models.RequestStatusExpired, gomock.Nil()).Return(nil)
	mockRepo.EXPECT().RemoveRequestLocation(gomock.Any(), requestID).Return(nil)

	_, err := uc.UpdateRequestStatus(context.Background(), requestID, adminID, models.RoleAdmin,
		&models.StatusUpdatePayload{Status: models.RequestStatusExpired})
	assert.NoError(t, err)
}

func TestUpdateRequestStatus_NonTerminalTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewEmergencyUC(testGeoConfig(), mocks.NewMockEmergencyRepo(ctrl), mocks.NewMockEmergencyGW(ctrl))

	_, err := uc.UpdateRequestStatus(context.Background(), uuid.New(), uuid.New(), models.RoleRequester,
		&models.StatusUpdatePayload{Status: models.RequestStatusActive})
	assert.True(t, apperrors.Is(err, apperrors.KindValidation))
}
