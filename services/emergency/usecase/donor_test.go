package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emresource/emresource/internal/pkg/apperrors"
	"github.com/emresource/emresource/internal/pkg/models"
	"github.com/emresource/emresource/services/emergency/mocks"
)

func availableDonor(id uuid.UUID, bloodType models.BloodType) *models.BloodDonor {
	return &models.BloodDonor{
		ID:          id,
		UserID:      uuid.New(),
		FullName:    "Priya Patel",
		Phone:       "9812345678",
		BloodType:   bloodType,
		Location:    models.GeoPoint{Longitude: 77.60, Latitude: 12.98},
		IsAvailable: true,
		Status:      models.DonorStatusActive,
	}
}

func TestRegisterDonor_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockEmergencyRepo(ctrl)
	uc := NewEmergencyUC(testGeoConfig(), mockRepo, mocks.NewMockEmergencyGW(ctrl))

	userID := uuid.New()
	reg := &models.DonorRegistration{
		FullName:  "Priya Patel",
		Phone:     "9812345678",
		BloodType: models.BloodAPos,
		Location:  models.GeoPoint{Longitude: 77.60, Latitude: 12.98},
	}

	mockRepo.EXPECT().CreateDonor(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, donor *models.BloodDonor) error {
			assert.Equal(t, userID, donor.UserID)
			assert.Equal(t, models.DonorStatusActive, donor.Status)
			return nil
		})
	mockRepo.EXPECT().IndexDonorLocation(gomock.Any(), gomock.Any(), reg.Location).Return(nil)

	donor, err := uc.RegisterDonor(context.Background(), userID, reg)
	require.NoError(t, err)
	assert.Equal(t, models.DonorStatusActive, donor.Status)
}

func TestRegisterDonor_InvalidBloodType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewEmergencyUC(testGeoConfig(), mocks.NewMockEmergencyRepo(ctrl), mocks.NewMockEmergencyGW(ctrl))

	_, err := uc.RegisterDonor(context.Background(), uuid.New(), &models.DonorRegistration{
		FullName:  "Priya Patel",
		Phone:     "9812345678",
		BloodType: "X+",
		Location:  models.GeoPoint{Longitude: 77.60, Latitude: 12.98},
	})
	assert.True(t, apperrors.Is(err, apperrors.KindValidation))
}

func TestFindNearbyDonors_AlwaysRedacted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockEmergencyRepo(ctrl)
	uc := NewEmergencyUC(testGeoConfig(), mockRepo, mocks.NewMockEmergencyGW(ctrl))

	origin := models.GeoPoint{Longitude: 77.59, Latitude: 12.97}
	donorID := uuid.New()
	donor := availableDonor(donorID, models.BloodOPos)

	mockRepo.EXPECT().NearbyDonors(gomock.Any(), origin, 10.0).Return([]models.NearbyEntity{
		{ID: donorID.String(), Distance: 3.2},
	}, nil)
	mockRepo.EXPECT().GetDonorsByIDs(gomock.Any(), gomock.Any()).
		Return([]*models.BloodDonor{donor}, nil)

	views, err := uc.FindNearbyDonors(context.Background(), origin, 0, "")
	require.NoError(t, err)
	require.Len(t, views, 1)

	view := views[0]
	assert.Equal(t, "P***", view.Name)
	assert.NotEqual(t, donor.Phone, view.Phone)
	assert.NotEqual(t, donor.Location, view.Location)
	assert.Equal(t, models.BloodOPos, view.BloodType)
	assert.InDelta(t, 3.2, view.DistanceKm, 0.001)
}

func TestFindNearbyDonors_SkipsUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockEmergencyRepo(ctrl)
	uc := NewEmergencyUC(testGeoConfig(), mockRepo, mocks.NewMockEmergencyGW(ctrl))

	origin := models.GeoPoint{Longitude: 77.59, Latitude: 12.97}
	availableID := uuid.New()
	unavailableID := uuid.New()
	suspendedID := uuid.New()

	unavailable := availableDonor(unavailableID, models.BloodOPos)
	unavailable.IsAvailable = false
	suspended := availableDonor(suspendedID, models.BloodOPos)
	suspended.Status = models.DonorStatusSuspended

	mockRepo.EXPECT().NearbyDonors(gomock.Any(), origin, 10.0).Return([]models.NearbyEntity{
		{ID: availableID.String(), Distance: 1.0},
		{ID: unavailableID.String(), Distance: 2.0},
		{ID: suspendedID.String(), Distance: 3.0},
	}, nil)
	mockRepo.EXPECT().GetDonorsByIDs(gomock.Any(), gomock.Any()).Return([]*models.BloodDonor{
		availableDonor(availableID, models.BloodOPos),
		unavailable,
		suspended,
	}, nil)

	views, err := uc.FindNearbyDonors(context.Background(), origin, 0, "")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, availableID.String(), views[0].ID)
}

func TestFindNearbyDonors_BloodTypeFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockEmergencyRepo(ctrl)
	uc := NewEmergencyUC(testGeoConfig(), mockRepo, mocks.NewMockEmergencyGW(ctrl))

	origin := models.GeoPoint{Longitude: 77.59, Latitude: 12.97}
	matchID := uuid.New()
	otherID := uuid.New()

	mockRepo.EXPECT().NearbyDonors(gomock.Any(), origin, 10.0).Return([]models.NearbyEntity{
		{ID: matchID.String(), Distance: 1.0},
		{ID: otherID.String(), Distance: 2.0},
	}, nil)
	mockRepo.EXPECT().GetDonorsByIDs(gomock.Any(), gomock.Any()).Return([]*models.BloodDonor{
		availableDonor(matchID, models.BloodONeg),
		availableDonor(otherID, models.BloodAPos),
	}, nil)

	views, err := uc.FindNearbyDonors(context.Background(), origin, 0, models.BloodONeg)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, matchID.String(), views[0].ID)
}

func TestFindNearbyDonors_MaxDistanceCap(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockEmergencyRepo(ctrl)
	uc := NewEmergencyUC(testGeoConfig(), mockRepo, mocks.NewMockEmergencyGW(ctrl))

	origin := models.GeoPoint{Longitude: 77.59, Latitude: 12.97}
	donorID := uuid.New()

	// The donor only wants to be surfaced within 2km; the hit is 5km out.
	capped := availableDonor(donorID, models.BloodOPos)
	capped.Privacy.MaxDistanceKm = 2

	mockRepo.EXPECT().NearbyDonors(gomock.Any(), origin, 10.0).Return([]models.NearbyEntity{
		{ID: donorID.String(), Distance: 5.0},
	}, nil)
	mockRepo.EXPECT().GetDonorsByIDs(gomock.Any(), gomock.Any()).
		Return([]*models.BloodDonor{capped}, nil)

	views, err := uc.FindNearbyDonors(context.Background(), origin, 0, "")
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestFindNearbyDonors_VerifiedBreaksDistanceTie(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockEmergencyRepo(ctrl)
	uc := NewEmergencyUC(testGeoConfig(), mockRepo, mocks.NewMockEmergencyGW(ctrl))

	origin := models.GeoPoint{Longitude: 77.59, Latitude: 12.97}
	verifiedID := uuid.New()
	unverifiedID := uuid.New()

	verified := availableDonor(verifiedID, models.BloodOPos)
	verified.IsVerified = true

	mockRepo.EXPECT().NearbyDonors(gomock.Any(), origin, 10.0).Return([]models.NearbyEntity{
		{ID: unverifiedID.String(), Distance: 4.0},
		{ID: verifiedID.String(), Distance: 4.0},
	}, nil)
	mockRepo.EXPECT().GetDonorsByIDs(gomock.Any(), gomock.Any()).Return([]*models.BloodDonor{
		availableDonor(unverifiedID, models.BloodOPos),
		verified,
	}, nil)

	views, err := uc.FindNearbyDonors(context.Background(), origin, 0, "")
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, verifiedID.String(), views[0].ID)
	assert.Equal(t, unverifiedID.String(), views[1].ID)
}

func TestUpdateDonor_NotRegistered(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockEmergencyRepo(ctrl)
	uc := NewEmergencyUC(testGeoConfig(), mockRepo, mocks.NewMockEmergencyGW(ctrl))

	mockRepo.EXPECT().GetDonorByUserID(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NotFound("donor profile not found"))

	_, err := uc.UpdateDonor(context.Background(), uuid.New(), &models.DonorRegistration{
		FullName:  "Priya Patel",
		Phone:     "9812345678",
		BloodType: models.BloodAPos,
		Location:  models.GeoPoint{Longitude: 77.60, Latitude: 12.98},
	})
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
}
