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

func TestTriggerSOS_OpensCriticalAmbulanceRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockEmergencyRepo(ctrl)
	mockGW := mocks.NewMockEmergencyGW(ctrl)
	uc := NewEmergencyUC(testGeoConfig(), mockRepo, mockGW)

	userID := uuid.New()
	location := models.GeoPoint{Longitude: 77.59, Latitude: 12.97}
	contact := &models.EmergencyContact{
		ID:     uuid.New(),
		UserID: userID,
		Name:   "Asha",
		Phone:  "9812345678",
	}

	mockRepo.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *models.EmergencyRequest) error {
			assert.Equal(t, models.ResourceAmbulance, req.Type)
			assert.Equal(t, models.UrgencyCritical, req.Urgency)
			assert.Equal(t, "help", req.Description)
			return nil
		})
	mockRepo.EXPECT().IndexRequestLocation(gomock.Any(), gomock.Any(), location).Return(nil)
	mockGW.EXPECT().PublishRequestCreated(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().ListContacts(gomock.Any(), userID).
		Return([]*models.EmergencyContact{contact}, nil)
	mockGW.EXPECT().PublishSOS(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *models.SOSEvent) error {
			assert.Equal(t, userID.String(), event.UserID)
			require.Len(t, event.Contacts, 1)
			assert.Equal(t, "Asha", event.Contacts[0].Name)
			return nil
		})

	req, err := uc.TriggerSOS(context.Background(), userID, &models.SOSAlertPayload{
		Location: location,
		Message:  "help",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusActive, req.Status)
}

func TestTriggerSOS_InvalidLocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewEmergencyUC(testGeoConfig(), mocks.NewMockEmergencyRepo(ctrl), mocks.NewMockEmergencyGW(ctrl))

	_, err := uc.TriggerSOS(context.Background(), uuid.New(), &models.SOSAlertPayload{
		Location: models.GeoPoint{Longitude: 500, Latitude: 12.97},
	})
	assert.True(t, apperrors.Is(err, apperrors.KindValidation))
}

func TestAddContact_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewEmergencyUC(testGeoConfig(), mocks.NewMockEmergencyRepo(ctrl), mocks.NewMockEmergencyGW(ctrl))

	_, err := uc.AddContact(context.Background(), uuid.New(), &models.EmergencyContact{Name: "Asha"})
	assert.True(t, apperrors.Is(err, apperrors.KindValidation))
}

func TestAddContact_AssignsOwnership(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockEmergencyRepo(ctrl)
	uc := NewEmergencyUC(testGeoConfig(), mockRepo, mocks.NewMockEmergencyGW(ctrl))

	userID := uuid.New()
	mockRepo.EXPECT().AddContact(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, contact *models.EmergencyContact) error {
			assert.Equal(t, userID, contact.UserID)
			assert.NotEqual(t, uuid.Nil, contact.ID)
			return nil
		})

	contact, err := uc.AddContact(context.Background(), userID, &models.EmergencyContact{
		Name:  "Asha",
		Phone: "9812345678",
	})
	require.NoError(t, err)
	assert.Equal(t, userID, contact.UserID)
}
