package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/emresource/emresource/internal/pkg/apperrors"
	"github.com/emresource/emresource/internal/pkg/logger"
	"github.com/emresource/emresource/internal/pkg/models"
)

// ListContacts returns the caller's SOS contact list.
func (uc *EmergencyUC) ListContacts(ctx context.Context, userID uuid.UUID) ([]*models.EmergencyContact, error) {
	return uc.repo.ListContacts(ctx, userID)
}

// AddContact appends a person to the caller's SOS list.
func (uc *EmergencyUC) AddContact(ctx context.Context, userID uuid.UUID, contact *models.EmergencyContact) (*models.EmergencyContact, error) {
	if contact.Name == "" || contact.Phone == "" {
		return nil, apperrors.Validation("contact name and phone are required")
	}

	contact.ID = uuid.New()
	contact.UserID = userID
	if err := uc.repo.AddContact(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

// TriggerSOS opens a critical ambulance request at the caller's location and
// publishes the alert with their contact list; delivering to the contacts is
// the external notifier's job.
func (uc *EmergencyUC) TriggerSOS(ctx context.Context, userID uuid.UUID, payload *models.SOSAlertPayload) (*models.EmergencyRequest, error) {
	if !payload.Location.Valid() {
		return nil, apperrors.Validation("location is out of bounds")
	}

	description := payload.Message
	if description == "" {
		description = "SOS alert"
	}

	req, err := uc.CreateRequest(ctx, userID, &models.RequestPayload{
		Type:        models.ResourceAmbulance,
		Urgency:     models.UrgencyCritical,
		Location:    payload.Location,
		Description: description,
	})
	if err != nil {
		return nil, err
	}

	contacts, err := uc.repo.ListContacts(ctx, userID)
	if err != nil {
		logger.Warn("failed to load sos contacts",
			logger.String("user_id", userID.String()),
			logger.Err(err))
		contacts = nil
	}

	event := &models.SOSEvent{
		RequestID: req.ID.String(),
		UserID:    userID.String(),
		Location:  payload.Location,
		Message:   payload.Message,
	}
	for _, contact := range contacts {
		event.Contacts = append(event.Contacts, *contact)
	}
	if err := uc.gw.PublishSOS(ctx, event); err != nil {
		logger.Warn("failed to publish sos event",
			logger.String("request_id", req.ID.String()),
			logger.Err(err))
	}

	return req, nil
}
