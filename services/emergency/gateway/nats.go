package gateway

import (
	"context"
	"fmt"

	"github.com/emresource/emresource/internal/pkg/constants"
	"github.com/emresource/emresource/internal/pkg/models"
	natspkg "github.com/emresource/emresource/internal/pkg/nats"
)

// EmergencyGW publishes engine events over NATS for the external notifier.
type EmergencyGW struct {
	natsClient *natspkg.Client
}

func NewEmergencyGW(natsClient *natspkg.Client) *EmergencyGW {
	return &EmergencyGW{natsClient: natsClient}
}

// PublishRequestCreated announces a new request so nearby responders can be
// notified out of band.
func (g *EmergencyGW) PublishRequestCreated(_ context.Context, event *models.RequestCreatedEvent) error {
	if err := g.natsClient.PublishJSON(constants.SubjectRequestCreated, event); err != nil {
		return fmt.Errorf("failed to publish request created event: %w", err)
	}
	return nil
}

// PublishSOS hands an SOS alert with the caller's contact list to the
// delivery collaborator.
func (g *EmergencyGW) PublishSOS(_ context.Context, event *models.SOSEvent) error {
	if err := g.natsClient.PublishJSON(constants.SubjectSOSTriggered, event); err != nil {
		return fmt.Errorf("failed to publish sos event: %w", err)
	}
	return nil
}
