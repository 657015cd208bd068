package gateway

import (
	"context"
	"fmt"

	"github.com/emresource/emresource/internal/pkg/constants"
	"github.com/emresource/emresource/internal/pkg/models"
	natspkg "github.com/emresource/emresource/internal/pkg/nats"
)

// AuthGW publishes auth side effects to collaborators over NATS.
type AuthGW struct {
	natsClient *natspkg.Client
}

func NewAuthGW(natsClient *natspkg.Client) *AuthGW {
	return &AuthGW{natsClient: natsClient}
}

// PublishOTPEmail hands the code to the email delivery worker. Delivery is
// best-effort from the caller's point of view: the credential is already
// stored when this runs.
func (g *AuthGW) PublishOTPEmail(_ context.Context, event *models.OTPDeliveryEvent) error {
	if err := g.natsClient.PublishJSON(constants.SubjectOTPEmail, event); err != nil {
		return fmt.Errorf("failed to publish otp email event: %w", err)
	}
	return nil
}
