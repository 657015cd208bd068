package auth

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/emresource/emresource/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/emresource/emresource/services/auth AuthUC

// AuthUC is the session/identity gate: it turns a verified OTP handshake
// into an authenticated identity.
type AuthUC interface {
	// Signup track
	SignupInit(ctx context.Context, req *models.SignupRequest) (*models.OTPIssuedResponse, error)
	SignupVerify(ctx context.Context, sessionID, code string) (*models.AuthResponse, error)

	// Signin track
	SigninInit(ctx context.Context, req *models.SigninRequest) (*models.OTPIssuedResponse, error)
	SigninVerify(ctx context.Context, sessionID, code string) (*models.AuthResponse, error)

	// External identity provider boundary: links or provisions a
	// pre-verified identity, never touches the OTP machine.
	LinkExternalIdentity(ctx context.Context, req *models.ExternalIdentityRequest) (*models.AuthResponse, error)

	GetIdentity(ctx context.Context, id uuid.UUID) (*models.Identity, error)
}

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/emresource/emresource/services/auth AuthRepo

// AuthRepo persists credentials, pending contexts and identities.
type AuthRepo interface {
	// One-time credential store. Storing replaces any live credential for
	// the same (email, purpose) pair; consuming is a single atomic
	// check-and-delete.
	StoreCredential(ctx context.Context, cred *models.OneTimeCredential, ttl time.Duration) error
	ConsumeCredential(ctx context.Context, email string, purpose models.OTPPurpose, code string) error

	// Pending auth context, one per auth session, overwritten on restart.
	StorePendingContext(ctx context.Context, sessionID string, pending *models.PendingAuthContext, ttl time.Duration) error
	GetPendingContext(ctx context.Context, sessionID string) (*models.PendingAuthContext, error)
	DeletePendingContext(ctx context.Context, sessionID string) error

	// Identity store.
	GetIdentityByEmail(ctx context.Context, email string) (*models.Identity, error)
	GetIdentityByID(ctx context.Context, id uuid.UUID) (*models.Identity, error)
	CreateIdentity(ctx context.Context, identity *models.Identity) error
}

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/emresource/emresource/services/auth AuthGW

// AuthGW is the outbound collaborator boundary for the auth service.
type AuthGW interface {
	// PublishOTPEmail hands a code to the delivery collaborator. Failures
	// are recoverable and must not block credential issuance.
	PublishOTPEmail(ctx context.Context, event *models.OTPDeliveryEvent) error
}
