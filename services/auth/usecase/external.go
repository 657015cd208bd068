package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/emresource/emresource/internal/pkg/apperrors"
	"github.com/emresource/emresource/internal/pkg/models"
)

// LinkExternalIdentity admits an identity the external provider has already
// verified. It links to an existing account by email or provisions a new
// requester account; the OTP machine is never involved.
func (uc *AuthUC) LinkExternalIdentity(ctx context.Context, req *models.ExternalIdentityRequest) (*models.AuthResponse, error) {
	if req.Email == "" || req.ProviderSub == "" {
		return nil, apperrors.Validation("email and provider subject are required")
	}

	email := models.NormalizeEmail(req.Email)

	identity, err := uc.authRepo.GetIdentityByEmail(ctx, email)
	if err == nil {
		return uc.buildAuthResponse(identity)
	}
	if !apperrors.Is(err, apperrors.KindNotFound) {
		return nil, err
	}

	identity = &models.Identity{
		ID:          uuid.New(),
		Email:       email,
		FullName:    req.Name,
		Role:        models.RoleRequester,
		IsVerified:  true,
		ProviderSub: req.ProviderSub,
	}
	if err := uc.authRepo.CreateIdentity(ctx, identity); err != nil {
		if apperrors.Is(err, apperrors.KindConflict) {
			// Lost a provisioning race; the winner's row is ours to use.
			existing, getErr := uc.authRepo.GetIdentityByEmail(ctx, email)
			if getErr != nil {
				return nil, getErr
			}
			return uc.buildAuthResponse(existing)
		}
		return nil, err
	}

	return uc.buildAuthResponse(identity)
}
