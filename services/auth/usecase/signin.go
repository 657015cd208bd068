package usecase

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/emresource/emresource/internal/pkg/apperrors"
	"github.com/emresource/emresource/internal/pkg/logger"
	"github.com/emresource/emresource/internal/pkg/models"
)

// SigninInit checks the password and asserted role before any credential is
// issued: a caller with wrong credentials never triggers an OTP delivery.
func (uc *AuthUC) SigninInit(ctx context.Context, req *models.SigninRequest) (*models.OTPIssuedResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, apperrors.Validation("email and password are required")
	}
	if !req.Role.Valid() {
		return nil, apperrors.Validation("unknown role")
	}

	email := models.NormalizeEmail(req.Email)

	identity, err := uc.authRepo.GetIdentityByEmail(ctx, email)
	if apperrors.Is(err, apperrors.KindNotFound) {
		// Same message as a wrong password so the endpoint does not leak
		// which emails have accounts.
		return nil, apperrors.Unauthorized("invalid email or password")
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.Unauthorized("invalid email or password")
	}

	if identity.Role != req.Role {
		return nil, apperrors.Forbidden("account does not hold the requested role")
	}

	pending := &models.PendingAuthContext{
		Purpose:    models.OTPPurposeSignin,
		Email:      email,
		IdentityID: identity.ID.String(),
	}

	return uc.issueCredential(ctx, models.OTPPurposeSignin, email, pending)
}

// SigninVerify consumes the credential and opens the session for the
// identity resolved at init time.
func (uc *AuthUC) SigninVerify(ctx context.Context, sessionID, code string) (*models.AuthResponse, error) {
	pending, err := uc.authRepo.GetPendingContext(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if pending.Purpose != models.OTPPurposeSignin || pending.IdentityID == "" {
		return nil, apperrors.NotFound("no pending verification for this session")
	}

	if err := uc.authRepo.ConsumeCredential(ctx, pending.Email, models.OTPPurposeSignin, code); err != nil {
		return nil, err
	}

	identityID, err := uuid.Parse(pending.IdentityID)
	if err != nil {
		return nil, apperrors.Fatal("corrupt pending auth context", err)
	}
	identity, err := uc.authRepo.GetIdentityByID(ctx, identityID)
	if err != nil {
		return nil, err
	}

	if err := uc.authRepo.DeletePendingContext(ctx, sessionID); err != nil {
		logger.Warn("failed to clear pending auth context",
			logger.String("session_id", sessionID),
			logger.Err(err))
	}

	return uc.buildAuthResponse(identity)
}

// GetIdentity returns the identity behind an open session.
func (uc *AuthUC) GetIdentity(ctx context.Context, id uuid.UUID) (*models.Identity, error) {
	return uc.authRepo.GetIdentityByID(ctx, id)
}
