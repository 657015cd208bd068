package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/emresource/emresource/internal/pkg/apperrors"
	"github.com/emresource/emresource/internal/pkg/jwt"
	"github.com/emresource/emresource/internal/pkg/logger"
	"github.com/emresource/emresource/internal/pkg/models"
	"github.com/emresource/emresource/internal/utils"
)

const minPasswordLength = 8

// SignupInit validates the registration, issues a one-time credential and
// parks the registration in a pending context until the code comes back.
// No account exists until SignupVerify succeeds.
func (uc *AuthUC) SignupInit(ctx context.Context, req *models.SignupRequest) (*models.OTPIssuedResponse, error) {
	if req.Name == "" || req.Email == "" {
		return nil, apperrors.Validation("name and email are required")
	}
	if len(req.Password) < minPasswordLength {
		return nil, apperrors.Validation("password must be at least 8 characters")
	}
	if !req.Role.Valid() {
		return nil, apperrors.Validation("unknown role")
	}

	email := models.NormalizeEmail(req.Email)

	// Surface the duplicate before spending an OTP round-trip; the unique
	// index on users.email still catches the concurrent case at verify.
	if _, err := uc.authRepo.GetIdentityByEmail(ctx, email); err == nil {
		return nil, apperrors.Conflict("an account with this email already exists")
	} else if !apperrors.Is(err, apperrors.KindNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), uc.cfg.Auth.BcryptCost)
	if err != nil {
		return nil, apperrors.Fatal("failed to hash password", err)
	}

	pending := &models.PendingAuthContext{
		Purpose: models.OTPPurposeSignup,
		Email:   email,
		Registration: &models.SignupRequest{
			Name:     req.Name,
			Email:    email,
			Password: string(hash),
			Role:     req.Role,
		},
	}

	return uc.issueCredential(ctx, models.OTPPurposeSignup, email, pending)
}

// SignupVerify consumes the credential and, only then, materializes the
// account from the pending registration.
func (uc *AuthUC) SignupVerify(ctx context.Context, sessionID, code string) (*models.AuthResponse, error) {
	pending, err := uc.authRepo.GetPendingContext(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if pending.Purpose != models.OTPPurposeSignup || pending.Registration == nil {
		return nil, apperrors.NotFound("no pending verification for this session")
	}

	if err := uc.authRepo.ConsumeCredential(ctx, pending.Email, models.OTPPurposeSignup, code); err != nil {
		return nil, err
	}

	identity := &models.Identity{
		ID:           uuid.New(),
		Email:        pending.Email,
		FullName:     pending.Registration.Name,
		PasswordHash: pending.Registration.Password,
		Role:         pending.Registration.Role,
		IsVerified:   true,
	}
	if err := uc.authRepo.CreateIdentity(ctx, identity); err != nil {
		return nil, err
	}

	if err := uc.authRepo.DeletePendingContext(ctx, sessionID); err != nil {
		logger.Warn("failed to clear pending auth context",
			logger.String("session_id", sessionID),
			logger.Err(err))
	}

	return uc.buildAuthResponse(identity)
}

// issueCredential is the shared back half of both init flows: generate the
// code, store it (replacing any live one for the pair), park the pending
// context and hand the code to the delivery collaborator.
func (uc *AuthUC) issueCredential(ctx context.Context, purpose models.OTPPurpose, email string, pending *models.PendingAuthContext) (*models.OTPIssuedResponse, error) {
	code, err := utils.GenerateOTPCode()
	if err != nil {
		return nil, apperrors.Fatal("failed to generate verification code", err)
	}

	ttl := time.Duration(uc.cfg.Auth.OTPTTLSeconds) * time.Second
	now := time.Now()
	cred := &models.OneTimeCredential{
		Email:     email,
		Purpose:   purpose,
		Code:      code,
		IssuedAt:  now,
		ExpiresAt: now.Add(ttl),
	}
	if err := uc.authRepo.StoreCredential(ctx, cred, ttl); err != nil {
		return nil, err
	}

	sessionID := uuid.New().String()
	if err := uc.authRepo.StorePendingContext(ctx, sessionID, pending, ttl); err != nil {
		return nil, err
	}

	// Delivery is fire-and-forget: the credential is live either way, and
	// the client may retry the init flow to get a fresh code.
	if err := uc.authGW.PublishOTPEmail(ctx, &models.OTPDeliveryEvent{
		Email:   email,
		Code:    code,
		Purpose: purpose,
	}); err != nil {
		logger.Warn("failed to publish otp delivery event",
			logger.String("email", email),
			logger.Err(err))
	}

	return &models.OTPIssuedResponse{
		AuthSessionID: sessionID,
		ExpiresAt:     cred.ExpiresAt.Unix(),
	}, nil
}

func (uc *AuthUC) buildAuthResponse(identity *models.Identity) (*models.AuthResponse, error) {
	token, expiresAt, err := jwt.GenerateToken(identity.ID, identity.Email, identity.Role, uc.cfg)
	if err != nil {
		return nil, apperrors.Fatal("failed to sign session token", err)
	}
	return &models.AuthResponse{
		Token:     token,
		UserID:    identity.ID.String(),
		Role:      identity.Role,
		Redirect:  identity.Role.Destination(),
		ExpiresAt: expiresAt,
		User:      identity,
	}, nil
}
