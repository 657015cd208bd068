package usecase

import (
	"github.com/emresource/emresource/internal/pkg/models"
	"github.com/emresource/emresource/services/auth"
)

// AuthUC implements auth.AuthUC: the OTP handshake plus the identity gate
// behind it.
type AuthUC struct {
	authRepo auth.AuthRepo
	authGW   auth.AuthGW
	cfg      *models.Config
}

func NewAuthUC(cfg *models.Config, authRepo auth.AuthRepo, authGW auth.AuthGW) *AuthUC {
	return &AuthUC{
		authRepo: authRepo,
		authGW:   authGW,
		cfg:      cfg,
	}
}
