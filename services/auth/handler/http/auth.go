package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/emresource/emresource/internal/pkg/apperrors"
	"github.com/emresource/emresource/internal/pkg/logger"
	"github.com/emresource/emresource/internal/pkg/middleware"
	"github.com/emresource/emresource/internal/pkg/models"
	"github.com/emresource/emresource/internal/utils"
	"github.com/emresource/emresource/services/auth"
)

// AuthHandler handles HTTP requests for the auth service.
type AuthHandler struct {
	authUC auth.AuthUC
}

func NewAuthHandler(authUC auth.AuthUC) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

// SignupSendOTP handles POST /auth/signup/send-otp.
func (h *AuthHandler) SignupSendOTP(c echo.Context) error {
	var req models.SignupRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.authUC.SignupInit(c.Request().Context(), &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Verification code sent", resp)
}

// SignupVerifyOTP handles POST /auth/signup/verify-otp.
func (h *AuthHandler) SignupVerifyOTP(c echo.Context) error {
	var req models.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.AuthSessionID == "" || req.OTP == "" {
		return utils.BadRequestResponse(c, "auth_session_id and otp are required")
	}

	resp, err := h.authUC.SignupVerify(c.Request().Context(), req.AuthSessionID, req.OTP)
	if err != nil {
		return verifyErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Account created", resp)
}

// SigninSendOTP handles POST /auth/signin/send-otp.
func (h *AuthHandler) SigninSendOTP(c echo.Context) error {
	var req models.SigninRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.authUC.SigninInit(c.Request().Context(), &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Verification code sent", resp)
}

// SigninVerifyOTP handles POST /auth/signin/verify-otp.
func (h *AuthHandler) SigninVerifyOTP(c echo.Context) error {
	var req models.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.AuthSessionID == "" || req.OTP == "" {
		return utils.BadRequestResponse(c, "auth_session_id and otp are required")
	}

	resp, err := h.authUC.SigninVerify(c.Request().Context(), req.AuthSessionID, req.OTP)
	if err != nil {
		return verifyErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Signed in", resp)
}

// ExternalAuth handles POST /auth/external: the identity-provider callback
// boundary.
func (h *AuthHandler) ExternalAuth(c echo.Context) error {
	var req models.ExternalIdentityRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.authUC.LinkExternalIdentity(c.Request().Context(), &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Signed in", resp)
}

// Me handles GET /auth/me.
func (h *AuthHandler) Me(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	identity, err := h.authUC.GetIdentity(c.Request().Context(), userID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", identity)
}

// verifyErrorResponse collapses every credential failure into one generic
// message so callers cannot distinguish a wrong code from a missing or
// expired one.
func verifyErrorResponse(c echo.Context, err error) error {
	switch apperrors.KindOf(err) {
	case apperrors.KindNotFound, apperrors.KindUnauthorized, apperrors.KindExpired:
		logger.Info("otp verification rejected",
			logger.String("reason", apperrors.Message(err)),
			logger.String("path", c.Path()),
		)
		return utils.BadRequestResponse(c, "Invalid or expired verification code")
	default:
		return utils.AppErrorResponse(c, err)
	}
}
