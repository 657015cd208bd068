package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/emresource/emresource/internal/pkg/database"
	"github.com/emresource/emresource/internal/pkg/middleware"
	"github.com/emresource/emresource/internal/pkg/models"
	"github.com/emresource/emresource/services/auth/handler/http"
)

// Handler coordinates the protocol handlers for the auth service.
type Handler struct {
	authHandler *http.AuthHandler
	redisClient *database.RedisClient
	cfg         *models.Config
}

func NewHandler(authHandler *http.AuthHandler, redisClient *database.RedisClient, cfg *models.Config) *Handler {
	return &Handler{
		authHandler: authHandler,
		redisClient: redisClient,
		cfg:         cfg,
	}
}

// RegisterRoutes mounts the auth endpoints. The send-otp endpoints sit
// behind a per-client rate limiter so one caller cannot farm codes.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	otpLimiter := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RedisClient: h.redisClient.Client,
		Resource:    "auth_otp",
		Limit:       h.cfg.Auth.OTPRateLimit,
		Period:      time.Duration(h.cfg.Auth.OTPRatePeriodS) * time.Second,
	})

	authGroup := e.Group("/auth")
	authGroup.POST("/signup/send-otp", h.authHandler.SignupSendOTP, otpLimiter)
	authGroup.POST("/signup/verify-otp", h.authHandler.SignupVerifyOTP)
	authGroup.POST("/signin/send-otp", h.authHandler.SigninSendOTP, otpLimiter)
	authGroup.POST("/signin/verify-otp", h.authHandler.SigninVerifyOTP)
	authGroup.POST("/external", h.authHandler.ExternalAuth)

	protected := e.Group("/auth", middleware.JWTAuthMiddleware(h.cfg.JWT))
	protected.GET("/me", h.authHandler.Me)
}
