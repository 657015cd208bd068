package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/emresource/emresource/internal/pkg/middleware"
	"github.com/emresource/emresource/internal/pkg/models"
	"github.com/emresource/emresource/services/emergency/handler/http"
)

// Handler coordinates the protocol handlers for the emergency service.
type Handler struct {
	emergencyHandler *http.EmergencyHandler
	cfg              *models.Config
}

func NewHandler(emergencyHandler *http.EmergencyHandler, cfg *models.Config) *Handler {
	return &Handler{
		emergencyHandler: emergencyHandler,
		cfg:              cfg,
	}
}

// RegisterRoutes mounts the emergency endpoints. Proximity search endpoints
// are public; everything that writes runs behind the JWT gate with a
// permission check.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	jwtAuth := middleware.JWTAuthMiddleware(h.cfg.JWT)

	em := e.Group("/emergency")
	em.GET("/nearby", h.emergencyHandler.FindNearbyRequests)
	em.GET("/stats", h.emergencyHandler.Stats)
	em.GET("/requests", h.emergencyHandler.ListRequests)
	em.GET("/requests/mine", h.emergencyHandler.ListMyRequests, jwtAuth)
	em.GET("/requests/:id", h.emergencyHandler.GetRequest)
	em.POST("/requests", h.emergencyHandler.CreateRequest,
		jwtAuth, middleware.RequirePermission(models.PermCreateRequest))
	em.POST("/requests/:id/respond", h.emergencyHandler.RespondToRequest,
		jwtAuth, middleware.RequirePermission(models.PermRespond))
	em.PATCH("/requests/:id/status", h.emergencyHandler.UpdateRequestStatus, jwtAuth)
	em.GET("/responses/outgoing", h.emergencyHandler.ListOutgoingResponses, jwtAuth)

	donors := e.Group("/donors")
	donors.GET("/nearby", h.emergencyHandler.FindNearbyDonors)
	donors.POST("", h.emergencyHandler.RegisterDonor,
		jwtAuth, middleware.RequirePermission(models.PermRegisterDonor))
	donors.GET("/me", h.emergencyHandler.GetDonorProfile, jwtAuth)
	donors.PUT("/me", h.emergencyHandler.UpdateDonor, jwtAuth)
	donors.PATCH("/me/availability", h.emergencyHandler.SetAvailability, jwtAuth)

	facilities := e.Group("/facilities")
	facilities.GET("/nearby", h.emergencyHandler.FindNearbyFacilities)
	facilities.POST("", h.emergencyHandler.CreateFacility,
		jwtAuth, middleware.RequirePermission(models.PermManageFacility))

	sos := e.Group("/sos", jwtAuth)
	sos.GET("/contacts", h.emergencyHandler.ListContacts)
	sos.POST("/contacts", h.emergencyHandler.AddContact)
	sos.POST("/alert", h.emergencyHandler.TriggerSOS)
}
