package http

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/emresource/emresource/internal/pkg/logger"
	"github.com/emresource/emresource/internal/pkg/middleware"
	"github.com/emresource/emresource/internal/pkg/models"
	"github.com/emresource/emresource/internal/utils"
	"github.com/emresource/emresource/services/emergency"
)

// EmergencyHandler handles HTTP requests for the emergency service.
type EmergencyHandler struct {
	emergencyUC emergency.EmergencyUC
}

func NewEmergencyHandler(emergencyUC emergency.EmergencyUC) *EmergencyHandler {
	return &EmergencyHandler{emergencyUC: emergencyUC}
}

// geoQuery extracts the lat/lng/radius triple shared by the nearby
// endpoints. Radius falls through as zero when absent; the usecase applies
// the default and the server-side cap.
func geoQuery(c echo.Context) (models.GeoPoint, float64, bool) {
	lat, latErr := strconv.ParseFloat(c.QueryParam("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if latErr != nil || lngErr != nil {
		return models.GeoPoint{}, 0, false
	}
	radius, _ := strconv.ParseFloat(c.QueryParam("radius"), 64)
	return models.GeoPoint{Longitude: lng, Latitude: lat}, radius, true
}

// CreateRequest handles POST /emergency/requests.
func (h *EmergencyHandler) CreateRequest(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var payload models.RequestPayload
	if err := c.Bind(&payload); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	req, err := h.emergencyUC.CreateRequest(c.Request().Context(), userID, &payload)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	logger.Info("emergency request created",
		logger.String("request_id", req.ID.String()),
		logger.String("type", string(req.Type)),
		logger.String("urgency", string(req.Urgency)),
	)
	return utils.SuccessResponse(c, http.StatusCreated, "Emergency request created", req)
}

// GetRequest handles GET /emergency/requests/:id.
func (h *EmergencyHandler) GetRequest(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid request ID")
	}

	req, err := h.emergencyUC.GetRequest(c.Request().Context(), id)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", req)
}

// ListRequests handles GET /emergency/requests.
func (h *EmergencyHandler) ListRequests(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	filter := &models.RequestListFilter{
		Type:      models.ResourceType(c.QueryParam("type")),
		Urgency:   models.Urgency(c.QueryParam("urgency")),
		Status:    models.RequestStatus(c.QueryParam("status")),
		BloodType: models.BloodType(c.QueryParam("blood_type")),
		City:      c.QueryParam("city"),
		Page:      page,
		Limit:     limit,
	}

	requests, err := h.emergencyUC.ListRequests(c.Request().Context(), filter)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", requests)
}

// ListMyRequests handles GET /emergency/requests/mine.
func (h *EmergencyHandler) ListMyRequests(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	requests, err := h.emergencyUC.ListMyRequests(c.Request().Context(), userID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", requests)
}

// ListOutgoingResponses handles GET /emergency/responses/outgoing.
func (h *EmergencyHandler) ListOutgoingResponses(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	responses, err := h.emergencyUC.ListOutgoingResponses(c.Request().Context(), userID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", responses)
}

// FindNearbyRequests handles GET /emergency/nearby.
func (h *EmergencyHandler) FindNearbyRequests(c echo.Context) error {
	origin, radius, ok := geoQuery(c)
	if !ok {
		return utils.BadRequestResponse(c, "lat and lng query parameters are required")
	}

	filter := &models.NearbyRequestsFilter{
		Type:      models.ResourceType(c.QueryParam("type")),
		Urgency:   models.Urgency(c.QueryParam("urgency")),
		BloodType: models.BloodType(c.QueryParam("blood_type")),
	}

	requests, err := h.emergencyUC.FindNearbyRequests(c.Request().Context(), origin, radius, filter)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", requests)
}

// RespondToRequest handles POST /emergency/requests/:id/respond.
func (h *EmergencyHandler) RespondToRequest(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid request ID")
	}

	var payload models.ResponsePayload
	if err := c.Bind(&payload); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.emergencyUC.RespondToRequest(c.Request().Context(), requestID, userID, &payload)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Response recorded", resp)
}

// UpdateRequestStatus handles PATCH /emergency/requests/:id/status.
func (h *EmergencyHandler) UpdateRequestStatus(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	role, _ := middleware.RoleFromContext(c)
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid request ID")
	}

	var payload models.StatusUpdatePayload
	if err := c.Bind(&payload); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	req, err := h.emergencyUC.UpdateRequestStatus(c.Request().Context(), requestID, userID, role, &payload)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Request status updated", req)
}

// Stats handles GET /emergency/stats.
func (h *EmergencyHandler) Stats(c echo.Context) error {
	stats, err := h.emergencyUC.Stats(c.Request().Context())
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", stats)
}
