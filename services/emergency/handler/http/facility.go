package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/emresource/emresource/internal/pkg/middleware"
	"github.com/emresource/emresource/internal/pkg/models"
	"github.com/emresource/emresource/internal/utils"
)

// CreateFacility handles POST /facilities.
func (h *EmergencyHandler) CreateFacility(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var payload models.FacilityPayload
	if err := c.Bind(&payload); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	facility, err := h.emergencyUC.CreateFacility(c.Request().Context(), userID, &payload)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Facility created", facility)
}

// FindNearbyFacilities handles GET /facilities/nearby.
func (h *EmergencyHandler) FindNearbyFacilities(c echo.Context) error {
	origin, radius, ok := geoQuery(c)
	if !ok {
		return utils.BadRequestResponse(c, "lat and lng query parameters are required")
	}
	facilityType := models.FacilityType(c.QueryParam("type"))

	facilities, err := h.emergencyUC.FindNearbyFacilities(c.Request().Context(), origin, radius, facilityType)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", facilities)
}
