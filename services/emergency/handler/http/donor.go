package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/emresource/emresource/internal/pkg/middleware"
	"github.com/emresource/emresource/internal/pkg/models"
	"github.com/emresource/emresource/internal/utils"
)

// RegisterDonor handles POST /donors.
func (h *EmergencyHandler) RegisterDonor(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var reg models.DonorRegistration
	if err := c.Bind(&reg); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	donor, err := h.emergencyUC.RegisterDonor(c.Request().Context(), userID, &reg)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Donor profile created", donor)
}

// UpdateDonor handles PUT /donors/me.
func (h *EmergencyHandler) UpdateDonor(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var reg models.DonorRegistration
	if err := c.Bind(&reg); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	donor, err := h.emergencyUC.UpdateDonor(c.Request().Context(), userID, &reg)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Donor profile updated", donor)
}

// SetAvailability handles PATCH /donors/me/availability.
func (h *EmergencyHandler) SetAvailability(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var payload struct {
		IsAvailable bool `json:"is_available"`
	}
	if err := c.Bind(&payload); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.emergencyUC.SetDonorAvailability(c.Request().Context(), userID, payload.IsAvailable); err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Availability updated", payload)
}

// GetDonorProfile handles GET /donors/me.
func (h *EmergencyHandler) GetDonorProfile(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	donor, err := h.emergencyUC.GetDonorProfile(c.Request().Context(), userID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", donor)
}

// FindNearbyDonors handles GET /donors/nearby.
func (h *EmergencyHandler) FindNearbyDonors(c echo.Context) error {
	origin, radius, ok := geoQuery(c)
	if !ok {
		return utils.BadRequestResponse(c, "lat and lng query parameters are required")
	}
	bloodType := models.BloodType(c.QueryParam("blood_type"))

	donors, err := h.emergencyUC.FindNearbyDonors(c.Request().Context(), origin, radius, bloodType)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", donors)
}
