package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/emresource/emresource/internal/pkg/logger"
	"github.com/emresource/emresource/internal/pkg/middleware"
	"github.com/emresource/emresource/internal/pkg/models"
	"github.com/emresource/emresource/internal/utils"
)

// ListContacts handles GET /sos/contacts.
func (h *EmergencyHandler) ListContacts(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	contacts, err := h.emergencyUC.ListContacts(c.Request().Context(), userID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", contacts)
}

// AddContact handles POST /sos/contacts.
func (h *EmergencyHandler) AddContact(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var contact models.EmergencyContact
	if err := c.Bind(&contact); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	created, err := h.emergencyUC.AddContact(c.Request().Context(), userID, &contact)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Contact added", created)
}

// TriggerSOS handles POST /sos/alert.
func (h *EmergencyHandler) TriggerSOS(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var payload models.SOSAlertPayload
	if err := c.Bind(&payload); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	req, err := h.emergencyUC.TriggerSOS(c.Request().Context(), userID, &payload)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	logger.Info("sos alert triggered",
		logger.String("user_id", userID.String()),
		logger.String("request_id", req.ID.String()),
	)
	return utils.SuccessResponse(c, http.StatusCreated, "SOS alert sent", req)
}
