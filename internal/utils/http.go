package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/emresource/emresource/internal/pkg/apperrors"
	"github.com/emresource/emresource/internal/pkg/logger"
)

// Response is the standard API envelope.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    int    `json:"code,omitempty"`
}

// SuccessResponse sends a success response with data.
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler sends an error response with an explicit status.
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   errorMessage,
		Code:    statusCode,
	})
}

// AppErrorResponse maps a classified error to its HTTP status. Fatal and
// unclassified errors are logged with full context and surfaced as a
// generic 500.
func AppErrorResponse(c echo.Context, err error) error {
	kind := apperrors.KindOf(err)
	switch kind {
	case apperrors.KindValidation:
		return ErrorResponseHandler(c, http.StatusBadRequest, apperrors.Message(err))
	case apperrors.KindNotFound:
		return ErrorResponseHandler(c, http.StatusNotFound, apperrors.Message(err))
	case apperrors.KindConflict:
		return ErrorResponseHandler(c, http.StatusConflict, apperrors.Message(err))
	case apperrors.KindUnauthorized:
		return ErrorResponseHandler(c, http.StatusUnauthorized, apperrors.Message(err))
	case apperrors.KindForbidden:
		return ErrorResponseHandler(c, http.StatusForbidden, apperrors.Message(err))
	case apperrors.KindExpired:
		// Reported the same as a missing credential so issuance timing
		// never leaks.
		return ErrorResponseHandler(c, http.StatusBadRequest, apperrors.Message(err))
	case apperrors.KindTransient:
		return ErrorResponseHandler(c, http.StatusServiceUnavailable, apperrors.Message(err))
	default:
		logger.Error("unhandled error",
			logger.Err(err),
			logger.String("path", c.Path()),
		)
		return ErrorResponseHandler(c, http.StatusInternalServerError, "internal server error")
	}
}

// BadRequestResponse sends a 400 Bad Request response.
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// UnauthorizedResponse sends a 401 Unauthorized response.
func UnauthorizedResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Unauthorized"
	}
	return ErrorResponseHandler(c, http.StatusUnauthorized, errorMessage)
}

// ForbiddenResponse sends a 403 Forbidden response.
func ForbiddenResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Forbidden"
	}
	return ErrorResponseHandler(c, http.StatusForbidden, errorMessage)
}

// NotFoundResponse sends a 404 Not Found response.
func NotFoundResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Resource not found"
	}
	return ErrorResponseHandler(c, http.StatusNotFound, errorMessage)
}

// InternalServerErrorResponse sends a 500 Internal Server Error response.
func InternalServerErrorResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Internal server error"
	}
	return ErrorResponseHandler(c, http.StatusInternalServerError, errorMessage)
}
