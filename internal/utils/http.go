package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/nebengdinas/internal/pkg/apperror"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   string      `json:"error"`
	Code    int         `json:"code,omitempty"`
	Outcome string      `json:"outcome,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   errorMessage,
		Code:    statusCode,
	})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// UnauthorizedResponse sends a 401 Unauthorized response
func UnauthorizedResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Unauthorized"
	}
	return ErrorResponseHandler(c, http.StatusUnauthorized, errorMessage)
}

// ForbiddenResponse sends a 403 Forbidden response
func ForbiddenResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Forbidden"
	}
	return ErrorResponseHandler(c, http.StatusForbidden, errorMessage)
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Internal server error"
	}
	return ErrorResponseHandler(c, http.StatusInternalServerError, errorMessage)
}

// StatusForError maps a domain error to its HTTP status
func StatusForError(err error) int {
	switch {
	case apperror.IsValidation(err):
		return http.StatusBadRequest
	case apperror.IsAuthorization(err):
		return http.StatusForbidden
	case apperror.IsNotFound(err):
		return http.StatusNotFound
	case apperror.IsConflict(err), apperror.IsCapacityExceeded(err):
		return http.StatusConflict
	case apperror.IsToken(err):
		if tokenErr, _ := apperror.AsToken(err); tokenErr.Kind == apperror.TokenExpired {
			return http.StatusGone
		}
		return http.StatusBadRequest
	case apperror.IsTransient(err):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// DomainErrorResponse writes err with the status its kind maps to. Internal
// errors are not echoed to the caller.
func DomainErrorResponse(c echo.Context, err error) error {
	status := StatusForError(err)
	body := ErrorResponse{Success: false, Error: err.Error(), Code: status}

	if tokenErr, ok := apperror.AsToken(err); ok {
		body.Outcome = tokenErr.Outcome()
	}
	if capErr, ok := apperror.AsCapacity(err); ok {
		body.Details = map[string]int{
			"current":   capErr.Current,
			"requested": capErr.Requested,
			"capacity":  capErr.Capacity,
		}
	}
	switch status {
	case http.StatusInternalServerError:
		body.Error = "Internal server error"
	case http.StatusServiceUnavailable:
		body.Error = "Service temporarily unavailable"
	}

	return c.JSON(status, body)
}
