package response

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Timestamp  string `json:"timestamp"`
	Path       string `json:"path"`
	Method     string `json:"method"`
	Message    string `json:"message"`
	Error      string `json:"error"`   // HTTP status text
	Details    any    `json:"details"` // Field errors, only for 4xx responses
}

// now is swapped in tests.
var now = time.Now

// Success returns a successful response
func Success(c echo.Context, statusCode int, message string, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Status:  statusCode,
		Message: message,
		Data:    data,
	})
}

// OK returns a 200 response
func OK(c echo.Context, message string, data any) error {
	return Success(c, http.StatusOK, message, data)
}

// Created returns a 201 response
func Created(c echo.Context, message string, data any) error {
	return Success(c, http.StatusCreated, message, data)
}

// Error returns an error response
func Error(c echo.Context, statusCode int, message string, details any) error {
	// Details never leave the server for 5xx or authentication failures
	if statusCode >= 500 || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	req := c.Request()

	return c.JSON(statusCode, ErrorResponse{
		StatusCode: statusCode,
		Timestamp:  now().UTC().Format(time.RFC3339),
		Path:       req.URL.Path,
		Method:     req.Method,
		Message:    message,
		Error:      http.StatusText(statusCode),
		Details:    details,
	})
}

// InternalServerError returns the generic 500 response
func InternalServerError(c echo.Context) error {
	return Error(c, http.StatusInternalServerError, "Internal server error", nil)
}
