package handler

import (
	"github.com/labstack/echo/v4"

	"tasktrack/internal/delivery/api/response"
)

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return response.OK(c, "Service is healthy", map[string]string{"status": "ok"})
}
