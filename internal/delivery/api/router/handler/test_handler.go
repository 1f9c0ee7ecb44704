package handler

import (
	"github.com/labstack/echo/v4"

	"tasktrack/internal/delivery/api/response"
	"tasktrack/internal/delivery/api/session"
)

// TestHandler exposes the session cookie for debugging. Routed only when
// testRoutes.enabled is set.
type TestHandler struct {
	carrier *session.Carrier
}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler(carrier *session.Carrier) *TestHandler {
	return &TestHandler{carrier: carrier}
}

// ReadCookie reports what the session cookie currently carries.
func (h *TestHandler) ReadCookie(c echo.Context) error {
	token := h.carrier.Token(c.Request())

	return response.OK(c, "Session cookie inspected", map[string]any{
		"hasSession": token != "",
		"token":      token,
	})
}

// WriteCookie stores an arbitrary token in the session cookie.
func (h *TestHandler) WriteCookie(c echo.Context) error {
	var req testCookieRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.carrier.Set(c, req.Token); err != nil {
		return err
	}

	return response.OK(c, "Session cookie set", nil)
}
