package middleware

import (
	"tasktrack/internal/delivery/api/session"
	deliverycontext "tasktrack/internal/delivery/context"
	"tasktrack/internal/usecase"

	"github.com/labstack/echo/v4"
)

// queryTokenParam is read only when the guard allows query tokens.
const queryTokenParam = "token"

// AuthMiddleware admits requests carrying a valid session token.
type AuthMiddleware struct {
	authorizer usecase.Authorizer
	carrier    *session.Carrier
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(authorizer usecase.Authorizer, carrier *session.Carrier) *AuthMiddleware {
	return &AuthMiddleware{
		authorizer: authorizer,
		carrier:    carrier,
	}
}

// RequireAuth gathers every token source, lets the authorizer decide and
// stores the admitted identity for the handlers.
func (m *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		sources := usecase.TokenSources{
			Session:             m.carrier.Token(req),
			AuthorizationHeader: req.Header.Get(echo.HeaderAuthorization),
			Query:               c.QueryParam(queryTokenParam),
		}

		identity, err := m.authorizer.Authorize(req.Context(), sources)
		if err != nil {
			return err
		}

		deliverycontext.SetIdentity(c, identity)

		return next(c)
	}
}
