package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tasktrack/config"
	"tasktrack/internal/delivery/api/session"
	deliverycontext "tasktrack/internal/delivery/context"
	"tasktrack/internal/domain/entity"
	domainerrors "tasktrack/internal/domain/errors"
	mockSvc "tasktrack/internal/mocks/service"
	mockUsecase "tasktrack/internal/mocks/usecase"
	"tasktrack/internal/usecase"
)

func newCarrier(t *testing.T) *session.Carrier {
	cfg := &config.Config{}
	cfg.Cookie = config.CookieConfig{Name: "session", Keys: []string{"k1", "k2"}, MaxAge: time.Hour}

	tokens := mockSvc.NewMockTokenService(t)
	tokens.EXPECT().TokenDuration().Return(time.Hour)

	carrier, err := session.NewCarrier(cfg, tokens)
	require.NoError(t, err)

	return carrier
}

func TestAuthMiddleware_PassesEverySource(t *testing.T) {
	carrier := newCarrier(t)
	value, err := carrier.Encode("cookie-token")
	require.NoError(t, err)

	authorizer := mockUsecase.NewMockAuthorizer(t)
	userID := uuid.New()
	authorizer.EXPECT().
		Authorize(mock.Anything, usecase.TokenSources{
			Session:             "cookie-token",
			AuthorizationHeader: "Bearer header-token",
			Query:               "query-token",
		}).
		Return(entity.Identity{UserID: userID}, nil)

	req := httptest.NewRequest(http.MethodGet, "/tasks?token=query-token", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer header-token")
	req.AddCookie(&http.Cookie{Name: "session", Value: value})
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	var seen entity.Identity
	next := func(c echo.Context) error {
		identity, ok := deliverycontext.GetIdentity(c)
		require.True(t, ok)
		fromCtx, ok := deliverycontext.IdentityFromContext(c.Request().Context())
		require.True(t, ok)
		assert.Equal(t, identity, fromCtx)
		seen = identity

		return c.NoContent(http.StatusOK)
	}

	require.NoError(t, NewAuthMiddleware(authorizer, carrier).RequireAuth(next)(c))
	assert.Equal(t, userID, seen.UserID)
}

func TestAuthMiddleware_RejectsWithoutCallingNext(t *testing.T) {
	authorizer := mockUsecase.NewMockAuthorizer(t)
	authorizer.EXPECT().
		Authorize(mock.Anything, usecase.TokenSources{}).
		Return(entity.Identity{}, domainerrors.ErrNoAuthToken)

	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/tasks", nil), httptest.NewRecorder())

	err := NewAuthMiddleware(authorizer, newCarrier(t)).RequireAuth(func(echo.Context) error {
		t.Fatal("next must not run")

		return nil
	})(c)

	assert.ErrorIs(t, err, domainerrors.ErrNoAuthToken)
}
