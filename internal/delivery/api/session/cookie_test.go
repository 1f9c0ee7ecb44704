package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasktrack/config"
	"tasktrack/internal/errors"
	mockSvc "tasktrack/internal/mocks/service"
	"tasktrack/internal/usecase"
)

func newConfig(env string, keys ...string) *config.Config {
	cfg := &config.Config{}
	cfg.Env.Env = env
	cfg.Cookie = config.CookieConfig{
		Name:   "session",
		Keys:   keys,
		MaxAge: 7 * 24 * time.Hour,
	}

	return cfg
}

func newCarrier(t *testing.T, env string, keys ...string) *Carrier {
	t.Helper()

	tokens := mockSvc.NewMockTokenService(t)
	tokens.EXPECT().TokenDuration().Return(24 * time.Hour)

	carrier, err := NewCarrier(newConfig(env, keys...), tokens)
	require.NoError(t, err)

	return carrier
}

func applyAndCapture(t *testing.T, carrier *Carrier, directive usecase.SessionDirective) *http.Cookie {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)

	require.NoError(t, carrier.Apply(c, directive))

	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		return nil
	}
	require.Len(t, cookies, 1)

	return cookies[0]
}

func TestCarrier_RoundTrip(t *testing.T) {
	carrier := newCarrier(t, "development", "first-key", "second-key")

	cookie := applyAndCapture(t, carrier, usecase.SetSession("jwt-value"))
	require.NotNil(t, cookie)
	assert.Equal(t, "session", cookie.Name)
	assert.True(t, cookie.HttpOnly)
	assert.False(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, 7*24*60*60, cookie.MaxAge)

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	req.AddCookie(cookie)
	assert.Equal(t, "jwt-value", carrier.Token(req))
}

func TestCarrier_ProductionFlags(t *testing.T) {
	carrier := newCarrier(t, "production", "first-key", "second-key")

	cookie := applyAndCapture(t, carrier, usecase.SetSession("jwt-value"))
	require.NotNil(t, cookie)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteNoneMode, cookie.SameSite)
}

func TestCarrier_KeyRotation(t *testing.T) {
	old := newCarrier(t, "development", "old-key", "older-key")
	value, err := old.Encode("jwt-value")
	require.NoError(t, err)

	rotated := newCarrier(t, "development", "new-key", "old-key")
	token, err := rotated.Decode(value)
	require.NoError(t, err)
	assert.Equal(t, "jwt-value", token)

	retired := newCarrier(t, "development", "new-key", "newer-key")
	_, err = retired.Decode(value)
	assert.Error(t, err)
}

func TestCarrier_TamperedCookieIsIgnored(t *testing.T) {
	carrier := newCarrier(t, "development", "first-key", "second-key")

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: "forged"})
	assert.Empty(t, carrier.Token(req))

	assert.Empty(t, carrier.Token(httptest.NewRequest(http.MethodGet, "/tasks", nil)))
}

func TestCarrier_Clear(t *testing.T) {
	carrier := newCarrier(t, "development", "first-key", "second-key")

	cookie := applyAndCapture(t, carrier, usecase.ClearSession())
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Equal(t, -1, cookie.MaxAge)

	assert.Nil(t, applyAndCapture(t, carrier, usecase.SessionDirective{}))
}

func TestNewCarrier_CookieMustOutliveToken(t *testing.T) {
	tokens := mockSvc.NewMockTokenService(t)
	tokens.EXPECT().TokenDuration().Return(30 * 24 * time.Hour).Once()

	carrier, err := NewCarrier(newConfig("development", "first-key", "second-key"), tokens)

	assert.Nil(t, carrier)
	assert.True(t, errors.Is(err, ErrCookieOutlivedByToken))
}

func TestNewCarrier_EqualLifetimesAccepted(t *testing.T) {
	tokens := mockSvc.NewMockTokenService(t)
	tokens.EXPECT().TokenDuration().Return(7 * 24 * time.Hour).Once()

	carrier, err := NewCarrier(newConfig("development", "first-key", "second-key"), tokens)

	require.NoError(t, err)
	assert.Equal(t, "session", carrier.Name())
}
