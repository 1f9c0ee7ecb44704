package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"tasktrack/config"
	"tasktrack/internal/delivery/api/session"
	"tasktrack/internal/delivery/api/validator"
	deliverycontext "tasktrack/internal/delivery/context"
	"tasktrack/internal/domain/entity"
	mockService "tasktrack/internal/mocks/service"
)

func newTestCarrier(t *testing.T) *session.Carrier {
	cfg := &config.Config{}
	cfg.Cookie = config.CookieConfig{Name: "session", Keys: []string{"key-one", "key-two"}, MaxAge: time.Hour}

	tokens := mockService.NewMockTokenService(t)
	tokens.EXPECT().TokenDuration().Return(time.Hour)

	carrier, err := session.NewCarrier(cfg, tokens)
	require.NoError(t, err)

	return carrier
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newRequestContext builds an echo context with the JSON body and, when
// owner is set, an admitted identity.
func newRequestContext(method, target, body string, owner uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if owner != uuid.Nil {
		deliverycontext.SetIdentity(c, entity.Identity{UserID: owner})
	}

	return c, rec
}

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var body envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "session" {
			return cookie
		}
	}

	return nil
}
