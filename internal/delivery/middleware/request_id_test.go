package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	deliverycontext "tasktrack/internal/delivery/context"
)

func runRequestID(t *testing.T, incoming string) (string, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(&buf, nil)))

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	if incoming != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, incoming)
	}
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	err := m.Process(func(c echo.Context) error {
		ctx := c.Request().Context()
		assert.Equal(t, deliverycontext.GetRequestID(c), deliverycontext.GetRequestIDFromContext(ctx))
		deliverycontext.GetLoggerOrDefault(ctx, nil).Info("handled")

		return c.NoContent(http.StatusOK)
	})(c)
	require.NoError(t, err)

	return rec.Header().Get(deliverycontext.HeaderXRequestID), &buf
}

func TestRequestIDMiddleware_ReusesIncomingID(t *testing.T) {
	id, logs := runRequestID(t, "edge-7f3a.01:beta_2")

	assert.Equal(t, "edge-7f3a.01:beta_2", id)
	assert.Contains(t, logs.String(), "request_id=edge-7f3a.01:beta_2")
}

func TestRequestIDMiddleware_GeneratesWhenAbsentOrMalformed(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
	}{
		{name: "absent"},
		{name: "line break", incoming: "abc\nlevel=ERROR msg=forged"},
		{name: "space", incoming: "two words"},
		{name: "too long", incoming: strings.Repeat("a", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, logs := runRequestID(t, tt.incoming)

			_, err := uuid.Parse(id)
			require.NoError(t, err)
			assert.Contains(t, logs.String(), "request_id="+id)
		})
	}
}
