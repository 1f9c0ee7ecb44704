package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasktrack/internal/domain/service"
)

func TestCollector_RecordAuthAttempt(t *testing.T) {
	c := NewCollector(prometheus.NewRegistry())

	c.RecordAuthAttempt(service.FlowLogin, service.OutcomeSuccess)
	c.RecordAuthAttempt(service.FlowLogin, service.OutcomeRejected)
	c.RecordAuthAttempt(service.FlowLogin, service.OutcomeRejected)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.authAttempts.WithLabelValues(service.FlowLogin, service.OutcomeSuccess)))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.authAttempts.WithLabelValues(service.FlowLogin, service.OutcomeRejected)))
}

func TestCollector_RecordGuardRejection(t *testing.T) {
	c := NewCollector(prometheus.NewRegistry())

	c.RecordGuardRejection("missing")
	c.RecordGuardRejection("invalid")
	c.RecordGuardRejection("invalid")

	assert.Equal(t, 1.0, testutil.ToFloat64(c.guardRejections.WithLabelValues("missing")))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.guardRejections.WithLabelValues("invalid")))
}

func TestCollector_RecordHTTPRequest(t *testing.T) {
	c := NewCollector(prometheus.NewRegistry())

	c.RecordHTTPRequest(http.MethodGet, "/tasks", http.StatusOK, 20*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.httpRequests.WithLabelValues(http.MethodGet, "/tasks", "200")))
	assert.Equal(t, 1, testutil.CollectAndCount(c.httpLatency))
}

func TestCollector_Handler(t *testing.T) {
	c := NewCollector(NewRegistry())
	c.RecordAuthAttempt(service.FlowSignup, service.OutcomeSuccess)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `tasktrack_auth_attempts_total{flow="signup",outcome="success"} 1`))
	assert.Contains(t, body, "go_goroutines")
}
