package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lessonbox/src/core/domain"
)

func TestRecordFailureLabelsByKind(t *testing.T) {
	m := New()

	m.RecordFailure("walkthrough", domain.NewValidationError("username", "too short"))
	m.RecordFailure("walkthrough", domain.NewValidationError("username", "too short"))
	m.RecordFailure("http", errors.New("boom"))
	m.RecordFailure("http", nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.FailuresTotal.WithLabelValues("walkthrough", "validation-failure")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FailuresTotal.WithLabelValues("http", "unclassified")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordFailure("x", errors.New("x"))
		m.RecordStep(true)
		m.RecordHTTPRequest("GET", "/", "200", time.Millisecond)
	})
}

func TestHandlerExposesCollectors(t *testing.T) {
	m := New()
	m.RecordStep(false)
	m.RecordHTTPRequest("GET", "/health", "200", 5*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `lessonbox_walkthrough_steps_total{outcome="ok"} 1`)
	assert.Contains(t, body, `lessonbox_http_requests_total{method="GET",path="/health",status="200"} 1`)
}
