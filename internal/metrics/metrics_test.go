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
)

func TestObserveExport(t *testing.T) {
	m := New()
	m.ObserveExport("xlsx", nil)
	m.ObserveExport("xlsx", nil)
	m.ObserveExport("pdf", errors.New("boom"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.exports.WithLabelValues("xlsx", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.exports.WithLabelValues("pdf", "failure")))
}

func TestHandlerExposesCounters(t *testing.T) {
	m := New()
	m.ObserveRequest("GET /actions", http.StatusOK, 5*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `dashboard_http_requests_total{code="200",route="GET /actions"} 1`)
}
