package metrics_test

import (
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/lot-allocation-bff/internal/domain"
	"github.com/jhoicas/lot-allocation-bff/internal/infrastructure/metrics"
)

func TestOutcome(t *testing.T) {
	assert.Equal(t, "success", metrics.Outcome(nil))
	assert.Equal(t, "conflict", metrics.Outcome(&domain.APIError{Status: 409}))
	assert.Equal(t, "rejected", metrics.Outcome(fmt.Errorf("x: %w", domain.ErrInvalidInput)))
	assert.Equal(t, "unavailable", metrics.Outcome(&domain.APIError{Status: 503}))
	assert.Equal(t, "error", metrics.Outcome(errors.New("boom")))
}

func TestMetrics_Contadores(t *testing.T) {
	m := metrics.New()

	m.ObserveMutation("create_allocation", nil)
	m.ObserveMutation("create_allocation", nil)
	m.RecordInvalidation("order-lines/7")
	m.RecordInvalidation("lots")
	m.RecordHTTPRequest("GET", "/api/lots", 200, 20*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.MutationsTotal.WithLabelValues("create_allocation", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheInvalidations.WithLabelValues("order-lines")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/lots", "200")))
}

func TestMetrics_BreakerObserver(t *testing.T) {
	m := metrics.New()
	obs := m.BreakerObserver("backend")

	obs(gobreaker.StateClosed, gobreaker.StateOpen)
	assert.Equal(t, 2.0, testutil.ToFloat64(m.BreakerState.WithLabelValues("backend")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BreakerTrips.WithLabelValues("backend")))

	obs(gobreaker.StateOpen, gobreaker.StateHalfOpen)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BreakerState.WithLabelValues("backend")))
}

func TestMetrics_HandlerExpone(t *testing.T) {
	m := metrics.New()
	m.SetSessions(3)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "lot_bff_allocation_sessions_open 3")
}
