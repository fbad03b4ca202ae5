// Package metrics métricas Prometheus del BFF.
package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sony/gobreaker"

	"github.com/jhoicas/lot-allocation-bff/internal/domain"
)

const namespace = "lot_bff"

// Metrics colectores registrados en un registry propio.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	MutationsTotal     *prometheus.CounterVec
	CacheInvalidations *prometheus.CounterVec
	SessionsOpen       prometheus.Gauge

	BreakerState *prometheus.GaugeVec
	BreakerTrips *prometheus.CounterVec
}

// New construye y registra los colectores.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{registry: registry}

	m.HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total de peticiones HTTP",
	}, []string{"method", "route", "status"})
	m.HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duración de peticiones HTTP en segundos",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"method", "route"})
	m.HTTPRequestsInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "http_requests_in_flight",
		Help:      "Peticiones HTTP en curso",
	})
	m.MutationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "allocation_mutations_total",
		Help:      "Escrituras de asignación por operación y resultado",
	}, []string{"operation", "outcome"})
	m.CacheInvalidations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_invalidations_total",
		Help:      "Invalidaciones de caché por raíz de clave",
	}, []string{"root"})
	m.SessionsOpen = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "allocation_sessions_open",
		Help:      "Sesiones de asignación abiertas",
	})
	m.BreakerState = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "circuit_breaker_state",
		Help:      "Estado del breaker (0=closed, 1=half-open, 2=open)",
	}, []string{"name"})
	m.BreakerTrips = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "circuit_breaker_trips_total",
		Help:      "Veces que el breaker pasó a open",
	}, []string{"name"})

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.HTTPRequestsInFlight,
		m.MutationsTotal,
		m.CacheInvalidations,
		m.SessionsOpen,
		m.BreakerState,
		m.BreakerTrips,
	)
	return m
}

// Handler handler HTTP de exposición.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{EnableOpenMetrics: true})
}

// Registry registry subyacente.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// RecordHTTPRequest registra una petición terminada.
func (m *Metrics) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveMutation clasifica el resultado de una escritura de asignación.
func (m *Metrics) ObserveMutation(op string, err error) {
	m.MutationsTotal.WithLabelValues(op, Outcome(err)).Inc()
}

// Outcome etiqueta de resultado para un error.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domain.ErrConflict):
		return "conflict"
	case errors.Is(err, domain.ErrInvalidInput):
		return "rejected"
	case errors.Is(err, domain.ErrUnavailable):
		return "unavailable"
	}
	return "error"
}

// RecordInvalidation cuenta una invalidación por su primer segmento ("order-lines/7" -> "order-lines").
func (m *Metrics) RecordInvalidation(key string) {
	root, _, _ := strings.Cut(key, "/")
	m.CacheInvalidations.WithLabelValues(root).Inc()
}

// SetSessions fija el número de sesiones abiertas.
func (m *Metrics) SetSessions(n int) { m.SessionsOpen.Set(float64(n)) }

// BreakerObserver devuelve el callback para backend.WithStateObserver.
func (m *Metrics) BreakerObserver(name string) func(from, to gobreaker.State) {
	m.BreakerState.WithLabelValues(name).Set(0)
	return func(_, to gobreaker.State) {
		m.BreakerState.WithLabelValues(name).Set(float64(breakerValue(to)))
		if to == gobreaker.StateOpen {
			m.BreakerTrips.WithLabelValues(name).Inc()
		}
	}
}

func breakerValue(s gobreaker.State) int {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	}
	return 0
}
