package metrics

import (
	"context"
	"net/http"

	"spy-cat-agency/internal/ports/breeds"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "spycat"

// Metrics agrupa los collectors del servicio.
// Se registran en un Registry propio para que varios routers (tests) no choquen.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
	BreedLookups *prometheus.CounterVec
}

func New(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	m := &Metrics{
		registry: reg,
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		BreedLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "breed_lookups_total",
			Help:      "Breed catalog lookups by outcome (found, not_found, error).",
		}, []string{"outcome"}),
	}

	reg.MustRegister(m.HTTPRequests, m.HTTPDuration, m.BreedLookups)
	return m
}

// Registry expone el registry (para tests o para colgar más collectors).
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler sirve /metrics para este registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// InstrumentCatalog cuenta el resultado de cada consulta al catálogo de razas.
func (m *Metrics) InstrumentCatalog(next breeds.Catalog) breeds.Catalog {
	return breeds.CatalogFunc(func(ctx context.Context, breed string) (bool, error) {
		ok, err := next.Contains(ctx, breed)
		switch {
		case err != nil:
			m.BreedLookups.WithLabelValues("error").Inc()
		case ok:
			m.BreedLookups.WithLabelValues("found").Inc()
		default:
			m.BreedLookups.WithLabelValues("not_found").Inc()
		}
		return ok, err
	})
}
