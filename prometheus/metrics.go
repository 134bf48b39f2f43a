// Package prometheus exports catalog metrics in the Prometheus format.
package prometheus

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/fwojciec/nearby"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Query results used as the "result" label.
const (
	ResultFound = "found"
	ResultEmpty = "empty"
	ResultError = "error"
)

// Metrics bundles the catalog metrics.
type Metrics struct {
	gatherer prometheus.Gatherer

	Queries          *prometheus.CounterVec
	QueryDurations   prometheus.Histogram
	CatalogLocations prometheus.Gauge
}

// NewMetrics registers the catalog metrics against reg, defaulting to the
// global registry when nil.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	queries, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "nearby_catalog_queries_total",
		Help: "Catalog name queries, labeled by result.",
	}, []string{"result"}))
	if err != nil {
		return nil, err
	}

	durations, err := register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "nearby_catalog_query_duration_seconds",
		Help:    "Catalog name query latency in seconds.",
		Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 1},
	}))
	if err != nil {
		return nil, err
	}

	locations, err := register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "nearby_catalog_locations",
		Help: "Number of locations in the loaded catalog.",
	}))
	if err != nil {
		return nil, err
	}

	return &Metrics{
		gatherer:         gatherer,
		Queries:          queries,
		QueryDurations:   durations,
		CatalogLocations: locations,
	}, nil
}

// Handler exposes a /metrics handler.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// SetCatalogInfo records the size of the loaded catalog.
func (m *Metrics) SetCatalogInfo(info *nearby.CatalogInfo) {
	if m == nil || info == nil {
		return
	}
	m.CatalogLocations.Set(float64(info.Count))
}

// register registers c, returning the existing collector when an identical
// one is already registered.
func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
			return c, fmt.Errorf("collector already registered with incompatible type: %w", err)
		}
		return c, err
	}
	return c, nil
}

// Ensure LocationService implements nearby.LocationService.
var _ nearby.LocationService = (*LocationService)(nil)

// LocationService wraps a LocationService and records query metrics.
type LocationService struct {
	next    nearby.LocationService
	metrics *Metrics
}

// NewLocationService creates a new LocationService.
func NewLocationService(next nearby.LocationService, metrics *Metrics) *LocationService {
	return &LocationService{next: next, metrics: metrics}
}

// FindLocationByID delegates to the wrapped service.
func (s *LocationService) FindLocationByID(ctx context.Context, id int) (*nearby.Location, error) {
	return s.next.FindLocationByID(ctx, id)
}

// FindLocations delegates to the wrapped service and records the outcome.
func (s *LocationService) FindLocations(ctx context.Context, filter nearby.LocationFilter) (locs []*nearby.Location, err error) {
	defer func(begin time.Time) {
		result := ResultFound
		switch {
		case err != nil:
			result = ResultError
		case len(locs) == 0:
			result = ResultEmpty
		}
		s.metrics.Queries.WithLabelValues(result).Inc()
		s.metrics.QueryDurations.Observe(time.Since(begin).Seconds())
	}(time.Now())
	return s.next.FindLocations(ctx, filter)
}
