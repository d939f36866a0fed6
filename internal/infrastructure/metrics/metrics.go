// Package metrics exposes Prometheus collectors for the HTTP surface and the
// generation pipeline on a dedicated registry.
package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

const namespace = "jirant"

// Generation outcomes.
const (
	OutcomeSuccess        = "success"
	OutcomePartial        = "partial"
	OutcomeFailed         = "failed"
	OutcomeTimeout        = "timeout"
	OutcomeInvalidRequest = "invalid"
)

type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	generationsTotal    *prometheus.CounterVec
	generationDuration  prometheus.Histogram
	completionDuration  *prometheus.HistogramVec
	contextLinksTotal   *prometheus.CounterVec
	dbConnectionsOpen   prometheus.Gauge
	dbConnectionsIdle   prometheus.Gauge
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of API requests",
			},
			[]string{"method", "path", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "API request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		generationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "ticket_generations_total",
				Help:      "Ticket generation requests by outcome",
			},
			[]string{"outcome"},
		),
		generationDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "ticket_generation_duration_seconds",
				Help:      "End-to-end ticket generation time",
				Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 40, 80, 160},
			},
		),
		completionDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "llm_completion_duration_seconds",
				Help:      "Duration of single text generation calls",
				Buckets:   []float64{0.25, 0.5, 1, 2.5, 5, 10, 20, 40, 80},
			},
			[]string{"call", "result"},
		),
		contextLinksTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "context_links_total",
				Help:      "Context edges created after generation, by status",
			},
			[]string{"status"},
		),
		dbConnectionsOpen: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "database_connections_open",
			Help:      "Number of open database connections",
		}),
		dbConnectionsIdle: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "database_connections_idle",
			Help:      "Number of idle database connections",
		}),
	}

	m.registry.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.generationsTotal,
		m.generationDuration,
		m.completionDuration,
		m.contextLinksTotal,
		m.dbConnectionsOpen,
		m.dbConnectionsIdle,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordHTTPRequest uses the route template as path so label cardinality stays bounded.
func (m *Metrics) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if path == "" {
		path = "unmatched"
	}
	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func (m *Metrics) RecordGeneration(outcome string, duration time.Duration) {
	m.generationsTotal.WithLabelValues(outcome).Inc()
	m.generationDuration.Observe(duration.Seconds())
}

func (m *Metrics) RecordCompletion(call string, err error, duration time.Duration) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.completionDuration.WithLabelValues(call, result).Observe(duration.Seconds())
}

func (m *Metrics) RecordContextLink(status string) {
	m.contextLinksTotal.WithLabelValues(status).Inc()
}

// UpdateDatabaseConnections copies sql.DB pool stats into the gauges.
func (m *Metrics) UpdateDatabaseConnections(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	stats := sqlDB.Stats()
	m.dbConnectionsOpen.Set(float64(stats.OpenConnections))
	m.dbConnectionsIdle.Set(float64(stats.Idle))
	return nil
}
