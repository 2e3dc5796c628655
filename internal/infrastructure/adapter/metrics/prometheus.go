// Package metrics exposes the service's Prometheus collectors.
package metrics

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	defaultNamespace = "cupcakes"
	defaultSubsystem = "api"
)

// Metrics owns a dedicated registry and every collector the service publishes
type Metrics struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbOpenConnections prometheus.Gauge
	dbInUse           prometheus.Gauge
	dbIdle            prometheus.Gauge
	dbWaitCount       prometheus.Gauge
	dbQueryDuration   *prometheus.HistogramVec
	dbQueryErrors     *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on a fresh registry
func NewMetrics(opts ...Option) *Metrics {
	m := &Metrics{
		namespace:        defaultNamespace,
		subsystem:        defaultSubsystem,
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.NewRegistry(),
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()
	return m
}

func (m *Metrics) initializeMetrics() {
	m.httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests by route, method and status.",
	}, []string{"route", "method", "status"})

	m.httpRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route, method and status.",
		Buckets:   m.histogramBuckets,
	}, []string{"route", "method", "status"})

	m.dbOpenConnections = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "db",
		Name:      "open_connections",
		Help:      "Number of established connections, in use and idle.",
	})

	m.dbInUse = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "db",
		Name:      "in_use_connections",
		Help:      "Number of connections currently in use.",
	})

	m.dbIdle = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "db",
		Name:      "idle_connections",
		Help:      "Number of idle connections.",
	})

	m.dbWaitCount = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "db",
		Name:      "wait_count",
		Help:      "Total number of connections waited for.",
	})

	m.dbQueryDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "db",
		Name:      "query_duration_seconds",
		Help:      "SQL statement latency by statement type.",
		Buckets:   m.histogramBuckets,
	}, []string{"type"})

	m.dbQueryErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "db",
		Name:      "query_errors_total",
		Help:      "Failed SQL statements by statement type.",
	}, []string{"type"})

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpRequestDuration,
		m.dbOpenConnections,
		m.dbInUse,
		m.dbIdle,
		m.dbWaitCount,
		m.dbQueryDuration,
		m.dbQueryErrors,
	)
}

// Registry returns the registry the collectors live in
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordHTTPRequest counts a served request and observes its latency
func (m *Metrics) RecordHTTPRequest(route, method, status string, duration time.Duration) {
	m.httpRequests.WithLabelValues(route, method, status).Inc()
	m.httpRequestDuration.WithLabelValues(route, method, status).Observe(duration.Seconds())
}

// SetDBPoolStats publishes a connection pool snapshot
func (m *Metrics) SetDBPoolStats(stats sql.DBStats) {
	m.dbOpenConnections.Set(float64(stats.OpenConnections))
	m.dbInUse.Set(float64(stats.InUse))
	m.dbIdle.Set(float64(stats.Idle))
	m.dbWaitCount.Set(float64(stats.WaitCount))
}

// ObserveQuery records the latency of one SQL statement
func (m *Metrics) ObserveQuery(queryType string, elapsed time.Duration, failed bool) {
	if queryType == "" {
		queryType = "OTHER"
	}
	m.dbQueryDuration.WithLabelValues(queryType).Observe(elapsed.Seconds())
	if failed {
		m.dbQueryErrors.WithLabelValues(queryType).Inc()
	}
}
