package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "patterncut"

// Metrics holds the server's Prometheus collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	PlansGenerated      *prometheus.CounterVec
	ExportsTotal        *prometheus.CounterVec
	UploadsTotal        *prometheus.CounterVec
	PatternsStored      prometheus.Gauge
}

// NewMetrics creates and registers all collectors.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(prometheus.NewGoCollector())
	registry.MustRegister(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))

	m := &Metrics{registry: registry}

	m.HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	m.HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"method", "path"},
	)

	m.PlansGenerated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "plans_generated_total",
			Help:      "Total number of cutting plans generated, by resolved category",
		},
		[]string{"category"},
	)

	m.ExportsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "exports_total",
			Help:      "Total number of rendered documents, by format and outcome",
		},
		[]string{"format", "status"},
	)

	m.UploadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "uploads_total",
			Help:      "Total number of image uploads, by outcome",
		},
		[]string{"status"},
	)

	m.PatternsStored = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "patterns_stored",
			Help:      "Number of patterns currently stored",
		},
	)

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.PlansGenerated,
		m.ExportsTotal,
		m.UploadsTotal,
		m.PatternsStored,
	)
	return m
}

// Handler returns the /metrics HTTP handler for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordHTTPRequest records one completed request.
func (m *Metrics) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordPlan counts a generated plan.
func (m *Metrics) RecordPlan(category string) {
	m.PlansGenerated.WithLabelValues(category).Inc()
}

// RecordExport counts a rendered document.
func (m *Metrics) RecordExport(format string, success bool) {
	m.ExportsTotal.WithLabelValues(format, outcome(success)).Inc()
}

// RecordUpload counts an upload attempt.
func (m *Metrics) RecordUpload(success bool) {
	m.UploadsTotal.WithLabelValues(outcome(success)).Inc()
}

func outcome(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}
