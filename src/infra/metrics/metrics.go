// Package metrics provides the Prometheus metrics for the application.
//
// Metrics live on their own registry rather than the global default so that
// tests can build fresh instances without duplicate registration panics.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"lessonbox/src/core/domain"
	"lessonbox/src/core/ports"
)

const namespace = "lessonbox"

// Metrics holds every collector the application records into.
type Metrics struct {
	registry *prometheus.Registry

	// FailuresTotal counts classified failures by where they surfaced and their kind
	FailuresTotal *prometheus.CounterVec

	// HTTPRequestsTotal counts HTTP requests by method, route and status
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration measures HTTP request duration in seconds
	HTTPRequestDuration *prometheus.HistogramVec

	// LessonsTotal counts walkthrough steps by outcome (ok or failed)
	LessonsTotal *prometheus.CounterVec
}

// New creates the collectors and registers them, plus Go runtime and process
// collectors, on a private registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		FailuresTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "failures_total",
				Help:      "Total number of classified failures by source and kind",
			},
			[]string{"source", "kind"},
		),
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		LessonsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "walkthrough_steps_total",
				Help:      "Total number of walkthrough steps by outcome",
			},
			[]string{"outcome"},
		),
	}
	m.registry.MustRegister(
		m.FailuresTotal,
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.LessonsTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

var _ ports.FailureRecorder = (*Metrics)(nil)

// RecordFailure counts err under its domain kind. A nil error is ignored.
func (m *Metrics) RecordFailure(source string, err error) {
	if m == nil || err == nil {
		return
	}
	m.FailuresTotal.WithLabelValues(source, string(domain.KindOf(err))).Inc()
}

// RecordStep counts one walkthrough step.
func (m *Metrics) RecordStep(failed bool) {
	if m == nil {
		return
	}
	outcome := "ok"
	if failed {
		outcome = "failed"
	}
	m.LessonsTotal.WithLabelValues(outcome).Inc()
}

// RecordHTTPRequest records one finished HTTP request.
func (m *Metrics) RecordHTTPRequest(method, path, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
