// Package metrics exposes Prometheus counters for backend traffic and
// page fetch cycles.
//
// A Metrics value owns its own registry so tests can build as many as they
// like without colliding on the global default registry. All methods are
// safe on a nil receiver, which is how metrics_enabled=false is expressed.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "liftadmin"

// Metrics bundles the collectors liftadmin records into.
type Metrics struct {
	Registry *prometheus.Registry

	BackendRequests *prometheus.CounterVec
	BackendLatency  *prometheus.HistogramVec
	FetchCycles     *prometheus.CounterVec
	Notifications   *prometheus.CounterVec
}

// New builds a Metrics with a fresh registry, including Go runtime and
// process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		Registry: reg,
		BackendRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "backend_requests_total",
			Help:      "Requests made to the elevator-parts API, by method, path and outcome kind.",
		}, []string{"method", "path", "outcome"}),
		BackendLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "backend_request_duration_seconds",
			Help:      "Latency of requests to the elevator-parts API.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
		FetchCycles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetch_cycles_total",
			Help:      "Completed page fetch cycles, by page and final status.",
		}, []string{"page", "status"}),
		Notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "User-facing notifications emitted, by level.",
		}, []string{"level"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.BackendRequests,
		m.BackendLatency,
		m.FetchCycles,
		m.Notifications,
	)
	return m
}

// ObserveBackend records one backend call.
func (m *Metrics) ObserveBackend(method, path, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.BackendRequests.WithLabelValues(method, path, outcome).Inc()
	m.BackendLatency.WithLabelValues(method, path).Observe(d.Seconds())
}

// ObserveCycle records the final status of a page fetch cycle.
func (m *Metrics) ObserveCycle(page, status string) {
	if m == nil {
		return
	}
	m.FetchCycles.WithLabelValues(page, status).Inc()
}

// ObserveNotification records an emitted notification.
func (m *Metrics) ObserveNotification(level string) {
	if m == nil {
		return
	}
	m.Notifications.WithLabelValues(level).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
// A nil Metrics serves 404.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
