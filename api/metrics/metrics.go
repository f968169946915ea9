/* metrics.go
 * Contains the Prometheus metrics collected by the bot: prediction submissions, backend calls and
 * Discord commands. Every method is safe to call on a nil *Metrics so tests can run without metrics
 * Authors: Zachary Bower
 */

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics collects and exposes the bot's Prometheus metrics
type Metrics struct {
	registry *prometheus.Registry

	// Submission metrics
	SubmissionsTotal  *prometheus.CounterVec
	SubmissionsActive prometheus.Gauge

	// Backend metrics
	BackendRequests *prometheus.CounterVec
	BackendLatency  *prometheus.HistogramVec

	// Front-end metrics
	CommandsTotal *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on a private registry
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		SubmissionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "previsioni_submissions_total",
				Help: "Prediction submissions by result",
			},
			[]string{"result"},
		),
		SubmissionsActive: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "previsioni_submissions_in_flight",
				Help: "Prediction submissions currently waiting for the backend",
			},
		),
		BackendRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "previsioni_backend_requests_total",
				Help: "Backend calls by endpoint, action and status",
			},
			[]string{"endpoint", "action", "status"},
		),
		BackendLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "previsioni_backend_latency_seconds",
				Help:    "Backend call latency",
				Buckets: prometheus.ExponentialBuckets(0.01, 2, 13), // 10ms to ~40s
			},
			[]string{"endpoint", "action"},
		),
		CommandsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "previsioni_commands_total",
				Help: "Discord commands handled by command name",
			},
			[]string{"command"},
		),
	}

	m.registry.MustRegister(
		m.SubmissionsTotal,
		m.SubmissionsActive,
		m.BackendRequests,
		m.BackendLatency,
		m.CommandsTotal,
	)
	return m
}

// Registry returns the prometheus registry
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return prometheus.NewRegistry()
	}
	return m.registry
}

// ObserveRequest records one backend call. Satisfies external.Observer
func (m *Metrics) ObserveRequest(endpoint string, action string, status string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.BackendRequests.WithLabelValues(endpoint, action, status).Inc()
	m.BackendLatency.WithLabelValues(endpoint, action).Observe(elapsed.Seconds())
}

// RecordSubmission counts a submission by its result label (saved, expired, invalid, rejected, transport, duplicate)
func (m *Metrics) RecordSubmission(result string) {
	if m == nil {
		return
	}
	m.SubmissionsTotal.WithLabelValues(result).Inc()
}

// SubmissionStarted marks a submission as waiting for the backend. Call the returned func when it completes
func (m *Metrics) SubmissionStarted() func() {
	if m == nil {
		return func() {}
	}
	m.SubmissionsActive.Inc()
	return m.SubmissionsActive.Dec
}

// RecordCommand counts a handled Discord command
func (m *Metrics) RecordCommand(command string) {
	if m == nil {
		return
	}
	m.CommandsTotal.WithLabelValues(command).Inc()
}
