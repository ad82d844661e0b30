// Package metrics provides Prometheus metrics for tool invocations.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusMetrics records tool-layer activity. All metric names carry the
// namespace given to New as a prefix.
type PrometheusMetrics struct {
	gatherer prometheus.Gatherer

	callsTotal      *prometheus.CounterVec
	errorsTotal     *prometheus.CounterVec
	durationSeconds *prometheus.HistogramVec
	fileSizeBytes   *prometheus.HistogramVec
}

// New creates the metrics and registers them on reg. A nil reg uses a fresh
// registry, which keeps tests and multiple instances from colliding.
//
// Registered metrics:
//   - {namespace}_tool_calls_total{operation,status}
//   - {namespace}_tool_errors_total{operation,error_type}
//   - {namespace}_tool_duration_seconds{operation}
//   - {namespace}_file_size_bytes{content_type}
func New(namespace string, reg *prometheus.Registry) *PrometheusMetrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	m := &PrometheusMetrics{gatherer: reg}

	m.callsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tool_calls_total",
			Help:      "Tool invocations by operation and outcome.",
		},
		[]string{"operation", "status"},
	)

	m.errorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tool_errors_total",
			Help:      "Failed tool invocations by operation and error category.",
		},
		[]string{"operation", "error_type"},
	)

	m.durationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "tool_duration_seconds",
			Help:      "Tool invocation latency, storage round trips included.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	// 1KB .. 100MB
	m.fileSizeBytes = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "file_size_bytes",
			Help:      "Sizes of files written through the tools.",
			Buckets:   prometheus.ExponentialBuckets(1024, 10, 6),
		},
		[]string{"content_type"},
	)

	reg.MustRegister(
		m.callsTotal,
		m.errorsTotal,
		m.durationSeconds,
		m.fileSizeBytes,
	)

	return m
}

// RecordSuccess counts a successful invocation of operation.
func (m *PrometheusMetrics) RecordSuccess(operation string) {
	m.callsTotal.WithLabelValues(operation, "success").Inc()
}

// RecordError counts a failed invocation of operation.
func (m *PrometheusMetrics) RecordError(operation, errorType string) {
	m.callsTotal.WithLabelValues(operation, "error").Inc()
	m.errorsTotal.WithLabelValues(operation, errorType).Inc()
}

// RecordDuration observes the latency of operation in seconds.
func (m *PrometheusMetrics) RecordDuration(operation string, seconds float64) {
	m.durationSeconds.WithLabelValues(operation).Observe(seconds)
}

// RecordFileSize observes the size of a file written through the tools.
func (m *PrometheusMetrics) RecordFileSize(contentType string, bytes int64) {
	m.fileSizeBytes.WithLabelValues(contentType).Observe(float64(bytes))
}

// Handler serves the registered metrics in the Prometheus exposition format.
func (m *PrometheusMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
