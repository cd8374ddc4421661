package core

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusMetricsRecorder exports bridge operation counts and latencies.
type PrometheusMetricsRecorder struct {
	operations *prometheus.CounterVec
	latency    *prometheus.HistogramVec
	swallowed  prometheus.Counter
}

// NewPrometheusMetricsRecorder registers the rostercore collectors with reg.
// A nil registerer leaves the collectors unregistered.
func NewPrometheusMetricsRecorder(reg prometheus.Registerer) (*PrometheusMetricsRecorder, error) {
	r := &PrometheusMetricsRecorder{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rostercore",
			Name:      "operations_total",
			Help:      "Bridge operations by name and outcome.",
		}, []string{"operation", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "rostercore",
			Name:      "operation_duration_seconds",
			Help:      "Bridge operation latency.",
			Buckets:   prometheus.ExponentialBuckets(0.00005, 4, 8),
		}, []string{"operation"}),
		swallowed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "rostercore",
			Name:      "team_lookup_swallowed_total",
			Help:      "Team snapshot refreshes whose store error was replaced by an absent team.",
		}),
	}
	if reg == nil {
		return r, nil
	}
	for _, c := range []prometheus.Collector{r.operations, r.latency, r.swallowed} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Observe implements MetricsRecorder.
func (r *PrometheusMetricsRecorder) Observe(_ context.Context, operation string, success bool, duration time.Duration) {
	if operation == "" {
		return
	}
	status := "error"
	if success {
		status = "success"
	}
	r.operations.WithLabelValues(operation, status).Inc()
	r.latency.WithLabelValues(operation).Observe(duration.Seconds())
	if operation == OpTeamLookup && !success {
		r.swallowed.Inc()
	}
}
