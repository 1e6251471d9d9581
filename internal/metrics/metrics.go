// Package metrics records reconciliation and API call metrics.
//
// Metrics live in a private registry so a run can export exactly its own
// series, typically to a node_exporter textfile collector via [WriteTextfile].
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Result label values.
const (
	ResultSuccess = "success"
	ResultError   = "error"
	ResultDryRun  = "dry_run"
)

// Registry holds every ghlabels metric.
var Registry = prometheus.NewRegistry()

var (
	operationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ghlabels",
			Name:      "operations_total",
			Help:      "Total number of label operations by verb and result",
		},
		[]string{"verb", "result"},
	)

	repositoriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ghlabels",
			Name:      "repositories_total",
			Help:      "Total number of processed repositories by result",
		},
		[]string{"result"},
	)

	apiCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ghlabels",
			Subsystem: "api",
			Name:      "calls_total",
			Help:      "Total number of GitHub API calls by operation and result",
		},
		[]string{"operation", "result"},
	)

	apiLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "ghlabels",
			Subsystem: "api",
			Name:      "latency_seconds",
			Help:      "Latency of GitHub API calls in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 8), // 50ms to ~6s
		},
		[]string{"operation"},
	)
)

func init() {
	Registry.MustRegister(
		operationsTotal,
		repositoriesTotal,
		apiCallsTotal,
		apiLatency,
	)
}

// RecordOperation records the outcome of one label operation.
func RecordOperation(verb, result string) {
	operationsTotal.WithLabelValues(verb, result).Inc()
}

// RecordRepository records the outcome of processing one repository.
func RecordRepository(result string) {
	repositoriesTotal.WithLabelValues(result).Inc()
}

// RecordAPICall records one API call and its latency.
func RecordAPICall(operation string, err error, latency time.Duration) {
	result := ResultSuccess
	if err != nil {
		result = ResultError
	}
	apiCallsTotal.WithLabelValues(operation, result).Inc()
	apiLatency.WithLabelValues(operation).Observe(latency.Seconds())
}

// WriteTextfile writes all metrics in the Prometheus text format.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, Registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
