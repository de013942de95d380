// Package observability provides Prometheus metrics for bootstrap runs.
package observability

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const defaultNamespace = "gorrillazz_bootstrap"

// Run outcome labels.
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// Metrics holds the Prometheus metrics of a single bootstrap run.
// The initializer exits after one run, so metrics live on a private registry
// and are exported through the node_exporter textfile collector instead of
// an HTTP endpoint.
type Metrics struct {
	registry *prometheus.Registry

	// Schema metrics
	Collections     *prometheus.CounterVec
	IndexesDeclared *prometheus.CounterVec

	// Seed metrics
	SeedDocumentsInserted prometheus.Counter

	// Run metrics
	RunsTotal         *prometheus.CounterVec
	RunDuration       prometheus.Gauge
	LastSuccessfulRun prometheus.Gauge
}

// NewMetrics creates a new Metrics instance on a fresh registry.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = defaultNamespace
	}

	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		Collections: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "schema",
			Name:      "collections_total",
			Help:      "Collections processed by outcome (created or skipped)",
		}, []string{"outcome"}),
		IndexesDeclared: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "schema",
			Name:      "indexes_declared_total",
			Help:      "Indexes declared per collection",
		}, []string{"collection"}),

		SeedDocumentsInserted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "seed",
			Name:      "documents_inserted_total",
			Help:      "Seed documents inserted",
		}),

		RunsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "run",
			Name:      "total",
			Help:      "Bootstrap runs by status",
		}, []string{"status"}),
		RunDuration: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "run",
			Name:      "duration_seconds",
			Help:      "Wall-clock duration of the last run",
		}),
		LastSuccessfulRun: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "run",
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix timestamp of the last successful run",
		}),
	}
}

// Registry returns the registry holding the metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordCollection records a created or skipped collection.
func (m *Metrics) RecordCollection(created bool) {
	outcome := "skipped"
	if created {
		outcome = "created"
	}
	m.Collections.WithLabelValues(outcome).Inc()
}

// RecordIndex records an index declared on collection.
func (m *Metrics) RecordIndex(collection string) {
	m.IndexesDeclared.WithLabelValues(collection).Inc()
}

// RecordSeed records an inserted seed document.
func (m *Metrics) RecordSeed() {
	m.SeedDocumentsInserted.Inc()
}

// RecordRun records the run outcome and its duration.
func (m *Metrics) RecordRun(start, end time.Time, err error) {
	m.RunDuration.Set(end.Sub(start).Seconds())
	if err != nil {
		m.RunsTotal.WithLabelValues(StatusFailure).Inc()
		return
	}
	m.RunsTotal.WithLabelValues(StatusSuccess).Inc()
	m.LastSuccessfulRun.Set(float64(end.Unix()))
}

// WriteTextfile writes all metrics to path in the Prometheus text format.
// The file is written atomically.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
