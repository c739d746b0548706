// Package metrics exposes prometheus instrumentation for the repository layer.
package metrics

import (
	"io"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/common/expfmt"

	"roster/internal/errors"
)

const namespacePrefix = "roster_"

// OutcomeOK labels operations that returned without error.
const OutcomeOK = "OK"

// Metrics holds all prometheus metrics for roster.
// It uses a custom registry to avoid polluting the global namespace.
type Metrics struct {
	Registry *prometheus.Registry

	// roster_repository_operations_total - counter by repository, operation and outcome (error code)
	RepositoryOperations *prometheus.CounterVec

	// roster_repository_operation_duration_seconds - histogram for repository latency
	RepositoryDuration *prometheus.HistogramVec

	// roster_list_degraded_total - list queries that failed and were answered with an empty result
	ListDegraded *prometheus.CounterVec
}

// New creates and registers all prometheus metrics.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{
		Registry: reg,

		RepositoryOperations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "roster_repository_operations_total",
				Help: "Total number of repository operations by outcome",
			},
			[]string{"repository", "operation", "outcome"},
		),

		RepositoryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "roster_repository_operation_duration_seconds",
				Help:    "Repository operation duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"repository", "operation"},
		),

		ListDegraded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "roster_list_degraded_total",
				Help: "List operations that swallowed a query error and returned an empty result",
			},
			[]string{"repository", "operation"},
		),
	}

	reg.MustRegister(
		m.RepositoryOperations,
		m.RepositoryDuration,
		m.ListDegraded,
	)

	return m
}

// Observe records one finished repository operation. A nil receiver is a no-op.
func (m *Metrics) Observe(repository, operation, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}

	m.RepositoryOperations.WithLabelValues(repository, operation, outcome).Inc()
	m.RepositoryDuration.WithLabelValues(repository, operation).Observe(elapsed.Seconds())
}

// Degraded records a list operation that fell back to an empty result.
func (m *Metrics) Degraded(repository, operation string) {
	if m == nil {
		return
	}

	m.ListDegraded.WithLabelValues(repository, operation).Inc()
}

// WriteText gathers the roster_* families from the registry and writes them
// in the prometheus text exposition format. A nil receiver writes nothing.
func (m *Metrics) WriteText(w io.Writer) error {
	if m == nil {
		return nil
	}

	families, err := m.Registry.Gather()
	if err != nil {
		return errors.Wrap(err, "gather metrics")
	}

	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), namespacePrefix) {
			continue
		}
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return errors.Wrapf(err, "write metric family %s", mf.GetName())
		}
	}

	return nil
}
