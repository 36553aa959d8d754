// Package telemetry exposes the Prometheus counters and histograms a
// simulation driver reports through when built with
// simulation.WithMetrics. The scenario runner and sensitivity sweep build
// their drivers without metrics, so their runs are not recorded here.
package telemetry

import "github.com/prometheus/client_golang/prometheus"

// Metrics bundles the counters/histograms emitted by the simulation core.
type Metrics struct {
	Registry           *prometheus.Registry
	IterationsTotal    prometheus.Counter
	ModelFailuresTotal prometheus.Counter
	RunDuration        prometheus.Histogram
}

// New constructs a fresh, isolated registry and metric set so that
// multiple Drivers in the same process (e.g. under test) don't collide on
// the default global registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	iterations := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "montecarlo",
		Name:      "iterations_total",
		Help:      "Total number of simulation iterations executed.",
	})
	failures := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "montecarlo",
		Name:      "model_failures_total",
		Help:      "Total number of iterations where the model produced a non-finite value.",
	})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "montecarlo",
		Name:      "run_duration_seconds",
		Help:      "Wall-clock duration of a single driver run.",
		Buckets:   prometheus.DefBuckets,
	})

	reg.MustRegister(iterations, failures, duration)

	return &Metrics{
		Registry:           reg,
		IterationsTotal:    iterations,
		ModelFailuresTotal: failures,
		RunDuration:        duration,
	}
}
