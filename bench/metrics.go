package bench

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics collects run observations in a private registry and writes them
// in the node-exporter text file format.
type Metrics struct {
	reg       *prometheus.Registry
	runtime   *prometheus.HistogramVec
	tardiness *prometheus.GaugeVec
	failures  *prometheus.CounterVec
}

// NewMetrics builds the collectors and registers them.
func NewMetrics() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		runtime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "lvsched",
			Subsystem: "bench",
			Name:      "runtime_seconds",
			Help:      "Wall time of successful runs.",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 12),
		}, []string{"algo"}),
		tardiness: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "lvsched",
			Subsystem: "bench",
			Name:      "tardiness",
			Help:      "Total tardiness reported by a run.",
		}, []string{"algo", "instance"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lvsched",
			Subsystem: "bench",
			Name:      "failed_runs_total",
			Help:      "Runs that errored, timed out or missed a known optimum.",
		}, []string{"algo", "status"}),
	}
	m.reg.MustRegister(m.runtime, m.tardiness, m.failures)

	return m
}

// Observe records one run. Safe for concurrent use.
func (m *Metrics) Observe(r Record) {
	switch {
	case r.Status == StatusOK && r.Err == nil:
		m.runtime.WithLabelValues(r.Algo).Observe(r.Runtime.Seconds())
		m.tardiness.WithLabelValues(r.Algo, r.Instance).Set(float64(r.Tardiness))
	case r.Status == StatusOK:
		m.failures.WithLabelValues(r.Algo, "mismatch").Inc()
	case r.Status != StatusSkipped:
		m.failures.WithLabelValues(r.Algo, r.Status).Inc()
	}
}

// Gatherer exposes the registry, e.g. for an HTTP handler or tests.
func (m *Metrics) Gatherer() prometheus.Gatherer { return m.reg }

// WriteFile atomically writes all metrics to path.
func (m *Metrics) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, m.reg)
}
