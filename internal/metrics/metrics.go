// SPDX-License-Identifier: MIT

// Package metrics records lasolve runs as Prometheus metrics and writes
// them in the text exposition format, for node-exporter style textfile
// collection of batch jobs.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors/version"

	"github.com/katalvlaran/lvalgebra/internal/problem"
)

const namespace = "lasolve"

// Recorder owns a private registry so nothing leaks into the global default.
type Recorder struct {
	reg *prometheus.Registry

	runs       *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	iterations prometheus.Gauge
	converged  prometheus.Gauge
	residual   prometheus.Gauge
}

// NewRecorder builds a Recorder with all collectors registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Problem runs by method and outcome.",
		}, []string{"method", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of a problem run.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 8),
		}, []string{"method"}),
		iterations: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "gauss_seidel_iterations",
			Help:      "Sweeps performed by the last Gauss-Seidel run.",
		}),
		converged: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "gauss_seidel_converged",
			Help:      "1 if the last Gauss-Seidel run met its tolerance.",
		}),
		residual: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "residual_l1",
			Help:      "Σ|A·x − b| of the last solution of A·x = b.",
		}),
	}
	r.reg.MustRegister(r.runs, r.duration, r.iterations, r.converged, r.residual,
		version.NewCollector(namespace))

	return r
}

// Observe records one run. res may be nil when err is set.
func (r *Recorder) Observe(method string, elapsed time.Duration, res *problem.Result, err error) {
	r.runs.WithLabelValues(method, outcome(err)).Inc()
	r.duration.WithLabelValues(method).Observe(elapsed.Seconds())
	if err != nil || res == nil {
		return
	}
	if res.Report != nil {
		r.iterations.Set(float64(res.Report.Iterations))
		if res.Report.Converged {
			r.converged.Set(1)
		} else {
			r.converged.Set(0)
		}
	}
	if res.HasResidual {
		r.residual.Set(res.Residual)
	}
}

// Reject records a run that never started because the problem did not load.
// Only runs_total moves; method "" is reported as "unknown".
func (r *Recorder) Reject(method string, err error) {
	if method == "" {
		method = "unknown"
	}
	r.runs.WithLabelValues(method, outcome(err)).Inc()
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, problem.ErrInvalidProblem):
		return "invalid"
	default:
		return "error"
	}
}

// Gatherer exposes the registry, mainly for tests.
func (r *Recorder) Gatherer() prometheus.Gatherer { return r.reg }

// WriteTextfile writes all metrics to path atomically.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}
