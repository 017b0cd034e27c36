package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry bundles the application's Prometheus collectors. A fresh
// registry per instance keeps tests independent of global state.
type Registry struct {
	registry *prometheus.Registry

	evaluationsTotal  *prometheus.CounterVec
	evaluationSeconds *prometheus.HistogramVec
	benchOpsPerSecond *prometheus.GaugeVec
	heapAllocBytes    prometheus.GaugeFunc
}

// NewRegistry creates and registers the application collectors.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	collector := NewMemoryCollector()

	r := &Registry{
		registry: reg,
		evaluationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "uintcalc",
			Name:      "evaluations_total",
			Help:      "Number of expression evaluations by engine and outcome.",
		}, []string{"engine", "outcome"}),
		evaluationSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "uintcalc",
			Name:      "evaluation_duration_seconds",
			Help:      "Expression evaluation latency by engine.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}, []string{"engine"}),
		benchOpsPerSecond: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "uintcalc",
			Name:      "bench_ops_per_second",
			Help:      "Most recent benchmark throughput by operation.",
		}, []string{"operation"}),
		heapAllocBytes: prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "uintcalc",
			Name:      "heap_alloc_bytes",
			Help:      "Bytes currently allocated on the heap.",
		}, func() float64 {
			return float64(collector.Snapshot().HeapAlloc)
		}),
	}

	reg.MustRegister(r.evaluationsTotal, r.evaluationSeconds, r.benchOpsPerSecond, r.heapAllocBytes)
	return r
}

// Prometheus exposes the underlying registry for the HTTP handler.
func (r *Registry) Prometheus() *prometheus.Registry {
	return r.registry
}

// ObserveEvaluation records one evaluation outcome with its latency.
func (r *Registry) ObserveEvaluation(engine string, duration time.Duration, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	r.evaluationsTotal.WithLabelValues(engine, outcome).Inc()
	r.evaluationSeconds.WithLabelValues(engine).Observe(duration.Seconds())
}

// SetBenchThroughput records the most recent benchmark result for an
// operation.
func (r *Registry) SetBenchThroughput(operation string, opsPerSecond float64) {
	r.benchOpsPerSecond.WithLabelValues(operation).Set(opsPerSecond)
}
