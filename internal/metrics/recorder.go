package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
)

const namespace = "bigdemo"

// Recorder owns a Prometheus registry and the pipeline collectors.
type Recorder struct {
	registry      *prometheus.Registry
	stageDuration *prometheus.HistogramVec
	stageFailures *prometheus.CounterVec
	resultDigits  *prometheus.GaugeVec
	heapAlloc     prometheus.Gauge
	totalAlloc    prometheus.Gauge
	gcCycles      prometheus.Gauge
}

// NewRecorder creates a Recorder with its own registry, so repeated
// construction in tests never collides with the global default registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		stageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Wall-clock duration of each pipeline stage.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}, []string{"stage"}),
		stageFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stage_failures_total",
			Help:      "Number of pipeline stages that returned an error.",
		}, []string{"stage"}),
		resultDigits: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "result_digits",
			Help:      "Decimal digits of each computed result.",
		}, []string{"result"}),
		heapAlloc: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "heap_alloc_bytes",
			Help:      "Heap bytes in use after the run.",
		}),
		totalAlloc: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "run_alloc_bytes",
			Help:      "Bytes allocated during the run.",
		}),
		gcCycles: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "run_gc_cycles",
			Help:      "Garbage collections completed during the run.",
		}),
	}
	r.registry.MustRegister(
		r.stageDuration,
		r.stageFailures,
		r.resultDigits,
		r.heapAlloc,
		r.totalAlloc,
		r.gcCycles,
		collectors.NewGoCollector(),
	)
	return r
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// ObserveStage records the duration of a stage and counts it as failed when
// err is non-nil.
func (r *Recorder) ObserveStage(stage string, d time.Duration, err error) {
	r.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
	if err != nil {
		r.stageFailures.WithLabelValues(stage).Inc()
	}
}

// SetResultDigits records the number of decimal digits of a named result.
func (r *Recorder) SetResultDigits(result string, digits int) {
	r.resultDigits.WithLabelValues(result).Set(float64(digits))
}

// RecordMemory stores a memory delta taken around the run.
func (r *Recorder) RecordMemory(s MemorySnapshot) {
	r.heapAlloc.Set(float64(s.HeapAlloc))
	r.totalAlloc.Set(float64(s.TotalAlloc))
	r.gcCycles.Set(float64(s.NumGC))
}

// WriteText writes every registered metric family to w in the Prometheus
// text exposition format.
func (r *Recorder) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	return writeFamilies(w, families)
}

func writeFamilies(w io.Writer, families []*dto.MetricFamily) error {
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("writing metric family %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
