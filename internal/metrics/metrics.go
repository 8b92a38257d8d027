// Package metrics exposes Prometheus instruments for the canvas controller.
//
// A Recorder owns its instruments and registers them on the registerer it was
// built with, so several controllers (and tests) can live in one process. All
// methods are safe on a nil *Recorder, which lets the controller run without
// metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Drag outcomes used as the "outcome" label.
const (
	DragEnded     = "ended"
	DragCancelled = "cancelled"
)

// Recorder holds the controller's instruments.
type Recorder struct {
	flushes        prometheus.Counter
	flushedEntries *prometheus.CounterVec
	flushSize      prometheus.Histogram
	version        prometheus.Gauge
	deferredMarks  prometheus.Counter
	failedBatches  prometheus.Counter
	drags          *prometheus.CounterVec
}

// New creates a Recorder and registers its instruments on reg. A nil reg
// creates unregistered instruments.
func New(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		flushes: factory.NewCounter(prometheus.CounterOpts{
			Name: "nodecanvas_spatial_flushes_total",
			Help: "Number of scheduler flushes that drained at least one entry",
		}),
		flushedEntries: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "nodecanvas_spatial_flushed_entries_total",
			Help: "Entries applied to the spatial index by flushes",
		}, []string{"kind"}),
		flushSize: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "nodecanvas_spatial_flush_size",
			Help:    "Number of entries drained per flush",
			Buckets: []float64{1, 2, 5, 10, 25, 50, 100, 250, 1000},
		}),
		version: factory.NewGauge(prometheus.GaugeOpts{
			Name: "nodecanvas_spatial_version",
			Help: "Current spatial index version",
		}),
		deferredMarks: factory.NewCounter(prometheus.CounterOpts{
			Name: "nodecanvas_deferred_marks_total",
			Help: "Dirty marks recorded while updates were deferred",
		}),
		failedBatches: factory.NewCounter(prometheus.CounterOpts{
			Name: "nodecanvas_failed_batches_total",
			Help: "Outermost batches whose body returned an error",
		}),
		drags: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "nodecanvas_drag_sessions_total",
			Help: "Finished drag sessions by outcome",
		}, []string{"outcome"}),
	}
}

// Flushed records one flush and the number of entries it drained per kind.
func (r *Recorder) Flushed(nodes, connections, annotations int) {
	if r == nil {
		return
	}
	r.flushes.Inc()
	r.flushedEntries.WithLabelValues("node").Add(float64(nodes))
	r.flushedEntries.WithLabelValues("connection").Add(float64(connections))
	r.flushedEntries.WithLabelValues("annotation").Add(float64(annotations))
	r.flushSize.Observe(float64(nodes + connections + annotations))
}

// VersionChanged publishes the current spatial version.
func (r *Recorder) VersionChanged(v uint64) {
	if r == nil {
		return
	}
	r.version.Set(float64(v))
}

// Deferred counts n marks recorded inside a deferred window.
func (r *Recorder) Deferred(n int) {
	if r == nil || n == 0 {
		return
	}
	r.deferredMarks.Add(float64(n))
}

// BatchFailed counts an outermost batch that returned an error.
func (r *Recorder) BatchFailed() {
	if r == nil {
		return
	}
	r.failedBatches.Inc()
}

// DragFinished counts a drag session with the given outcome.
func (r *Recorder) DragFinished(outcome string) {
	if r == nil {
		return
	}
	r.drags.WithLabelValues(outcome).Inc()
}
