package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_CountsFlushes(t *testing.T) {
	// --- Arrange ---
	reg := prometheus.NewRegistry()
	r := New(reg)

	// --- Act ---
	r.Flushed(3, 2, 0)
	r.Flushed(1, 0, 4)
	r.VersionChanged(2)

	// --- Assert ---
	assert.Equal(t, 2.0, testutil.ToFloat64(r.flushes))
	assert.Equal(t, 4.0, testutil.ToFloat64(r.flushedEntries.WithLabelValues("node")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.flushedEntries.WithLabelValues("connection")))
	assert.Equal(t, 4.0, testutil.ToFloat64(r.flushedEntries.WithLabelValues("annotation")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.version))
}

func TestRecorder_DragOutcomes(t *testing.T) {
	r := New(prometheus.NewRegistry())

	r.DragFinished(DragEnded)
	r.DragFinished(DragEnded)
	r.DragFinished(DragCancelled)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.drags.WithLabelValues(DragEnded)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.drags.WithLabelValues(DragCancelled)))
}

func TestRecorder_RegistersOnGivenRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := New(reg)
	r.Deferred(5)
	r.Deferred(0)
	r.BatchFailed()

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "nodecanvas_deferred_marks_total")
	assert.Contains(t, names, "nodecanvas_failed_batches_total")
	assert.Equal(t, 5.0, testutil.ToFloat64(r.deferredMarks))
}

func TestRecorder_NilIsSafe(t *testing.T) {
	var r *Recorder

	assert.NotPanics(t, func() {
		r.Flushed(1, 1, 1)
		r.VersionChanged(1)
		r.Deferred(1)
		r.BatchFailed()
		r.DragFinished(DragEnded)
	})
}
