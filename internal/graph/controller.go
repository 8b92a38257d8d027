package graph

import (
	"context"
	"log/slog"

	"github.com/vk/nodecanvas/internal/canvas"
	"github.com/vk/nodecanvas/internal/connindex"
	"github.com/vk/nodecanvas/internal/ctxlog"
	"github.com/vk/nodecanvas/internal/drag"
	"github.com/vk/nodecanvas/internal/entitystore"
	"github.com/vk/nodecanvas/internal/extension"
	"github.com/vk/nodecanvas/internal/geom"
	"github.com/vk/nodecanvas/internal/inmemoryentities"
	"github.com/vk/nodecanvas/internal/metrics"
	"github.com/vk/nodecanvas/internal/observable"
	"github.com/vk/nodecanvas/internal/scheduler"
	"github.com/vk/nodecanvas/internal/selection"
	"github.com/vk/nodecanvas/internal/spatial"
)

// Options configures a Controller. The zero value is usable.
type Options struct {
	// Store defaults to an in-memory store.
	Store entitystore.Store
	// Transforms are applied in order to logical positions during a drag.
	Transforms []extension.Transform
	// CellSize of the spatial grid; spatial.DefaultCellSize when zero.
	CellSize float64
	// ForceImmediate flushes on every mark, even inside a drag or batch.
	ForceImmediate bool
	// Metrics may be nil.
	Metrics *metrics.Recorder
}

// Controller is the mutable-state controller behind the canvas.
type Controller struct {
	logger   *slog.Logger
	store    entitystore.Store
	conns    *connindex.Index
	index    *spatial.Index
	sched    scheduler.Scheduler
	pipeline *extension.Pipeline
	metrics  *metrics.Recorder

	session             drag.Session
	nodeSelection       selection.Set
	annotationSelection selection.Set
	canvasLocked        *observable.Value[bool]

	disposed bool
}

// New creates an empty controller. The logger is taken from ctx.
func New(ctx context.Context, opts Options) *Controller {
	store := opts.Store
	if store == nil {
		store = inmemoryentities.New()
	}
	c := &Controller{
		logger:       ctxlog.FromContext(ctx).With("component", "graph"),
		store:        store,
		conns:        connindex.New(),
		index:        spatial.New(opts.CellSize),
		pipeline:     extension.NewPipeline(opts.Transforms...),
		metrics:      opts.Metrics,
		canvasLocked: observable.New(false),
	}
	c.sched = scheduler.New(ctx, c.index, indexApplier{c}, opts.Metrics)
	c.sched.SetForceImmediate(opts.ForceImmediate)
	c.logger.Debug("Controller created.", "transforms", c.pipeline.Len(), "force_immediate", opts.ForceImmediate)
	return c
}

// FlushPendingSpatialUpdates applies every pending dirty entry to the spatial
// index. With nothing pending it does nothing.
func (c *Controller) FlushPendingSpatialUpdates() {
	if c.disposed {
		return
	}
	c.sched.Flush()
}

// Batch runs fn with spatial updates deferred. Nested batches flush once, when
// the outermost returns. Mutations made by fn before an error stay applied;
// only the flush is skipped.
func (c *Controller) Batch(label string, fn func() error) error {
	if c.disposed {
		return ErrDisposed
	}
	return c.sched.Batch(label, fn)
}

// SetForceImmediate toggles flushing on every mutation.
func (c *Controller) SetForceImmediate(on bool) {
	if c.disposed {
		return
	}
	c.sched.SetForceImmediate(on)
}

// SpatialVersion is the observable change counter of the spatial index.
func (c *Controller) SpatialVersion() *observable.Value[uint64] {
	return c.index.Version()
}

// QueryRect returns the index entries overlapping r.
func (c *Controller) QueryRect(r geom.Rect) []spatial.Entry {
	return c.index.Query(r)
}

// HitTest returns the index entries under p, topmost first.
func (c *Controller) HitTest(p geom.Point) []spatial.Entry {
	return c.index.HitTest(p)
}

// Snapshot returns the current entities as a document. The entities are
// shared, not copied.
func (c *Controller) Snapshot() *canvas.Document {
	return &canvas.Document{
		Nodes:       c.store.Nodes(),
		Connections: c.store.Connections(),
		Annotations: c.store.Annotations(),
	}
}

// Dispose releases every subscription and drops all state. It is idempotent;
// afterwards mutating calls fail with ErrDisposed or do nothing.
func (c *Controller) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.releaseExcept(&canvas.Document{})
	c.store.Clear()
	c.conns.Rebuild(nil)
	c.sched.Reset()
	c.session.Finish()
	c.nodeSelection.Clear()
	c.annotationSelection.Clear()
	c.index.Close()
	c.canvasLocked.Close()
	c.logger.Info("Controller disposed.")
}

// indexApplier resolves dirty ids against the store for the scheduler.
type indexApplier struct {
	c *Controller
}

func (a indexApplier) ApplyNode(id string) {
	n, ok := a.c.store.Node(id)
	if !ok {
		a.c.index.Remove(spatial.KindNode, id)
		return
	}
	a.c.index.Update(spatial.Entry{ID: id, Kind: spatial.KindNode, Bounds: n.VisualBounds()})
}

// ApplyConnection indexes a connection by the rectangle spanned by the
// visual centers of its endpoint nodes.
func (a indexApplier) ApplyConnection(id string) {
	conn, ok := a.c.store.Connection(id)
	if !ok {
		a.c.index.Remove(spatial.KindConnection, id)
		return
	}
	src, okSrc := a.c.store.Node(conn.SourceNodeID)
	dst, okDst := a.c.store.Node(conn.TargetNodeID)
	if !okSrc || !okDst {
		a.c.index.Remove(spatial.KindConnection, id)
		return
	}
	bounds := geom.Span(src.VisualBounds().Center(), dst.VisualBounds().Center())
	a.c.index.Update(spatial.Entry{ID: id, Kind: spatial.KindConnection, Bounds: bounds})
}

// ApplyAnnotation indexes visible annotations only.
func (a indexApplier) ApplyAnnotation(id string) {
	ann, ok := a.c.store.Annotation(id)
	if !ok || !ann.Visible.Get() {
		a.c.index.Remove(spatial.KindAnnotation, id)
		return
	}
	a.c.index.Update(spatial.Entry{ID: id, Kind: spatial.KindAnnotation, Bounds: ann.Bounds(), Z: ann.ZIndex})
}
