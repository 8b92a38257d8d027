// Package scheduler decides when dirty nodes, connections and annotations are
// pushed into the spatial index.
//
// # Why Scheduler Exists
//
// A drag moving fifty nodes at 60 updates per second would rebuild fifty index
// entries and notify every renderer fifty times per frame if each mutation
// went straight to the spatial index. The scheduler instead records dirty
// node, connection and annotation ids while a deferred window is open and
// applies them in one flush when the window closes, followed by a single
// version bump.
//
// # Deferred Windows
//
// Updates are deferred while either of these is open:
//   - a drag session (BeginDrag / EndDrag)
//   - one or more nested batches (Batch)
//
// Outside a deferred window every mark flushes immediately. SetForceImmediate
// flushes on every mark even inside a window; it changes only the timing of
// notifications, never the final index state.
//
// # Relationship with Other Components
//
//   - **Applier:** resolves a dirty id to fresh geometry (or removes the entry)
//   - **Spatial Index:** receives NotifyChanged once per non-empty flush
//   - **Controller:** marks ids on every mutation and opens windows
package scheduler

// Applier pushes the current geometry of one entity into the spatial index.
// It is called by Flush for every drained id and must cope with ids whose
// entity no longer exists (by removing the index entry).
type Applier interface {
	ApplyNode(id string)
	ApplyConnection(id string)
	ApplyAnnotation(id string)
}

// Scheduler tracks dirty ids and flushes them into the spatial index.
//
// # Idempotence
//
// Marking the same id repeatedly inside a window leaves a single pending
// entry. Flush with nothing pending does nothing and does not bump the
// version, so calling it any number of times is safe.
//
// # Thread-Safety
//
// Not safe for concurrent use. The controller calls it from one goroutine.
type Scheduler interface {
	// MarkNodes records node ids as dirty, flushing at once outside a window.
	MarkNodes(ids ...string)
	// MarkConnections records connection ids as dirty.
	MarkConnections(ids ...string)
	// MarkAnnotations records annotation ids as dirty.
	MarkAnnotations(ids ...string)

	// Flush drains the pending sets into the applier and bumps the spatial
	// version once. It reports whether anything was drained.
	Flush() bool

	// Batch runs fn inside a deferred window. Batches nest; only the
	// outermost one flushes when fn returns. If fn returns an error the
	// flush is skipped and the entries stay pending.
	Batch(label string, fn func() error) error

	// BeginDrag opens the drag window. EndDrag closes it and flushes unless a
	// batch is still open. EndDrag without BeginDrag is a no-op.
	BeginDrag()
	EndDrag()

	SetForceImmediate(on bool)
	ForceImmediate() bool

	// Deferred reports whether a drag or batch window is open.
	Deferred() bool
	// Pending returns the sorted pending ids per entity kind.
	Pending() (nodes, connections, annotations []string)
	// Reset drops pending ids without applying them and closes the drag
	// window. Batch depth is left to the running batches.
	Reset()
}
