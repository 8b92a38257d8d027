// Package graph provides the Controller, the single entry point through which
// the canvas state is read and mutated.
//
// # Why Graph Package Exists
//
// A canvas keeps several structures that must agree with each other: the
// entity store, the connection index, the spatial index, two selection sets
// and the drag session. Letting callers touch them separately would make it
// easy to remove a node and forget its connections, or to move a node without
// telling the spatial index. The Controller owns all of them and keeps them
// consistent on every call.
//
// # Architecture: The Facade Pattern
//
//	┌──────────────────────────────────────────┐
//	│               Controller                 │
//	│ (CRUD, drag, annotations, queries)       │
//	└───┬──────────┬───────────┬───────────┬───┘
//	    │          │           │           │
//	    ▼          ▼           ▼           ▼
//	┌────────┐ ┌─────────┐ ┌─────────┐ ┌──────────┐
//	│ Entity │ │  Conn.  │ │Scheduler│ │   Drag   │
//	│ Store  │ │  Index  │ │ (dirty) │ │ Session  │
//	└────────┘ └─────────┘ └────┬────┘ └──────────┘
//	                            ▼
//	                      ┌──────────┐
//	                      │ Spatial  │
//	                      │  Index   │
//	                      └──────────┘
//
// **Entity Store** is the source of truth. **Connection Index** and **Spatial
// Index** are derived and can be rebuilt from it. The **Scheduler** decides
// whether a mutation reaches the spatial index now or at the end of the
// current drag or batch.
//
// # Typical Drag
//
//	_ = c.StartNodeDrag("node-a")
//	c.MoveNodeDrag(geom.Pt(4, 2)) // many times per second
//	c.EndNodeDrag()               // one flush, one version bump
//
// Renderers subscribe to c.SpatialVersion() and to the observable fields on
// nodes and annotations.
//
// # Missing Ids
//
// Removal, visibility, z-order and drag start on an unknown id are no-ops.
// Validation failures (duplicate ids, dangling connection endpoints, empty
// node sets) are returned as errors matching canvas.ErrValidation and leave
// the controller unchanged.
//
// # Thread-Safety
//
// The Controller is not safe for concurrent use. All calls must come from one
// goroutine (typically the UI loop).
package graph
