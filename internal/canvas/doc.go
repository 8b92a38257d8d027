// Package canvas defines the entities of a node-graph canvas: nodes with ports,
// connections between ports, and free-floating annotations.
//
// # Ownership
//
// Entities are created by callers (gesture handlers, scene loaders, tests) and
// handed to the graph controller, which becomes their sole mutator. Mutable
// fields that the rendering layer needs to follow are exposed as
// observable.Value pointers:
//
//   - Node.Position: logical position, the source of truth that gets persisted
//   - Node.VisualPosition: position after transform extensions (grid snap)
//   - Node.Dragging: true while the node belongs to an active drag session
//   - Annotation.Position, Annotation.Visible, Annotation.Editing
//
// Renderers subscribe to these values; they never call Set themselves.
//
// # Annotations
//
// Annotations are a tagged variant. Kind selects which payload pointer is
// populated (Sticky, Group or Marker). Z-order, selection and containment
// logic only look at the common fields.
//
// # Documents
//
// Document is the bulk form of a graph used by Controller.LoadGraph and
// Controller.Snapshot. It is the boundary to persistence, which lives outside
// this module.
package canvas
