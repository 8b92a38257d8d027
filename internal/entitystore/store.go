// Package entitystore defines the interface for the canonical storage of canvas
// entities: nodes, connections and annotations.
//
// # Why Entity Store Exists
//
// The entity store is the single source of truth for what is on the canvas.
// Everything else the controller keeps (the connection index, the spatial
// index, selections, dirty sets) is derived from it and can be rebuilt from
// it. Keeping the store behind an interface isolates the bookkeeping rules
// (unique ids, endpoint validation, stable insertion order) from the
// orchestration in the graph controller.
//
// # Lifecycle and Usage
//
// The store is:
//  1. **Created** once per controller
//  2. **Populated** by AddNode/AddConnection/AddAnnotation or in bulk by LoadGraph
//  3. **Mutated** continuously while the user edits the canvas
//  4. **Cleared** by LoadGraph/ClearGraph and on controller disposal
//
// Listing methods return entities in insertion order so that callers which
// need deterministic iteration (z-order ties, group tie-breaks, reports) do not
// have to sort by id.
package entitystore

import "github.com/vk/nodecanvas/internal/canvas"

// Store is the interface for the canonical entity maps of a canvas.
//
// # Concurrency
//
// Implementations are used from a single goroutine by the graph controller and
// need not be safe for concurrent use.
type Store interface {
	// AddNode inserts a node. It returns a *canvas.DuplicateIDError if the id
	// is taken and leaves the store unchanged.
	AddNode(n *canvas.Node) error

	// RemoveNode deletes a node and returns it. Removing an unknown id
	// returns false and is not an error. Connections are NOT cascaded here;
	// the controller removes them using the connection index.
	RemoveNode(id string) (*canvas.Node, bool)

	// Node returns a node by id.
	Node(id string) (*canvas.Node, bool)

	// Nodes returns every node in insertion order.
	Nodes() []*canvas.Node

	// AddConnection inserts a connection after validating that both endpoint
	// nodes and ports exist. It returns *canvas.DanglingReferenceError or
	// *canvas.DuplicateIDError on failure.
	AddConnection(c *canvas.Connection) error

	// RemoveConnection deletes a connection and returns it.
	RemoveConnection(id string) (*canvas.Connection, bool)

	// Connection returns a connection by id.
	Connection(id string) (*canvas.Connection, bool)

	// Connections returns every connection in insertion order.
	Connections() []*canvas.Connection

	// AddAnnotation inserts an annotation. It returns a
	// *canvas.DuplicateIDError if the id is taken.
	AddAnnotation(a *canvas.Annotation) error

	// RemoveAnnotation deletes an annotation and returns it.
	RemoveAnnotation(id string) (*canvas.Annotation, bool)

	// Annotation returns an annotation by id.
	Annotation(id string) (*canvas.Annotation, bool)

	// Annotations returns every annotation in insertion order.
	Annotations() []*canvas.Annotation

	// Clear removes every entity.
	Clear()
}
