// Package inmemoryentities provides a simple, map-backed implementation of the
// entitystore.Store interface.
package inmemoryentities

import (
	"sort"

	"github.com/vk/nodecanvas/internal/canvas"
	"github.com/vk/nodecanvas/internal/entitystore"
)

// entry wraps a stored entity with its insertion sequence number.
type entry[T any] struct {
	seq   uint64
	value T
}

// table is an id-keyed map that remembers insertion order.
type table[T any] struct {
	rows map[string]entry[T]
}

func newTable[T any]() table[T] {
	return table[T]{rows: make(map[string]entry[T])}
}

func (t table[T]) get(id string) (T, bool) {
	e, ok := t.rows[id]
	return e.value, ok
}

func (t table[T]) remove(id string) (T, bool) {
	e, ok := t.rows[id]
	if ok {
		delete(t.rows, id)
	}
	return e.value, ok
}

func (t table[T]) list() []T {
	entries := make([]entry[T], 0, len(t.rows))
	for _, e := range t.rows {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].seq < entries[j].seq })

	out := make([]T, len(entries))
	for i, e := range entries {
		out[i] = e.value
	}
	return out
}

// Store implements entitystore.Store with three ordered maps.
type Store struct {
	seq         uint64
	nodes       table[*canvas.Node]
	connections table[*canvas.Connection]
	annotations table[*canvas.Annotation]
}

// New creates a new, empty in-memory entity store.
func New() entitystore.Store {
	return &Store{
		nodes:       newTable[*canvas.Node](),
		connections: newTable[*canvas.Connection](),
		annotations: newTable[*canvas.Annotation](),
	}
}

func (s *Store) next() uint64 {
	s.seq++
	return s.seq
}

// AddNode adds a new node to the store.
func (s *Store) AddNode(n *canvas.Node) error {
	if _, exists := s.nodes.rows[n.ID()]; exists {
		return &canvas.DuplicateIDError{Entity: "node", ID: n.ID()}
	}
	s.nodes.rows[n.ID()] = entry[*canvas.Node]{seq: s.next(), value: n}
	return nil
}

// RemoveNode removes a node without touching its connections.
func (s *Store) RemoveNode(id string) (*canvas.Node, bool) {
	return s.nodes.remove(id)
}

// Node retrieves a single node by id.
func (s *Store) Node(id string) (*canvas.Node, bool) {
	return s.nodes.get(id)
}

// Nodes returns all nodes in insertion order.
func (s *Store) Nodes() []*canvas.Node {
	return s.nodes.list()
}

// AddConnection validates both endpoints and adds the connection.
func (s *Store) AddConnection(c *canvas.Connection) error {
	if _, exists := s.connections.rows[c.ID]; exists {
		return &canvas.DuplicateIDError{Entity: "connection", ID: c.ID}
	}
	if err := s.checkEndpoint(c.ID, c.SourceNodeID, c.SourcePortID); err != nil {
		return err
	}
	if err := s.checkEndpoint(c.ID, c.TargetNodeID, c.TargetPortID); err != nil {
		return err
	}
	s.connections.rows[c.ID] = entry[*canvas.Connection]{seq: s.next(), value: c}
	return nil
}

func (s *Store) checkEndpoint(connID, nodeID, portID string) error {
	n, ok := s.nodes.get(nodeID)
	if !ok {
		return &canvas.DanglingReferenceError{ConnectionID: connID, NodeID: nodeID}
	}
	if _, ok := n.Port(portID); !ok {
		return &canvas.DanglingReferenceError{ConnectionID: connID, NodeID: nodeID, PortID: portID}
	}
	return nil
}

// RemoveConnection removes a connection by id.
func (s *Store) RemoveConnection(id string) (*canvas.Connection, bool) {
	return s.connections.remove(id)
}

// Connection retrieves a single connection by id.
func (s *Store) Connection(id string) (*canvas.Connection, bool) {
	return s.connections.get(id)
}

// Connections returns all connections in insertion order.
func (s *Store) Connections() []*canvas.Connection {
	return s.connections.list()
}

// AddAnnotation adds a new annotation to the store.
func (s *Store) AddAnnotation(a *canvas.Annotation) error {
	if _, exists := s.annotations.rows[a.ID]; exists {
		return &canvas.DuplicateIDError{Entity: "annotation", ID: a.ID}
	}
	s.annotations.rows[a.ID] = entry[*canvas.Annotation]{seq: s.next(), value: a}
	return nil
}

// RemoveAnnotation removes an annotation by id.
func (s *Store) RemoveAnnotation(id string) (*canvas.Annotation, bool) {
	return s.annotations.remove(id)
}

// Annotation retrieves a single annotation by id.
func (s *Store) Annotation(id string) (*canvas.Annotation, bool) {
	return s.annotations.get(id)
}

// Annotations returns all annotations in insertion order.
func (s *Store) Annotations() []*canvas.Annotation {
	return s.annotations.list()
}

// Clear empties every table. The sequence counter keeps running so that
// ordering stays monotonic across reloads.
func (s *Store) Clear() {
	s.nodes = newTable[*canvas.Node]()
	s.connections = newTable[*canvas.Connection]()
	s.annotations = newTable[*canvas.Annotation]()
}
