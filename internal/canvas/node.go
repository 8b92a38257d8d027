package canvas

import (
	"github.com/vk/nodecanvas/internal/geom"
	"github.com/vk/nodecanvas/internal/observable"
)

// PortDirection tells whether a port accepts or emits connections.
type PortDirection int

const (
	// Input ports receive connections.
	Input PortDirection = iota
	// Output ports originate connections.
	Output
)

func (d PortDirection) String() string {
	if d == Output {
		return "output"
	}
	return "input"
}

// Port is a connection point on a node. Its ID is unique within the node.
type Port struct {
	ID        string
	Direction PortDirection
	Label     string
}

// Node is a single vertex on the canvas.
type Node struct {
	// id is immutable after construction.
	id string

	// Position is the logical position, the authoritative coordinate.
	Position *observable.Value[geom.Point]
	// VisualPosition is what gets rendered and hit-tested. It equals Position
	// unless a transform extension is active.
	VisualPosition *observable.Value[geom.Point]
	// Dragging is true while the node is part of the active drag set.
	Dragging *observable.Value[bool]

	Size    geom.Size
	Inputs  []Port
	Outputs []Port
	Label   string
}

// NewNode creates a node at pos with the given size and ports. Ports passed in
// inputs and outputs have their Direction normalised.
func NewNode(id string, pos geom.Point, size geom.Size, inputs, outputs []Port) *Node {
	n := &Node{
		id:             id,
		Position:       observable.New(pos),
		VisualPosition: observable.New(pos),
		Dragging:       observable.New(false),
		Size:           size,
	}
	for _, p := range inputs {
		p.Direction = Input
		n.Inputs = append(n.Inputs, p)
	}
	for _, p := range outputs {
		p.Direction = Output
		n.Outputs = append(n.Outputs, p)
	}
	return n
}

// ID returns the node's identifier.
func (n *Node) ID() string {
	return n.id
}

// Port looks up a port by id across inputs and outputs.
func (n *Node) Port(id string) (Port, bool) {
	for _, p := range n.Inputs {
		if p.ID == id {
			return p, true
		}
	}
	for _, p := range n.Outputs {
		if p.ID == id {
			return p, true
		}
	}
	return Port{}, false
}

// Bounds returns the logical rectangle of the node.
func (n *Node) Bounds() geom.Rect {
	return geom.RectAt(n.Position.Get(), n.Size)
}

// VisualBounds returns the rendered rectangle of the node.
func (n *Node) VisualBounds() geom.Rect {
	return geom.RectAt(n.VisualPosition.Get(), n.Size)
}

// Release drops every subscription on the node's observable fields.
func (n *Node) Release() {
	n.Position.Close()
	n.VisualPosition.Close()
	n.Dragging.Close()
}

// Connection links an output port of one node to a port of another. It is
// immutable once created; change an endpoint by removing and re-adding.
type Connection struct {
	ID           string
	SourceNodeID string
	SourcePortID string
	TargetNodeID string
	TargetPortID string
}

// Touches reports whether nodeID is one of the connection's endpoints.
func (c *Connection) Touches(nodeID string) bool {
	return c.SourceNodeID == nodeID || c.TargetNodeID == nodeID
}
