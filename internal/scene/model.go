package scene

import (
	"github.com/vk/nodecanvas/internal/canvas"
	"github.com/vk/nodecanvas/internal/geom"
)

// Scene is the merged content of one or more scene files.
type Scene struct {
	// Files lists the files that were read, in load order.
	Files    []string
	Document *canvas.Document
	Drags    []DragScript
	// Wraps are groups to build around nodes once the document is loaded.
	Wraps []Wrap
}

// Wrap asks for a group annotation sized to enclose Nodes.
type Wrap struct {
	Title string
	Nodes []string
}

// DragScript replays one drag gesture.
type DragScript struct {
	// NodeID is the node the pointer grabs.
	NodeID string
	// Select is the node selection in place when the drag starts.
	Select []string
	// Moves are pointer deltas applied in order.
	Moves []geom.Point
	// Cancel ends the gesture with a cancel instead of a drop.
	Cancel bool
}

// Total is the sum of every move.
func (d DragScript) Total() geom.Point {
	var total geom.Point
	for _, m := range d.Moves {
		total = total.Add(m)
	}
	return total
}
