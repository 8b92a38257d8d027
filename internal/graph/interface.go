package graph

import (
	"errors"

	"github.com/vk/nodecanvas/internal/canvas"
	"github.com/vk/nodecanvas/internal/drag"
	"github.com/vk/nodecanvas/internal/geom"
	"github.com/vk/nodecanvas/internal/observable"
	"github.com/vk/nodecanvas/internal/spatial"
)

var (
	// ErrDragInProgress is returned by StartNodeDrag while a drag is open.
	ErrDragInProgress = drag.ErrInProgress
	// ErrDisposed is returned by mutating calls after Dispose.
	ErrDisposed = errors.New("controller disposed")
)

// Entities is the node and connection part of the controller.
type Entities interface {
	AddNode(n *canvas.Node) error
	RemoveNode(id string)
	Node(id string) (*canvas.Node, bool)
	Nodes() []*canvas.Node
	SetNodePosition(id string, p geom.Point)

	AddConnection(c *canvas.Connection) error
	RemoveConnection(id string)
	Connection(id string) (*canvas.Connection, bool)
	Connections() []*canvas.Connection
	ConnectionsOf(nodeID string) []string

	LoadGraph(doc *canvas.Document) error
	ClearGraph()
	Snapshot() *canvas.Document
}

// Updates controls when mutations reach the spatial index.
type Updates interface {
	FlushPendingSpatialUpdates()
	Batch(label string, fn func() error) error
	SetForceImmediate(on bool)
	SpatialVersion() *observable.Value[uint64]
}

// Dragging is the drag session API driven by the gesture layer.
type Dragging interface {
	StartNodeDrag(id string) error
	MoveNodeDrag(delta geom.Point)
	EndNodeDrag()
	CancelNodeDrag(original map[string]geom.Point)
	IsDragging() bool
	ActiveNodeIDs() []string
	ActiveConnectionIDs() []string
	SetCanvasLocked(locked bool)
	CanvasLocked() *observable.Value[bool]
}

// Annotations is the annotation part of the controller.
type Annotations interface {
	AddAnnotation(a *canvas.Annotation) error
	RemoveAnnotation(id string)
	Annotation(id string) (*canvas.Annotation, bool)
	Annotations() []*canvas.Annotation
	SortedAnnotations() []*canvas.Annotation

	BringAnnotationToFront(id string)
	SendAnnotationToBack(id string)
	BringAnnotationForward(id string)
	SendAnnotationBackward(id string)

	SelectAnnotation(id string, toggle bool)
	SelectedAnnotationIDs() []string
	SelectedAnnotation() (*canvas.Annotation, bool)
	ClearAnnotationSelection()

	SetAnnotationVisible(id string, visible bool)
	HideAllAnnotations()
	ShowAllAnnotations()
	SetAnnotationEditing(id string, editing bool)

	DeleteSelectedAnnotations()
	MoveSelectedAnnotations(delta geom.Point)

	FindContainedNodes(groupID string) []string
	FindIntersectingGroup(nodeID string) (*canvas.Annotation, bool)
	CreateGroupAnnotationAroundNodes(nodeIDs []string, padding float64) (*canvas.Annotation, error)
}

// Selection is the node selection set.
type Selection interface {
	SelectNode(id string, toggle bool)
	DeselectNode(id string)
	ClearNodeSelection()
	SelectedNodeIDs() []string
	IsNodeSelected(id string) bool
}

// Viewport answers geometric queries against the spatial index.
type Viewport interface {
	QueryRect(r geom.Rect) []spatial.Entry
	HitTest(p geom.Point) []spatial.Entry
}

// Graph is everything the canvas controller offers.
type Graph interface {
	Entities
	Updates
	Dragging
	Annotations
	Selection
	Viewport
	Dispose()
}

var _ Graph = (*Controller)(nil)
