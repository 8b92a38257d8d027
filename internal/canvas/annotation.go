package canvas

import (
	"math"

	"github.com/vk/nodecanvas/internal/geom"
	"github.com/vk/nodecanvas/internal/observable"
)

// ZIndexUnassigned asks the controller to place a new annotation on top of
// every existing one.
const ZIndexUnassigned = math.MinInt

// Kind discriminates the annotation payload.
type Kind string

const (
	KindStickyNote Kind = "sticky_note"
	KindGroup      Kind = "group"
	KindMarker     Kind = "marker"
)

// StickyNote is the payload of a KindStickyNote annotation.
type StickyNote struct {
	Text string
}

// GroupBox is the payload of a KindGroup annotation. Its rectangle
// (position + size) bounds the region used by containment queries.
type GroupBox struct {
	Title string
}

// Marker is the payload of a KindMarker annotation. Markers are point-like;
// their Size is ignored.
type Marker struct {
	Type   string
	Radius float64
}

// Annotation is a free-floating canvas element that is not part of the graph.
type Annotation struct {
	ID    string
	Kind  Kind
	Color string

	// Exactly one payload is set, matching Kind.
	Sticky *StickyNote
	Group  *GroupBox
	Marker *Marker

	Position *observable.Value[geom.Point]
	Size     geom.Size
	// ZIndex orders annotations bottom to top. The controller keeps it unique.
	ZIndex int

	Visible *observable.Value[bool]
	Editing *observable.Value[bool]
}

// NewAnnotation creates a visible, non-editing annotation with an unassigned
// z-index. Set exactly one payload before adding it to a controller.
func NewAnnotation(id string, kind Kind, pos geom.Point, size geom.Size) *Annotation {
	return &Annotation{
		ID:       id,
		Kind:     kind,
		Position: observable.New(pos),
		Size:     size,
		ZIndex:   ZIndexUnassigned,
		Visible:  observable.New(true),
		Editing:  observable.New(false),
	}
}

// NewStickyNote is a convenience constructor for a sticky note.
func NewStickyNote(id string, pos geom.Point, size geom.Size, text string) *Annotation {
	a := NewAnnotation(id, KindStickyNote, pos, size)
	a.Sticky = &StickyNote{Text: text}
	return a
}

// NewGroup is a convenience constructor for a group box.
func NewGroup(id string, pos geom.Point, size geom.Size, title string) *Annotation {
	a := NewAnnotation(id, KindGroup, pos, size)
	a.Group = &GroupBox{Title: title}
	return a
}

// NewMarker is a convenience constructor for a point-like marker.
func NewMarker(id string, pos geom.Point, markerType string, radius float64) *Annotation {
	a := NewAnnotation(id, KindMarker, pos, geom.Size{})
	a.Marker = &Marker{Type: markerType, Radius: radius}
	return a
}

// Bounds returns the annotation's rectangle. Markers collapse to a point.
func (a *Annotation) Bounds() geom.Rect {
	if a.Kind == KindMarker {
		return geom.RectAt(a.Position.Get(), geom.Size{})
	}
	return geom.RectAt(a.Position.Get(), a.Size)
}

// IsGroup reports whether the annotation bounds a containment region.
func (a *Annotation) IsGroup() bool {
	return a.Kind == KindGroup
}

// Release drops every subscription on the annotation's observable fields.
func (a *Annotation) Release() {
	a.Position.Close()
	a.Visible.Close()
	a.Editing.Close()
}
