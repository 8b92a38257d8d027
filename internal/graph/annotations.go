package graph

import (
	"github.com/google/uuid"
	"github.com/vk/nodecanvas/internal/annotation"
	"github.com/vk/nodecanvas/internal/canvas"
	"github.com/vk/nodecanvas/internal/geom"
)

// AddAnnotation inserts a. An unassigned z-index is set to one past the
// current maximum; an explicit one is kept.
func (c *Controller) AddAnnotation(a *canvas.Annotation) error {
	if c.disposed {
		return ErrDisposed
	}
	if _, taken := c.store.Annotation(a.ID); taken {
		return &canvas.DuplicateIDError{Entity: "annotation", ID: a.ID}
	}
	if a.ZIndex == canvas.ZIndexUnassigned {
		a.ZIndex = annotation.NextZ(c.store.Annotations())
	}
	if err := c.store.AddAnnotation(a); err != nil {
		return err
	}
	c.logger.Debug("Annotation added.", "id", a.ID, "kind", a.Kind, "z", a.ZIndex)
	c.sched.MarkAnnotations(a.ID)
	return nil
}

// RemoveAnnotation deletes an annotation and deselects it. An unknown id is a
// no-op.
func (c *Controller) RemoveAnnotation(id string) {
	if c.disposed {
		return
	}
	a, ok := c.store.RemoveAnnotation(id)
	if !ok {
		return
	}
	c.annotationSelection.Remove(id)
	c.sched.MarkAnnotations(id)
	a.Release()
	c.logger.Debug("Annotation removed.", "id", id)
}

// Annotation returns the annotation with the given id.
func (c *Controller) Annotation(id string) (*canvas.Annotation, bool) {
	return c.store.Annotation(id)
}

// Annotations returns every annotation in insertion order.
func (c *Controller) Annotations() []*canvas.Annotation {
	return c.store.Annotations()
}

// SortedAnnotations returns the annotations bottom to top.
func (c *Controller) SortedAnnotations() []*canvas.Annotation {
	return annotation.Sorted(c.store.Annotations())
}

// BringAnnotationToFront places the annotation above all others.
func (c *Controller) BringAnnotationToFront(id string) {
	c.reorder(id, annotation.BringToFront)
}

// SendAnnotationToBack places the annotation below all others.
func (c *Controller) SendAnnotationToBack(id string) {
	c.reorder(id, annotation.SendToBack)
}

// BringAnnotationForward swaps with the next annotation up.
func (c *Controller) BringAnnotationForward(id string) {
	c.reorder(id, annotation.BringForward)
}

// SendAnnotationBackward swaps with the next annotation down.
func (c *Controller) SendAnnotationBackward(id string) {
	c.reorder(id, annotation.SendBackward)
}

func (c *Controller) reorder(id string, op func(*canvas.Annotation, []*canvas.Annotation) bool) {
	if c.disposed {
		return
	}
	target, ok := c.store.Annotation(id)
	if !ok {
		return
	}
	all := c.store.Annotations()
	before := zIndexes(all)
	if !op(target, all) {
		return
	}
	for _, a := range all {
		if before[a.ID] != a.ZIndex {
			c.sched.MarkAnnotations(a.ID)
		}
	}
	c.logger.Debug("Annotation reordered.", "id", id, "z", target.ZIndex)
}

func zIndexes(all []*canvas.Annotation) map[string]int {
	out := make(map[string]int, len(all))
	for _, a := range all {
		out[a.ID] = a.ZIndex
	}
	return out
}

// SelectAnnotation replaces the selection with id, or toggles id when toggle
// is set. Ids are not checked against the store.
func (c *Controller) SelectAnnotation(id string, toggle bool) {
	if c.disposed {
		return
	}
	c.annotationSelection.Select(id, toggle)
}

// SelectedAnnotationIDs returns the selection in selection order.
func (c *Controller) SelectedAnnotationIDs() []string {
	return c.annotationSelection.IDs()
}

// SelectedAnnotation returns the annotation when exactly one id is selected
// and it resolves.
func (c *Controller) SelectedAnnotation() (*canvas.Annotation, bool) {
	id, ok := c.annotationSelection.Single()
	if !ok {
		return nil, false
	}
	return c.store.Annotation(id)
}

// ClearAnnotationSelection empties the annotation selection.
func (c *Controller) ClearAnnotationSelection() {
	if c.disposed {
		return
	}
	c.annotationSelection.Clear()
}

// SetAnnotationVisible shows or hides one annotation. Hidden annotations are
// dropped from the spatial index.
func (c *Controller) SetAnnotationVisible(id string, visible bool) {
	if c.disposed {
		return
	}
	a, ok := c.store.Annotation(id)
	if !ok {
		return
	}
	if a.Visible.Set(visible) {
		c.sched.MarkAnnotations(id)
	}
}

// HideAllAnnotations hides every stored annotation.
func (c *Controller) HideAllAnnotations() {
	c.setAllVisible("hide-all-annotations", false)
}

// ShowAllAnnotations shows every stored annotation.
func (c *Controller) ShowAllAnnotations() {
	c.setAllVisible("show-all-annotations", true)
}

func (c *Controller) setAllVisible(label string, visible bool) {
	if c.disposed {
		return
	}
	_ = c.sched.Batch(label, func() error {
		for _, a := range c.store.Annotations() {
			c.SetAnnotationVisible(a.ID, visible)
		}
		return nil
	})
}

// SetAnnotationEditing sets the editing flag. It has no spatial effect.
func (c *Controller) SetAnnotationEditing(id string, editing bool) {
	if c.disposed {
		return
	}
	if a, ok := c.store.Annotation(id); ok {
		a.Editing.Set(editing)
	}
}

// DeleteSelectedAnnotations removes every selected annotation and empties the
// selection, unresolved ids included.
func (c *Controller) DeleteSelectedAnnotations() {
	if c.disposed {
		return
	}
	ids := c.annotationSelection.IDs()
	_ = c.sched.Batch("delete-selected-annotations", func() error {
		for _, id := range ids {
			c.RemoveAnnotation(id)
		}
		return nil
	})
	c.annotationSelection.Clear()
}

// MoveSelectedAnnotations adds delta to every selected annotation's position.
func (c *Controller) MoveSelectedAnnotations(delta geom.Point) {
	if c.disposed {
		return
	}
	_ = c.sched.Batch("move-selected-annotations", func() error {
		for _, id := range c.annotationSelection.IDs() {
			a, ok := c.store.Annotation(id)
			if !ok {
				continue
			}
			a.Position.Set(a.Position.Get().Add(delta))
			c.sched.MarkAnnotations(id)
		}
		return nil
	})
}

// FindContainedNodes returns the sorted ids of nodes lying entirely inside
// the group annotation groupID. Unknown ids and non-group annotations yield
// an empty result.
func (c *Controller) FindContainedNodes(groupID string) []string {
	g, ok := c.store.Annotation(groupID)
	if !ok || !g.IsGroup() {
		return []string{}
	}
	return annotation.ContainedNodes(g.Bounds(), c.store.Nodes())
}

// FindIntersectingGroup returns the topmost group overlapping the node.
func (c *Controller) FindIntersectingGroup(nodeID string) (*canvas.Annotation, bool) {
	n, ok := c.store.Node(nodeID)
	if !ok {
		return nil, false
	}
	return annotation.IntersectingGroup(n.Bounds(), c.store.Annotations())
}

// CreateGroupAnnotationAroundNodes adds a group box covering the given nodes
// plus padding on every side. Unknown ids are ignored; if none resolve a
// *canvas.EmptyNodeSetError is returned.
func (c *Controller) CreateGroupAnnotationAroundNodes(nodeIDs []string, padding float64) (*canvas.Annotation, error) {
	if c.disposed {
		return nil, ErrDisposed
	}
	var rects []geom.Rect
	for _, id := range nodeIDs {
		if n, ok := c.store.Node(id); ok {
			rects = append(rects, n.Bounds())
		}
	}
	bounds, ok := annotation.GroupBounds(rects, padding)
	if !ok {
		return nil, &canvas.EmptyNodeSetError{Requested: nodeIDs}
	}
	g := canvas.NewGroup(uuid.NewString(), bounds.Min, bounds.Size, "")
	if err := c.AddAnnotation(g); err != nil {
		return nil, err
	}
	return g, nil
}
