package graph

import (
	"sort"

	"github.com/vk/nodecanvas/internal/drag"
	"github.com/vk/nodecanvas/internal/geom"
	"github.com/vk/nodecanvas/internal/metrics"
	"github.com/vk/nodecanvas/internal/observable"
)

// StartNodeDrag opens a drag on id. The active set is id alone, or id plus
// the node selection when id is selected. An unknown id is a no-op.
func (c *Controller) StartNodeDrag(id string) error {
	if c.disposed {
		return ErrDisposed
	}
	if c.session.Dragging() {
		return ErrDragInProgress
	}
	if _, ok := c.store.Node(id); !ok {
		c.logger.Debug("Ignoring drag start on unknown node.", "id", id)
		return nil
	}

	var active []string
	for _, nid := range drag.ActiveSet(id, c.nodeSelection.IDs()) {
		if _, ok := c.store.Node(nid); ok {
			active = append(active, nid)
		}
	}
	if err := c.session.Start(id, active); err != nil {
		return err
	}
	for _, nid := range active {
		n, _ := c.store.Node(nid)
		n.Dragging.Set(true)
	}
	c.sched.BeginDrag()
	c.logger.Debug("Drag started.", "initiator", id, "nodes", len(active))
	return nil
}

// MoveNodeDrag adds delta to the logical position of every active node and
// derives the visual position through the transform pipeline. Deltas
// accumulate. A panicking transform propagates; callers should cancel.
func (c *Controller) MoveNodeDrag(delta geom.Point) {
	if c.disposed || !c.session.Dragging() {
		return
	}
	ids := c.session.NodeIDs()
	for _, id := range ids {
		n, ok := c.store.Node(id)
		if !ok {
			continue
		}
		logical := n.Position.Get().Add(delta)
		n.Position.Set(logical)
		n.VisualPosition.Set(c.pipeline.Apply(logical))
	}
	c.sched.MarkNodes(ids...)
	c.sched.MarkConnections(c.ActiveConnectionIDs()...)
}

// EndNodeDrag closes the drag and flushes unless a batch is still open. It is
// a no-op while idle.
func (c *Controller) EndNodeDrag() {
	if c.disposed || !c.session.Dragging() {
		return
	}
	c.finishDrag(metrics.DragEnded)
}

// CancelNodeDrag restores the given positions and then ends the drag. Nodes
// missing from original keep their current position; ids no longer in the
// store are skipped. It is a no-op while idle.
func (c *Controller) CancelNodeDrag(original map[string]geom.Point) {
	if c.disposed || !c.session.Dragging() {
		return
	}
	ids := make([]string, 0, len(original))
	for id := range original {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		n, ok := c.store.Node(id)
		if !ok {
			continue
		}
		pos := original[id]
		n.Position.Set(pos)
		n.VisualPosition.Set(c.pipeline.Apply(pos))
		c.markNodes(id)
	}
	c.finishDrag(metrics.DragCancelled)
}

func (c *Controller) finishDrag(outcome string) {
	initiator := c.session.Initiator()
	ids := c.session.Finish()
	for _, id := range ids {
		if n, ok := c.store.Node(id); ok {
			n.Dragging.Set(false)
		}
	}
	c.sched.EndDrag()
	c.metrics.DragFinished(outcome)
	c.logger.Debug("Drag finished.", "initiator", initiator, "outcome", outcome, "nodes", len(ids))
}

// IsDragging reports whether a drag is open.
func (c *Controller) IsDragging() bool {
	return c.session.Dragging()
}

// ActiveNodeIDs returns the sorted active set; empty while idle.
func (c *Controller) ActiveNodeIDs() []string {
	return c.session.NodeIDs()
}

// ActiveConnectionIDs returns the sorted connections touching the active set,
// read from the live connection index; empty while idle.
func (c *Controller) ActiveConnectionIDs() []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, id := range c.session.NodeIDs() {
		for _, connID := range c.conns.ConnectionsOf(id) {
			if _, dup := seen[connID]; dup {
				continue
			}
			seen[connID] = struct{}{}
			out = append(out, connID)
		}
	}
	sort.Strings(out)
	return out
}

// SetCanvasLocked sets the canvas-lock flag. The drag API never changes it.
func (c *Controller) SetCanvasLocked(locked bool) {
	if c.disposed {
		return
	}
	c.canvasLocked.Set(locked)
}

// CanvasLocked is the observable canvas-lock flag.
func (c *Controller) CanvasLocked() *observable.Value[bool] {
	return c.canvasLocked
}
