package graph

import (
	"fmt"

	"github.com/vk/nodecanvas/internal/annotation"
	"github.com/vk/nodecanvas/internal/canvas"
	"github.com/vk/nodecanvas/internal/geom"
	"github.com/vk/nodecanvas/internal/inmemoryentities"
)

// AddNode inserts n. A taken id returns *canvas.DuplicateIDError.
func (c *Controller) AddNode(n *canvas.Node) error {
	if c.disposed {
		return ErrDisposed
	}
	if err := c.store.AddNode(n); err != nil {
		return err
	}
	c.logger.Debug("Node added.", "id", n.ID())
	c.sched.MarkNodes(n.ID())
	return nil
}

// RemoveNode deletes the node, every connection touching it and its
// selection and drag membership. An unknown id is a no-op.
func (c *Controller) RemoveNode(id string) {
	if c.disposed {
		return
	}
	n, ok := c.store.RemoveNode(id)
	if !ok {
		return
	}
	_ = c.sched.Batch("remove-node", func() error {
		for _, connID := range c.conns.ConnectionsOf(id) {
			c.dropConnection(connID)
		}
		c.nodeSelection.Remove(id)
		c.session.Forget(id)
		c.sched.MarkNodes(id)
		return nil
	})
	n.Release()
	c.logger.Debug("Node removed.", "id", id)
}

// Node returns the node with the given id.
func (c *Controller) Node(id string) (*canvas.Node, bool) {
	return c.store.Node(id)
}

// Nodes returns every node in insertion order.
func (c *Controller) Nodes() []*canvas.Node {
	return c.store.Nodes()
}

// SetNodePosition moves a node outside of a drag. Logical and visual
// positions both become p.
func (c *Controller) SetNodePosition(id string, p geom.Point) {
	if c.disposed {
		return
	}
	n, ok := c.store.Node(id)
	if !ok {
		return
	}
	n.Position.Set(p)
	n.VisualPosition.Set(p)
	c.markNodes(id)
}

// AddConnection inserts conn after checking both endpoints exist.
func (c *Controller) AddConnection(conn *canvas.Connection) error {
	if c.disposed {
		return ErrDisposed
	}
	if err := c.store.AddConnection(conn); err != nil {
		return err
	}
	c.conns.Add(conn)
	c.logger.Debug("Connection added.", "id", conn.ID, "from", conn.SourceNodeID, "to", conn.TargetNodeID)
	c.sched.MarkConnections(conn.ID)
	return nil
}

// RemoveConnection deletes a connection. An unknown id is a no-op.
func (c *Controller) RemoveConnection(id string) {
	if c.disposed {
		return
	}
	c.dropConnection(id)
}

func (c *Controller) dropConnection(id string) {
	conn, ok := c.store.RemoveConnection(id)
	if !ok {
		return
	}
	c.conns.Remove(conn)
	c.logger.Debug("Connection removed.", "id", id)
	c.sched.MarkConnections(id)
}

// Connection returns the connection with the given id.
func (c *Controller) Connection(id string) (*canvas.Connection, bool) {
	return c.store.Connection(id)
}

// Connections returns every connection in insertion order.
func (c *Controller) Connections() []*canvas.Connection {
	return c.store.Connections()
}

// ConnectionsOf returns the sorted ids of connections touching nodeID. It is
// empty, never nil, for unknown or unconnected nodes.
func (c *Controller) ConnectionsOf(nodeID string) []string {
	return c.conns.ConnectionsOf(nodeID)
}

// LoadGraph replaces everything with doc: nodes, then connections, then
// annotations. Selections, drag state and pending updates are dropped. The
// document is validated first; on error nothing changes.
func (c *Controller) LoadGraph(doc *canvas.Document) error {
	if c.disposed {
		return ErrDisposed
	}
	if doc == nil {
		doc = &canvas.Document{}
	}
	if err := validateDocument(doc); err != nil {
		return fmt.Errorf("load graph: %w", err)
	}

	err := c.sched.Batch("load-graph", func() error {
		c.resetState(doc)
		for _, n := range doc.Nodes {
			if err := c.store.AddNode(n); err != nil {
				return err
			}
			c.sched.MarkNodes(n.ID())
		}
		for _, conn := range doc.Connections {
			if err := c.store.AddConnection(conn); err != nil {
				return err
			}
			c.sched.MarkConnections(conn.ID)
		}
		c.conns.Rebuild(c.store.Connections())
		for _, a := range doc.Annotations {
			if a.ZIndex == canvas.ZIndexUnassigned {
				a.ZIndex = annotation.NextZ(c.store.Annotations())
			}
			if err := c.store.AddAnnotation(a); err != nil {
				return err
			}
			c.sched.MarkAnnotations(a.ID)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("load graph: %w", err)
	}
	c.logger.Info("Graph loaded.", "nodes", len(doc.Nodes), "connections", len(doc.Connections), "annotations", len(doc.Annotations))
	return nil
}

// ClearGraph removes every node, connection and annotation.
func (c *Controller) ClearGraph() {
	if c.disposed {
		return
	}
	if err := c.LoadGraph(&canvas.Document{}); err != nil {
		c.logger.Error("Failed to clear graph.", "error", err)
	}
}

// resetState empties the store and every derived structure. Ids that were
// indexed or still pending are marked so the next flush removes them from the
// spatial index.
// Entities that reappear in next keep their subscriptions.
func (c *Controller) resetState(next *canvas.Document) {
	// Deferred marks may name entities already gone from the store; carry
	// them over so the flush still drops their index entries.
	nodes, conns, anns := c.sched.Pending()
	c.sched.Reset()
	c.sched.MarkNodes(nodes...)
	c.sched.MarkConnections(conns...)
	c.sched.MarkAnnotations(anns...)
	for _, id := range c.session.Finish() {
		if n, ok := c.store.Node(id); ok {
			n.Dragging.Set(false)
		}
	}
	c.nodeSelection.Clear()
	c.annotationSelection.Clear()

	for _, n := range c.store.Nodes() {
		c.sched.MarkNodes(n.ID())
	}
	for _, conn := range c.store.Connections() {
		c.sched.MarkConnections(conn.ID)
	}
	for _, a := range c.store.Annotations() {
		c.sched.MarkAnnotations(a.ID)
	}
	c.releaseExcept(next)
	c.store.Clear()
	c.conns.Rebuild(nil)
}

func (c *Controller) releaseExcept(next *canvas.Document) {
	keepNodes := make(map[*canvas.Node]struct{}, len(next.Nodes))
	for _, n := range next.Nodes {
		keepNodes[n] = struct{}{}
	}
	keepAnnotations := make(map[*canvas.Annotation]struct{}, len(next.Annotations))
	for _, a := range next.Annotations {
		keepAnnotations[a] = struct{}{}
	}
	for _, n := range c.store.Nodes() {
		if _, ok := keepNodes[n]; !ok {
			n.Release()
		}
	}
	for _, a := range c.store.Annotations() {
		if _, ok := keepAnnotations[a]; !ok {
			a.Release()
		}
	}
}

// validateDocument runs doc through a scratch store so that duplicate ids and
// dangling endpoints are caught before the live state is touched.
func validateDocument(doc *canvas.Document) error {
	scratch := inmemoryentities.New()
	for _, n := range doc.Nodes {
		if err := scratch.AddNode(n); err != nil {
			return err
		}
	}
	for _, conn := range doc.Connections {
		if err := scratch.AddConnection(conn); err != nil {
			return err
		}
	}
	for _, a := range doc.Annotations {
		if err := scratch.AddAnnotation(a); err != nil {
			return err
		}
	}
	return nil
}

// markNodes marks nodes and every connection touching them.
func (c *Controller) markNodes(ids ...string) {
	c.sched.MarkNodes(ids...)
	for _, id := range ids {
		c.sched.MarkConnections(c.conns.ConnectionsOf(id)...)
	}
}
