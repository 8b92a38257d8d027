// Package connindex maintains the derived mapping from node id to the set of
// connection ids that touch the node as source or target.
//
// The index exists so that a drag of N nodes can find the affected
// connections in O(N) lookups instead of scanning every connection on every
// pointer move. It is a cache over the entity store: the controller updates it
// incrementally on every connection add/remove and node removal, and rebuilds
// it from scratch only when a whole graph is loaded.
package connindex

import (
	"sort"

	"github.com/vk/nodecanvas/internal/canvas"
)

// Index maps node ids to the ids of their connections.
type Index struct {
	byNode map[string]map[string]struct{} // Key: node ID, Value: set of connection IDs
}

// New creates an empty index.
func New() *Index {
	return &Index{byNode: make(map[string]map[string]struct{})}
}

// Add records c against both of its endpoint nodes. A self-loop is recorded
// once.
func (x *Index) Add(c *canvas.Connection) {
	x.link(c.SourceNodeID, c.ID)
	x.link(c.TargetNodeID, c.ID)
}

// Remove drops c from both endpoint entries. Entries that become empty are
// deleted so the map does not grow with removed nodes.
func (x *Index) Remove(c *canvas.Connection) {
	x.unlink(c.SourceNodeID, c.ID)
	x.unlink(c.TargetNodeID, c.ID)
}

// ConnectionsOf returns the sorted ids of every connection touching nodeID.
// Unknown and unconnected nodes yield an empty, non-nil slice.
func (x *Index) ConnectionsOf(nodeID string) []string {
	set := x.byNode[nodeID]
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Degree returns how many connections touch nodeID.
func (x *Index) Degree(nodeID string) int {
	return len(x.byNode[nodeID])
}

// Rebuild replaces the index contents with entries derived from conns.
func (x *Index) Rebuild(conns []*canvas.Connection) {
	x.byNode = make(map[string]map[string]struct{}, len(conns))
	for _, c := range conns {
		x.Add(c)
	}
}

// Len returns the number of nodes with at least one connection.
func (x *Index) Len() int {
	return len(x.byNode)
}

func (x *Index) link(nodeID, connID string) {
	set, ok := x.byNode[nodeID]
	if !ok {
		set = make(map[string]struct{})
		x.byNode[nodeID] = set
	}
	set[connID] = struct{}{}
}

func (x *Index) unlink(nodeID, connID string) {
	set, ok := x.byNode[nodeID]
	if !ok {
		return
	}
	delete(set, connID)
	if len(set) == 0 {
		delete(x.byNode, nodeID)
	}
}
