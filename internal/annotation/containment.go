package annotation

import (
	"sort"

	"github.com/vk/nodecanvas/internal/canvas"
	"github.com/vk/nodecanvas/internal/geom"
)

// ContainedNodes returns the sorted ids of nodes whose whole logical
// rectangle lies inside region. Nodes that only overlap are excluded.
func ContainedNodes(region geom.Rect, nodes []*canvas.Node) []string {
	out := []string{}
	for _, n := range nodes {
		if region.Contains(n.Bounds()) {
			out = append(out, n.ID())
		}
	}
	sort.Strings(out)
	return out
}

// IntersectingGroup returns the group annotation overlapping r with positive
// area. Among several, the highest z-index wins, then the earliest inserted.
// Visibility is not considered.
func IntersectingGroup(r geom.Rect, all []*canvas.Annotation) (*canvas.Annotation, bool) {
	var best *canvas.Annotation
	for _, a := range all {
		if !a.IsGroup() || !a.Bounds().Intersects(r) {
			continue
		}
		if best == nil || a.ZIndex > best.ZIndex {
			best = a
		}
	}
	return best, best != nil
}

// GroupBounds returns the union of rects expanded by padding on every side.
// It reports false for an empty input.
func GroupBounds(rects []geom.Rect, padding float64) (geom.Rect, bool) {
	if len(rects) == 0 {
		return geom.Rect{}, false
	}
	u := rects[0]
	for _, r := range rects[1:] {
		u = u.Union(r)
	}
	return u.Expand(padding), true
}
