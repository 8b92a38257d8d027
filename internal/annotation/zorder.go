// Package annotation holds the kind-agnostic rules for annotations: z-order,
// containment against nodes and group construction. Functions take the
// annotations in insertion order, which is also the tie-break order.
package annotation

import (
	"sort"

	"github.com/vk/nodecanvas/internal/canvas"
)

// NextZ returns the z-index for an annotation added on top of all: one past
// the highest assigned z-index, or 0 when none is assigned.
func NextZ(all []*canvas.Annotation) int {
	hi, ok := extreme(all, nil, func(a, b int) bool { return a > b })
	if !ok {
		return 0
	}
	return hi + 1
}

// Sorted returns a copy of all ordered ascending by z-index. Ties keep
// insertion order.
func Sorted(all []*canvas.Annotation) []*canvas.Annotation {
	out := make([]*canvas.Annotation, len(all))
	copy(out, all)
	sort.SliceStable(out, func(i, j int) bool { return out[i].ZIndex < out[j].ZIndex })
	return out
}

// BringToFront puts target one past the highest z-index of all annotations,
// itself included, so repeated calls keep climbing.
func BringToFront(target *canvas.Annotation, all []*canvas.Annotation) bool {
	target.ZIndex = NextZ(all)
	return true
}

// SendToBack puts target one before the lowest z-index of all annotations.
func SendToBack(target *canvas.Annotation, all []*canvas.Annotation) bool {
	lo, ok := extreme(all, nil, func(a, b int) bool { return a < b })
	if !ok {
		lo = 0
	}
	target.ZIndex = lo - 1
	return true
}

// BringForward swaps target's z-index with the annotation holding the next
// higher one. It is a no-op at the top.
func BringForward(target *canvas.Annotation, all []*canvas.Annotation) bool {
	return swapWith(target, neighbor(target, all, true))
}

// SendBackward swaps target's z-index with the next lower one.
func SendBackward(target *canvas.Annotation, all []*canvas.Annotation) bool {
	return swapWith(target, neighbor(target, all, false))
}

func swapWith(target, other *canvas.Annotation) bool {
	if other == nil {
		return false
	}
	target.ZIndex, other.ZIndex = other.ZIndex, target.ZIndex
	return true
}

// neighbor returns the annotation whose z-index is closest above (or below)
// target's. Earlier insertion wins ties.
func neighbor(target *canvas.Annotation, all []*canvas.Annotation, above bool) *canvas.Annotation {
	var best *canvas.Annotation
	for _, a := range all {
		if a == target || a.ZIndex == canvas.ZIndexUnassigned {
			continue
		}
		if above && a.ZIndex > target.ZIndex && (best == nil || a.ZIndex < best.ZIndex) {
			best = a
		}
		if !above && a.ZIndex < target.ZIndex && (best == nil || a.ZIndex > best.ZIndex) {
			best = a
		}
	}
	return best
}

func extreme(all []*canvas.Annotation, skip *canvas.Annotation, better func(a, b int) bool) (int, bool) {
	var (
		z     int
		found bool
	)
	for _, a := range all {
		if a == skip || a.ZIndex == canvas.ZIndexUnassigned {
			continue
		}
		if !found || better(a.ZIndex, z) {
			z, found = a.ZIndex, true
		}
	}
	return z, found
}
