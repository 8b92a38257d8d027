// Package extension holds the position-transform plugins applied to a node's
// logical position during a drag to produce its visual position.
//
// A Transform is a pure function. Transforms run in the order they were added
// to a Pipeline; an empty pipeline is the identity. A panicking transform
// propagates to the caller of Controller.MoveNodeDrag, which should then cancel
// the drag.
package extension

import (
	"math"

	"github.com/vk/nodecanvas/internal/geom"
)

// Transform maps a position to its transformed position.
type Transform func(geom.Point) geom.Point

// Pipeline is an ordered list of transforms.
type Pipeline struct {
	transforms []Transform
}

// NewPipeline creates a pipeline from ts, skipping nil entries.
func NewPipeline(ts ...Transform) *Pipeline {
	p := &Pipeline{}
	for _, t := range ts {
		p.Add(t)
	}
	return p
}

// Add appends t to the pipeline.
func (p *Pipeline) Add(t Transform) {
	if t == nil {
		return
	}
	p.transforms = append(p.transforms, t)
}

// Len returns the number of configured transforms.
func (p *Pipeline) Len() int {
	if p == nil {
		return 0
	}
	return len(p.transforms)
}

// Apply runs pos through every transform in order. A nil pipeline is the
// identity.
func (p *Pipeline) Apply(pos geom.Point) geom.Point {
	if p == nil {
		return pos
	}
	for _, t := range p.transforms {
		pos = t(pos)
	}
	return pos
}

// SnapToGrid quantizes each axis to the nearest multiple of size. A
// non-positive size yields the identity.
func SnapToGrid(size float64) Transform {
	if size <= 0 {
		return func(p geom.Point) geom.Point { return p }
	}
	return func(p geom.Point) geom.Point {
		return geom.Point{
			X: math.Round(p.X/size) * size,
			Y: math.Round(p.Y/size) * size,
		}
	}
}
