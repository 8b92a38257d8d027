// Package geom provides the small set of 2D value types shared by the canvas
// model, the spatial index and the annotation subsystem.
package geom

import "math"

// Point is a 2D coordinate in canvas space.
type Point struct {
	X float64
	Y float64
}

// Pt is shorthand for constructing a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Size is a width/height pair. Point-like entities use the zero Size.
type Size struct {
	W float64
	H float64
}

// Sz is shorthand for constructing a Size.
func Sz(w, h float64) Size {
	return Size{W: w, H: h}
}

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	Min  Point
	Size Size
}

// RectAt builds the rectangle occupied by an entity at p with size s.
func RectAt(p Point, s Size) Rect {
	return Rect{Min: p, Size: s}
}

// Max returns the bottom-right corner.
func (r Rect) Max() Point {
	return Point{X: r.Min.X + r.Size.W, Y: r.Min.Y + r.Size.H}
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.Min.X + r.Size.W/2, Y: r.Min.Y + r.Size.H/2}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Size.W <= 0 || r.Size.H <= 0
}

// Contains reports whether o lies entirely within r. Shared edges count as
// inside.
func (r Rect) Contains(o Rect) bool {
	rMax, oMax := r.Max(), o.Max()
	return o.Min.X >= r.Min.X && o.Min.Y >= r.Min.Y &&
		oMax.X <= rMax.X && oMax.Y <= rMax.Y
}

// ContainsPoint reports whether p lies within r, edges included.
func (r Rect) ContainsPoint(p Point) bool {
	rMax := r.Max()
	return p.X >= r.Min.X && p.Y >= r.Min.Y && p.X <= rMax.X && p.Y <= rMax.Y
}

// Intersects reports whether r and o share a region of positive area.
// Rectangles that only touch along an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	rMax, oMax := r.Max(), o.Max()
	return r.Min.X < oMax.X && o.Min.X < rMax.X &&
		r.Min.Y < oMax.Y && o.Min.Y < rMax.Y
}

// Overlaps is like Intersects but also accepts degenerate rectangles (points
// and segments) that touch or lie inside o. The spatial index uses it so that
// zero-size markers remain queryable.
func (r Rect) Overlaps(o Rect) bool {
	rMax, oMax := r.Max(), o.Max()
	return r.Min.X <= oMax.X && o.Min.X <= rMax.X &&
		r.Min.Y <= oMax.Y && o.Min.Y <= rMax.Y
}

// Union returns the smallest rectangle covering both r and o.
func (r Rect) Union(o Rect) Rect {
	rMax, oMax := r.Max(), o.Max()
	minX, minY := math.Min(r.Min.X, o.Min.X), math.Min(r.Min.Y, o.Min.Y)
	maxX, maxY := math.Max(rMax.X, oMax.X), math.Max(rMax.Y, oMax.Y)
	return Rect{Min: Point{X: minX, Y: minY}, Size: Size{W: maxX - minX, H: maxY - minY}}
}

// Expand grows the rectangle outward by pad on every side.
func (r Rect) Expand(pad float64) Rect {
	return Rect{
		Min:  Point{X: r.Min.X - pad, Y: r.Min.Y - pad},
		Size: Size{W: r.Size.W + 2*pad, H: r.Size.H + 2*pad},
	}
}

// Span returns the rectangle spanned by two points in any order.
func Span(a, b Point) Rect {
	minX, minY := math.Min(a.X, b.X), math.Min(a.Y, b.Y)
	return Rect{
		Min:  Point{X: minX, Y: minY},
		Size: Size{W: math.Abs(a.X - b.X), H: math.Abs(a.Y - b.Y)},
	}
}
