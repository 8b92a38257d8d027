// Package spatial provides the geometric index used for hit-testing and
// viewport culling, together with the version counter renderers watch to
// learn that the canvas changed.
//
// # Structure
//
// The index is a uniform grid: every entry is registered in each square cell
// its bounding rectangle touches. Queries visit only the cells under the
// query rectangle and then filter candidates by exact geometry.
//
// Entries spanning more than MaxCellsPerEntry cells are kept in a separate
// bucket that every query checks, and a query covering more cells than there
// are entries scans the entries directly. Neither path depends on how large a
// rectangle is, only on how many entries exist.
//
// # Versioning
//
// Version is an observable counter that starts at 0 and only ever grows. It is
// not bumped by Update or Remove; the owner calls NotifyChanged once after a
// group of updates (a scheduler flush) so that a drag touching fifty nodes
// produces a single notification.
package spatial

import (
	"math"
	"sort"

	"github.com/vk/nodecanvas/internal/geom"
	"github.com/vk/nodecanvas/internal/observable"
)

// DefaultCellSize is used when New is given a non-positive cell size.
const DefaultCellSize = 256

// MaxCellsPerEntry caps how many grid cells a single entry is registered in.
const MaxCellsPerEntry = 64

// Kind tells what sort of entity an Entry describes. Node and annotation ids
// live in separate namespaces, so the kind is part of an entry's identity.
type Kind int

const (
	KindNode Kind = iota
	KindAnnotation
	KindConnection
)

func (k Kind) String() string {
	switch k {
	case KindNode:
		return "node"
	case KindAnnotation:
		return "annotation"
	case KindConnection:
		return "connection"
	default:
		return "unknown"
	}
}

// Entry is the indexed geometry of one entity.
type Entry struct {
	ID     string
	Kind   Kind
	Bounds geom.Rect
	// Z orders annotations in hit-test results; unused for other kinds.
	Z int
}

type key struct {
	kind Kind
	id   string
}

type cell struct {
	x, y int
}

// Index is a uniform-grid spatial index. It is not safe for concurrent use.
type Index struct {
	cellSize float64
	entries  map[key]Entry
	cells    map[cell]map[key]struct{}
	// wide holds entries too large to register cell by cell.
	wide     map[key]struct{}
	version  *observable.Value[uint64]
}

// New creates an empty index with the given cell size.
func New(cellSize float64) *Index {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	return &Index{
		cellSize: cellSize,
		entries:  make(map[key]Entry),
		cells:    make(map[cell]map[key]struct{}),
		wide:     make(map[key]struct{}),
		version:  observable.New[uint64](0),
	}
}

// Version exposes the change counter. Observers may Get and Subscribe; only
// the index mutates it.
func (x *Index) Version() *observable.Value[uint64] {
	return x.version
}

// NotifyChanged bumps the version by exactly one and notifies observers.
func (x *Index) NotifyChanged() uint64 {
	next := x.version.Get() + 1
	x.version.Set(next)
	return next
}

// Update inserts or replaces the geometry of e.
func (x *Index) Update(e Entry) {
	k := key{kind: e.Kind, id: e.ID}
	if old, ok := x.entries[k]; ok {
		x.unregister(k, old.Bounds)
	}
	x.entries[k] = e
	if x.cellCount(e.Bounds) > MaxCellsPerEntry {
		x.wide[k] = struct{}{}
		return
	}
	x.forCells(e.Bounds, func(c cell) {
		bucket, ok := x.cells[c]
		if !ok {
			bucket = make(map[key]struct{})
			x.cells[c] = bucket
		}
		bucket[k] = struct{}{}
	})
}

// Remove drops the entry for (kind, id) and reports whether it existed.
func (x *Index) Remove(kind Kind, id string) bool {
	k := key{kind: kind, id: id}
	old, ok := x.entries[k]
	if !ok {
		return false
	}
	x.unregister(k, old.Bounds)
	delete(x.entries, k)
	return true
}

// Entry returns the indexed geometry for (kind, id).
func (x *Index) Entry(kind Kind, id string) (Entry, bool) {
	e, ok := x.entries[key{kind: kind, id: id}]
	return e, ok
}

// Len returns the number of indexed entries.
func (x *Index) Len() int {
	return len(x.entries)
}

// Clear removes every entry. The version is left untouched.
func (x *Index) Clear() {
	x.entries = make(map[key]Entry)
	x.cells = make(map[cell]map[key]struct{})
	x.wide = make(map[key]struct{})
}

// Close drops every version subscription and all entries.
func (x *Index) Close() {
	x.version.Close()
	x.Clear()
}

// Query returns every entry whose bounds overlap r, ordered by kind and id.
func (x *Index) Query(r geom.Rect) []Entry {
	var out []Entry
	if x.cellCount(r) > float64(len(x.entries)) {
		for _, e := range x.entries {
			if e.Bounds.Overlaps(r) {
				out = append(out, e)
			}
		}
	} else {
		seen := make(map[key]struct{})
		visit := func(k key) {
			if _, dup := seen[k]; dup {
				return
			}
			seen[k] = struct{}{}
			if e := x.entries[k]; e.Bounds.Overlaps(r) {
				out = append(out, e)
			}
		}
		x.forCells(r, func(c cell) {
			for k := range x.cells[c] {
				visit(k)
			}
		})
		for k := range x.wide {
			visit(k)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind < out[j].Kind
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// HitTest returns the entries under p, topmost first: nodes, then annotations
// by descending z-index, then connections.
func (x *Index) HitTest(p geom.Point) []Entry {
	hits := x.Query(geom.RectAt(p, geom.Size{}))
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].Kind != hits[j].Kind {
			return hits[i].Kind < hits[j].Kind
		}
		if hits[i].Kind == KindAnnotation {
			return hits[i].Z > hits[j].Z
		}
		return false
	})
	return hits
}

func (x *Index) unregister(k key, r geom.Rect) {
	if _, ok := x.wide[k]; ok {
		delete(x.wide, k)
		return
	}
	x.forCells(r, func(c cell) {
		bucket := x.cells[c]
		delete(bucket, k)
		if len(bucket) == 0 {
			delete(x.cells, c)
		}
	})
}

func (x *Index) span(r geom.Rect) (x0, y0, x1, y1 int) {
	hi := r.Max()
	return x.coord(r.Min.X), x.coord(r.Min.Y), x.coord(hi.X), x.coord(hi.Y)
}

// cellCount is the number of cells under r, as a float so huge rectangles
// cannot overflow.
func (x *Index) cellCount(r geom.Rect) float64 {
	x0, y0, x1, y1 := x.span(r)
	return (float64(x1) - float64(x0) + 1) * (float64(y1) - float64(y0) + 1)
}

func (x *Index) forCells(r geom.Rect, fn func(cell)) {
	x0, y0, x1, y1 := x.span(r)
	for cx := x0; cx <= x1; cx++ {
		for cy := y0; cy <= y1; cy++ {
			fn(cell{x: cx, y: cy})
		}
	}
}

func (x *Index) coord(v float64) int {
	return int(math.Floor(v / x.cellSize))
}
