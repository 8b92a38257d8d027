package annotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/nodecanvas/internal/canvas"
	"github.com/vk/nodecanvas/internal/geom"
)

func note(id string, z int) *canvas.Annotation {
	a := canvas.NewStickyNote(id, geom.Pt(0, 0), geom.Sz(10, 10), id)
	a.ZIndex = z
	return a
}

func zs(all []*canvas.Annotation) []int {
	out := make([]int, 0, len(all))
	for _, a := range all {
		out = append(out, a.ZIndex)
	}
	return out
}

func TestNextZ(t *testing.T) {
	assert.Equal(t, 0, NextZ(nil))
	assert.Equal(t, 0, NextZ([]*canvas.Annotation{note("a", canvas.ZIndexUnassigned)}))
	assert.Equal(t, 8, NextZ([]*canvas.Annotation{note("a", 7), note("b", -3)}))
}

func TestSorted_StableOnTies(t *testing.T) {
	a, b, c := note("a", 2), note("b", 1), note("c", 1)

	got := Sorted([]*canvas.Annotation{a, b, c})

	assert.Equal(t, []*canvas.Annotation{b, c, a}, got)
}

func TestBringToFrontAndSendToBack(t *testing.T) {
	// --- Arrange ---
	a, b, c := note("a", 0), note("b", 1), note("c", 2)
	all := []*canvas.Annotation{a, b, c}

	// --- Act & Assert ---
	require.True(t, BringToFront(a, all))
	assert.Equal(t, 3, a.ZIndex)
	require.True(t, BringToFront(a, all))
	assert.Equal(t, 4, a.ZIndex, "already on top is still reassigned past the max")

	require.True(t, SendToBack(a, all))
	assert.Equal(t, 0, a.ZIndex)
	require.True(t, SendToBack(a, all))
	assert.Equal(t, -1, a.ZIndex, "already at the back is still reassigned before the min")
}

func TestBringToFront_Alone(t *testing.T) {
	a := note("a", 7)

	require.True(t, BringToFront(a, []*canvas.Annotation{a}))

	assert.Equal(t, 8, a.ZIndex)
}

func TestBringToFront_TiedTopMoves(t *testing.T) {
	a, b := note("a", 4), note("b", 4)

	require.True(t, BringToFront(a, []*canvas.Annotation{a, b}))

	assert.Equal(t, 5, a.ZIndex)
}

func TestForwardBackwardSwap(t *testing.T) {
	a, b, c := note("a", 0), note("b", 5), note("c", 9)
	all := []*canvas.Annotation{a, b, c}

	require.True(t, BringForward(a, all))
	assert.Equal(t, []int{5, 0, 9}, zs(all))

	require.True(t, SendBackward(c, all))
	assert.Equal(t, []int{9, 0, 5}, zs(all))

	assert.False(t, BringForward(a, all), "top is an extreme")
	assert.False(t, SendBackward(b, all), "bottom is an extreme")
}

func TestContainedNodes(t *testing.T) {
	group := geom.RectAt(geom.Pt(0, 0), geom.Sz(200, 200))
	inside := canvas.NewNode("node-in", geom.Pt(50, 50), geom.Sz(100, 80), nil, nil)
	outside := canvas.NewNode("node-out", geom.Pt(150, 150), geom.Sz(100, 80), nil, nil)
	edge := canvas.NewNode("node-edge", geom.Pt(100, 120), geom.Sz(100, 80), nil, nil)

	got := ContainedNodes(group, []*canvas.Node{outside, inside, edge})

	assert.Equal(t, []string{"node-edge", "node-in"}, got)
	assert.Empty(t, ContainedNodes(group, nil))
}

func TestIntersectingGroup(t *testing.T) {
	// --- Arrange ---
	low := canvas.NewGroup("low", geom.Pt(0, 0), geom.Sz(100, 100), "low")
	low.ZIndex = 1
	high := canvas.NewGroup("high", geom.Pt(50, 50), geom.Sz(100, 100), "high")
	high.ZIndex = 3
	sticky := note("sticky", 10)
	sticky.Size = geom.Sz(500, 500)
	all := []*canvas.Annotation{low, high, sticky}

	// --- Act & Assert ---
	got, ok := IntersectingGroup(geom.RectAt(geom.Pt(60, 60), geom.Sz(20, 20)), all)
	require.True(t, ok)
	assert.Equal(t, "high", got.ID)

	got, ok = IntersectingGroup(geom.RectAt(geom.Pt(10, 10), geom.Sz(20, 20)), all)
	require.True(t, ok)
	assert.Equal(t, "low", got.ID)

	_, ok = IntersectingGroup(geom.RectAt(geom.Pt(150, 0), geom.Sz(20, 20)), all)
	assert.False(t, ok, "touching an edge is not an overlap")
}

func TestIntersectingGroup_TieKeepsInsertionOrder(t *testing.T) {
	first := canvas.NewGroup("first", geom.Pt(0, 0), geom.Sz(100, 100), "")
	first.ZIndex = 2
	second := canvas.NewGroup("second", geom.Pt(0, 0), geom.Sz(100, 100), "")
	second.ZIndex = 2

	got, ok := IntersectingGroup(geom.RectAt(geom.Pt(10, 10), geom.Sz(5, 5)), []*canvas.Annotation{first, second})

	require.True(t, ok)
	assert.Equal(t, "first", got.ID)
}

func TestGroupBounds(t *testing.T) {
	r, ok := GroupBounds([]geom.Rect{
		geom.RectAt(geom.Pt(10, 10), geom.Sz(20, 20)),
		geom.RectAt(geom.Pt(100, 50), geom.Sz(50, 30)),
	}, 10)

	require.True(t, ok)
	assert.Equal(t, geom.RectAt(geom.Pt(0, 0), geom.Sz(160, 90)), r)

	_, ok = GroupBounds(nil, 10)
	assert.False(t, ok)
}
