package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_Contains(t *testing.T) {
	group := RectAt(Pt(0, 0), Sz(200, 200))

	tests := []struct {
		name string
		rect Rect
		want bool
	}{
		{"fully inside", RectAt(Pt(50, 50), Sz(100, 80)), true},
		{"extends past right and bottom edge", RectAt(Pt(150, 150), Sz(100, 80)), false},
		{"shares the boundary", RectAt(Pt(0, 0), Sz(200, 200)), true},
		{"starts left of the group", RectAt(Pt(-1, 10), Sz(10, 10)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, group.Contains(tt.rect))
		})
	}
}

func TestRect_Intersects(t *testing.T) {
	a := RectAt(Pt(0, 0), Sz(100, 100))

	assert.True(t, a.Intersects(RectAt(Pt(90, 90), Sz(50, 50))), "partial overlap counts")
	assert.False(t, a.Intersects(RectAt(Pt(100, 0), Sz(50, 50))), "touching edges have no common area")
	assert.False(t, a.Intersects(RectAt(Pt(300, 300), Sz(10, 10))))
}

func TestRect_Overlaps_DegenerateRect(t *testing.T) {
	area := RectAt(Pt(0, 0), Sz(100, 100))
	marker := RectAt(Pt(40, 40), Size{})

	assert.True(t, marker.Overlaps(area))
	assert.False(t, marker.Intersects(area))
}

func TestRect_UnionAndExpand(t *testing.T) {
	a := RectAt(Pt(10, 20), Sz(100, 50))
	b := RectAt(Pt(200, 0), Sz(40, 40))

	u := a.Union(b)
	assert.Equal(t, Pt(10, 0), u.Min)
	assert.Equal(t, Sz(230, 70), u.Size)

	e := u.Expand(5)
	assert.Equal(t, Pt(5, -5), e.Min)
	assert.Equal(t, Sz(240, 80), e.Size)
}

func TestSpan(t *testing.T) {
	r := Span(Pt(100, 10), Pt(20, 50))
	assert.Equal(t, Pt(20, 10), r.Min)
	assert.Equal(t, Sz(80, 40), r.Size)
	assert.Equal(t, Pt(60, 30), r.Center())
}
