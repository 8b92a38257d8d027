package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelect_ReplacesByDefault(t *testing.T) {
	var s Set
	s.Select("a", false)
	s.Select("b", false)

	assert.Equal(t, []string{"b"}, s.IDs())
}

func TestSelect_Toggle(t *testing.T) {
	var s Set
	s.Select("a", false)
	s.Select("b", true)
	s.Select("c", true)

	assert.Equal(t, []string{"a", "b", "c"}, s.IDs())

	s.Select("b", true)

	assert.Equal(t, []string{"a", "c"}, s.IDs())
	assert.False(t, s.Has("b"))
}

func TestSingle(t *testing.T) {
	var s Set
	_, ok := s.Single()
	assert.False(t, ok)

	s.Select("ghost", false)
	id, ok := s.Single()
	assert.True(t, ok)
	assert.Equal(t, "ghost", id)

	s.Add("other")
	s.Add("other")
	_, ok = s.Single()
	assert.False(t, ok)
	assert.Equal(t, 2, s.Len())
}

func TestRemoveAndClear(t *testing.T) {
	var s Set
	s.Add("a")
	s.Add("b")

	assert.True(t, s.Remove("a"))
	assert.False(t, s.Remove("a"))
	assert.Equal(t, []string{"b"}, s.IDs())

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.IDs())
}
