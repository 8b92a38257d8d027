// Package selection implements an ordered set of selected ids.
//
// Ids are not validated against any store; removing an entity is the owner's
// cue to call Remove.
package selection

// Set is an ordered id set. The zero value is empty and ready to use.
type Set struct {
	order []string
	index map[string]struct{}
}

// Select replaces the selection with id. With toggle it adds id if absent or
// removes it if present, leaving the rest untouched.
func (s *Set) Select(id string, toggle bool) {
	if !toggle {
		s.Clear()
		s.add(id)
		return
	}
	if s.Has(id) {
		s.Remove(id)
		return
	}
	s.add(id)
}

// Add adds id without affecting other members.
func (s *Set) Add(id string) {
	if !s.Has(id) {
		s.add(id)
	}
}

func (s *Set) add(id string) {
	if s.index == nil {
		s.index = make(map[string]struct{})
	}
	s.index[id] = struct{}{}
	s.order = append(s.order, id)
}

// Remove drops id and reports whether it was selected.
func (s *Set) Remove(id string) bool {
	if !s.Has(id) {
		return false
	}
	delete(s.index, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Has reports whether id is selected.
func (s *Set) Has(id string) bool {
	_, ok := s.index[id]
	return ok
}

// Len returns the number of selected ids.
func (s *Set) Len() int {
	return len(s.order)
}

// IDs returns the selected ids in selection order.
func (s *Set) IDs() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Single returns the only selected id when exactly one is selected.
func (s *Set) Single() (string, bool) {
	if len(s.order) != 1 {
		return "", false
	}
	return s.order[0], true
}

// Clear empties the set.
func (s *Set) Clear() {
	s.order = nil
	s.index = nil
}
