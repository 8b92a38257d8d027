// Package drag keeps the bookkeeping of a node drag session: whether one is
// open, which node started it and which nodes move with it.
//
// The session does not touch positions or the spatial index; the controller
// drives those. Only one session can be open at a time.
package drag

import (
	"errors"
	"sort"
)

// ErrInProgress is returned by Start while a session is already open.
var ErrInProgress = errors.New("drag session already in progress")

// Session is the Idle/Dragging state machine. The zero value is Idle.
type Session struct {
	dragging  bool
	initiator string
	active    map[string]struct{}
}

// ActiveSet returns the nodes moved by a drag started on initiator: the
// initiator alone, or the initiator plus the whole selection when the
// initiator is itself selected.
func ActiveSet(initiator string, selection []string) []string {
	out := []string{initiator}
	inSelection := false
	for _, id := range selection {
		if id == initiator {
			inSelection = true
			break
		}
	}
	if !inSelection {
		return out
	}
	for _, id := range selection {
		if id != initiator {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}

// Start moves the session to Dragging with the given active nodes.
func (s *Session) Start(initiator string, nodes []string) error {
	if s.dragging {
		return ErrInProgress
	}
	s.dragging = true
	s.initiator = initiator
	s.active = make(map[string]struct{}, len(nodes))
	for _, id := range nodes {
		s.active[id] = struct{}{}
	}
	return nil
}

// Dragging reports whether a session is open.
func (s *Session) Dragging() bool {
	return s.dragging
}

// Initiator returns the node that started the open session, or "".
func (s *Session) Initiator() string {
	return s.initiator
}

// NodeIDs returns the sorted active set. It is empty when idle.
func (s *Session) NodeIDs() []string {
	out := make([]string, 0, len(s.active))
	for id := range s.active {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Contains reports whether id is in the active set.
func (s *Session) Contains(id string) bool {
	_, ok := s.active[id]
	return ok
}

// Forget drops id from the active set, used when a node is removed mid-drag.
// The session stays open even if the set becomes empty.
func (s *Session) Forget(id string) {
	delete(s.active, id)
}

// Finish returns the sorted active set and moves the session back to Idle.
// It returns nil when already idle.
func (s *Session) Finish() []string {
	if !s.dragging {
		return nil
	}
	ids := s.NodeIDs()
	s.dragging = false
	s.initiator = ""
	s.active = nil
	return ids
}
