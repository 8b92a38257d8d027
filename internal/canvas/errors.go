package canvas

import (
	"errors"
	"fmt"
)

// ErrValidation is matched by every validation failure: duplicate ids,
// dangling connection endpoints and empty node sets. Validation errors are
// returned before anything is mutated.
var ErrValidation = errors.New("validation failed")

// DuplicateIDError is returned when an entity id is already in use.
type DuplicateIDError struct {
	Entity string // "node", "connection" or "annotation"
	ID     string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("%s '%s' already exists", e.Entity, e.ID)
}

// Is lets errors.Is(err, ErrValidation) succeed.
func (e *DuplicateIDError) Is(target error) bool {
	return target == ErrValidation
}

// DanglingReferenceError is returned when a connection references a node or
// port that does not exist.
type DanglingReferenceError struct {
	ConnectionID string
	NodeID       string
	// PortID is empty when the node itself is missing.
	PortID string
}

func (e *DanglingReferenceError) Error() string {
	if e.PortID == "" {
		return fmt.Sprintf("connection '%s' references missing node '%s'", e.ConnectionID, e.NodeID)
	}
	return fmt.Sprintf("connection '%s' references missing port '%s' on node '%s'", e.ConnectionID, e.PortID, e.NodeID)
}

// Is lets errors.Is(err, ErrValidation) succeed.
func (e *DanglingReferenceError) Is(target error) bool {
	return target == ErrValidation
}

// EmptyNodeSetError is returned when a derived construction needs at least
// one resolvable node.
type EmptyNodeSetError struct {
	Requested []string
}

func (e *EmptyNodeSetError) Error() string {
	if len(e.Requested) == 0 {
		return "no node ids given"
	}
	return fmt.Sprintf("none of the %d requested node ids exist", len(e.Requested))
}

// Is lets errors.Is(err, ErrValidation) succeed.
func (e *EmptyNodeSetError) Is(target error) bool {
	return target == ErrValidation
}
