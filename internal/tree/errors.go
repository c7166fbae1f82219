package tree

import "errors"

// Validation errors
var (
	// ErrNilNode indicates an empty entry in a node list, such as a null
	// in a seed file.
	ErrNilNode = errors.New("node entry is empty")

	// ErrEmptyID indicates a node without an identifier.
	ErrEmptyID = errors.New("node id is empty")

	// ErrDuplicateID indicates an identifier used by more than one node.
	ErrDuplicateID = errors.New("duplicate node id")

	// ErrInvalidState indicates a node that is both loading and open.
	ErrInvalidState = errors.New("node is loading and open at once")
)

// Move rejection reasons, reported by MoveCheck.
var (
	// ErrSameNode indicates a node dropped onto itself.
	ErrSameNode = errors.New("node dropped onto itself")

	// ErrNotFound indicates an id that does not resolve to a node.
	ErrNotFound = errors.New("node not found")

	// ErrCycle indicates a node dropped onto one of its own descendants.
	ErrCycle = errors.New("node dropped onto its own descendant")
)
