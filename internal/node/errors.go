package node

import "errors"

var (
	// ErrNilNode is returned when a nil node is passed where a child is required.
	ErrNilNode = errors.New("node: nil node")
	// ErrAlreadyOwned is returned when attaching a child that is still attached
	// to a different owner. Detach it from its current owner first.
	ErrAlreadyOwned = errors.New("node: child already attached to another owner")
	// ErrCycle is returned when an attachment would make a node its own ancestor.
	ErrCycle = errors.New("node: attachment would create an ownership cycle")
)

// NotFound is the sentinel returned by score lookups for keys that were never set.
const NotFound = -1
