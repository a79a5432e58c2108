package graph

import "errors"

// Sentinel errors for graph construction and mutation.
var (
	// ErrNegativeVertex indicates a vertex id < 0 was supplied.
	ErrNegativeVertex = errors.New("graph: vertex id must be >= 0")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("graph: self-loop not allowed")

	// ErrNegativeWeight indicates a negative edge weight was supplied; the
	// label-propagation probability algebra assumes non-negative weights.
	ErrNegativeWeight = errors.New("graph: edge weight must be >= 0")
)
