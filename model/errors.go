package model

import "errors"

// Error kinds reported by the grid and table operations. All errors returned
// by this package wrap one of these sentinels, so callers can classify
// failures with errors.Is.
var (
	// ErrNotFound reports a coordinate not covered by any cell, or a merge
	// target that contains no cells.
	ErrNotFound = errors.New("no cell found")

	// ErrCollision reports an attempted insertion of a cell whose box
	// intersects an existing cell.
	ErrCollision = errors.New("cell collision")

	// ErrInvalidBounds reports malformed box bounds: non-positive
	// coordinates or an inverted min/max pair.
	ErrInvalidBounds = errors.New("invalid bounds")

	// ErrAmbiguousMerge reports a merge whose target box partially overlaps
	// a cell. The shape of the intended merge is ambiguous, so there is no
	// safe automatic resolution.
	ErrAmbiguousMerge = errors.New("ambiguous merge")

	// ErrContentMismatch reports an attempt to combine two cell contents of
	// different kinds with the default appender.
	ErrContentMismatch = errors.New("mismatched content kinds")
)
