package mtx

import "errors"

// Sentinel errors for Matrix-Market parsing.
var (
	// ErrEmptyFile indicates the input contained no non-comment lines.
	ErrEmptyFile = errors.New("mtx: empty input")

	// ErrMalformedHeader indicates the dimension line was missing or did
	// not parse as "rows cols entries".
	ErrMalformedHeader = errors.New("mtx: malformed dimension line")

	// ErrMalformedEntry indicates a coordinate line did not parse as
	// "row col [value]".
	ErrMalformedEntry = errors.New("mtx: malformed coordinate entry")
)
