package term

import "errors"

// Sentinel errors for the term package.
var (
	// ErrInvalidSize is returned when buffer dimensions are invalid.
	ErrInvalidSize = errors.New("invalid buffer size")
)
