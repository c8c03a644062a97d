package engine

import "errors"

// Errors returned by engine operations.
var (
	// ErrInvalidArgument indicates an operation argument has an unknown value.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidPosition indicates a host reported a position it cannot hold.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrInvalidLine indicates a host reported a line holding a line break.
	ErrInvalidLine = errors.New("invalid line")

	// ErrNilHost indicates Execute was called without a host.
	ErrNilHost = errors.New("nil host")
)
