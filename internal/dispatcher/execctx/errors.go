package execctx

import "errors"

// Context validation errors.
var (
	// ErrMissingEngine indicates the engine is required but not set.
	ErrMissingEngine = errors.New("execution context: engine is required")

	// ErrMissingHost indicates the host is required but not set.
	ErrMissingHost = errors.New("execution context: host is required")
)
