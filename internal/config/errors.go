package config

import "errors"

// Errors returned by configuration operations.
var (
	// ErrTypeMismatch indicates a value of the wrong type for its setting.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrValidationFailed indicates a well-typed but unusable value.
	ErrValidationFailed = errors.New("validation failed")
)
