// Package app wires the settings, logger, engine and dispatcher together
// and provides document input and output for the command line.
package app

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrInitialization indicates an initialization failure.
	ErrInitialization = errors.New("initialization failed")

	// ErrClipboardUnavailable indicates no system clipboard could be used.
	ErrClipboardUnavailable = errors.New("clipboard unavailable")
)

// ComponentError represents an error from a specific component.
type ComponentError struct {
	Component string // Component name (e.g., "config", "watcher")
	Action    string // Action being performed
	Err       error  // Underlying error
}

// NewComponentError creates a new ComponentError.
func NewComponentError(component, action string, err error) *ComponentError {
	return &ComponentError{
		Component: component,
		Action:    action,
		Err:       err,
	}
}

func (e *ComponentError) Error() string {
	if e.Action != "" {
		return fmt.Sprintf("%s: %s: %v", e.Component, e.Action, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Component, e.Err)
}

func (e *ComponentError) Unwrap() error {
	return e.Err
}

// Is matches ErrInitialization for every component error raised while
// bootstrapping, and otherwise defers to the wrapped error.
func (e *ComponentError) Is(target error) bool {
	return target == ErrInitialization && e.Action == "init"
}
