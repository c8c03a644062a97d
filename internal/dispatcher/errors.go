package dispatcher

import "errors"

// Dispatcher errors.
var (
	// ErrUnknownAction indicates no handler accepts the action name.
	ErrUnknownAction = errors.New("dispatcher: unknown action")

	// ErrPanic indicates the handler panicked.
	ErrPanic = errors.New("dispatcher: handler panic")

	// ErrCountTooLarge indicates a repeat count above Config.MaxRepeatCount.
	ErrCountTooLarge = errors.New("dispatcher: repeat count too large")
)
