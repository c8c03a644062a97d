package handler

import (
	"fmt"

	"github.com/dshills/shortcuts/internal/engine/buffer"
	"github.com/dshills/shortcuts/internal/engine/cursor"
)

// ResultStatus indicates the outcome of an action.
type ResultStatus uint8

const (
	// StatusOK indicates successful execution.
	StatusOK ResultStatus = iota
	// StatusNoOp indicates the action had no effect.
	StatusNoOp
	// StatusError indicates an error occurred.
	StatusError
)

// String returns a string representation of the status.
func (s ResultStatus) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoOp:
		return "no-op"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Result represents the outcome of handling an action.
type Result struct {
	// Status indicates the result status.
	Status ResultStatus

	// Error contains any error that occurred.
	Error error

	// Edits contains text edits that were applied, in order.
	Edits []buffer.Edit

	// Selections are the selections after the action.
	Selections []cursor.Selection

	// Data holds handler-specific return data.
	Data map[string]interface{}
}

// IsOK returns true if the result indicates success.
func (r Result) IsOK() bool {
	return r.Status == StatusOK
}

// IsError returns true if the result indicates an error.
func (r Result) IsError() bool {
	return r.Status == StatusError
}

// Success creates a successful result.
func Success() Result {
	return Result{Status: StatusOK}
}

// NoOp creates a no-operation result.
func NoOp() Result {
	return Result{Status: StatusNoOp}
}

// Error creates an error result.
func Error(err error) Result {
	return Result{Status: StatusError, Error: err}
}

// Errorf creates an error result with a formatted message.
func Errorf(format string, args ...interface{}) Result {
	return Result{
		Status: StatusError,
		Error:  fmt.Errorf(format, args...),
	}
}

// WithEdit returns a copy of the result with an edit added.
func (r Result) WithEdit(edit buffer.Edit) Result {
	r.Edits = append(r.Edits, edit)
	return r
}

// WithSelections returns a copy of the result with the final selections.
func (r Result) WithSelections(sels []cursor.Selection) Result {
	r.Selections = sels
	return r
}

// WithData returns a copy of the result with data added.
func (r Result) WithData(key string, value interface{}) Result {
	if r.Data == nil {
		r.Data = make(map[string]interface{})
	}
	r.Data[key] = value
	return r
}

// GetData retrieves a value from the result data.
func (r Result) GetData(key string) (interface{}, bool) {
	if r.Data == nil {
		return nil, false
	}
	v, ok := r.Data[key]
	return v, ok
}

// Merge folds a later result into r, as when an action repeats. Edits
// accumulate, the later selections win, and the status is OK if either
// run changed something.
func (r Result) Merge(next Result) Result {
	if next.IsError() {
		return next
	}
	out := r
	out.Edits = append(append([]buffer.Edit(nil), r.Edits...), next.Edits...)
	if next.Selections != nil {
		out.Selections = next.Selections
	}
	if next.Status == StatusOK {
		out.Status = StatusOK
	}
	for k, v := range next.Data {
		out = out.WithData(k, v)
	}
	return out
}
