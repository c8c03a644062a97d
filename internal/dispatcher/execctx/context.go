// Package execctx provides the execution context for action handlers.
package execctx

import (
	"github.com/dshills/shortcuts/internal/engine"
	"github.com/dshills/shortcuts/internal/logging"
)

// ExecutionContext carries what a handler needs to run one action.
type ExecutionContext struct {
	// Engine runs the operations.
	Engine *engine.Engine

	// Host owns the document and selections being edited.
	Host engine.Host

	// Logger receives handler diagnostics. Never nil after New.
	Logger *logging.Logger

	// Execution options
	Count  int  // Repeat count (1 if not specified)
	DryRun bool // If true, compute the result without writing to the host

	// Data holds handler-specific context data.
	Data map[string]interface{}
}

// New creates an empty execution context.
func New() *ExecutionContext {
	return &ExecutionContext{
		Logger: logging.Nop(),
		Count:  1,
		Data:   make(map[string]interface{}),
	}
}

// WithEngine sets the engine.
func (ctx *ExecutionContext) WithEngine(e *engine.Engine) *ExecutionContext {
	ctx.Engine = e
	return ctx
}

// WithHost sets the host.
func (ctx *ExecutionContext) WithHost(h engine.Host) *ExecutionContext {
	ctx.Host = h
	return ctx
}

// WithLogger sets the logger. A nil logger discards output.
func (ctx *ExecutionContext) WithLogger(l *logging.Logger) *ExecutionContext {
	if l == nil {
		l = logging.Nop()
	}
	ctx.Logger = l
	return ctx
}

// WithCount sets the repeat count.
func (ctx *ExecutionContext) WithCount(count int) *ExecutionContext {
	if count < 1 {
		count = 1
	}
	ctx.Count = count
	return ctx
}

// WithDryRun sets dry-run mode.
func (ctx *ExecutionContext) WithDryRun(dryRun bool) *ExecutionContext {
	ctx.DryRun = dryRun
	return ctx
}

// GetCount returns the repeat count, at least 1.
func (ctx *ExecutionContext) GetCount() int {
	if ctx.Count < 1 {
		return 1
	}
	return ctx.Count
}

// SetData stores a handler-specific value.
func (ctx *ExecutionContext) SetData(key string, value interface{}) {
	if ctx.Data == nil {
		ctx.Data = make(map[string]interface{})
	}
	ctx.Data[key] = value
}

// GetData retrieves a handler-specific value.
func (ctx *ExecutionContext) GetData(key string) (interface{}, bool) {
	if ctx.Data == nil {
		return nil, false
	}
	v, ok := ctx.Data[key]
	return v, ok
}

// Validate checks that the engine is set.
func (ctx *ExecutionContext) Validate() error {
	if ctx.Engine == nil {
		return ErrMissingEngine
	}
	return nil
}

// ValidateForEdit checks that the engine and host are set.
func (ctx *ExecutionContext) ValidateForEdit() error {
	if err := ctx.Validate(); err != nil {
		return err
	}
	if ctx.Host == nil {
		return ErrMissingHost
	}
	return nil
}
