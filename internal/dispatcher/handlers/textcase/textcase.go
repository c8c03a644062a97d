package textcase

import (
	"fmt"

	"github.com/dshills/shortcuts/internal/dispatcher/execctx"
	"github.com/dshills/shortcuts/internal/dispatcher/handler"
	"github.com/dshills/shortcuts/internal/engine"
	"github.com/dshills/shortcuts/internal/engine/casing"
	"github.com/dshills/shortcuts/internal/input"
)

// Action names for case operations.
const (
	ActionUpper     = "case.upper"
	ActionLower     = "case.lower"
	ActionTitle     = "case.title"
	ActionTransform = "case.transform"
)

// Handler implements the case namespace.
type Handler struct {
	*handler.BaseNamespaceHandler
}

// NewHandler creates a new case handler.
func NewHandler() *Handler {
	h := &Handler{BaseNamespaceHandler: handler.NewBaseNamespaceHandler("case")}
	h.Register(ActionUpper, fixed(casing.ModeUpper))
	h.Register(ActionLower, fixed(casing.ModeLower))
	h.Register(ActionTitle, fixed(casing.ModeTitle))
	h.Register(ActionTransform, transform)
	return h
}

func fixed(mode casing.Mode) func(input.Action, *execctx.ExecutionContext) handler.Result {
	return func(_ input.Action, ctx *execctx.ExecutionContext) handler.Result {
		return apply(ctx, mode)
	}
}

func transform(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	mode, err := casing.ParseMode(action.Args.Mode)
	if err != nil {
		return handler.Error(fmt.Errorf("%w: %w", engine.ErrInvalidArgument, err))
	}
	return apply(ctx, mode)
}

func apply(ctx *execctx.ExecutionContext, mode casing.Mode) handler.Result {
	if err := ctx.ValidateForEdit(); err != nil {
		return handler.Error(err)
	}
	e := ctx.Engine
	return handler.Run(ctx, func(st engine.State) engine.State {
		return e.TransformCase(st, mode)
	})
}
