package selection

import (
	"github.com/dshills/shortcuts/internal/dispatcher/execctx"
	"github.com/dshills/shortcuts/internal/dispatcher/handler"
	"github.com/dshills/shortcuts/internal/engine"
	"github.com/dshills/shortcuts/internal/input"
)

// Action names for selection operations.
const (
	ActionWord      = "select.word"
	ActionLine      = "select.line"
	ActionLineStart = "select.lineStart"
	ActionLineEnd   = "select.lineEnd"
	ActionBoundary  = "select.boundary"
	ActionBrackets  = "select.brackets"
	ActionQuotes    = "select.quotes"
)

// Handler implements the select namespace.
type Handler struct {
	*handler.BaseNamespaceHandler
}

// NewHandler creates a new selection handler.
func NewHandler() *Handler {
	h := &Handler{BaseNamespaceHandler: handler.NewBaseNamespaceHandler("select")}

	h.Register(ActionWord, run((*engine.Engine).SelectWord))
	h.Register(ActionLine, run((*engine.Engine).SelectLine))
	h.Register(ActionLineStart, run((*engine.Engine).GoToLineStart))
	h.Register(ActionLineEnd, run((*engine.Engine).GoToLineEnd))
	h.Register(ActionBrackets, run((*engine.Engine).ExpandSelectionToBrackets))
	h.Register(ActionQuotes, run((*engine.Engine).ExpandSelectionToQuotes))
	h.Register(ActionBoundary, boundary)

	return h
}

func run(method func(*engine.Engine, engine.State) engine.State) func(input.Action, *execctx.ExecutionContext) handler.Result {
	return func(_ input.Action, ctx *execctx.ExecutionContext) handler.Result {
		if err := ctx.ValidateForEdit(); err != nil {
			return handler.Error(err)
		}
		e := ctx.Engine
		return handler.Run(ctx, func(st engine.State) engine.State {
			return method(e, st)
		})
	}
}

// boundary reads the direction from the action arguments. An empty
// direction means the line start.
func boundary(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	if err := ctx.ValidateForEdit(); err != nil {
		return handler.Error(err)
	}
	dir := engine.DirectionStart
	if action.Args.Direction != "" {
		d, err := engine.ParseDirection(action.Args.Direction)
		if err != nil {
			return handler.Error(err)
		}
		dir = d
	}
	e := ctx.Engine
	return handler.Run(ctx, func(st engine.State) engine.State {
		return e.GoToLineBoundary(st, dir)
	})
}
