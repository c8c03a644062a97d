package line

import (
	"github.com/dshills/shortcuts/internal/dispatcher/execctx"
	"github.com/dshills/shortcuts/internal/dispatcher/handler"
	"github.com/dshills/shortcuts/internal/engine"
	"github.com/dshills/shortcuts/internal/input"
)

// Action names for line operations.
const (
	ActionInsertAbove = "line.insertAbove"
	ActionInsertBelow = "line.insertBelow"
	ActionDelete      = "line.delete"
	ActionJoin        = "line.join"
	ActionDuplicate   = "line.duplicate"
)

var actions = []string{
	ActionDelete,
	ActionDuplicate,
	ActionInsertAbove,
	ActionInsertBelow,
	ActionJoin,
}

// Handler implements the line namespace.
type Handler struct{}

// NewHandler creates a new line handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Namespace returns the line namespace.
func (h *Handler) Namespace() string {
	return "line"
}

// CanHandle returns true if this handler can process the action.
func (h *Handler) CanHandle(actionName string) bool {
	return h.op(nil, actionName) != nil
}

// Actions returns the handled action names, sorted.
func (h *Handler) Actions() []string {
	out := make([]string, len(actions))
	copy(out, actions)
	return out
}

// HandleAction processes a line action.
func (h *Handler) HandleAction(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	if err := ctx.ValidateForEdit(); err != nil {
		return handler.Error(err)
	}
	op := h.op(ctx.Engine, action.Name)
	if op == nil {
		return handler.Errorf("unknown line action: %s", action.Name)
	}
	return handler.Run(ctx, op)
}

func (h *Handler) op(e *engine.Engine, name string) engine.Op {
	switch name {
	case ActionInsertAbove:
		return e.InsertLineAbove
	case ActionInsertBelow:
		return e.InsertLineBelow
	case ActionDelete:
		return e.DeleteSelectedLines
	case ActionJoin:
		return e.JoinLines
	case ActionDuplicate:
		return e.DuplicateLine
	default:
		return nil
	}
}
