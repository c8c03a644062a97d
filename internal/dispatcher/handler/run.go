package handler

import (
	"github.com/dshills/shortcuts/internal/dispatcher/execctx"
	"github.com/dshills/shortcuts/internal/engine"
)

// DataState is the Data key holding the computed engine.State of a
// dry run.
const DataState = "state"

// Run executes op against the context's host, ctx.GetCount() times.
// The result is OK when the document or any selection changed and NoOp
// otherwise. In dry-run mode the host is only read; the computed state is
// returned under DataState.
func Run(ctx *execctx.ExecutionContext, op engine.Op) Result {
	if err := ctx.ValidateForEdit(); err != nil {
		return Error(err)
	}

	if ctx.DryRun {
		before := engine.Snapshot(ctx.Host)
		after := before
		for i := 0; i < ctx.GetCount(); i++ {
			after = op(after)
		}
		status := StatusNoOp
		if !after.Equal(before) {
			status = StatusOK
		}
		r := Result{Status: status}.WithSelections(after.Selections.All())
		return r.WithData(DataState, after)
	}

	r := NoOp()
	for i := 0; i < ctx.GetCount(); i++ {
		ch, err := ctx.Engine.Execute(ctx.Host, op)
		if err != nil {
			return Error(err)
		}
		next := NoOp().WithSelections(ch.Selections)
		if ch.Changed {
			next = next.WithEdit(ch.Edit)
		}
		if ch.Changed || ch.Moved {
			next.Status = StatusOK
		}
		r = r.Merge(next)
	}
	return r
}
