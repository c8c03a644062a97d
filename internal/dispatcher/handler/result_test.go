package handler

import (
	"errors"
	"testing"

	"github.com/dshills/shortcuts/internal/dispatcher/execctx"
	"github.com/dshills/shortcuts/internal/engine"
	"github.com/dshills/shortcuts/internal/engine/buffer"
	"github.com/dshills/shortcuts/internal/engine/cursor"
	"github.com/dshills/shortcuts/internal/host"
)

func TestStatusString(t *testing.T) {
	tests := map[ResultStatus]string{
		StatusOK:         "ok",
		StatusNoOp:       "no-op",
		StatusError:      "error",
		ResultStatus(99): "unknown",
	}
	for s, want := range tests {
		if got := s.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", s, got, want)
		}
	}
}

func TestResultBuilders(t *testing.T) {
	r := NoOp().WithData("k", 1)
	if r.Status != StatusNoOp {
		t.Errorf("unexpected result %+v", r)
	}
	if v, ok := r.GetData("k"); !ok || v != 1 {
		t.Errorf("GetData = %v, %v", v, ok)
	}

	err := errors.New("boom")
	if r := Error(err); !r.IsError() || !errors.Is(r.Error, err) {
		t.Errorf("Error(err) = %+v", r)
	}
	if r := Errorf("bad %d", 1); r.Error.Error() != "bad 1" {
		t.Errorf("Errorf message = %q", r.Error)
	}
}

func TestMerge(t *testing.T) {
	e1 := buffer.NewInsert(buffer.Point{}, "a")
	e2 := buffer.NewInsert(buffer.Point{}, "b")
	sel := []cursor.Selection{cursor.NewCursorSelection(buffer.Point{Ch: 2})}

	r := NoOp().Merge(Success().WithEdit(e1)).Merge(NoOp().WithEdit(e2).WithSelections(sel))
	if r.Status != StatusOK {
		t.Errorf("status = %v, want ok", r.Status)
	}
	if len(r.Edits) != 2 {
		t.Errorf("edits = %d, want 2", len(r.Edits))
	}
	if len(r.Selections) != 1 || r.Selections[0].Head.Ch != 2 {
		t.Errorf("selections = %v", r.Selections)
	}

	if got := r.Merge(Errorf("x")); !got.IsError() {
		t.Error("merging an error should yield the error")
	}
}

func newContext(text string, sels ...cursor.Selection) (*execctx.ExecutionContext, *host.Buffer) {
	h := host.New(text, sels...)
	return execctx.New().WithEngine(engine.New()).WithHost(h), h
}

func TestRun(t *testing.T) {
	e := engine.New()
	at := func(line, ch int) cursor.Selection {
		return cursor.NewCursorSelection(buffer.Point{Line: line, Ch: ch})
	}

	t.Run("edit", func(t *testing.T) {
		ctx, h := newContext("a\nb", at(0, 0))
		r := Run(ctx, e.JoinLines)
		if !r.IsOK() || len(r.Edits) != 1 {
			t.Fatalf("result = %+v", r)
		}
		if h.Text() != "a b" {
			t.Errorf("text = %q", h.Text())
		}
	})

	t.Run("selection only", func(t *testing.T) {
		ctx, _ := newContext("word", at(0, 1))
		r := Run(ctx, e.SelectWord)
		if !r.IsOK() || len(r.Edits) != 0 {
			t.Fatalf("result = %+v", r)
		}
	})

	t.Run("no-op", func(t *testing.T) {
		ctx, _ := newContext("a\nb", at(1, 0))
		if r := Run(ctx, e.JoinLines); r.Status != StatusNoOp {
			t.Errorf("status = %v, want no-op", r.Status)
		}
	})

	t.Run("count", func(t *testing.T) {
		ctx, h := newContext("a", at(0, 0))
		ctx.WithCount(3)
		r := Run(ctx, e.DuplicateLine)
		if h.Text() != "a\na\na\na" {
			t.Errorf("text = %q", h.Text())
		}
		if len(r.Edits) != 3 {
			t.Errorf("edits = %d, want 3", len(r.Edits))
		}
	})

	t.Run("dry run", func(t *testing.T) {
		ctx, h := newContext("a\nb", at(0, 0))
		ctx.WithDryRun(true)
		r := Run(ctx, e.JoinLines)
		if h.Text() != "a\nb" {
			t.Error("dry run wrote to the host")
		}
		v, ok := r.GetData(DataState)
		if !ok || v.(engine.State).Text() != "a b" {
			t.Errorf("dry-run state = %v", v)
		}
	})

	t.Run("missing host", func(t *testing.T) {
		ctx := execctx.New().WithEngine(e)
		if r := Run(ctx, e.JoinLines); !errors.Is(r.Error, execctx.ErrMissingHost) {
			t.Errorf("error = %v, want ErrMissingHost", r.Error)
		}
	})
}
