package cursor

import (
	"github.com/dshills/shortcuts/internal/engine/buffer"
)

// Edit is an alias for buffer.Edit for convenience.
type Edit = buffer.Edit

// TransformPoint updates a point after an edit.
//
// Transformation rules:
//   - If the edit ends at or before p: p moves by the edit's line and
//     character delta (an insertion exactly at p pushes p forward)
//   - If the edit starts after p: p is unchanged
//   - If the edit spans p: p moves to the end of the new text
func TransformPoint(p Point, edit Edit) Point {
	r := edit.Range

	if !p.Before(r.End) {
		newEnd := edit.NewEnd()
		if p.Line == r.End.Line {
			return Point{Line: newEnd.Line, Ch: newEnd.Ch + (p.Ch - r.End.Ch)}
		}
		return Point{Line: p.Line + edit.LineDelta(), Ch: p.Ch}
	}

	if !r.Start.Before(p) {
		return p
	}

	return edit.NewEnd()
}

// TransformSelection updates a selection after an edit.
// Both anchor and head are transformed independently.
func TransformSelection(sel Selection, edit Edit) Selection {
	return Selection{
		Anchor: TransformPoint(sel.Anchor, edit),
		Head:   TransformPoint(sel.Head, edit),
	}
}

// Tracker holds selections produced while a batch of edits is applied
// bottom-up. Every recorded selection is shifted through each later edit,
// so results stay valid regardless of processing order.
type Tracker struct {
	results []Selection
	done    []bool
}

// NewTracker creates a tracker for n selections.
func NewTracker(n int) *Tracker {
	return &Tracker{
		results: make([]Selection, n),
		done:    make([]bool, n),
	}
}

// Record stores the final selection for index i as of the current document.
func (t *Tracker) Record(i int, sel Selection) {
	t.results[i] = sel
	t.done[i] = true
}

// Apply shifts every recorded selection through edit.
func (t *Tracker) Apply(edit Edit) {
	if edit.IsNoOp() {
		return
	}
	for i, ok := range t.done {
		if ok {
			t.results[i] = TransformSelection(t.results[i], edit)
		}
	}
}

// Result returns the recorded selection for i, or fallback if none was
// recorded.
func (t *Tracker) Result(i int, fallback Selection) Selection {
	if !t.done[i] {
		return fallback
	}
	return t.results[i]
}

// Set builds a SelectionSet from the recorded results, using fallback for
// indexes that were never recorded.
func (t *Tracker) Set(fallback *SelectionSet) *SelectionSet {
	sels := make([]Selection, len(t.results))
	for i := range sels {
		sels[i] = t.Result(i, fallback.Get(i))
	}
	return NewSelectionSet(sels...)
}
