package engine

import (
	"fmt"
	"strings"

	"github.com/dshills/shortcuts/internal/engine/buffer"
)

// Host is the editor that owns a document. The engine reads a snapshot
// through it and writes results back as one edit followed by the new
// selections.
type Host interface {
	// LineCount returns the number of lines. At least 1.
	LineCount() int
	// Line returns the text of line n.
	Line(n int) string
	// TextRange returns the text between two positions.
	TextRange(r PointRange) string
	// Selections returns the current selections.
	Selections() []Selection

	Insert(at Point, text string) error
	Delete(r PointRange) error
	Replace(r PointRange, text string) error
	SetSelections(sels []Selection) error
}

// Change describes what Execute wrote back to a host.
type Change struct {
	// Edit is the single edit covering every changed character.
	// Valid only when Changed is true.
	Edit Edit
	// Changed reports whether the document changed.
	Changed bool
	// Moved reports whether any selection changed.
	Moved bool
	// Selections are the selections set on the host.
	Selections []Selection
}

// Snapshot reads the document and selections of a host.
// Lines holding a line break are split, so a Snapshot always satisfies
// the Document invariant even when its positions no longer match h.
func Snapshot(h Host) State {
	n := h.LineCount()
	lines := make([]string, n)
	for i := range lines {
		lines[i] = h.Line(i)
	}
	return NewState(lines, h.Selections()...)
}

// Execute runs op against the host's current document and writes the
// result back: one Insert, Delete or Replace covering the changed region,
// then SetSelections.
func (e *Engine) Execute(h Host, op Op) (Change, error) {
	if h == nil {
		return Change{}, ErrNilHost
	}

	for i := range h.LineCount() {
		if strings.Contains(h.Line(i), buffer.LineSeparator) {
			return Change{}, fmt.Errorf("%w: line %d contains a line break", ErrInvalidLine, i)
		}
	}

	before := Snapshot(h)
	after := op(before.Clone())

	var ch Change
	if edit, ok := buffer.Diff(before.Doc, after.Doc); ok {
		if err := writeEdit(h, edit); err != nil {
			return Change{}, fmt.Errorf("apply %s: %w", edit, err)
		}
		ch.Edit, ch.Changed = edit, true
	}

	ch.Selections = after.Selections.All()
	ch.Moved = !before.Selections.Equals(after.Selections)
	if err := h.SetSelections(ch.Selections); err != nil {
		return ch, fmt.Errorf("set selections: %w", err)
	}
	return ch, nil
}

func writeEdit(h Host, edit Edit) error {
	switch {
	case edit.IsInsert():
		return h.Insert(edit.Range.Start, edit.NewText)
	case edit.IsDelete():
		return h.Delete(edit.Range)
	default:
		return h.Replace(edit.Range, edit.NewText)
	}
}
