package buffer

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Edit represents a text edit operation.
// It specifies a range to replace and the new text.
type Edit struct {
	Range   PointRange // The range to replace
	NewText string     // The replacement text
}

// NewEdit creates a new Edit.
func NewEdit(r PointRange, newText string) Edit {
	return Edit{Range: r, NewText: newText}
}

// NewInsert creates an Edit that inserts text at a position.
func NewInsert(at Point, text string) Edit {
	return Edit{
		Range:   PointRange{Start: at, End: at},
		NewText: text,
	}
}

// NewDelete creates an Edit that deletes a range of text.
func NewDelete(r PointRange) Edit {
	return Edit{Range: r}
}

// String returns a human-readable representation of the edit.
func (e Edit) String() string {
	if e.Range.IsEmpty() {
		return fmt.Sprintf("Insert(%s, %q)", e.Range.Start.String(), e.NewText)
	}
	if e.NewText == "" {
		return fmt.Sprintf("Delete%s", e.Range.String())
	}
	return fmt.Sprintf("Replace%s with %q", e.Range.String(), e.NewText)
}

// IsInsert returns true if this is a pure insertion (empty range).
func (e Edit) IsInsert() bool {
	return e.Range.IsEmpty() && e.NewText != ""
}

// IsDelete returns true if this is a pure deletion (empty replacement).
func (e Edit) IsDelete() bool {
	return !e.Range.IsEmpty() && e.NewText == ""
}

// IsNoOp returns true if this edit does nothing.
func (e Edit) IsNoOp() bool {
	return e.Range.IsEmpty() && e.NewText == ""
}

// NewEnd returns the position just after the inserted text once the edit
// has been applied.
func (e Edit) NewEnd() Point {
	nl := strings.Count(e.NewText, "\n")
	if nl == 0 {
		return Point{
			Line: e.Range.Start.Line,
			Ch:   e.Range.Start.Ch + utf8.RuneCountInString(e.NewText),
		}
	}
	last := e.NewText[strings.LastIndexByte(e.NewText, '\n')+1:]
	return Point{
		Line: e.Range.Start.Line + nl,
		Ch:   utf8.RuneCountInString(last),
	}
}

// LineDelta returns the change in line count caused by this edit.
func (e Edit) LineDelta() int {
	return strings.Count(e.NewText, "\n") - (e.Range.End.Line - e.Range.Start.Line)
}
