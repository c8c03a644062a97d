package cursor

import (
	"fmt"

	"github.com/dshills/shortcuts/internal/engine/buffer"
)

// Point is an alias for buffer.Point for convenience.
type Point = buffer.Point

// PointRange is an alias for buffer.PointRange for convenience.
type PointRange = buffer.PointRange

// Selection represents a range of selected text.
// Anchor is where the selection started; Head is the current cursor position.
// When Anchor == Head, this represents a cursor with no selection.
// Selection is an immutable value type.
type Selection struct {
	Anchor Point // Where selection started
	Head   Point // Current cursor position (where typing occurs)
}

// NewSelection creates a selection from anchor to head.
func NewSelection(anchor, head Point) Selection {
	return Selection{Anchor: anchor, Head: head}
}

// NewCursorSelection creates a selection representing just a cursor (no extent).
func NewCursorSelection(p Point) Selection {
	return Selection{Anchor: p, Head: p}
}

// IsEmpty returns true if the selection has no extent (just a cursor).
func (s Selection) IsEmpty() bool {
	return s.Anchor == s.Head
}

// Range returns the selection as a range (always Start <= End).
func (s Selection) Range() PointRange {
	return buffer.NewPointRange(s.Anchor, s.Head)
}

// Start returns the lower bound of the selection.
func (s Selection) Start() Point {
	return buffer.MinPoint(s.Anchor, s.Head)
}

// End returns the upper bound of the selection.
func (s Selection) End() Point {
	return buffer.MaxPoint(s.Anchor, s.Head)
}

// FirstLine returns the first line the selection touches.
func (s Selection) FirstLine() int {
	return s.Start().Line
}

// LastLine returns the last line the selection touches.
func (s Selection) LastLine() int {
	return s.End().Line
}

// IsBackward returns true if the selection extends backward (head < anchor).
func (s Selection) IsBackward() bool {
	return s.Head.Before(s.Anchor)
}

// ShiftLines returns the selection moved by delta lines, columns unchanged.
func (s Selection) ShiftLines(delta int) Selection {
	return Selection{
		Anchor: Point{Line: s.Anchor.Line + delta, Ch: s.Anchor.Ch},
		Head:   Point{Line: s.Head.Line + delta, Ch: s.Head.Ch},
	}
}

// Clamp returns the selection with both ends clamped into doc.
func (s Selection) Clamp(doc *buffer.Document) Selection {
	return Selection{Anchor: doc.Clamp(s.Anchor), Head: doc.Clamp(s.Head)}
}

// String returns a string representation of the selection.
func (s Selection) String() string {
	if s.IsEmpty() {
		return fmt.Sprintf("Cursor%s", s.Head)
	}
	dir := "→"
	if s.IsBackward() {
		dir = "←"
	}
	return fmt.Sprintf("Selection(%s%s%s)", s.Anchor, dir, s.Head)
}

// Equals returns true if two selections have the same anchor and head.
func (s Selection) Equals(other Selection) bool {
	return s.Anchor == other.Anchor && s.Head == other.Head
}
