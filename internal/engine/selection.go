package engine

import (
	"fmt"
	"strings"

	"github.com/dshills/shortcuts/internal/engine/buffer"
	"github.com/dshills/shortcuts/internal/engine/cursor"
)

// Direction selects a line boundary.
type Direction uint8

const (
	// DirectionStart is column 0.
	DirectionStart Direction = iota
	// DirectionEnd is the end of the line.
	DirectionEnd
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionStart:
		return "start"
	case DirectionEnd:
		return "end"
	default:
		return "unknown"
	}
}

// ParseDirection parses "start" or "end" (case-insensitive).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "start":
		return DirectionStart, nil
	case "end":
		return DirectionEnd, nil
	default:
		return 0, fmt.Errorf("%w: direction %q", ErrInvalidArgument, s)
	}
}

// SelectWord expands each cursor to the word it touches. Cursors outside
// any word and non-empty selections are unchanged.
func (e *Engine) SelectWord(st State) State {
	return mapSelections(st, func(doc *buffer.Document, sel Selection) Selection {
		if !sel.IsEmpty() {
			return sel
		}
		p := sel.Head
		span, ok := e.words.At(doc.Line(p.Line), p.Ch)
		if !ok {
			return sel
		}
		return cursor.NewSelection(
			Point{Line: p.Line, Ch: span.Start},
			Point{Line: p.Line, Ch: span.End},
		)
	})
}

// SelectLine selects every line a selection touches, including the line
// break after the last one. On the last line the selection ends at the
// end of the document.
func (e *Engine) SelectLine(st State) State {
	return mapSelections(st, func(doc *buffer.Document, sel Selection) Selection {
		head := Point{Line: sel.LastLine() + 1}
		if head.Line > doc.LastLine() {
			head = doc.LineEnd(sel.LastLine())
		}
		return cursor.NewSelection(Point{Line: sel.FirstLine()}, head)
	})
}

// GoToLineBoundary collapses each selection to a cursor at the start of
// its first line or the end of its last line.
func (e *Engine) GoToLineBoundary(st State, dir Direction) State {
	return mapSelections(st, func(doc *buffer.Document, sel Selection) Selection {
		if dir == DirectionEnd {
			return cursor.NewCursorSelection(doc.LineEnd(sel.LastLine()))
		}
		return cursor.NewCursorSelection(Point{Line: sel.FirstLine()})
	})
}

// GoToLineStart is GoToLineBoundary with DirectionStart.
func (e *Engine) GoToLineStart(st State) State {
	return e.GoToLineBoundary(st, DirectionStart)
}

// GoToLineEnd is GoToLineBoundary with DirectionEnd.
func (e *Engine) GoToLineEnd(st State) State {
	return e.GoToLineBoundary(st, DirectionEnd)
}
