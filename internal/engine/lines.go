package engine

import (
	"strings"
	"unicode/utf8"

	"github.com/dshills/shortcuts/internal/engine/buffer"
	"github.com/dshills/shortcuts/internal/engine/cursor"
)

// InsertLineAbove inserts an empty line above the line holding each
// selection's head and moves the cursor onto it.
func (e *Engine) InsertLineAbove(st State) State {
	return eachLineBlock(st, headLine, func(doc *buffer.Document, b lineBlock) step {
		p := Point{Line: b.first}
		return step{edit: buffer.NewInsert(p, "\n"), apply: true, place: at(p)}
	})
}

// InsertLineBelow inserts a line below each selection's last line. The new
// line repeats the leading whitespace of that line and the cursor lands at
// the end of it.
func (e *Engine) InsertLineBelow(st State) State {
	return eachLineBlock(st, lastLine, func(doc *buffer.Document, b lineBlock) step {
		indent := leadingWhitespace(doc.Line(b.last))
		return step{
			edit:  buffer.NewInsert(doc.LineEnd(b.last), "\n"+indent),
			apply: true,
			place: at(Point{Line: b.last + 1, Ch: utf8.RuneCountInString(indent)}),
		}
	})
}

// DeleteSelectedLines removes every line touched by a selection. The cursor
// moves to the start of the line that takes the first deleted line's
// place, or to the new last line when nothing follows.
func (e *Engine) DeleteSelectedLines(st State) State {
	out := eachLineBlock(st, lineSpan, func(doc *buffer.Document, b lineBlock) step {
		switch {
		case b.last < doc.LastLine():
			r := PointRange{Start: Point{Line: b.first}, End: Point{Line: b.last + 1}}
			return step{edit: buffer.NewDelete(r), apply: true, place: at(Point{Line: b.first})}
		case b.first > 0:
			r := PointRange{Start: doc.LineEnd(b.first - 1), End: doc.LineEnd(b.last)}
			return step{edit: buffer.NewDelete(r), apply: true, place: at(Point{Line: b.first - 1})}
		default:
			r := PointRange{End: doc.End()}
			return step{edit: buffer.NewDelete(r), apply: true, place: at(Point{})}
		}
	})
	// Later deletions may pull a placed cursor onto the end of a line.
	out.Selections = out.Selections.Map(func(_ int, sel Selection) Selection {
		return cursor.NewCursorSelection(Point{Line: sel.Head.Line})
	})
	return out
}

// JoinLines appends the line after each selection's last line to it,
// separated by one space. The joined line's leading whitespace is dropped
// and a blank joined line adds no space. The cursor lands where the two
// lines meet. Selections on the last line are left alone.
func (e *Engine) JoinLines(st State) State {
	return eachLineBlock(st, lastLine, func(doc *buffer.Document, b lineBlock) step {
		if b.last >= doc.LastLine() {
			return step{place: keep}
		}
		next := doc.Line(b.last + 1)
		indent := leadingWhitespace(next)
		sep := " "
		if len(indent) == len(next) {
			sep = ""
		}
		join := doc.LineEnd(b.last)
		r := PointRange{
			Start: join,
			End:   Point{Line: b.last + 1, Ch: utf8.RuneCountInString(indent)},
		}
		return step{edit: buffer.NewEdit(r, sep), apply: true, place: at(join)}
	})
}

// DuplicateLine copies the lines touched by each selection below
// themselves. The selection moves onto the copy, keeping its columns.
func (e *Engine) DuplicateLine(st State) State {
	return eachLineBlock(st, lineSpan, func(doc *buffer.Document, b lineBlock) step {
		lines := make([]string, 0, b.last-b.first+1)
		for l := b.first; l <= b.last; l++ {
			lines = append(lines, doc.Line(l))
		}
		n := len(lines)
		return step{
			edit:  buffer.NewInsert(doc.LineEnd(b.last), "\n"+strings.Join(lines, "\n")),
			apply: true,
			place: func(sel Selection) Selection { return sel.ShiftLines(n) },
		}
	})
}

func leadingWhitespace(s string) string {
	return s[:len(s)-len(strings.TrimLeft(s, " \t"))]
}
