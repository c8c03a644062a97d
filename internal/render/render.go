// Package render draws a document and its selections as plain text.
//
// Each line is followed, when a selection touches it, by a marker line:
// "~" under selected characters and "^" at each selection head. Columns
// are display columns, so wide characters and tabs line up.
//
//	hello world
//	      ~~~~~^
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/shortcuts/internal/engine"
	"github.com/dshills/shortcuts/internal/engine/buffer"
	"github.com/dshills/shortcuts/internal/engine/cursor"
)

// Options control rendering.
type Options struct {
	// TabSize is the tab stop width. Values below 1 mean 4.
	TabSize int
	// LineNumbers prefixes each line with its 0-based number.
	LineNumbers bool
}

// DefaultOptions returns tab size 4 without line numbers.
func DefaultOptions() Options {
	return Options{TabSize: 4}
}

// DisplayColumn converts a character column to a display column, expanding
// tabs and counting wide characters twice.
func DisplayColumn(line string, ch, tabSize int) int {
	col := 0
	for i, r := range []rune(line) {
		if i >= ch {
			break
		}
		col += cellWidth(r, col, tabSize)
	}
	return col
}

func cellWidth(r rune, col, tabSize int) int {
	if r == '\t' {
		return tabSize - col%tabSize
	}
	return runewidth.RuneWidth(r)
}

// expandTabs replaces tabs with spaces up to the next tab stop.
func expandTabs(line string, tabSize int) string {
	if !strings.ContainsRune(line, '\t') {
		return line
	}
	var sb strings.Builder
	col := 0
	for _, r := range line {
		w := cellWidth(r, col, tabSize)
		if r == '\t' {
			sb.WriteString(strings.Repeat(" ", w))
		} else {
			sb.WriteRune(r)
		}
		col += w
	}
	return sb.String()
}

// Write renders st to w.
func Write(w io.Writer, st engine.State, opts Options) error {
	if opts.TabSize < 1 {
		opts.TabSize = 4
	}
	sels := st.Selections.All()
	gutter := len(fmt.Sprint(st.Doc.LastLine()))

	for n, line := range st.Doc.Lines() {
		prefix := ""
		if opts.LineNumbers {
			prefix = fmt.Sprintf("%*d| ", gutter, n)
		}
		if _, err := fmt.Fprintf(w, "%s%s\n", prefix, expandTabs(line, opts.TabSize)); err != nil {
			return err
		}

		marks := markerLine(line, n, sels, opts.TabSize)
		if marks == "" {
			continue
		}
		if opts.LineNumbers {
			prefix = strings.Repeat(" ", gutter) + "| "
		}
		if _, err := fmt.Fprintf(w, "%s%s\n", prefix, marks); err != nil {
			return err
		}
	}
	return nil
}

// String renders st with opts.
func String(st engine.State, opts Options) string {
	var sb strings.Builder
	_ = Write(&sb, st, opts)
	return sb.String()
}

// markerLine returns the marker line for line n, or "" when no selection
// touches it.
func markerLine(line string, n int, sels []cursor.Selection, tabSize int) string {
	runes := []rune(line)
	width := DisplayColumn(line, len(runes), tabSize)
	cells := make([]rune, width+1)
	for i := range cells {
		cells[i] = ' '
	}

	touched := false
	for _, sel := range sels {
		start, end := sel.Start(), sel.End()
		if n < start.Line || n > end.Line {
			continue
		}
		touched = true

		from, to := 0, len(runes)
		if n == start.Line {
			from = start.Ch
		}
		if n == end.Line {
			to = end.Ch
		}
		for ch := from; ch < to; ch++ {
			c0 := DisplayColumn(line, ch, tabSize)
			c1 := DisplayColumn(line, ch+1, tabSize)
			for c := c0; c < c1; c++ {
				cells[c] = '~'
			}
		}
	}
	if !touched {
		return ""
	}
	for _, sel := range sels {
		if sel.Head.Line == n {
			cells[DisplayColumn(line, sel.Head.Ch, tabSize)] = '^'
		}
	}
	return strings.TrimRight(string(cells), " ")
}

// Point formats p as "line:ch".
func Point(p buffer.Point) string {
	return fmt.Sprintf("%d:%d", p.Line, p.Ch)
}

// Selection formats a cursor as "line:ch" and a range as
// "anchor-head", e.g. "0:6-1:5".
func Selection(sel cursor.Selection) string {
	if sel.IsEmpty() {
		return Point(sel.Head)
	}
	return Point(sel.Anchor) + "-" + Point(sel.Head)
}

// Selections formats every selection, comma separated.
func Selections(sels []cursor.Selection) string {
	parts := make([]string, len(sels))
	for i, sel := range sels {
		parts[i] = Selection(sel)
	}
	return strings.Join(parts, ", ")
}
