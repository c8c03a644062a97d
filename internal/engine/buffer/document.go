package buffer

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// Errors returned by document operations.
var (
	ErrRangeInvalid = errors.New("invalid range")
)

// LineSeparator joins document lines.
const LineSeparator = "\n"

// Document is an ordered, never-empty sequence of lines.
// The zero value is not usable; use NewDocument or NewDocumentFromLines.
type Document struct {
	lines []string
}

// NewDocument creates a document from text. "\r\n" line endings are
// normalized to "\n".
func NewDocument(text string) *Document {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return &Document{lines: strings.Split(text, LineSeparator)}
}

// NewDocumentFromLines creates a document holding a copy of lines.
// An empty slice yields a single empty line. Entries that contain line
// breaks are split, so no line of a Document holds a separator.
func NewDocumentFromLines(lines []string) *Document {
	if len(lines) == 0 {
		return &Document{lines: []string{""}}
	}
	for _, l := range lines {
		if strings.Contains(l, LineSeparator) {
			return NewDocument(strings.Join(lines, LineSeparator))
		}
	}
	cp := make([]string, len(lines))
	copy(cp, lines)
	return &Document{lines: cp}
}

// Text returns the full document content.
func (d *Document) Text() string {
	return strings.Join(d.lines, LineSeparator)
}

// Lines returns a copy of the document lines.
func (d *Document) Lines() []string {
	cp := make([]string, len(d.lines))
	copy(cp, d.lines)
	return cp
}

// LineCount returns the number of lines. Always at least 1.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// LastLine returns the index of the last line.
func (d *Document) LastLine() int {
	return len(d.lines) - 1
}

// Line returns the text of line n, or "" if n is out of range.
func (d *Document) Line(n int) string {
	if n < 0 || n >= len(d.lines) {
		return ""
	}
	return d.lines[n]
}

// LineLen returns the length of line n in characters.
func (d *Document) LineLen(n int) int {
	return utf8.RuneCountInString(d.Line(n))
}

// LineEnd returns the position after the last character of line n.
func (d *Document) LineEnd(n int) Point {
	n = d.clampLine(n)
	return Point{Line: n, Ch: d.LineLen(n)}
}

// End returns the position after the last character of the document.
func (d *Document) End() Point {
	return d.LineEnd(d.LastLine())
}

// Clamp returns the nearest valid position to p.
func (d *Document) Clamp(p Point) Point {
	if p.Line < 0 {
		return Point{}
	}
	if p.Line >= len(d.lines) {
		return d.End()
	}
	if p.Ch < 0 {
		p.Ch = 0
	}
	if n := d.LineLen(p.Line); p.Ch > n {
		p.Ch = n
	}
	return p
}

// ClampRange clamps both ends of r and orders them.
func (d *Document) ClampRange(r PointRange) PointRange {
	return NewPointRange(d.Clamp(r.Start), d.Clamp(r.End))
}

func (d *Document) clampLine(n int) int {
	if n < 0 {
		return 0
	}
	if n >= len(d.lines) {
		return len(d.lines) - 1
	}
	return n
}

// TextRange returns the text between two positions.
func (d *Document) TextRange(r PointRange) string {
	r = d.ClampRange(r)
	if r.IsSingleLine() {
		return sliceRunes(d.lines[r.Start.Line], r.Start.Ch, r.End.Ch)
	}

	var sb strings.Builder
	sb.WriteString(sliceRunes(d.lines[r.Start.Line], r.Start.Ch, -1))
	for l := r.Start.Line + 1; l < r.End.Line; l++ {
		sb.WriteString(LineSeparator)
		sb.WriteString(d.lines[l])
	}
	sb.WriteString(LineSeparator)
	sb.WriteString(sliceRunes(d.lines[r.End.Line], 0, r.End.Ch))
	return sb.String()
}

// Offset converts a position to a character offset in Text().
func (d *Document) Offset(p Point) int {
	p = d.Clamp(p)
	off := 0
	for l := 0; l < p.Line; l++ {
		off += utf8.RuneCountInString(d.lines[l]) + 1
	}
	return off + p.Ch
}

// PointAt converts a character offset in Text() to a position.
func (d *Document) PointAt(offset int) Point {
	if offset <= 0 {
		return Point{}
	}
	for l, line := range d.lines {
		n := utf8.RuneCountInString(line)
		if offset <= n {
			return Point{Line: l, Ch: offset}
		}
		offset -= n + 1
	}
	return d.End()
}

// Apply applies an edit to the document. The edit range is clamped.
func (d *Document) Apply(e Edit) error {
	if !e.Range.IsValid() {
		return ErrRangeInvalid
	}
	r := d.ClampRange(e.Range)

	prefix := sliceRunes(d.lines[r.Start.Line], 0, r.Start.Ch)
	suffix := sliceRunes(d.lines[r.End.Line], r.End.Ch, -1)
	replacement := strings.Split(prefix+e.NewText+suffix, LineSeparator)

	lines := make([]string, 0, len(d.lines)-r.LineSpan()+len(replacement))
	lines = append(lines, d.lines[:r.Start.Line]...)
	lines = append(lines, replacement...)
	lines = append(lines, d.lines[r.End.Line+1:]...)
	d.lines = lines
	return nil
}

// Insert inserts text at a position.
func (d *Document) Insert(at Point, text string) error {
	return d.Apply(NewInsert(at, text))
}

// Delete removes the text in a range.
func (d *Document) Delete(r PointRange) error {
	return d.Apply(NewDelete(r))
}

// Replace replaces the text in a range.
func (d *Document) Replace(r PointRange, text string) error {
	return d.Apply(NewEdit(r, text))
}

// Clone returns an independent copy of the document.
func (d *Document) Clone() *Document {
	return NewDocumentFromLines(d.lines)
}

// Equal reports whether two documents hold the same lines.
func (d *Document) Equal(other *Document) bool {
	if other == nil || len(d.lines) != len(other.lines) {
		return false
	}
	for i := range d.lines {
		if d.lines[i] != other.lines[i] {
			return false
		}
	}
	return true
}

// sliceRunes returns s[from:to] in rune units. to < 0 means end of string.
func sliceRunes(s string, from, to int) string {
	start, end := -1, len(s)
	i := 0
	for b := range s {
		if i == from {
			start = b
		}
		if i == to {
			end = b
			break
		}
		i++
	}
	if start < 0 {
		if from >= i {
			return ""
		}
		start = 0
	}
	if end < start {
		return ""
	}
	return s[start:end]
}
