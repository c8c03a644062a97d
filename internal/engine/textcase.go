package engine

import (
	"sort"

	"github.com/dshills/shortcuts/internal/engine/buffer"
	"github.com/dshills/shortcuts/internal/engine/casing"
	"github.com/dshills/shortcuts/internal/engine/cursor"
)

// TransformCase converts the text of each selection, or of the word under
// each cursor, to mode. Selections keep their bounds; when the mapping
// changes the text length, ends at the end of the converted text move
// with it. Overlapping selections are converted once as a unit.
func (e *Engine) TransformCase(st State, mode casing.Mode) State {
	st = st.normalize()
	doc := st.Doc.Clone()
	sels := st.Selections
	tr := cursor.NewTracker(sels.Count())

	blocks := e.caseBlocks(doc, sels)
	for k := len(blocks) - 1; k >= 0; k-- {
		b := blocks[k]
		old := doc.TextRange(b.r)
		edit := buffer.NewEdit(b.r, e.caser.Apply(mode, old))
		if edit.NewText != old {
			if err := doc.Apply(edit); err != nil {
				edit = buffer.NewEdit(b.r, old)
			} else {
				tr.Apply(edit)
			}
		}
		for _, i := range b.members {
			sel := sels.Get(i)
			tr.Record(i, cursor.NewSelection(
				placeAfterCase(sel.Anchor, edit),
				placeAfterCase(sel.Head, edit),
			))
		}
	}
	return State{Doc: doc, Selections: tr.Set(sels).Clamp(doc)}
}

// UpperCase is TransformCase with casing.ModeUpper.
func (e *Engine) UpperCase(st State) State { return e.TransformCase(st, casing.ModeUpper) }

// LowerCase is TransformCase with casing.ModeLower.
func (e *Engine) LowerCase(st State) State { return e.TransformCase(st, casing.ModeLower) }

// TitleCase is TransformCase with casing.ModeTitle.
func (e *Engine) TitleCase(st State) State { return e.TransformCase(st, casing.ModeTitle) }

type rangeBlock struct {
	r       PointRange
	members []int
}

// caseBlocks returns the ranges to convert, merged where they overlap and
// ordered from the top of the document. Cursors outside words, and so
// without a range, are members of no block and stay as they are.
func (e *Engine) caseBlocks(doc *buffer.Document, sels *cursor.SelectionSet) []rangeBlock {
	var blocks []rangeBlock
	for i := 0; i < sels.Count(); i++ {
		sel := sels.Get(i)
		r := sel.Range()
		if r.IsEmpty() {
			span, ok := e.words.At(doc.Line(r.Start.Line), r.Start.Ch)
			if !ok {
				continue
			}
			r = PointRange{
				Start: Point{Line: r.Start.Line, Ch: span.Start},
				End:   Point{Line: r.Start.Line, Ch: span.End},
			}
		}
		blocks = append(blocks, rangeBlock{r: r, members: []int{i}})
	}
	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].r.Start.Before(blocks[j].r.Start)
	})

	merged := blocks[:0]
	for _, b := range blocks {
		if n := len(merged); n > 0 && b.r.Start.Before(merged[n-1].r.End) {
			top := &merged[n-1]
			top.r.End = buffer.MaxPoint(top.r.End, b.r.End)
			top.members = append(top.members, b.members...)
			continue
		}
		merged = append(merged, b)
	}
	return merged
}

// placeAfterCase maps a point inside a converted range. Only a point at
// the end of the range follows a change of length.
func placeAfterCase(p Point, edit Edit) Point {
	if p == edit.Range.End {
		return edit.NewEnd()
	}
	return p
}
