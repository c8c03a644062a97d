package engine

import (
	"sort"

	"github.com/dshills/shortcuts/internal/engine/buffer"
	"github.com/dshills/shortcuts/internal/engine/cursor"
)

// lineBlock is a run of lines edited once on behalf of every member
// selection whose key span overlaps it.
type lineBlock struct {
	first   int
	last    int
	members []int
}

// spanFunc returns the lines an operation touches for a selection.
type spanFunc func(sel Selection) (first, last int)

// step is the outcome of editing one block.
type step struct {
	edit  Edit
	apply bool
	place func(sel Selection) Selection
}

// groupLines collects selections into blocks of overlapping spans,
// ordered from the top of the document.
func groupLines(ss *cursor.SelectionSet, span spanFunc) []lineBlock {
	blocks := make([]lineBlock, ss.Count())
	for i := range blocks {
		first, last := span(ss.Get(i))
		blocks[i] = lineBlock{first: first, last: last, members: []int{i}}
	}
	sort.SliceStable(blocks, func(i, j int) bool {
		if blocks[i].first != blocks[j].first {
			return blocks[i].first < blocks[j].first
		}
		return blocks[i].last < blocks[j].last
	})

	merged := blocks[:0]
	for _, b := range blocks {
		if n := len(merged); n > 0 && b.first <= merged[n-1].last {
			top := &merged[n-1]
			if b.last > top.last {
				top.last = b.last
			}
			top.members = append(top.members, b.members...)
			continue
		}
		merged = append(merged, b)
	}
	return merged
}

// eachLineBlock edits the document one block at a time, bottom-up.
// Selections already placed below a block are shifted through its edit,
// so every result is expressed in final document coordinates.
func eachLineBlock(st State, span spanFunc, edit func(doc *buffer.Document, b lineBlock) step) State {
	st = st.normalize()
	doc := st.Doc.Clone()
	sels := st.Selections
	tr := cursor.NewTracker(sels.Count())

	blocks := groupLines(sels, span)
	for k := len(blocks) - 1; k >= 0; k-- {
		b := blocks[k]
		s := edit(doc, b)
		if s.apply {
			if err := doc.Apply(s.edit); err != nil {
				s.place = keep
			} else {
				tr.Apply(s.edit)
			}
		}
		for _, i := range b.members {
			tr.Record(i, s.place(sels.Get(i)))
		}
	}
	return State{Doc: doc, Selections: tr.Set(sels).Clamp(doc)}
}

func keep(sel Selection) Selection { return sel }

func at(p Point) func(Selection) Selection {
	return func(Selection) Selection { return cursor.NewCursorSelection(p) }
}

func headLine(sel Selection) (int, int) { return sel.Head.Line, sel.Head.Line }

func lastLine(sel Selection) (int, int) { return sel.LastLine(), sel.LastLine() }

func lineSpan(sel Selection) (int, int) { return sel.FirstLine(), sel.LastLine() }
