package engine

import (
	"github.com/dshills/shortcuts/internal/engine/buffer"
	"github.com/dshills/shortcuts/internal/engine/cursor"
	"github.com/dshills/shortcuts/internal/engine/pairs"
)

// ExpandSelectionToBrackets selects the text inside the nearest bracket
// pair enclosing each selection. Selections without one are unchanged.
func (e *Engine) ExpandSelectionToBrackets(st State) State {
	return e.expand(st, e.pairs.EnclosingBracket)
}

// ExpandSelectionToQuotes selects the text inside the nearest quote pair
// enclosing each selection. Selections without one are unchanged.
func (e *Engine) ExpandSelectionToQuotes(st State) State {
	return e.expand(st, e.pairs.EnclosingQuote)
}

type finder func(text []rune, from, to int) (pairs.Match, bool)

func (e *Engine) expand(st State, find finder) State {
	var text []rune
	return mapSelections(st, func(doc *buffer.Document, sel Selection) Selection {
		if text == nil {
			text = []rune(doc.Text())
		}
		m, ok := find(text, doc.Offset(sel.Start()), doc.Offset(sel.End()))
		if !ok {
			return sel
		}
		from, to := m.Inner()
		return cursor.NewSelection(doc.PointAt(from), doc.PointAt(to))
	})
}
