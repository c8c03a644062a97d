package engine

import (
	"github.com/dshills/shortcuts/internal/engine/buffer"
	"github.com/dshills/shortcuts/internal/engine/casing"
	"github.com/dshills/shortcuts/internal/engine/cursor"
	"github.com/dshills/shortcuts/internal/engine/pairs"
	"github.com/dshills/shortcuts/internal/engine/word"
)

// Re-export commonly used types for convenience.
type (
	// Point is a line/character position.
	Point = buffer.Point

	// PointRange is an ordered pair of positions.
	PointRange = buffer.PointRange

	// Edit is a replacement of a range with new text.
	Edit = buffer.Edit

	// Selection is an anchor/head pair.
	Selection = cursor.Selection
)

// Op is an operation: it maps a state to a new state.
type Op func(State) State

// Engine runs selection transforms. It holds configuration only; every
// operation is a pure function of its input state, so one Engine may be
// shared between goroutines.
type Engine struct {
	words *word.Classifier
	caser *casing.Caser
	pairs *pairs.Matcher
}

// New creates an Engine with the given options.
func New(opts ...Option) *Engine {
	e := &Engine{
		words: word.NewClassifier(""),
		pairs: pairs.NewMatcher(nil, nil),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.caser == nil {
		e.caser = casing.New(casing.WithClassifier(e.words))
	}
	return e
}

// Words returns the engine's word classifier.
func (e *Engine) Words() *word.Classifier {
	return e.words
}

// Caser returns the engine's case converter.
func (e *Engine) Caser() *casing.Caser {
	return e.caser
}

// mapSelections replaces every selection without touching the document.
func mapSelections(st State, f func(doc *buffer.Document, sel Selection) Selection) State {
	st = st.normalize()
	doc := st.Doc.Clone()
	sels := st.Selections.Map(func(_ int, sel Selection) Selection {
		return f(doc, sel)
	})
	return State{Doc: doc, Selections: sels.Clamp(doc)}
}
