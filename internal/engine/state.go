package engine

import (
	"github.com/dshills/shortcuts/internal/engine/buffer"
	"github.com/dshills/shortcuts/internal/engine/cursor"
)

// State is a document and its selections: the input and output of every
// operation.
type State struct {
	Doc        *buffer.Document
	Selections *cursor.SelectionSet
}

// NewState builds a state from lines and selections. Selections are
// clamped into the document; no selections means a cursor at (0:0).
func NewState(lines []string, sels ...cursor.Selection) State {
	doc := buffer.NewDocumentFromLines(lines)
	return State{
		Doc:        doc,
		Selections: cursor.NewSelectionSet(sels...).Clamp(doc),
	}
}

// NewStateFromText builds a state from text split on "\n".
func NewStateFromText(text string, sels ...cursor.Selection) State {
	doc := buffer.NewDocument(text)
	return State{
		Doc:        doc,
		Selections: cursor.NewSelectionSet(sels...).Clamp(doc),
	}
}

// Lines returns a copy of the document lines.
func (s State) Lines() []string {
	return s.Doc.Lines()
}

// Text returns the document content.
func (s State) Text() string {
	return s.Doc.Text()
}

// Clone returns an independent copy of the state.
func (s State) Clone() State {
	return State{Doc: s.Doc.Clone(), Selections: s.Selections.Clone()}
}

// Equal reports whether two states hold the same document and selections.
func (s State) Equal(other State) bool {
	return s.Doc.Equal(other.Doc) && s.Selections.Equals(other.Selections)
}

// normalize fills in missing parts and clamps every selection.
func (s State) normalize() State {
	if s.Doc == nil {
		s.Doc = buffer.NewDocumentFromLines(nil)
	}
	if s.Selections == nil || s.Selections.Count() == 0 {
		s.Selections = cursor.NewSelectionSet()
	}
	s.Selections = s.Selections.Clamp(s.Doc)
	return s
}
