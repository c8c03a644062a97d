// Package engine provides the selection transform engine for shortcuts.
//
// The engine is a set of editing operations over a document and its
// selections: line operations, word and line selection, case conversion
// and expansion to enclosing brackets or quotes. Every operation is a pure
// function from one State to the next; the engine keeps no state between
// calls and holds only configuration.
//
// # Architecture
//
// The engine is built on several sub-packages:
//
//   - buffer: Document (a never-empty slice of lines), Point, Edit, Diff
//   - cursor: Selection, SelectionSet, and edit transforms for positions
//   - word: word-character classification by grapheme cluster
//   - casing: locale-aware upper, lower and title case
//   - pairs: enclosing bracket and quote search
//
// # Multiple Selections
//
// Operations handle any number of selections in one call. Line operations
// group selections that touch the same lines and edit each group once,
// from the bottom of the document to the top. Results already placed are
// shifted through every later edit, so inserting or deleting lines moves
// every other selection by exactly that many lines. The selection list
// keeps its order: result i always belongs to input i.
//
// # Basic Usage
//
//	e := engine.New()
//	st := engine.NewStateFromText("lorem ipsum\ndolor sit\namet",
//		cursor.NewCursorSelection(engine.Point{Line: 1}))
//
//	st = e.JoinLines(st)
//	st.Text() // "lorem ipsum\ndolor sit amet"
//
// # Hosts
//
// An editor that owns its buffer implements Host. Execute reads a
// snapshot, runs an operation, and writes the difference back as a single
// Insert, Delete or Replace followed by SetSelections:
//
//	change, err := e.Execute(host, e.DuplicateLine)
package engine
