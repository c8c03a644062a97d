package cursor

import (
	"github.com/dshills/shortcuts/internal/engine/buffer"
)

// SelectionSet is an ordered, non-empty list of selections.
// Unlike an editor cursor set it never sorts or merges its members: the
// index of every selection is stable across transformations, so callers
// can correlate results with their input.
type SelectionSet struct {
	selections []Selection
}

// NewSelectionSet creates a set from selections.
// An empty argument list yields a single cursor at (0:0).
func NewSelectionSet(sels ...Selection) *SelectionSet {
	if len(sels) == 0 {
		return &SelectionSet{selections: []Selection{{}}}
	}
	cp := make([]Selection, len(sels))
	copy(cp, sels)
	return &SelectionSet{selections: cp}
}

// NewCursorSetAt creates a set with one cursor per point.
func NewCursorSetAt(points ...Point) *SelectionSet {
	sels := make([]Selection, len(points))
	for i, p := range points {
		sels[i] = NewCursorSelection(p)
	}
	return NewSelectionSet(sels...)
}

// Primary returns the primary (first) selection.
func (ss *SelectionSet) Primary() Selection {
	return ss.selections[0]
}

// All returns a copy of all selections.
// The returned slice is safe to modify without affecting the set.
func (ss *SelectionSet) All() []Selection {
	result := make([]Selection, len(ss.selections))
	copy(result, ss.selections)
	return result
}

// Count returns the number of selections.
func (ss *SelectionSet) Count() int {
	return len(ss.selections)
}

// Get returns the selection at the given index.
// Returns an empty selection if index is out of range.
func (ss *SelectionSet) Get(index int) Selection {
	if index < 0 || index >= len(ss.selections) {
		return Selection{}
	}
	return ss.selections[index]
}

// Set replaces the selection at index. Out-of-range indexes are ignored.
func (ss *SelectionSet) Set(index int, sel Selection) {
	if index < 0 || index >= len(ss.selections) {
		return
	}
	ss.selections[index] = sel
}

// Map applies f to each selection and returns a new set.
func (ss *SelectionSet) Map(f func(index int, sel Selection) Selection) *SelectionSet {
	result := make([]Selection, len(ss.selections))
	for i, sel := range ss.selections {
		result[i] = f(i, sel)
	}
	return &SelectionSet{selections: result}
}

// Clamp returns a copy with every selection clamped into doc.
func (ss *SelectionSet) Clamp(doc *buffer.Document) *SelectionSet {
	return ss.Map(func(_ int, sel Selection) Selection {
		return sel.Clamp(doc)
	})
}

// Clone returns a deep copy of the set.
func (ss *SelectionSet) Clone() *SelectionSet {
	return NewSelectionSet(ss.selections...)
}

// Equals returns true if two sets have the same selections in the same order.
func (ss *SelectionSet) Equals(other *SelectionSet) bool {
	if other == nil || ss.Count() != other.Count() {
		return false
	}
	for i, sel := range ss.selections {
		if !sel.Equals(other.selections[i]) {
			return false
		}
	}
	return true
}
