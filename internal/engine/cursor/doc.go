// Package cursor provides selection management for the transform engine.
//
// The cursor package handles:
//
//   - Text selections with the anchor/head model via Selection
//   - Ordered multi-selection lists via SelectionSet
//   - Point and selection transformation after document edits
//   - Bottom-up batch processing via Tracker
//
// Selection Model:
//
// Selections use an anchor/head model where:
//   - Anchor: The position where the selection started
//   - Head: The current cursor position (where typing would occur)
//
// When Anchor == Head, the selection represents just a cursor with no
// selected text. The selection can extend forward (head > anchor) or
// backward (head < anchor), preserving the user's selection direction.
//
// Multi-Selection Support:
//
// SelectionSet keeps selections in the order the host supplied them.
// Line operations group the selections into blocks of touched lines and
// edit those blocks from the bottom of the document up. A Tracker shifts
// each recorded result through the edits that follow, and the results
// are written back at their original index, so index correspondence
// survives every edit.
//
// Basic usage:
//
//	ss := cursor.NewCursorSetAt(buffer.Point{Line: 1}, buffer.Point{Line: 3})
//
//	t := cursor.NewTracker(ss.Count())
//	for _, i := range []int{1, 0} { // bottom-up
//	    edit := buffer.NewInsert(buffer.Point{Line: ss.Get(i).Head.Line}, "\n")
//	    doc.Apply(edit)
//	    t.Apply(edit) // shift selections recorded so far
//	    t.Record(i, cursor.NewCursorSelection(edit.Range.Start))
//	}
//	ss = t.Set(ss)
//
// Thread Safety:
//
// Selection is an immutable value type and safe for concurrent use.
// SelectionSet and Tracker are not thread-safe.
package cursor
