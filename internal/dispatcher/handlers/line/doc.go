// Package line provides handlers for whole-line editing.
//
// Every action works on all selections at once. Selections that touch the
// same lines are edited together, so a line is never inserted, removed or
// duplicated twice by one action.
//
//   - line.insertAbove: open an empty line above each head
//   - line.insertBelow: open a line below each selection, keeping indentation
//   - line.delete: remove every line a selection touches
//   - line.join: join the last selected line with the next one
//   - line.duplicate: copy the selected lines below themselves
//
// Register with the dispatcher:
//
//	d.RegisterNamespace(line.NewHandler())
package line
