// Package selection provides handlers that move or grow selections
// without editing text.
//
//   - select.word: expand each cursor to the word it touches
//   - select.line: select whole lines, ending at the start of the next one
//   - select.lineStart, select.lineEnd: collapse to a line boundary
//   - select.boundary: as above, with the direction given as an argument
//   - select.brackets: grow to the innermost enclosing bracket pair
//   - select.quotes: grow to the innermost enclosing quote pair
//
// Register with the dispatcher:
//
//	d.RegisterNamespace(selection.NewHandler())
package selection
