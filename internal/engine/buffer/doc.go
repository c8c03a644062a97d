// Package buffer provides the line-oriented document model used by the
// selection transform engine.
//
// The buffer package provides:
//
//   - Point and PointRange: line/character coordinates (characters are
//     Unicode code points, not bytes)
//   - Document: an ordered, never-empty slice of lines
//   - Edit: a replacement of a PointRange with new text
//   - Diff: the single Edit that turns one document into another
//
// Basic usage:
//
//	doc := buffer.NewDocument("lorem ipsum\ndolor sit\namet")
//
//	// Insert a blank line above line 1
//	doc.Insert(buffer.Point{Line: 1}, "\n")
//
//	// Read a range
//	text := doc.TextRange(buffer.NewPointRange(
//	    buffer.Point{Line: 0, Ch: 6},
//	    buffer.Point{Line: 2, Ch: 5},
//	))
//
// Positions handed to a Document are clamped to the nearest valid
// position. A Document is not safe for concurrent mutation.
package buffer
