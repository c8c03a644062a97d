package buffer

import "fmt"

// PointRange represents a range using line/character positions.
// Start is inclusive, End is exclusive.
type PointRange struct {
	Start Point // Inclusive start position
	End   Point // Exclusive end position
}

// NewPointRange creates a PointRange from two points in either order.
func NewPointRange(a, b Point) PointRange {
	if b.Before(a) {
		return PointRange{Start: b, End: a}
	}
	return PointRange{Start: a, End: b}
}

// String returns a human-readable representation of the range.
func (r PointRange) String() string {
	return fmt.Sprintf("[%s:%s)", r.Start.String(), r.End.String())
}

// IsEmpty returns true if start equals end.
func (r PointRange) IsEmpty() bool {
	return r.Start.Compare(r.End) == 0
}

// IsValid returns true if start <= end.
func (r PointRange) IsValid() bool {
	return r.Start.Compare(r.End) <= 0
}

// Contains returns true if the given point is within the range.
func (r PointRange) Contains(p Point) bool {
	return p.Compare(r.Start) >= 0 && p.Compare(r.End) < 0
}

// IsSingleLine returns true if the range spans only one line.
func (r PointRange) IsSingleLine() bool {
	return r.Start.Line == r.End.Line
}

// LineSpan returns the number of lines the range touches.
func (r PointRange) LineSpan() int {
	return r.End.Line - r.Start.Line + 1
}
