package buffer

import "fmt"

// Point represents a line and character position.
// Both Line and Ch are 0-indexed. Ch counts Unicode code points from the
// start of the line.
type Point struct {
	Line int // 0-indexed line number
	Ch   int // 0-indexed character offset within the line
}

// String returns a human-readable representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Ch)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p Point) Compare(other Point) int {
	if p.Line < other.Line {
		return -1
	}
	if p.Line > other.Line {
		return 1
	}
	if p.Ch < other.Ch {
		return -1
	}
	if p.Ch > other.Ch {
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p Point) Before(other Point) bool {
	return p.Compare(other) < 0
}

// After returns true if p comes after other.
func (p Point) After(other Point) bool {
	return p.Compare(other) > 0
}

// MinPoint returns the earlier of two points.
func MinPoint(a, b Point) Point {
	if b.Before(a) {
		return b
	}
	return a
}

// MaxPoint returns the later of two points.
func MaxPoint(a, b Point) Point {
	if b.After(a) {
		return b
	}
	return a
}
