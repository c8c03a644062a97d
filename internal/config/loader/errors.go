package loader

import (
	"errors"
	"fmt"
)

// Include errors.
var (
	// ErrIncludeDepth indicates more than MaxIncludeDepth nested includes.
	ErrIncludeDepth = errors.New("include depth exceeded")

	// ErrIncludeCycle indicates a file that includes itself, directly or
	// through others.
	ErrIncludeCycle = errors.New("include cycle")
)

// ParseError reports a syntax error in a settings file. Line and Column
// are 1-based and zero when unknown.
type ParseError struct {
	Path    string
	Format  Format
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	where := e.Path
	switch {
	case e.Line > 0 && e.Column > 0:
		where = fmt.Sprintf("%s:%d:%d", e.Path, e.Line, e.Column)
	case e.Line > 0:
		where = fmt.Sprintf("%s:%d", e.Path, e.Line)
	}
	return fmt.Sprintf("%s: invalid %s: %s", where, e.Format, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
