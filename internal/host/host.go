// Package host provides an in-memory editor buffer that implements
// engine.Host. It backs the command line, the protocol server and Lua
// scripts, none of which have an editor of their own.
package host

import (
	"fmt"
	"sync"

	"github.com/dshills/shortcuts/internal/engine"
	"github.com/dshills/shortcuts/internal/engine/buffer"
	"github.com/dshills/shortcuts/internal/engine/cursor"
)

var _ engine.Host = (*Buffer)(nil)

// Buffer is a document with selections. It is safe for concurrent use.
type Buffer struct {
	mu       sync.RWMutex
	doc      *buffer.Document
	sels     *cursor.SelectionSet
	revision uint64
}

// New creates a buffer holding text with the given selections.
// Without selections the buffer has a cursor at (0:0).
func New(text string, sels ...cursor.Selection) *Buffer {
	doc := buffer.NewDocument(text)
	return &Buffer{doc: doc, sels: cursor.NewSelectionSet(sels...).Clamp(doc)}
}

// NewFromLines creates a buffer from lines.
func NewFromLines(lines []string, sels ...cursor.Selection) *Buffer {
	doc := buffer.NewDocumentFromLines(lines)
	return &Buffer{doc: doc, sels: cursor.NewSelectionSet(sels...).Clamp(doc)}
}

// LineCount implements engine.Host.
func (b *Buffer) LineCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.doc.LineCount()
}

// Line implements engine.Host.
func (b *Buffer) Line(n int) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.doc.Line(n)
}

// TextRange implements engine.Host.
func (b *Buffer) TextRange(r buffer.PointRange) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.doc.TextRange(r)
}

// Selections implements engine.Host.
func (b *Buffer) Selections() []cursor.Selection {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.sels.All()
}

// Insert implements engine.Host.
func (b *Buffer) Insert(at buffer.Point, text string) error {
	return b.apply(buffer.NewInsert(at, text))
}

// Delete implements engine.Host.
func (b *Buffer) Delete(r buffer.PointRange) error {
	return b.apply(buffer.NewDelete(r))
}

// Replace implements engine.Host.
func (b *Buffer) Replace(r buffer.PointRange, text string) error {
	return b.apply(buffer.NewEdit(r, text))
}

func (b *Buffer) apply(e buffer.Edit) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.checkPoint(e.Range.Start); err != nil {
		return err
	}
	if err := b.checkPoint(e.Range.End); err != nil {
		return err
	}
	if err := b.doc.Apply(e); err != nil {
		return err
	}
	b.sels = b.sels.Map(func(_ int, sel cursor.Selection) cursor.Selection {
		return cursor.TransformSelection(sel, e)
	}).Clamp(b.doc)
	b.revision++
	return nil
}

// SetSelections implements engine.Host. Every position must lie inside
// the document.
func (b *Buffer) SetSelections(sels []cursor.Selection) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(sels) == 0 {
		return fmt.Errorf("%w: empty selection list", engine.ErrInvalidPosition)
	}
	for _, s := range sels {
		if err := b.checkPoint(s.Anchor); err != nil {
			return err
		}
		if err := b.checkPoint(s.Head); err != nil {
			return err
		}
	}
	b.sels = cursor.NewSelectionSet(sels...)
	return nil
}

func (b *Buffer) checkPoint(p buffer.Point) error {
	if b.doc.Clamp(p) != p {
		return fmt.Errorf("%w: %s", engine.ErrInvalidPosition, p)
	}
	return nil
}

// Text returns the document content.
func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.doc.Text()
}

// Lines returns a copy of the document lines.
func (b *Buffer) Lines() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.doc.Lines()
}

// State returns a copy of the buffer as an engine state.
func (b *Buffer) State() engine.State {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return engine.State{Doc: b.doc.Clone(), Selections: b.sels.Clone()}
}

// Revision returns the number of document edits applied so far.
func (b *Buffer) Revision() uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.revision
}
