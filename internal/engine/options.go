package engine

import (
	"github.com/dshills/shortcuts/internal/engine/casing"
	"github.com/dshills/shortcuts/internal/engine/word"
)

// Option configures an Engine during creation.
type Option func(*Engine)

// WithWordChars adds extra characters that count as part of a word.
func WithWordChars(extra string) Option {
	return func(e *Engine) {
		e.words = word.NewClassifier(extra)
	}
}

// WithClassifier sets the word classifier.
func WithClassifier(cl *word.Classifier) Option {
	return func(e *Engine) {
		if cl != nil {
			e.words = cl
		}
	}
}

// WithCaser sets the case converter. Without it the engine builds one
// that shares the engine's word classifier.
func WithCaser(c *casing.Caser) Option {
	return func(e *Engine) {
		e.caser = c
	}
}

