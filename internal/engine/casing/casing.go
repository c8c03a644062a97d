// Package casing implements upper, lower and title case conversion.
//
// Case mappings are locale aware (golang.org/x/text/cases). Title case
// lowercases the text, then capitalises the first letter of every word,
// leaving configured minor words ("the", "a", "an" by default) in lower
// case unless they open the text.
package casing

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dshills/shortcuts/internal/engine/word"
)

// ErrUnknownMode is returned when a case mode name is not recognised.
var ErrUnknownMode = errors.New("unknown case mode")

// Mode selects a case conversion.
type Mode uint8

const (
	// ModeUpper maps every character to upper case.
	ModeUpper Mode = iota
	// ModeLower maps every character to lower case.
	ModeLower
	// ModeTitle capitalises words, except minor words.
	ModeTitle
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeUpper:
		return "upper"
	case ModeLower:
		return "lower"
	case ModeTitle:
		return "title"
	default:
		return "unknown"
	}
}

// ParseMode parses a mode name ("upper", "lower", "title"; case-insensitive).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "upper", "uppercase":
		return ModeUpper, nil
	case "lower", "lowercase":
		return ModeLower, nil
	case "title", "titlecase":
		return ModeTitle, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// DefaultMinorWords are left lower case in title case unless they lead.
var DefaultMinorWords = []string{"the", "a", "an"}

// Caser converts text case. A Caser is safe for concurrent use; the
// underlying x/text casers are created per call.
type Caser struct {
	tag   language.Tag
	minor map[string]struct{}
	words *word.Classifier
}

// Option configures a Caser.
type Option func(*Caser)

// WithLocale sets the language used for case mappings.
func WithLocale(tag language.Tag) Option {
	return func(c *Caser) {
		c.tag = tag
	}
}

// WithMinorWords replaces the minor word set.
func WithMinorWords(words []string) Option {
	return func(c *Caser) {
		c.minor = make(map[string]struct{}, len(words))
		for _, w := range words {
			c.minor[strings.ToLower(w)] = struct{}{}
		}
	}
}

// WithClassifier sets the word classifier used to find title-case words.
func WithClassifier(cl *word.Classifier) Option {
	return func(c *Caser) {
		c.words = cl
	}
}

// New creates a Caser. Defaults: undetermined locale, DefaultMinorWords,
// and a classifier without extra word characters.
func New(opts ...Option) *Caser {
	c := &Caser{tag: language.Und}
	WithMinorWords(DefaultMinorWords)(c)
	for _, opt := range opts {
		opt(c)
	}
	if c.words == nil {
		c.words = word.NewClassifier("")
	}
	return c
}

// IsMinor reports whether w is a minor word.
func (c *Caser) IsMinor(w string) bool {
	_, ok := c.minor[strings.ToLower(w)]
	return ok
}

// Apply converts s using mode.
func (c *Caser) Apply(mode Mode, s string) string {
	switch mode {
	case ModeUpper:
		return cases.Upper(c.tag).String(s)
	case ModeLower:
		return cases.Lower(c.tag).String(s)
	case ModeTitle:
		return c.Title(s)
	default:
		return s
	}
}

// Title lowercases s and capitalises the first letter of each word. Minor
// words stay lower case unless they are the first word of s.
func (c *Caser) Title(s string) string {
	lower := cases.Lower(c.tag).String(s)
	runes := []rune(lower)
	title := cases.Title(c.tag, cases.NoLower)

	var sb strings.Builder
	sb.Grow(len(lower))
	prev := 0
	for i, span := range c.words.Words(lower) {
		sb.WriteString(string(runes[prev:span.Start]))
		w := string(runes[span.Start:span.End])
		if i > 0 && c.IsMinor(w) {
			sb.WriteString(w)
		} else {
			_, size := utf8.DecodeRuneInString(w)
			sb.WriteString(title.String(w[:size]))
			sb.WriteString(w[size:])
		}
		prev = span.End
	}
	sb.WriteString(string(runes[prev:]))
	return sb.String()
}
