// Package word classifies word characters and finds word boundaries.
//
// A word is a run of grapheme clusters whose first code point is a
// letter, a digit, an underscore, or one of a configurable set of extra
// characters. Stepping by grapheme cluster keeps combining marks attached
// to the letter they modify. All offsets are character (code point)
// offsets within a single line.
package word

import (
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Span is a half-open [Start, End) character range within a line.
type Span struct {
	Start int
	End   int
}

// Len returns the number of characters in the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Classifier decides which characters belong to words.
// The zero value treats only letters, digits and '_' as word characters.
type Classifier struct {
	extra map[rune]struct{}
}

// NewClassifier creates a classifier that also accepts every character
// in extra as part of a word.
func NewClassifier(extra string) *Classifier {
	c := &Classifier{extra: make(map[rune]struct{}, utf8.RuneCountInString(extra))}
	for _, r := range extra {
		c.extra[r] = struct{}{}
	}
	return c
}

// ExtraChars returns the configured extra word characters.
func (c *Classifier) ExtraChars() string {
	out := make([]rune, 0, len(c.extra))
	for r := range c.extra {
		out = append(out, r)
	}
	return string(out)
}

// IsWordChar returns true if r is part of a word.
func (c *Classifier) IsWordChar(r rune) bool {
	if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
		return true
	}
	if c == nil {
		return false
	}
	_, ok := c.extra[r]
	return ok
}

// cluster is one grapheme cluster with its character span.
type cluster struct {
	Span
	word bool
}

func (c *Classifier) clusters(s string) []cluster {
	var out []cluster
	pos := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		runes := g.Runes()
		out = append(out, cluster{
			Span: Span{Start: pos, End: pos + len(runes)},
			word: c.IsWordChar(runes[0]),
		})
		pos += len(runes)
	}
	return out
}

// At returns the word touching character offset ch in line.
// The character after ch is preferred; the character before ch is used
// when the cursor sits just past the end of a word.
func (c *Classifier) At(line string, ch int) (Span, bool) {
	cls := c.clusters(line)
	if len(cls) == 0 {
		return Span{}, false
	}

	idx := -1
	for i, cl := range cls {
		if ch >= cl.Start && ch < cl.End && cl.word {
			idx = i
			break
		}
		if cl.End == ch && cl.word {
			idx = i
		}
		if cl.Start > ch {
			break
		}
	}
	if idx < 0 {
		return Span{}, false
	}

	first, last := idx, idx
	for first > 0 && cls[first-1].word {
		first--
	}
	for last < len(cls)-1 && cls[last+1].word {
		last++
	}
	return Span{Start: cls[first].Start, End: cls[last].End}, true
}

// Words returns the spans of every word in s, in order.
func (c *Classifier) Words(s string) []Span {
	var spans []Span
	inWord := false
	for _, cl := range c.clusters(s) {
		switch {
		case cl.word && inWord:
			spans[len(spans)-1].End = cl.End
		case cl.word:
			spans = append(spans, cl.Span)
			inWord = true
		default:
			inWord = false
		}
	}
	return spans
}
