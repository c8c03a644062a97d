// Package pairs finds enclosing bracket and quote pairs.
//
// Searches run over a document flattened into one character stream, so
// line breaks are ordinary characters and pairs may span lines. Offsets
// are character offsets into that stream. A pair encloses a selection
// [from, to) when its opening delimiter is before from and its closing
// delimiter is at or after to.
package pairs

// Pair is an opening and closing delimiter.
type Pair struct {
	Open  rune
	Close rune
}

// Brackets are the bracket kinds recognised by default.
var Brackets = []Pair{
	{Open: '(', Close: ')'},
	{Open: '[', Close: ']'},
	{Open: '{', Close: '}'},
}

// Quotes are the quote characters recognised by default.
var Quotes = []rune{'\'', '"'}

// Match is a found pair. Open and Close are the delimiter offsets.
type Match struct {
	Open  int
	Close int
}

// Inner returns the offsets strictly between the delimiters.
func (m Match) Inner() (from, to int) {
	return m.Open + 1, m.Close
}

// Matcher searches for enclosing pairs.
type Matcher struct {
	brackets []Pair
	quotes   []rune
}

// NewMatcher creates a matcher for the given bracket pairs and quotes.
// Nil arguments fall back to Brackets and Quotes.
func NewMatcher(brackets []Pair, quotes []rune) *Matcher {
	if brackets == nil {
		brackets = Brackets
	}
	if quotes == nil {
		quotes = Quotes
	}
	return &Matcher{brackets: brackets, quotes: quotes}
}

func (m *Matcher) opener(r rune) (Pair, bool) {
	for _, p := range m.brackets {
		if p.Open == r {
			return p, true
		}
	}
	return Pair{}, false
}

func (m *Matcher) closer(r rune) (Pair, bool) {
	for _, p := range m.brackets {
		if p.Close == r {
			return p, true
		}
	}
	return Pair{}, false
}

func (m *Matcher) isQuote(r rune) bool {
	for _, q := range m.quotes {
		if q == r {
			return true
		}
	}
	return false
}
