package pairs

// EnclosingQuote returns the nearest quote pair that encloses [from, to)
// in text. Opening candidates are tried from the selection outward; each
// pairs only with the first identical quote character at or after to, so
// a ' never closes a ".
func (m *Matcher) EnclosingQuote(text []rune, from, to int) (Match, bool) {
	from, to = clampSpan(len(text), from, to)

	next := make(map[rune]int, len(m.quotes))
	for j := to; j < len(text) && len(next) < len(m.quotes); j++ {
		r := text[j]
		if !m.isQuote(r) {
			continue
		}
		if _, seen := next[r]; !seen {
			next[r] = j
		}
	}

	for i := from - 1; i >= 0; i-- {
		r := text[i]
		if !m.isQuote(r) {
			continue
		}
		if c, ok := next[r]; ok {
			return Match{Open: i, Close: c}, true
		}
	}
	return Match{}, false
}
