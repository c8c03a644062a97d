package pairs

// EnclosingBracket returns the nearest bracket pair that encloses
// [from, to) in text. Nested pairs of any kind are skipped by depth.
// A closing bracket of the wrong kind, or an unterminated opening bracket,
// ends the search without a match.
func (m *Matcher) EnclosingBracket(text []rune, from, to int) (Match, bool) {
	from, to = clampSpan(len(text), from, to)

	var pending []rune
	for i := from - 1; i >= 0; i-- {
		r := text[i]
		if _, ok := m.closer(r); ok {
			pending = append(pending, r)
			continue
		}
		p, ok := m.opener(r)
		if !ok {
			continue
		}
		if n := len(pending); n > 0 {
			if pending[n-1] != p.Close {
				return Match{}, false
			}
			pending = pending[:n-1]
			continue
		}

		c, ok := m.closingBracket(text, i, p)
		if !ok {
			return Match{}, false
		}
		if c >= to {
			return Match{Open: i, Close: c}, true
		}
	}
	return Match{}, false
}

// closingBracket finds the bracket that closes the opener at open.
func (m *Matcher) closingBracket(text []rune, open int, p Pair) (int, bool) {
	var stack []rune
	for j := open + 1; j < len(text); j++ {
		r := text[j]
		if q, ok := m.opener(r); ok {
			stack = append(stack, q.Close)
			continue
		}
		if _, ok := m.closer(r); !ok {
			continue
		}
		n := len(stack)
		if n == 0 {
			if r == p.Close {
				return j, true
			}
			return 0, false
		}
		if stack[n-1] != r {
			return 0, false
		}
		stack = stack[:n-1]
	}
	return 0, false
}

func clampSpan(n, from, to int) (int, int) {
	if from > to {
		from, to = to, from
	}
	if from < 0 {
		from = 0
	}
	if to > n {
		to = n
	}
	if from > to {
		from = to
	}
	return from, to
}
