package buffer

// Diff returns the single edit that transforms old into updated, covering
// the smallest changed region. ok is false when the documents are equal.
func Diff(old, updated *Document) (e Edit, ok bool) {
	if old.Equal(updated) {
		return Edit{}, false
	}

	a := []rune(old.Text())
	b := []rune(updated.Text())

	prefix := 0
	for prefix < len(a) && prefix < len(b) && a[prefix] == b[prefix] {
		prefix++
	}

	suffix := 0
	for suffix < len(a)-prefix && suffix < len(b)-prefix &&
		a[len(a)-1-suffix] == b[len(b)-1-suffix] {
		suffix++
	}

	r := PointRange{
		Start: old.PointAt(prefix),
		End:   old.PointAt(len(a) - suffix),
	}
	return NewEdit(r, string(b[prefix:len(b)-suffix])), true
}
