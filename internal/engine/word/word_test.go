package word

import (
	"testing"
)

func TestIsWordChar(t *testing.T) {
	c := NewClassifier("-")

	tests := []struct {
		r    rune
		want bool
	}{
		{'a', true},
		{'Z', true},
		{'7', true},
		{'_', true},
		{'é', true},
		{'-', true},
		{' ', false},
		{'.', false},
		{'(', false},
	}

	for _, tc := range tests {
		if got := c.IsWordChar(tc.r); got != tc.want {
			t.Errorf("IsWordChar(%q) = %v, want %v", tc.r, got, tc.want)
		}
	}
}

func TestIsWordCharNilClassifier(t *testing.T) {
	var c *Classifier
	if !c.IsWordChar('a') {
		t.Error("nil classifier should accept letters")
	}
	if c.IsWordChar('-') {
		t.Error("nil classifier should have no extra characters")
	}
}

func TestAt(t *testing.T) {
	c := NewClassifier("")

	tests := []struct {
		name string
		line string
		ch   int
		want Span
		ok   bool
	}{
		{"start of word", "dolor sit", 0, Span{0, 5}, true},
		{"middle of word", "dolor sit", 2, Span{0, 5}, true},
		{"end of word", "dolor sit", 5, Span{0, 5}, true},
		{"prefers following word", "ab cd", 3, Span{3, 5}, true},
		{"end of line", "dolor sit", 9, Span{6, 9}, true},
		{"between spaces", "a   b", 2, Span{}, false},
		{"empty line", "", 0, Span{}, false},
		{"punctuation", "(lorem)", 0, Span{1, 6}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := c.At(tc.line, tc.ch)
			if ok != tc.ok {
				t.Fatalf("At(%q, %d) ok = %v, want %v", tc.line, tc.ch, ok, tc.ok)
			}
			if ok && got != tc.want {
				t.Errorf("At(%q, %d) = %v, want %v", tc.line, tc.ch, got, tc.want)
			}
		})
	}
}

func TestAtExtraChars(t *testing.T) {
	line := "use kebab-case here"

	plain, _ := NewClassifier("").At(line, 6)
	if plain != (Span{4, 9}) {
		t.Errorf("without extras expected {4 9}, got %v", plain)
	}

	extended, _ := NewClassifier("-").At(line, 6)
	if extended != (Span{4, 14}) {
		t.Errorf("with '-' expected {4 14}, got %v", extended)
	}
}

func TestAtCombiningMark(t *testing.T) {
	// "cafe" followed by a combining acute accent, then " ok".
	line := "cafe\u0301 ok"
	got, ok := NewClassifier("").At(line, 0)
	if !ok {
		t.Fatal("expected a word")
	}
	if got != (Span{0, 5}) {
		t.Errorf("combining mark should stay inside the word, got %v", got)
	}
}

func TestWords(t *testing.T) {
	spans := NewClassifier("").Words("an example, to_test!")
	want := []Span{{0, 2}, {3, 10}, {12, 19}}

	if len(spans) != len(want) {
		t.Fatalf("expected %d words, got %v", len(want), spans)
	}
	for i := range want {
		if spans[i] != want[i] {
			t.Errorf("word %d = %v, want %v", i, spans[i], want[i])
		}
	}
}

func TestWordsEmpty(t *testing.T) {
	if spans := NewClassifier("").Words("  ,. "); len(spans) != 0 {
		t.Errorf("expected no words, got %v", spans)
	}
}

func TestExtraChars(t *testing.T) {
	if got := NewClassifier("$").ExtraChars(); got != "$" {
		t.Errorf("expected %q, got %q", "$", got)
	}
}
