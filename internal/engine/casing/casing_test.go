package casing

import (
	"errors"
	"testing"

	"golang.org/x/text/language"

	"github.com/dshills/shortcuts/internal/engine/word"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{"upper", ModeUpper},
		{"LOWER", ModeLower},
		{"Title", ModeTitle},
		{"titlecase", ModeTitle},
	}

	for _, tc := range tests {
		got, err := ParseMode(tc.in)
		if err != nil {
			t.Fatalf("ParseMode(%q) error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ParseMode(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}

	if _, err := ParseMode("sponge"); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("expected ErrUnknownMode, got %v", err)
	}
}

func TestApplyUpperLower(t *testing.T) {
	c := New()

	if got := c.Apply(ModeUpper, "ipsum\ndolor"); got != "IPSUM\nDOLOR" {
		t.Errorf("upper = %q", got)
	}
	if got := c.Apply(ModeLower, "IPSUM\nDOLOR"); got != "ipsum\ndolor" {
		t.Errorf("lower = %q", got)
	}
}

func TestCaseRoundTrip(t *testing.T) {
	c := New()
	original := "lorem ipsum dolor sit amet"
	if got := c.Apply(ModeLower, c.Apply(ModeUpper, original)); got != original {
		t.Errorf("round trip = %q, want %q", got, original)
	}
}

func TestTitle(t *testing.T) {
	c := New()

	tests := []struct {
		in, want string
	}{
		{"dolor", "Dolor"},
		{"ipsum\ndolor", "Ipsum\nDolor"},
		{
			"AN EXAMPLE TO TEST THE OBSIDIAN PLUGIN AND A CASE CONVERSION FEATURE",
			"An Example To Test the Obsidian Plugin And a Case Conversion Feature",
		},
		{"the end", "The End"},
		{"  a b", "  A b"},
		{"hello, world!", "Hello, World!"},
		{"", ""},
	}

	for _, tc := range tests {
		if got := c.Title(tc.in); got != tc.want {
			t.Errorf("Title(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTitleCustomMinorWords(t *testing.T) {
	c := New(WithMinorWords([]string{"of", "AND"}))

	got := c.Title("lord of the rings and more")
	want := "Lord of The Rings and More"
	if got != want {
		t.Errorf("Title = %q, want %q", got, want)
	}
	if !c.IsMinor("And") {
		t.Error("minor word match should be case-insensitive")
	}
}

func TestTitleUsesClassifier(t *testing.T) {
	plain := New()
	if got := plain.Title("kebab-case"); got != "Kebab-Case" {
		t.Errorf("Title = %q", got)
	}

	dashed := New(WithClassifier(word.NewClassifier("-")))
	if got := dashed.Title("kebab-case"); got != "Kebab-case" {
		t.Errorf("Title with '-' word char = %q", got)
	}
}

func TestLocale(t *testing.T) {
	c := New(WithLocale(language.Turkish))
	if got := c.Apply(ModeUpper, "i"); got != "İ" {
		t.Errorf("Turkish upper of i = %q, want %q", got, "İ")
	}
}
