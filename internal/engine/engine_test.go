package engine

import (
	"testing"

	"github.com/dshills/shortcuts/internal/engine/casing"
	"github.com/dshills/shortcuts/internal/engine/cursor"
)

const loremDoc = "lorem ipsum\ndolor sit\namet"

func pt(line, ch int) Point {
	return Point{Line: line, Ch: ch}
}

func cur(line, ch int) Selection {
	return cursor.NewCursorSelection(pt(line, ch))
}

func sel(al, ac, hl, hc int) Selection {
	return cursor.NewSelection(pt(al, ac), pt(hl, hc))
}

func selectedText(st State) string {
	return st.Doc.TextRange(st.Selections.Primary().Range())
}

func checkText(t *testing.T, st State, want string) {
	t.Helper()
	if got := st.Text(); got != want {
		t.Errorf("text = %q, want %q", got, want)
	}
}

func checkHead(t *testing.T, st State, line, ch int) {
	t.Helper()
	if got := st.Selections.Primary().Head; got != pt(line, ch) {
		t.Errorf("head = %v, want %v", got, pt(line, ch))
	}
}

func checkHeadLine(t *testing.T, st State, line int) {
	t.Helper()
	if got := st.Selections.Primary().Head.Line; got != line {
		t.Errorf("head line = %d, want %d", got, line)
	}
}

func TestSingleCursor(t *testing.T) {
	e := New()
	start := func() State { return NewStateFromText(loremDoc, cur(1, 0)) }

	t.Run("insert line above", func(t *testing.T) {
		st := e.InsertLineAbove(start())
		checkText(t, st, "lorem ipsum\n\ndolor sit\namet")
		checkHead(t, st, 1, 0)
	})

	t.Run("insert line above first line", func(t *testing.T) {
		st := e.InsertLineAbove(NewStateFromText(loremDoc, cur(0, 0)))
		checkText(t, st, "\nlorem ipsum\ndolor sit\namet")
		checkHead(t, st, 0, 0)
	})

	t.Run("insert line below", func(t *testing.T) {
		st := e.InsertLineBelow(start())
		checkText(t, st, "lorem ipsum\ndolor sit\n\namet")
		checkHead(t, st, 2, 0)
	})

	t.Run("insert line below keeps indentation", func(t *testing.T) {
		st := e.InsertLineBelow(NewStateFromText("    lorem ipsum\n    dolor sit\n    amet", cur(1, 0)))
		checkText(t, st, "    lorem ipsum\n    dolor sit\n    \n    amet")
		checkHead(t, st, 2, 4)
	})

	t.Run("insert line below last line", func(t *testing.T) {
		st := e.InsertLineBelow(NewStateFromText(loremDoc, cur(2, 0)))
		checkText(t, st, "lorem ipsum\ndolor sit\namet\n")
		checkHead(t, st, 3, 0)
	})

	t.Run("delete line", func(t *testing.T) {
		st := e.DeleteSelectedLines(start())
		checkText(t, st, "lorem ipsum\namet")
		checkHead(t, st, 1, 0)
	})

	t.Run("delete last line", func(t *testing.T) {
		st := e.DeleteSelectedLines(NewStateFromText(loremDoc, cur(2, 0)))
		checkText(t, st, "lorem ipsum\ndolor sit")
		checkHead(t, st, 1, 0)
	})

	t.Run("join lines", func(t *testing.T) {
		st := e.JoinLines(start())
		checkText(t, st, "lorem ipsum\ndolor sit amet")
		checkHead(t, st, 1, 9)
	})

	t.Run("duplicate line", func(t *testing.T) {
		st := e.DuplicateLine(start())
		checkText(t, st, "lorem ipsum\ndolor sit\ndolor sit\namet")
		checkHead(t, st, 2, 0)
	})

	t.Run("select word", func(t *testing.T) {
		st := e.SelectWord(start())
		checkText(t, st, loremDoc)
		if got := selectedText(st); got != "dolor" {
			t.Errorf("selected = %q, want %q", got, "dolor")
		}
	})

	t.Run("select line", func(t *testing.T) {
		st := e.SelectLine(start())
		checkText(t, st, loremDoc)
		if got := selectedText(st); got != "dolor sit\n" {
			t.Errorf("selected = %q, want %q", got, "dolor sit\n")
		}
	})

	t.Run("line start", func(t *testing.T) {
		st := e.GoToLineBoundary(start(), DirectionStart)
		checkText(t, st, loremDoc)
		checkHead(t, st, 1, 0)
	})

	t.Run("line end", func(t *testing.T) {
		st := e.GoToLineBoundary(start(), DirectionEnd)
		checkText(t, st, loremDoc)
		checkHead(t, st, 1, 9)
	})

	t.Run("upper case", func(t *testing.T) {
		st := e.TransformCase(start(), casing.ModeUpper)
		checkText(t, st, "lorem ipsum\nDOLOR sit\namet")
		checkHead(t, st, 1, 0)
	})

	t.Run("lower case", func(t *testing.T) {
		st := e.TransformCase(NewStateFromText("lorem ipsum\nDOLOR sit\namet", cur(1, 0)), casing.ModeLower)
		checkText(t, st, loremDoc)
		checkHead(t, st, 1, 0)
	})

	t.Run("title case", func(t *testing.T) {
		st := e.TransformCase(start(), casing.ModeTitle)
		checkText(t, st, "lorem ipsum\nDolor sit\namet")
		checkHead(t, st, 1, 0)
	})
}

func TestSingleRange(t *testing.T) {
	e := New()
	start := func() State { return NewStateFromText(loremDoc, sel(0, 6, 1, 5)) }

	t.Run("insert line above", func(t *testing.T) {
		st := e.InsertLineAbove(start())
		checkText(t, st, "lorem ipsum\n\ndolor sit\namet")
		checkHeadLine(t, st, 1)
	})

	t.Run("insert line below", func(t *testing.T) {
		st := e.InsertLineBelow(start())
		checkText(t, st, "lorem ipsum\ndolor sit\n\namet")
		checkHeadLine(t, st, 2)
	})

	t.Run("delete lines", func(t *testing.T) {
		st := e.DeleteSelectedLines(start())
		checkText(t, st, "amet")
		checkHead(t, st, 0, 0)
	})

	t.Run("join lines", func(t *testing.T) {
		st := e.JoinLines(start())
		checkText(t, st, "lorem ipsum\ndolor sit amet")
		checkHead(t, st, 1, 9)
	})

	t.Run("duplicate lines", func(t *testing.T) {
		st := e.DuplicateLine(start())
		checkText(t, st, "lorem ipsum\ndolor sit\nlorem ipsum\ndolor sit\namet")
		if got, want := st.Selections.Primary(), sel(2, 6, 3, 5); !got.Equals(want) {
			t.Errorf("selection = %v, want %v", got, want)
		}
	})

	t.Run("select word keeps range", func(t *testing.T) {
		st := e.SelectWord(start())
		if got := selectedText(st); got != "ipsum\ndolor" {
			t.Errorf("selected = %q, want %q", got, "ipsum\ndolor")
		}
	})

	t.Run("select lines", func(t *testing.T) {
		st := e.SelectLine(start())
		if got := selectedText(st); got != "lorem ipsum\ndolor sit\n" {
			t.Errorf("selected = %q, want %q", got, "lorem ipsum\ndolor sit\n")
		}
	})

	t.Run("line start", func(t *testing.T) {
		st := e.GoToLineBoundary(start(), DirectionStart)
		checkHead(t, st, 0, 0)
		if !st.Selections.Primary().IsEmpty() {
			t.Error("selection should collapse to a cursor")
		}
	})

	t.Run("line end", func(t *testing.T) {
		st := e.GoToLineBoundary(start(), DirectionEnd)
		checkHead(t, st, 1, 9)
	})

	caseTests := []struct {
		name     string
		text     string
		mode     casing.Mode
		wantText string
		wantSel  string
	}{
		{"upper", loremDoc, casing.ModeUpper, "lorem IPSUM\nDOLOR sit\namet", "IPSUM\nDOLOR"},
		{"lower", "lorem ipsum\nDOLOR sit\namet", casing.ModeLower, loremDoc, "ipsum\ndolor"},
		{"title", loremDoc, casing.ModeTitle, "lorem Ipsum\nDolor sit\namet", "Ipsum\nDolor"},
	}
	for _, tt := range caseTests {
		t.Run(tt.name+" case", func(t *testing.T) {
			st := e.TransformCase(NewStateFromText(tt.text, sel(0, 6, 1, 5)), tt.mode)
			checkText(t, st, tt.wantText)
			if got := selectedText(st); got != tt.wantSel {
				t.Errorf("selected = %q, want %q", got, tt.wantSel)
			}
		})
	}

	t.Run("title case minor words", func(t *testing.T) {
		text := "AN EXAMPLE TO TEST THE OBSIDIAN PLUGIN AND A CASE CONVERSION FEATURE"
		st := e.TransformCase(NewStateFromText(text, sel(0, 0, 0, 68)), casing.ModeTitle)
		checkText(t, st, "An Example To Test the Obsidian Plugin And a Case Conversion Feature")
	})
}

func TestExpandSelectionToBrackets(t *testing.T) {
	e := New()
	tests := []struct {
		name string
		text string
		sel  Selection
		want string
	}{
		{"parens", "(lorem ipsum) dolor", cur(0, 8), "lorem ipsum"},
		{"square", "dolor [lorem ipsum]", cur(0, 8), "lorem ipsum"},
		{"curly", "dolor {lorem ipsum} sit amet", cur(0, 8), "lorem ipsum"},
		{"cursor outside", "(lorem ipsum) dolor", cur(0, 15), ""},
		{"mismatched", "(lorem ipsum] dolor", cur(0, 6), ""},
		{"range parens", "lorem (ipsum\ndolor sit\nam)et", sel(0, 10, 1, 5), "ipsum\ndolor sit\nam"},
		{"range square", "lorem [ipsum\ndolor sit\nam]et", sel(0, 10, 1, 5), "ipsum\ndolor sit\nam"},
		{"range curly", "lorem {ipsum\ndolor sit\nam}et", sel(0, 10, 1, 5), "ipsum\ndolor sit\nam"},
		{"range partly outside", "(lorem ipsum)\ndolor", sel(0, 10, 1, 2), "um)\ndo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := e.ExpandSelectionToBrackets(NewStateFromText(tt.text, tt.sel))
			checkText(t, st, tt.text)
			if got := selectedText(st); got != tt.want {
				t.Errorf("selected = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExpandSelectionToQuotes(t *testing.T) {
	e := New()
	tests := []struct {
		name string
		text string
		sel  Selection
		want string
	}{
		{"single", "'lorem ipsum' dolor", cur(0, 8), "lorem ipsum"},
		{"double", "dolor \"lorem ipsum\"", cur(0, 8), "lorem ipsum"},
		{"cursor outside", "\"lorem ipsum\" dolor", cur(0, 15), ""},
		{"mismatched", "'lorem ipsum\" dolor", cur(0, 6), ""},
		{"range single", "lorem 'ipsum\ndolor'", sel(0, 10, 1, 2), "ipsum\ndolor"},
		{"range double", "lorem \"ipsum\ndolor\"", sel(0, 10, 1, 2), "ipsum\ndolor"},
		{"range partly outside", "\"lorem ipsum\"\ndolor", sel(0, 10, 1, 2), "um\"\ndo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := e.ExpandSelectionToQuotes(NewStateFromText(tt.text, tt.sel))
			checkText(t, st, tt.text)
			if got := selectedText(st); got != tt.want {
				t.Errorf("selected = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseDirection(t *testing.T) {
	for _, s := range []string{"start", "END"} {
		if _, err := ParseDirection(s); err != nil {
			t.Errorf("ParseDirection(%q) error = %v", s, err)
		}
	}
	if _, err := ParseDirection("middle"); err == nil {
		t.Error("ParseDirection(middle) should fail")
	}
}
