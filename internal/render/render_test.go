package render

import (
	"testing"

	"github.com/dshills/shortcuts/internal/engine"
	"github.com/dshills/shortcuts/internal/engine/buffer"
	"github.com/dshills/shortcuts/internal/engine/cursor"
)

func pt(l, c int) buffer.Point { return buffer.Point{Line: l, Ch: c} }

func TestDisplayColumn(t *testing.T) {
	tests := []struct {
		line string
		ch   int
		want int
	}{
		{"hello", 3, 3},
		{"\tx", 1, 4},
		{"a\tx", 2, 4},
		{"日本語", 2, 4},
		{"日本語", 9, 6},
	}
	for _, tt := range tests {
		if got := DisplayColumn(tt.line, tt.ch, 4); got != tt.want {
			t.Errorf("DisplayColumn(%q, %d) = %d, want %d", tt.line, tt.ch, got, tt.want)
		}
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		text string
		sels []cursor.Selection
		opts Options
		want string
	}{
		{
			name: "cursor",
			text: "hello\nworld",
			sels: []cursor.Selection{cursor.NewCursorSelection(pt(1, 2))},
			opts: DefaultOptions(),
			want: "hello\nworld\n  ^\n",
		},
		{
			name: "forward range",
			text: "hello world",
			sels: []cursor.Selection{cursor.NewSelection(pt(0, 6), pt(0, 11))},
			opts: DefaultOptions(),
			want: "hello world\n      ~~~~~^\n",
		},
		{
			name: "backward range across lines",
			text: "ab\ncd",
			sels: []cursor.Selection{cursor.NewSelection(pt(1, 1), pt(0, 1))},
			opts: DefaultOptions(),
			want: "ab\n ^\ncd\n~\n",
		},
		{
			name: "wide characters",
			text: "日本語",
			sels: []cursor.Selection{cursor.NewSelection(pt(0, 1), pt(0, 2))},
			opts: DefaultOptions(),
			want: "日本語\n  ~~^\n",
		},
		{
			name: "tabs and line numbers",
			text: "\tx\ny",
			sels: []cursor.Selection{cursor.NewCursorSelection(pt(0, 1))},
			opts: Options{TabSize: 2, LineNumbers: true},
			want: "0|   x\n |   ^\n1| y\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := engine.NewStateFromText(tt.text, tt.sels...)
			if got := String(st, tt.opts); got != tt.want {
				t.Errorf("String() =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestSelections(t *testing.T) {
	sels := []cursor.Selection{
		cursor.NewSelection(pt(0, 6), pt(1, 5)),
		cursor.NewCursorSelection(pt(1, 0)),
	}
	if got := Selections(sels); got != "0:6-1:5, 1:0" {
		t.Errorf("Selections() = %q", got)
	}
}
