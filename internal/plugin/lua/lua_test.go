package lua

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dshills/shortcuts/internal/dispatcher"
	"github.com/dshills/shortcuts/internal/engine/buffer"
	"github.com/dshills/shortcuts/internal/engine/cursor"
	"github.com/dshills/shortcuts/internal/host"
	"github.com/dshills/shortcuts/internal/logging"
)

func newRunner(t *testing.T, text string, out *bytes.Buffer, opts ...RunnerOption) (*Runner, *host.Buffer) {
	t.Helper()
	buf := host.New(text)
	var stateOpts []StateOption
	if out != nil {
		stateOpts = append(stateOpts, WithOutput(out))
	}
	r := NewRunner(dispatcher.NewWithDefaults(), buf, stateOpts, opts...)
	t.Cleanup(func() { _ = r.Close() })
	return r, buf
}

func TestScriptEdits(t *testing.T) {
	r, buf := newRunner(t, "alpha\nbeta\ngamma", nil)

	script := `
sc.set_cursor(0, 0)
sc.add_selection(2, 1)
assert(sc.run("line.duplicate") == "ok")
sc.set_selection(0, 0, 0, 5)
sc.run("case.transform", "upper")
assert(sc.line(0) == "ALPHA")
assert(sc.line_count() == 5)
`
	if err := r.RunString(context.Background(), script); err != nil {
		t.Fatalf("RunString: %v", err)
	}
	if got, want := buf.Text(), "ALPHA\nalpha\nbeta\ngamma\ngamma"; got != want {
		t.Errorf("text = %q, want %q", got, want)
	}
	if r.Runs() != 2 {
		t.Errorf("Runs() = %d", r.Runs())
	}
}

func TestScriptReads(t *testing.T) {
	var out bytes.Buffer
	r, buf := newRunner(t, "x = (a, b)", &out)
	if err := buf.SetSelections([]cursor.Selection{cursor.NewCursorSelection(buffer.Point{Ch: 6})}); err != nil {
		t.Fatal(err)
	}

	script := `
sc.run("select.brackets")
local s = sc.selections()[1]
print(s.anchor.line, s.anchor.ch, s.head.ch)
print(#sc.lines(), sc.text())
`
	if err := r.RunString(context.Background(), script); err != nil {
		t.Fatalf("RunString: %v", err)
	}
	if got, want := out.String(), "0\t5\t9\n1\tx = (a, b)\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestScriptErrors(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   string
	}{
		{"unknown action", `sc.run("line.sort")`, "unknown action"},
		{"bad argument", `sc.run("line.join", "up")`, "takes no argument"},
		{"bad mode", `sc.run("case.transform", "sponge")`, "invalid argument"},
		{"out of range cursor", `sc.set_cursor(9, 0)`, "invalid position"},
		{"negative", `sc.set_selection(0, -1, 0, 0)`, "non-negative"},
		{"line out of range", `sc.line(3)`, "out of range"},
		{"no dofile", `dofile("x.lua")`, "non-function"},
		{"no io", `io.open("x")`, "non-table"},
		{"require", `require("os")`, "not available"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newRunner(t, "abc", nil)
			err := r.RunString(context.Background(), tt.script)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestPcallKeepsGoing(t *testing.T) {
	r, buf := newRunner(t, "abc", nil)
	script := `
local ok = pcall(sc.run, "nope.nope")
assert(not ok)
sc.run("case.upper")
`
	if err := r.RunString(context.Background(), script); err != nil {
		t.Fatalf("RunString: %v", err)
	}
	if buf.Text() != "ABC" {
		t.Errorf("text = %q", buf.Text())
	}
}

func TestRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "macro.lua")
	if err := os.WriteFile(path, []byte(`sc.run("line.insertBelow")`), 0o644); err != nil {
		t.Fatal(err)
	}

	r, buf := newRunner(t, "  x", nil)
	if err := r.RunFile(context.Background(), path); err != nil {
		t.Fatalf("RunFile: %v", err)
	}
	if buf.Text() != "  x\n  " {
		t.Errorf("text = %q", buf.Text())
	}
}

func TestLog(t *testing.T) {
	var logs bytes.Buffer
	logger := logging.New(logging.Config{Level: logging.LevelInfo, Output: &logs})
	r, _ := newRunner(t, "", nil, WithLogger(logger))

	if err := r.RunString(context.Background(), `sc.log("hello from lua")`); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(logs.String(), "hello from lua") || !strings.Contains(logs.String(), "component=lua") {
		t.Errorf("log = %q", logs.String())
	}
}

func TestTimeout(t *testing.T) {
	s := NewState(WithExecutionTimeout(50 * time.Millisecond))
	defer s.Close()

	err := s.DoString(context.Background(), `while true do end`)
	if !errors.Is(err, ErrExecutionTimeout) {
		t.Errorf("err = %v, want ErrExecutionTimeout", err)
	}
}

func TestClosedState(t *testing.T) {
	s := NewState()
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	if err := s.DoString(context.Background(), `x = 1`); !errors.Is(err, ErrStateClosed) {
		t.Errorf("err = %v, want ErrStateClosed", err)
	}
	if s.GetGlobal("x").String() != "nil" {
		t.Error("GetGlobal on closed state returned a value")
	}
}
