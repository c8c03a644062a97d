package lua

import (
	"context"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/shortcuts/internal/dispatcher"
	"github.com/dshills/shortcuts/internal/engine/buffer"
	"github.com/dshills/shortcuts/internal/engine/cursor"
	"github.com/dshills/shortcuts/internal/host"
	"github.com/dshills/shortcuts/internal/input"
	"github.com/dshills/shortcuts/internal/logging"
)

// ModuleName is the global the editing API is installed under.
const ModuleName = "sc"

// Runner executes scripts against one buffer.
type Runner struct {
	state      *State
	dispatcher *dispatcher.Dispatcher
	buf        *host.Buffer
	logger     *logging.Logger
	runs       int
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the logger used by sc.log and for dispatch failures.
func WithLogger(l *logging.Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRunner creates a runner whose scripts edit buf through d.
func NewRunner(d *dispatcher.Dispatcher, buf *host.Buffer, stateOpts []StateOption, opts ...RunnerOption) *Runner {
	r := &Runner{
		state:      NewState(stateOpts...),
		dispatcher: d,
		buf:        buf,
		logger:     logging.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.WithComponent("lua")

	r.state.RegisterModule(ModuleName, map[string]lua.LGFunction{
		"run":           r.run,
		"lines":         r.lines,
		"line":          r.line,
		"line_count":    r.lineCount,
		"text":          r.text,
		"selections":    r.selections,
		"set_cursor":    r.setCursor,
		"set_selection": r.setSelection,
		"add_selection": r.addSelection,
		"log":           r.log,
	})
	return r
}

// RunString runs a chunk of Lua code.
func (r *Runner) RunString(ctx context.Context, code string) error {
	return r.state.DoString(ctx, code)
}

// RunFile runs a Lua file.
func (r *Runner) RunFile(ctx context.Context, path string) error {
	return r.state.DoFile(ctx, path)
}

// Runs returns how many actions scripts have dispatched.
func (r *Runner) Runs() int {
	return r.runs
}

// Close releases the Lua state.
func (r *Runner) Close() error {
	return r.state.Close()
}

// run(name [, arg [, count]]) -> status
func (r *Runner) run(L *lua.LState) int {
	ref := L.CheckString(1)
	if arg := L.OptString(2, ""); arg != "" {
		ref += ":" + arg
	}
	action, err := input.ParseAction(ref)
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	action = action.WithSource(input.SourceScript).WithCount(L.OptInt(3, 1))

	r.runs++
	result := r.dispatcher.Dispatch(r.buf, action)
	if result.IsError() {
		L.RaiseError("%s: %v", action.Name, result.Error)
		return 0
	}
	L.Push(lua.LString(result.Status.String()))
	return 1
}

// lines() -> {string}
func (r *Runner) lines(L *lua.LState) int {
	tbl := L.NewTable()
	for i, line := range r.buf.Lines() {
		tbl.RawSetInt(i+1, lua.LString(line))
	}
	L.Push(tbl)
	return 1
}

// line(n) -> string
func (r *Runner) line(L *lua.LState) int {
	n := L.CheckInt(1)
	if n < 0 || n >= r.buf.LineCount() {
		L.ArgError(1, "line out of range")
		return 0
	}
	L.Push(lua.LString(r.buf.Line(n)))
	return 1
}

// line_count() -> number
func (r *Runner) lineCount(L *lua.LState) int {
	L.Push(lua.LNumber(r.buf.LineCount()))
	return 1
}

// text() -> string
func (r *Runner) text(L *lua.LState) int {
	L.Push(lua.LString(r.buf.Text()))
	return 1
}

// selections() -> {{anchor={line,ch}, head={line,ch}}}
func (r *Runner) selections(L *lua.LState) int {
	tbl := L.NewTable()
	for i, sel := range r.buf.Selections() {
		s := L.NewTable()
		L.SetField(s, "anchor", pointTable(L, sel.Anchor))
		L.SetField(s, "head", pointTable(L, sel.Head))
		tbl.RawSetInt(i+1, s)
	}
	L.Push(tbl)
	return 1
}

func pointTable(L *lua.LState, p buffer.Point) *lua.LTable {
	t := L.NewTable()
	L.SetField(t, "line", lua.LNumber(p.Line))
	L.SetField(t, "ch", lua.LNumber(p.Ch))
	return t
}

// set_cursor(line, ch)
func (r *Runner) setCursor(L *lua.LState) int {
	p := checkPoint(L, 1)
	r.setSelections(L, []cursor.Selection{cursor.NewCursorSelection(p)})
	return 0
}

// set_selection(al, ac, hl, hc)
func (r *Runner) setSelection(L *lua.LState) int {
	sel := cursor.NewSelection(checkPoint(L, 1), checkPoint(L, 3))
	r.setSelections(L, []cursor.Selection{sel})
	return 0
}

// add_selection(al, ac [, hl, hc])
func (r *Runner) addSelection(L *lua.LState) int {
	anchor := checkPoint(L, 1)
	head := anchor
	if L.GetTop() >= 3 {
		head = checkPoint(L, 3)
	}
	sels := append(r.buf.Selections(), cursor.NewSelection(anchor, head))
	r.setSelections(L, sels)
	return 0
}

func (r *Runner) setSelections(L *lua.LState, sels []cursor.Selection) {
	if err := r.buf.SetSelections(sels); err != nil {
		L.RaiseError("%v", err)
	}
}

// checkPoint reads a (line, ch) argument pair starting at n.
func checkPoint(L *lua.LState, n int) buffer.Point {
	line, ch := L.CheckInt(n), L.CheckInt(n+1)
	if line < 0 {
		L.ArgError(n, "line must be non-negative")
	}
	if ch < 0 {
		L.ArgError(n+1, "ch must be non-negative")
	}
	return buffer.Point{Line: line, Ch: ch}
}

// log(msg)
func (r *Runner) log(L *lua.LState) int {
	r.logger.Info("%s", L.CheckString(1))
	return 0
}
