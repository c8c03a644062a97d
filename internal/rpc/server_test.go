package rpc

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/tidwall/gjson"

	"github.com/dshills/shortcuts/internal/dispatcher"
	"github.com/dshills/shortcuts/internal/logging"
)

func newServer(opts ...Option) *Server {
	opts = append([]Option{WithIDGenerator(func() string { return "gen" })}, opts...)
	return NewServer(dispatcher.NewWithDefaults(), opts...)
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name    string
		req     string
		status  string
		lines   string
		sels    string
		edit    string
		errPart string
	}{
		{
			name:   "join",
			req:    `{"id":"1","action":"line.join","lines":["a","  b"],"selections":[{"anchor":{"line":0,"ch":0},"head":{"line":0,"ch":0}}]}`,
			status: "ok",
			lines:  `["a b"]`,
			sels:   `[{"anchor":{"line":0,"ch":1},"head":{"line":0,"ch":1}}]`,
			edit:   `{"from":{"line":0,"ch":1},"to":{"line":1,"ch":1},"text":""}`,
		},
		{
			name:   "case with args and text",
			req:    `{"id":"2","action":"case.transform","args":{"mode":"upper"},"text":"ab cd","selections":[{"anchor":{"line":0,"ch":0},"head":{"line":0,"ch":2}}]}`,
			status: "ok",
			lines:  `["AB cd"]`,
			sels:   `[{"anchor":{"line":0,"ch":0},"head":{"line":0,"ch":2}}]`,
			edit:   `{"from":{"line":0,"ch":0},"to":{"line":0,"ch":2},"text":"AB"}`,
		},
		{
			name:   "cursor shorthand and no-op",
			req:    `{"id":"3","action":"select.quotes","lines":["plain"],"selections":[{"anchor":{"line":0,"ch":2}}]}`,
			status: "no-op",
			lines:  `["plain"]`,
			sels:   `[{"anchor":{"line":0,"ch":2},"head":{"line":0,"ch":2}}]`,
		},
		{
			name:    "unknown action",
			req:     `{"id":"4","action":"line.sort","lines":["a"]}`,
			status:  "error",
			lines:   `["a"]`,
			errPart: "unknown action",
		},
		{
			name:    "bad json",
			req:     `{"id":`,
			status:  "error",
			errPart: "malformed request",
		},
		{
			name:    "missing lines",
			req:     `{"id":"6","action":"line.join"}`,
			status:  "error",
			errPart: "missing lines",
		},
		{
			name:    "bad selection",
			req:     `{"id":"7","action":"line.join","lines":["a"],"selections":[{"anchor":{"line":-1,"ch":0}}]}`,
			status:  "error",
			errPart: "negative position",
		},
	}

	s := newServer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := s.Handle([]byte(tt.req))
			if !gjson.ValidBytes(out) {
				t.Fatalf("invalid response %s", out)
			}
			res := gjson.ParseBytes(out)

			if got := res.Get("status").String(); got != tt.status {
				t.Errorf("status = %q, want %q (%s)", got, tt.status, out)
			}
			if tt.lines != "" && res.Get("lines").Raw != tt.lines {
				t.Errorf("lines = %s, want %s", res.Get("lines").Raw, tt.lines)
			}
			if tt.sels != "" && res.Get("selections").Raw != tt.sels {
				t.Errorf("selections = %s, want %s", res.Get("selections").Raw, tt.sels)
			}
			if tt.edit != "" && res.Get("edit").Raw != tt.edit {
				t.Errorf("edit = %s, want %s", res.Get("edit").Raw, tt.edit)
			}
			if tt.errPart != "" && !strings.Contains(res.Get("error").String(), tt.errPart) {
				t.Errorf("error = %q, want it to contain %q", res.Get("error").String(), tt.errPart)
			}
		})
	}
}

func TestHandleGeneratesID(t *testing.T) {
	out := newServer().Handle([]byte(`{"action":"line.join","lines":["a"]}`))
	if got := gjson.GetBytes(out, "id").String(); got != "gen" {
		t.Errorf("id = %q, want gen", got)
	}
}

func TestHandleCountAndPreview(t *testing.T) {
	s := newServer()

	out := s.Handle([]byte(`{"id":"c","action":"line.duplicate","count":2,"lines":["x"]}`))
	if got := gjson.GetBytes(out, "lines").Raw; got != `["x","x","x"]` {
		t.Errorf("lines = %s", got)
	}
	if n := len(gjson.GetBytes(out, "edits").Array()); n != 2 {
		t.Errorf("edits = %d, want 2 (%s)", n, out)
	}

	out = s.Handle([]byte(`{"id":"p","action":"select.word","preview":true,"lines":["abc def"],"selections":[{"anchor":{"line":0,"ch":5}}]}`))
	sel := gjson.GetBytes(out, "selections.0")
	if sel.Get("anchor.ch").Int() != 4 || sel.Get("head.ch").Int() != 7 {
		t.Errorf("previewed selection = %s", sel.Raw)
	}
}

func TestServe(t *testing.T) {
	in := strings.Join([]string{
		`{"id":"a","action":"line.delete","lines":["1","2"],"selections":[{"anchor":{"line":0,"ch":0}}]}`,
		``,
		`not json`,
		`{"id":"b","action":"select.lineEnd","lines":["abc"]}`,
	}, "\n")

	var out, logs bytes.Buffer
	s := newServer(WithLogger(logging.New(logging.Config{Level: logging.LevelDebug, Output: &logs})))
	if err := s.Serve(context.Background(), strings.NewReader(in), &out); err != nil {
		t.Fatalf("Serve: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d responses:\n%s", len(lines), out.String())
	}
	if got := gjson.Get(lines[0], "lines").Raw; got != `["2"]` {
		t.Errorf("first response lines = %s", got)
	}
	if got := gjson.Get(lines[1], "status").String(); got != "error" {
		t.Errorf("second response status = %s", got)
	}
	if got := gjson.Get(lines[2], "selections.0.head.ch").Int(); got != 3 {
		t.Errorf("third response head ch = %d", got)
	}
	if !strings.Contains(logs.String(), "served 3 requests, 1 failed") {
		t.Errorf("missing summary in logs:\n%s", logs.String())
	}
}

func TestServeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := newServer().Serve(ctx, strings.NewReader(`{"action":"line.join","lines":["a"]}`+"\n"), &out)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if out.Len() != 0 {
		t.Errorf("wrote %q after cancel", out.String())
	}
}

func TestParseRequest(t *testing.T) {
	req, err := ParseRequest([]byte(`{"id":"x","action":"select.boundary","args":{"direction":"end"},"lines":["a"],"selections":[{"anchor":{"line":0,"ch":0},"head":{"line":0,"ch":1}}]}`))
	if err != nil {
		t.Fatalf("ParseRequest: %v", err)
	}
	if req.Action.Args.Direction != "end" || req.Action.Name != "select.boundary" {
		t.Errorf("action = %+v", req.Action)
	}
	if len(req.Selections) != 1 || req.Selections[0].Head.Ch != 1 {
		t.Errorf("selections = %v", req.Selections)
	}

	for _, bad := range []string{`[]`, `{"action":3,"lines":[]}`, `{"action":"a.b","lines":[1]}`, `{"action":"a.b","lines":[],"selections":{}}`, `{"action":"line.delete","lines":["ab\ncd","ef"]}`} {
		if _, err := ParseRequest([]byte(bad)); !errors.Is(err, ErrMalformedRequest) {
			t.Errorf("ParseRequest(%s) err = %v", bad, err)
		}
	}
}
