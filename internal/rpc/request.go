package rpc

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/dshills/shortcuts/internal/engine/buffer"
	"github.com/dshills/shortcuts/internal/engine/cursor"
	"github.com/dshills/shortcuts/internal/input"
)

// Request is a decoded request line.
type Request struct {
	ID         string
	Action     input.Action
	Lines      []string
	Selections []cursor.Selection
	Preview    bool
}

// ParseRequest decodes one request line. The id is returned even when
// decoding fails so the error response can echo it.
func ParseRequest(line []byte) (Request, error) {
	if !gjson.ValidBytes(line) {
		return Request{}, fmt.Errorf("%w: invalid JSON", ErrMalformedRequest)
	}
	root := gjson.ParseBytes(line)
	if !root.IsObject() {
		return Request{}, fmt.Errorf("%w: not an object", ErrMalformedRequest)
	}

	req := Request{
		ID:      root.Get("id").String(),
		Preview: root.Get("preview").Bool(),
	}

	name := root.Get("action")
	if name.Type != gjson.String || name.String() == "" {
		return req, fmt.Errorf("%w: missing action", ErrMalformedRequest)
	}
	req.Action = input.Action{
		Name:   name.String(),
		Source: input.SourceRPC,
		Count:  int(root.Get("count").Int()),
		Args: input.ActionArgs{
			Mode:      root.Get("args.mode").String(),
			Direction: root.Get("args.direction").String(),
		},
	}

	switch lines, text := root.Get("lines"), root.Get("text"); {
	case lines.IsArray():
		for i, l := range lines.Array() {
			if l.Type != gjson.String {
				return req, fmt.Errorf("%w: lines must be strings", ErrMalformedRequest)
			}
			if strings.Contains(l.String(), buffer.LineSeparator) {
				return req, fmt.Errorf("%w: lines[%d] contains a line break", ErrMalformedRequest, i)
			}
			req.Lines = append(req.Lines, l.String())
		}
	case text.Type == gjson.String:
		req.Lines = buffer.NewDocument(text.String()).Lines()
	default:
		return req, fmt.Errorf("%w: missing lines", ErrMalformedRequest)
	}

	sels := root.Get("selections")
	if sels.Exists() && !sels.IsArray() {
		return req, fmt.Errorf("%w: selections must be an array", ErrMalformedRequest)
	}
	for i, s := range sels.Array() {
		anchor, err := parsePoint(s.Get("anchor"))
		if err != nil {
			return req, fmt.Errorf("%w: selection %d anchor: %v", ErrMalformedRequest, i, err)
		}
		head := anchor
		if h := s.Get("head"); h.Exists() {
			if head, err = parsePoint(h); err != nil {
				return req, fmt.Errorf("%w: selection %d head: %v", ErrMalformedRequest, i, err)
			}
		}
		req.Selections = append(req.Selections, cursor.NewSelection(anchor, head))
	}

	return req, nil
}

func parsePoint(v gjson.Result) (buffer.Point, error) {
	if !v.IsObject() {
		return buffer.Point{}, fmt.Errorf("want {\"line\":n,\"ch\":n}")
	}
	line, ch := v.Get("line"), v.Get("ch")
	if line.Type != gjson.Number || ch.Type != gjson.Number {
		return buffer.Point{}, fmt.Errorf("line and ch must be numbers")
	}
	if line.Int() < 0 || ch.Int() < 0 {
		return buffer.Point{}, fmt.Errorf("negative position")
	}
	return buffer.Point{Line: int(line.Int()), Ch: int(ch.Int())}, nil
}
