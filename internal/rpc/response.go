package rpc

import (
	"github.com/tidwall/sjson"

	"github.com/dshills/shortcuts/internal/engine/buffer"
	"github.com/dshills/shortcuts/internal/engine/cursor"
)

// Response is the outcome of one request.
type Response struct {
	ID         string
	Status     string
	Lines      []string
	Selections []cursor.Selection
	Edits      []buffer.Edit
	Err        error
}

// encoder accumulates sjson writes and keeps the first error.
type encoder struct {
	out []byte
	err error
}

func (e *encoder) set(path string, v any) {
	if e.err == nil {
		e.out, e.err = sjson.SetBytes(e.out, path, v)
	}
}

func (e *encoder) setRaw(path string, raw []byte) {
	if e.err == nil {
		e.out, e.err = sjson.SetRawBytes(e.out, path, raw)
	}
}

func (e *encoder) point(path string, p buffer.Point) {
	e.set(path+".line", p.Line)
	e.set(path+".ch", p.Ch)
}

// Encode renders the response as one JSON object without a newline.
func (r Response) Encode() ([]byte, error) {
	enc := &encoder{out: []byte(`{}`)}

	enc.set("id", r.ID)
	enc.set("status", r.Status)
	if r.Lines != nil {
		enc.set("lines", r.Lines)
	}
	if r.Selections != nil {
		enc.setRaw("selections", []byte(`[]`))
		for _, sel := range r.Selections {
			obj := &encoder{out: []byte(`{}`)}
			obj.point("anchor", sel.Anchor)
			obj.point("head", sel.Head)
			if obj.err != nil {
				return nil, obj.err
			}
			enc.setRaw("selections.-1", obj.out)
		}
	}
	switch len(r.Edits) {
	case 0:
	case 1:
		enc.setRaw("edit", encodeEdit(r.Edits[0]))
	default:
		enc.setRaw("edits", []byte(`[]`))
		for _, e := range r.Edits {
			enc.setRaw("edits.-1", encodeEdit(e))
		}
	}
	if r.Err != nil {
		enc.set("error", r.Err.Error())
	}
	return enc.out, enc.err
}

func encodeEdit(e buffer.Edit) []byte {
	obj := &encoder{out: []byte(`{}`)}
	obj.point("from", e.Range.Start)
	obj.point("to", e.Range.End)
	obj.set("text", e.NewText)
	return obj.out
}
