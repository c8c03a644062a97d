package app

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) ReadAll() (string, error) { return c.text, c.err }

func (c *fakeClipboard) WriteAll(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

func TestReadDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	if err := os.WriteFile(path, []byte("a\r\nb\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		src  Source
		want string
	}{
		{"file", Source{Path: path}, "a\nb\n"},
		{"stdin", Source{Stdin: strings.NewReader("x\ny")}, "x\ny"},
		{"dash", Source{Path: "-", Stdin: strings.NewReader("z")}, "z"},
		{"clipboard", Source{Path: path, Clipboard: &fakeClipboard{text: "clip"}}, "clip"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadDocument(tt.src)
			if err != nil {
				t.Fatalf("ReadDocument: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadDocumentErrors(t *testing.T) {
	_, err := ReadDocument(Source{Path: filepath.Join(t.TempDir(), "missing")})
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want ErrNotExist", err)
	}

	_, err = ReadDocument(Source{Clipboard: &fakeClipboard{err: ErrClipboardUnavailable}})
	var ce *ComponentError
	if !errors.As(err, &ce) || ce.Component != "clipboard" {
		t.Errorf("err = %v, want clipboard component error", err)
	}
}

func TestWriteDocument(t *testing.T) {
	var out bytes.Buffer
	if err := WriteDocument(&out, nil, "hello"); err != nil {
		t.Fatal(err)
	}
	if out.String() != "hello" {
		t.Errorf("out = %q", out.String())
	}

	cb := &fakeClipboard{}
	out.Reset()
	if err := WriteDocument(&out, cb, "copied"); err != nil {
		t.Fatal(err)
	}
	if cb.text != "copied" || out.Len() != 0 {
		t.Errorf("clipboard = %q, out = %q", cb.text, out.String())
	}

	if err := WriteDocument(&out, &fakeClipboard{err: errors.New("denied")}, "x"); err == nil {
		t.Error("clipboard write error not reported")
	}
}
