package app

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
)

// Clipboard reads and writes the system clipboard.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// SystemClipboard is the platform clipboard.
type SystemClipboard struct{}

// ReadAll returns the clipboard contents.
func (SystemClipboard) ReadAll() (string, error) {
	if clipboard.Unsupported {
		return "", ErrClipboardUnavailable
	}
	return clipboard.ReadAll()
}

// WriteAll replaces the clipboard contents.
func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnavailable
	}
	return clipboard.WriteAll(text)
}

// Source identifies where document text comes from.
type Source struct {
	// Path is a file path, "-" or empty for Stdin.
	Path string
	// Clipboard takes precedence over Path when non-nil.
	Clipboard Clipboard
	// Stdin is read for "-" and empty paths.
	Stdin io.Reader
}

// ReadDocument loads document text. CRLF line endings are normalized to LF.
func ReadDocument(src Source) (string, error) {
	var (
		text string
		err  error
	)
	switch {
	case src.Clipboard != nil:
		text, err = src.Clipboard.ReadAll()
		if err != nil {
			return "", NewComponentError("clipboard", "read", err)
		}
	case src.Path == "" || src.Path == "-":
		in := src.Stdin
		if in == nil {
			in = os.Stdin
		}
		data, rerr := io.ReadAll(in)
		if rerr != nil {
			return "", NewComponentError("stdin", "read", rerr)
		}
		text = string(data)
	default:
		data, rerr := os.ReadFile(src.Path)
		if rerr != nil {
			return "", NewComponentError("document", "read", rerr)
		}
		text = string(data)
	}
	return strings.ReplaceAll(text, "\r\n", "\n"), nil
}

// WriteDocument sends text to the clipboard when cb is non-nil, or to w.
func WriteDocument(w io.Writer, cb Clipboard, text string) error {
	if cb != nil {
		if err := cb.WriteAll(text); err != nil {
			return NewComponentError("clipboard", "write", err)
		}
		return nil
	}
	if _, err := io.WriteString(w, text); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}
