package watcher

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dshills/shortcuts/internal/config"
	"github.com/dshills/shortcuts/internal/logging"
)

func newWatcher(t *testing.T, content string, opts ...Option) (*Watcher, string) {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "shortcuts.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	opts = append([]Option{WithLoader(config.NewLoader(config.WithEnv(nil))), WithDebounce(10 * time.Millisecond)}, opts...)
	w, err := New(path, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = w.Close() })
	return w, path
}

func TestInitialLoad(t *testing.T) {
	w, _ := newWatcher(t, "[case]\nlocale = \"en\"\n")
	if got := w.Current().Case.Locale; got != "en" {
		t.Errorf("Locale = %q", got)
	}
}

func TestInitialLoadError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[case\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := New(path, WithLoader(config.NewLoader(config.WithEnv(nil)))); err == nil {
		t.Error("expected error for unparsable file")
	}
}

func TestReloadOnWrite(t *testing.T) {
	w, path := newWatcher(t, "[word]\nextraChars = \"\"\n")

	changed := make(chan config.Config, 16)
	w.OnChange(func(c config.Config) {
		select {
		case changed <- c:
		default:
		}
	})

	if err := os.WriteFile(path, []byte("[word]\nextraChars = \"-\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	// A write may be seen as a truncate followed by the new content.
	deadline := time.After(5 * time.Second)
	for done := false; !done; {
		select {
		case c := <-changed:
			done = c.Word.ExtraChars == "-"
		case <-deadline:
			t.Fatal("no reload after write")
		}
	}
	if got := w.Current().Word.ExtraChars; got != "-" {
		t.Errorf("Current().Word.ExtraChars = %q", got)
	}
}

func TestReloadKeepsPreviousOnError(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(logging.Config{Level: logging.LevelDebug, Output: &buf})
	w, path := newWatcher(t, "[case]\nlocale = \"en\"\n", WithLogger(logger))

	if err := os.WriteFile(path, []byte("[case\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := w.Reload(); err == nil {
		t.Fatal("Reload() succeeded on a broken file")
	}
	if got := w.Current().Case.Locale; got != "en" {
		t.Errorf("Locale = %q, want previous value", got)
	}
	if _, failures := w.Stats(); failures == 0 {
		t.Error("failure not counted")
	}
	if !strings.Contains(buf.String(), "keeping previous settings") {
		t.Errorf("missing warning in log:\n%s", buf.String())
	}
}

func TestClose(t *testing.T) {
	w, _ := newWatcher(t, "")
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
	if err := w.Reload(); err != ErrWatcherClosed {
		t.Errorf("Reload after Close = %v", err)
	}
}

func TestReloadOnIncludeWrite(t *testing.T) {
	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	inc := filepath.Join(dir, "extra", "words.yaml")
	if err := os.MkdirAll(filepath.Dir(inc), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(inc, []byte("word:\n  extraChars: \"\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "shortcuts.toml")
	if err := os.WriteFile(path, []byte("\"@include\" = \"extra/words.yaml\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := New(path, WithLoader(config.NewLoader(config.WithEnv(nil))), WithDebounce(10*time.Millisecond))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = w.Close() })

	files := w.Files()
	if len(files) != 2 || files[0] != inc || files[1] != path {
		t.Fatalf("Files() = %q, want [%s %s]", files, inc, path)
	}

	changed := make(chan config.Config, 16)
	w.OnChange(func(c config.Config) {
		select {
		case changed <- c:
		default:
		}
	})
	if err := os.WriteFile(inc, []byte("word:\n  extraChars: \"$\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(5 * time.Second)
	for done := false; !done; {
		select {
		case c := <-changed:
			done = c.Word.ExtraChars == "$"
		case <-deadline:
			t.Fatal("no reload after writing an included file")
		}
	}
}
