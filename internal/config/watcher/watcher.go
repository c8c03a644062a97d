// Package watcher reloads a configuration file when it changes on disk.
//
// The directories holding the file and every file it includes are watched
// with fsnotify, so editors that save by renaming a temporary file over the
// original are seen too. The include set is refreshed after each reload. Bursts
// of events are debounced into one reload. A file that fails to load is
// logged and the previous settings stay current.
package watcher

import (
	"errors"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dshills/shortcuts/internal/config"
	"github.com/dshills/shortcuts/internal/logging"
)

// ErrWatcherClosed is returned when using a closed watcher.
var ErrWatcherClosed = errors.New("watcher is closed")

// Handler is called with the new settings after each successful reload.
type Handler func(cfg config.Config)

// Watcher keeps the settings of one config file current.
type Watcher struct {
	mu sync.RWMutex

	path     string
	loader   *config.Loader
	logger   *logging.Logger
	debounce time.Duration

	current  config.Config
	handlers []Handler
	reloads  int
	failures int

	fsw   *fsnotify.Watcher
	files map[string]bool // cleaned paths whose changes trigger a reload
	dirs  map[string]bool // directories added to fsw

	closed   bool
	closeCh  chan struct{}
	closedWg sync.WaitGroup
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithLoader sets the loader used for every reload.
func WithLoader(l *config.Loader) Option {
	return func(w *Watcher) {
		w.loader = l
	}
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(w *Watcher) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithDebounce sets how long to wait for events to settle.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// New loads path and starts watching it. The initial load must succeed.
func New(path string, opts ...Option) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		path:     absPath,
		loader:   config.NewLoader(),
		logger:   logging.Nop(),
		debounce: 100 * time.Millisecond,
		closeCh:  make(chan struct{}),
		files:    make(map[string]bool),
		dirs:     make(map[string]bool),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.logger = w.logger.WithComponent("config")

	if w.current, err = w.loader.Load(absPath); err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w.fsw = fsw
	if err := w.track(); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	w.closedWg.Add(1)
	go w.processLoop()

	return w, nil
}

// Path returns the absolute path of the watched file.
func (w *Watcher) Path() string {
	return w.path
}

// Current returns the most recently loaded settings.
func (w *Watcher) Current() config.Config {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

// OnChange registers a handler for reloads.
func (w *Watcher) OnChange(h Handler) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.handlers = append(w.handlers, h)
}

// Stats returns the number of successful and failed reloads.
func (w *Watcher) Stats() (reloads, failures int) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.reloads, w.failures
}

// Reload loads the file now. On error the current settings are kept.
func (w *Watcher) Reload() error {
	cfg, err := w.loader.Load(w.path)

	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return ErrWatcherClosed
	}
	if err != nil {
		w.failures++
		w.mu.Unlock()
		w.logger.Warn("reload of %s failed, keeping previous settings: %v", w.path, err)
		return err
	}
	w.current = cfg
	w.reloads++
	handlers := make([]Handler, len(w.handlers))
	copy(handlers, w.handlers)
	w.mu.Unlock()

	if err := w.track(); err != nil {
		w.logger.Warn("watching includes of %s: %v", w.path, err)
	}
	w.logger.Info("reloaded %s", w.path)
	for _, h := range handlers {
		h(cfg)
	}
	return nil
}

// Close stops watching.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	err := w.fsw.Close()
	w.closedWg.Wait()
	return err
}

func (w *Watcher) processLoop() {
	defer w.closedWg.Done()

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-w.closeCh:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			_ = w.Reload()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Error("watching %s: %v", w.path, err)
		}
	}
}

// Files returns the paths whose changes trigger a reload, sorted.
func (w *Watcher) Files() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]string, 0, len(w.files))
	for f := range w.files {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// track watches the directory of the file and of every file it includes.
func (w *Watcher) track() error {
	sources, err := w.loader.Sources(w.path)
	if err != nil {
		return err
	}
	files := map[string]bool{w.path: true}
	for _, f := range sources {
		files[filepath.Clean(f)] = true
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	for f := range files {
		dir := filepath.Dir(f)
		if w.dirs[dir] {
			continue
		}
		if err := w.fsw.Add(dir); err != nil {
			return err
		}
		w.dirs[dir] = true
	}
	w.files = files
	return nil
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	w.mu.RLock()
	tracked := w.files[filepath.Clean(ev.Name)]
	w.mu.RUnlock()
	if !tracked {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}
