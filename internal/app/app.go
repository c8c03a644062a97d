package app

import (
	"io"
	"os"
	"sync"

	"github.com/dshills/shortcuts/internal/config"
	"github.com/dshills/shortcuts/internal/config/watcher"
	"github.com/dshills/shortcuts/internal/dispatcher"
	"github.com/dshills/shortcuts/internal/logging"
)

// Options configures the application.
type Options struct {
	// ConfigPath is the path to a TOML or YAML settings file. Empty means
	// defaults and environment only.
	ConfigPath string

	// LogLevel overrides logging.level when set.
	LogLevel string

	// LogOutput receives log lines. Defaults to os.Stderr.
	LogOutput io.Writer

	// Watch reloads ConfigPath when it changes.
	Watch bool

	// Metrics enables dispatch metrics.
	Metrics bool

	// Loader overrides the settings loader.
	Loader *config.Loader
}

// Application owns the long-lived components.
type Application struct {
	mu sync.RWMutex

	opts Options

	config     config.Config
	logger     *logging.Logger
	dispatcher *dispatcher.Dispatcher
	watcher    *watcher.Watcher

	initOrder []string
}

// New creates an Application. On failure every component started so far
// is shut down again.
func New(opts Options) (*Application, error) {
	if opts.LogOutput == nil {
		opts.LogOutput = os.Stderr
	}
	if opts.Loader == nil {
		opts.Loader = config.NewLoader()
	}

	app := &Application{opts: opts}
	steps := []struct {
		name string
		fn   func() error
	}{
		{"config", app.initConfig},
		{"logger", app.initLogger},
		{"dispatcher", app.initDispatcher},
		{"watcher", app.initWatcher},
	}
	for _, step := range steps {
		if err := step.fn(); err != nil {
			app.Shutdown()
			return nil, NewComponentError(step.name, "init", err)
		}
		app.initOrder = append(app.initOrder, step.name)
	}
	return app, nil
}

func (app *Application) initConfig() error {
	cfg, err := app.opts.Loader.Load(app.opts.ConfigPath)
	if err != nil {
		return err
	}
	if app.opts.LogLevel != "" {
		cfg.Logging.Level = app.opts.LogLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	app.config = cfg
	return nil
}

func (app *Application) initLogger() error {
	app.logger = logging.New(logging.Config{
		Level:  app.config.LogLevel(),
		Output: app.opts.LogOutput,
		Prefix: "shortcuts",
	})
	logging.SetDefault(app.logger)
	return nil
}

func (app *Application) initDispatcher() error {
	e, err := app.config.NewEngine()
	if err != nil {
		return err
	}

	dcfg := app.config.DispatcherConfig()
	if app.opts.Metrics {
		dcfg = dcfg.WithMetrics()
	}
	d := dispatcher.New(dcfg)
	d.SetEngine(e)
	d.SetLogger(app.logger)
	d.RegisterDefaults()
	app.dispatcher = d
	return nil
}

func (app *Application) initWatcher() error {
	if !app.opts.Watch || app.opts.ConfigPath == "" {
		return nil
	}
	w, err := watcher.New(app.opts.ConfigPath,
		watcher.WithLoader(app.opts.Loader),
		watcher.WithLogger(app.logger),
	)
	if err != nil {
		return err
	}
	w.OnChange(app.applyConfig)
	app.watcher = w
	return nil
}

// applyConfig swaps in reloaded settings. A -log-level flag keeps
// precedence over the file. Dispatch settings apply from the next start.
func (app *Application) applyConfig(cfg config.Config) {
	if app.opts.LogLevel != "" {
		cfg.Logging.Level = app.opts.LogLevel
	}
	e, err := cfg.NewEngine()
	if err != nil {
		app.logger.Warn("ignoring reloaded settings: %v", err)
		return
	}

	app.mu.Lock()
	app.config = cfg
	app.mu.Unlock()

	app.logger.SetLevel(cfg.LogLevel())
	app.dispatcher.SetEngine(e)
	app.logger.Debug("engine rebuilt from reloaded settings")
}

// Config returns the current settings.
func (app *Application) Config() config.Config {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.config
}

// Logger returns the application logger.
func (app *Application) Logger() *logging.Logger {
	return app.logger
}

// Dispatcher returns the action dispatcher.
func (app *Application) Dispatcher() *dispatcher.Dispatcher {
	return app.dispatcher
}

// Shutdown stops components in reverse start order. It is safe to call
// more than once.
func (app *Application) Shutdown() {
	for i := len(app.initOrder) - 1; i >= 0; i-- {
		switch app.initOrder[i] {
		case "watcher":
			if app.watcher != nil {
				if err := app.watcher.Close(); err != nil {
					app.logger.Warn("closing config watcher: %v", err)
				}
				app.watcher = nil
			}
		case "dispatcher":
			if m := app.dispatcher.Metrics(); m != nil {
				s := m.Snapshot()
				app.logger.Info("dispatched %d actions (%d no-op, %d failed), %d edits", s.TotalDispatches, s.TotalNoOps, s.TotalErrors, s.TotalEdits)
				for _, am := range m.TopActions(3) {
					app.logger.Debug("%s: %d runs, avg %s", am.Name, am.DispatchCount, am.AverageActionDuration())
				}
			}
		}
	}
	app.initOrder = nil
}
