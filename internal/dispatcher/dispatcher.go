// Package dispatcher routes actions to handlers and coordinates execution.
package dispatcher

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/dshills/shortcuts/internal/dispatcher/execctx"
	"github.com/dshills/shortcuts/internal/dispatcher/handler"
	"github.com/dshills/shortcuts/internal/engine"
	"github.com/dshills/shortcuts/internal/input"
	"github.com/dshills/shortcuts/internal/logging"
)

// Dispatcher routes actions to handlers and coordinates execution.
type Dispatcher struct {
	mu sync.RWMutex

	router *Router
	engine *engine.Engine
	logger *logging.Logger

	config  Config
	metrics *Metrics
}

// New creates a new dispatcher with the given configuration.
func New(config Config) *Dispatcher {
	d := &Dispatcher{
		router: NewRouter(),
		engine: engine.New(),
		logger: logging.Nop(),
		config: config,
	}
	if config.EnableMetrics {
		d.metrics = NewMetrics()
	}
	return d
}

// NewWithDefaults creates a dispatcher with default configuration and the
// line, select and case namespaces registered.
func NewWithDefaults() *Dispatcher {
	d := New(DefaultConfig())
	d.RegisterDefaults()
	return d
}

// SetEngine sets the engine handlers run. Replacing the engine is how new
// word or case settings take effect.
func (d *Dispatcher) SetEngine(e *engine.Engine) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.engine = e
}

// Engine returns the current engine.
func (d *Dispatcher) Engine() *engine.Engine {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.engine
}

// SetLogger sets the logger. A nil logger discards output.
func (d *Dispatcher) SetLogger(l *logging.Logger) {
	if l == nil {
		l = logging.Nop()
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.logger = l.WithComponent("dispatcher")
}

// Dispatch runs an action against a host.
func (d *Dispatcher) Dispatch(h engine.Host, action input.Action) handler.Result {
	return d.dispatch(h, action, false)
}

// Preview computes the result of an action without writing to the host.
// The resulting engine.State is in the result data under
// handler.DataState.
func (d *Dispatcher) Preview(h engine.Host, action input.Action) handler.Result {
	return d.dispatch(h, action, true)
}

func (d *Dispatcher) dispatch(h engine.Host, action input.Action, dryRun bool) handler.Result {
	start := time.Now()

	d.mu.RLock()
	logger := d.logger
	ctx := execctx.New().
		WithEngine(d.engine).
		WithHost(h).
		WithLogger(logger).
		WithCount(action.Count).
		WithDryRun(dryRun)
	d.mu.RUnlock()

	var result handler.Result
	switch {
	case d.config.exceedsCount(action.Count):
		result = handler.Error(fmt.Errorf("%w: %d > %d", ErrCountTooLarge, action.Count, d.config.MaxRepeatCount))
	default:
		hd := d.router.Route(action.Name)
		switch {
		case hd == nil:
			result = handler.Error(fmt.Errorf("%w: %s", ErrUnknownAction, action.Name))
		case d.config.RecoverFromPanic:
			result = d.executeWithRecovery(hd, action, ctx)
		default:
			result = hd.Handle(action, ctx)
		}
	}

	elapsed := time.Since(start)
	switch {
	case result.IsError():
		logger.Warn("%s failed: %v", action, result.Error)
	case d.config.slow(elapsed):
		logger.Warn("%s took %s (threshold %s)", action, elapsed, d.config.SlowThreshold)
	default:
		logger.Debug("%s from %s: %s in %s", action, action.Source, result.Status, elapsed)
	}
	if d.metrics != nil {
		d.metrics.RecordDispatch(action, elapsed, result, dryRun)
	}
	return result
}

// executeWithRecovery executes a handler with panic recovery.
func (d *Dispatcher) executeWithRecovery(h handler.Handler, action input.Action, ctx *execctx.ExecutionContext) (result handler.Result) {
	defer func() {
		if r := recover(); r != nil {
			stack := make([]byte, 4096)
			n := runtime.Stack(stack, false)
			ctx.Logger.Error("panic in %s: %v\n%s", action.Name, r, stack[:n])

			result = handler.Error(fmt.Errorf("%w: %s: %v", ErrPanic, action.Name, r))

			if d.metrics != nil {
				d.metrics.RecordPanic()
			}
		}
	}()

	return h.Handle(action, ctx)
}

// RegisterNamespace registers a namespace handler.
func (d *Dispatcher) RegisterNamespace(h handler.NamespaceHandler) {
	d.router.RegisterNamespace(h)
}

// Actions returns every action name the dispatcher can route, sorted.
func (d *Dispatcher) Actions() []string {
	return d.router.Actions()
}

// Router returns the action router.
func (d *Dispatcher) Router() *Router {
	return d.router
}

// Metrics returns the metrics collector (may be nil if disabled).
func (d *Dispatcher) Metrics() *Metrics {
	return d.metrics
}

// Config returns the dispatcher configuration.
func (d *Dispatcher) Config() Config {
	return d.config
}
