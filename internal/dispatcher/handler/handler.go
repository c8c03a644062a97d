// Package handler defines how actions are executed: the Handler and
// NamespaceHandler interfaces, the Result they return and Run, which
// applies an engine operation to the host in the execution context.
package handler

import (
	"sort"
	"strings"

	"github.com/dshills/shortcuts/internal/dispatcher/execctx"
	"github.com/dshills/shortcuts/internal/input"
)

// Handler executes actions the router sends it.
type Handler interface {
	// Handle executes the action.
	Handle(action input.Action, ctx *execctx.ExecutionContext) Result

	// CanHandle reports whether Handle accepts actionName.
	CanHandle(actionName string) bool
}

// ActionFunc executes a single action.
type ActionFunc func(action input.Action, ctx *execctx.ExecutionContext) Result

// HandlerFunc adapts a function to Handler. It accepts every action, so it
// suits a router fallback.
type HandlerFunc ActionFunc

// Handle calls f.
func (f HandlerFunc) Handle(action input.Action, ctx *execctx.ExecutionContext) Result {
	if f == nil {
		return Errorf("no handler for %s", action.Name)
	}
	return f(action, ctx)
}

// CanHandle always returns true.
func (f HandlerFunc) CanHandle(string) bool {
	return true
}

// NamespaceHandler owns every action under one prefix, such as "line" for
// "line.join".
type NamespaceHandler interface {
	// HandleAction executes an action within the namespace.
	HandleAction(action input.Action, ctx *execctx.ExecutionContext) Result

	// CanHandle reports whether actionName is one of Actions.
	CanHandle(actionName string) bool

	// Namespace returns the prefix, without the dot.
	Namespace() string

	// Actions returns the full names of every action handled, sorted.
	Actions() []string
}

// NewNamespaceAdapter exposes h as a Handler.
func NewNamespaceAdapter(h NamespaceHandler) Handler {
	return namespaceAdapter{h}
}

type namespaceAdapter struct {
	NamespaceHandler
}

func (a namespaceAdapter) Handle(action input.Action, ctx *execctx.ExecutionContext) Result {
	return a.HandleAction(action, ctx)
}

// BaseNamespaceHandler is a NamespaceHandler backed by a table of
// ActionFuncs. Embed it and Register actions in the constructor.
type BaseNamespaceHandler struct {
	namespace string
	actions   map[string]ActionFunc
}

// NewBaseNamespaceHandler creates an empty handler for namespace.
func NewBaseNamespaceHandler(namespace string) *BaseNamespaceHandler {
	return &BaseNamespaceHandler{
		namespace: namespace,
		actions:   make(map[string]ActionFunc),
	}
}

// Register binds name to fn. A name outside the namespace panics, since
// the router could never deliver it.
func (h *BaseNamespaceHandler) Register(name string, fn ActionFunc) {
	if !strings.HasPrefix(name, h.namespace+".") {
		panic("handler: action " + name + " is outside namespace " + h.namespace)
	}
	h.actions[name] = fn
}

// Namespace implements NamespaceHandler.
func (h *BaseNamespaceHandler) Namespace() string {
	return h.namespace
}

// CanHandle implements NamespaceHandler.
func (h *BaseNamespaceHandler) CanHandle(actionName string) bool {
	_, ok := h.actions[actionName]
	return ok
}

// Actions implements NamespaceHandler.
func (h *BaseNamespaceHandler) Actions() []string {
	names := make([]string, 0, len(h.actions))
	for name := range h.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HandleAction implements NamespaceHandler.
func (h *BaseNamespaceHandler) HandleAction(action input.Action, ctx *execctx.ExecutionContext) Result {
	fn, ok := h.actions[action.Name]
	if !ok {
		return Errorf("%s: no action %s", h.namespace, action.Name)
	}
	return fn(action, ctx)
}
