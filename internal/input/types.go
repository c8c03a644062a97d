package input

import (
	"fmt"
	"strings"
)

// ActionSource indicates the origin of an action.
type ActionSource uint8

const (
	// SourceCLI indicates the action came from command-line flags.
	SourceCLI ActionSource = iota
	// SourceRPC indicates the action came from a protocol request.
	SourceRPC
	// SourceScript indicates the action came from a Lua script.
	SourceScript
	// SourceAPI indicates the action was built in Go code.
	SourceAPI
)

// String returns a string representation of the action source.
func (s ActionSource) String() string {
	switch s {
	case SourceCLI:
		return "cli"
	case SourceRPC:
		return "rpc"
	case SourceScript:
		return "script"
	case SourceAPI:
		return "api"
	default:
		return "unknown"
	}
}

// ActionArgs holds arguments for an action.
type ActionArgs struct {
	// Mode is the case mode for case.transform ("upper", "lower", "title").
	Mode string

	// Direction is the boundary for select.boundary ("start", "end").
	Direction string

	// Extra holds additional key-value pairs for extensibility.
	Extra map[string]interface{}
}

// Get retrieves a value from Extra.
func (a ActionArgs) Get(key string) (interface{}, bool) {
	if a.Extra == nil {
		return nil, false
	}
	v, ok := a.Extra[key]
	return v, ok
}

// GetString retrieves a string value from Extra.
func (a ActionArgs) GetString(key string) string {
	if v, ok := a.Get(key); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// Action represents a command to be executed by the dispatcher.
type Action struct {
	// Name is the command identifier (e.g., "line.join", "case.title").
	Name string

	// Args contains command-specific arguments.
	Args ActionArgs

	// Source indicates where this action originated.
	Source ActionSource

	// Count is the repeat count. Zero and one both run the action once.
	Count int
}

// WithCount returns a copy of the action with the specified count.
func (a Action) WithCount(count int) Action {
	a.Count = count
	return a
}

// WithSource returns a copy of the action with the specified source.
func (a Action) WithSource(src ActionSource) Action {
	a.Source = src
	return a
}

// Namespace returns the part of the name before the first dot.
func (a Action) Namespace() string {
	ns, _, ok := strings.Cut(a.Name, ".")
	if !ok {
		return ""
	}
	return ns
}

// String returns the action name with any arguments.
func (a Action) String() string {
	var parts []string
	if a.Args.Mode != "" {
		parts = append(parts, "mode="+a.Args.Mode)
	}
	if a.Args.Direction != "" {
		parts = append(parts, "direction="+a.Args.Direction)
	}
	if a.Count > 1 {
		parts = append(parts, fmt.Sprintf("count=%d", a.Count))
	}
	if len(parts) == 0 {
		return a.Name
	}
	return a.Name + "(" + strings.Join(parts, ", ") + ")"
}

// ParseAction parses "name" or "name:arg". The argument fills Mode for the
// case namespace and Direction for the select namespace.
func ParseAction(s string) (Action, error) {
	name, arg, _ := strings.Cut(strings.TrimSpace(s), ":")
	if name == "" {
		return Action{}, fmt.Errorf("empty action name in %q", s)
	}
	a := Action{Name: name}
	if arg == "" {
		return a, nil
	}
	switch a.Namespace() {
	case "case":
		a.Args.Mode = arg
	case "select":
		a.Args.Direction = arg
	default:
		return Action{}, fmt.Errorf("action %q takes no argument", name)
	}
	return a, nil
}
