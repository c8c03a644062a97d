// Package input defines the actions that drive shortcuts.
//
// An Action names an operation in "namespace.action" form (for example
// "line.join" or "case.upper") and carries its arguments. Actions arrive
// from the command line, the JSON-lines protocol, or Lua scripts, and the
// dispatcher routes them to handlers by namespace.
package input
