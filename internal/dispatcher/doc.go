// Package dispatcher routes actions to handlers and coordinates execution.
//
// An action name is "namespace.action". The Router looks the namespace up
// and hands the action to the registered NamespaceHandler. Three
// namespaces ship with the package and are installed by RegisterDefaults:
//
//   - line: insertAbove, insertBelow, delete, join, duplicate
//   - select: word, line, lineStart, lineEnd, boundary, brackets, quotes
//   - case: upper, lower, title, transform
//
// # Execution
//
// When an action is dispatched:
//
//  1. The repeat count is checked against Config.MaxRepeatCount
//  2. The router finds the handler
//  3. An ExecutionContext is built with the engine, host and logger
//  4. The handler runs (with optional panic recovery)
//  5. Metrics are recorded (if enabled)
//
// Handlers read the host, compute the new state with the engine, and write
// it back as a single edit followed by the new selections. Preview runs the
// same handler in dry-run mode and leaves the host untouched.
//
// # Thread Safety
//
// The dispatcher is safe for concurrent use. Serialising edits to a single
// host is the caller's job.
package dispatcher
