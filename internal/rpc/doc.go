// Package rpc serves editing actions over a JSON-lines protocol.
//
// Each input line is one request and produces exactly one output line.
// The edit is the smallest change that turns the old document into the
// new one:
//
//	{"id":"1","action":"line.join","lines":["a","  b"],
//	 "selections":[{"anchor":{"line":0,"ch":0},"head":{"line":0,"ch":0}}]}
//
//	{"id":"1","status":"ok","lines":["a b"],
//	 "selections":[{"anchor":{"line":0,"ch":1},"head":{"line":0,"ch":1}}],
//	 "edit":{"from":{"line":0,"ch":1},"to":{"line":1,"ch":1},"text":""}}
//
// Optional request fields: "args" ({"mode": ...} or {"direction": ...}),
// "count", "preview" (compute without applying), and "text" in place of
// "lines". A request without an id is answered with a generated one.
// Failures set "status":"error" and "error"; the document comes back
// unchanged.
package rpc
