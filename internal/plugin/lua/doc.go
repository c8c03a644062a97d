// Package lua runs Lua scripts that drive editing actions on a buffer.
//
// A script sees one global table, sc:
//
//	sc.run(name [, arg [, count]])        dispatch an action; returns its status
//	sc.lines()                            all lines as an array
//	sc.line(n)                            line n (0-based)
//	sc.line_count()                       number of lines
//	sc.text()                             the whole document
//	sc.selections()                       array of {anchor={line,ch}, head={line,ch}}
//	sc.set_cursor(line, ch)               replace all selections with one cursor
//	sc.set_selection(al, ac, hl, hc)      replace all selections with one range
//	sc.add_selection(al, ac [, hl, hc])   add a selection or cursor
//	sc.log(msg)                           write to the log at info level
//
// Positions are 0-based, as everywhere else. An action that fails raises a
// Lua error, which ends the script unless it is caught with pcall.
//
// Scripts run in a sandbox: only the base, table, string and math
// libraries are loaded, file loading functions are removed, and require
// only resolves those libraries. Each run has a timeout.
package lua
