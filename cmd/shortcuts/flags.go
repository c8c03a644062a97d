package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dshills/shortcuts/internal/engine/buffer"
	"github.com/dshills/shortcuts/internal/engine/cursor"
	"github.com/dshills/shortcuts/internal/input"
	"github.com/dshills/shortcuts/internal/render"
)

// errHelp is returned when -h was given and usage has been printed.
var errHelp = flag.ErrHelp

// Output formats.
const (
	formatText = "text"
	formatView = "view"
	formatJSON = "json"
)

// options holds the parsed command line.
type options struct {
	command string

	configPath string
	logLevel   string
	metrics    bool
	watch      bool

	actions    []input.Action
	selections []cursor.Selection
	count      int
	preview    bool
	format     string
	clipboard  bool
	inPlace    bool
	lineNums   bool
	tabSize    int
	timeout    time.Duration

	script  string
	docPath string
}

// actionList collects repeated -a flags.
type actionList []input.Action

func (l *actionList) String() string {
	names := make([]string, len(*l))
	for i, a := range *l {
		names[i] = a.String()
	}
	return strings.Join(names, ",")
}

func (l *actionList) Set(s string) error {
	a, err := input.ParseAction(s)
	if err != nil {
		return err
	}
	*l = append(*l, a.WithSource(input.SourceCLI))
	return nil
}

// selectionList collects repeated -s flags.
type selectionList []cursor.Selection

func (l *selectionList) String() string {
	parts := make([]string, len(*l))
	for i, sel := range *l {
		parts[i] = render.Selection(sel)
	}
	return strings.Join(parts, ",")
}

func (l *selectionList) Set(s string) error {
	for _, part := range strings.Split(s, ",") {
		sel, err := parseSelection(part)
		if err != nil {
			return err
		}
		*l = append(*l, sel)
	}
	return nil
}

// parseSelection parses "line:ch" for a cursor or "line:ch-line:ch" for an
// anchor and head. Positions are 0-based.
func parseSelection(s string) (cursor.Selection, error) {
	s = strings.TrimSpace(s)
	from, to, ranged := strings.Cut(s, "-")
	anchor, err := parsePoint(from)
	if err != nil {
		return cursor.Selection{}, fmt.Errorf("selection %q: %w", s, err)
	}
	if !ranged {
		return cursor.NewCursorSelection(anchor), nil
	}
	head, err := parsePoint(to)
	if err != nil {
		return cursor.Selection{}, fmt.Errorf("selection %q: %w", s, err)
	}
	return cursor.NewSelection(anchor, head), nil
}

func parsePoint(s string) (buffer.Point, error) {
	ls, cs, ok := strings.Cut(s, ":")
	if !ok {
		return buffer.Point{}, errors.New("want line:ch")
	}
	line, err := strconv.Atoi(ls)
	if err != nil || line < 0 {
		return buffer.Point{}, fmt.Errorf("bad line %q", ls)
	}
	ch, err := strconv.Atoi(cs)
	if err != nil || ch < 0 {
		return buffer.Point{}, fmt.Errorf("bad column %q", cs)
	}
	return buffer.Point{Line: line, Ch: ch}, nil
}

// parseArgs parses the command line. The first argument may name a
// subcommand: apply (the default), serve, script, actions or version.
func parseArgs(args []string, stderr io.Writer) (options, error) {
	opts := options{command: "apply"}
	if len(args) > 0 {
		switch args[0] {
		case "apply", "serve", "script", "actions", "version":
			opts.command = args[0]
			args = args[1:]
		}
	}

	fs := flag.NewFlagSet("shortcuts "+opts.command, flag.ContinueOnError)
	fs.SetOutput(stderr)

	var actions actionList
	var sels selectionList
	var showVersion bool

	fs.StringVar(&opts.configPath, "config", "", "Path to settings file (TOML or YAML)")
	fs.StringVar(&opts.configPath, "c", "", "Path to settings file (shorthand)")
	fs.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.BoolVar(&opts.metrics, "metrics", false, "Log dispatch metrics on exit")
	fs.BoolVar(&showVersion, "version", false, "Show version information")
	fs.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	switch opts.command {
	case "apply", "script":
		if opts.command == "apply" {
			fs.Var(&actions, "action", "Action to run, as name or name:arg (repeatable)")
			fs.Var(&actions, "a", "Action to run (shorthand)")
			fs.IntVar(&opts.count, "count", 1, "Repeat count for each action")
			fs.IntVar(&opts.count, "n", 1, "Repeat count (shorthand)")
			fs.BoolVar(&opts.preview, "preview", false, "Compute the result without applying edits")
		} else {
			fs.DurationVar(&opts.timeout, "timeout", 5*time.Second, "Script execution timeout")
		}
		fs.Var(&sels, "sel", "Selection as line:ch or line:ch-line:ch, 0-based (repeatable)")
		fs.Var(&sels, "s", "Selection (shorthand)")
		fs.StringVar(&opts.format, "format", formatText, "Output format (text, view, json)")
		fs.StringVar(&opts.format, "f", formatText, "Output format (shorthand)")
		fs.BoolVar(&opts.clipboard, "clipboard", false, "Read the document from and write it to the clipboard")
		fs.BoolVar(&opts.inPlace, "w", false, "Write the result back to the input file")
		fs.BoolVar(&opts.lineNums, "line-numbers", false, "Show line numbers in view output")
		fs.IntVar(&opts.tabSize, "tab-size", 4, "Tab width in view output")
	case "serve":
		fs.BoolVar(&opts.watch, "watch", false, "Reload the settings file when it changes")
	}

	fs.Usage = func() { usage(fs, opts.command) }

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if showVersion {
		opts.command = "version"
		return opts, nil
	}

	opts.actions = actions
	opts.selections = sels
	rest := fs.Args()

	switch opts.command {
	case "apply":
		if len(actions) == 0 {
			return opts, errors.New("at least one -a action is required")
		}
		if opts.count < 1 {
			return opts, fmt.Errorf("invalid count %d", opts.count)
		}
		if len(rest) > 1 {
			return opts, errors.New("at most one document may be given")
		}
		if len(rest) == 1 {
			opts.docPath = rest[0]
		}
	case "script":
		if len(rest) == 0 || len(rest) > 2 {
			return opts, errors.New("usage: shortcuts script [options] file.lua [document]")
		}
		opts.script = rest[0]
		if len(rest) == 2 {
			opts.docPath = rest[1]
		}
	default:
		if len(rest) > 0 {
			return opts, fmt.Errorf("unexpected arguments: %s", strings.Join(rest, " "))
		}
	}

	switch opts.format {
	case "", formatText, formatView, formatJSON:
	default:
		return opts, fmt.Errorf("invalid format %q (must be text, view, or json)", opts.format)
	}
	switch opts.logLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return opts, fmt.Errorf("invalid log level %q (must be debug, info, warn, or error)", opts.logLevel)
	}
	if opts.inPlace && (opts.docPath == "" || opts.docPath == "-" || opts.clipboard) {
		return opts, errors.New("-w needs a document file")
	}
	if opts.inPlace && (opts.preview || (opts.format != "" && opts.format != formatText)) {
		return opts, errors.New("-w cannot be combined with -preview or -format")
	}
	return opts, nil
}

func usage(fs *flag.FlagSet, command string) {
	w := fs.Output()
	fmt.Fprintf(w, "shortcuts - selection and line transforms for plain text\n\n")
	switch command {
	case "serve":
		fmt.Fprintf(w, "Usage: shortcuts serve [options]\n\n")
		fmt.Fprintf(w, "Reads one JSON request per line on stdin and writes one response per line.\n\n")
	case "script":
		fmt.Fprintf(w, "Usage: shortcuts script [options] file.lua [document]\n\n")
	case "actions":
		fmt.Fprintf(w, "Usage: shortcuts actions\n\n")
	default:
		fmt.Fprintf(w, "Usage: shortcuts [apply] [options] -a action [document]\n")
		fmt.Fprintf(w, "       shortcuts serve|script|actions|version\n\n")
	}
	fmt.Fprintf(w, "Options:\n")
	fs.PrintDefaults()
	if command == "apply" {
		fmt.Fprintf(w, "\nExamples:\n")
		fmt.Fprintf(w, "  shortcuts -a line.duplicate -s 2:0 main.go\n")
		fmt.Fprintf(w, "  shortcuts -a select.word -a case.title -f view notes.txt\n")
		fmt.Fprintf(w, "  shortcuts -a case.transform:upper -clipboard\n")
	}
}
