// Package main is the entry point for the shortcuts command.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/shortcuts/internal/app"
	"github.com/dshills/shortcuts/internal/dispatcher/handler"
	"github.com/dshills/shortcuts/internal/engine"
	"github.com/dshills/shortcuts/internal/engine/buffer"
	"github.com/dshills/shortcuts/internal/host"
	"github.com/dshills/shortcuts/internal/plugin/lua"
	"github.com/dshills/shortcuts/internal/render"
	"github.com/dshills/shortcuts/internal/rpc"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// cli carries the streams and clipboard a command runs against.
type cli struct {
	stdin     io.Reader
	stdout    io.Writer
	stderr    io.Writer
	clipboard app.Clipboard
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	c := &cli{stdin: stdin, stdout: stdout, stderr: stderr, clipboard: app.SystemClipboard{}}
	return c.run(args)
}

func (c *cli) run(args []string) int {
	opts, err := parseArgs(args, c.stderr)
	if err != nil {
		if errors.Is(err, errHelp) {
			return 0
		}
		fmt.Fprintf(c.stderr, "Error: %v\n", err)
		return 2
	}

	if opts.command == "version" {
		fmt.Fprintf(c.stdout, "shortcuts %s\n", version)
		fmt.Fprintf(c.stdout, "Commit: %s\n", commit)
		fmt.Fprintf(c.stdout, "Built: %s\n", date)
		return 0
	}

	application, err := app.New(app.Options{
		ConfigPath: opts.configPath,
		LogLevel:   opts.logLevel,
		LogOutput:  c.stderr,
		Watch:      opts.watch,
		Metrics:    opts.metrics,
	})
	if err != nil {
		fmt.Fprintf(c.stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Shutdown()

	switch opts.command {
	case "actions":
		for _, name := range application.Dispatcher().Actions() {
			fmt.Fprintln(c.stdout, name)
		}
		err = nil
	case "serve":
		err = c.serve(application)
	case "script":
		err = c.script(application, opts)
	default:
		err = c.apply(application, opts)
	}
	if err != nil {
		fmt.Fprintf(c.stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func (c *cli) serve(application *app.Application) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := rpc.NewServer(application.Dispatcher(), rpc.WithLogger(application.Logger()))
	err := srv.Serve(ctx, c.stdin, c.stdout)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// load reads the document and places the requested selections.
func (c *cli) load(opts options) (*host.Buffer, error) {
	src := app.Source{Path: opts.docPath, Stdin: c.stdin}
	if opts.clipboard {
		src.Clipboard = c.clipboard
	}
	text, err := app.ReadDocument(src)
	if err != nil {
		return nil, err
	}
	buf := host.New(text)
	if len(opts.selections) > 0 {
		if err := buf.SetSelections(opts.selections); err != nil {
			return nil, err
		}
	}
	return buf, nil
}

// apply runs each action in order. A preview chains dry runs through
// scratch buffers and leaves the document untouched.
func (c *cli) apply(application *app.Application, opts options) error {
	buf, err := c.load(opts)
	if err != nil {
		return err
	}
	d := application.Dispatcher()

	status := handler.StatusNoOp
	var edits []buffer.Edit
	for _, action := range opts.actions {
		action = action.WithCount(opts.count)
		var res handler.Result
		if opts.preview {
			res = d.Preview(buf, action)
			if v, ok := res.GetData(handler.DataState); ok {
				if st, ok := v.(engine.State); ok {
					buf = host.NewFromLines(st.Lines(), st.Selections.All()...)
				}
			}
		} else {
			res = d.Dispatch(buf, action)
			edits = append(edits, res.Edits...)
		}
		if res.IsError() {
			return fmt.Errorf("%s: %w", action, res.Error)
		}
		if res.IsOK() {
			status = handler.StatusOK
		}
	}
	return c.output(buf, opts, status, edits)
}

func (c *cli) script(application *app.Application, opts options) error {
	buf, err := c.load(opts)
	if err != nil {
		return err
	}
	before := buf.Revision()

	runner := lua.NewRunner(application.Dispatcher(), buf,
		[]lua.StateOption{lua.WithExecutionTimeout(opts.timeout), lua.WithOutput(c.stderr)},
		lua.WithLogger(application.Logger()),
	)
	defer runner.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := runner.RunFile(ctx, opts.script); err != nil {
		return err
	}

	status := handler.StatusNoOp
	if buf.Revision() != before {
		status = handler.StatusOK
	}
	return c.output(buf, opts, status, nil)
}

func (c *cli) output(buf *host.Buffer, opts options, status handler.ResultStatus, edits []buffer.Edit) error {
	switch opts.format {
	case formatView:
		ropts := render.DefaultOptions()
		ropts.TabSize = opts.tabSize
		ropts.LineNumbers = opts.lineNums
		return render.Write(c.stdout, buf.State(), ropts)
	case formatJSON:
		out, err := rpc.Response{
			Status:     status.String(),
			Lines:      buf.Lines(),
			Selections: buf.Selections(),
			Edits:      edits,
		}.Encode()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(c.stdout, "%s\n", out)
		return err
	}

	if opts.inPlace {
		info, err := os.Stat(opts.docPath)
		if err != nil {
			return err
		}
		return os.WriteFile(opts.docPath, []byte(buf.Text()), info.Mode().Perm())
	}
	var cb app.Clipboard
	if opts.clipboard {
		cb = c.clipboard
	}
	return app.WriteDocument(c.stdout, cb, buf.Text())
}
