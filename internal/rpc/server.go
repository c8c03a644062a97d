package rpc

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/dshills/shortcuts/internal/dispatcher"
	"github.com/dshills/shortcuts/internal/dispatcher/handler"
	"github.com/dshills/shortcuts/internal/engine"
	"github.com/dshills/shortcuts/internal/host"
	"github.com/dshills/shortcuts/internal/logging"
)

// MaxLineSize is the longest request line accepted.
const MaxLineSize = 64 << 20

// Server answers requests with a dispatcher. Each request carries its own
// document, so the server holds no document state between requests.
type Server struct {
	dispatcher *dispatcher.Dispatcher
	logger     *logging.Logger
	newID      func() string
	requests   int
	failures   int
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithIDGenerator sets the function that names requests without an id.
func WithIDGenerator(f func() string) Option {
	return func(s *Server) {
		s.newID = f
	}
}

// NewServer creates a server using d.
func NewServer(d *dispatcher.Dispatcher, opts ...Option) *Server {
	s := &Server{
		dispatcher: d,
		logger:     logging.Nop(),
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.WithComponent("rpc")
	return s
}

// Serve reads requests from r until EOF or until ctx is done, writing one
// response line per request to w. Requests are handled in order.
func (s *Server) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	bw := bufio.NewWriter(w)

	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}

		out := s.Handle(line)
		if _, err := bw.Write(append(out, '\n')); err != nil {
			return fmt.Errorf("writing response: %w", err)
		}
		if err := bw.Flush(); err != nil {
			return fmt.Errorf("writing response: %w", err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading requests: %w", err)
	}

	s.logger.Info("served %d requests, %d failed", s.requests, s.failures)
	if m := s.dispatcher.Metrics(); m != nil {
		snap := m.Snapshot()
		s.logger.WithFields(map[string]any{
			"dispatches": snap.TotalDispatches,
			"noops":      snap.TotalNoOps,
			"errors":     snap.TotalErrors,
			"previews":   snap.TotalPreviews,
			"edits":      snap.TotalEdits,
			"avg":        snap.AverageDuration,
		}).Info("dispatch metrics")
	}
	return nil
}

// Handle answers one request line. It never fails: problems are reported
// in the response.
func (s *Server) Handle(line []byte) []byte {
	s.requests++
	resp := s.respond(line)
	if resp.Err != nil {
		s.failures++
		s.logger.Warn("request %s: %v", resp.ID, resp.Err)
	}

	out, err := resp.Encode()
	if err != nil {
		s.logger.Error("encoding response %s: %v", resp.ID, err)
		out, _ = Response{ID: resp.ID, Status: handler.StatusError.String(), Err: err}.Encode()
	}
	return out
}

func (s *Server) respond(line []byte) Response {
	req, err := ParseRequest(line)
	if req.ID == "" {
		req.ID = s.newID()
	}
	if err != nil {
		return Response{ID: req.ID, Status: handler.StatusError.String(), Err: err}
	}

	s.logger.Debug("request %s: %s", req.ID, req.Action)

	b := host.NewFromLines(req.Lines, req.Selections...)
	var result handler.Result
	if req.Preview {
		result = s.dispatcher.Preview(b, req.Action)
	} else {
		result = s.dispatcher.Dispatch(b, req.Action)
	}

	resp := Response{
		ID:         req.ID,
		Status:     result.Status.String(),
		Lines:      b.Lines(),
		Selections: b.Selections(),
		Edits:      result.Edits,
		Err:        result.Error,
	}
	if v, ok := result.GetData(handler.DataState); ok {
		if st, ok := v.(engine.State); ok {
			resp.Lines = st.Lines()
			resp.Selections = st.Selections.All()
			resp.Edits = nil
		}
	}
	return resp
}
