package dispatcher

import (
	"sort"
	"sync"
	"time"

	"github.com/dshills/shortcuts/internal/dispatcher/handler"
	"github.com/dshills/shortcuts/internal/input"
)

// Metrics counts dispatches, their outcomes and the edits they produced.
type Metrics struct {
	mu sync.RWMutex

	actions  map[string]*ActionMetrics
	bySource map[input.ActionSource]uint64
	totals   MetricsSnapshot
}

// ActionMetrics holds the counters of one action.
type ActionMetrics struct {
	Name          string
	DispatchCount uint64
	PreviewCount  uint64
	NoOpCount     uint64
	ErrorCount    uint64
	EditCount     uint64
	TotalDuration time.Duration
	MaxDuration   time.Duration
	LastStatus    handler.ResultStatus
}

// AverageActionDuration returns the mean dispatch time of the action.
func (am *ActionMetrics) AverageActionDuration() time.Duration {
	if am.DispatchCount == 0 {
		return 0
	}
	return am.TotalDuration / time.Duration(am.DispatchCount)
}

// MetricsSnapshot is a point-in-time copy of the totals.
type MetricsSnapshot struct {
	TotalDispatches uint64
	TotalPreviews   uint64
	TotalNoOps      uint64
	TotalErrors     uint64
	TotalPanics     uint64
	TotalEdits      uint64
	TotalDuration   time.Duration
	AverageDuration time.Duration
	ActionCount     int
	BySource        map[string]uint64
}

// NewMetrics creates an empty collector.
func NewMetrics() *Metrics {
	return &Metrics{
		actions:  make(map[string]*ActionMetrics),
		bySource: make(map[input.ActionSource]uint64),
	}
}

// RecordDispatch counts one dispatch of action and its result. Edits of a
// preview are not counted since none were applied.
func (m *Metrics) RecordDispatch(action input.Action, elapsed time.Duration, result handler.Result, preview bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	am := m.actions[action.Name]
	if am == nil {
		am = &ActionMetrics{Name: action.Name}
		m.actions[action.Name] = am
	}
	am.DispatchCount++
	am.TotalDuration += elapsed
	am.MaxDuration = max(am.MaxDuration, elapsed)
	am.LastStatus = result.Status

	m.totals.TotalDispatches++
	m.totals.TotalDuration += elapsed
	m.bySource[action.Source]++

	if preview {
		am.PreviewCount++
		m.totals.TotalPreviews++
	} else {
		am.EditCount += uint64(len(result.Edits))
		m.totals.TotalEdits += uint64(len(result.Edits))
	}

	switch result.Status {
	case handler.StatusNoOp:
		am.NoOpCount++
		m.totals.TotalNoOps++
	case handler.StatusError:
		am.ErrorCount++
		m.totals.TotalErrors++
	}
}

// RecordPanic counts a recovered panic. The dispatch itself is recorded
// separately as an error.
func (m *Metrics) RecordPanic() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.totals.TotalPanics++
}

// ActionStats returns a copy of the counters for one action, or nil.
func (m *Metrics) ActionStats(name string) *ActionMetrics {
	m.mu.RLock()
	defer m.mu.RUnlock()

	am, ok := m.actions[name]
	if !ok {
		return nil
	}
	c := *am
	return &c
}

// TopActions returns up to n actions, most dispatched first, ties broken
// by name.
func (m *Metrics) TopActions(n int) []ActionMetrics {
	m.mu.RLock()
	out := make([]ActionMetrics, 0, len(m.actions))
	for _, am := range m.actions {
		out = append(out, *am)
	}
	m.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].DispatchCount != out[j].DispatchCount {
			return out[i].DispatchCount > out[j].DispatchCount
		}
		return out[i].Name < out[j].Name
	})
	return out[:min(n, len(out))]
}

// Snapshot returns the current totals.
func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s := m.totals
	s.ActionCount = len(m.actions)
	if s.TotalDispatches > 0 {
		s.AverageDuration = s.TotalDuration / time.Duration(s.TotalDispatches)
	}
	s.BySource = make(map[string]uint64, len(m.bySource))
	for src, n := range m.bySource {
		s.BySource[src.String()] = n
	}
	return s
}
