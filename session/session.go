// Package session wraps a region table in an explicitly owned simulation
// session.
//
// A Session is created once with a fixed capacity and serializes every
// top-level operation behind a mutex, so a single session may be shared by
// concurrent callers. Operations return the human-readable messages printed by
// the command loop; the underlying region errors are returned unchanged so
// callers can still match them with errors.Is.
package session

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/joshuapare/memsim/region"
)

// Messages reported by Compact.
const (
	MsgCompacted        = "Memory compaction completed."
	MsgNothingToCompact = "No allocated memory to compact."
)

// Options configures a Session.
type Options struct {
	// Logger receives operation logs. Default: discard.
	Logger *slog.Logger

	// Registerer receives the session metrics. Default: not registered.
	Registerer prometheus.Registerer
}

// Session owns one region table for its whole lifetime.
type Session struct {
	mu      sync.Mutex
	table   *region.Table
	log     *slog.Logger
	metrics *metrics
}

// New creates a session whose address space spans [0, capacity-1].
func New(capacity region.Address, opts Options) (*Session, error) {
	t, err := region.New(capacity)
	if err != nil {
		return nil, err
	}

	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	s := &Session{
		table:   t,
		log:     log,
		metrics: newMetrics(opts.Registerer),
	}
	s.metrics.observe(t.Stats())
	log.Debug("session created", "capacity", capacity)
	return s, nil
}

// Capacity returns the size of the address space.
func (s *Session) Capacity() region.Address {
	return s.table.Capacity()
}

// Allocate requests size bytes for pid using strategy and returns a message
// naming the allocated range.
func (s *Session) Allocate(pid string, size region.Address, strategy region.Strategy) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.table.Allocate(region.ProcessID(pid), size, strategy)
	if err != nil {
		kind, _ := region.KindOf(err)
		s.metrics.allocationFailure.WithLabelValues(kind.String()).Inc()
		s.log.Warn("allocation rejected",
			"pid", pid, "size", size, "strategy", strategy.String(), "reason", kind.String())
		return "", err
	}

	s.metrics.allocations.WithLabelValues(strategy.Name()).Inc()
	s.metrics.observe(s.table.Stats())
	s.log.Debug("allocated",
		"pid", pid, "size", size, "strategy", strategy.Name(), "start", a.Start, "end", a.End)
	return a.String(), nil
}

// Release frees all memory owned by pid.
func (s *Session) Release(pid string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	released, err := s.table.Release(region.ProcessID(pid))
	if err != nil {
		s.metrics.releaseFailures.Inc()
		s.log.Warn("release rejected", "pid", pid, "err", err)
		return "", err
	}

	s.metrics.releases.Inc()
	s.metrics.observe(s.table.Stats())
	s.log.Debug("released", "pid", pid, "bytes", released, "regions", s.table.Len())
	return fmt.Sprintf("Released memory allocated to Process %s", pid), nil
}

// Compact moves all allocations to the bottom of the address space. Addresses
// previously reported by Allocate may change.
func (s *Session) Compact() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	report := s.table.Compact()
	if !report.Compacted {
		s.log.Debug("compaction skipped: nothing allocated")
		return MsgNothingToCompact
	}

	var moved region.Address
	for _, m := range report.Moves {
		moved += m.Size
		s.log.Debug("relocated",
			"owner", m.Owner.Label(), "from", m.OldStart, "to", m.NewStart, "size", m.Size)
	}
	s.metrics.compactions.Inc()
	s.metrics.bytesMoved.Add(float64(moved))
	s.metrics.observe(s.table.Stats())
	s.log.Info("compacted", "moves", len(report.Moves), "moved_bytes", moved, "free_bytes", report.FreeBytes)
	return MsgCompacted
}

// Status returns the current layout in address order.
func (s *Session) Status() []region.Region {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table.Regions()
}

// Stats returns layout statistics.
func (s *Session) Stats() region.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table.Stats()
}

// Verify checks the table invariants.
func (s *Session) Verify() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table.Verify()
}
