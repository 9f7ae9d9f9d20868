package session

import (
	"bytes"
	"fmt"
	"log/slog"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/memsim/region"
)

func newTestSession(t *testing.T, capacity region.Address) (*Session, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	s, err := New(capacity, Options{Registerer: reg})
	require.NoError(t, err)
	return s, reg
}

func TestNew_InvalidCapacity(t *testing.T) {
	s, err := New(0, Options{})
	require.ErrorIs(t, err, region.ErrInvalidCapacity)
	assert.Nil(t, s)
}

func TestSession_Messages(t *testing.T) {
	s, _ := newTestSession(t, 1000)
	assert.Equal(t, region.Address(1000), s.Capacity())

	msg, err := s.Allocate("A", 200, region.FirstFit)
	require.NoError(t, err)
	assert.Equal(t, "Allocated 200 bytes to Process A at addresses [0:199]", msg)

	msg, err = s.Allocate("B", 300, region.FirstFit)
	require.NoError(t, err)
	assert.Equal(t, "Allocated 300 bytes to Process B at addresses [200:499]", msg)

	msg, err = s.Release("A")
	require.NoError(t, err)
	assert.Equal(t, "Released memory allocated to Process A", msg)

	msg, err = s.Allocate("C", 100, region.BestFit)
	require.NoError(t, err)
	assert.Equal(t, "Allocated 100 bytes to Process C at addresses [0:99]", msg)

	assert.Equal(t, MsgCompacted, s.Compact())

	var lines []string
	for _, r := range s.Status() {
		lines = append(lines, r.String())
	}
	assert.Equal(t, []string{
		"Addresses [0:99] Process C",
		"Addresses [100:399] Process B",
		"Addresses [400:999] Free",
	}, lines)
	require.NoError(t, s.Verify())
}

func TestSession_Errors(t *testing.T) {
	s, _ := newTestSession(t, 1000)

	_, err := s.Allocate("X", -5, region.FirstFit)
	require.ErrorIs(t, err, region.ErrInvalidSize)

	_, err = s.Allocate("X", 10, region.Strategy('Z'))
	require.ErrorIs(t, err, region.ErrInvalidStrategy)

	_, err = s.Allocate("Y", 1001, region.FirstFit)
	require.ErrorIs(t, err, region.ErrInsufficientMemory)

	_, err = s.Release("Q")
	require.ErrorIs(t, err, region.ErrNotAllocated)

	assert.Equal(t, MsgNothingToCompact, s.Compact())
	assert.Len(t, s.Status(), 1)
}

func TestSession_Metrics(t *testing.T) {
	s, reg := newTestSession(t, 1000)

	_, err := s.Allocate("A", 100, region.FirstFit)
	require.NoError(t, err)
	_, err = s.Allocate("B", 100, region.BestFit)
	require.NoError(t, err)
	_, err = s.Allocate("C", 100, region.BestFit)
	require.NoError(t, err)
	_, _ = s.Allocate("D", 5000, region.WorstFit)
	_, _ = s.Allocate("D", 0, region.WorstFit)
	_, err = s.Release("B")
	require.NoError(t, err)
	_, _ = s.Release("nobody")
	s.Compact()

	m := s.metrics
	assert.InDelta(t, 1, testutil.ToFloat64(m.allocations.WithLabelValues("first-fit")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.allocations.WithLabelValues("best-fit")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.allocationFailure.WithLabelValues("insufficient_memory")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.allocationFailure.WithLabelValues("invalid_size")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.releases), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.releaseFailures), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.compactions), 0)
	// C moves from 200 down to 100.
	assert.InDelta(t, 100, testutil.ToFloat64(m.bytesMoved), 0)
	assert.InDelta(t, 800, testutil.ToFloat64(m.freeBytes), 0)
	assert.InDelta(t, 200, testutil.ToFloat64(m.ownedBytes), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.freeRegions), 0)

	n, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Positive(t, n)
}

func TestSession_Logging(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s, err := New(100, Options{Logger: log})
	require.NoError(t, err)

	_, err = s.Allocate("A", 10, region.WorstFit)
	require.NoError(t, err)
	_, err = s.Allocate("A", 1000, region.WorstFit)
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, `"msg":"allocated"`)
	assert.Contains(t, out, `"msg":"allocation rejected"`)
	assert.Contains(t, out, `"reason":"insufficient_memory"`)
}

// TestSession_Concurrent hammers one session from several goroutines and checks
// that the table stays consistent.
func TestSession_Concurrent(t *testing.T) {
	s, _ := newTestSession(t, 1<<16)

	var wg sync.WaitGroup
	for w := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pid := fmt.Sprintf("W%d", w)
			for i := range 200 {
				switch i % 4 {
				case 0, 1:
					_, _ = s.Allocate(pid, region.Address(16+i), region.FirstFit)
				case 2:
					_, _ = s.Release(pid)
				case 3:
					if i%40 == 3 {
						s.Compact()
					}
					_ = s.Stats()
				}
			}
		}()
	}
	wg.Wait()

	require.NoError(t, s.Verify())
	stats := s.Stats()
	assert.Equal(t, stats.Capacity, stats.FreeBytes+stats.OwnedBytes)
}
