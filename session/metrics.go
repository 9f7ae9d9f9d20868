package session

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/joshuapare/memsim/region"
)

const namespace = "memsim"

// metrics holds the collectors of one session. With a nil registerer the
// collectors still work but are not exported anywhere.
type metrics struct {
	allocations       *prometheus.CounterVec
	allocationFailure *prometheus.CounterVec
	releases          prometheus.Counter
	releaseFailures   prometheus.Counter
	compactions       prometheus.Counter
	bytesMoved        prometheus.Counter
	freeBytes         prometheus.Gauge
	ownedBytes        prometheus.Gauge
	freeRegions       prometheus.Gauge
}

func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)
	return &metrics{
		allocations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "allocations_total",
			Help:      "Successful allocations by placement strategy.",
		}, []string{"strategy"}),
		allocationFailure: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "allocation_failures_total",
			Help:      "Rejected allocation requests by reason.",
		}, []string{"reason"}),
		releases: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "releases_total",
			Help:      "Successful releases.",
		}),
		releaseFailures: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "release_failures_total",
			Help:      "Releases of processes owning no memory.",
		}),
		compactions: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "compactions_total",
			Help:      "Compactions that changed the layout.",
		}),
		bytesMoved: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "compaction_moved_bytes_total",
			Help:      "Bytes relocated by compaction.",
		}),
		freeBytes: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "free_bytes",
			Help:      "Bytes currently free.",
		}),
		ownedBytes: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "owned_bytes",
			Help:      "Bytes currently allocated to processes.",
		}),
		freeRegions: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "free_regions",
			Help:      "Number of free regions (holes).",
		}),
	}
}

// observe refreshes the layout gauges.
func (m *metrics) observe(s region.Stats) {
	m.freeBytes.Set(float64(s.FreeBytes))
	m.ownedBytes.Set(float64(s.OwnedBytes))
	m.freeRegions.Set(float64(s.FreeRegions))
}
