package printer

import (
	"encoding/json"

	"github.com/joshuapare/memsim/region"
)

// jsonRegion represents a region in JSON format.
type jsonRegion struct {
	Owner string `json:"owner"`
	PID   string `json:"pid,omitempty"`
	Free  bool   `json:"free"`
	Start int64  `json:"start"`
	End   int64  `json:"end"`
	Size  int64  `json:"size"`
}

// jsonStats represents table statistics in JSON format.
type jsonStats struct {
	Capacity      int64   `json:"capacity"`
	OwnedBytes    int64   `json:"owned_bytes"`
	FreeBytes     int64   `json:"free_bytes"`
	LargestFree   int64   `json:"largest_free"`
	FreeRegions   int     `json:"free_regions"`
	OwnedRegions  int     `json:"owned_regions"`
	Processes     int     `json:"processes"`
	Fragmentation float64 `json:"fragmentation"`
}

func (p *Printer) printStatusJSON(regions []region.Region) error {
	out := make([]jsonRegion, 0, len(regions))
	for _, r := range regions {
		pid, _ := r.Owner.ProcessID()
		out = append(out, jsonRegion{
			Owner: r.Owner.Label(),
			PID:   string(pid),
			Free:  r.Owner.IsFree(),
			Start: r.Start,
			End:   r.End,
			Size:  r.Len(),
		})
	}
	return p.encode(out)
}

func (p *Printer) printStatsJSON(s region.Stats) error {
	return p.encode(jsonStats{
		Capacity:      s.Capacity,
		OwnedBytes:    s.OwnedBytes,
		FreeBytes:     s.FreeBytes,
		LargestFree:   s.LargestFree,
		FreeRegions:   s.FreeRegions,
		OwnedRegions:  s.OwnedRegions,
		Processes:     s.Processes,
		Fragmentation: s.Fragmentation,
	})
}

func (p *Printer) encode(v any) error {
	enc := json.NewEncoder(p.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
