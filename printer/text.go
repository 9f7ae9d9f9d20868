package printer

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/joshuapare/memsim/region"
)

// printStatusText prints one status line per region.
func (p *Printer) printStatusText(regions []region.Region) error {
	for _, r := range regions {
		c := p.owned
		if r.Owner.IsFree() {
			c = p.free
		}
		if _, err := fmt.Fprintf(p.writer, "Addresses [%d:%d] %s\n",
			r.Start, r.End, c.Sprint(r.Owner.Label())); err != nil {
			return err
		}
	}
	return nil
}

// printStatsText prints an aligned summary block.
func (p *Printer) printStatsText(s region.Stats) error {
	rows := []struct {
		name  string
		value string
	}{
		{"Capacity", p.bytes(s.Capacity)},
		{"Allocated", p.bytes(s.OwnedBytes) + p.percent(s.OwnedBytes, s.Capacity)},
		{"Free", p.bytes(s.FreeBytes) + p.percent(s.FreeBytes, s.Capacity)},
		{"Largest hole", p.bytes(s.LargestFree)},
		{"Regions", p.num.Sprintf("%d free, %d allocated", s.FreeRegions, s.OwnedRegions)},
		{"Processes", p.num.Sprintf("%d", s.Processes)},
		{"Fragmentation", fmt.Sprintf("%.1f%%", s.Fragmentation*100)},
	}

	for _, row := range rows {
		if _, err := fmt.Fprintf(p.writer, "%s %s\n",
			p.label.Sprintf("%-14s", row.name+":"), row.value); err != nil {
			return err
		}
	}
	return nil
}

// bytes renders n as "1,048,576 bytes (1.0 MiB)".
func (p *Printer) bytes(n region.Address) string {
	if n < 1024 {
		return p.num.Sprintf("%d bytes", n)
	}
	return p.num.Sprintf("%d bytes (%s)", n, humanize.IBytes(uint64(n)))
}

func (p *Printer) percent(part, whole region.Address) string {
	if whole == 0 {
		return ""
	}
	return fmt.Sprintf(" [%.1f%%]", float64(part)*100/float64(whole))
}
