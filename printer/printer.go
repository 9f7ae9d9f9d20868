// Package printer renders region tables and statistics as text or JSON.
package printer

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/joshuapare/memsim/region"
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs human-readable text format.
	FormatText Format = "text"

	// FormatJSON outputs JSON format.
	FormatJSON Format = "json"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json).
	// Default: FormatText
	Format Format

	// Color highlights owners in text output. Ignored for JSON.
	// Default: false
	Color bool
}

// DefaultOptions returns plain text output.
func DefaultOptions() Options {
	return Options{Format: FormatText}
}

// Printer handles formatted output of region tables.
type Printer struct {
	opts   Options
	writer io.Writer

	num   *message.Printer
	free  *color.Color
	owned *color.Color
	label *color.Color
}

// New creates a Printer writing to w.
//
// Example:
//
//	p := printer.New(os.Stdout, printer.DefaultOptions())
//	p.PrintStatus(sess.Status())
func New(w io.Writer, opts Options) *Printer {
	if opts.Format == "" {
		opts.Format = FormatText
	}

	p := &Printer{
		opts:   opts,
		writer: w,
		num:    message.NewPrinter(language.English),
		free:   color.New(color.FgGreen),
		owned:  color.New(color.FgCyan),
		label:  color.New(color.Bold),
	}
	for _, c := range []*color.Color{p.free, p.owned, p.label} {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// PrintStatus prints the regions in the order given, one per line in text mode
// ("Addresses [start:end] Free|Process <id>") or as a JSON array.
func (p *Printer) PrintStatus(regions []region.Region) error {
	switch p.opts.Format {
	case FormatText:
		return p.printStatusText(regions)
	case FormatJSON:
		return p.printStatusJSON(regions)
	default:
		return fmt.Errorf("printer: unsupported format %q", p.opts.Format)
	}
}

// PrintStats prints usage and fragmentation figures.
func (p *Printer) PrintStats(s region.Stats) error {
	switch p.opts.Format {
	case FormatText:
		return p.printStatsText(s)
	case FormatJSON:
		return p.printStatsJSON(s)
	default:
		return fmt.Errorf("printer: unsupported format %q", p.opts.Format)
	}
}
