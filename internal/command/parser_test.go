package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/memsim/region"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Command
	}{
		{name: "request", line: "RQ P0 40000 W", want: Request{PID: "P0", Size: 40000, Strategy: region.WorstFit}},
		{name: "request lower case", line: "rq p1 10 b", want: Request{PID: "p1", Size: 10, Strategy: region.BestFit}},
		{name: "request long strategy", line: "RQ A 5 first", want: Request{PID: "A", Size: 5, Strategy: region.FirstFit}},
		{name: "negative size reaches the table", line: "RQ X -5 F", want: Request{PID: "X", Size: -5, Strategy: region.FirstFit}},
		{name: "extra whitespace", line: "  RQ\tA   7  F  ", want: Request{PID: "A", Size: 7, Strategy: region.FirstFit}},
		{name: "release", line: "RL P0", want: Release{PID: "P0"}},
		{name: "compact", line: "C", want: Compact{}},
		{name: "compact lower", line: "c", want: Compact{}},
		{name: "status", line: "STAT", want: Status{}},
		{name: "stats", line: "stats", want: Stats{}},
		{name: "help", line: "help", want: Help{}},
		{name: "exit", line: "X", want: Exit{}},
		{name: "blank", line: "   ", want: nil},
		{name: "comment", line: "# allocate the big one", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    error
		wantMsg string
	}{
		{
			name:    "request missing strategy",
			line:    "RQ P0 100",
			want:    ErrUsage,
			wantMsg: "RQ command format: RQ <process_id> <memory_size> <strategy>",
		},
		{
			name:    "request too many",
			line:    "RQ P0 100 F extra",
			want:    ErrUsage,
			wantMsg: "RQ command format",
		},
		{
			name:    "non-numeric size",
			line:    "RQ P0 lots F",
			want:    ErrBadSize,
			wantMsg: `memory size must be a positive integer: "lots"`,
		},
		{
			name:    "fractional size",
			line:    "RQ P0 1.5 F",
			want:    ErrBadSize,
			wantMsg: "memory size must be a positive integer",
		},
		{
			name:    "bad strategy",
			line:    "RQ P0 10 Z",
			want:    region.ErrInvalidStrategy,
			wantMsg: "invalid strategy 'Z': use F, B, or W",
		},
		{
			name:    "release missing pid",
			line:    "RL",
			want:    ErrUsage,
			wantMsg: "RL command format: RL <process_id>",
		},
		{
			name:    "compact with args",
			line:    "C now",
			want:    ErrUsage,
			wantMsg: "C command format: C",
		},
		{
			name:    "unknown",
			line:    "FREE P0",
			want:    ErrUnknownCommand,
			wantMsg: "unknown command: FREE\nAvailable commands:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.line)
			require.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Nil(t, got)
		})
	}
}
