package region

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStats(t *testing.T) {
	tests := []struct {
		name   string
		layout []string
		want   Stats
	}{
		{
			name:   "empty table",
			layout: []string{"-:1000"},
			want: Stats{
				Capacity:    1000,
				FreeBytes:   1000,
				FreeRegions: 1,
				LargestFree: 1000,
			},
		},
		{
			name:   "full table",
			layout: []string{"A:600", "B:400"},
			want: Stats{
				Capacity:     1000,
				OwnedBytes:   1000,
				OwnedRegions: 2,
				Processes:    2,
			},
		},
		{
			name:   "fragmented",
			layout: []string{"-:100", "A:200", "-:300", "A:100", "B:100", "-:200"},
			want: Stats{
				Capacity:      1000,
				FreeBytes:     600,
				OwnedBytes:    400,
				FreeRegions:   3,
				OwnedRegions:  3,
				Processes:     2,
				LargestFree:   300,
				Fragmentation: 0.5,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := newTestTable(t, tt.layout...).Stats()
			assert.InDelta(t, tt.want.Fragmentation, got.Fragmentation, 1e-9)
			got.Fragmentation = tt.want.Fragmentation
			assert.Equal(t, tt.want, got)
		})
	}
}
