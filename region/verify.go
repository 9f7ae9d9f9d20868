package region

import (
	"errors"
	"fmt"
)

// ErrCorrupt indicates a table whose layout violates its invariants.
var ErrCorrupt = errors.New("region: table invariant violated")

// Verify checks the table invariants and returns an error wrapping ErrCorrupt
// describing the first violation found:
//
//   - the first region starts at 0 and the last ends at capacity-1
//   - every region has start <= end
//   - consecutive regions are contiguous (prev.End+1 == next.Start)
//   - no two consecutive regions are both free
//   - owned regions carry a non-empty process id
func (t *Table) Verify() error {
	if len(t.regions) == 0 {
		return fmt.Errorf("%w: empty table", ErrCorrupt)
	}
	if first := t.regions[0]; first.Start != 0 {
		return fmt.Errorf("%w: first region starts at %d", ErrCorrupt, first.Start)
	}
	if last := t.regions[len(t.regions)-1]; last.End != t.capacity-1 {
		return fmt.Errorf("%w: last region ends at %d, want %d", ErrCorrupt, last.End, t.capacity-1)
	}

	for i, r := range t.regions {
		if r.Start > r.End {
			return fmt.Errorf("%w: region %d has start %d > end %d", ErrCorrupt, i, r.Start, r.End)
		}
		if pid, ok := r.Owner.ProcessID(); ok && pid == "" {
			return fmt.Errorf("%w: region %d owned by empty process id", ErrCorrupt, i)
		}
		if i == 0 {
			continue
		}
		prev := t.regions[i-1]
		if prev.End+1 != r.Start {
			return fmt.Errorf("%w: gap or overlap between [%d:%d] and [%d:%d]",
				ErrCorrupt, prev.Start, prev.End, r.Start, r.End)
		}
		if prev.Owner.IsFree() && r.Owner.IsFree() {
			return fmt.Errorf("%w: adjacent free regions at %d and %d", ErrCorrupt, prev.Start, r.Start)
		}
	}
	return nil
}
