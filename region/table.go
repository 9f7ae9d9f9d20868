package region

import "slices"

// Table is an ordered sequence of regions partitioning [0, capacity-1].
//
// Regions are kept in a slice sorted by start address. Every mutation goes
// through replaceAt, insertAt or removeAt so the ordering is never disturbed.
type Table struct {
	capacity Address
	regions  []Region
}

// New creates a table with a single free region spanning [0, capacity-1].
func New(capacity Address) (*Table, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &Table{
		capacity: capacity,
		regions:  []Region{{Owner: Free(), Start: 0, End: capacity - 1}},
	}, nil
}

// Capacity returns the total number of addressable bytes.
func (t *Table) Capacity() Address { return t.capacity }

// Len returns the number of regions in the table.
func (t *Table) Len() int { return len(t.regions) }

// Regions returns a copy of the regions in address order.
func (t *Table) Regions() []Region { return slices.Clone(t.regions) }

// Allocate carves size bytes for pid out of the free region chosen by strategy.
//
// The owned part is taken from the low-address end of the chosen region. An
// exact fit re-tags the region; otherwise it is split and the remainder stays
// free immediately after the new allocation. Owned neighbours are never merged,
// even when they belong to the same process.
//
// Errors: ErrInvalidProcess, ErrInvalidSize, ErrInvalidStrategy,
// ErrInsufficientMemory. On error the table is unchanged.
func (t *Table) Allocate(pid ProcessID, size Address, strategy Strategy) (Allocation, error) {
	if pid == "" {
		return Allocation{}, ErrInvalidProcess
	}
	if size <= 0 {
		return Allocation{}, invalidSize(pid, size)
	}
	if !strategy.Valid() {
		return Allocation{}, invalidStrategy(strategy.String())
	}

	idx := t.selectFree(size, strategy)
	if idx < 0 {
		return Allocation{}, insufficientMemory(pid, size)
	}

	hole := t.regions[idx]
	owned := Region{Owner: OwnedBy(pid), Start: hole.Start, End: hole.Start + size - 1}

	t.replaceAt(idx, owned)
	if hole.Len() > size {
		t.insertAt(idx+1, Region{Owner: Free(), Start: owned.End + 1, End: hole.End})
	}

	return Allocation{
		PID:      pid,
		Size:     size,
		Start:    owned.Start,
		End:      owned.End,
		Strategy: strategy,
	}, nil
}

// Release frees every region owned by pid and merges the resulting holes with
// their free neighbours. It returns the number of bytes released.
//
// Errors: ErrNotAllocated if pid owns nothing, in which case the table is
// unchanged.
func (t *Table) Release(pid ProcessID) (Address, error) {
	var released Address
	for i, r := range t.regions {
		if !r.Owner.Is(pid) {
			continue
		}
		released += r.Len()
		t.replaceAt(i, Region{Owner: Free(), Start: r.Start, End: r.End})
	}
	if released == 0 {
		return 0, notAllocated(pid)
	}

	t.coalesce()
	return released, nil
}

// coalesce merges every run of consecutive free regions into one.
// Scanning resumes at the merged region, so runs of any length collapse.
func (t *Table) coalesce() {
	i := 0
	for i < len(t.regions)-1 {
		cur, next := t.regions[i], t.regions[i+1]
		if cur.Owner.IsFree() && next.Owner.IsFree() {
			t.replaceAt(i, Region{Owner: Free(), Start: cur.Start, End: next.End})
			t.removeAt(i + 1)
			continue
		}
		i++
	}
}

// Owned returns the regions owned by pid in address order.
func (t *Table) Owned(pid ProcessID) []Region {
	var out []Region
	for _, r := range t.regions {
		if r.Owner.Is(pid) {
			out = append(out, r)
		}
	}
	return out
}

// OwnedBytes returns the total size of all regions owned by pid.
func (t *Table) OwnedBytes(pid ProcessID) Address {
	var n Address
	for _, r := range t.regions {
		if r.Owner.Is(pid) {
			n += r.Len()
		}
	}
	return n
}

// Processes returns the ids owning at least one region, ordered by the address
// of their lowest region.
func (t *Table) Processes() []ProcessID {
	var out []ProcessID
	seen := make(map[ProcessID]struct{})
	for _, r := range t.regions {
		pid, ok := r.Owner.ProcessID()
		if !ok {
			continue
		}
		if _, dup := seen[pid]; dup {
			continue
		}
		seen[pid] = struct{}{}
		out = append(out, pid)
	}
	return out
}

func (t *Table) replaceAt(i int, r Region) { t.regions[i] = r }

func (t *Table) insertAt(i int, r Region) { t.regions = slices.Insert(t.regions, i, r) }

func (t *Table) removeAt(i int) { t.regions = slices.Delete(t.regions, i, i+1) }
