package region

// Move records the relocation of one owned region during compaction.
type Move struct {
	Owner    Owner
	OldStart Address
	NewStart Address
	Size     Address
}

// CompactReport describes the outcome of Compact.
type CompactReport struct {
	// Compacted is false when nothing was allocated; the table is then untouched.
	Compacted bool

	// Moves lists every owned region whose start address changed, in the new
	// address order. Regions already in place are not listed.
	Moves []Move

	// FreeBytes is the size of the trailing free region (0 if memory is full).
	FreeBytes Address
}

// Compact slides every owned region down to address 0, keeping their current
// left-to-right order, lengths and owners, and leaves at most one free region
// at the top of the address space.
//
// This is the only operation that changes the address of an existing
// allocation. It never runs implicitly.
func (t *Table) Compact() CompactReport {
	owned := make([]Region, 0, len(t.regions))
	for _, r := range t.regions {
		if !r.Owner.IsFree() {
			owned = append(owned, r)
		}
	}
	if len(owned) == 0 {
		return CompactReport{FreeBytes: t.capacity}
	}

	var report CompactReport
	layout := make([]Region, 0, len(owned)+1)
	var next Address

	for _, r := range owned {
		n := r.Len()
		moved := Region{Owner: r.Owner, Start: next, End: next + n - 1}
		if moved.Start != r.Start {
			report.Moves = append(report.Moves, Move{
				Owner:    r.Owner,
				OldStart: r.Start,
				NewStart: moved.Start,
				Size:     n,
			})
		}
		layout = append(layout, moved)
		next += n
	}

	if next < t.capacity {
		layout = append(layout, Region{Owner: Free(), Start: next, End: t.capacity - 1})
		report.FreeBytes = t.capacity - next
	}

	t.regions = layout
	report.Compacted = true
	return report
}
