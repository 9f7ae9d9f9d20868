package region

// selectFree returns the table index of the free region that strategy s picks
// for a request of size bytes, or -1 if no free region is large enough.
//
// A single pass in address order is enough for all three strategies: strict
// comparisons keep the earliest candidate on ties, which is the one with the
// lowest start address.
func (t *Table) selectFree(size Address, s Strategy) int {
	best := -1
	var bestLen Address

	for i, r := range t.regions {
		if !r.Owner.IsFree() {
			continue
		}
		n := r.Len()
		if n < size {
			continue
		}

		switch s {
		case FirstFit:
			return i
		case BestFit:
			if best < 0 || n < bestLen {
				best, bestLen = i, n
			}
		case WorstFit:
			if best < 0 || n > bestLen {
				best, bestLen = i, n
			}
		}
	}
	return best
}
