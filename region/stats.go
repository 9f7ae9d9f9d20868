package region

// Stats summarizes the table layout.
type Stats struct {
	Capacity     Address
	FreeBytes    Address
	OwnedBytes   Address
	FreeRegions  int
	OwnedRegions int
	Processes    int
	LargestFree  Address // size of the largest free region (0 if memory is full)

	// Fragmentation is 1 - LargestFree/FreeBytes: 0 when all free space is in one
	// region (or nothing is free), approaching 1 as free space splinters.
	Fragmentation float64
}

// Stats computes layout statistics in one pass over the table.
func (t *Table) Stats() Stats {
	s := Stats{Capacity: t.capacity}
	pids := make(map[ProcessID]struct{})

	for _, r := range t.regions {
		n := r.Len()
		pid, owned := r.Owner.ProcessID()
		if !owned {
			s.FreeBytes += n
			s.FreeRegions++
			s.LargestFree = max(s.LargestFree, n)
			continue
		}
		s.OwnedBytes += n
		s.OwnedRegions++
		pids[pid] = struct{}{}
	}

	s.Processes = len(pids)
	if s.FreeBytes > 0 {
		s.Fragmentation = 1 - float64(s.LargestFree)/float64(s.FreeBytes)
	}
	return s
}
