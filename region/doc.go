// Package region implements the region table of a simulated single-address-space
// memory manager.
//
// # Overview
//
// A Table partitions the address range [0, capacity-1] into an ordered sequence of
// contiguous, non-overlapping regions. Each region is either free or owned by a
// named process. No real memory is involved: the table models allocator policy
// only.
//
// # Operations
//
//   - Allocate(pid, size, strategy): carve size bytes from the low end of a free
//     region chosen by first-fit, best-fit or worst-fit
//   - Release(pid): free every region owned by pid, then merge adjacent holes
//   - Compact(): slide all owned regions down to address 0, preserving their
//     left-to-right order, leaving a single trailing free region
//   - Regions(): the current layout in address order
//
// # Placement Strategies
//
// All strategies consider only free regions at least as large as the request.
//
//	FirstFit  lowest start address
//	BestFit   smallest region, ties broken by lowest start
//	WorstFit  largest region, ties broken by lowest start
//
// # Invariants
//
// After every operation the regions tile [0, capacity-1] exactly, are sorted by
// start, and no two neighbours are both free. Verify checks these properties.
// Failed operations never mutate the table.
//
// # Usage Example
//
//	t, err := region.New(1000)
//	if err != nil {
//	    return err
//	}
//
//	a, err := t.Allocate("A", 200, region.FirstFit)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(a) // Allocated 200 bytes to Process A at addresses [0:199]
//
//	if _, err := t.Release("A"); err != nil {
//	    return err
//	}
//
// # Thread Safety
//
// Table instances are not thread-safe. Callers must synchronize access
// externally or go through the session package, which holds a lock around each
// top-level operation.
package region
