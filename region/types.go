package region

import (
	"fmt"
	"strings"
)

// Address is a byte offset into the simulated address space.
type Address = int64

// ProcessID identifies the owner of a region. Compared by equality only.
type ProcessID string

const (
	// FreeLabel is the status label of an unowned region.
	FreeLabel = "Free"

	// processLabelPrefix precedes the process id in an owned region's label.
	processLabelPrefix = "Process "
)

// Owner is the tag of a region: either free or owned by exactly one process.
// The zero value is free.
type Owner struct {
	pid   ProcessID
	owned bool
}

// Free returns the owner tag of an unallocated region.
func Free() Owner { return Owner{} }

// OwnedBy returns the owner tag of a region allocated to pid.
func OwnedBy(pid ProcessID) Owner { return Owner{pid: pid, owned: true} }

// IsFree reports whether the region is unallocated.
func (o Owner) IsFree() bool { return !o.owned }

// ProcessID returns the owning process and true, or "" and false for a free region.
func (o Owner) ProcessID() (ProcessID, bool) { return o.pid, o.owned }

// Is reports whether the region is owned by pid.
func (o Owner) Is(pid ProcessID) bool { return o.owned && o.pid == pid }

// Label renders the owner as "Free" or "Process <id>".
func (o Owner) Label() string {
	if !o.owned {
		return FreeLabel
	}
	return processLabelPrefix + string(o.pid)
}

func (o Owner) String() string { return o.Label() }

// Region is a contiguous, inclusive address range [Start, End] with an owner.
type Region struct {
	Owner Owner
	Start Address
	End   Address
}

// Len returns the number of addresses covered by the region.
func (r Region) Len() Address { return r.End - r.Start + 1 }

// String renders the region as a status line, e.g. "Addresses [0:199] Process A".
func (r Region) String() string {
	return fmt.Sprintf("Addresses [%d:%d] %s", r.Start, r.End, r.Owner.Label())
}

// Strategy selects which free region satisfies an allocation request.
type Strategy byte

const (
	// FirstFit picks the candidate with the lowest start address.
	FirstFit Strategy = 'F'
	// BestFit picks the smallest candidate, lowest start on ties.
	BestFit Strategy = 'B'
	// WorstFit picks the largest candidate, lowest start on ties.
	WorstFit Strategy = 'W'
)

// Valid reports whether s is one of the recognized strategies.
func (s Strategy) Valid() bool {
	switch s {
	case FirstFit, BestFit, WorstFit:
		return true
	}
	return false
}

// Name returns the long name of the strategy.
func (s Strategy) Name() string {
	switch s {
	case FirstFit:
		return "first-fit"
	case BestFit:
		return "best-fit"
	case WorstFit:
		return "worst-fit"
	}
	return "unknown"
}

// String returns the single-letter code of the strategy.
func (s Strategy) String() string {
	if s == 0 {
		return ""
	}
	return string(rune(s))
}

// ParseStrategy converts a strategy code (F, B, W) or long name (first, best,
// worst, with or without a "-fit" suffix) into a Strategy. Matching is
// case-insensitive. Any other input yields an InvalidStrategy error.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "-fit") {
	case "f", "first":
		return FirstFit, nil
	case "b", "best":
		return BestFit, nil
	case "w", "worst":
		return WorstFit, nil
	}
	return 0, invalidStrategy(s)
}

// Allocation describes a successful Allocate call.
type Allocation struct {
	PID      ProcessID
	Size     Address
	Start    Address
	End      Address
	Strategy Strategy
}

// Region returns the owned region created by the allocation.
func (a Allocation) Region() Region {
	return Region{Owner: OwnedBy(a.PID), Start: a.Start, End: a.End}
}

func (a Allocation) String() string {
	return fmt.Sprintf("Allocated %d bytes to Process %s at addresses [%d:%d]",
		a.Size, a.PID, a.Start, a.End)
}
