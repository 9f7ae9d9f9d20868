package region

import (
	"errors"
	"fmt"
)

// ErrKind classifies allocator errors so callers can branch on intent rather
// than text.
type ErrKind int

const (
	ErrKindInvalidSize        ErrKind = iota // requested size is not a positive integer
	ErrKindInvalidStrategy                   // strategy code not one of F, B, W
	ErrKindInsufficientMemory                // no single free region is large enough
	ErrKindNotAllocated                      // release of a process that owns nothing
	ErrKindInvalidProcess                    // empty process id
	ErrKindInvalidCapacity                   // table capacity is not positive
)

var kindNames = [...]string{
	ErrKindInvalidSize:        "invalid_size",
	ErrKindInvalidStrategy:    "invalid_strategy",
	ErrKindInsufficientMemory: "insufficient_memory",
	ErrKindNotAllocated:       "not_allocated",
	ErrKindInvalidProcess:     "invalid_process",
	ErrKindInvalidCapacity:    "invalid_capacity",
}

// String returns a stable snake_case name, suitable for log fields and metric labels.
func (k ErrKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Error is a typed allocator error. The request details that caused it are
// kept alongside the message.
type Error struct {
	Kind ErrKind
	Msg  string
	PID  ProcessID // process named by the failed request, if any
	Size Address   // requested size, if any
	Code string    // rejected strategy code, if any
}

func (e *Error) Error() string { return e.Msg }

// Is matches any *Error of the same kind, so errors.Is(err, ErrNotAllocated)
// works for errors carrying request details.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinel values for errors.Is comparisons.
var (
	// ErrInvalidSize indicates a non-positive allocation size.
	ErrInvalidSize = &Error{Kind: ErrKindInvalidSize, Msg: "invalid size: size must be positive"}

	// ErrInvalidStrategy indicates an unrecognized placement strategy.
	ErrInvalidStrategy = &Error{Kind: ErrKindInvalidStrategy, Msg: "invalid strategy: use F, B, or W"}

	// ErrInsufficientMemory indicates that no free region can hold the request.
	ErrInsufficientMemory = &Error{Kind: ErrKindInsufficientMemory, Msg: "not enough contiguous memory"}

	// ErrNotAllocated indicates a release for a process owning no regions.
	ErrNotAllocated = &Error{Kind: ErrKindNotAllocated, Msg: "no memory allocated to process"}

	// ErrInvalidProcess indicates an empty process id.
	ErrInvalidProcess = &Error{Kind: ErrKindInvalidProcess, Msg: "process id must not be empty"}

	// ErrInvalidCapacity indicates a non-positive table capacity.
	ErrInvalidCapacity = &Error{Kind: ErrKindInvalidCapacity, Msg: "capacity must be positive"}
)

// KindOf returns the kind of err and true if err wraps an *Error.
func KindOf(err error) (ErrKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

func invalidSize(pid ProcessID, size Address) error {
	return &Error{
		Kind: ErrKindInvalidSize,
		Msg:  fmt.Sprintf("invalid size %d: size must be positive", size),
		PID:  pid,
		Size: size,
	}
}

func invalidStrategy(code string) error {
	return &Error{
		Kind: ErrKindInvalidStrategy,
		Msg:  fmt.Sprintf("invalid strategy '%s': use F, B, or W", code),
		Code: code,
	}
}

func insufficientMemory(pid ProcessID, size Address) error {
	return &Error{
		Kind: ErrKindInsufficientMemory,
		Msg:  fmt.Sprintf("not enough contiguous memory for process %s (%d bytes)", pid, size),
		PID:  pid,
		Size: size,
	}
}

func notAllocated(pid ProcessID) error {
	return &Error{
		Kind: ErrKindNotAllocated,
		Msg:  fmt.Sprintf("no memory allocated to process %s", pid),
		PID:  pid,
	}
}
