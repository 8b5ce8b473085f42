package smallvec

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAlignment is returned when the configured alignment is not
	// a positive power of two.
	ErrInvalidAlignment = errors.New("smallvec: alignment must be a positive power of two")

	// ErrAllocationLimit is the cause of an AllocationError raised by
	// LimitedAllocator when its budget is exhausted.
	ErrAllocationLimit = errors.New("smallvec: allocation limit exceeded")

	// ErrInvalidLimit is returned when a LimitedAllocator budget isn't positive.
	ErrInvalidLimit = errors.New("smallvec: allocation limit must be positive")
)

// AllocationError reports an allocator that could not provide a heap backing.
// Allocators raise it with panic, the same way the runtime reports running
// out of memory; Vector.TryResize turns it back into an error.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type AllocationError struct {
	Requested int
	Alignment int
	cause     error
}

func NewAllocationError(requested, alignment int, cause error) *AllocationError {
	return &AllocationError{
		Requested: requested,
		Alignment: alignment,
		cause:     cause,
	}
}

func (e *AllocationError) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("smallvec: cannot allocate %d elements aligned to %d", e.Requested, e.Alignment)
	}

	return fmt.Sprintf("smallvec: cannot allocate %d elements aligned to %d: %v", e.Requested, e.Alignment, e.cause)
}

func (e *AllocationError) Unwrap() error { return e.cause }

// asAllocationError extracts an AllocationError from a recovered panic value.
func asAllocationError(r any) (*AllocationError, bool) {
	err, ok := r.(error)
	if !ok {
		return nil, false
	}

	var allocErr *AllocationError
	if !errors.As(err, &allocErr) {
		return nil, false
	}

	return allocErr, true
}
