package smallvec

import (
	"fmt"
	"log/slog"
	"math/bits"
	"sync"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sync/semaphore"
)

// Allocator provides heap backings for vectors.
//
// Allocate returns at least n zero-valued elements whose first element is
// aligned to alignment bytes. It reports failure with a panic, preferably
// carrying an *AllocationError. Deallocate takes back a backing previously
// returned by Allocate; the caller doesn't touch it afterwards.
type Allocator[T any] interface {
	Allocate(n, alignment int) []T
	Deallocate(buf []T)
}

// DefaultAllocator allocates aligned backings from the Go heap.
//
// It over-allocates a typed slice and returns the window starting at the
// first aligned element, so the GC still sees every pointer inside T.
// When no element of the slice can be aligned (the element size and the
// alignment don't share enough factors) the backing is returned unaligned.
type DefaultAllocator[T any] struct{}

func (DefaultAllocator[T]) Allocate(n, alignment int) []T {
	if n <= 0 {
		return nil
	}

	var zero T

	sizeOfT := int(unsafe.Sizeof(zero))
	if sizeOfT == 0 || alignment <= int(unsafe.Alignof(zero)) {
		return make([]T, n)
	}

	// Number of distinct address residues modulo alignment the elements can hit.
	extra := alignment >> bits.TrailingZeros(uint(sizeOfT))
	if extra <= 1 {
		extra = 1
	}

	buf := make([]T, n+extra-1)
	for i := range extra {
		if IsAligned(unsafe.Pointer(&buf[i]), alignment) {
			return buf[i : i+n : i+n]
		}
	}

	return buf[:n:n]
}

// Deallocate is a no-op, the GC reclaims the backing.
func (DefaultAllocator[T]) Deallocate([]T) {}

const maxPoolClass = 32

// PoolAllocator recycles heap backings through sync.Pool, one pool per
// power-of-two capacity. Allocation sizes are rounded up to the class size.
// It's safe for concurrent use and is meant to be shared between vectors.
type PoolAllocator[T any] struct {
	base  Allocator[T]
	pools [maxPoolClass]sync.Pool

	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewPoolAllocator creates a pool on top of base. A nil base means DefaultAllocator.
func NewPoolAllocator[T any](base Allocator[T]) *PoolAllocator[T] {
	if base == nil {
		base = DefaultAllocator[T]{}
	}

	return &PoolAllocator[T]{base: base}
}

func poolClass(n int) int {
	return bits.Len(uint(n - 1))
}

func (p *PoolAllocator[T]) Allocate(n, alignment int) []T {
	if n <= 0 {
		return nil
	}

	class := poolClass(n)
	if class >= maxPoolClass {
		p.misses.Add(1)
		return p.base.Allocate(n, alignment)
	}

	if v := p.pools[class].Get(); v != nil {
		buf := *(v.(*[]T))
		if IsAligned(unsafe.Pointer(unsafe.SliceData(buf)), alignment) {
			p.hits.Add(1)
			return buf
		}
	}

	p.misses.Add(1)

	buf := p.base.Allocate(1<<class, alignment)
	return buf[: 1<<class : 1<<class]
}

// Deallocate zeroes buf and keeps it for reuse. Backings whose length isn't
// a pool class size are handed to the base allocator instead.
func (p *PoolAllocator[T]) Deallocate(buf []T) {
	if len(buf) == 0 {
		return
	}

	class := poolClass(len(buf))
	if class >= maxPoolClass || 1<<class != len(buf) {
		p.base.Deallocate(buf)
		return
	}

	clear(buf)
	p.pools[class].Put(&buf)
}

// Hits returns how many allocations were served from the pool.
func (p *PoolAllocator[T]) Hits() uint64 { return p.hits.Load() }

// Misses returns how many allocations went to the base allocator.
func (p *PoolAllocator[T]) Misses() uint64 { return p.misses.Load() }

// LimitedAllocator caps the bytes held by heap backings at once.
// Over the limit, Allocate panics with an *AllocationError wrapping
// ErrAllocationLimit. The budget may be shared between many vectors.
type LimitedAllocator[T any] struct {
	base   Allocator[T]
	sem    *semaphore.Weighted
	limit  int64
	inUse  atomic.Int64
	logger *slog.Logger
}

// NewLimitedAllocator wraps base with a budget of limit bytes, which must be
// positive. A nil base means DefaultAllocator, a nil logger disables logging.
func NewLimitedAllocator[T any](base Allocator[T], limit int64, logger *slog.Logger) (*LimitedAllocator[T], error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, limit)
	}

	if base == nil {
		base = DefaultAllocator[T]{}
	}

	return &LimitedAllocator[T]{
		base:   base,
		sem:    semaphore.NewWeighted(limit),
		limit:  limit,
		logger: logger,
	}, nil
}

func (a *LimitedAllocator[T]) cost(n int) int64 {
	var zero T
	return int64(n) * int64(unsafe.Sizeof(zero))
}

func (a *LimitedAllocator[T]) reject(n, alignment int) {
	if a.logger != nil {
		a.logger.Warn("smallvec: allocation rejected",
			"requested", n,
			"bytes", a.cost(n),
			"in_use", a.inUse.Load(),
			"limit", a.limit,
		)
	}

	panic(NewAllocationError(n, alignment, ErrAllocationLimit))
}

func (a *LimitedAllocator[T]) Allocate(n, alignment int) []T {
	if n <= 0 {
		return nil
	}

	cost := a.cost(n)
	if !a.sem.TryAcquire(cost) {
		a.reject(n, alignment)
	}

	buf := a.allocateBase(n, alignment, cost)

	// The base allocator may round up, charge for what it actually gave.
	if extra := a.cost(len(buf)) - cost; extra > 0 {
		if !a.sem.TryAcquire(extra) {
			a.sem.Release(cost)
			a.base.Deallocate(buf)
			a.reject(len(buf), alignment)
		}

		cost += extra
	}

	a.inUse.Add(cost)

	return buf
}

// allocateBase calls the base allocator and gives cost back to the budget
// if it panics.
func (a *LimitedAllocator[T]) allocateBase(n, alignment int, cost int64) []T {
	done := false
	defer func() {
		if !done {
			a.sem.Release(cost)
		}
	}()

	buf := a.base.Allocate(n, alignment)
	done = true

	return buf
}

func (a *LimitedAllocator[T]) Deallocate(buf []T) {
	if len(buf) == 0 {
		return
	}

	cost := a.cost(len(buf))
	a.inUse.Add(-cost)
	a.sem.Release(cost)
	a.base.Deallocate(buf)
}

// InUse returns the bytes currently held by backings from this allocator.
func (a *LimitedAllocator[T]) InUse() int64 { return a.inUse.Load() }

// Limit returns the configured budget in bytes.
func (a *LimitedAllocator[T]) Limit() int64 { return a.limit }
