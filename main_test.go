package smallvec

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func newLimitedAllocator[T any](t *testing.T, base Allocator[T], limit int64, logger *slog.Logger) *LimitedAllocator[T] {
	t.Helper()

	a, err := NewLimitedAllocator(base, limit, logger)
	require.NoError(t, err)

	return a
}

// countingAllocator records every call and hands out default backings.
type countingAllocator[T any] struct {
	DefaultAllocator[T]

	allocs   int
	deallocs int
}

func (a *countingAllocator[T]) Allocate(n, alignment int) []T {
	a.allocs++
	return a.DefaultAllocator.Allocate(n, alignment)
}

func (a *countingAllocator[T]) Deallocate(buf []T) {
	a.deallocs++
}

// fill resizes v to n and stores base+i at every index i.
func fill[B Inline[int]](v *Vector[int, B], n, base int) {
	v.Resize(n)
	for i := range n {
		v.Set(i, base+i)
	}
}

func collect[T any, B Inline[T]](v *Vector[T, B]) []T {
	out := make([]T, 0, v.Len())
	for value := range v.Values() {
		out = append(out, value)
	}

	return out
}
