package smallvec

import "unsafe"

// Cursor is a random-access position in the backing that was active when
// the cursor was created. It doesn't own anything and checks nothing.
//
// A cursor is invalidated by Resize, TryResize, Reserve, Push, Pop, Clear,
// Release and Swap on its vector. Using an invalidated cursor, or
// dereferencing one outside [Begin, End), is a caller bug that isn't detected.
//
// The position is kept as an index relative to the backing base, so End
// never materializes a pointer past the allocation.
type Cursor[T any] struct {
	base unsafe.Pointer
	idx  int
}

func newCursor[T any](base unsafe.Pointer, idx int) Cursor[T] {
	return Cursor[T]{base: base, idx: idx}
}

// Index returns the position relative to the first element.
func (c Cursor[T]) Index() int {
	return c.idx
}

// Ptr returns a pointer to the current element.
func (c Cursor[T]) Ptr() *T {
	var zero T
	return (*T)(unsafe.Add(c.base, c.idx*int(unsafe.Sizeof(zero))))
}

func (c Cursor[T]) Value() T {
	return *c.Ptr()
}

func (c Cursor[T]) Set(value T) {
	*c.Ptr() = value
}

// Next returns the cursor moved one element forward (++c).
func (c Cursor[T]) Next() Cursor[T] {
	return c.Add(1)
}

// Prev returns the cursor moved one element back (--c).
func (c Cursor[T]) Prev() Cursor[T] {
	return c.Add(-1)
}

// Inc moves c forward and returns its previous position (c++).
func (c *Cursor[T]) Inc() Cursor[T] {
	old := *c
	c.idx++

	return old
}

// Dec moves c back and returns its previous position (c--).
func (c *Cursor[T]) Dec() Cursor[T] {
	old := *c
	c.idx--

	return old
}

func (c Cursor[T]) Add(n int) Cursor[T] {
	return Cursor[T]{base: c.base, idx: c.idx + n}
}

func (c Cursor[T]) Sub(n int) Cursor[T] {
	return Cursor[T]{base: c.base, idx: c.idx - n}
}

// Diff returns the distance c - o in elements. Both cursors must come from
// the same backing.
func (c Cursor[T]) Diff(o Cursor[T]) int {
	return c.idx - o.idx
}

func (c Cursor[T]) Equal(o Cursor[T]) bool {
	return c.base == o.base && c.idx == o.idx
}

func (c Cursor[T]) Less(o Cursor[T]) bool {
	return c.idx < o.idx
}
