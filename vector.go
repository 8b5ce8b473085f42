package smallvec

import "iter"

// Vector is a dynamic array that keeps its elements in the inline array B
// while they fit, and moves them to an aligned heap backing once they don't.
// Small vectors never allocate, large ones behave like a regular slice.
//
// The zero Vector is empty, small, and ready to use with DefaultAllocator
// and DefaultAlignment.
//
// The configured alignment applies to the heap backing only. The inline
// array is aligned to T's natural alignment, and to at least 8 bytes,
// since Go can't over-align a field of a value that may live on a stack.
//
// Vector is not safe for concurrent use. It must not be copied after first
// use: a copy of a large vector shares its heap backing. Use Clone instead.
//
// Element access is not bounds checked beyond what Go does for the active
// backing: indexing past Len is a caller bug, whatever it returns.
type Vector[T any, B Inline[T]] struct {
	storage[T, B]
}

// Returns a new empty vector.
func New[T any, B Inline[T]](opts ...Option[T]) (*Vector[T, B], error) {
	var v Vector[T, B]
	if err := v.init(opts...); err != nil {
		return nil, err
	}

	return &v, nil
}

// Like New, but panics on invalid options.
func MustNew[T any, B Inline[T]](opts ...Option[T]) *Vector[T, B] {
	v, err := New[T, B](opts...)
	if err != nil {
		panic(err)
	}

	return v
}

// Returns the number of elements.
func (v *Vector[T, B]) Len() int {
	return v.size
}

func (v *Vector[T, B]) Empty() bool {
	return v.size == 0
}

// Returns the inline capacity, the length of B.
func (v *Vector[T, B]) InlineCap() int {
	return v.inlineCap()
}

// Returns how many elements fit without reallocating.
func (v *Vector[T, B]) Cap() int {
	if v.mode == ModeSmall {
		return v.inlineCap()
	}

	return len(v.heap)
}

func (v *Vector[T, B]) Mode() Mode {
	return v.mode
}

// Whether the elements live in the inline array.
func (v *Vector[T, B]) IsInline() bool {
	return v.mode == ModeSmall
}

// Returns the alignment of the heap backing.
func (v *Vector[T, B]) Alignment() int {
	return v.getAlignment()
}

// Resize sets the length to n. Crossing the inline capacity moves the
// elements to the other backing; shrinking drops elements past n, growing
// appends zero values. Cursors and slices obtained before are invalidated.
//
// Allocator failures propagate as panics, see TryResize.
func (v *Vector[T, B]) Resize(n int) {
	v.resize(n)
}

// TryResize is Resize that returns an allocator's *AllocationError instead
// of panicking. The vector is left untouched when it fails.
func (v *Vector[T, B]) TryResize(n int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			allocErr, ok := asAllocationError(r)
			if !ok {
				panic(r)
			}

			err = allocErr
		}
	}()

	v.resize(n)

	return nil
}

// Reserve makes room for n elements on the heap without changing the
// length. It does nothing when n fits inline.
func (v *Vector[T, B]) Reserve(n int) {
	v.reserve(n)
}

// Appends an element.
func (v *Vector[T, B]) Push(value T) {
	n := v.size
	v.resize(n + 1)
	*v.at(n) = value
}

// Removes and returns the last element. The vector must not be empty.
func (v *Vector[T, B]) Pop() T {
	n := v.size - 1
	value := *v.at(n)
	v.resize(n)

	return value
}

// Sets the length to zero. The heap backing, if any, is dropped as well.
func (v *Vector[T, B]) Clear() {
	v.resize(0)
}

// Release returns the heap backing to the allocator and empties the vector.
func (v *Vector[T, B]) Release() {
	v.release()
}

// Returns a pointer to the i-th element.
func (v *Vector[T, B]) At(i int) *T {
	return v.at(i)
}

func (v *Vector[T, B]) Get(i int) T {
	return *v.at(i)
}

func (v *Vector[T, B]) Set(i int, value T) {
	*v.at(i) = value
}

// The vector must not be empty.
func (v *Vector[T, B]) Front() T {
	return *v.at(0)
}

// The vector must not be empty.
func (v *Vector[T, B]) Back() T {
	return *v.at(v.size - 1)
}

func (v *Vector[T, B]) FrontPtr() *T {
	return v.at(0)
}

func (v *Vector[T, B]) BackPtr() *T {
	return v.at(v.size - 1)
}

// Slice returns the elements as a slice sharing memory with the vector.
// It has the same lifetime as a cursor.
func (v *Vector[T, B]) Slice() []T {
	return v.active()
}

// All iterates over index/value pairs in index order.
func (v *Vector[T, B]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, value := range v.active() {
			if !yield(i, value) {
				return
			}
		}
	}
}

// Values iterates over the elements in index order.
func (v *Vector[T, B]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, value := range v.active() {
			if !yield(value) {
				return
			}
		}
	}
}

// Swap exchanges the contents of two vectors. When both are large it's a
// constant-time exchange of the heap backings, no element is copied.
// Otherwise the inline elements are moved, O(inline capacity).
// The allocator, alignment and logger travel with the heap backings: unless
// both vectors are small, they are exchanged as well.
func (v *Vector[T, B]) Swap(other *Vector[T, B]) {
	v.swap(&other.storage)
}

// Clone returns a copy that shares no memory with v. It uses v's options.
func (v *Vector[T, B]) Clone() *Vector[T, B] {
	c := &Vector[T, B]{}
	c.alignment = v.alignment
	c.alloc = v.alloc
	c.logger = v.logger

	c.resize(v.size)
	copy(c.active(), v.active())

	return c
}

// Begin returns a cursor at the first element.
func (v *Vector[T, B]) Begin() Cursor[T] {
	return newCursor[T](v.base(), 0)
}

// End returns a cursor one past the last element. It must not be dereferenced.
func (v *Vector[T, B]) End() Cursor[T] {
	return newCursor[T](v.base(), v.size)
}

// CursorAt returns a cursor at the i-th element.
func (v *Vector[T, B]) CursorAt(i int) Cursor[T] {
	return newCursor[T](v.base(), i)
}

func (v *Vector[T, B]) Stats() Stats {
	return v.stats()
}
