package smallvec

import "unsafe"

// Inline is the set of fixed-size arrays a Vector can keep its elements in
// while it's small. The length of the array is the inline capacity, so
// Vector[int, [8]int] holds up to 8 ints without touching the heap.
//
// Keep the array small: it's embedded into the vector value itself,
// so every vector pays for the whole array even when it's empty or
// already moved to the heap.
type Inline[T any] interface {
	~[1]T | ~[2]T | ~[3]T | ~[4]T | ~[5]T | ~[6]T | ~[7]T | ~[8]T |
		~[12]T | ~[16]T | ~[24]T | ~[32]T | ~[48]T | ~[64]T |
		~[128]T | ~[256]T
}

// inlineCells returns a slice view over the whole inline array.
// The array is always addressable here, since it lives inside the storage.
func inlineCells[T any, B Inline[T]](buf *B) []T {
	return unsafe.Slice((*T)(unsafe.Pointer(buf)), len(*buf))
}

// InlineCap returns the number of elements B can hold.
func InlineCap[T any, B Inline[T]]() int {
	var buf B
	return len(buf)
}
