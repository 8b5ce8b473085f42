// Package smallvec provides a vector with small size optimization.
//
// # Storage
//
// A Vector keeps up to len(B) elements in an array embedded into the vector
// value and moves them to a heap backing once they don't fit. Shrinking back
// below the inline capacity moves them back and releases the heap backing.
//
// # Allocation
//
// Heap backings come from an Allocator: DefaultAllocator aligns them for
// SIMD consumers, PoolAllocator recycles them, LimitedAllocator caps the
// memory held by a group of vectors.
//
// # Bits
//
// Bits stores one addressable byte per logical bit, so it behaves like any
// other vector. PackBits and UnpackBits convert to and from bitset.BitSet.
package smallvec
