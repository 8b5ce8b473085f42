package smallvec

import (
	"math/bits"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// DefaultAlignment is the heap backing alignment used unless WithAlignment
// says otherwise. 16 bytes is enough for SSE/NEON loads.
const DefaultAlignment = 16

// CacheLineSize is the CPU cache line size the toolchain assumes for GOARCH.
var CacheLineSize = int(unsafe.Sizeof(cpu.CacheLinePad{}))

// SIMDAlignment returns the widest vector register size supported by the
// running CPU, in bytes. Pass it to WithAlignment for vectors consumed by
// SIMD kernels.
func SIMDAlignment() int {
	switch {
	case cpu.X86.HasAVX512F:
		return 64
	case cpu.X86.HasAVX2:
		return 32
	default:
		return DefaultAlignment
	}
}

// IsAligned reports whether p is a multiple of alignment, which must be
// a power of two.
func IsAligned(p unsafe.Pointer, alignment int) bool {
	return uintptr(p)&uintptr(alignment-1) == 0
}

// Returns the next power of 2 for the given value `v`.
func NextPowerOf2(v uint32) uint32 {
	return uint32(1) << min(bits.Len32(v-1), 31)
}

func isPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Estimates how many elements of T fit into the given memory size in bytes.
// Handy to pick an inline array that fits into a cache line.
func CapacityFromSize[T any](size uintptr) int {
	var zero T

	sizeOfT := unsafe.Sizeof(zero)
	if sizeOfT == 0 {
		return 0
	}

	return int(size / sizeOfT)
}

// growCapacity doubles the old heap capacity until it fits need.
func growCapacity(old, need int) int {
	if old <= 0 {
		return need
	}

	capacity := old
	for capacity < need {
		capacity *= 2
	}

	return capacity
}
