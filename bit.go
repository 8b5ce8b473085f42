package smallvec

import (
	"encoding/binary"
	"math/bits"
	"strconv"
	"unsafe"

	"github.com/bits-and-blooms/bitset"
)

// Bit is a boolean in a cell of its own. A vector of bits keeps one
// addressable byte per element, never packed, so At, cursors and the
// backing migration work on it the same way as on any other element type.
type Bit struct {
	v bool
}

func MakeBit(v bool) Bit {
	return Bit{v: v}
}

func (b Bit) Get() bool {
	return b.v
}

func (b *Bit) Set(v bool) {
	b.v = v
}

func (b *Bit) Toggle() {
	b.v = !b.v
}

func (b Bit) String() string {
	return strconv.FormatBool(b.v)
}

// Bits is the vector of logical bits.
type Bits[B Inline[Bit]] = Vector[Bit, B]

// Returns a new empty vector of bits.
func NewBits[B Inline[Bit]](opts ...Option[Bit]) (*Bits[B], error) {
	return New[Bit, B](opts...)
}

func GetBit[B Inline[Bit]](v *Bits[B], i int) bool {
	return v.At(i).Get()
}

func SetBit[B Inline[Bit]](v *Bits[B], i int, value bool) {
	v.At(i).Set(value)
}

// PushBit appends a bit.
func PushBit[B Inline[Bit]](v *Bits[B], value bool) {
	v.Push(MakeBit(value))
}

// CountBits returns the number of set bits.
func CountBits[B Inline[Bit]](v *Bits[B]) int {
	var (
		cells = bitBytes(v.Slice())
		count = 0
		i     = 0
	)

	for ; i+8 <= len(cells); i += 8 {
		count += bits.OnesCount64(binary.LittleEndian.Uint64(cells[i:]))
	}

	for ; i < len(cells); i++ {
		count += int(cells[i])
	}

	return count
}

// PackBits returns the bits packed into a bitset.BitSet of the same length.
func PackBits[B Inline[Bit]](v *Bits[B]) *bitset.BitSet {
	var (
		cells = bitBytes(v.Slice())
		words = make([]uint64, (len(cells)+63)/64)
		i     = 0
	)

	for ; i+8 <= len(cells); i += 8 {
		group := binary.LittleEndian.Uint64(cells[i:])
		words[i/64] |= uint64(packGroup(group)) << (i % 64)
	}

	for ; i < len(cells); i++ {
		words[i/64] |= uint64(cells[i]) << (i % 64)
	}

	return bitset.FromWithLength(uint(len(cells)), words)
}

// UnpackBits resizes dst to the length of set and copies its bits.
func UnpackBits[B Inline[Bit]](dst *Bits[B], set *bitset.BitSet) {
	dst.Resize(int(set.Len()))

	var (
		cells = bitBytes(dst.Slice())
		words = set.Words()
		i     = 0
	)

	for ; i+8 <= len(cells); i += 8 {
		group := uint8(words[i/64] >> (i % 64))
		binary.LittleEndian.PutUint64(cells[i:], spreadGroup(group))
	}

	for ; i < len(cells); i++ {
		if set.Test(uint(i)) {
			cells[i] = 1
		} else {
			cells[i] = 0
		}
	}
}

// bitBytes views bit cells as bytes, each one 0 or 1.
func bitBytes(cells []Bit) []byte {
	return unsafeConvertSlice[byte](cells)
}

//go:nocheckptr
func unsafeConvertSlice[Dest any, Src any](s []Src) []Dest {
	return unsafe.Slice((*Dest)(unsafe.Pointer(unsafe.SliceData(s))), len(s))
}
