package smallvec

const (
	bitsetLSB = 0x0101010101010101
	bitsetMSB = 0x8080808080808080

	// Multiplying a group of 0/1 bytes by this gathers byte i into
	// bit 56+i of the product.
	packMagic = 0x0102040810204080
)

// packGroup packs 8 bit cells, loaded little-endian into one uint64, into
// a byte where bit i is cell i. Every byte of group must be 0 or 1.
//
//go:inline
func packGroup(group uint64) uint8 {
	return uint8((group * packMagic) >> 56)
}

// spreadGroup is the inverse of packGroup: bit i of b becomes byte i,
// set to 0 or 1.
//
//go:inline
func spreadGroup(b uint8) uint64 {
	// Copy b into every byte, keep bit i in byte i, then move it to the LSB.
	v := uint64(b) * bitsetLSB
	v &= 0x8040201008040201
	v += 0x00406070787C7E7F // byte i: 0x80 - 1<<i, reaches the MSB iff bit i is kept
	return (v & bitsetMSB) >> 7
}
