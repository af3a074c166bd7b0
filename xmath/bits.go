package xmath

import (
	"math/bits"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// PopCount returns the number of set bits in n using Kernighan's method:
// each n &= n-1 clears the lowest set bit, so the loop runs once per bit.
// Negative values count the bits of the two's-complement representation.
func PopCount[T constraints.Integer](n T) int {
	count := 0
	for n != 0 {
		n &= n - 1
		count++
	}
	return count
}

// LeadingZeros returns the number of zero bits above the most significant
// set bit of n, for n's own width. LeadingZeros(0) is the full bit width.
func LeadingZeros[T constraints.Unsigned](n T) int {
	switch unsafe.Sizeof(n) {
	case 1:
		return bits.LeadingZeros8(uint8(n))
	case 2:
		return bits.LeadingZeros16(uint16(n))
	case 4:
		return bits.LeadingZeros32(uint32(n))
	default:
		return bits.LeadingZeros64(uint64(n))
	}
}

// TrailingZeros returns the number of zero bits below the least significant
// set bit of n. TrailingZeros(0) is the full bit width.
func TrailingZeros[T constraints.Unsigned](n T) int {
	switch unsafe.Sizeof(n) {
	case 1:
		return bits.TrailingZeros8(uint8(n))
	case 2:
		return bits.TrailingZeros16(uint16(n))
	case 4:
		return bits.TrailingZeros32(uint32(n))
	default:
		return bits.TrailingZeros64(uint64(n))
	}
}
