package xmath

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// magnitude converts v to its absolute value as a uint64. Works for the
// minimum signed value of every width: negation happens after widening
// to int64, and uint64(minInt64) is already the correct magnitude 2^63.
func magnitude[T constraints.Integer](v T) uint64 {
	if v >= 0 {
		return uint64(v)
	}
	return uint64(-int64(v))
}

// GCD returns the greatest common divisor of a and b using Stein's binary
// algorithm: factor out common powers of two with trailing-zero counts,
// then reduce by subtraction, keeping both operands odd.
// GCD(0, n) = GCD(n, 0) = |n|.
func GCD[T constraints.Integer](a, b T) T {
	ua, ub := magnitude(a), magnitude(b)
	if ua == 0 {
		return T(ub)
	}
	if ub == 0 {
		return T(ua)
	}

	za := bits.TrailingZeros64(ua)
	zb := bits.TrailingZeros64(ub)
	shift := Min(za, zb)
	ua >>= za
	ub >>= zb

	for {
		if ua > ub {
			ua, ub = ub, ua
		}
		ub -= ua
		if ub == 0 {
			return T(ua << shift)
		}
		ub >>= bits.TrailingZeros64(ub)
	}
}
