package xmath

import "golang.org/x/exp/constraints"

// Trunc rounds x toward zero.
func Trunc[F constraints.Float](x F) int64 {
	return int64(x)
}

// Floor rounds x toward negative infinity. The integer cast truncates
// toward zero, so negative non-integral values need one step down.
func Floor[F constraints.Float](x F) int64 {
	r := int64(x)
	if x < F(r) {
		r--
	}
	return r
}

// Ceil rounds x toward positive infinity.
func Ceil[F constraints.Float](x F) int64 {
	r := int64(x)
	if x > F(r) {
		r++
	}
	return r
}

// Round rounds x half-up to the nearest integer.
func Round[F constraints.Float](x F) int64 {
	return Floor(x + F(0.5))
}
