package xmath

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// IEEE-754 field layout per width.
const (
	mantBits32 = 23
	expMask32  = 0xFF
	expBias32  = 127
	mantMask32 = 1<<mantBits32 - 1

	mantBits64 = 52
	expMask64  = 0x7FF
	expBias64  = 1023
	mantMask64 = 1<<mantBits64 - 1
)

func is32[F constraints.Float](f F) bool {
	return unsafe.Sizeof(f) == 4
}

// StoredSign reports whether the sign bit of f is set. Unlike f < 0 this
// distinguishes -0 from 0 and is meaningful for NaN payloads.
func StoredSign[F constraints.Float](f F) bool {
	if is32(f) {
		return math.Float32bits(float32(f))>>31 == 1
	}
	return math.Float64bits(float64(f))>>63 == 1
}

// StoredExponent returns the unbiased binary exponent of f.
// Zeros and subnormals report the minimum (biased-zero) exponent.
func StoredExponent[F constraints.Float](f F) int {
	if is32(f) {
		raw := math.Float32bits(float32(f)) >> mantBits32 & expMask32
		return int(raw) - expBias32
	}
	raw := math.Float64bits(float64(f)) >> mantBits64 & expMask64
	return int(raw) - expBias64
}

// StoredMantissa returns the raw mantissa bits of f, without the
// implicit leading one.
func StoredMantissa[F constraints.Float](f F) uint64 {
	if is32(f) {
		return uint64(math.Float32bits(float32(f)) & mantMask32)
	}
	return math.Float64bits(float64(f)) & mantMask64
}

// ClearExponent rescales f into [1, 2) by forcing the exponent field to
// the bias, keeping sign and mantissa.
func ClearExponent[F constraints.Float](f F) F {
	if is32(f) {
		b := math.Float32bits(float32(f))
		b = b&^(expMask32<<mantBits32) | expBias32<<mantBits32
		return F(math.Float32frombits(b))
	}
	b := math.Float64bits(float64(f))
	b = b&^(expMask64<<mantBits64) | expBias64<<mantBits64
	return F(math.Float64frombits(b))
}

// IsNaN reports whether f is an IEEE-754 not-a-number.
func IsNaN[F constraints.Float](f F) bool {
	return f != f
}

// IsInf reports whether f is an infinity of either sign.
func IsInf[F constraints.Float](f F) bool {
	return math.IsInf(float64(f), 0)
}

// NaN returns a quiet not-a-number of type F.
func NaN[F constraints.Float]() F {
	return F(math.NaN())
}

// Inf returns the infinity of type F with the given sign.
func Inf[F constraints.Float](sign int) F {
	return F(math.Inf(sign))
}

// MaxValue returns the largest finite value of F.
func MaxValue[F constraints.Float]() F {
	var f F
	if is32(f) {
		return F(math.MaxFloat32)
	}
	max64 := float64(math.MaxFloat64)
	return F(max64)
}

// MinValue returns the most negative finite value of F.
func MinValue[F constraints.Float]() F {
	return -MaxValue[F]()
}

// Epsilon returns the machine epsilon of F.
func Epsilon[F constraints.Float]() F {
	var f F
	if is32(f) {
		return F(Epsilon32)
	}
	return F(Epsilon64)
}
