// Package xmath provides numeric helpers shared by the allocator and the
// container layer: min/max/abs over ordered types, bit-level queries,
// binary GCD, square roots, float-to-integer rounding, and IEEE-754
// component extraction.
package xmath

// Mathematical constants, to the precision of float64.
const (
	Pi     = 3.14159265358979323846
	HalfPi = Pi / 2
	TwoPi  = Pi * 2
	E      = 2.71828182845904523536

	Ln2  = 0.693147180559945309417
	Ln10 = 2.30258509299404568402

	Log2E    = 1.44269504088896340736
	Log2Of10 = 3.32192809488736234787
	Log10E   = 0.434294481903251827651
	Log10Of2 = 0.301029995663981195214

	Sqrt2    = 1.41421356237309504880
	InvSqrt2 = 0.707106781186547524401
)

// Machine epsilons: the gap between 1.0 and the next representable value.
const (
	Epsilon32 = 1.1920928955078125e-7
	Epsilon64 = 2.220446049250313e-16
)
