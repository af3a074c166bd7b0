package xmath

import "math"

// Sqrt returns the square root of n via the hardware instruction.
func Sqrt(n float64) float64 {
	return math.Sqrt(n)
}

// NewtonSqrt computes the square root of n by Newton-Raphson iteration,
// refining x with x - (x*x - n) / (2*x) until the step shrinks below
// Epsilon64 or the iteration reaches a fixed point.
func NewtonSqrt(n float64) float64 {
	if n < 0 || math.IsNaN(n) {
		return math.NaN()
	}
	if n == 0 || math.IsInf(n, 1) {
		return n
	}

	x := n / 2
	if x == 0 {
		x = n
	}
	for {
		prev := x
		x = x - (x*x-n)/(2*x)
		// Tolerance scales with the root so the loop terminates even when
		// one ulp of x exceeds the absolute epsilon.
		if x == prev || Abs(prev-x) <= Epsilon64*Max(1, x) {
			return x
		}
	}
}
