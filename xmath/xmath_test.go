package xmath

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMinMaxAbs(t *testing.T) {
	require.Equal(t, 3, Min(3, 7))
	require.Equal(t, 7, Max(3, 7))
	require.Equal(t, -2.5, Min(-2.5, 0.0))
	require.Equal(t, "a", Min("a", "b"))

	require.Equal(t, 5, Abs(-5))
	require.Equal(t, 5, Abs(5))
	require.Equal(t, uint8(200), Abs(uint8(200)))
	require.Equal(t, 1.5, Abs(-1.5))
}

func TestPopCount(t *testing.T) {
	require.Equal(t, 0, PopCount(uint32(0)))
	require.Equal(t, 1, PopCount(uint64(1)<<63))
	require.Equal(t, 8, PopCount(uint8(0xFF)))
	require.Equal(t, 32, PopCount(^uint32(0)))
	require.Equal(t, 8, PopCount(int8(-1)))
	require.Equal(t, 3, PopCount(0b10101))
}

func TestLeadingTrailingZeros(t *testing.T) {
	require.Equal(t, 8, LeadingZeros(uint8(0)))
	require.Equal(t, 16, LeadingZeros(uint16(0)))
	require.Equal(t, 32, LeadingZeros(uint32(0)))
	require.Equal(t, 64, LeadingZeros(uint64(0)))

	require.Equal(t, 0, LeadingZeros(uint8(0x80)))
	require.Equal(t, 7, LeadingZeros(uint8(1)))
	require.Equal(t, 31, LeadingZeros(uint32(1)))
	require.Equal(t, 24, LeadingZeros(uint32(0xFF)))

	require.Equal(t, 8, TrailingZeros(uint8(0)))
	require.Equal(t, 64, TrailingZeros(uint64(0)))
	require.Equal(t, 0, TrailingZeros(uint32(1)))
	require.Equal(t, 4, TrailingZeros(uint16(0x10)))
	require.Equal(t, 63, TrailingZeros(uint64(1)<<63))
}

func TestGCD(t *testing.T) {
	require.Equal(t, 6, GCD(12, 18))
	require.Equal(t, 6, GCD(18, 12))
	require.Equal(t, 1, GCD(17, 4))
	require.Equal(t, 12, GCD(12, 0))
	require.Equal(t, 12, GCD(0, 12))
	require.Equal(t, 0, GCD(0, 0))
	require.Equal(t, 6, GCD(-12, 18))
	require.Equal(t, 6, GCD(12, -18))
	require.Equal(t, 6, GCD(-12, -18))
	require.Equal(t, uint32(64), GCD(uint32(256), uint32(192)))
	require.Equal(t, int8(64), GCD(int8(-128), int8(64)))
}

func TestGCDAgainstEuclid(t *testing.T) {
	euclid := func(a, b int64) int64 {
		for b != 0 {
			a, b = b, a%b
		}
		if a < 0 {
			a = -a
		}
		return a
	}
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 2000; i++ {
		a := rng.Int63n(1 << 40)
		b := rng.Int63n(1 << 40)
		require.Equal(t, euclid(a, b), GCD(a, b), "gcd(%d, %d)", a, b)
	}
}

func TestSqrt(t *testing.T) {
	require.Equal(t, 3.0, Sqrt(9))
	require.Equal(t, 0.0, NewtonSqrt(0))
	require.True(t, math.IsNaN(NewtonSqrt(-1)))
	require.True(t, math.IsInf(NewtonSqrt(math.Inf(1)), 1))

	for _, n := range []float64{1, 2, 4, 10, 100, 12345.678, 1e-6, 1e12} {
		got := NewtonSqrt(n)
		want := math.Sqrt(n)
		require.InEpsilon(t, want, got, 1e-12, "sqrt(%v)", n)
	}
}

func TestRounding(t *testing.T) {
	require.Equal(t, int64(2), Trunc(2.9))
	require.Equal(t, int64(-2), Trunc(-2.9))

	require.Equal(t, int64(2), Floor(2.9))
	require.Equal(t, int64(-3), Floor(-2.1))
	require.Equal(t, int64(2), Floor(2.0))
	require.Equal(t, int64(-2), Floor(-2.0))

	require.Equal(t, int64(3), Ceil(2.1))
	require.Equal(t, int64(-2), Ceil(-2.9))
	require.Equal(t, int64(2), Ceil(2.0))

	require.Equal(t, int64(3), Round(2.5))
	require.Equal(t, int64(2), Round(2.4))
	require.Equal(t, int64(-2), Round(-2.5))
	require.Equal(t, int64(-3), Round(-2.6))

	require.Equal(t, int64(2), Floor(float32(2.5)))
	require.Equal(t, int64(3), Round(float32(2.5)))
}

func TestFloatDissection(t *testing.T) {
	require.False(t, StoredSign(1.0))
	require.True(t, StoredSign(-1.0))
	require.True(t, StoredSign(math.Copysign(0, -1)))
	require.False(t, StoredSign(float32(2.0)))
	require.True(t, StoredSign(float32(-2.0)))

	require.Equal(t, 0, StoredExponent(1.0))
	require.Equal(t, 1, StoredExponent(2.0))
	require.Equal(t, -1, StoredExponent(0.5))
	require.Equal(t, 10, StoredExponent(1024.0))
	require.Equal(t, 3, StoredExponent(float32(8)))

	require.Equal(t, uint64(0), StoredMantissa(1.0))
	require.Equal(t, uint64(1)<<51, StoredMantissa(1.5))
	require.Equal(t, uint64(1)<<22, StoredMantissa(float32(1.5)))

	require.Equal(t, 1.5, ClearExponent(3.0))
	require.Equal(t, 1.0, ClearExponent(4.0))
	require.Equal(t, float32(1.75), ClearExponent(float32(7)))
	require.Equal(t, -1.5, ClearExponent(-0.375))
}

func TestFloatSpecials(t *testing.T) {
	require.True(t, IsNaN(NaN[float64]()))
	require.True(t, IsNaN(NaN[float32]()))
	require.False(t, IsNaN(1.0))

	require.True(t, IsInf(Inf[float64](1)))
	require.True(t, IsInf(Inf[float32](-1)))
	require.False(t, IsInf(math.MaxFloat64))

	require.Equal(t, math.MaxFloat64, MaxValue[float64]())
	require.Equal(t, float32(math.MaxFloat32), MaxValue[float32]())
	require.Equal(t, -math.MaxFloat64, MinValue[float64]())

	require.Equal(t, Epsilon64, Epsilon[float64]())
	require.Equal(t, float32(Epsilon32), Epsilon[float32]())
	require.Equal(t, 1.0+Epsilon64, math.Nextafter(1, 2))
}
