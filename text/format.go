package text

import (
	"errors"
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"

	"github.com/slawlabs/linearcore/heap"
	"github.com/slawlabs/linearcore/xmath"
)

// ErrSyntax indicates ToInt found a byte that is not part of a decimal
// integer.
var ErrSyntax = errors.New("text: invalid integer syntax")

// maxChars returns an upper bound on the decimal digits plus sign for
// T's width.
func maxChars[T constraints.Integer]() int {
	switch unsafe.Sizeof(*new(T)) {
	case 1:
		return 4
	case 2:
		return 6
	case 4:
		return 11
	default:
		return 20
	}
}

// FromInt formats v in decimal. Digits are produced least significant
// first and reversed in place. The minimum value of a signed type
// formats correctly: magnitude conversion happens in uint64, where it
// is representable.
func FromInt[T constraints.Integer](h *heap.Heap, v T) Text {
	if v == 0 {
		return New(h, "0")
	}

	neg := v < 0
	u := uint64(v)
	if neg {
		u = uint64(-int64(v))
	}

	t := Empty(h, maxChars[T]())
	for u > 0 {
		t.AppendByte(byte('0' + u%10))
		u /= 10
	}
	if neg {
		t.AppendByte('-')
	}
	t.Reverse()
	return t
}

// FromFloat formats f in plain decimal with precision fractional
// digits. The digits are extracted one place value at a time, and the
// last one is rounded half-up by peeking at the digit after it.
// Zeros keep their sign; NaN and the infinities format as "NaN",
// "Infinity" and "-Infinity".
func FromFloat[F constraints.Float](h *heap.Heap, f F, precision int) Text {
	x := float64(f)
	switch {
	case xmath.IsNaN(x):
		return New(h, "NaN")
	case math.IsInf(x, 1):
		return New(h, "Infinity")
	case math.IsInf(x, -1):
		return New(h, "-Infinity")
	case x == 0:
		if xmath.StoredSign(x) {
			return New(h, "-0")
		}
		return New(h, "0")
	}
	if precision < 0 {
		precision = 0
	}

	neg := x < 0
	if neg {
		x = -x
	}

	// Count of digits before the point; at least one.
	left := 1
	for y := x; y >= 10; y /= 10 {
		left++
	}

	t := Empty(h, left+precision+2)
	if neg {
		t.AppendByte('-')
	}

	place := math.Pow(10, float64(left-1))
	total := left + precision
	for i := 0; i < total; i++ {
		digit := int(xmath.Floor(x / place))
		if digit > 9 { // accumulated division error
			digit = 9
		}
		x -= float64(digit) * place
		place /= 10
		if i == total-1 && digit < 9 {
			if next := int(xmath.Floor(x / place)); next >= 5 {
				digit++
			}
		}
		if i == left {
			t.AppendByte('.')
		}
		t.AppendByte(byte('0' + digit))
	}
	return t
}

// ToInt parses t as a decimal integer with an optional leading minus.
func (t Text) ToInt() (int64, error) {
	v := t.View()
	if len(v) == 0 {
		return 0, ErrSyntax
	}
	neg := false
	if v[0] == '-' {
		neg = true
		v = v[1:]
		if len(v) == 0 {
			return 0, ErrSyntax
		}
	}
	var n int64
	for _, c := range v {
		if c < '0' || c > '9' {
			return 0, ErrSyntax
		}
		n = n*10 + int64(c-'0')
	}
	if neg {
		n = -n
	}
	return n, nil
}
