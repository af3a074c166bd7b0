package seq

import "github.com/slawlabs/linearcore/xmath"

// Rotate shifts elements left by shift positions in place, wrapping
// around: element i takes the value previously at (i+shift) mod len.
// Negative shifts rotate right. Runs in O(n) moves using gcd(len, shift)
// cycles with one saved element each.
func (s *Sequence[T]) Rotate(shift int) {
	n := s.size
	if n == 0 {
		return
	}
	shift %= n
	if shift < 0 {
		shift += n
	}
	if shift == 0 {
		return
	}

	a := s.slice()
	cycles := xmath.GCD(n, shift)
	for start := 0; start < cycles; start++ {
		saved := a[start]
		j := start
		for {
			k := j + shift
			if k >= n {
				k -= n
			}
			if k == start {
				break
			}
			a[j] = a[k]
			j = k
		}
		a[j] = saved
	}
}

// Reverse reverses the elements in place.
func (s *Sequence[T]) Reverse() {
	a := s.slice()
	for i, j := 0, s.size-1; i < j; i, j = i+1, j-1 {
		a[i], a[j] = a[j], a[i]
	}
}
