package seq

// IndexOf returns the index of the first occurrence of v at or after
// from, or -1 when absent.
func IndexOf[T comparable](s *Sequence[T], v T, from int) int {
	if from < 0 {
		from = 0
	}
	sl := s.View()
	for i := from; i < len(sl); i++ {
		if sl[i] == v {
			return i
		}
	}
	return -1
}

// Contains reports whether v occurs in s.
func Contains[T comparable](s *Sequence[T], v T) bool {
	return IndexOf(s, v, 0) >= 0
}

// ContainsSeq reports whether sub occurs in s as a contiguous run. The
// empty sequence is contained in every sequence.
func ContainsSeq[T comparable](s, sub *Sequence[T]) bool {
	return IndexOfSeq(s, sub) >= 0
}

// IndexOfSeq returns the index of the first contiguous occurrence of
// sub in s, or -1 when absent. The empty sequence matches at 0.
func IndexOfSeq[T comparable](s, sub *Sequence[T]) int {
	n, m := s.Len(), sub.Len()
	if m == 0 {
		return 0
	}
	if m > n {
		return -1
	}
	hay, needle := s.View(), sub.View()
	for i := 0; i+m <= n; i++ {
		match := true
		for j := 0; j < m; j++ {
			if hay[i+j] != needle[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}
