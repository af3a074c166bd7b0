package seq

import "iter"

// Values iterates the elements front to back.
func (s *Sequence[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < s.size; i++ {
			if !yield(s.At(i)) {
				return
			}
		}
	}
}

// Backward iterates the elements back to front.
func (s *Sequence[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := s.size - 1; i >= 0; i-- {
			if !yield(s.At(i)) {
				return
			}
		}
	}
}

// All iterates index/element pairs front to back.
func (s *Sequence[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < s.size; i++ {
			if !yield(i, s.At(i)) {
				return
			}
		}
	}
}
