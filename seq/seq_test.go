package seq

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/slawlabs/linearcore/heap"
)

func newHeap(t *testing.T) *heap.Heap {
	t.Helper()
	return heap.New(heap.NewFixedRegion(1 << 20))
}

func TestPushPopGrowth(t *testing.T) {
	h := newHeap(t)
	s := New[int32](h)
	require.Equal(t, 0, s.Len())
	require.Equal(t, MinCapacity, s.Cap())

	for i := int32(0); i < 100; i++ {
		s.Push(i * i)
	}
	require.Equal(t, 100, s.Len())
	require.Equal(t, 128, s.Cap()) // doubled 16 -> 32 -> 64 -> 128

	for i := int32(99); i >= 0; i-- {
		require.Equal(t, i*i, s.Pop())
	}
	require.Equal(t, 0, s.Len())
	require.NoError(t, h.CheckInvariants())
}

func TestAccessors(t *testing.T) {
	h := newHeap(t)
	s := New[int64](h)
	s.Push(10)
	s.Push(20)
	s.Push(30)

	require.Equal(t, int64(10), s.Front())
	require.Equal(t, int64(30), s.Back())
	require.Equal(t, int64(20), s.At(1))

	s.Set(1, 25)
	require.Equal(t, int64(25), s.At(1))

	require.Panics(t, func() { s.At(3) })
	require.Panics(t, func() { s.At(-1) })
	require.Panics(t, func() { s.Set(3, 0) })
}

func TestFill(t *testing.T) {
	h := newHeap(t)
	s := Fill(h, 40, uint16(7))
	require.Equal(t, 40, s.Len())
	require.GreaterOrEqual(t, s.Cap(), 40)
	for v := range s.Values() {
		require.Equal(t, uint16(7), v)
	}
}

func TestValueAssignmentAliases(t *testing.T) {
	h := newHeap(t)
	a := New[int32](h)
	a.Push(1)

	b := a // same handle, same storage
	b.Set(0, 42)
	require.Equal(t, int32(42), a.At(0))
}

func TestCloneIsDeep(t *testing.T) {
	h := newHeap(t)
	a := New[int32](h)
	for i := int32(0); i < 5; i++ {
		a.Push(i)
	}

	b := a.Clone()
	b.Set(0, 99)
	b.Push(5)

	require.Equal(t, int32(0), a.At(0))
	require.Equal(t, 5, a.Len())
	require.Equal(t, 6, b.Len())
	require.NoError(t, h.CheckInvariants())
}

func TestMoveTransfersOwnership(t *testing.T) {
	h := newHeap(t)
	a := New[int32](h)
	a.Push(7)

	b := a.Move()
	require.Equal(t, 0, a.Len())
	require.Equal(t, 0, a.Cap())
	require.Equal(t, 1, b.Len())
	require.Equal(t, int32(7), b.At(0))

	// The source can be rebuilt without disturbing the moved storage.
	a.Push(100)
	require.Equal(t, int32(7), b.At(0))
	require.NoError(t, h.CheckInvariants())
}

func TestClearReleasesStorage(t *testing.T) {
	h := newHeap(t)
	a := New[int32](h)
	b := New[int32](h)
	a.Push(1)
	b.Push(2)

	b.Clear()
	a.Clear()
	require.Equal(t, uint32(0), h.End())
}

func TestReserveAndRealloc(t *testing.T) {
	h := newHeap(t)
	s := New[int32](h)
	for i := int32(0); i < 10; i++ {
		s.Push(i)
	}

	s.Reserve(100)
	require.GreaterOrEqual(t, s.Cap(), 110)
	require.Equal(t, 10, s.Len())
	require.Equal(t, int32(9), s.Back())

	// Shrinking below the length truncates.
	s.Realloc(4)
	require.Equal(t, 4, s.Len())
	require.Equal(t, 4, s.Cap())
	require.Equal(t, int32(3), s.Back())
	require.NoError(t, h.CheckInvariants())
}

func TestAttachAndAppendSlice(t *testing.T) {
	h := newHeap(t)
	a := New[int32](h)
	b := New[int32](h)
	for i := int32(0); i < 3; i++ {
		a.Push(i)
		b.Push(10 + i)
	}

	a.Attach(&b)
	require.Equal(t, 6, a.Len())
	require.Equal(t, int32(12), a.Back())
	require.Equal(t, 3, b.Len())

	a.AppendSlice([]int32{100, 101})
	require.Equal(t, 8, a.Len())
	require.Equal(t, int32(101), a.Back())
}

func TestResize(t *testing.T) {
	h := newHeap(t)
	s := New[int32](h)
	s.Push(1)
	s.Push(2)

	s.Resize(1)
	require.Equal(t, 1, s.Len())

	s.Resize(50)
	require.Equal(t, 50, s.Len())
	require.GreaterOrEqual(t, s.Cap(), 50)
	require.Equal(t, int32(1), s.At(0))
}

func TestSearch(t *testing.T) {
	h := newHeap(t)
	s := New[int32](h)
	for _, v := range []int32{5, 3, 8, 3, 9} {
		s.Push(v)
	}

	require.Equal(t, 1, IndexOf(&s, int32(3), 0))
	require.Equal(t, 3, IndexOf(&s, int32(3), 2))
	require.Equal(t, -1, IndexOf(&s, int32(3), 4))
	require.Equal(t, -1, IndexOf(&s, int32(7), 0))
	require.True(t, Contains(&s, int32(9)))
	require.False(t, Contains(&s, int32(1)))

	sub := New[int32](h)
	sub.Push(8)
	sub.Push(3)
	require.True(t, ContainsSeq(&s, &sub))
	require.Equal(t, 2, IndexOfSeq(&s, &sub))

	sub.Push(5)
	require.False(t, ContainsSeq(&s, &sub))

	empty := New[int32](h)
	require.True(t, ContainsSeq(&s, &empty))
}

func TestRotate(t *testing.T) {
	h := newHeap(t)

	build := func(n int) Sequence[int32] {
		s := New[int32](h)
		for i := int32(0); i < int32(n); i++ {
			s.Push(i)
		}
		return s
	}

	s := build(6)
	s.Rotate(2)
	require.Equal(t, []int32{2, 3, 4, 5, 0, 1}, s.View())

	s = build(6)
	s.Rotate(-2)
	require.Equal(t, []int32{4, 5, 0, 1, 2, 3}, s.View())

	s = build(6)
	s.Rotate(6) // full cycle is a no-op
	require.Equal(t, []int32{0, 1, 2, 3, 4, 5}, s.View())

	s = build(6)
	s.Rotate(8) // wraps to 2
	require.Equal(t, []int32{2, 3, 4, 5, 0, 1}, s.View())

	s = build(4)
	s.Rotate(2) // gcd(4,2)=2 cycles
	require.Equal(t, []int32{2, 3, 0, 1}, s.View())

	s = build(1)
	s.Rotate(5)
	require.Equal(t, []int32{0}, s.View())

	s = build(0)
	s.Rotate(3) // empty, no-op
	require.Equal(t, 0, s.Len())
}

func TestReverse(t *testing.T) {
	h := newHeap(t)
	s := New[int32](h)
	for i := int32(1); i <= 5; i++ {
		s.Push(i)
	}
	s.Reverse()
	require.Equal(t, []int32{5, 4, 3, 2, 1}, s.View())

	e := New[int32](h)
	e.Reverse()
	require.Equal(t, 0, e.Len())
}

func TestPrimesWorkload(t *testing.T) {
	h := newHeap(t)

	isPrime := func(n int32) bool {
		if n < 2 {
			return false
		}
		for d := int32(2); d*d <= n; d++ {
			if n%d == 0 {
				return false
			}
		}
		return true
	}

	s := New[int32](h)
	for i := int32(0); i < 1000; i++ {
		s.Push(i)
	}
	require.Equal(t, 1000, s.Len())

	// Pop everything, keeping only the primes. Popping walks the input
	// back to front, so the survivors come out descending.
	primes := New[int32](h)
	for s.Len() > 0 {
		if v := s.Pop(); isPrime(v) {
			primes.Push(v)
		}
	}
	primes.Reverse()

	require.Equal(t, 168, primes.Len())
	require.Equal(t, int32(2), primes.Front())
	require.Equal(t, int32(997), primes.Back())
	require.Equal(t, 4, IndexOf(&primes, int32(11), 0))
	require.Equal(t, 167, IndexOf(&primes, int32(997), 0))
	require.False(t, Contains(&primes, int32(999)))

	require.NoError(t, h.CheckInvariants())
	s.Clear()
	primes.Clear()
	require.Equal(t, uint32(0), h.End())
}

func TestIterators(t *testing.T) {
	h := newHeap(t)
	s := New[int32](h)
	for i := int32(0); i < 5; i++ {
		s.Push(i)
	}

	var fwd []int32
	for v := range s.Values() {
		fwd = append(fwd, v)
	}
	require.Equal(t, []int32{0, 1, 2, 3, 4}, fwd)

	var bwd []int32
	for v := range s.Backward() {
		bwd = append(bwd, v)
	}
	require.Equal(t, []int32{4, 3, 2, 1, 0}, bwd)

	var idx []int
	for i, v := range s.All() {
		idx = append(idx, i)
		if v == 2 {
			break
		}
	}
	require.Equal(t, []int{0, 1, 2}, idx)
}

func TestStructElements(t *testing.T) {
	type pair struct {
		K uint32
		V uint32
	}
	h := newHeap(t)
	s := New[pair](h)
	for i := uint32(0); i < 50; i++ {
		s.Push(pair{K: i, V: i * 2})
	}
	require.Equal(t, pair{K: 7, V: 14}, s.At(7))
	require.Equal(t, 50, s.Len())
	require.NoError(t, h.CheckInvariants())
}

func TestInterleavedSequencesShareHeap(t *testing.T) {
	h := newHeap(t)
	a := New[int32](h)
	b := New[int64](h)

	for i := 0; i < 200; i++ {
		a.Push(int32(i))
		b.Push(int64(-i))
	}
	for i := 0; i < 200; i++ {
		require.Equal(t, int32(i), a.At(i))
		require.Equal(t, int64(-i), b.At(i))
	}
	require.NoError(t, h.CheckInvariants())

	a.Clear()
	b.Clear()
	require.Equal(t, uint32(0), h.End())
}
