// Package seq implements a growable sequence of fixed-size elements
// whose storage lives inside a heap.Heap rather than Go-managed memory.
//
// A Sequence value is a small handle (heap pointer, block reference,
// length, capacity); assigning it aliases the same storage, Clone copies
// the storage, and Move transfers ownership leaving the source empty.
// Element views are materialized per call with unsafe.Slice, so they
// remain correct across region remaps, but a view obtained from View
// must not outlive the next growing operation.
//
// The element type must not contain Go pointers: the heap region is
// opaque bytes to the garbage collector. Storage is 4-byte aligned, so
// element types with 8-byte fields rely on the target architecture
// tolerating unaligned loads (true of amd64, arm64 and wasm).
//
// Allocation failures panic. A sequence is a building block for types
// that treat exhaustion of the underlying region as fatal; callers that
// need recoverable errors should size the region up front.
package seq

import (
	"fmt"
	"unsafe"

	"github.com/slawlabs/linearcore/heap"
	"github.com/slawlabs/linearcore/internal/buf"
	"github.com/slawlabs/linearcore/xmath"
)

// MinCapacity is the smallest element capacity New reserves.
const MinCapacity = 16

// Sequence is a dynamic array of T allocated inside a Heap.
type Sequence[T any] struct {
	h    *heap.Heap
	ref  heap.Ref
	size int
	cap  int
}

// New returns an empty sequence with MinCapacity reserved.
func New[T any](h *heap.Heap) Sequence[T] {
	return WithCapacity[T](h, MinCapacity)
}

// WithCapacity returns an empty sequence with room for capacity
// elements.
func WithCapacity[T any](h *heap.Heap, capacity int) Sequence[T] {
	s := Sequence[T]{h: h, ref: heap.NilRef}
	if capacity > 0 {
		s.ref = allocElems[T](h, capacity)
		s.cap = capacity
	}
	return s
}

// Fill returns a sequence of n elements, each set to v.
func Fill[T any](h *heap.Heap, n int, v T) Sequence[T] {
	s := WithCapacity[T](h, xmath.Max(n, MinCapacity))
	sl := s.slice()
	for i := 0; i < n; i++ {
		sl[i] = v
	}
	s.size = n
	return s
}

// allocElems reserves storage for n elements of T and returns the block
// reference.
func allocElems[T any](h *heap.Heap, n int) heap.Ref {
	esz := int(unsafe.Sizeof(*new(T)))
	if esz == 0 {
		panic("seq: zero-size element type")
	}
	bytes, ok := buf.MulOverflowSafe(n, esz)
	if !ok || n < 0 || uint64(bytes) > uint64(^uint32(0)) {
		panic(fmt.Sprintf("seq: capacity %d overflows storage", n))
	}
	ref, _, err := h.Alloc(uint32(bytes))
	if err != nil {
		panic(fmt.Sprintf("seq: %v", err))
	}
	return ref
}

// slice returns the full-capacity element view. Recomputed on every use
// because any growing allocation may remap the region.
func (s *Sequence[T]) slice() []T {
	if s.ref == heap.NilRef {
		return nil
	}
	b := s.h.Bytes()
	return unsafe.Slice((*T)(unsafe.Pointer(&b[s.ref])), s.cap)
}

// Len returns the number of elements.
func (s *Sequence[T]) Len() int { return s.size }

// Cap returns the reserved element capacity.
func (s *Sequence[T]) Cap() int { return s.cap }

// Heap returns the heap holding the sequence's storage.
func (s *Sequence[T]) Heap() *heap.Heap { return s.h }

// View returns the live elements. The view is invalidated by any
// growing operation on the same heap.
func (s *Sequence[T]) View() []T {
	return s.slice()[:s.size]
}

// At returns the element at index i.
func (s *Sequence[T]) At(i int) T {
	s.check(i)
	return s.slice()[i]
}

// Set stores v at index i.
func (s *Sequence[T]) Set(i int, v T) {
	s.check(i)
	s.slice()[i] = v
}

// Front returns the first element.
func (s *Sequence[T]) Front() T { return s.At(0) }

// Back returns the last element.
func (s *Sequence[T]) Back() T { return s.At(s.size - 1) }

func (s *Sequence[T]) check(i int) {
	if i < 0 || i >= s.size {
		panic(fmt.Sprintf("seq: index %d out of range [0, %d)", i, s.size))
	}
}

// Push appends v, doubling capacity when full.
func (s *Sequence[T]) Push(v T) {
	if s.size == s.cap {
		if s.cap == 0 {
			s.Realloc(MinCapacity)
		} else {
			s.Realloc(s.cap * 2)
		}
	}
	s.slice()[s.size] = v
	s.size++
}

// Pop removes and returns the last element.
func (s *Sequence[T]) Pop() T {
	v := s.At(s.size - 1)
	s.size--
	return v
}

// Reserve ensures room for extra more elements beyond the current
// length, doubling capacity until they fit.
func (s *Sequence[T]) Reserve(extra int) {
	need := s.size + extra
	if need <= s.cap {
		return
	}
	newCap := s.cap
	if newCap == 0 {
		newCap = MinCapacity
	}
	for newCap < need {
		newCap *= 2
		if newCap <= 0 {
			panic(fmt.Sprintf("seq: capacity %d overflows storage", need))
		}
	}
	s.Realloc(newCap)
}

// Resize sets the length to n, reserving capacity as needed. Elements
// revealed by growth carry whatever bytes the storage holds.
func (s *Sequence[T]) Resize(n int) {
	if n > s.size {
		s.Reserve(n - s.size)
	}
	s.size = n
}

// Realloc moves the sequence into a block of exactly newCap elements,
// truncating the length when it no longer fits.
func (s *Sequence[T]) Realloc(newCap int) {
	var newRef heap.Ref = heap.NilRef
	if newCap > 0 {
		newRef = allocElems[T](s.h, newCap)
	}
	if s.size > newCap {
		s.size = newCap
	}
	if s.size > 0 {
		dst := viewAt[T](s.h, newRef, newCap)
		copy(dst, s.slice()[:s.size])
	}
	if s.ref != heap.NilRef {
		// Storage release cannot fail for a ref the sequence owns.
		if err := s.h.Free(s.ref); err != nil {
			panic(fmt.Sprintf("seq: %v", err))
		}
	}
	s.ref = newRef
	s.cap = newCap
}

// viewAt materializes a capacity-wide view for a freshly allocated
// block.
func viewAt[T any](h *heap.Heap, ref heap.Ref, n int) []T {
	b := h.Bytes()
	return unsafe.Slice((*T)(unsafe.Pointer(&b[ref])), n)
}

// Attach appends the contents of other. other must not alias s.
func (s *Sequence[T]) Attach(other *Sequence[T]) {
	s.Reserve(other.size)
	copy(s.slice()[s.size:], other.View())
	s.size += other.size
}

// AppendSlice appends vs.
func (s *Sequence[T]) AppendSlice(vs []T) {
	s.Reserve(len(vs))
	copy(s.slice()[s.size:], vs)
	s.size += len(vs)
}

// Clone returns a deep copy with the same capacity.
func (s *Sequence[T]) Clone() Sequence[T] {
	out := Sequence[T]{h: s.h, ref: heap.NilRef}
	if s.cap > 0 {
		out.ref = allocElems[T](s.h, s.cap)
		out.cap = s.cap
		copy(viewAt[T](s.h, out.ref, out.cap), s.slice()[:s.size])
	}
	out.size = s.size
	return out
}

// Move transfers ownership of the storage to the returned sequence,
// leaving s empty with no reserved capacity.
func (s *Sequence[T]) Move() Sequence[T] {
	out := *s
	s.ref = heap.NilRef
	s.size = 0
	s.cap = 0
	return out
}

// Clear releases the storage, leaving an empty sequence with no
// reserved capacity.
func (s *Sequence[T]) Clear() {
	if s.ref != heap.NilRef {
		if err := s.h.Free(s.ref); err != nil {
			panic(fmt.Sprintf("seq: %v", err))
		}
	}
	s.ref = heap.NilRef
	s.size = 0
	s.cap = 0
}
