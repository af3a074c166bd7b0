package heap

import (
	"fmt"

	"go.uber.org/zap"
)

// Heap is a first-fit allocator over a Region. It is not safe for
// concurrent use.
type Heap struct {
	region Region
	data   []byte

	end       uint32 // one past the topmost block; region base when empty
	firstFree uint32 // head of the free list, NilRef when empty
	lastBlock uint32 // header offset of the topmost block, NilRef when empty

	stats Stats
	log   *zap.Logger
}

// Option configures a Heap.
type Option func(*Heap)

// WithLogger attaches a logger for debug tracing of grow and shrink
// events. The default logger is a no-op.
func WithLogger(l *zap.Logger) Option {
	return func(h *Heap) { h.log = l }
}

// New returns an empty heap over r.
func New(r Region, opts ...Option) *Heap {
	h := &Heap{
		region:    r,
		data:      r.Bytes(),
		firstFree: NilRef,
		lastBlock: NilRef,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Bytes returns the current view of the backing region. The view is
// invalidated by any Alloc that grows the region.
func (h *Heap) Bytes() []byte { return h.data }

// End returns the offset one past the topmost block, 0 when the heap is
// empty.
func (h *Heap) End() uint32 { return h.end }

// Stats returns a copy of the heap's counters.
func (h *Heap) Stats() Stats { return h.stats }

// Payload returns the live payload bytes of an allocated block.
func (h *Heap) Payload(ref Ref) ([]byte, error) {
	b, err := h.checkRef(ref)
	if err != nil {
		return nil, err
	}
	if h.isFree(b) {
		return nil, fmt.Errorf("%w: 0x%X is free", ErrBadRef, ref)
	}
	return h.data[ref:h.blockEnd(b)], nil
}

func (h *Heap) checkRef(ref Ref) (uint32, error) {
	if ref < HeaderSize || ref > h.end {
		return 0, fmt.Errorf("%w: 0x%X outside heap [0, 0x%X)", ErrBadRef, ref, h.end)
	}
	b := blockOf(ref)
	if h.blockEnd(b) > h.end {
		return 0, fmt.Errorf("%w: 0x%X overruns heap end", ErrBadRef, ref)
	}
	return b, nil
}

// Alloc returns a block with at least n payload bytes. The returned
// slice is the payload view into the region; it is invalidated by any
// later Alloc that grows the region.
func (h *Heap) Alloc(n uint32) (Ref, []byte, error) {
	h.stats.AllocCalls++
	need := alignUp(n)
	if need < MinPayload {
		need = MinPayload
	}
	if need < n { // alignment wrapped
		return NilRef, nil, fmt.Errorf("%w: size 0x%X", ErrOutOfMemory, n)
	}

	fb := h.firstFree
	for fb != NilRef && h.blockSize(fb) < need {
		fb = h.nextFree(fb)
	}
	if fb == NilRef {
		return h.allocEnd(need)
	}

	if h.blockSize(fb) >= need+HeaderSize+MinPayload {
		return h.allocSplit(fb, need)
	}

	// Take the whole block. Its payload size stays as-is, so a slightly
	// oversized block keeps its surplus until it is freed and coalesced.
	h.unlinkFree(fb)
	h.setAllocated(fb)
	h.stats.Reused++
	h.stats.BytesAllocated += uint64(h.blockSize(fb))
	return payload(fb), h.data[payload(fb):h.blockEnd(fb)], nil
}

// allocSplit carves need bytes from the upper end of free block fb. The
// free block keeps its header, links and list position; only its payload
// size shrinks.
func (h *Heap) allocSplit(fb, need uint32) (Ref, []byte, error) {
	oldEnd := h.blockEnd(fb)
	nb := oldEnd - need - HeaderSize

	h.setBlockSize(fb, nb-fb-HeaderSize)

	h.data[nb] = 0
	h.setBlockSize(nb, need)
	h.setPrevBlock(nb, fb)

	// The block after the split point existed before (the topmost block
	// is never free) and now follows the carved block.
	if oldEnd < h.end {
		h.setPrevBlock(oldEnd, nb)
	} else {
		h.lastBlock = nb
	}

	h.stats.Splits++
	h.stats.BytesAllocated += uint64(need)
	return payload(nb), h.data[payload(nb):oldEnd], nil
}

// allocEnd appends a fresh block at the heap end, growing the region
// when it is too small.
func (h *Heap) allocEnd(need uint32) (Ref, []byte, error) {
	b := h.end
	newEnd := b + HeaderSize + need
	if newEnd < b {
		return NilRef, nil, fmt.Errorf("%w: heap end would wrap", ErrOutOfMemory)
	}
	if err := h.ensure(newEnd); err != nil {
		return NilRef, nil, err
	}

	h.data[b] = 0
	h.setBlockSize(b, need)
	h.setPrevBlock(b, h.lastBlock)
	h.lastBlock = b
	h.end = newEnd

	h.stats.TailExtends++
	h.stats.BytesAllocated += uint64(need)
	return payload(b), h.data[payload(b):newEnd], nil
}

// ensure grows the region until it covers at least size bytes and
// refreshes the cached view.
func (h *Heap) ensure(size uint32) error {
	if uint64(size) <= uint64(len(h.data)) {
		return nil
	}
	if err := h.region.Grow(size); err != nil {
		return fmt.Errorf("%w: region grow to 0x%X: %v", ErrOutOfMemory, size, err)
	}
	h.data = h.region.Bytes()
	if uint64(size) > uint64(len(h.data)) {
		return fmt.Errorf("%w: region grew short of 0x%X", ErrOutOfMemory, size)
	}
	h.stats.RegionGrows++
	h.log.Debug("region grown",
		zap.Uint32("need", size),
		zap.Int("size", len(h.data)))
	return nil
}
