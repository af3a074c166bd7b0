package heap

import "fmt"

// Attach opens a heap over a region that already holds a block chain,
// for example a file-backed region written by an earlier process. The
// free list is rebuilt from scratch by scanning the chain, so only the
// headers need to have survived. end is the heap end recorded by the
// writer, typically the region size.
func Attach(r Region, end uint32, opts ...Option) (*Heap, error) {
	h := New(r, opts...)
	if uint64(end) > uint64(len(h.data)) {
		return nil, fmt.Errorf("%w: end 0x%X beyond region size 0x%X", ErrBadRef, end, len(h.data))
	}
	h.end = end

	prev := NilRef
	lastFree := NilRef
	for b := uint32(0); b < end; {
		if got := h.prevBlock(b); got != prev {
			return nil, fmt.Errorf("%w: block 0x%X prev = 0x%X, want 0x%X", ErrCorrupt, b, got, prev)
		}
		next := h.blockEnd(b)
		if next <= b || next > end {
			return nil, fmt.Errorf("%w: block 0x%X overruns end 0x%X", ErrCorrupt, b, end)
		}
		if h.isFree(b) {
			if lastFree == NilRef {
				h.firstFree = b
			} else {
				h.setNextFree(lastFree, b)
			}
			h.setPrevFree(b, lastFree)
			h.setNextFree(b, NilRef)
			lastFree = b
		}
		prev = b
		b = next
	}
	h.lastBlock = prev

	// A writer that stopped mid-free can leave the topmost block free;
	// retire it the way Free would have.
	for h.lastBlock != NilRef && h.isFree(h.lastBlock) {
		h.unlinkFree(h.lastBlock)
		h.shrink(h.lastBlock)
	}

	if err := h.CheckInvariants(); err != nil {
		return nil, err
	}
	return h, nil
}
