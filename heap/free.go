package heap

import (
	"fmt"

	"go.uber.org/zap"
)

// Free releases the block addressed by ref. Freeing an already-free
// block is a no-op. Freeing the topmost block shrinks the heap instead
// of keeping the block resident; otherwise the block joins the free
// list and merges with free physical neighbors.
func (h *Heap) Free(ref Ref) error {
	h.stats.FreeCalls++
	b, err := h.checkRef(ref)
	if err != nil {
		return err
	}
	if h.isFree(b) {
		h.stats.DoubleFrees++
		return nil
	}

	h.setFree(b)
	h.stats.BytesFreed += uint64(h.blockSize(b))

	// Shrink before touching the free list: a topmost free block must
	// never stay resident.
	if h.blockEnd(b) == h.end {
		h.shrink(b)
		return nil
	}

	if h.firstFree == NilRef {
		h.setPrevFree(b, NilRef)
		h.setNextFree(b, NilRef)
		h.firstFree = b
		return nil
	}

	if b < h.firstFree {
		h.setPrevFree(h.firstFree, b)
		h.setNextFree(b, h.firstFree)
		h.setPrevFree(b, NilRef)
		h.firstFree = b
		h.coalesce(b)
		return nil
	}

	// The block sits past the list head, so walking the physical chain
	// backwards must reach a free block before running out of
	// predecessors.
	search := h.prevBlock(b)
	for search != NilRef && !h.isFree(search) {
		search = h.prevBlock(search)
	}
	if search == NilRef {
		return fmt.Errorf("%w: no free predecessor for block 0x%X", ErrCorrupt, b)
	}

	nf := h.nextFree(search)
	h.setPrevFree(b, search)
	h.setNextFree(b, nf)
	if nf != NilRef {
		h.setPrevFree(nf, b)
	}
	h.setNextFree(search, b)

	h.coalesce(b)
	return nil
}

// shrink retires the topmost block b, and a free predecessor along with
// it, moving the heap end down.
func (h *Heap) shrink(b uint32) {
	prev := h.prevBlock(b)
	if prev != NilRef && h.isFree(prev) {
		h.unlinkFree(prev)
		h.end = prev
		h.lastBlock = h.prevBlock(prev)
	} else {
		h.end = b
		h.lastBlock = prev
	}
	h.stats.Shrinks++
	h.log.Debug("heap shrunk", zap.Uint32("end", h.end))
}

// coalesce merges the freshly freed block b with free physical
// neighbors. b is never topmost here, so a physical successor always
// exists.
func (h *Heap) coalesce(b uint32) {
	prev := h.prevBlock(b)
	prevIsFree := prev != NilRef && h.isFree(prev)
	next := h.blockEnd(b)
	nextIsFree := next < h.end && h.isFree(next)

	switch {
	case prevIsFree && nextIsFree:
		h.mergeInto(prev, b)
		h.mergeInto(prev, next)
		h.stats.Coalesces++
	case prevIsFree:
		h.mergeInto(prev, b)
		h.stats.Coalesces++
	case nextIsFree:
		h.mergeInto(b, next)
		h.stats.Coalesces++
	}
}

// mergeInto absorbs free block victim into free block keep, where victim
// physically follows keep. The victim leaves the free list and its
// header becomes payload of keep.
func (h *Heap) mergeInto(keep, victim uint32) {
	after := h.blockEnd(victim)
	if after < h.end {
		h.setPrevBlock(after, keep)
	} else {
		h.lastBlock = keep
	}
	h.setBlockSize(keep, h.blockSize(keep)+HeaderSize+h.blockSize(victim))
	h.unlinkFree(victim)
}
