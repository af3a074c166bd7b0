package heap

import "fmt"

// BlockInfo describes one physical block for inspection tools.
type BlockInfo struct {
	Offset  uint32
	Payload uint32
	Prev    uint32
	Free    bool
}

// Blocks returns the physical block chain from base to heap end.
func (h *Heap) Blocks() []BlockInfo {
	var out []BlockInfo
	for b := uint32(0); b < h.end; b = h.blockEnd(b) {
		out = append(out, BlockInfo{
			Offset:  b,
			Payload: h.blockSize(b),
			Prev:    h.prevBlock(b),
			Free:    h.isFree(b),
		})
	}
	return out
}

// CheckInvariants validates the structural invariants of the heap:
// the physical chain tiles [0, end) exactly with correct predecessor
// links, no two free blocks are adjacent, the topmost block is never
// free, and the free list holds exactly the free blocks in ascending
// offset order with consistent back links.
func (h *Heap) CheckInvariants() error {
	var freeBlocks []uint32
	prev := NilRef
	prevWasFree := false
	blocks := 0

	for b := uint32(0); b < h.end; {
		if uint64(b)+HeaderSize > uint64(len(h.data)) {
			return fmt.Errorf("%w: header at 0x%X outside region", ErrCorrupt, b)
		}
		if got := h.prevBlock(b); got != prev {
			return fmt.Errorf("%w: block 0x%X prev = 0x%X, want 0x%X", ErrCorrupt, b, got, prev)
		}
		size := h.blockSize(b)
		if size < MinPayload || size%payloadAlign != 0 {
			return fmt.Errorf("%w: block 0x%X payload size %d", ErrCorrupt, b, size)
		}
		next := h.blockEnd(b)
		if next <= b || next > h.end {
			return fmt.Errorf("%w: block 0x%X overruns heap end 0x%X", ErrCorrupt, b, h.end)
		}

		free := h.isFree(b)
		if free && prevWasFree {
			return fmt.Errorf("%w: adjacent free blocks at 0x%X", ErrCorrupt, b)
		}
		if free {
			freeBlocks = append(freeBlocks, b)
		}

		prevWasFree = free
		prev = b
		b = next
		blocks++
	}

	if prev != h.lastBlock {
		return fmt.Errorf("%w: lastBlock = 0x%X, want 0x%X", ErrCorrupt, h.lastBlock, prev)
	}
	if prev != NilRef && h.isFree(prev) {
		return fmt.Errorf("%w: topmost block 0x%X is free", ErrCorrupt, prev)
	}

	// Free list must mirror the free blocks seen in the physical walk.
	i := 0
	pf := NilRef
	for b := h.firstFree; b != NilRef; b = h.nextFree(b) {
		if i >= len(freeBlocks) {
			return fmt.Errorf("%w: free list longer than free block count %d", ErrCorrupt, len(freeBlocks))
		}
		if b != freeBlocks[i] {
			return fmt.Errorf("%w: free list entry %d = 0x%X, want 0x%X", ErrCorrupt, i, b, freeBlocks[i])
		}
		if got := h.prevFree(b); got != pf {
			return fmt.Errorf("%w: free block 0x%X prevFree = 0x%X, want 0x%X", ErrCorrupt, b, got, pf)
		}
		pf = b
		i++
		if i > blocks {
			return fmt.Errorf("%w: free list cycle", ErrCorrupt)
		}
	}
	if i != len(freeBlocks) {
		return fmt.Errorf("%w: free list holds %d blocks, chain has %d free", ErrCorrupt, i, len(freeBlocks))
	}
	return nil
}
