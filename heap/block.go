package heap

import "github.com/slawlabs/linearcore/internal/buf"

// Ref is a heap address: the uint32 offset of an allocation's payload
// from the region base.
type Ref = uint32

const (
	// HeaderSize is the size of a block header in bytes.
	HeaderSize = 12

	// MinPayload is the smallest payload a block may carry. Free blocks
	// store their two free-list links in the first 8 payload bytes.
	MinPayload = 8

	// NilRef is the null offset. Offset 0 is a valid block address, so
	// the all-ones pattern marks absent links instead.
	NilRef Ref = 0xFFFFFFFF

	// payloadAlign keeps payload sizes (and with HeaderSize = 12, all
	// block offsets) aligned for the uint32 fields stored inside blocks.
	payloadAlign = 4

	flagFree = 0x01

	sizeOff = 4
	prevOff = 8
)

// alignUp rounds n up to the next multiple of payloadAlign.
func alignUp(n uint32) uint32 {
	return (n + payloadAlign - 1) &^ uint32(payloadAlign-1)
}

// Header field access. All take the block's header offset.

func (h *Heap) isFree(b uint32) bool {
	return h.data[b]&flagFree != 0
}

func (h *Heap) setFree(b uint32) {
	h.data[b] |= flagFree
}

func (h *Heap) setAllocated(b uint32) {
	h.data[b] &^= flagFree
}

func (h *Heap) blockSize(b uint32) uint32 {
	return buf.U32LE(h.data[b+sizeOff:])
}

func (h *Heap) setBlockSize(b, n uint32) {
	buf.PutU32LE(h.data[b+sizeOff:], n)
}

func (h *Heap) prevBlock(b uint32) uint32 {
	return buf.U32LE(h.data[b+prevOff:])
}

func (h *Heap) setPrevBlock(b, prev uint32) {
	buf.PutU32LE(h.data[b+prevOff:], prev)
}

// blockEnd returns the offset one past the block's payload, which is the
// header offset of the next physical block when one exists.
func (h *Heap) blockEnd(b uint32) uint32 {
	return b + HeaderSize + h.blockSize(b)
}

// payload returns the Ref of the block's payload.
func payload(b uint32) Ref {
	return b + HeaderSize
}

// blockOf returns the header offset for a payload Ref.
func blockOf(ref Ref) uint32 {
	return ref - HeaderSize
}

// Free-list links live in the first 8 payload bytes of a free block.

func (h *Heap) prevFree(b uint32) uint32 {
	return buf.U32LE(h.data[b+HeaderSize:])
}

func (h *Heap) setPrevFree(b, prev uint32) {
	buf.PutU32LE(h.data[b+HeaderSize:], prev)
}

func (h *Heap) nextFree(b uint32) uint32 {
	return buf.U32LE(h.data[b+HeaderSize+4:])
}

func (h *Heap) setNextFree(b, next uint32) {
	buf.PutU32LE(h.data[b+HeaderSize+4:], next)
}

// unlinkFree removes block b from the free list.
func (h *Heap) unlinkFree(b uint32) {
	pf, nf := h.prevFree(b), h.nextFree(b)
	if pf != NilRef {
		h.setNextFree(pf, nf)
	} else {
		h.firstFree = nf
	}
	if nf != NilRef {
		h.setPrevFree(nf, pf)
	}
}
