package heap

import "errors"

var (
	// ErrOutOfMemory indicates the region could not supply the bytes an
	// allocation needed.
	ErrOutOfMemory = errors.New("heap: out of memory")

	// ErrBadRef indicates a payload reference that does not address a
	// block inside the heap.
	ErrBadRef = errors.New("heap: bad block reference")

	// ErrCorrupt indicates the block chain or free list violates a
	// structural invariant.
	ErrCorrupt = errors.New("heap: corrupt block structure")
)
