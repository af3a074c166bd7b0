package heap

// Stats holds heap counters for instrumentation and tests.
type Stats struct {
	AllocCalls     int    // Total Alloc() calls
	FreeCalls      int    // Total Free() calls
	DoubleFrees    int    // Free() calls that hit an already-free block
	Reused         int    // Allocations served by taking a free block whole
	Splits         int    // Allocations served by splitting a free block
	TailExtends    int    // Allocations served by extending the heap end
	Shrinks        int    // Frees that moved the heap end down
	Coalesces      int    // Frees that merged adjacent free blocks
	RegionGrows    int    // Times the backing region grew
	BytesAllocated uint64 // Total payload bytes handed out
	BytesFreed     uint64 // Total payload bytes released
}

// Usage summarizes the heap's current byte accounting.
type Usage struct {
	HeapSize       uint32 // Bytes between region base and heap end
	AllocatedBytes uint32 // Payload bytes of live allocations
	FreeBytes      uint32 // Everything else: free payloads and all headers
	Blocks         int    // Physical blocks resident
	FreeBlocks     int    // Blocks on the free list
}

// Usage walks the block chain and returns the current byte accounting.
func (h *Heap) Usage() Usage {
	u := Usage{HeapSize: h.end}
	for b := uint32(0); b < h.end; b = h.blockEnd(b) {
		u.Blocks++
		if h.isFree(b) {
			u.FreeBlocks++
		} else {
			u.AllocatedBytes += h.blockSize(b)
		}
	}
	u.FreeBytes = u.HeapSize - u.AllocatedBytes
	return u
}
