// Package heap implements a first-fit free-list allocator over a flat
// 32-bit byte region.
//
// # Overview
//
// The heap manages a contiguous region of bytes addressed by uint32
// offsets. Every allocation is a block: a 12-byte header followed by the
// payload. Headers chain blocks physically through their predecessor
// offsets, and free blocks additionally link into a doubly-linked free
// list kept sorted by ascending offset.
//
// # Block layout
//
//	offset  size  field
//	+0      1     flags (bit 0 set = free)
//	+1      3     reserved
//	+4      4     payload size in bytes
//	+8      4     offset of the previous physical block (NilRef for the first)
//
// Free blocks reuse their first 8 payload bytes for the free-list links
// (previous-free at +0, next-free at +4), which is why payloads are never
// smaller than MinPayload.
//
// # Allocation
//
// Alloc scans the free list first-fit. A block with enough surplus is
// split, carving the new block from its upper end so the free block keeps
// its header and list position. An exact-enough fit is taken whole and
// keeps its oversized payload. When no free block fits, the heap extends
// at its end, growing the region if needed.
//
// # Freeing
//
// Free marks the block free and either shrinks the heap (when the block
// is topmost, also discarding a free predecessor), or inserts the block
// into the free list and coalesces it with free physical neighbors. The
// topmost block is never left free, so a workload that releases
// everything it allocated returns the heap end to the region base.
//
// # Regions
//
// The Region interface abstracts the backing memory. FixedRegion wraps a
// Go slice for tests and tools, package mapped provides a file-backed
// region via mmap, and package wasmmem adapts a WebAssembly linear
// memory.
package heap
