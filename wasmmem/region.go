// Package wasmmem adapts a WebAssembly linear memory to heap.Region, so
// a Heap can manage allocations inside a guest module's address space.
// It also provides the "env" host module a guest needs to emit text
// back to the embedder.
package wasmmem

import (
	"fmt"

	"github.com/tetratelabs/wazero/api"

	"github.com/slawlabs/linearcore/heap"
)

// PageSize is the WebAssembly linear-memory page size.
const PageSize = 65536

// Region is a heap.Region over a wazero linear memory. The view
// returned by Bytes is the live memory buffer; wazero invalidates it on
// memory growth, which matches the Region contract.
type Region struct {
	mem api.Memory
}

// NewRegion wraps mem. The module's memory must be exported for the
// host to obtain it.
func NewRegion(mem api.Memory) *Region {
	return &Region{mem: mem}
}

// Bytes returns the full linear memory.
func (r *Region) Bytes() []byte {
	b, ok := r.mem.Read(0, r.mem.Size())
	if !ok {
		return nil
	}
	return b
}

// Grow extends the memory by whole pages until it covers min bytes.
// Fails with ErrOutOfMemory when the module's max memory is reached.
func (r *Region) Grow(min uint32) error {
	cur := r.mem.Size()
	if min <= cur {
		return nil
	}
	delta := (min - cur + PageSize - 1) / PageSize
	if _, ok := r.mem.Grow(delta); !ok {
		return fmt.Errorf("%w: memory.grow by %d pages refused", heap.ErrOutOfMemory, delta)
	}
	return nil
}
