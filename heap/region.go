package heap

// Region is the backing memory of a Heap: a flat byte range addressed
// from offset 0 that can grow on demand.
//
// Bytes returns the current full view of the region. The view is
// invalidated by Grow, so callers must re-fetch it after any call that
// may have grown the region.
type Region interface {
	Bytes() []byte
	Grow(min uint32) error
}

// FixedRegion is a Region over a Go slice with a fixed size. Grow
// requests beyond the slice fail with ErrOutOfMemory. It is the region
// of choice for tests and in-process scratch heaps.
type FixedRegion struct {
	buf []byte
}

// NewFixedRegion returns a zeroed fixed region of the given size.
func NewFixedRegion(size uint32) *FixedRegion {
	return &FixedRegion{buf: make([]byte, size)}
}

// Bytes returns the whole region.
func (r *FixedRegion) Bytes() []byte { return r.buf }

// Grow succeeds only when the region already covers min bytes.
func (r *FixedRegion) Grow(min uint32) error {
	if uint64(min) <= uint64(len(r.buf)) {
		return nil
	}
	return ErrOutOfMemory
}
