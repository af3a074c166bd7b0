// Package mapped provides a file-backed heap region via mmap. Growth
// extends the file and remaps; Sync flushes dirty pages so a heap image
// survives the process and can be reopened with heap.Attach.
package mapped

import (
	"fmt"
	"os"
)

// pageSize is the growth granularity. Files only ever grow by whole
// pages to keep remap churn low.
const pageSize = 4096

// Region is a heap.Region backed by a memory-mapped file.
type Region struct {
	f     *os.File
	data  []byte
	limit uint32 // max file size, 0 = unlimited
}

// Open memory-maps the file at path, creating it with initial bytes
// when absent. limit caps growth; pass 0 for no cap.
func Open(path string, initial, limit uint32) (*Region, error) {
	if limit != 0 && initial > limit {
		return nil, fmt.Errorf("mapped: initial size 0x%X above limit 0x%X", initial, limit)
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}

	size := uint32(roundUp(initial))
	if info.Size() > int64(size) {
		size = uint32(info.Size())
	}
	if err := f.Truncate(int64(size)); err != nil {
		f.Close()
		return nil, err
	}

	r := &Region{f: f, limit: limit}
	if size > 0 {
		r.data, err = mapFile(f, int(size))
		if err != nil {
			f.Close()
			return nil, err
		}
	}
	return r, nil
}

// Bytes returns the mapped view. Invalidated by Grow.
func (r *Region) Bytes() []byte { return r.data }

// Grow extends the file to cover at least min bytes and remaps it.
func (r *Region) Grow(min uint32) error {
	if uint64(min) <= uint64(len(r.data)) {
		return nil
	}
	size := roundUp(min)
	if r.limit != 0 && size > uint64(r.limit) {
		return fmt.Errorf("mapped: grow to 0x%X exceeds limit 0x%X", min, r.limit)
	}

	if r.data != nil {
		if err := unmapFile(r.data); err != nil {
			return err
		}
		r.data = nil
	}
	if err := r.f.Truncate(int64(size)); err != nil {
		return err
	}
	data, err := mapFile(r.f, int(size))
	if err != nil {
		return err
	}
	r.data = data
	return nil
}

// Truncate shrinks the file to exactly size bytes and remaps it.
// Trimming the page-rounded tail after a workload makes the heap end
// recoverable as the file size, so a later Open plus heap.Attach needs
// no separate end offset.
func (r *Region) Truncate(size uint32) error {
	if uint64(size) >= uint64(len(r.data)) {
		return nil
	}
	if r.data != nil {
		if err := syncFile(r.data); err != nil {
			return err
		}
		if err := unmapFile(r.data); err != nil {
			return err
		}
		r.data = nil
	}
	if err := r.f.Truncate(int64(size)); err != nil {
		return err
	}
	if size > 0 {
		data, err := mapFile(r.f, int(size))
		if err != nil {
			return err
		}
		r.data = data
	}
	return nil
}

// Sync flushes the mapping to disk.
func (r *Region) Sync() error {
	if r.data == nil {
		return nil
	}
	return syncFile(r.data)
}

// Close unmaps the region and closes the file.
func (r *Region) Close() error {
	if r.data != nil {
		if err := unmapFile(r.data); err != nil {
			r.f.Close()
			return err
		}
		r.data = nil
	}
	return r.f.Close()
}

func roundUp(n uint32) uint64 {
	return (uint64(n) + pageSize - 1) &^ uint64(pageSize-1)
}
