//go:build !unix

package mapped

import (
	"io"
	"os"
)

// Without mmap the region lives in process memory and Sync writes the
// whole buffer back. fallbackFiles keys buffers by file so syncFile can
// find its origin.

var fallbackFiles = map[*byte]*os.File{}

func mapFile(f *os.File, size int) ([]byte, error) {
	data := make([]byte, size)
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	if _, err := io.ReadFull(f, data); err != nil && err != io.ErrUnexpectedEOF {
		return nil, err
	}
	fallbackFiles[&data[0]] = f
	return data, nil
}

func unmapFile(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	f := fallbackFiles[&data[0]]
	delete(fallbackFiles, &data[0])
	if f == nil {
		return nil
	}
	_, err := f.WriteAt(data, 0)
	return err
}

func syncFile(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	f := fallbackFiles[&data[0]]
	if f == nil {
		return nil
	}
	_, err := f.WriteAt(data, 0)
	return err
}
