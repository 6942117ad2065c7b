package fc

import (
	"io"
	"os"

	"golang.org/x/exp/mmap"
)

// maxSlurpSize is the implementation ceiling for Slurp, comfortably
// above the 2^31-1 byte floor the reader must support on 64-bit
// platforms.
const maxSlurpSize = 1 << 40

// Slurp loads the entire file at path into a single contiguous buffer.
// A zero-length file returns a valid empty, non-nil buffer.
func Slurp(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ioErr("slurp.open", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, ioErr("slurp.stat", err)
	}
	if info.Size() > maxSlurpSize {
		return nil, memErr("slurp.size", nil)
	}

	size := info.Size()
	if size == 0 {
		return []byte{}, nil
	}

	buf := make([]byte, size)
	if _, err := io.ReadFull(f, buf); err != nil {
		return nil, ioErr("slurp.read", err)
	}
	return buf, nil
}

// Mapping is a read-only view of a file's contents. Close releases it.
type Mapping struct {
	r    *mmap.ReaderAt
	size int64
}

// Map opens path and returns a read-only mapping over its full length.
func Map(path string) (*Mapping, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, ioErr("map.open", err)
	}
	return &Mapping{r: r, size: int64(r.Len())}, nil
}

// Len returns the mapped file's size in bytes.
func (m *Mapping) Len() int64 { return m.size }

// ReadAt satisfies io.ReaderAt, letting callers read arbitrary spans.
func (m *Mapping) ReadAt(p []byte, off int64) (int, error) {
	return m.r.ReadAt(p, off)
}

// Close releases the mapping.
func (m *Mapping) Close() error {
	return m.r.Close()
}
