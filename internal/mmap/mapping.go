package mmap

import (
	"errors"
)

var (
	// ErrInvalidSize is returned for non-positive mapping sizes.
	ErrInvalidSize = errors.New("mmap: invalid mapping size")
)

// MapAnon creates a read-write anonymous mapping of size bytes.
// The memory is zero-filled, page-aligned, and not managed by the Go
// runtime. It must be released with Unmap, passing the exact slice
// returned here.
func MapAnon(size int) ([]byte, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	return osMapAnon(size)
}

// Unmap returns a mapping obtained from MapAnon to the OS.
// The slice (and any pointer derived from it) is invalid afterwards.
func Unmap(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	return osUnmap(data)
}
