// Package mmap provides anonymous read-write memory mappings obtained
// directly from the OS, bypassing the Go heap.
//
// Mapped memory is page-aligned, zero-filled, and invisible to the garbage
// collector. The caller owns the mapping and must Unmap it exactly once;
// the slice is invalid afterwards.
package mmap
