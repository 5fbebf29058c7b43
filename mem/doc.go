// Package mem provides aligned memory allocation beyond the guarantees of
// the Go allocator.
//
// # Two allocation paths
//
// The slice helpers (AllocAligned and friends) over-allocate from the Go
// heap and return a slice starting at an aligned offset. The garbage
// collector manages the lifetime; there is nothing to free. Use these for
// SIMD-friendly buffers with ordinary Go ownership.
//
// The Allocator hands out raw, manually owned blocks backed by anonymous
// OS mappings. Every pointer from Alloc must be released with Free exactly
// once. This path exists for objects that must live outside the Go heap
// (no GC scanning, stable addresses) with an exact ownership contract.
//
// # Alignment
//
// All alignments are power-of-two byte counts. A returned address p always
// satisfies p mod align == 0.
//
// # Off-heap caveat
//
// Allocator memory is invisible to the garbage collector. Types placed in
// it must not contain Go pointers; New enforces this.
package mem
