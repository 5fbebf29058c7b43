package mem

import (
	"unsafe"
)

const (
	// CacheLineSize is the typical CPU cache line size in bytes.
	CacheLineSize = 64

	// AVX2Alignment is the required alignment for AVX2 loads (32 bytes).
	AVX2Alignment = 32

	// AVX512Alignment is the required alignment for AVX-512 loads (64 bytes).
	AVX512Alignment = 64
)

// AlignUp rounds n up to the next multiple of align (a power of two).
func AlignUp(n, align uintptr) uintptr {
	return (n + align - 1) &^ (align - 1)
}

// IsAligned reports whether ptr is a multiple of align (a power of two).
func IsAligned(ptr unsafe.Pointer, align uintptr) bool {
	return uintptr(ptr)&(align-1) == 0
}

// checkAlign panics on a non-power-of-two alignment. Misaligned requests are
// caller bugs, not runtime conditions.
func checkAlign(align int) {
	if align <= 0 || align&(align-1) != 0 {
		panic("mem: align must be a power of two")
	}
}

// AllocAligned allocates a byte slice of the given size whose first element
// starts at an address that is a multiple of align (a power of two).
//
// The slice is ordinary GC-managed memory: the over-allocated backing array
// stays alive for as long as the returned slice is referenced, and there is
// nothing to free.
func AllocAligned(size, align int) []byte {
	checkAlign(align)
	if size <= 0 {
		return nil
	}

	// Over-allocate so an aligned offset always exists within the buffer.
	buf := make([]byte, size+align)

	ptr := unsafe.Pointer(&buf[0]) //nolint:gosec // unsafe is required for memory alignment
	addr := uintptr(ptr)
	offset := int(AlignUp(addr, uintptr(align)) - addr)

	// Three-index slice so appends cannot spill past the aligned window.
	return buf[offset : offset+size : offset+size]
}

// AllocAlignedFloat32 allocates a float32 slice of length n whose first
// element starts at a multiple of align.
func AllocAlignedFloat32(n, align int) []float32 {
	if n <= 0 {
		checkAlign(align)
		return nil
	}

	b := AllocAligned(n*4, align)
	ptr := unsafe.Pointer(&b[0]) //nolint:gosec // unsafe is required for memory alignment
	return unsafe.Slice((*float32)(ptr), n) //nolint:gosec // unsafe is required for memory alignment
}

// AllocAlignedUint32 allocates a uint32 slice of length n whose first
// element starts at a multiple of align.
func AllocAlignedUint32(n, align int) []uint32 {
	if n <= 0 {
		checkAlign(align)
		return nil
	}

	b := AllocAligned(n*4, align)
	ptr := unsafe.Pointer(&b[0]) //nolint:gosec // unsafe is required for memory alignment
	return unsafe.Slice((*uint32)(ptr), n) //nolint:gosec // unsafe is required for memory alignment
}

// AllocAlignedInt8 allocates an int8 slice of length n whose first element
// starts at a multiple of align.
func AllocAlignedInt8(n, align int) []int8 {
	if n <= 0 {
		checkAlign(align)
		return nil
	}

	b := AllocAligned(n, align)
	ptr := unsafe.Pointer(&b[0]) //nolint:gosec // unsafe is required for memory alignment
	return unsafe.Slice((*int8)(ptr), n) //nolint:gosec // unsafe is required for memory alignment
}
