//go:build windows

package mmap

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

func osMapAnon(size int) ([]byte, error) {
	// VirtualAlloc with MEM_COMMIT uses demand-paging: pages are only backed
	// by physical memory on first touch, matching Unix mmap behavior.
	addr, err := windows.VirtualAlloc(0, uintptr(size),
		windows.MEM_RESERVE|windows.MEM_COMMIT, windows.PAGE_READWRITE)
	if err != nil {
		return nil, err
	}

	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size), nil
}

func osUnmap(data []byte) error {
	// MEM_RELEASE frees the entire region starting at its base address,
	// which is the first byte of the slice MapAnon returned.
	addr := uintptr(unsafe.Pointer(&data[0]))
	return windows.VirtualFree(addr, 0, windows.MEM_RELEASE)
}
