package mem

import (
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"unsafe"

	"github.com/hupe1980/platgo/internal/mmap"
	"github.com/hupe1980/platgo/resource"
)

var (
	// ErrBadSize is returned when size is not positive.
	ErrBadSize = errors.New("mem: size must be positive")
	// ErrBadAlign is returned when align is not a power of two.
	ErrBadAlign = errors.New("mem: align must be a power of two")
	// ErrBudgetExceeded is returned when the configured budget denies the
	// allocation.
	ErrBudgetExceeded = errors.New("mem: memory budget exceeded")
)

// headerSize is the bookkeeping stored immediately before every pointer
// Alloc returns: the mapping base address and the mapping length. It is
// private to the allocator; callers must never touch the bytes below the
// returned pointer.
const headerSize = int(2 * unsafe.Sizeof(uintptr(0)))

// Stats tracks allocator usage.
type Stats struct {
	TotalAllocs   uint64 // cumulative successful Alloc calls
	TotalFrees    uint64 // cumulative Free calls on non-nil pointers
	BytesReserved int64  // bytes currently mapped (including padding)
}

// Allocator hands out manually owned aligned blocks backed by anonymous OS
// mappings. It keeps no per-block state of its own: everything needed to
// release a block is recorded in the block's private header, so the
// allocator is stateless apart from atomic counters and safe for concurrent
// use.
type Allocator struct {
	budget *resource.Budget
	logger *slog.Logger

	allocs atomic.Uint64
	frees  atomic.Uint64
	bytes  atomic.Int64
}

// Option configures an Allocator.
type Option func(*Allocator)

// WithBudget caps the total bytes the allocator may hold. When the budget
// denies a reservation, Alloc fails with ErrBudgetExceeded instead of
// mapping memory.
func WithBudget(b *resource.Budget) Option {
	return func(a *Allocator) {
		a.budget = b
	}
}

// WithLogger enables debug logging of alloc/free events.
func WithLogger(l *slog.Logger) Option {
	return func(a *Allocator) {
		a.logger = l
	}
}

// NewAllocator creates an Allocator.
func NewAllocator(opts ...Option) *Allocator {
	a := &Allocator{}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Alloc returns size bytes of zeroed memory at an address that is a
// multiple of align (a power of two). On exhaustion it returns nil and an
// error; it never aborts the process.
//
// The block is outside the Go heap. It must be released with Free exactly
// once, and must not be used to store Go pointers.
func (a *Allocator) Alloc(size, align int) (unsafe.Pointer, error) {
	if size <= 0 {
		return nil, ErrBadSize
	}
	if align <= 0 || align&(align-1) != 0 {
		return nil, ErrBadAlign
	}

	// Room for the header below the user pointer plus worst-case alignment
	// slack above it.
	total := size + align + headerSize

	if !a.budget.TryAcquire(int64(total)) {
		return nil, fmt.Errorf("%w: %d bytes requested, %d of %d in use",
			ErrBudgetExceeded, total, a.budget.Used(), a.budget.Limit())
	}

	data, err := mmap.MapAnon(total)
	if err != nil {
		a.budget.Release(int64(total))
		return nil, fmt.Errorf("mem: map %d bytes: %w", total, err)
	}

	base := uintptr(unsafe.Pointer(&data[0])) //nolint:gosec // manual allocator
	user := AlignUp(base+uintptr(headerSize), uintptr(align))

	hdr := (*[2]uintptr)(unsafe.Pointer(user - uintptr(headerSize))) //nolint:gosec // manual allocator
	hdr[0] = base
	hdr[1] = uintptr(total)

	a.allocs.Add(1)
	a.bytes.Add(int64(total))

	if a.logger != nil {
		a.logger.Debug("alloc", "size", size, "align", align, "mapped", total)
	}

	return unsafe.Pointer(user), nil //nolint:gosec // manual allocator
}

// Free releases a block previously returned by Alloc. Freeing nil is a
// no-op. Freeing a foreign pointer or freeing twice is undefined behavior;
// the allocator does not detect misuse.
func (a *Allocator) Free(p unsafe.Pointer) {
	if p == nil {
		return
	}

	hdr := (*[2]uintptr)(unsafe.Add(p, -headerSize))
	base, total := hdr[0], int(hdr[1])

	data := unsafe.Slice((*byte)(unsafe.Pointer(base)), total) //nolint:gosec // manual allocator
	if err := mmap.Unmap(data); err != nil && a.logger != nil {
		a.logger.Error("unmap failed", "err", err, "bytes", total)
	}

	a.budget.Release(int64(total))
	a.frees.Add(1)
	a.bytes.Add(-int64(total))

	if a.logger != nil {
		a.logger.Debug("free", "mapped", total)
	}
}

// Stats returns current allocator counters.
func (a *Allocator) Stats() Stats {
	return Stats{
		TotalAllocs:   a.allocs.Load(),
		TotalFrees:    a.frees.Load(),
		BytesReserved: a.bytes.Load(),
	}
}
