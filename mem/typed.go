package mem

import (
	"errors"
	"reflect"
	"sync/atomic"
	"unsafe"
)

// ErrHasPointers is returned when a type placed in off-heap memory contains
// Go pointers. The garbage collector cannot see off-heap memory, so any Go
// pointer stored there would be collected out from under the caller.
var ErrHasPointers = errors.New("mem: type contains Go pointers")

// New allocates a zeroed T in an off-heap block whose address is a multiple
// of align. If align is 0, CacheLineSize is used. The object must be
// released with Delete exactly once.
//
// Intended for types that need stronger alignment than the Go allocator
// guarantees; ordinary types work but waste a mapping per object.
func New[T any](a *Allocator, align int) (*T, error) {
	var zero T
	if containsPointers(reflect.TypeOf(&zero).Elem()) {
		return nil, ErrHasPointers
	}

	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		size = 1
	}
	if align == 0 {
		align = CacheLineSize
	}

	p, err := a.Alloc(size, align)
	if err != nil {
		return nil, err
	}
	return (*T)(p), nil
}

// Delete releases an object allocated with New. Nil is a no-op.
// Deleting through a different type than the one allocated, or deleting
// twice, is undefined behavior.
func Delete[T any](a *Allocator, p *T) {
	if p == nil {
		return
	}
	a.Free(unsafe.Pointer(p))
}

// Owned is a scoped-ownership handle around an off-heap T. It pins the
// construct/teardown pairing that raw New/Delete leave to the caller: the
// finalizer runs before the memory is released, and Close is idempotent, so
// a stray second Close cannot double-free.
type Owned[T any] struct {
	a      *Allocator
	p      *T
	fini   func(*T)
	closed atomic.Bool
}

// NewOwned allocates an aligned T and runs init on it. init is only invoked
// after a successful allocation, never on nil. fini, if non-nil, runs inside
// Close before the block is freed.
func NewOwned[T any](a *Allocator, align int, init, fini func(*T)) (*Owned[T], error) {
	p, err := New[T](a, align)
	if err != nil {
		return nil, err
	}
	if init != nil {
		init(p)
	}
	return &Owned[T]{a: a, p: p, fini: fini}, nil
}

// Value returns the owned object, or nil after Close.
func (o *Owned[T]) Value() *T {
	if o.closed.Load() {
		return nil
	}
	return o.p
}

// Close runs the finalizer and releases the block. It is idempotent.
func (o *Owned[T]) Close() error {
	if o.closed.Swap(true) {
		return nil // already closed
	}
	if o.fini != nil {
		o.fini(o.p)
	}
	Delete(o.a, o.p)
	o.p = nil
	return nil
}

// containsPointers walks a type looking for anything the GC would need to
// scan.
func containsPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return containsPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if containsPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		// Pointers, slices, maps, chans, funcs, strings, interfaces.
		return true
	}
}
