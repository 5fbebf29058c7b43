package mem

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/platgo/resource"
)

func TestAllocatorAlignment(t *testing.T) {
	a := NewAllocator()

	sizes := []int{1, 7, 64, 100, 4096, 1 << 20}
	for _, align := range testAligns {
		for _, size := range sizes {
			p, err := a.Alloc(size, align)
			require.NoError(t, err)
			require.NotNil(t, p)

			assert.True(t, IsAligned(p, uintptr(align)),
				"address %#x not aligned to %d for size %d", uintptr(p), align, size)

			// Zero-filled, and all size bytes writable.
			b := unsafe.Slice((*byte)(p), size)
			for i := range b {
				require.Zero(t, b[i])
			}
			b[0] = 0xaa
			b[size-1] = 0xbb

			a.Free(p)
		}
	}

	st := a.Stats()
	assert.Equal(t, st.TotalAllocs, st.TotalFrees)
	assert.Zero(t, st.BytesReserved)
}

func TestAllocatorContractViolations(t *testing.T) {
	a := NewAllocator()

	_, err := a.Alloc(0, 64)
	assert.ErrorIs(t, err, ErrBadSize)

	_, err = a.Alloc(-1, 64)
	assert.ErrorIs(t, err, ErrBadSize)

	_, err = a.Alloc(64, 0)
	assert.ErrorIs(t, err, ErrBadAlign)

	_, err = a.Alloc(64, 3)
	assert.ErrorIs(t, err, ErrBadAlign)

	_, err = a.Alloc(64, 48)
	assert.ErrorIs(t, err, ErrBadAlign)
}

func TestFreeNil(t *testing.T) {
	a := NewAllocator()
	a.Free(nil) // must not crash

	assert.Zero(t, a.Stats().TotalFrees)
}

func TestAllocFreeRoundTrip(t *testing.T) {
	// A full cycle must not leak budget or mappings: the same request
	// succeeds again under a budget sized for a single block.
	b := resource.NewBudget(8 << 10)
	a := NewAllocator(WithBudget(b))

	for i := 0; i < 10; i++ {
		p, err := a.Alloc(4096, 64)
		require.NoError(t, err)
		a.Free(p)
	}

	assert.Zero(t, b.Used())
	assert.Zero(t, a.Stats().BytesReserved)
}

func TestAllocBudgetExhaustion(t *testing.T) {
	b := resource.NewBudget(1024)
	a := NewAllocator(WithBudget(b))

	// First allocation fits.
	p, err := a.Alloc(256, 64)
	require.NoError(t, err)

	// Second does not: nil + error, never a fault.
	q, err := a.Alloc(1024, 64)
	assert.ErrorIs(t, err, ErrBudgetExceeded)
	assert.Nil(t, q)

	// Releasing the first block makes room again.
	a.Free(p)
	p, err = a.Alloc(256, 64)
	require.NoError(t, err)
	a.Free(p)
}

func TestAllocatorStats(t *testing.T) {
	a := NewAllocator()

	p1, err := a.Alloc(100, 64)
	require.NoError(t, err)
	p2, err := a.Alloc(200, 32)
	require.NoError(t, err)

	st := a.Stats()
	assert.Equal(t, uint64(2), st.TotalAllocs)
	assert.Zero(t, st.TotalFrees)
	assert.Positive(t, st.BytesReserved)

	a.Free(p1)
	a.Free(p2)

	st = a.Stats()
	assert.Equal(t, uint64(2), st.TotalFrees)
	assert.Zero(t, st.BytesReserved)
}

func TestAllocatorConcurrent(t *testing.T) {
	a := NewAllocator(WithBudget(resource.NewBudget(64 << 20)))

	var g errgroup.Group
	for w := 0; w < 8; w++ {
		g.Go(func() error {
			for i := 0; i < 200; i++ {
				p, err := a.Alloc(1024, 64)
				if err != nil {
					return err
				}
				// Touch the block to catch overlapping handouts.
				*(*uint64)(p) = uint64(i)
				a.Free(p)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	st := a.Stats()
	assert.Equal(t, st.TotalAllocs, st.TotalFrees)
	assert.Zero(t, st.BytesReserved)
}

func BenchmarkAllocatorAllocFree(b *testing.B) {
	a := NewAllocator()
	for i := 0; i < b.N; i++ {
		p, err := a.Alloc(4096, 64)
		if err != nil {
			b.Fatal(err)
		}
		a.Free(p)
	}
}
