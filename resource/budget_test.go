package resource

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBudget_Limit(t *testing.T) {
	b := NewBudget(100)

	require.True(t, b.TryAcquire(50))
	assert.Equal(t, int64(50), b.Used())

	require.True(t, b.TryAcquire(40))
	assert.Equal(t, int64(90), b.Used())

	// Would exceed the limit.
	assert.False(t, b.TryAcquire(20))
	assert.Equal(t, int64(90), b.Used())

	b.Release(50)
	assert.Equal(t, int64(40), b.Used())

	assert.True(t, b.TryAcquire(20))
	assert.Equal(t, int64(60), b.Used())

	assert.Equal(t, int64(100), b.Limit())
}

func TestBudget_Unlimited(t *testing.T) {
	b := NewBudget(0)

	assert.True(t, b.TryAcquire(1 << 40))
	assert.Equal(t, int64(1<<40), b.Used())

	b.Release(1 << 39)
	assert.Equal(t, int64(1<<39), b.Used())
}

func TestBudget_Nil(t *testing.T) {
	var b *Budget

	assert.True(t, b.TryAcquire(1000))
	b.Release(1000)
	assert.Zero(t, b.Used())
	assert.Zero(t, b.Limit())
}

func TestBudget_ZeroAndNegative(t *testing.T) {
	b := NewBudget(10)

	assert.True(t, b.TryAcquire(0))
	assert.True(t, b.TryAcquire(-5))
	assert.Zero(t, b.Used())
}

func TestBudget_Concurrent(t *testing.T) {
	const (
		workers = 8
		rounds  = 1000
	)
	b := NewBudget(int64(workers)) // 1 byte per worker

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < rounds; j++ {
				if b.TryAcquire(1) {
					b.Release(1)
				}
			}
		}()
	}
	wg.Wait()

	assert.Zero(t, b.Used())
}
