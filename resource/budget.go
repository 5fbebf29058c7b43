// Package resource enforces a process-wide budget on manually managed
// memory. A nil *Budget is valid and enforces nothing, so callers can thread
// an optional budget through without nil checks.
package resource

import (
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// Budget tracks and optionally caps the number of bytes held by manual
// allocations. All methods are non-blocking and safe for concurrent use.
type Budget struct {
	limit int64
	sem   *semaphore.Weighted // nil if unlimited (tracking only)
	used  atomic.Int64
}

// NewBudget creates a budget with the given hard limit in bytes.
// A limit of 0 disables enforcement; usage is still tracked.
func NewBudget(limitBytes int64) *Budget {
	b := &Budget{limit: limitBytes}
	if limitBytes > 0 {
		b.sem = semaphore.NewWeighted(limitBytes)
	}
	return b
}

// TryAcquire attempts to reserve n bytes without blocking.
// Returns false if the reservation would exceed the limit.
func (b *Budget) TryAcquire(n int64) bool {
	if b == nil || n <= 0 {
		return true
	}
	if b.sem != nil && !b.sem.TryAcquire(n) {
		return false
	}
	b.used.Add(n)
	return true
}

// Release returns n previously acquired bytes to the budget.
func (b *Budget) Release(n int64) {
	if b == nil || n <= 0 {
		return
	}
	if b.sem != nil {
		b.sem.Release(n)
	}
	b.used.Add(-n)
}

// Used returns the bytes currently reserved.
func (b *Budget) Used() int64 {
	if b == nil {
		return 0
	}
	return b.used.Load()
}

// Limit returns the configured hard limit (0 = unlimited).
func (b *Budget) Limit() int64 {
	if b == nil {
		return 0
	}
	return b.limit
}
