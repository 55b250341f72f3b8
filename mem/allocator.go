package mem

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// ErrOutOfMemory is returned when an allocator refuses a reservation.
var ErrOutOfMemory = errors.New("mem: out of memory")

// Allocator defines the allocation contract used by containers.
//
// Reserve accounts for size bytes before the caller allocates them and fails
// without side effects when the bytes cannot be granted. Release returns
// bytes obtained from an earlier successful Reserve.
type Allocator interface {
	Reserve(size int) error
	Release(size int)
}

// GoAllocator delegates to the Go runtime and never refuses a reservation.
type GoAllocator struct{}

func (GoAllocator) Reserve(int) error { return nil }

func (GoAllocator) Release(int) {}

// DefaultAllocator is the allocator used unless a container overrides it.
var DefaultAllocator Allocator = GoAllocator{}

// Budget is an allocator with a fixed byte limit.
type Budget struct {
	limit int64
	inUse atomic.Int64
}

// NewBudget creates an allocator that grants at most limit bytes at once.
// A non-positive limit refuses every non-empty reservation.
func NewBudget(limit int64) *Budget {
	return &Budget{limit: limit}
}

// Reserve grants size bytes if they fit in the remaining budget.
func (b *Budget) Reserve(size int) error {
	if size <= 0 {
		return nil
	}
	for {
		cur := b.inUse.Load()
		next := cur + int64(size)
		if next > b.limit {
			return fmt.Errorf("%w: %d bytes requested, %d of %d in use", ErrOutOfMemory, size, cur, b.limit)
		}
		if b.inUse.CompareAndSwap(cur, next) {
			return nil
		}
	}
}

// Release returns size bytes to the budget.
func (b *Budget) Release(size int) {
	if size <= 0 {
		return
	}
	b.inUse.Add(-int64(size))
}

// InUse reports the bytes currently reserved.
func (b *Budget) InUse() int64 {
	return b.inUse.Load()
}

// Limit reports the configured byte limit.
func (b *Budget) Limit() int64 {
	return b.limit
}
