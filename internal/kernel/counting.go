// Package kernel provides the scheduler-side counting object the semaphore
// strategies park on. Goroutines stand in for RTOS tasks.
package kernel

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// Counting is a counting object with create, give, take-with-timeout and
// delete operations, bounded by a maximum count.
//
// Available units are the free weight of an x/sync Weighted of size max;
// count mirrors them for Count and for the bound check in Give. count is
// raised before a unit is released and lowered after one is acquired, so
// it never under-reports the units held by w.
type Counting struct {
	w     *semaphore.Weighted
	count atomic.Int32
	max   int32
}

// Init creates the object with max capacity and initial available units.
// initial must not exceed max.
func (c *Counting) Init(max, initial uint32) {
	w := semaphore.NewWeighted(int64(max))
	// Fresh and uncontended, cannot fail.
	w.TryAcquire(int64(max - initial))
	c.max = int32(max)
	c.count.Store(int32(initial))
	c.w = w
}

// Ready reports whether the object has been created and not deleted.
func (c *Counting) Ready() bool {
	return c.w != nil
}

// Give makes one unit available, waking at most one taker.
// It never blocks. It reports false when the object is already full.
func (c *Counting) Give() bool {
	for {
		n := c.count.Load()
		if n >= c.max {
			return false
		}
		if c.count.CompareAndSwap(n, n+1) {
			break
		}
	}
	c.w.Release(1)
	return true
}

// Take acquires one unit, waiting at most ticks. A zero delay is a
// non-blocking probe and MaxDelay waits until a unit is given.
func (c *Counting) Take(ticks Ticks) bool {
	switch ticks {
	case 0:
		if !c.w.TryAcquire(1) {
			return false
		}
	case MaxDelay:
		if c.w.Acquire(context.Background(), 1) != nil {
			return false
		}
	default:
		ctx, cancel := context.WithTimeout(context.Background(), ticks.Duration())
		err := c.w.Acquire(ctx, 1)
		cancel()
		if err != nil {
			return false
		}
	}
	c.count.Add(-1)
	return true
}

// Count returns the number of available units.
func (c *Counting) Count() int32 {
	return c.count.Load()
}

// Delete releases the object. Blocked takers are not woken; deleting an
// object that still has waiters is the caller's error.
func (c *Counting) Delete() {
	c.w = nil
	c.count.Store(0)
}
