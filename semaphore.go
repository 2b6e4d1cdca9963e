// Package semx implements POSIX-style counting semaphores on top of a
// scheduler counting object, with three interchangeable strategies:
//
//   - ClassicSemaphore delegates the count to the kernel object.
//   - InterruptDisableSemaphore keeps a signed count updated inside a
//     CriticalSection and only touches the kernel object to park or wake.
//   - AtomicSemaphore does the same with lock-free atomic operations.
//
// The strategy behind Semaphore and the SemXxx functions is chosen at
// build time: -tags=semx_classic, -tags=semx_irq, or the atomic default.
package semx

import (
	"math"

	"github.com/llxisdsh/semx/internal/kernel"
)

// SemValueMax is the largest value a semaphore can hold.
const SemValueMax = 0x7FFF

// Strategy is the method set shared by the three semaphore strategies.
// Code paths that care about speed use the concrete types; the interface
// exists for tests and tools that drive all of them.
type Strategy interface {
	Init(value uint32) error
	Destroy() error
	Post() error
	Wait() error
	TryWait() error
	TimedWait(deadline *Timespec) error
	Value() int32
	Instrument(t *Tracer, b *BranchStats)
}

var (
	_ Strategy = (*ClassicSemaphore)(nil)
	_ Strategy = (*InterruptDisableSemaphore)(nil)
	_ Strategy = (*AtomicSemaphore)(nil)
)

// fastPath is the park/wake half shared by the two strategies that keep
// their own signed count. The count is adjusted first; the kernel object
// is touched afterwards and never while the count is held.
type fastPath struct {
	obj   kernel.Counting
	probe probes
}

func (f *fastPath) init() {
	// The kernel object only carries wake-ups, at most one per parked
	// waiter, so its bound is the waiter count's, not SemValueMax.
	f.obj.Init(math.MaxInt32, 0)
}

// park blocks a caller whose decrement took the count below zero.
// withdraw undoes that decrement if no post has claimed it yet.
func (f *fastPath) park(delay Ticks, withdraw func() bool) bool {
	if f.obj.Take(delay) {
		return true
	}
	return f.settle(withdraw)
}

// settle resolves a park that gave up. Either the caller is still counted
// as an unserved waiter, in which case withdrawing it restores the count,
// or a post has already counted a wake-up for it and the unit is given to
// the kernel object momentarily; the caller then takes it and succeeds.
func (f *fastPath) settle(withdraw func() bool) bool {
	var spins int
	for {
		if f.obj.Take(0) {
			return true
		}
		if withdraw() {
			return false
		}
		delay(&spins)
	}
}

// wake hands one unit to a parked waiter.
func (f *fastPath) wake() {
	f.obj.Give()
}

// waitResult maps a failed probe or park to the caller's error.
func waitResult(ok bool, derr error) error {
	switch {
	case ok:
		return nil
	case derr != nil:
		return derr
	default:
		return ETIMEDOUT
	}
}

// tryResult renames the timeout of a zero-delay probe.
func tryResult(err error) error {
	if err == ETIMEDOUT {
		return EAGAIN
	}
	return err
}
