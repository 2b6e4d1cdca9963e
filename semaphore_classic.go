package semx

import "github.com/llxisdsh/semx/internal/kernel"

// ClassicSemaphore hands every operation to the kernel counting object,
// whose own count is the semaphore value. Its value never goes negative
// and waiters are woken in the kernel object's FIFO order.
//
// The zero value is uninitialized; call Init before use.
type ClassicSemaphore struct {
	_     noCopy
	obj   kernel.Counting
	probe probes
}

// Init sets the initial value.
func (s *ClassicSemaphore) Init(value uint32) error {
	if value > SemValueMax {
		return EINVAL
	}
	s.obj.Init(SemValueMax, value)
	return nil
}

// Instrument attaches optional probes. Either may be nil.
func (s *ClassicSemaphore) Instrument(t *Tracer, b *BranchStats) {
	s.probe.set(t, b)
}

// Destroy releases the kernel object.
func (s *ClassicSemaphore) Destroy() error {
	s.obj.Delete()
	return nil
}

// Post releases one unit, waking at most one waiter.
func (s *ClassicSemaphore) Post() error {
	if s.probe.tracing(TracePost) {
		defer s.probe.tracer.Exit(TracePost, s.probe.tracer.Enter())
	}
	if !s.obj.Ready() {
		return EINVAL
	}
	if !s.obj.Give() {
		return EOVERFLOW
	}
	return nil
}

// Wait blocks until a unit is available.
func (s *ClassicSemaphore) Wait() error {
	return s.TimedWait(nil)
}

// TimedWait waits for a unit until the absolute deadline. A nil deadline
// waits forever.
func (s *ClassicSemaphore) TimedWait(deadline *Timespec) error {
	d, derr := waitDelay(deadline)
	return s.wait(d, derr)
}

// TryWait takes a unit only if one is available now.
func (s *ClassicSemaphore) TryWait() error {
	return tryResult(s.wait(0, nil))
}

func (s *ClassicSemaphore) wait(delay Ticks, derr error) error {
	if s.probe.tracing(TraceWait) {
		defer s.probe.tracer.Exit(TraceWait, s.probe.tracer.Enter())
	}
	if !s.obj.Ready() {
		return EINVAL
	}
	return waitResult(s.obj.Take(delay), derr)
}

// Value returns the number of available units.
func (s *ClassicSemaphore) Value() int32 {
	return s.obj.Count()
}
