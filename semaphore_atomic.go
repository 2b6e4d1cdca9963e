package semx

import "github.com/llxisdsh/semx/internal/opt"

// AtomicSemaphore is the lock-free strategy: a Dijkstra semaphore whose
// signed count is changed only with atomic instructions.
//
//	count > 0: available units
//	count < 0: number of waiters parked on the kernel object
//
// No ordering is promised among parked waiters; each post wakes at most one.
//
// The zero value is uninitialized; call Init before use.
type AtomicSemaphore struct {
	_     noCopy
	count opt.Count_
	fastPath
}

// Init sets the initial value.
func (s *AtomicSemaphore) Init(value uint32) error {
	if value > SemValueMax {
		return EINVAL
	}
	s.count.Store(int32(value))
	s.init()
	return nil
}

// Instrument attaches optional probes. Either may be nil.
func (s *AtomicSemaphore) Instrument(t *Tracer, b *BranchStats) {
	s.probe.set(t, b)
}

// Destroy releases the kernel object.
func (s *AtomicSemaphore) Destroy() error {
	s.obj.Delete()
	return nil
}

// Post releases one unit, waking one parked waiter if there is any.
func (s *AtomicSemaphore) Post() error {
	if s.probe.tracing(TracePost) {
		defer s.probe.tracer.Exit(TracePost, s.probe.tracer.Enter())
	}
	if !s.obj.Ready() {
		return EINVAL
	}
	var old int32
	for {
		old = s.count.Load()
		if old >= SemValueMax {
			return EOVERFLOW
		}
		if s.count.CompareAndSwap(old, old+1) {
			break
		}
	}

	// A negative value before the increment means a waiter is parked.
	if old >= 0 {
		s.probe.branch(branchPostFast)
		return nil
	}
	s.probe.branch(branchPostSlow)
	s.wake()
	return nil
}

// Wait blocks until a unit is available.
func (s *AtomicSemaphore) Wait() error {
	return s.TimedWait(nil)
}

// TimedWait waits for a unit until the absolute deadline. A nil deadline
// waits forever.
func (s *AtomicSemaphore) TimedWait(deadline *Timespec) error {
	d, derr := waitDelay(deadline)
	return s.wait(d, derr)
}

// TryWait takes a unit only if one is available now.
func (s *AtomicSemaphore) TryWait() error {
	return tryResult(s.wait(0, nil))
}

func (s *AtomicSemaphore) wait(delay Ticks, derr error) error {
	if s.probe.tracing(TraceWait) {
		defer s.probe.tracer.Exit(TraceWait, s.probe.tracer.Enter())
	}
	if !s.obj.Ready() {
		return EINVAL
	}
	if s.count.Add(-1) >= 0 {
		s.probe.branch(branchWaitFast)
		return nil
	}
	s.probe.branch(branchWaitSlow)
	return waitResult(s.park(delay, s.withdraw), derr)
}

func (s *AtomicSemaphore) withdraw() bool {
	for {
		c := s.count.Load()
		if c >= 0 {
			return false
		}
		if s.count.CompareAndSwap(c, c+1) {
			return true
		}
	}
}

// Value returns the stored count; negative while waiters are parked.
func (s *AtomicSemaphore) Value() int32 {
	return s.count.Load()
}
