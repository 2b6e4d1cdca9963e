package semx

// InterruptDisableSemaphore keeps the semaphore value itself and guards
// each update with a CriticalSection, the way a single-core port masks
// interrupts around it. A negative value -N means N waiters are parked on
// the kernel object; a post that finds waiters gives it one unit.
//
// The zero value is uninitialized; call Init or InitWith before use.
type InterruptDisableSemaphore struct {
	_     noCopy
	count int32
	cs    CriticalSection
	local TicketSection
	fastPath
}

// Init sets the initial value and uses a TicketSection.
func (s *InterruptDisableSemaphore) Init(value uint32) error {
	return s.InitWith(value, nil)
}

// InitWith sets the initial value and the critical section to update the
// count under. A nil cs selects the semaphore's own TicketSection.
func (s *InterruptDisableSemaphore) InitWith(value uint32, cs CriticalSection) error {
	if value > SemValueMax {
		return EINVAL
	}
	if cs == nil {
		cs = &s.local
	}
	s.cs = cs
	s.count = int32(value)
	s.init()
	return nil
}

// Instrument attaches optional probes. Either may be nil.
func (s *InterruptDisableSemaphore) Instrument(t *Tracer, b *BranchStats) {
	s.probe.set(t, b)
}

// Destroy releases the kernel object.
func (s *InterruptDisableSemaphore) Destroy() error {
	s.obj.Delete()
	return nil
}

// Post releases one unit, waking one parked waiter if there is any.
func (s *InterruptDisableSemaphore) Post() error {
	if s.probe.tracing(TracePost) {
		defer s.probe.tracer.Exit(TracePost, s.probe.tracer.Enter())
	}
	if !s.obj.Ready() {
		return EINVAL
	}
	mask := s.cs.Disable()
	old := s.count
	if old >= SemValueMax {
		s.cs.Restore(mask)
		return EOVERFLOW
	}
	s.count = old + 1
	s.cs.Restore(mask)

	if old >= 0 {
		s.probe.branch(branchPostFast)
		return nil
	}
	s.probe.branch(branchPostSlow)
	s.wake()
	return nil
}

// Wait blocks until a unit is available.
func (s *InterruptDisableSemaphore) Wait() error {
	return s.TimedWait(nil)
}

// TimedWait waits for a unit until the absolute deadline. A nil deadline
// waits forever.
func (s *InterruptDisableSemaphore) TimedWait(deadline *Timespec) error {
	d, derr := waitDelay(deadline)
	return s.wait(d, derr)
}

// TryWait takes a unit only if one is available now.
func (s *InterruptDisableSemaphore) TryWait() error {
	return tryResult(s.wait(0, nil))
}

func (s *InterruptDisableSemaphore) wait(delay Ticks, derr error) error {
	if s.probe.tracing(TraceWait) {
		defer s.probe.tracer.Exit(TraceWait, s.probe.tracer.Enter())
	}
	if !s.obj.Ready() {
		return EINVAL
	}
	mask := s.cs.Disable()
	old := s.count
	s.count = old - 1
	s.cs.Restore(mask)

	if old > 0 {
		s.probe.branch(branchWaitFast)
		return nil
	}
	s.probe.branch(branchWaitSlow)
	return waitResult(s.park(delay, s.withdraw), derr)
}

func (s *InterruptDisableSemaphore) withdraw() bool {
	mask := s.cs.Disable()
	defer s.cs.Restore(mask)
	if s.count < 0 {
		s.count++
		return true
	}
	return false
}

// Value returns the stored count; negative while waiters are parked.
func (s *InterruptDisableSemaphore) Value() int32 {
	if s.cs == nil {
		return 0
	}
	mask := s.cs.Disable()
	v := s.count
	s.cs.Restore(mask)
	return v
}
