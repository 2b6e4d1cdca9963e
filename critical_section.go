package semx

// IRQState is the token returned by CriticalSection.Disable: on a
// platform port typically the saved interrupt mask.
type IRQState uintptr

// CriticalSection is the mechanism InterruptDisableSemaphore uses to make
// its read-modify-write of the count atomic. A port masks interrupts in
// Disable and restores the saved mask in Restore; every Disable is paired
// with exactly one Restore on all return paths, and the section never
// spans a point where the caller may park.
type CriticalSection interface {
	Disable() IRQState
	Restore(IRQState)
}

// TicketSection is the portable CriticalSection. With goroutines spread
// over several cores there is no interrupt mask to take, so a ticket
// spin-lock serializes the section instead.
type TicketSection struct {
	lock TicketLock
}

// Disable enters the section.
func (c *TicketSection) Disable() IRQState {
	c.lock.Lock()
	return 0
}

// Restore leaves the section.
func (c *TicketSection) Restore(IRQState) {
	c.lock.Unlock()
}
