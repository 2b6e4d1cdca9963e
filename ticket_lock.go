package semx

import (
	"sync/atomic"
)

// TicketLock is a fair, FIFO spin-lock. It backs TicketSection, the
// portable stand-in for masking interrupts around the few instructions
// of a count update.
//
// Implementation:
// It uses the classic "ticket" algorithm.
//   - Lock(): Takes a ticket number. Spins/Sleeps until `serving` == `my_ticket`.
//   - Unlock(): Increments `serving`, allowing the next ticket holder to proceed.
//
// Only suitable for very small critical sections: a holder that gets
// descheduled stalls every ticket behind it.
type TicketLock struct {
	_       noCopy
	next    atomic.Uint32
	serving atomic.Uint32
}

// Lock acquires the lock. Blocks until the lock is available.
func (m *TicketLock) Lock() {
	my := m.next.Add(1) - 1
	if m.serving.Load() == my {
		return
	}
	var spins int
	for m.serving.Load() != my {
		delay(&spins)
	}
}

// Unlock releases the lock.
func (m *TicketLock) Unlock() {
	m.serving.Add(1)
}
