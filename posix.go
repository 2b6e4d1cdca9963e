package semx

// SemInit initializes sem with value. pshared is accepted for source
// compatibility and ignored: there is a single address space.
func SemInit(sem *Semaphore, pshared int, value uint32) error {
	if sem == nil {
		return EINVAL
	}
	return sem.Init(value)
}

// SemDestroy releases sem. Destroying a semaphore that has blocked
// waiters is undefined.
func SemDestroy(sem *Semaphore) error {
	if sem == nil {
		return EINVAL
	}
	return sem.Destroy()
}

// SemPost unlocks sem.
func SemPost(sem *Semaphore) error {
	if sem == nil {
		return EINVAL
	}
	return sem.Post()
}

// SemWait locks sem, blocking until it can.
func SemWait(sem *Semaphore) error {
	if sem == nil {
		return EINVAL
	}
	return sem.Wait()
}

// SemTryWait locks sem only if that does not block; otherwise EAGAIN.
func SemTryWait(sem *Semaphore) error {
	if sem == nil {
		return EINVAL
	}
	return sem.TryWait()
}

// SemTimedWait locks sem, blocking no later than abstime. On expiry it
// returns ETIMEDOUT. A past abstime still takes an available unit; a
// malformed one (Nsec outside [0, 1e9)) does too and otherwise fails
// with EINVAL.
func SemTimedWait(sem *Semaphore, abstime *Timespec) error {
	if sem == nil || abstime == nil {
		return EINVAL
	}
	return sem.TimedWait(abstime)
}

// SemGetValue stores the value of sem in sval.
func SemGetValue(sem *Semaphore, sval *int32) error {
	if sem == nil || sval == nil {
		return EINVAL
	}
	*sval = sem.Value()
	return nil
}
