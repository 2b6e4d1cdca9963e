package semx

import (
	"math"
	"time"

	"github.com/llxisdsh/semx/internal/kernel"
)

// Ticks is a relative delay in scheduler ticks.
type Ticks = kernel.Ticks

const (
	// MaxDelay is the tick value meaning "wait until signaled".
	MaxDelay = kernel.MaxDelay

	// TickPeriod is the length of one scheduler tick.
	TickPeriod = kernel.TickPeriod

	nsPerSec = int64(time.Second)
)

// Timespec is an absolute point in time as seconds and nanoseconds since
// the Unix epoch.
type Timespec struct {
	Sec  int64
	Nsec int64
}

// Now returns the current wall-clock time, the clock deadlines are
// measured against.
func Now() Timespec {
	return TimespecFromTime(time.Now())
}

// TimespecFromTime converts t to a Timespec.
func TimespecFromTime(t time.Time) Timespec {
	return Timespec{Sec: t.Unix(), Nsec: int64(t.Nanosecond())}
}

// Time converts ts to a time.Time.
func (ts Timespec) Time() time.Time {
	return time.Unix(ts.Sec, ts.Nsec)
}

// Add returns ts+d, normalized.
func (ts Timespec) Add(d time.Duration) Timespec {
	sec := ts.Sec + int64(d/time.Second)
	nsec := ts.Nsec + int64(d%time.Second)
	if nsec >= nsPerSec {
		sec++
		nsec -= nsPerSec
	} else if nsec < 0 {
		sec--
		nsec += nsPerSec
	}
	return Timespec{Sec: sec, Nsec: nsec}
}

// Valid reports whether the nanosecond field is in [0, 1e9).
func (ts Timespec) Valid() bool {
	return ts.Nsec >= 0 && ts.Nsec < nsPerSec
}

// Nanoseconds returns ts as a single signed nanosecond count.
// It fails with EINVAL for a malformed value and EOVERFLOW when the
// total does not fit in 64 bits.
func (ts Timespec) Nanoseconds() (int64, error) {
	if !ts.Valid() {
		return 0, EINVAL
	}
	if ts.Sec > math.MaxInt64/nsPerSec || ts.Sec < math.MinInt64/nsPerSec {
		return 0, EOVERFLOW
	}
	ns := ts.Sec * nsPerSec
	if ns > math.MaxInt64-ts.Nsec {
		return 0, EOVERFLOW
	}
	return ns + ts.Nsec, nil
}

// DeltaTicks converts the absolute deadline into a delay relative to now,
// in scheduler ticks. A partial tick counts as a whole one, so the
// deadline is never reached early.
//
// Errors: EINVAL when either value is malformed, ETIMEDOUT when the
// deadline is already past, EOVERFLOW when the arithmetic or the tick
// count leaves the representable range. A deadline equal to now is
// zero ticks, not an error.
func DeltaTicks(deadline, now Timespec) (Ticks, error) {
	return deltaTicks(deadline, now, kernel.NsPerTick)
}

func deltaTicks(deadline, now Timespec, nsPerTick int64) (Ticks, error) {
	d, err := deadline.Nanoseconds()
	if err != nil {
		return 0, err
	}
	n, err := now.Nanoseconds()
	if err != nil {
		return 0, err
	}
	if (n > 0 && d < math.MinInt64+n) || (n < 0 && d > math.MaxInt64+n) {
		return 0, EOVERFLOW
	}
	diff := d - n
	if diff < 0 {
		return 0, ETIMEDOUT
	}
	ticks := diff / nsPerTick
	if diff%nsPerTick != 0 {
		ticks++
	}
	if ticks >= int64(MaxDelay) {
		return 0, EOVERFLOW
	}
	return Ticks(ticks), nil
}

// waitDelay computes the delay for a timed wait. A nil deadline blocks
// indefinitely. Past, malformed or unrepresentable deadlines become a
// non-blocking probe; for the latter two the returned error is what the
// wait reports if the probe fails.
func waitDelay(deadline *Timespec) (Ticks, error) {
	if deadline == nil {
		return MaxDelay, nil
	}
	ticks, err := DeltaTicks(*deadline, Now())
	switch err {
	case nil:
		return ticks, nil
	case ETIMEDOUT:
		return 0, nil
	default:
		return 0, publicErr(err)
	}
}
