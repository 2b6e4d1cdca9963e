package kernel

import (
	"math"
	"time"

	"github.com/llxisdsh/semx/internal/opt"
)

// Ticks is a relative delay in scheduler ticks.
type Ticks uint32

const (
	// TickRateHz is the scheduler tick frequency.
	TickRateHz = opt.TickRateHz_

	// NsPerTick is the length of one tick in nanoseconds.
	NsPerTick = int64(time.Second) / TickRateHz

	// TickPeriod is the length of one tick.
	TickPeriod = time.Duration(NsPerTick)

	// MaxDelay means "block until signaled". It is never a finite delay,
	// so conversions must produce strictly smaller values.
	MaxDelay Ticks = math.MaxUint32
)

// Duration converts a finite tick count to wall time.
// MaxDelay has no finite duration and yields math.MaxInt64.
func (t Ticks) Duration() time.Duration {
	if t == MaxDelay {
		return math.MaxInt64
	}
	return time.Duration(t) * TickPeriod
}
