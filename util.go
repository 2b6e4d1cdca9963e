package semx

import (
	"time"
	_ "unsafe" // for linkname
)

// noCopy marks structs that go vet's -copylocks check must flag when
// copied. It must not be embedded.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// delay backs off a goroutine waiting on a spin condition. It spins
// while the runtime allows it, then sleeps 500µs and starts over.
func delay(spins *int) {
	if runtime_canSpin(*spins) {
		*spins++
		runtime_doSpin()
		return
	}
	*spins = 0
	time.Sleep(500 * time.Microsecond)
}

//go:linkname runtime_canSpin sync.runtime_canSpin
func runtime_canSpin(i int) bool

//go:linkname runtime_doSpin sync.runtime_doSpin
func runtime_doSpin()
