package kernel

import (
	"sync"
	"testing"
	"time"
)

func TestCountingGiveTake(t *testing.T) {
	var c Counting
	c.Init(3, 1)
	if !c.Take(0) {
		t.Fatal("Take(0) failed with one unit available")
	}
	if c.Take(0) {
		t.Fatal("Take(0) succeeded on empty object")
	}
	for i := range 3 {
		if !c.Give() {
			t.Fatalf("Give #%d failed below max", i)
		}
	}
	if c.Give() {
		t.Fatal("Give succeeded on full object")
	}
	if n := c.Count(); n != 3 {
		t.Fatalf("Count = %d, want 3", n)
	}
}

func TestCountingBlockUnblock(t *testing.T) {
	var c Counting
	c.Init(8, 0)

	done := make(chan struct{})
	go func() {
		c.Take(MaxDelay)
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("Take returned before Give")
	case <-time.After(50 * time.Millisecond):
		// OK
	}

	c.Give()
	select {
	case <-done:
		// OK
	case <-time.After(time.Second):
		t.Fatal("Take did not return after Give")
	}
}

func TestCountingTimeout(t *testing.T) {
	var c Counting
	c.Init(1, 0)

	start := time.Now()
	if c.Take(20) {
		t.Fatal("Take succeeded on empty object")
	}
	if elapsed, want := time.Since(start), Ticks(20).Duration(); elapsed < want {
		t.Fatalf("Take returned after %v, before its %v delay", elapsed, want)
	}
	if n := c.Count(); n != 0 {
		t.Fatalf("Count = %d after timeout, want 0", n)
	}
}

func TestCountingWakesOnePerGive(t *testing.T) {
	var c Counting
	c.Init(16, 0)

	const n = 10
	var wg sync.WaitGroup
	woke := make(chan struct{}, n)
	wg.Add(n)
	for range n {
		go func() {
			defer wg.Done()
			if c.Take(MaxDelay) {
				woke <- struct{}{}
			}
		}()
	}

	// Give them time to block
	time.Sleep(50 * time.Millisecond)

	for i := 1; i <= n; i++ {
		c.Give()
		select {
		case <-woke:
		case <-time.After(time.Second):
			t.Fatalf("give #%d woke nobody", i)
		}
		select {
		case <-woke:
			t.Fatalf("give #%d woke more than one taker", i)
		case <-time.After(5 * time.Millisecond):
		}
	}
	wg.Wait()
}

func TestTicksDuration(t *testing.T) {
	if d := Ticks(0).Duration(); d != 0 {
		t.Fatalf("Ticks(0) = %v", d)
	}
	if d := Ticks(1).Duration(); d != TickPeriod {
		t.Fatalf("Ticks(1) = %v, want %v", d, TickPeriod)
	}
	if d := MaxDelay.Duration(); d <= Ticks(MaxDelay-1).Duration() {
		t.Fatalf("MaxDelay duration %v is not beyond every finite delay", d)
	}
}
