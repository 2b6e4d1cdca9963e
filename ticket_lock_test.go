package semx

import (
	"sync"
	"testing"
)

func TestTicketLock(t *testing.T) {
	var mu TicketLock
	var wg sync.WaitGroup
	var counter int
	const n = 100
	const loops = 1000
	wg.Add(n)
	for range n {
		go func() {
			defer wg.Done()
			for range loops {
				mu.Lock()
				counter++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	if counter != n*loops {
		t.Fatalf("counter = %d, want %d", counter, n*loops)
	}
}
