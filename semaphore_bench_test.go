package semx

import (
	"testing"
)

func BenchmarkSemaphore_Uncontended(b *testing.B) {
	for _, st := range strategies {
		b.Run(st.name, func(b *testing.B) {
			s := st.new()
			_ = s.Init(1)
			defer s.Destroy()
			b.ReportAllocs()
			for b.Loop() {
				_ = s.Wait()
				_ = s.Post()
			}
		})
	}
}

func BenchmarkSemaphore_Contended(b *testing.B) {
	for _, st := range strategies {
		b.Run(st.name, func(b *testing.B) {
			s := st.new()
			_ = s.Init(4)
			defer s.Destroy()
			b.RunParallel(func(pb *testing.PB) {
				for pb.Next() {
					_ = s.Wait()
					_ = s.Post()
				}
			})
		})
	}
}

func BenchmarkSemaphore_TryWait(b *testing.B) {
	for _, st := range strategies {
		b.Run(st.name, func(b *testing.B) {
			s := st.new()
			_ = s.Init(0)
			defer s.Destroy()
			for b.Loop() {
				_ = s.TryWait()
			}
		})
	}
}

func BenchmarkDeltaTicks(b *testing.B) {
	now := Now()
	deadline := now.Add(1500 * TickPeriod)
	for b.Loop() {
		_, _ = DeltaTicks(deadline, now)
	}
}
