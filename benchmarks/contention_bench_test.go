package benchmarks

import (
	"testing"
	"time"
)

// BenchmarkContendedInit compares wait strategies when many goroutines race
// a single initialization whose closure is effectively free.
func BenchmarkContendedInit(b *testing.B) {
	for name, s := range Strategies() {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				RaceInit(16, s, func() int { return i })
			}
		})
	}
}

// BenchmarkContendedSlowInit compares wait strategies when the winning
// closure takes long enough to push losers into their sleep schedules.
func BenchmarkContendedSlowInit(b *testing.B) {
	for name, s := range Strategies() {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				RaceInit(16, s, func() int {
					time.Sleep(100 * time.Microsecond)
					return i
				})
			}
		})
	}
}
