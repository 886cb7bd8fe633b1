// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import (
	"sync"
	"time"

	"github.com/comalice/lazycellx"
)

// Strategies returns the wait strategies worth comparing under contention.
func Strategies() map[string]lazycellx.WaitStrategy {
	return map[string]lazycellx.WaitStrategy{
		"spin_16":       lazycellx.SpinYield{Spins: 16},
		"spin_1024":     lazycellx.SpinYield{Spins: 1024},
		"exp_1us_100us": lazycellx.Exponential{Spins: 16, Initial: time.Microsecond, Max: 100 * time.Microsecond},
		"exp_10us_1ms":  lazycellx.Exponential{Spins: 16, Initial: 10 * time.Microsecond, Max: time.Millisecond},
		"default":       lazycellx.DefaultWaitStrategy,
	}
}

// RaceInit races n goroutines over a fresh cell built with strategy s and
// returns once every goroutine has observed the published value.
func RaceInit(n int, s lazycellx.WaitStrategy, init func() int) {
	c := lazycellx.New[int](lazycellx.WithWaitStrategy(s))
	var wg sync.WaitGroup
	start := make(chan struct{})
	for g := 0; g < n; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			c.GetOrInit(init)
		}()
	}
	close(start)
	wg.Wait()
}
