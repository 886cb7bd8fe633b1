package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/comalice/lazycellx"
)

// Demo: build a wait strategy from a YAML config, then run a contended
// initialization under it and report how long the losers waited.
func main() {
	path := filepath.Join(os.TempDir(), "lazycellx-wait.yaml")
	seed := lazycellx.WaitConfig{
		Strategy: lazycellx.StrategyExponential,
		Spins:    32,
		Initial:  "5us",
		Max:      "500us",
	}
	if err := seed.Save(path); err != nil {
		panic(err)
	}

	config, err := lazycellx.LoadWaitConfig(path)
	if err != nil {
		panic(err)
	}
	strategy, err := config.Build()
	if err != nil {
		panic(err)
	}
	fmt.Printf("wait config: %+v\n", config)

	cell := lazycellx.New[string](lazycellx.WithWaitStrategy(strategy))

	const goroutines = 8
	var wg sync.WaitGroup
	start := make(chan struct{})

	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			<-start
			began := time.Now()
			v := cell.GetOrInitValue(func() string {
				time.Sleep(2 * time.Millisecond) // pretend this is expensive
				return "computed once"
			})
			fmt.Printf("goroutine %d: %q after %s\n", g, v, time.Since(began).Round(time.Microsecond))
		}(g)
	}

	close(start)
	wg.Wait()
}
