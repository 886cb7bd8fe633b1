package lazycellx

import (
	"testing"
	"time"
)

func TestSpinYieldPace(t *testing.T) {
	s := SpinYield{Spins: 4}
	p1 := s.Pace()
	p2 := s.Pace()
	if p1 == p2 {
		t.Fatal("Pace returned a shared pacer")
	}
	// A spin pacer never sleeps; a large number of waits stays cheap.
	start := time.Now()
	for i := 0; i < 10000; i++ {
		p1.Wait()
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("10000 spin waits took %s", elapsed)
	}
}

func TestExponentialPaceSleeps(t *testing.T) {
	s := Exponential{Spins: 0, Initial: 2 * time.Millisecond, Max: 4 * time.Millisecond}
	p := s.Pace()

	start := time.Now()
	p.Wait()
	elapsed := time.Since(start)
	// Randomization can shorten the first interval to half of Initial (1ms);
	// allow further slack for timer jitter.
	if elapsed < 500*time.Microsecond {
		t.Errorf("first wait slept %s, want on the order of 1ms", elapsed)
	}
}

func TestExponentialSpinPhase(t *testing.T) {
	s := Exponential{Spins: 8, Initial: time.Hour, Max: time.Hour}
	p := s.Pace()
	// The first 2*Spins waits must not reach the sleep schedule.
	start := time.Now()
	for i := 0; i < 16; i++ {
		p.Wait()
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("spin/yield phase took %s, schedule leaked into it", elapsed)
	}
}

func TestDefaultWaitStrategy(t *testing.T) {
	if DefaultWaitStrategy == nil {
		t.Fatal("no default wait strategy")
	}
	if DefaultWaitStrategy.Pace() == nil {
		t.Fatal("default strategy produced a nil pacer")
	}
}
