package lazycellx

import (
	"runtime"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// WaitStrategy decides how a goroutine that lost the claim race paces its
// polling of the cell's state. A strategy is a factory: each waiting
// goroutine calls Pace once and drives its own Pacer.
type WaitStrategy interface {
	Pace() Pacer
}

// Pacer spaces out consecutive polls of a contended cell. A Pacer belongs
// to a single waiting goroutine and is not safe for concurrent use.
type Pacer interface {
	Wait()
}

// DefaultWaitStrategy paces waiters on cells that were not given an explicit
// strategy: a short spin, a yield phase, then capped exponential sleeps.
var DefaultWaitStrategy WaitStrategy = Exponential{
	Spins:   64,
	Initial: time.Microsecond,
	Max:     time.Millisecond,
}

// SpinYield busy-polls Spins times, then calls runtime.Gosched between every
// poll. Lowest wakeup latency, burns a CPU while waiting.
type SpinYield struct {
	Spins int
}

func (s SpinYield) Pace() Pacer { return &spinPacer{spins: s.Spins} }

type spinPacer struct {
	spins int
	n     int
}

func (p *spinPacer) Wait() {
	if p.n < p.spins {
		p.n++
		return
	}
	runtime.Gosched()
}

// Exponential busy-polls Spins times, yields for another Spins polls, then
// sleeps on an exponential schedule from Initial capped at Max. The total
// wait stays unbounded; only the polling gets cheaper. Liveness depends on
// the claiming goroutine publishing, as with every strategy.
type Exponential struct {
	Spins   int
	Initial time.Duration
	Max     time.Duration
}

func (e Exponential) Pace() Pacer {
	b := &backoff.ExponentialBackOff{
		InitialInterval:     e.Initial,
		RandomizationFactor: backoff.DefaultRandomizationFactor,
		Multiplier:          backoff.DefaultMultiplier,
		MaxInterval:         e.Max,
		MaxElapsedTime:      0, // the schedule never gives up on its own
		Stop:                backoff.Stop,
		Clock:               backoff.SystemClock,
	}
	b.Reset()
	return &sleepPacer{spins: e.Spins, schedule: b}
}

type sleepPacer struct {
	spins    int
	n        int
	schedule *backoff.ExponentialBackOff
}

func (p *sleepPacer) Wait() {
	switch {
	case p.n < p.spins:
		p.n++
	case p.n < 2*p.spins:
		p.n++
		runtime.Gosched()
	default:
		d := p.schedule.NextBackOff()
		if d == backoff.Stop {
			d = p.schedule.MaxInterval
		}
		time.Sleep(d)
	}
}
