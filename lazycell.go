package lazycellx

import (
	"fmt"
	"sync/atomic"
)

// Cell states. Monotonic: empty -> pending -> ready, never backwards and
// never skipping pending under contention.
const (
	stateEmpty int32 = iota
	statePending
	stateReady
)

// Cell is a write-once container for a lazily-computed value of type T.
//
// The zero value is a valid empty cell using DefaultWaitStrategy. A Cell
// must not be copied after first use.
//
// The slot holds a valid T if and only if the state is ready. The goroutine
// that wins the empty -> pending compare-and-swap owns the slot exclusively
// until it publishes ready; from then on the slot is immutable and shared
// read-only. The atomic store of ready synchronizes-with every later load
// that observes it, so the slot write happens-before every reader's access.
type Cell[T any] struct {
	state atomic.Int32
	slot  T
	wait  WaitStrategy
}

// New creates an empty cell.
func New[T any](opts ...Option) *Cell[T] {
	var s settings
	for _, o := range opts {
		o(&s)
	}
	return &Cell[T]{wait: s.wait}
}

// NewInitialized creates a cell already holding v. No closure will ever run
// for it and Set on it always reports a lost race.
func NewInitialized[T any](v T, opts ...Option) *Cell[T] {
	c := New[T](opts...)
	c.slot = v
	c.state.Store(stateReady)
	return c
}

//
// Read accessors (never initialize, never spin)
//

// Get returns a pointer into the cell's storage, or (nil, false) if no value
// has been published yet. The pointee is shared and must be treated as
// read-only. A single atomic load; safe to call at any time, including while
// another goroutine's initialization is in flight.
func (c *Cell[T]) Get() (*T, bool) {
	if c.state.Load() != stateReady {
		return nil, false
	}
	return &c.slot, true
}

// Value is the owned counterpart of Get: it returns a copy of the stored
// value, leaving the cell intact.
func (c *Cell[T]) Value() (T, bool) {
	if c.state.Load() != stateReady {
		var zero T
		return zero, false
	}
	return c.slot, true
}

// IsInitialized reports whether a value has been published. Pure query;
// once true it stays true for the cell's lifetime.
func (c *Cell[T]) IsInitialized() bool {
	return c.state.Load() == stateReady
}

//
// Initializing accessors
//

// GetOrInit returns the cell's value, computing it with f if the cell is
// empty. When several goroutines race, exactly one runs its closure; every
// caller gets a pointer to the one published value. Losing goroutines poll
// under the cell's WaitStrategy until the winner publishes.
func (c *Cell[T]) GetOrInit(f func() T) *T {
	// Fast path: already published, no atomic writes.
	if c.state.Load() == stateReady {
		return &c.slot
	}
	return c.getOrInitSlow(f)
}

// GetOrInitValue is the owned counterpart of GetOrInit, returning a copy.
func (c *Cell[T]) GetOrInitValue(f func() T) T {
	return *c.GetOrInit(f)
}

func (c *Cell[T]) getOrInitSlow(f func() T) *T {
	if c.state.CompareAndSwap(stateEmpty, statePending) {
		// Claim won: this goroutine owns the slot until it publishes.
		c.slot = f()
		c.state.Store(stateReady)
		return &c.slot
	}
	// Claim lost: someone else is pending or already published.
	c.awaitReady()
	return &c.slot
}

// awaitReady polls the state until the publishing store is visible.
func (c *Cell[T]) awaitReady() {
	if c.state.Load() == stateReady {
		return
	}
	p := c.strategy().Pace()
	for c.state.Load() != stateReady {
		p.Wait()
	}
}

//
// Single-shot set
//

// Set publishes v if the cell is still empty. It reports false if
// initialization was already claimed by someone else; the caller keeps v
// either way. Set never waits: losing the race is an answer, not a reason
// to spin.
func (c *Cell[T]) Set(v T) bool {
	if !c.state.CompareAndSwap(stateEmpty, statePending) {
		return false
	}
	c.slot = v
	c.state.Store(stateReady)
	return true
}

// MustSet is Set for callers that treat a lost race as a bug.
func (c *Cell[T]) MustSet(v T) {
	if !c.Set(v) {
		panic("lazycellx: MustSet on an already claimed Cell")
	}
}

//
// Consuming accessor
//

// Take moves the stored value out of the cell, returning (zero, false) if
// nothing was published. The slot is reset to the zero T so the cell no
// longer retains references the value held.
//
// Take consumes the cell: the caller must hold the only reference, and the
// cell must not be used afterwards. Go cannot enforce the move, so this is
// a contract, not a compile-time guarantee.
func (c *Cell[T]) Take() (T, bool) {
	var zero T
	if c.state.Load() != stateReady {
		return zero, false
	}
	v := c.slot
	c.slot = zero
	return v, true
}

//
// Snapshot helpers
//

// Clone returns a new cell holding a copy of the current value, or an empty
// cell if this one is uninitialized. The clone shares the wait strategy but
// no storage.
func (c *Cell[T]) Clone() *Cell[T] {
	n := &Cell[T]{wait: c.wait}
	if v, ok := c.Value(); ok {
		n.slot = v
		n.state.Store(stateReady)
	}
	return n
}

// Equal reports whether both cells are initialized with eq-equal values, or
// both uninitialized. eq is supplied because T carries no comparable bound.
func (c *Cell[T]) Equal(other *Cell[T], eq func(a, b T) bool) bool {
	av, aok := c.Value()
	bv, bok := other.Value()
	if aok != bok {
		return false
	}
	if !aok {
		return true
	}
	return eq(av, bv)
}

// String renders the cell for debugging without disturbing it.
func (c *Cell[T]) String() string {
	switch c.state.Load() {
	case stateReady:
		return fmt.Sprintf("Cell(%v)", c.slot)
	case statePending:
		return "Cell(<pending>)"
	default:
		return "Cell(<empty>)"
	}
}

func (c *Cell[T]) strategy() WaitStrategy {
	if c.wait != nil {
		return c.wait
	}
	return DefaultWaitStrategy
}
