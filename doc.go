// Package lazycellx provides a non-blocking synchronization primitive for
// lazily-initialized immutable values.
//
// A Cell holds a value that is computed at most once, the first time it is
// needed, and is then readable from any number of goroutines without locks.
// Contention during initialization is arbitrated by a compare-and-swap over a
// three-state discriminant; goroutines that lose the race poll for the
// published value under a pluggable WaitStrategy instead of parking on a
// mutex or condition variable.
//
// Core invariants:
// - The initializing closure runs at most once, on the goroutine that wins the claim
// - Exactly one goroutine ever writes the cell's storage
// - Once published, the stored value never changes for the cell's lifetime
//
// The primitive carries no rescue path for an abandoned claim: if the winning
// goroutine panics inside its closure before publishing, every waiter polls
// forever. Initializing closures must not fail.
package lazycellx
