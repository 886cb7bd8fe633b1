// Options for configuring Cell instances.
package lazycellx

// Option configures a Cell at construction time.
type Option func(*settings)

type settings struct {
	wait WaitStrategy
}

// WithWaitStrategy configures how goroutines that lose the claim race poll
// for the published value. Cells built without it use DefaultWaitStrategy.
func WithWaitStrategy(s WaitStrategy) Option {
	return func(cfg *settings) {
		cfg.wait = s
	}
}
