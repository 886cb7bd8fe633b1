// WaitConfig is the declarative form of a WaitStrategy, loadable from YAML
// or JSON the way machine configurations are elsewhere in this org's repos.
// Validation ensures a known strategy name and sane pacing parameters.

package lazycellx

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Strategy names accepted by WaitConfig.
const (
	StrategySpin        = "spin"
	StrategyExponential = "exponential"
)

// WaitConfig describes a wait strategy declaratively. Durations use
// time.ParseDuration syntax ("1us", "1ms").
type WaitConfig struct {
	Strategy string `json:"strategy" yaml:"strategy"`
	Spins    int    `json:"spins,omitempty" yaml:"spins,omitempty"`
	Initial  string `json:"initial,omitempty" yaml:"initial,omitempty"`
	Max      string `json:"max,omitempty" yaml:"max,omitempty"`
}

// Validate validates the configuration:
// - Strategy is one of "spin", "exponential"
// - Spins is non-negative
// - For "exponential", Initial and Max parse, are positive, and Initial <= Max
func (c WaitConfig) Validate() error {
	if c.Strategy == "" {
		return errors.New("wait strategy is required")
	}
	if c.Spins < 0 {
		return fmt.Errorf("spins must be non-negative, got %d", c.Spins)
	}
	switch c.Strategy {
	case StrategySpin:
		return nil
	case StrategyExponential:
		initial, max, err := c.intervals()
		if err != nil {
			return err
		}
		if initial <= 0 {
			return fmt.Errorf("initial interval must be positive, got %s", initial)
		}
		if max < initial {
			return fmt.Errorf("max interval %s is shorter than initial %s", max, initial)
		}
		return nil
	default:
		return fmt.Errorf("unknown wait strategy %q", c.Strategy)
	}
}

// Build validates the configuration and constructs the strategy it names.
func (c WaitConfig) Build() (WaitStrategy, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	switch c.Strategy {
	case StrategySpin:
		return SpinYield{Spins: c.Spins}, nil
	default:
		initial, max, _ := c.intervals() // validated above
		return Exponential{Spins: c.Spins, Initial: initial, Max: max}, nil
	}
}

func (c WaitConfig) intervals() (initial, max time.Duration, err error) {
	initial, err = time.ParseDuration(c.Initial)
	if err != nil {
		return 0, 0, fmt.Errorf("initial interval %q: %w", c.Initial, err)
	}
	max, err = time.ParseDuration(c.Max)
	if err != nil {
		return 0, 0, fmt.Errorf("max interval %q: %w", c.Max, err)
	}
	return initial, max, nil
}

// LoadWaitConfig reads a WaitConfig from a YAML file.
func LoadWaitConfig(path string) (WaitConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return WaitConfig{}, fmt.Errorf("read %s: %w", path, err)
	}
	var c WaitConfig
	if err := yaml.Unmarshal(data, &c); err != nil {
		return WaitConfig{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return c, nil
}

// Save writes the WaitConfig to a YAML file.
func (c WaitConfig) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
