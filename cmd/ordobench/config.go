package main

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/arloliu/ordo/errs"
)

// Config defines a benchmark suite: which workloads to measure, the
// input sizes to sweep, and how the measurements are analyzed.
type Config struct {
	// Workloads lists the workload names to run, in registry order.
	// An empty list runs every registered workload.
	Workloads []string `toml:"workloads"`

	// Sizes is the input-size sweep, smallest first. Workloads with a
	// pinned sweep (see the registry) ignore it.
	Sizes []int `toml:"sizes"`

	// Runs is the number of timed repetitions per size.
	Runs int `toml:"runs"`

	// TargetSize is the input size performance predictions extrapolate
	// to. Zero disables prediction.
	TargetSize int `toml:"target_size"`

	// Seed feeds the input generator. A fixed seed reproduces the
	// exact inputs across invocations.
	Seed int64 `toml:"seed"`
}

// Default returns the suite configuration used when no config file is
// given: the full workload registry over a doubling size sweep.
func Default() *Config {
	return &Config{
		Sizes:      []int{100, 200, 400, 800},
		Runs:       5,
		TargetSize: 10000,
		Seed:       42,
	}
}

// Load reads a TOML suite definition from path. Fields absent from the
// file keep their Default values, so a config file only needs to name
// what it changes.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the configuration against basic bounds and the
// workload registry. All violations wrap errs.ErrInvalidConfig.
func (c *Config) Validate() error {
	if len(c.Sizes) == 0 {
		return fmt.Errorf("%w: no input sizes", errs.ErrInvalidConfig)
	}
	for _, size := range c.Sizes {
		if size < 1 {
			return fmt.Errorf("%w: input size %d must be positive", errs.ErrInvalidConfig, size)
		}
	}
	if c.Runs < 1 {
		return fmt.Errorf("%w: runs %d must be positive", errs.ErrInvalidConfig, c.Runs)
	}
	if c.TargetSize < 0 {
		return fmt.Errorf("%w: target size %d must not be negative", errs.ErrInvalidConfig, c.TargetSize)
	}
	for _, name := range c.Workloads {
		if _, ok := workloadByName(name); !ok {
			return fmt.Errorf("%w: unknown workload %q", errs.ErrInvalidConfig, name)
		}
	}

	return nil
}
