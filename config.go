package qsim

import "math/rand/v2"

const (
	// DefaultSeed seeds the measurement source when no seed or source is configured.
	DefaultSeed uint64 = 0x5eed
	// DefaultEpsilon is the tolerance applied to probability and orthogonality checks.
	DefaultEpsilon = 1e-9
)

/*
Config holds the measurement settings. Source, when set, takes precedence
over Seed, which lets callers hand in a generator they already own.
*/
type Config struct {
	Seed    uint64
	Source  rand.Source
	Epsilon float64
}

func NewConfig() *Config {
	return &Config{
		Seed:    DefaultSeed,
		Epsilon: DefaultEpsilon,
	}
}

// Option is a function type for configuring a Measurer
type Option func(*Config)

// WithSeed seeds a PCG source with the given value.
func WithSeed(seed uint64) Option {
	return func(c *Config) {
		c.Seed = seed
		c.Source = nil
	}
}

// WithSource uses an external generator for every draw.
func WithSource(src rand.Source) Option {
	return func(c *Config) {
		c.Source = src
	}
}

// WithEpsilon sets the tolerance for probability checks.
func WithEpsilon(epsilon float64) Option {
	return func(c *Config) {
		c.Epsilon = epsilon
	}
}

func (c *Config) source() rand.Source {
	if c.Source != nil {
		return c.Source
	}
	return rand.NewPCG(c.Seed, c.Seed)
}
