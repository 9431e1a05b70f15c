package generator

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/lab/grid"
)

// ErrStartOutOfBounds indicates a WithStart cell outside the requested grid.
var ErrStartOutOfBounds = errors.New("generator: start cell outside the grid")

// CarveFunc observes one carved passage: from is the cell being expanded,
// to the newly entered neighbor, d the direction from → to.
type CarveFunc func(from, to grid.Point, d grid.Direction)

// Option customizes Generate.
// Option constructors panic on meaningless inputs; Generate itself never panics.
type Option func(*genConfig)

type genConfig struct {
	rng     *rand.Rand
	start   *grid.Point
	onCarve CarveFunc
}

func newConfig(opts ...Option) genConfig {
	var cfg genConfig
	for _, fn := range opts {
		fn(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(0)
	}
	return cfg
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand provides an explicit RNG. Panics on nil.
// The RNG is consumed by Generate and must not be shared across goroutines.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generator: WithRand(nil)")
	}
	return func(c *genConfig) {
		c.rng = r
	}
}

// WithStart pins the cell carving begins from. No RNG draws are spent on
// picking a start when this option is set.
func WithStart(p grid.Point) Option {
	return func(c *genConfig) {
		c.start = &p
	}
}

// WithOnCarve installs fn as a hook called after each passage is opened. Panics on nil.
func WithOnCarve(fn CarveFunc) Option {
	if fn == nil {
		panic("generator: WithOnCarve(nil)")
	}
	return func(c *genConfig) {
		c.onCarve = fn
	}
}
