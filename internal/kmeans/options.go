package kmeans

import (
	"math/rand"
	"runtime"
)

// Defaults used when the corresponding option is not supplied.
const (
	DefaultMaxInitAttempts = 1000
	DefaultInnerCycleCap   = 100
	DefaultThreshold       = 1000.0
	DefaultMaxIterations   = 1000
)

type config struct {
	rng             *rand.Rand
	maxInitAttempts int
	innerCycleCap   int
	threshold       float64
	maxIterations   int
	workers         int
	observer        Observer
}

func defaultConfig() config {
	return config{
		maxInitAttempts: DefaultMaxInitAttempts,
		innerCycleCap:   DefaultInnerCycleCap,
		threshold:       DefaultThreshold,
		maxIterations:   DefaultMaxIterations,
		workers:         runtime.GOMAXPROCS(0),
		observer:        NopObserver{},
	}
}

func (c *config) validate() error {
	if c.maxInitAttempts < 1 {
		return invalidf("max init attempts must be at least 1, got %d", c.maxInitAttempts)
	}
	if c.innerCycleCap < 1 {
		return invalidf("inner cycle cap must be at least 1, got %d", c.innerCycleCap)
	}
	if c.threshold < 0 {
		return invalidf("convergence threshold must not be negative, got %g", c.threshold)
	}
	if c.maxIterations < 1 {
		return invalidf("max iterations must be at least 1, got %d", c.maxIterations)
	}
	if c.workers < 1 {
		return invalidf("workers must be at least 1, got %d", c.workers)
	}
	return nil
}

// Option configures an Engine.
type Option func(*config)

// WithRand injects the random source used for seeding and re-seeding
// clusters. A nil value is ignored.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithSeed is shorthand for WithRand(rand.New(rand.NewSource(seed))).
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- clustering does not need crypto randomness
	}
}

// WithMaxInitAttempts bounds how many full palettes the initialiser samples
// while looking for one without duplicates.
func WithMaxInitAttempts(n int) Option {
	return func(c *config) { c.maxInitAttempts = n }
}

// WithInnerCycleCap bounds the reinitialise/assign/update cycles run per
// outer iteration while empty clusters remain.
func WithInnerCycleCap(n int) Option {
	return func(c *config) { c.innerCycleCap = n }
}

// WithThreshold sets the absolute WCSS delta below which the run has
// converged. The unit is squared channel distance summed over all pixels, so
// the same value is stricter on large images than on small ones.
func WithThreshold(t float64) Option {
	return func(c *config) { c.threshold = t }
}

// WithMaxIterations bounds the number of outer iterations.
func WithMaxIterations(n int) Option {
	return func(c *config) { c.maxIterations = n }
}

// WithWorkers sets how many row ranges are processed concurrently in the
// per-pixel passes. 1 runs them serially.
func WithWorkers(n int) Option {
	return func(c *config) { c.workers = n }
}

// WithObserver routes progress events to o. A nil value is ignored.
func WithObserver(o Observer) Option {
	return func(c *config) {
		if o != nil {
			c.observer = o
		}
	}
}
