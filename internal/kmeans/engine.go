package kmeans

import (
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/jmylchreest/kpalette/internal/colour"
)

// State is the phase an Engine is in.
type State int

const (
	StateInitializing State = iota
	StateAssigning
	StateUpdating
	StateReinitializing
	StateScoring
	StateConverged
	// StateStopped is terminal like StateConverged but reached through the
	// outer iteration cap.
	StateStopped
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateAssigning:
		return "assigning"
	case StateUpdating:
		return "updating"
	case StateReinitializing:
		return "reinitializing"
	case StateScoring:
		return "scoring"
	case StateConverged:
		return "converged"
	case StateStopped:
		return "stopped"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Engine clusters the colours of one image into k palette entries.
// An Engine is not safe for concurrent use.
type Engine struct {
	img    Grid
	width  int
	height int
	k      int
	cfg    config
	rng    *rand.Rand

	palette    []colour.Packed
	assignment *Assignment
	used       []bool
	counts     []int64
	unused     []int
	history    []float64
	warnings   []error

	ranges        []rowRange
	partials      [][]clusterSum
	partialScores []int64

	state      State
	iterations int
	ran        bool
}

// New validates its arguments, allocates the engine state and samples the
// initial palette. It returns an error wrapping ErrInvalidConfiguration
// before touching any state when k < 1, the image is nil or empty, or an
// option value is out of range.
func New(img Grid, k int, opts ...Option) (*Engine, error) {
	if k < 1 {
		return nil, invalidf("k must be at least 1, got %d", k)
	}
	if img == nil {
		return nil, invalidf("image cannot be nil")
	}
	width, height := img.Width(), img.Height()
	if width <= 0 || height <= 0 {
		return nil, invalidf("image must not be empty, got %dx%d", width, height)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano())) // #nosec G404 -- clustering does not need crypto randomness
	}

	ranges := splitRows(height, cfg.workers)
	partials := make([][]clusterSum, len(ranges))
	for i := range partials {
		partials[i] = make([]clusterSum, k)
	}

	e := &Engine{
		img:           img,
		width:         width,
		height:        height,
		k:             k,
		cfg:           cfg,
		rng:           cfg.rng,
		palette:       make([]colour.Packed, k),
		assignment:    newAssignment(width, height),
		used:          make([]bool, k),
		counts:        make([]int64, k),
		unused:        make([]int, 0, k),
		ranges:        ranges,
		partials:      partials,
		partialScores: make([]int64, len(ranges)),
	}
	e.initialisePalette()
	return e, nil
}

// Run iterates until the quality score converges or the outer iteration cap
// is reached. Each outer iteration repeats reinitialise, assign and update
// until no cluster is empty or the inner cycle cap is hit, then scores the
// result. Degenerate conditions are recorded in Warnings and do not fail the
// run. An error is returned only when a worker pass fails, in which case the
// iteration is abandoned.
func (e *Engine) Run() error {
	if e.ran {
		return ErrAlreadyRun
	}
	e.ran = true

	for e.iterations < e.cfg.maxIterations {
		iter := e.iterations
		e.cfg.observer.IterationStarted(iter)

		if err := e.settle(iter); err != nil {
			return fmt.Errorf("iteration %d: %w", iter, err)
		}

		wcss, err := e.score()
		if err != nil {
			return fmt.Errorf("iteration %d: scoring: %w", iter, err)
		}
		e.iterations++
		e.cfg.observer.Scored(iter, wcss, e.lastDelta())

		if e.converged() {
			e.state = StateConverged
			e.cfg.observer.Converged(e.iterations, wcss)
			return nil
		}
	}

	e.state = StateStopped
	e.warn(&DegenerateInputError{
		Reason:    ReasonIterationCap,
		Iteration: e.iterations - 1,
		Detail:    fmt.Sprintf("no convergence within %d iterations, last delta %g", e.cfg.maxIterations, e.lastDelta()),
	})
	return nil
}

// settle runs the inner reinitialise/assign/update cycle for one outer
// iteration.
func (e *Engine) settle(iter int) error {
	for cycle := 0; cycle < e.cfg.innerCycleCap; cycle++ {
		if len(e.unused) > 0 {
			e.reinitialise()
		}
		if err := e.assign(); err != nil {
			return fmt.Errorf("assigning: %w", err)
		}
		if err := e.update(); err != nil {
			return fmt.Errorf("updating: %w", err)
		}
		e.cfg.observer.InnerCycle(iter, cycle, slices.Clone(e.unused))
		if len(e.unused) == 0 {
			return nil
		}
	}

	e.warn(&DegenerateInputError{
		Reason:    ReasonInnerCycleCap,
		Iteration: iter,
		Detail:    fmt.Sprintf("%d empty clusters %v after %d cycles", len(e.unused), e.unused, e.cfg.innerCycleCap),
	})
	return nil
}

func (e *Engine) warn(err *DegenerateInputError) {
	e.warnings = append(e.warnings, err)
	e.cfg.observer.Degenerate(err)
}

// K returns the palette size.
func (e *Engine) K() int { return e.k }

// State returns the current phase.
func (e *Engine) State() State { return e.state }

// Iterations returns the number of completed outer iterations.
func (e *Engine) Iterations() int { return e.iterations }

// Palette returns a copy of the current palette.
func (e *Engine) Palette() []colour.Packed {
	p := make([]colour.Packed, len(e.palette))
	copy(p, e.palette)
	return p
}

// Assignments returns a copy of the assignment grid.
func (e *Engine) Assignments() *Assignment {
	return e.assignment.clone()
}

// QualityHistory returns a copy of the per-iteration WCSS scores.
func (e *Engine) QualityHistory() []float64 {
	h := make([]float64, len(e.history))
	copy(h, e.history)
	return h
}

// Warnings returns the degenerate-input conditions recorded so far. Each
// element satisfies errors.Is(err, ErrDegenerateInput).
func (e *Engine) Warnings() []error {
	w := make([]error, len(e.warnings))
	copy(w, e.warnings)
	return w
}

// QuantizedImage returns a new raster with every pixel replaced by its
// assigned palette colour.
func (e *Engine) QuantizedImage() *colour.Raster {
	out := colour.NewRaster(e.width, e.height)
	pix := out.Pixels()
	for i, idx := range e.assignment.index {
		pix[i] = e.palette[idx]
	}
	return out
}

// ColourPalette returns the palette together with the share of pixels last
// assigned to each entry.
func (e *Engine) ColourPalette() *colour.Palette {
	total := float64(e.width * e.height)
	weights := make([]float64, e.k)
	for i, n := range e.counts {
		weights[i] = float64(n) / total
	}
	return colour.NewPalette(e.Palette(), weights)
}
