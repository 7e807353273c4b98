package kmeans

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration is returned by New when k, the image or an
	// option value cannot be used. No engine state exists when it is returned.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrDegenerateInput marks warnings about inputs the engine cannot cluster
	// cleanly, typically fewer distinct colours than k. The run still
	// completes and produces a usable result.
	ErrDegenerateInput = errors.New("degenerate input")

	// ErrAlreadyRun is returned when Run is called on a finished engine.
	ErrAlreadyRun = errors.New("engine has already run")
)

// DegenerateReason identifies which safeguard produced a warning.
type DegenerateReason string

const (
	// ReasonInitExhausted means no duplicate-free seed palette was found
	// within the attempt budget.
	ReasonInitExhausted DegenerateReason = "init-exhausted"

	// ReasonInnerCycleCap means empty clusters survived the inner cycle cap.
	ReasonInnerCycleCap DegenerateReason = "inner-cycle-cap"

	// ReasonIterationCap means the run stopped at the outer iteration cap
	// without converging.
	ReasonIterationCap DegenerateReason = "iteration-cap"
)

// DegenerateInputError describes a recoverable degenerate condition.
type DegenerateInputError struct {
	Reason    DegenerateReason
	Iteration int
	Detail    string
}

// Error implements error.
func (e *DegenerateInputError) Error() string {
	return fmt.Sprintf("%s (%s, iteration %d): %s", ErrDegenerateInput, e.Reason, e.Iteration, e.Detail)
}

// Unwrap allows errors.Is(err, ErrDegenerateInput).
func (e *DegenerateInputError) Unwrap() error {
	return ErrDegenerateInput
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfiguration, fmt.Sprintf(format, args...))
}
