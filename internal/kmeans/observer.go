package kmeans

import (
	"github.com/hashicorp/go-hclog"
)

// Observer receives progress events from a running Engine. Calls are made
// from the goroutine running Run, never concurrently. Slices passed to an
// Observer are copies it may keep.
type Observer interface {
	IterationStarted(iteration int)
	InnerCycle(iteration, cycle int, unused []int)
	Scored(iteration int, wcss, delta float64)
	Degenerate(err *DegenerateInputError)
	Converged(iterations int, wcss float64)
}

// NopObserver discards all events.
type NopObserver struct{}

func (NopObserver) IterationStarted(int) {}
func (NopObserver) InnerCycle(int, int, []int) {}
func (NopObserver) Scored(int, float64, float64) {}
func (NopObserver) Degenerate(*DegenerateInputError) {}
func (NopObserver) Converged(int, float64) {}

// LogObserver writes engine progress to an hclog.Logger. Per-cycle detail is
// logged at trace level, per-iteration scores at debug and warnings at warn.
type LogObserver struct {
	logger hclog.Logger
}

// NewLogObserver creates a LogObserver. A nil logger yields a no-op logger.
func NewLogObserver(logger hclog.Logger) *LogObserver {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &LogObserver{logger: logger}
}

func (o *LogObserver) IterationStarted(iteration int) {
	o.logger.Debug("iteration started", "iteration", iteration)
}

func (o *LogObserver) InnerCycle(iteration, cycle int, unused []int) {
	if !o.logger.IsTrace() {
		return
	}
	o.logger.Trace("inner cycle", "iteration", iteration, "cycle", cycle, "unused", len(unused), "indices", unused)
}

func (o *LogObserver) Scored(iteration int, wcss, delta float64) {
	if iteration == 0 {
		o.logger.Debug("scored", "iteration", iteration, "wcss", wcss)
		return
	}
	o.logger.Debug("scored", "iteration", iteration, "wcss", wcss, "delta", delta)
}

func (o *LogObserver) Degenerate(err *DegenerateInputError) {
	o.logger.Warn("degenerate input", "reason", err.Reason, "iteration", err.Iteration, "detail", err.Detail)
}

func (o *LogObserver) Converged(iterations int, wcss float64) {
	o.logger.Info("converged", "iterations", iterations, "wcss", wcss)
}
