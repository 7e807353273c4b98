package kmeans

import (
	"bytes"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogObserver(t *testing.T) {
	var buf bytes.Buffer
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "test",
		Output: &buf,
		Level:  hclog.Trace,
	})

	img := newRaster(t, 2, 2, 0x000000, 0x000000, 0xFFFFFF, 0xFFFFFF)
	e, err := New(img, 3, WithSeed(1), WithMaxInitAttempts(2), WithInnerCycleCap(3), WithObserver(NewLogObserver(logger)))
	require.NoError(t, err)
	require.NoError(t, e.Run())

	out := buf.String()
	assert.Contains(t, out, "degenerate input")
	assert.Contains(t, out, "reason=init-exhausted")
	assert.Contains(t, out, "iteration started")
	assert.Contains(t, out, "inner cycle")
	assert.Contains(t, out, "scored")
}

func TestLogObserverNilLogger(t *testing.T) {
	obs := NewLogObserver(nil)
	assert.NotPanics(t, func() {
		obs.IterationStarted(0)
		obs.InnerCycle(0, 0, []int{1})
		obs.Scored(1, 10, 5)
		obs.Degenerate(&DegenerateInputError{Reason: ReasonInnerCycleCap})
		obs.Converged(2, 10)
	})
}
