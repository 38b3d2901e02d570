package trend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evdnx/tulip/indicator/core"
)

func TestParabolicSAR_UptrendCalculation(t *testing.T) {
	high := []float64{10, 11, 12, 13}
	low := []float64{9, 10, 11, 12}

	dst := core.Make(len(high), 1)
	PSAR(dst, high, low, DefaultSARStep, DefaultSARMaxStep)

	// SAR stays pinned under the prior lows until the acceleration lifts it.
	assert.InDeltaSlice(t, []float64{9, 9, 9.18}, dst, 1e-9)
}

func TestParabolicSAR_ReversalToDowntrend(t *testing.T) {
	high := []float64{10, 11, 12, 13, 12}
	low := []float64{9, 10, 11, 12, 8}

	dst := core.Make(len(high), 1)
	PSAR(dst, high, low, DefaultSARStep, DefaultSARMaxStep)

	require.Len(t, dst, 4)
	assert.InDelta(t, 13, dst[3], 1e-9, "reversal resets SAR to the prior extreme point")
}

func TestParabolicSAR_InitialDowntrend(t *testing.T) {
	high := []float64{13, 12, 11}
	low := []float64{12, 11, 10}

	dst := core.Make(len(high), 1)
	PSAR(dst, high, low, DefaultSARStep, DefaultSARMaxStep)

	// Falling market: SAR sits above the highs.
	for i, v := range dst {
		assert.GreaterOrEqual(t, v, high[i+1])
	}
}

func TestParabolicSAR_AccelerationCapped(t *testing.T) {
	s := sarState{step: 0.1, maxStep: 0.25, af: 0.1}
	s.accelerate()
	s.accelerate()
	s.accelerate()
	assert.InDelta(t, 0.25, s.af, 1e-12)
}

func TestParabolicSAR_InvalidParams(t *testing.T) {
	for _, opts := range [][]float64{{0, 0.2}, {0.02, 0}, {0.3, 0.2}, {-1, 0.2}} {
		_, err := psarLookback(opts)
		assert.ErrorIs(t, err, core.ErrInvalidOption, "%v", opts)
	}
	lb, err := psarLookback([]float64{0.02, 0.2})
	require.NoError(t, err)
	assert.Equal(t, 1, lb)
}
