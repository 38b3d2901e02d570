package core

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var closes = []float64{81.59, 81.06, 82.87, 83.00, 83.61, 83.15, 82.84, 83.99, 84.55, 84.36, 85.53, 86.54, 86.89, 87.77, 87.29}

func naiveMean(s []float64) float64 {
	var sum float64
	for _, v := range s {
		sum += v
	}
	return sum / float64(len(s))
}

func TestSMA_MatchesNaiveMean(t *testing.T) {
	for _, period := range []int{1, 2, 5, 15} {
		dst := SMASeries(closes, period)
		require.Len(t, dst, len(closes)-period+1)
		for i := range dst {
			assert.InDelta(t, naiveMean(closes[i:i+period]), dst[i], 1e-9)
		}
	}
}

func TestSum(t *testing.T) {
	dst := Make(4, 1)
	Sum(dst, []float64{1, 2, 3, 4}, 2)
	assert.Equal(t, []float64{3, 5, 7}, dst)
}

func TestWMA_MatchesNaiveWeights(t *testing.T) {
	period := 5
	dst := WMASeries(closes, period)
	for i := range dst {
		var num, den float64
		for k := 0; k < period; k++ {
			w := float64(k + 1)
			num += closes[i+k] * w
			den += w
		}
		assert.InDelta(t, num/den, dst[i], 1e-9)
	}
	assert.InDelta(t, 82.825, dst[0], 1e-3)
}

func TestWMA_LargeOffsetDoesNotDrift(t *testing.T) {
	const offset, period = 1e9, 10
	rng := rand.New(rand.NewSource(7))
	src := make([]float64, 100_000)
	for i := range src {
		src[i] = offset + rng.Float64()
	}
	dst := WMASeries(src, period)
	require.Len(t, dst, len(src)-period+1)

	weights := float64(period*(period+1)) / 2
	for _, i := range []int{0, len(dst) / 2, len(dst) - 1} {
		var num float64
		for k := 0; k < period; k++ {
			num += (src[i+k] - offset) * float64(k+1)
		}
		assert.InDelta(t, offset+num/weights, dst[i], 1e-6, "window %d", i)
	}
}

func TestEMA_SeedAndRecurrence(t *testing.T) {
	dst := EMASeries(closes, 5)
	require.Len(t, dst, 11)
	assert.InDelta(t, 82.426, dst[0], 1e-9)
	assert.InDelta(t, dst[0]+(closes[5]-dst[0])/3, dst[1], 1e-9)
}

func TestWilders(t *testing.T) {
	dst := Make(4, 1)
	Wilders(dst, []float64{2, 4, 1, 3}, 2)
	assert.InDeltaSlice(t, []float64{3, 2, 2.5}, dst, 1e-12)
}

func TestSeriesHelpers_ShortInput(t *testing.T) {
	assert.Empty(t, EMASeries([]float64{1, 2}, 3))
	assert.Empty(t, SMASeries([]float64{1, 2}, 3))
	assert.Empty(t, WMASeries(nil, 3))
}

func TestKahanSum_LongSeriesStaysAccurate(t *testing.T) {
	var k KahanSum
	for i := 0; i < 1_000_000; i++ {
		k.Add(0.1)
	}
	assert.InDelta(t, 100000, k.Value(), 1e-6)
}

func TestSMA_SlidingDoesNotDrift(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	src := make([]float64, 200_000)
	for i := range src {
		src[i] = 1e6 + rng.Float64()
	}
	dst := SMASeries(src, 10)
	last := naiveMean(src[len(src)-10:])
	assert.InDelta(t, last, dst[len(dst)-1], 1e-5)
	assert.False(t, math.IsNaN(dst[0]))
}
