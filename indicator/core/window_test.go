package core

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func naiveVariance(s []float64) float64 {
	m := naiveMean(s)
	var ss float64
	for _, v := range s {
		ss += (v - m) * (v - m)
	}
	return ss / float64(len(s))
}

func TestVariance_MatchesTwoPass(t *testing.T) {
	for _, period := range []int{2, 5, 10} {
		dst := Make(len(closes), period-1)
		Variance(dst, closes, period)
		for i := range dst {
			assert.InDelta(t, naiveVariance(closes[i:i+period]), dst[i], 1e-9)
		}
	}
}

func TestVariance_LargeOffsetIsStable(t *testing.T) {
	// Sum-of-squares minus squared-sum loses every significant digit here.
	rng := rand.New(rand.NewSource(3))
	src := make([]float64, 20_000)
	for i := range src {
		src[i] = 1e9 + rng.Float64()
	}
	period := 20
	dst := Make(len(src), period-1)
	Variance(dst, src, period)
	for _, i := range []int{0, 1000, len(dst) - 1} {
		want := naiveVariance(src[i : i+period])
		assert.InDelta(t, want, dst[i], 1e-3)
		assert.GreaterOrEqual(t, dst[i], 0.0)
	}
}

func TestStdDev_ConstantWindowIsZero(t *testing.T) {
	src := []float64{4, 4, 4, 4}
	dst := Make(4, 2)
	StdDev(dst, src, 3)
	assert.Equal(t, []float64{0, 0}, dst)
}

func TestWelford(t *testing.T) {
	var w Welford
	assert.Zero(t, w.Variance())
	for _, v := range []float64{2, 4, 4, 4} {
		w.Push(v)
	}
	w.Replace(2, 5)
	assert.InDelta(t, naiveMean([]float64{4, 4, 4, 5}), w.Mean(), 1e-12)
	assert.InDelta(t, math.Sqrt(naiveVariance([]float64{4, 4, 4, 5})), w.StdDev(), 1e-12)
}

func TestWindowExtremes(t *testing.T) {
	src := []float64{1, 3, 3, 2, 0, 5}

	hi := make([]int, 4)
	WindowMaxIndex(hi, src, 3)
	assert.Equal(t, []int{2, 2, 2, 5}, hi, "ties resolve to the most recent index")

	lo := make([]int, 4)
	WindowMinIndex(lo, src, 3)
	assert.Equal(t, []int{0, 3, 4, 4}, lo)

	maxes := make([]float64, 4)
	WindowMax(maxes, src, 3)
	assert.Equal(t, []float64{3, 3, 3, 5}, maxes)

	mins := make([]float64, 4)
	WindowMin(mins, src, 3)
	assert.Equal(t, []float64{1, 2, 0, 0}, mins)
}

func TestRegression_Line(t *testing.T) {
	src := []float64{3, 5, 7, 9, 11}
	var as, bs []float64
	Regression(src, 3, func(i int, a, b float64) {
		as = append(as, a)
		bs = append(bs, b)
	})
	assert.InDeltaSlice(t, []float64{1, 3, 5}, as, 1e-9)
	assert.InDeltaSlice(t, []float64{2, 2, 2}, bs, 1e-9)
}

func TestRegression_LargeOffsetDoesNotDrift(t *testing.T) {
	const offset, period = 1e9, 10
	rng := rand.New(rand.NewSource(11))
	src := make([]float64, 100_000)
	for i := range src {
		src[i] = offset + rng.Float64()
	}
	last := len(src) - 1
	var a, b float64
	Regression(src, period, func(i int, ia, ib float64) {
		if i == last {
			a, b = ia, ib
		}
	})

	// Direct least squares over the final window, relative to the offset.
	var sx, sy, sxx, sxy float64
	for k := 0; k < period; k++ {
		x, y := float64(k+1), src[last-period+1+k]-offset
		sx += x
		sy += y
		sxx += x * x
		sxy += x * y
	}
	p := float64(period)
	wantB := (p*sxy - sx*sy) / (p*sxx - sx*sx)
	wantA := offset + (sy-wantB*sx)/p
	assert.InDelta(t, wantB, b, 1e-5)
	assert.InDelta(t, wantA, a, 1e-5)
}

func TestDirectionalMovement(t *testing.T) {
	high := []float64{10, 12, 11, 13}
	low := []float64{9, 10, 8, 9}

	p, m := DirectionalMovement(high, low, 1)
	assert.Equal(t, 2.0, p)
	assert.Equal(t, 0.0, m)

	p, m = DirectionalMovement(high, low, 2)
	assert.Equal(t, 0.0, p)
	assert.Equal(t, 2.0, m)

	close := []float64{9.5, 11, 9, 12}
	assert.Equal(t, 1.0, TrueRange(high, low, close, 0))
	assert.Equal(t, 2.5, TrueRange(high, low, close, 1))

	var visits []int
	DirectionalSums(high, low, nil, 2, func(i int, _, _, tr float64) {
		visits = append(visits, i)
		assert.Zero(t, tr)
	})
	assert.Equal(t, []int{1, 2, 3}, visits)
}
