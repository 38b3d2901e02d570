package volatility

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evdnx/tulip/indicator/core"
)

const eps = 1e-6

func TestBollingerBands_Calculation(t *testing.T) {
	src := []float64{10, 12, 14}
	lower := core.Make(3, 2)
	middle := core.Make(3, 2)
	upper := core.Make(3, 2)
	BBands(lower, middle, upper, src, 3, 2)

	// Population standard deviation of 10,12,14 is √(8/3).
	width := 2 * math.Sqrt(8.0/3)
	assert.InDelta(t, 12, middle[0], eps)
	assert.InDelta(t, 12+width, upper[0], eps)
	assert.InDelta(t, 12-width, lower[0], eps)
}

func TestBollingerBands_Reference(t *testing.T) {
	src := []float64{81.59, 81.06, 82.87, 83.00, 83.61, 83.15, 82.84, 83.99, 84.55, 84.36, 85.53, 86.54, 86.89, 87.77, 87.29}
	lower := core.Make(len(src), 4)
	middle := core.Make(len(src), 4)
	upper := core.Make(len(src), 4)
	BBands(lower, middle, upper, src, 5, 2)

	assert.InDeltaSlice(t, []float64{80.530, 80.987, 82.533, 82.472, 82.418, 82.435, 82.511, 83.143, 83.536, 83.870, 85.289}, lower, 1e-3)
	assert.InDeltaSlice(t, []float64{82.426, 82.738, 83.094, 83.318, 83.628, 83.778, 84.254, 84.994, 85.574, 86.218, 86.804}, middle, 1e-3)
	assert.InDeltaSlice(t, []float64{84.322, 84.489, 83.655, 84.164, 84.838, 85.121, 85.997, 86.845, 87.612, 88.566, 88.319}, upper, 1e-3)

	sma := core.SMASeries(src, 5)
	assert.Equal(t, sma, middle, "middle band is the SMA")
}

func TestBollingerBands_FlatSeriesCollapses(t *testing.T) {
	src := []float64{5, 5, 5, 5, 5}
	lower := core.Make(5, 2)
	middle := core.Make(5, 2)
	upper := core.Make(5, 2)
	BBands(lower, middle, upper, src, 3, 2)
	assert.Equal(t, middle, lower)
	assert.Equal(t, middle, upper)
}

func TestBollingerBands_InvalidOptions(t *testing.T) {
	for _, opts := range [][]float64{{0, 2}, {5, 0}, {5, -1}, {5}} {
		_, err := bbandsLookback(opts)
		assert.ErrorIs(t, err, core.ErrInvalidOption, "%v", opts)
	}
}

func TestATRAndNATR(t *testing.T) {
	high := []float64{10, 13, 12}
	low := []float64{8, 9, 11}
	close := []float64{9, 12, 11}

	tr := make([]float64, 3)
	TR(tr, high, low, close)
	assert.Equal(t, []float64{2, 4, 1}, tr)

	atr := core.Make(3, 1)
	ATR(atr, high, low, close, 2)
	assert.InDeltaSlice(t, []float64{3, 2}, atr, eps)

	natr := core.Make(3, 1)
	NATR(natr, high, low, close, 2)
	assert.InDeltaSlice(t, []float64{25, 200.0 / 11}, natr, eps)
}

func TestWindowStatistics(t *testing.T) {
	src := []float64{1, 2, 3, 4}

	v := core.Make(4, 2)
	Var(v, src, 3)
	assert.InDeltaSlice(t, []float64{2.0 / 3, 2.0 / 3}, v, eps)

	sd := core.Make(4, 2)
	StdDev(sd, src, 3)
	assert.InDeltaSlice(t, []float64{math.Sqrt(2.0 / 3), math.Sqrt(2.0 / 3)}, sd, eps)

	se := core.Make(4, 2)
	StdErr(se, src, 3)
	assert.InDelta(t, math.Sqrt(2.0/3)/math.Sqrt(3), se[0], eps)

	md := core.Make(4, 2)
	MD(md, src, 3)
	assert.InDeltaSlice(t, []float64{2.0 / 3, 2.0 / 3}, md, eps)
}

func TestVolatility(t *testing.T) {
	growth := []float64{1, 2, 4, 8}
	dst := core.Make(4, 2)
	Volatility(dst, growth, 2)
	assert.InDeltaSlice(t, []float64{0, 0}, dst, eps)

	swing := []float64{1, 2, 1, 2}
	Volatility(dst, swing, 2)
	want := 0.75 * math.Sqrt(TradingDays)
	assert.InDeltaSlice(t, []float64{want, want}, dst, eps)
}

func TestIndicators_Lookbacks(t *testing.T) {
	inds := Indicators()
	require.Len(t, inds, 9)
	for _, ind := range inds {
		var opts []float64
		switch ind.OptionCount() {
		case 1:
			opts = []float64{10}
		case 2:
			opts = []float64{10, 2}
		}
		lb, err := ind.Lookback(opts)
		require.NoError(t, err, ind.Name)
		switch ind.Name {
		case "tr":
			assert.Equal(t, 0, lb)
		case "volatility":
			assert.Equal(t, 10, lb)
		default:
			assert.Equal(t, 9, lb, ind.Name)
		}
	}
}
