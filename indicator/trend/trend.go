package trend

import (
	"math"

	"github.com/evdnx/tulip/indicator/core"
)

// VHF writes the Vertical Horizontal Filter (lookback period): the range of
// the last period values over the sum of the last period absolute changes.
func VHF(dst, src []float64, period int) {
	hh := core.Make(len(src), period-1)
	ll := core.Make(len(src), period-1)
	core.WindowMax(hh, src, period)
	core.WindowMin(ll, src, period)

	var sum core.KahanSum
	for i := 1; i < period; i++ {
		sum.Add(math.Abs(src[i] - src[i-1]))
	}
	for i := period; i < len(src); i++ {
		sum.Add(math.Abs(src[i] - src[i-1]))
		if i > period {
			sum.Add(-math.Abs(src[i-period] - src[i-period-1]))
		}
		j := i - period + 1
		dst[i-period] = core.SafeDiv(hh[j]-ll[j], sum.Value(), 0)
	}
}

const massEMA = 9

// MassLookback is two chained 9-period EMAs plus the summing window.
func MassLookback(period int) int { return 2*(massEMA-1) + period - 1 }

// Mass writes the Mass Index: the period sum of EMA9(range)/EMA9(EMA9(range)).
// A bar whose double-smoothed range is zero contributes 1.
func Mass(dst, high, low []float64, period int) {
	rng := make([]float64, len(high))
	for i := range rng {
		rng[i] = high[i] - low[i]
	}
	e1 := core.EMASeries(rng, massEMA)
	e2 := core.EMASeries(e1, massEMA)

	ratio := make([]float64, len(e2))
	for i := range ratio {
		ratio[i] = core.SafeDiv(e1[i+massEMA-1], e2[i], 1)
	}
	core.Sum(dst, ratio, period)
}

// CVILookback is 2·period-1.
func CVILookback(period int) int { return 2*period - 1 }

// CVI writes Chaikin's Volatility: the percent change of the period EMA of
// the high-low range over period bars.
func CVI(dst, high, low []float64, period int) {
	rng := make([]float64, len(high))
	for i := range rng {
		rng[i] = high[i] - low[i]
	}
	ema := core.EMASeries(rng, period)
	for i := range dst {
		dst[i] = 100 * core.SafeDiv(ema[i+period]-ema[i], ema[i], 0)
	}
}
