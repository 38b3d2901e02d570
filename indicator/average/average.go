// Package average implements the moving-average kernels. Each kernel writes
// len(src)-lookback values into dst; the lookbacks are listed on the
// matching *Lookback function.
package average

import (
	"math"

	"github.com/evdnx/tulip/indicator/core"
)

// KAMA smoothing bounds: the 2- and 30-period EMA constants.
const (
	kamaFast = 2.0 / (2.0 + 1)
	kamaSlow = 2.0 / (30.0 + 1)
)

// SMA is the arithmetic mean of the trailing period samples.
func SMA(dst, src []float64, period int) { core.SMA(dst, src, period) }

// WMA is the linearly weighted trailing mean.
func WMA(dst, src []float64, period int) { core.WMA(dst, src, period) }

// EMA is the SMA-seeded exponential moving average.
func EMA(dst, src []float64, period int) { core.EMA(dst, src, period) }

// Wilders is Wilder's smoothing, an EMA with α = 1/period.
func Wilders(dst, src []float64, period int) { core.Wilders(dst, src, period) }

// DEMALookback is 2(period-1).
func DEMALookback(period int) int { return 2 * (period - 1) }

// DEMA is 2·EMA(x) - EMA(EMA(x)).
func DEMA(dst, src []float64, period int) {
	e1 := core.EMASeries(src, period)
	e2 := core.EMASeries(e1, period)
	off := period - 1
	for i := range dst {
		dst[i] = 2*e1[i+off] - e2[i]
	}
}

// TEMALookback is 3(period-1).
func TEMALookback(period int) int { return 3 * (period - 1) }

// TEMA is 3·EMA(x) - 3·EMA(EMA(x)) + EMA(EMA(EMA(x))).
func TEMA(dst, src []float64, period int) {
	e1 := core.EMASeries(src, period)
	e2 := core.EMASeries(e1, period)
	e3 := core.EMASeries(e2, period)
	off := period - 1
	for i := range dst {
		dst[i] = 3*e1[i+2*off] - 3*e2[i+off] + e3[i]
	}
}

// TRIMA is an SMA of an SMA whose windows add up to period+1, which gives
// triangular weights over the trailing period samples.
func TRIMA(dst, src []float64, period int) {
	first := period/2 + 1
	second := period - period/2
	core.SMA(dst, core.SMASeries(src, first), second)
}

// KAMALookback is period.
func KAMALookback(period int) int { return period }

// KAMA is Kaufman's adaptive moving average. The efficiency ratio of the
// trailing window maps the smoothing constant between the 2- and 30-period
// EMA constants; the average is seeded with src[period-1].
func KAMA(dst, src []float64, period int) {
	var moves core.KahanSum
	for i := 1; i < period; i++ {
		moves.Add(math.Abs(src[i] - src[i-1]))
	}
	ama := src[period-1]
	for i := period; i < len(src); i++ {
		moves.Add(math.Abs(src[i] - src[i-1]))
		if i > period {
			moves.Add(-math.Abs(src[i-period] - src[i-period-1]))
		}
		er := 1.0
		if total := moves.Value(); total > 0 {
			er = math.Abs(src[i]-src[i-period]) / total
		}
		sc := er*(kamaFast-kamaSlow) + kamaSlow
		ama += sc * sc * (src[i] - ama)
		dst[i-period] = ama
	}
}

// HMALookback is (period-1) + (⌊√period⌋-1).
func HMALookback(period int) int {
	return period - 1 + int(math.Sqrt(float64(period))) - 1
}

// HMA is the Hull moving average: WMA(2·WMA(x, n/2) - WMA(x, n), ⌊√n⌋).
func HMA(dst, src []float64, period int) {
	half := period / 2
	root := int(math.Sqrt(float64(period)))

	full := core.WMASeries(src, period)
	halves := core.WMASeries(src, half)
	shift := period - half
	raw := make([]float64, len(full))
	for i := range raw {
		raw[i] = 2*halves[i+shift] - full[i]
	}
	core.WMA(dst, raw, root)
}

// ZLEMALookback is (period-1)/2 + period-1.
func ZLEMALookback(period int) int { return (period-1)/2 + period - 1 }

// ZLEMA is the EMA of the de-lagged series 2·x[i] - x[i-(period-1)/2].
func ZLEMA(dst, src []float64, period int) {
	lag := (period - 1) / 2
	delagged := make([]float64, len(src)-lag)
	for i := lag; i < len(src); i++ {
		delagged[i-lag] = 2*src[i] - src[i-lag]
	}
	core.EMA(dst, delagged, period)
}

// VIDYALookback is long-1.
func VIDYALookback(long int) int { return long - 1 }

// VIDYA is Chande's variable index dynamic average: an exponential filter
// whose step alpha·σshort/σlong follows relative volatility. It is seeded
// with src[long-2].
func VIDYA(dst, src []float64, short, long int, alpha float64) {
	var shortWin, longWin core.Welford
	slide := func(w *core.Welford, size, i int) {
		if i < size {
			w.Push(src[i])
		} else {
			w.Replace(src[i-size], src[i])
		}
	}
	for i := 0; i < long-1; i++ {
		slide(&shortWin, short, i)
		slide(&longWin, long, i)
	}
	val := src[long-2]
	for i := long - 1; i < len(src); i++ {
		slide(&shortWin, short, i)
		slide(&longWin, long, i)
		k := alpha * core.SafeDiv(shortWin.StdDev(), longWin.StdDev(), 0)
		val += k * (src[i] - val)
		dst[i-long+1] = val
	}
}
