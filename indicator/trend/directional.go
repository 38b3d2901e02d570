package trend

import (
	"math"

	"github.com/evdnx/tulip/indicator/core"
)

// DX/ADX share Wilder's directional sums. DI and DX are ratios of those sums,
// so the period scaling cancels out.

func dxValue(plus, minus float64) float64 {
	return 100 * core.SafeDiv(math.Abs(plus-minus), plus+minus, 0)
}

// ADXLookback is 2(period-1).
func ADXLookback(period int) int { return 2 * (period - 1) }

// ADX writes the Average Directional Index: the mean of the first period DX
// values, then Wilder-smoothed DX.
func ADX(dst, high, low, close []float64, period int) {
	p := float64(period)
	var adx float64
	first := ADXLookback(period)
	core.DirectionalSums(high, low, close, period, func(i int, plus, minus, _ float64) {
		dx := dxValue(plus, minus)
		switch {
		case i < first:
			adx += dx
		case i == first:
			adx = (adx + dx) / p
			dst[0] = adx
		default:
			adx = (adx*(p-1) + dx) / p
			dst[i-first] = adx
		}
	})
}

// ADXRLookback is 3(period-1).
func ADXRLookback(period int) int { return 3 * (period - 1) }

// ADXR writes the average of the current ADX and the ADX period-1 bars ago.
func ADXR(dst, high, low, close []float64, period int) {
	adx := core.Make(len(close), ADXLookback(period))
	ADX(adx, high, low, close, period)
	lag := period - 1
	for i := range dst {
		dst[i] = 0.5 * (adx[i+lag] + adx[i])
	}
}

// DI writes the +DI and -DI lines, 100·DM/TR (lookback period-1).
func DI(plus, minus, high, low, close []float64, period int) {
	start := period - 1
	core.DirectionalSums(high, low, close, period, func(i int, p, m, tr float64) {
		plus[i-start] = 100 * core.SafeDiv(p, tr, 0)
		minus[i-start] = 100 * core.SafeDiv(m, tr, 0)
	})
}

// DM writes Wilder's smoothed +DM and -DM sums (lookback period-1).
func DM(plus, minus, high, low []float64, period int) {
	start := period - 1
	core.DirectionalSums(high, low, nil, period, func(i int, p, m, _ float64) {
		plus[i-start] = p
		minus[i-start] = m
	})
}

// DX writes the Directional Movement Index (lookback period-1).
func DX(dst, high, low, close []float64, period int) {
	start := period - 1
	core.DirectionalSums(high, low, close, period, func(i int, p, m, _ float64) {
		dst[i-start] = dxValue(p, m)
	})
}
