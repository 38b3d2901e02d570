package volatility

import "github.com/evdnx/tulip/indicator/core"

// TR writes the true range of every bar. The first bar has no previous close
// and uses high-low.
func TR(dst, high, low, close []float64) {
	for i := range dst {
		dst[i] = core.TrueRange(high, low, close, i)
	}
}

// ATR writes Wilder's Average True Range (lookback period-1), seeded with the
// mean true range of the first period bars.
func ATR(dst, high, low, close []float64, period int) {
	tr := make([]float64, len(close))
	TR(tr, high, low, close)
	core.Wilders(dst, tr, period)
}

// NATR writes the ATR as a percentage of the close. A zero close yields 0.
func NATR(dst, high, low, close []float64, period int) {
	ATR(dst, high, low, close, period)
	for i := range dst {
		dst[i] = 100 * core.SafeDiv(dst[i], close[i+period-1], 0)
	}
}
