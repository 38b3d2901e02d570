package volatility

import "github.com/evdnx/tulip/indicator/core"

const (
	DefaultBollingerPeriod     = 20
	DefaultBollingerMultiplier = 2.0
)

// BBands writes the lower, middle and upper Bollinger Bands. The middle band
// is the period SMA; the outer bands sit multiplier population standard
// deviations away from it.
func BBands(lower, middle, upper, src []float64, period int, multiplier float64) {
	core.SMA(middle, src, period)

	var w core.Welford
	for i := 0; i < period; i++ {
		w.Push(src[i])
	}
	for i := range middle {
		if i > 0 {
			w.Replace(src[i-1], src[i+period-1])
		}
		width := multiplier * w.StdDev()
		lower[i] = middle[i] - width
		upper[i] = middle[i] + width
	}
}
