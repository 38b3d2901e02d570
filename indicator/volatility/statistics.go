package volatility

import (
	"math"

	"github.com/evdnx/tulip/indicator/core"
)

// Var writes the population variance of each trailing window.
func Var(dst, src []float64, period int) { core.Variance(dst, src, period) }

// StdDev writes the population standard deviation of each trailing window.
func StdDev(dst, src []float64, period int) { core.StdDev(dst, src, period) }

// StdErr writes the standard error, stddev/√period.
func StdErr(dst, src []float64, period int) {
	core.StdDev(dst, src, period)
	scale := 1 / math.Sqrt(float64(period))
	for i := range dst {
		dst[i] *= scale
	}
}

// MD writes the mean absolute deviation of each window from its SMA.
func MD(dst, src []float64, period int) {
	core.SMA(dst, src, period)
	p := float64(period)
	for i, mean := range dst {
		var dev float64
		for _, v := range src[i : i+period] {
			dev += math.Abs(v - mean)
		}
		dst[i] = dev / p
	}
}

// TradingDays annualises Volatility.
const TradingDays = 252

// Volatility writes the annualised population standard deviation of one-bar
// returns over the trailing period returns (lookback period).
func Volatility(dst, src []float64, period int) {
	ret := make([]float64, len(src)-1)
	for i := range ret {
		ret[i] = core.SafeDiv(src[i+1], src[i], 1) - 1
	}
	core.StdDev(dst, ret, period)
	annual := math.Sqrt(TradingDays)
	for i := range dst {
		dst[i] *= annual
	}
}
