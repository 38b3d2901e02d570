package momentum

import (
	"math"

	"github.com/evdnx/tulip/indicator/core"
)

const cciConstant = 0.015

// CCILookback is 2(period-1).
func CCILookback(period int) int { return 2 * (period - 1) }

// CCI writes the Commodity Channel Index. It uses the typical price
// [(H+L+C)/3], a simple moving average of typical prices, and the mean
// deviation of the trailing window around that average. A zero deviation
// yields 0.
func CCI(dst, high, low, close []float64, period int) {
	tp := make([]float64, len(close))
	for i := range tp {
		tp[i] = (high[i] + low[i] + close[i]) / 3
	}
	avg := core.SMASeries(tp, period)

	start := CCILookback(period)
	scale := 1.0 / float64(period)
	for i := start; i < len(tp); i++ {
		mean := avg[i-period+1]
		var dev float64
		for j := i - period + 1; j <= i; j++ {
			dev += math.Abs(mean - tp[j])
		}
		dst[i-start] = core.SafeDiv(tp[i]-mean, cciConstant*dev*scale, 0)
	}
}
