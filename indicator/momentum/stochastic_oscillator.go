package momentum

import (
	"math"

	"github.com/evdnx/tulip/indicator/core"
)

// StochLookback is kPeriod+kSlowing+dPeriod-3.
func StochLookback(kPeriod, kSlowing, dPeriod int) int {
	return kPeriod + kSlowing + dPeriod - 3
}

// Stoch writes the slow %K and %D lines. Fast %K places the close within the
// kPeriod high/low range on a 0–100 scale (0 when the range is flat); slow %K
// is its kSlowing SMA and %D the dPeriod SMA of slow %K.
func Stoch(k, d, high, low, close []float64, kPeriod, kSlowing, dPeriod int) {
	hh := core.Make(len(close), kPeriod-1)
	ll := core.Make(len(close), kPeriod-1)
	core.WindowMax(hh, high, kPeriod)
	core.WindowMin(ll, low, kPeriod)

	fast := make([]float64, len(hh))
	for i := range fast {
		c := close[i+kPeriod-1]
		fast[i] = 100 * core.SafeDiv(c-ll[i], hh[i]-ll[i], 0)
	}
	slow := core.SMASeries(fast, kSlowing)
	copy(k, slow[dPeriod-1:])
	core.SMA(d, slow, dPeriod)
}

// WillR writes Williams %R on a -100–0 scale (lookback period-1).
func WillR(dst, high, low, close []float64, period int) {
	hh := make([]float64, len(dst))
	ll := make([]float64, len(dst))
	core.WindowMax(hh, high, period)
	core.WindowMin(ll, low, period)
	for i := range dst {
		c := close[i+period-1]
		dst[i] = -100 * core.SafeDiv(hh[i]-c, hh[i]-ll[i], 0)
	}
}

// UltOsc writes the Ultimate Oscillator (lookback long). Buying pressure and
// true range are summed over three windows and the ratios are blended 4:2:1.
func UltOsc(dst, high, low, close []float64, short, medium, long int) {
	n := len(close)
	bp := make([]float64, n-1)
	tr := make([]float64, n-1)
	for i := 1; i < n; i++ {
		trueLow := math.Min(low[i], close[i-1])
		trueHigh := math.Max(high[i], close[i-1])
		bp[i-1] = close[i] - trueLow
		tr[i-1] = trueHigh - trueLow
	}

	windows := [3]int{short, medium, long}
	var bpSum, trSum [3][]float64
	for w, size := range windows {
		bpSum[w] = core.Make(len(bp), size-1)
		trSum[w] = core.Make(len(tr), size-1)
		core.Sum(bpSum[w], bp, size)
		core.Sum(trSum[w], tr, size)
	}

	for i := long; i < n; i++ {
		var avg [3]float64
		for w, size := range windows {
			// bp[j] belongs to bar j+1; the sum ending at bar i starts at i-size.
			avg[w] = core.SafeDiv(bpSum[w][i-size], trSum[w][i-size], 0)
		}
		dst[i-long] = 100 * (4*avg[0] + 2*avg[1] + avg[2]) / 7
	}
}
