package volume

import (
	"math"

	"github.com/evdnx/tulip/indicator/core"
)

// KVO writes the Klinger Volume Oscillator (lookback long). Each bar after the
// first yields a volume force signed by the hlc trend; the cumulative
// measurement restarts from the previous bar's range whenever the trend
// flips. The oscillator is EMA(short)-EMA(long) of the volume force.
func KVO(dst, high, low, close, volume []float64, short, long int) {
	n := len(close)
	vf := make([]float64, n-1)
	prev := high[0] + low[0] + close[0]
	trend := 0
	var cm float64
	for i := 1; i < n; i++ {
		hlc := high[i] + low[i] + close[i]
		dm := high[i] - low[i]
		switch {
		case hlc > prev && trend != 1:
			trend = 1
			cm = high[i-1] - low[i-1]
		case hlc < prev && trend != -1:
			trend = -1
			cm = high[i-1] - low[i-1]
		}
		cm += dm
		sign := -1.0
		if trend == 1 {
			sign = 1
		}
		vf[i-1] = volume[i] * math.Abs(2*core.SafeDiv(dm, cm, 0)-1) * 100 * sign
		prev = hlc
	}

	fast := core.EMASeries(vf, short)
	slow := core.EMASeries(vf, long)
	shift := long - short
	for i := range dst {
		dst[i] = fast[i+shift] - slow[i]
	}
}

// EMV writes Ease of Movement (lookback 1): the midpoint move divided by the
// box ratio volume/10000/(high-low). Zero volume yields 0.
func EMV(dst, high, low, volume []float64) {
	last := (high[0] + low[0]) / 2
	for i := 1; i < len(high); i++ {
		mid := (high[i] + low[i]) / 2
		dst[i-1] = core.SafeDiv((mid-last)*(high[i]-low[i]), volume[i]/10000, 0)
		last = mid
	}
}

// MarketFI writes the Market Facilitation Index (high-low)/volume.
func MarketFI(dst, high, low, volume []float64) {
	for i := range dst {
		dst[i] = core.SafeDiv(high[i]-low[i], volume[i], 0)
	}
}

// VOSC writes the Volume Oscillator, the percent difference between the short
// and long SMA of volume (lookback long-1).
func VOSC(dst, volume []float64, short, long int) {
	fast := core.SMASeries(volume, short)
	slow := core.SMASeries(volume, long)
	shift := long - short
	for i := range dst {
		dst[i] = 100 * core.SafeDiv(fast[i+shift]-slow[i], slow[i], 0)
	}
}
