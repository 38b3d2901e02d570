package volume

import "github.com/evdnx/tulip/indicator/core"

// VWMA writes the volume-weighted moving average of close over each trailing
// window (lookback period-1). A window without volume yields 0.
func VWMA(dst, close, volume []float64, period int) {
	var pv, v core.KahanSum
	for i := 0; i < period-1; i++ {
		pv.Add(close[i] * volume[i])
		v.Add(volume[i])
	}
	for i := period - 1; i < len(close); i++ {
		pv.Add(close[i] * volume[i])
		v.Add(volume[i])
		dst[i-period+1] = core.SafeDiv(pv.Value(), v.Value(), 0)
		j := i - period + 1
		pv.Add(-close[j] * volume[j])
		v.Add(-volume[j])
	}
}
