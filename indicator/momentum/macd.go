package momentum

import "github.com/evdnx/tulip/indicator/core"

// MACDLookback is the lookback of the long EMA chained with the signal EMA.
func MACDLookback(long, signal int) int { return long - 1 + signal - 1 }

// MACD writes the MACD line EMA(short)-EMA(long), its signal-period EMA, and
// their difference (histogram). All three outputs share one lookback.
func MACD(macd, signal, hist, src []float64, short, long, signalPeriod int) {
	line := emaSpread(src, short, long)
	sig := core.EMASeries(line, signalPeriod)
	off := signalPeriod - 1
	for i := range macd {
		macd[i] = line[i+off]
		signal[i] = sig[i]
		hist[i] = macd[i] - signal[i]
	}
}

// emaSpread returns EMA(short)-EMA(long) aligned on the long EMA, i.e. with
// lookback long-1.
func emaSpread(src []float64, short, long int) []float64 {
	fast := core.EMASeries(src, short)
	slow := core.EMASeries(src, long)
	shift := long - short
	out := make([]float64, len(slow))
	for i := range out {
		out[i] = fast[i+shift] - slow[i]
	}
	return out
}

// APO writes the Absolute Price Oscillator EMA(short)-EMA(long) (lookback
// long-1).
func APO(dst, src []float64, short, long int) {
	copy(dst, emaSpread(src, short, long))
}

// PPO writes the Percentage Price Oscillator, the APO relative to the long
// EMA (lookback long-1). A zero long EMA yields 0.
func PPO(dst, src []float64, short, long int) {
	fast := core.EMASeries(src, short)
	slow := core.EMASeries(src, long)
	shift := long - short
	for i := range dst {
		dst[i] = 100 * core.SafeDiv(fast[i+shift]-slow[i], slow[i], 0)
	}
}

// TRIXLookback is 3(period-1)+1.
func TRIXLookback(period int) int { return 3*(period-1) + 1 }

// TRIX writes the one-bar percent rate of change of a triple-smoothed EMA.
func TRIX(dst, src []float64, period int) {
	e3 := core.EMASeries(core.EMASeries(core.EMASeries(src, period), period), period)
	for i := range dst {
		dst[i] = 100 * core.SafeDiv(e3[i+1]-e3[i], e3[i], 0)
	}
}
