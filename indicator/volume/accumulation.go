package volume

import (
	"math"

	"github.com/evdnx/tulip/indicator/core"
)

// OBV writes On Balance Volume. The running total starts at the first bar's
// volume; each later bar adds its volume on an up close, subtracts it on a
// down close and carries the total on an unchanged close.
func OBV(dst, close, volume []float64) {
	sum := volume[0]
	dst[0] = sum
	for i := 1; i < len(close); i++ {
		switch {
		case close[i] > close[i-1]:
			sum += volume[i]
		case close[i] < close[i-1]:
			sum -= volume[i]
		}
		dst[i] = sum
	}
}

// clv is the close location value in [-1, 1]; a flat bar scores 0.
func clv(high, low, close float64) float64 {
	return core.SafeDiv((close-low)-(high-close), high-low, 0)
}

// AD writes the Accumulation/Distribution line.
func AD(dst, high, low, close, volume []float64) {
	var sum float64
	for i := range dst {
		sum += clv(high[i], low[i], close[i]) * volume[i]
		dst[i] = sum
	}
}

// ADOSC writes the Chaikin oscillator, EMA(short)-EMA(long) of the A/D line
// (lookback long-1).
func ADOSC(dst, high, low, close, volume []float64, short, long int) {
	ad := make([]float64, len(close))
	AD(ad, high, low, close, volume)
	fast := core.EMASeries(ad, short)
	slow := core.EMASeries(ad, long)
	shift := long - short
	for i := range dst {
		dst[i] = fast[i+shift] - slow[i]
	}
}

// IndexBase is the starting level of PVI and NVI.
const IndexBase = 1000

// PVI writes the Positive Volume Index: it moves with the close only on bars
// whose volume rose.
func PVI(dst, close, volume []float64) {
	volumeIndex(dst, close, volume, func(cur, prev float64) bool { return cur > prev })
}

// NVI writes the Negative Volume Index: it moves with the close only on bars
// whose volume fell.
func NVI(dst, close, volume []float64) {
	volumeIndex(dst, close, volume, func(cur, prev float64) bool { return cur < prev })
}

func volumeIndex(dst, close, volume []float64, moves func(cur, prev float64) bool) {
	idx := float64(IndexBase)
	dst[0] = idx
	for i := 1; i < len(close); i++ {
		if moves(volume[i], volume[i-1]) {
			idx += idx * core.SafeDiv(close[i]-close[i-1], close[i-1], 0)
		}
		dst[i] = idx
	}
}

// WAD writes Williams Accumulation/Distribution (lookback 1), accumulating
// the close's distance from the true low on up bars and from the true high
// on down bars.
func WAD(dst, high, low, close []float64) {
	var sum float64
	for i := 1; i < len(close); i++ {
		c, prev := close[i], close[i-1]
		switch {
		case c > prev:
			sum += c - math.Min(prev, low[i])
		case c < prev:
			sum += c - math.Max(prev, high[i])
		}
		dst[i-1] = sum
	}
}
