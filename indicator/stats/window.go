package stats

import "github.com/evdnx/tulip/indicator/core"

// Lag writes src delayed by period bars.
func Lag(dst, src []float64, period int) {
	copy(dst, src[:len(src)-period])
}

// Max writes the trailing period maximum.
func Max(dst, src []float64, period int) { core.WindowMax(dst, src, period) }

// Min writes the trailing period minimum.
func Min(dst, src []float64, period int) { core.WindowMin(dst, src, period) }

// Sum writes the trailing period sum.
func Sum(dst, src []float64, period int) { core.Sum(dst, src, period) }

// Decay writes a linear decay: each value is the larger of the input and the
// previous output minus 1/period.
func Decay(dst, src []float64, period int) {
	step := 1 / float64(period)
	dst[0] = src[0]
	for i := 1; i < len(src); i++ {
		dst[i] = max(src[i], dst[i-1]-step)
	}
}

// EDecay writes an exponential decay: each value is the larger of the input
// and the previous output scaled by 1-1/period.
func EDecay(dst, src []float64, period int) {
	keep := 1 - 1/float64(period)
	dst[0] = src[0]
	for i := 1; i < len(src); i++ {
		dst[i] = max(src[i], dst[i-1]*keep)
	}
}
