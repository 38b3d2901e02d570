package trend

import "github.com/evdnx/tulip/indicator/core"

// Aroon writes Aroon Down and Aroon Up (lookback period). Each looks back over
// the last period+1 bars and scores how recently the lowest low or highest
// high occurred: 100 on the current bar, 0 period bars ago. Ties count as the
// most recent bar.
func Aroon(down, up, high, low []float64, period int) {
	hi := make([]int, len(up))
	lo := make([]int, len(down))
	core.WindowMaxIndex(hi, high, period+1)
	core.WindowMinIndex(lo, low, period+1)

	scale := 100 / float64(period)
	for j := range up {
		i := j + period
		up[j] = float64(period-(i-hi[j])) * scale
		down[j] = float64(period-(i-lo[j])) * scale
	}
}

// AroonOsc writes Aroon Up minus Aroon Down.
func AroonOsc(dst, high, low []float64, period int) {
	down := make([]float64, len(dst))
	Aroon(down, dst, high, low, period)
	for i := range dst {
		dst[i] -= down[i]
	}
}
