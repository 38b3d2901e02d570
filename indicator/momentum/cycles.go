package momentum

import (
	"math"

	"github.com/evdnx/tulip/indicator/core"
)

// Fisher writes the Fisher Transform and its one-bar-delayed signal line
// (lookback period-1). The median price is normalised into the trailing
// period range, smoothed, clipped to ±0.999 and mapped through the inverse
// hyperbolic tangent.
func Fisher(fisher, signal, high, low []float64, period int) {
	mid := make([]float64, len(high))
	for i := range mid {
		mid[i] = 0.5 * (high[i] + low[i])
	}
	hi := make([]float64, len(fisher))
	lo := make([]float64, len(fisher))
	core.WindowMax(hi, mid, period)
	core.WindowMin(lo, mid, period)

	var val, fish float64
	for j := range fisher {
		i := j + period - 1
		rng := hi[j] - lo[j]
		if rng == 0 {
			rng = 0.001
		}
		val = 0.33*2*((mid[i]-lo[j])/rng-0.5) + 0.67*val
		if val > 0.99 {
			val = 0.999
		} else if val < -0.99 {
			val = -0.999
		}
		signal[j] = fish
		fish = 0.5*math.Log((1+val)/(1-val)) + 0.5*fish
		fisher[j] = fish
	}
}

// MSW writes the Mesa Sine Wave and its lead line (lookback period). The
// dominant-cycle phase comes from a single-bin DFT over the trailing period
// samples; lead is advanced by 45°.
func MSW(sine, lead, src []float64, period int) {
	cos := make([]float64, period)
	sin := make([]float64, period)
	for j := range cos {
		a := 2 * math.Pi * float64(j) / float64(period)
		cos[j], sin[j] = math.Cos(a), math.Sin(a)
	}

	for i := period; i < len(src); i++ {
		var rp, ip float64
		for j := 0; j < period; j++ {
			w := src[i-j]
			rp += cos[j] * w
			ip += sin[j] * w
		}

		var phase float64
		switch {
		case math.Abs(rp) > 0.001:
			phase = math.Atan(ip / rp)
		case ip < 0:
			phase = -math.Pi
		default:
			phase = math.Pi
		}
		if rp < 0 {
			phase += math.Pi
		}
		phase += math.Pi / 2
		if phase < 0 {
			phase += 2 * math.Pi
		}
		if phase > 2*math.Pi {
			phase -= 2 * math.Pi
		}

		sine[i-period] = math.Sin(phase)
		lead[i-period] = math.Sin(phase + math.Pi/4)
	}
}
