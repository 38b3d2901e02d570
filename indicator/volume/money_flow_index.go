package volume

import "github.com/evdnx/tulip/indicator/core"

// MFI writes the Money Flow Index (lookback period). Raw money flow is the
// typical price times volume, classed positive or negative by the direction
// of the typical price; the result is
//   - 50 when neither positive nor negative flow exists in the window,
//   - 100·positive/(positive+negative) otherwise.
func MFI(dst, high, low, close, volume []float64, period int) {
	n := len(close)
	pos := make([]float64, n-1)
	neg := make([]float64, n-1)
	prev := (high[0] + low[0] + close[0]) / 3
	for i := 1; i < n; i++ {
		tp := (high[i] + low[i] + close[i]) / 3
		flow := tp * volume[i]
		switch {
		case tp > prev:
			pos[i-1] = flow
		case tp < prev:
			neg[i-1] = flow
		}
		prev = tp
	}

	up := core.Make(len(pos), period-1)
	down := core.Make(len(neg), period-1)
	core.Sum(up, pos, period)
	core.Sum(down, neg, period)
	for i := range dst {
		total := up[i] + down[i]
		if total == 0 {
			dst[i] = 50
			continue
		}
		dst[i] = core.Clamp(100*up[i]/total, 0, 100)
	}
}
