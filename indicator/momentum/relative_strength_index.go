package momentum

import "github.com/evdnx/tulip/indicator/core"

// gainLoss splits a close-to-close change into its upward and downward parts,
// both non-negative.
func gainLoss(diff float64) (gain, loss float64) {
	if diff > 0 {
		return diff, 0
	}
	return 0, -diff
}

// rsiValue maps smoothed gains and losses onto [0, 100]; no movement at all
// is neutral (50).
func rsiValue(gain, loss float64) float64 {
	if gain+loss == 0 {
		return 50
	}
	return core.Clamp(100*gain/(gain+loss), 0, 100)
}

// RSI writes the Relative Strength Index (lookback period). This follows
// J. Wilder's formulation:
//   - The first value is based on a simple average of gains/losses over the
//     first period changes.
//   - Subsequent values use Wilder's smoothing, combining the previous average
//     with the single most-recent gain/loss.
func RSI(dst, src []float64, period int) {
	p := float64(period)
	var gain, loss float64
	for i := 1; i <= period; i++ {
		g, l := gainLoss(src[i] - src[i-1])
		gain += g
		loss += l
	}
	gain /= p
	loss /= p
	dst[0] = rsiValue(gain, loss)

	for i := period + 1; i < len(src); i++ {
		g, l := gainLoss(src[i] - src[i-1])
		gain = (gain*(p-1) + g) / p
		loss = (loss*(p-1) + l) / p
		dst[i-period] = rsiValue(gain, loss)
	}
}

// StochRSILookback is 2·period-1.
func StochRSILookback(period int) int { return 2*period - 1 }

// StochRSI places each RSI value within the range of the trailing period RSI
// values, as a fraction in [0, 1]. A flat RSI window yields 0.
func StochRSI(dst, src []float64, period int) {
	rsi := core.Make(len(src), period)
	RSI(rsi, src, period)

	hi := make([]float64, len(dst))
	lo := make([]float64, len(dst))
	core.WindowMax(hi, rsi, period)
	core.WindowMin(lo, rsi, period)
	for i := range dst {
		r := rsi[i+period-1]
		dst[i] = core.SafeDiv(r-lo[i], hi[i]-lo[i], 0)
	}
}

// CMO writes the Chande Momentum Oscillator, 100·(up-down)/(up+down) over
// the trailing period changes (lookback period).
func CMO(dst, src []float64, period int) {
	var up, down core.KahanSum
	for i := 1; i <= period; i++ {
		g, l := gainLoss(src[i] - src[i-1])
		up.Add(g)
		down.Add(l)
	}
	dst[0] = cmoValue(up.Value(), down.Value())

	for i := period + 1; i < len(src); i++ {
		g, l := gainLoss(src[i] - src[i-1])
		up.Add(g)
		down.Add(l)
		g, l = gainLoss(src[i-period] - src[i-period-1])
		up.Add(-g)
		down.Add(-l)
		dst[i-period] = cmoValue(up.Value(), down.Value())
	}
}

func cmoValue(up, down float64) float64 {
	return 100 * core.SafeDiv(up-down, up+down, 0)
}
