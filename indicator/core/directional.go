package core

import "math"

// TrueRange returns the greatest of high-low, |high-prevClose| and
// |low-prevClose| at index i ≥ 1. At i == 0 it is high-low.
func TrueRange(high, low, close []float64, i int) float64 {
	tr := high[i] - low[i]
	if i == 0 {
		return tr
	}
	prev := close[i-1]
	if v := math.Abs(high[i] - prev); v > tr {
		tr = v
	}
	if v := math.Abs(low[i] - prev); v > tr {
		tr = v
	}
	return tr
}

// DirectionalMovement returns Wilder's +DM and -DM at index i ≥ 1. Only the
// larger positive move survives; the other is zeroed.
func DirectionalMovement(high, low []float64, i int) (plus, minus float64) {
	plus = high[i] - high[i-1]
	minus = low[i-1] - low[i]
	if plus < 0 {
		plus = 0
	} else if plus > minus {
		minus = 0
	}
	if minus < 0 {
		minus = 0
	} else if minus > plus {
		plus = 0
	}
	return plus, minus
}

// DirectionalSums calls visit for every i ≥ period-1 with the Wilder-summed
// +DM, -DM and true range. The first call carries plain sums over bars
// 1..period-1; each later bar decays the running sums by (period-1)/period
// before adding the new bar.
func DirectionalSums(high, low, close []float64, period int, visit func(i int, plus, minus, tr float64)) {
	per := float64(period-1) / float64(period)
	var plus, minus, tr float64
	for i := 1; i < period; i++ {
		p, m := DirectionalMovement(high, low, i)
		plus += p
		minus += m
		if close != nil {
			tr += TrueRange(high, low, close, i)
		}
	}
	visit(period-1, plus, minus, tr)
	for i := period; i < len(high); i++ {
		p, m := DirectionalMovement(high, low, i)
		plus = plus*per + p
		minus = minus*per + m
		if close != nil {
			tr = tr*per + TrueRange(high, low, close, i)
		}
		visit(i, plus, minus, tr)
	}
}
