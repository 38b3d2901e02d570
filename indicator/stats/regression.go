package stats

import "github.com/evdnx/tulip/indicator/core"

// The regression family fits each trailing window with x = 1..period and
// evaluates the fit (lookback period-1).

// LinReg writes the fitted value at the newest bar, a + b·period.
func LinReg(dst, src []float64, period int) {
	at := float64(period)
	core.Regression(src, period, func(i int, a, b float64) {
		dst[i-period+1] = a + b*at
	})
}

// LinRegIntercept writes the intercept a.
func LinRegIntercept(dst, src []float64, period int) {
	core.Regression(src, period, func(i int, a, _ float64) {
		dst[i-period+1] = a
	})
}

// LinRegSlope writes the slope b.
func LinRegSlope(dst, src []float64, period int) {
	core.Regression(src, period, func(i int, _, b float64) {
		dst[i-period+1] = b
	})
}

// TSF writes the one-bar-ahead forecast a + b·(period+1).
func TSF(dst, src []float64, period int) {
	next := float64(period + 1)
	core.Regression(src, period, func(i int, a, b float64) {
		dst[i-period+1] = a + b*next
	})
}
