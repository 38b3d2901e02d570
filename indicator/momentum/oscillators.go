package momentum

import "github.com/evdnx/tulip/indicator/core"

// MOM writes src[i]-src[i-period] (lookback period).
func MOM(dst, src []float64, period int) {
	for i := period; i < len(src); i++ {
		dst[i-period] = src[i] - src[i-period]
	}
}

// ROC writes the rate of change (src[i]-src[i-period])/src[i-period].
func ROC(dst, src []float64, period int) {
	for i := period; i < len(src); i++ {
		dst[i-period] = core.SafeDiv(src[i]-src[i-period], src[i-period], 0)
	}
}

// ROCR writes the rate-of-change ratio src[i]/src[i-period].
func ROCR(dst, src []float64, period int) {
	for i := period; i < len(src); i++ {
		dst[i-period] = core.SafeDiv(src[i], src[i-period], 0)
	}
}

// AOLookback is the 34-bar slow window minus one.
const AOLookback = 33

// AO writes the Awesome Oscillator, SMA5 - SMA34 of the median price.
func AO(dst, high, low []float64) {
	mid := make([]float64, len(high))
	for i := range mid {
		mid[i] = (high[i] + low[i]) / 2
	}
	fast := core.SMASeries(mid, 5)
	slow := core.SMASeries(mid, 34)
	for i := range dst {
		dst[i] = fast[i+29] - slow[i]
	}
}

// BOP writes the Balance of Power (close-open)/(high-low), 0 on a flat bar.
func BOP(dst, open, high, low, close []float64) {
	for i := range dst {
		dst[i] = core.SafeDiv(close[i]-open[i], high[i]-low[i], 0)
	}
}

// DPOLookback is the larger of the SMA window and the displacement.
func DPOLookback(period int) int {
	return max(period-1, period/2+1)
}

// DPO writes the Detrended Price Oscillator: the price period/2+1 bars back
// minus the current period SMA.
func DPO(dst, src []float64, period int) {
	back := period/2 + 1
	start := DPOLookback(period)
	avg := core.SMASeries(src, period)
	for i := start; i < len(src); i++ {
		dst[i-start] = src[i-back] - avg[i-period+1]
	}
}

// QStick writes the period SMA of close-open (lookback period-1).
func QStick(dst, open, close []float64, period int) {
	body := make([]float64, len(close))
	for i := range body {
		body[i] = close[i] - open[i]
	}
	core.SMA(dst, body, period)
}

// FOSC writes the Forecast Oscillator (lookback period): the percentage
// error of the previous window's one-step time-series forecast.
func FOSC(dst, src []float64, period int) {
	var forecast float64
	next := float64(period + 1)
	core.Regression(src, period, func(i int, a, b float64) {
		if i >= period {
			dst[i-period] = 100 * core.SafeDiv(src[i]-forecast, src[i], 0)
		}
		forecast = a + b*next
	})
}
