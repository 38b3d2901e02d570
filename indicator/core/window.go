package core

import "math"

// Welford tracks the mean and the sum of squared deviations of a window.
// Replace slides a full window by one sample without re-summing, which keeps
// the error bounded on long series where sum-of-squares minus squared-sum
// would cancel catastrophically.
type Welford struct {
	n    int
	mean float64
	m2   float64
}

// Push grows the window by one sample.
func (w *Welford) Push(x float64) {
	w.n++
	d := x - w.mean
	w.mean += d / float64(w.n)
	w.m2 += d * (x - w.mean)
}

// Replace swaps the outgoing sample old for x, keeping the window size.
func (w *Welford) Replace(old, x float64) {
	d := x - old
	prev := w.mean
	w.mean += d / float64(w.n)
	w.m2 += d * (x - w.mean + old - prev)
	if w.m2 < 0 {
		w.m2 = 0
	}
}

// Mean returns the window mean.
func (w *Welford) Mean() float64 { return w.mean }

// Variance returns the population variance of the window.
func (w *Welford) Variance() float64 {
	if w.n == 0 || w.m2 <= 0 {
		return 0
	}
	return w.m2 / float64(w.n)
}

// StdDev returns the population standard deviation of the window.
func (w *Welford) StdDev() float64 { return math.Sqrt(w.Variance()) }

// Variance writes the population variance of each trailing window.
func Variance(dst, src []float64, period int) {
	var w Welford
	for i := 0; i < period; i++ {
		w.Push(src[i])
	}
	dst[0] = w.Variance()
	for i := period; i < len(src); i++ {
		w.Replace(src[i-period], src[i])
		dst[i-period+1] = w.Variance()
	}
}

// StdDev writes the population standard deviation of each trailing window.
func StdDev(dst, src []float64, period int) {
	Variance(dst, src, period)
	for i, v := range dst {
		dst[i] = math.Sqrt(v)
	}
}

// WindowMaxIndex writes, for every full trailing window, the index into src
// of its largest value. Ties resolve to the most recent index.
func WindowMaxIndex(dst []int, src []float64, period int) {
	windowExtreme(dst, src, period, func(a, b float64) bool { return a > b })
}

// WindowMinIndex is WindowMaxIndex for the smallest value.
func WindowMinIndex(dst []int, src []float64, period int) {
	windowExtreme(dst, src, period, func(a, b float64) bool { return a < b })
}

// windowExtreme keeps a monotonic deque of candidate indices so each sample
// is pushed and popped once.
func windowExtreme(dst []int, src []float64, period int, better func(a, b float64) bool) {
	dq := make([]int, 0, period)
	for i, v := range src {
		for len(dq) > 0 && !better(src[dq[len(dq)-1]], v) {
			dq = dq[:len(dq)-1]
		}
		dq = append(dq, i)
		if dq[0] <= i-period {
			dq = dq[1:]
		}
		if i >= period-1 {
			dst[i-period+1] = dq[0]
		}
	}
}

// WindowMax writes the maximum of each trailing window.
func WindowMax(dst, src []float64, period int) {
	idx := make([]int, len(dst))
	WindowMaxIndex(idx, src, period)
	for i, j := range idx {
		dst[i] = src[j]
	}
}

// WindowMin writes the minimum of each trailing window.
func WindowMin(dst, src []float64, period int) {
	idx := make([]int, len(dst))
	WindowMinIndex(idx, src, period)
	for i, j := range idx {
		dst[i] = src[j]
	}
}
