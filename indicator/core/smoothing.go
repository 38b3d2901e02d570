package core

/* -------------------------------------------------------------------------
   Shared smoothing kernels.

   Every kernel here writes len(src)-lookback values into dst, where the
   lookback of a trailing window of n samples is n-1. Callers size dst with
   Make and guarantee len(src) > lookback.
--------------------------------------------------------------------------*/

// Make allocates an output buffer for n input samples and the given
// lookback. It returns an empty slice when no output can be produced.
func Make(n, lookback int) []float64 {
	if n <= lookback {
		return []float64{}
	}
	return make([]float64, n-lookback)
}

// KahanSum is a compensated running sum. Sliding windows add the incoming
// sample and add the negated outgoing one.
type KahanSum struct {
	sum  float64
	comp float64
}

// Add accumulates v.
func (k *KahanSum) Add(v float64) {
	y := v - k.comp
	t := k.sum + y
	k.comp = (t - k.sum) - y
	k.sum = t
}

// Value returns the compensated sum.
func (k *KahanSum) Value() float64 { return k.sum }

// Sub subtracts another running sum, carrying its compensation along.
func (k *KahanSum) Sub(o KahanSum) {
	k.Add(-o.sum)
	k.Add(o.comp)
}

// SMA writes the arithmetic mean of each trailing window of period samples.
func SMA(dst, src []float64, period int) {
	var sum KahanSum
	div := float64(period)
	for i := 0; i < period-1; i++ {
		sum.Add(src[i])
	}
	for i := period - 1; i < len(src); i++ {
		sum.Add(src[i])
		dst[i-period+1] = sum.Value() / div
		sum.Add(-src[i-period+1])
	}
}

// Sum writes the sum of each trailing window of period samples.
func Sum(dst, src []float64, period int) {
	var sum KahanSum
	for i := 0; i < period-1; i++ {
		sum.Add(src[i])
	}
	for i := period - 1; i < len(src); i++ {
		sum.Add(src[i])
		dst[i-period+1] = sum.Value()
		sum.Add(-src[i-period+1])
	}
}

// WMA writes the linearly weighted mean of each trailing window, the newest
// sample weighted period and the oldest weighted 1.
func WMA(dst, src []float64, period int) {
	p := float64(period)
	weights := p * (p + 1) / 2
	var sum, wsum KahanSum
	for i := 0; i < period-1; i++ {
		wsum.Add(src[i] * float64(i+1))
		sum.Add(src[i])
	}
	for i := period - 1; i < len(src); i++ {
		wsum.Add(src[i] * p)
		sum.Add(src[i])
		dst[i-period+1] = wsum.Value() / weights
		// Every remaining sample loses one unit of weight.
		wsum.Sub(sum)
		sum.Add(-src[i-period+1])
	}
}

// EMA writes the exponential moving average with α = 2/(period+1), seeded
// with the simple mean of the first period samples.
func EMA(dst, src []float64, period int) {
	smooth(dst, src, period, 2.0/float64(period+1))
}

// Wilders writes Wilder's smoothing (α = 1/period), seeded with the simple
// mean of the first period samples.
func Wilders(dst, src []float64, period int) {
	smooth(dst, src, period, 1.0/float64(period))
}

func smooth(dst, src []float64, period int, alpha float64) {
	var seed KahanSum
	for i := 0; i < period; i++ {
		seed.Add(src[i])
	}
	v := seed.Value() / float64(period)
	dst[0] = v
	for i := period; i < len(src); i++ {
		v += alpha * (src[i] - v)
		dst[i-period+1] = v
	}
}

// EMASeries allocates and returns EMA(src, period). The result is empty when
// src is not longer than period-1.
func EMASeries(src []float64, period int) []float64 {
	out := Make(len(src), period-1)
	if len(out) > 0 {
		EMA(out, src, period)
	}
	return out
}

// SMASeries allocates and returns SMA(src, period).
func SMASeries(src []float64, period int) []float64 {
	out := Make(len(src), period-1)
	if len(out) > 0 {
		SMA(out, src, period)
	}
	return out
}

// WMASeries allocates and returns WMA(src, period).
func WMASeries(src []float64, period int) []float64 {
	out := Make(len(src), period-1)
	if len(out) > 0 {
		WMA(out, src, period)
	}
	return out
}
