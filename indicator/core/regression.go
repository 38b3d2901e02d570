package core

// Regression fits y = a + b·x by least squares over every trailing window
// of period samples, with x running 1..period (oldest to newest). visit is
// called with the src index of the window's newest sample.
//
// The weighted sum Σx·y slides in O(1) the same way WMA does.
func Regression(src []float64, period int, visit func(i int, a, b float64)) {
	p := float64(period)
	x := p * (p + 1) / 2
	x2 := p * (p + 1) * (2*p + 1) / 6
	den := p*x2 - x*x

	var y, xy KahanSum
	for i := 0; i < period-1; i++ {
		y.Add(src[i])
		xy.Add(src[i] * float64(i+1))
	}
	for i := period - 1; i < len(src); i++ {
		y.Add(src[i])
		xy.Add(src[i] * p)

		sy, sxy := y.Value(), xy.Value()
		b := SafeDiv(p*sxy-x*sy, den, 0)
		a := (sy - b*x) / p
		visit(i, a, b)

		xy.Sub(y)
		y.Add(-src[i-period+1])
	}
}
