package stats

import "github.com/evdnx/tulip/indicator/core"

func periodic(name, fullName string, kind core.Kind, min int, lookback func(int) int, kernel func(dst, src []float64, period int)) *core.Indicator {
	return &core.Indicator{
		Name:     name,
		FullName: fullName,
		Kind:     kind,
		Inputs:   []string{"real"},
		Options:  []string{"period"},
		Outputs:  []string{name},
		Lookback: core.SinglePeriod(min, lookback),
		Kernel: func(in [][]float64, opts []float64, out [][]float64) {
			kernel(out[0], in[0], core.Int(opts, 0))
		},
	}
}

func zero(int) int { return 0 }

// Indicators returns the price-transform, window and regression descriptors.
func Indicators() []*core.Indicator {
	return []*core.Indicator{
		{
			Name: "avgprice", FullName: "Average Price", Kind: core.Overlay,
			Inputs: []string{"open", "high", "low", "close"}, Outputs: []string{"avgprice"},
			Lookback: core.Fixed(0),
			Kernel: func(in [][]float64, _ []float64, out [][]float64) {
				AvgPrice(out[0], in[0], in[1], in[2], in[3])
			},
		},
		{
			Name: "medprice", FullName: "Median Price", Kind: core.Overlay,
			Inputs: []string{"high", "low"}, Outputs: []string{"medprice"},
			Lookback: core.Fixed(0),
			Kernel: func(in [][]float64, _ []float64, out [][]float64) {
				MedPrice(out[0], in[0], in[1])
			},
		},
		{
			Name: "typprice", FullName: "Typical Price", Kind: core.Overlay,
			Inputs: []string{"high", "low", "close"}, Outputs: []string{"typprice"},
			Lookback: core.Fixed(0),
			Kernel: func(in [][]float64, _ []float64, out [][]float64) {
				TypPrice(out[0], in[0], in[1], in[2])
			},
		},
		{
			Name: "wcprice", FullName: "Weighted Close Price", Kind: core.Overlay,
			Inputs: []string{"high", "low", "close"}, Outputs: []string{"wcprice"},
			Lookback: core.Fixed(0),
			Kernel: func(in [][]float64, _ []float64, out [][]float64) {
				WCPrice(out[0], in[0], in[1], in[2])
			},
		},
		periodic("lag", "Lag", core.Math, 1, core.Identity, Lag),
		periodic("max", "Maximum In Period", core.Math, 1, core.Minus1, Max),
		periodic("min", "Minimum In Period", core.Math, 1, core.Minus1, Min),
		periodic("sum", "Sum Over Period", core.Math, 1, core.Minus1, Sum),
		periodic("decay", "Linear Decay", core.Math, 1, zero, Decay),
		periodic("edecay", "Exponential Decay", core.Math, 1, zero, EDecay),
		periodic("linreg", "Linear Regression", core.Overlay, 2, core.Minus1, LinReg),
		periodic("linregintercept", "Linear Regression Intercept", core.Math, 2, core.Minus1, LinRegIntercept),
		periodic("linregslope", "Linear Regression Slope", core.Math, 2, core.Minus1, LinRegSlope),
		periodic("tsf", "Time Series Forecast", core.Overlay, 2, core.Minus1, TSF),
	}
}
