package volatility

import "github.com/evdnx/tulip/indicator/core"

var hlc = []string{"high", "low", "close"}

func windowed(name, fullName string, min int, kernel func(dst, src []float64, period int)) *core.Indicator {
	return &core.Indicator{
		Name:     name,
		FullName: fullName,
		Kind:     core.Math,
		Inputs:   []string{"real"},
		Options:  []string{"period"},
		Outputs:  []string{name},
		Lookback: core.SinglePeriod(min, core.Minus1),
		Kernel: func(in [][]float64, opts []float64, out [][]float64) {
			kernel(out[0], in[0], core.Int(opts, 0))
		},
	}
}

func bbandsLookback(opts []float64) (int, error) {
	p, err := core.Period(opts, 0, "period", 1)
	if err != nil {
		return 0, err
	}
	if _, err := core.Positive(opts, 1, "stddev"); err != nil {
		return 0, err
	}
	return p - 1, nil
}

// Indicators returns the volatility descriptors.
func Indicators() []*core.Indicator {
	return []*core.Indicator{
		{
			Name:     "bbands",
			FullName: "Bollinger Bands",
			Kind:     core.Overlay,
			Inputs:   []string{"real"},
			Options:  []string{"period", "stddev"},
			Outputs:  []string{"bbands_lower", "bbands_middle", "bbands_upper"},
			Lookback: bbandsLookback,
			Kernel: func(in [][]float64, opts []float64, out [][]float64) {
				BBands(out[0], out[1], out[2], in[0], core.Int(opts, 0), opts[1])
			},
		},
		{
			Name:     "atr",
			FullName: "Average True Range",
			Kind:     core.Simple,
			Inputs:   hlc,
			Options:  []string{"period"},
			Outputs:  []string{"atr"},
			Lookback: core.SinglePeriod(1, core.Minus1),
			Kernel: func(in [][]float64, opts []float64, out [][]float64) {
				ATR(out[0], in[0], in[1], in[2], core.Int(opts, 0))
			},
		},
		{
			Name:     "natr",
			FullName: "Normalized Average True Range",
			Kind:     core.Simple,
			Inputs:   hlc,
			Options:  []string{"period"},
			Outputs:  []string{"natr"},
			Lookback: core.SinglePeriod(1, core.Minus1),
			Kernel: func(in [][]float64, opts []float64, out [][]float64) {
				NATR(out[0], in[0], in[1], in[2], core.Int(opts, 0))
			},
		},
		{
			Name:     "tr",
			FullName: "True Range",
			Kind:     core.Simple,
			Inputs:   hlc,
			Outputs:  []string{"tr"},
			Lookback: core.Fixed(0),
			Kernel: func(in [][]float64, _ []float64, out [][]float64) {
				TR(out[0], in[0], in[1], in[2])
			},
		},
		windowed("var", "Variance", 2, Var),
		windowed("stddev", "Standard Deviation Over Period", 2, StdDev),
		windowed("stderr", "Standard Error Over Period", 2, StdErr),
		windowed("md", "Mean Deviation Over Period", 1, MD),
		{
			Name:     "volatility",
			FullName: "Annualized Historical Volatility",
			Kind:     core.Simple,
			Inputs:   []string{"real"},
			Options:  []string{"period"},
			Outputs:  []string{"volatility"},
			Lookback: core.SinglePeriod(1, core.Identity),
			Kernel: func(in [][]float64, opts []float64, out [][]float64) {
				Volatility(out[0], in[0], core.Int(opts, 0))
			},
		},
	}
}
