package momentum

import "github.com/evdnx/tulip/indicator/core"

var (
	series = []string{"real"}
	hlc    = []string{"high", "low", "close"}
)

// single builds a one-input, one-period, one-output oscillator descriptor.
func single(name, fullName string, min int, lookback func(int) int, kernel func(dst, src []float64, period int)) *core.Indicator {
	return &core.Indicator{
		Name:     name,
		FullName: fullName,
		Kind:     core.Simple,
		Inputs:   series,
		Options:  []string{"period"},
		Outputs:  []string{name},
		Lookback: core.SinglePeriod(min, lookback),
		Kernel: func(in [][]float64, opts []float64, out [][]float64) {
			kernel(out[0], in[0], core.Int(opts, 0))
		},
	}
}

func hlcPeriod(name, fullName string, lookback func(int) int, kernel func(dst, high, low, close []float64, period int)) *core.Indicator {
	return &core.Indicator{
		Name:     name,
		FullName: fullName,
		Kind:     core.Simple,
		Inputs:   hlc,
		Options:  []string{"period"},
		Outputs:  []string{name},
		Lookback: core.SinglePeriod(1, lookback),
		Kernel: func(in [][]float64, opts []float64, out [][]float64) {
			kernel(out[0], in[0], in[1], in[2], core.Int(opts, 0))
		},
	}
}

func spread(name, fullName string, kernel func(dst, src []float64, short, long int)) *core.Indicator {
	return &core.Indicator{
		Name:     name,
		FullName: fullName,
		Kind:     core.Simple,
		Inputs:   series,
		Options:  []string{"short period", "long period"},
		Outputs:  []string{name},
		Lookback: func(opts []float64) (int, error) {
			_, long, err := core.ShortLong(opts)
			if err != nil {
				return 0, err
			}
			return long - 1, nil
		},
		Kernel: func(in [][]float64, opts []float64, out [][]float64) {
			kernel(out[0], in[0], core.Int(opts, 0), core.Int(opts, 1))
		},
	}
}

func macdLookback(opts []float64) (int, error) {
	_, long, err := core.ShortLong(opts)
	if err != nil {
		return 0, err
	}
	signal, err := core.Period(opts, 2, "signal period", 1)
	if err != nil {
		return 0, err
	}
	return MACDLookback(long, signal), nil
}

func stochLookback(opts []float64) (int, error) {
	k, err := core.Period(opts, 0, "%k period", 1)
	if err != nil {
		return 0, err
	}
	slow, err := core.Period(opts, 1, "%k slowing period", 1)
	if err != nil {
		return 0, err
	}
	d, err := core.Period(opts, 2, "%d period", 1)
	if err != nil {
		return 0, err
	}
	return StochLookback(k, slow, d), nil
}

func ultoscLookback(opts []float64) (int, error) {
	short, err := core.Period(opts, 0, "short period", 1)
	if err != nil {
		return 0, err
	}
	medium, err := core.Period(opts, 1, "medium period", 1)
	if err != nil {
		return 0, err
	}
	long, err := core.Period(opts, 2, "long period", 1)
	if err != nil {
		return 0, err
	}
	if err := core.Ordered("short period", short, "medium period", medium); err != nil {
		return 0, err
	}
	if err := core.Ordered("medium period", medium, "long period", long); err != nil {
		return 0, err
	}
	return long, nil
}

// Indicators returns the momentum and oscillator descriptors.
func Indicators() []*core.Indicator {
	return []*core.Indicator{
		single("rsi", "Relative Strength Index", 1, core.Identity, RSI),
		single("stochrsi", "Stochastic RSI", 1, StochRSILookback, StochRSI),
		single("cmo", "Chande Momentum Oscillator", 1, core.Identity, CMO),
		single("mom", "Momentum", 1, core.Identity, MOM),
		single("roc", "Rate of Change", 1, core.Identity, ROC),
		single("rocr", "Rate of Change Ratio", 1, core.Identity, ROCR),
		single("trix", "Trix", 1, TRIXLookback, TRIX),
		single("dpo", "Detrended Price Oscillator", 1, DPOLookback, DPO),
		single("fosc", "Forecast Oscillator", 2, core.Identity, FOSC),
		spread("apo", "Absolute Price Oscillator", APO),
		spread("ppo", "Percentage Price Oscillator", PPO),
		hlcPeriod("cci", "Commodity Channel Index", CCILookback, CCI),
		hlcPeriod("willr", "Williams %R", core.Minus1, WillR),
		{
			Name:     "macd",
			FullName: "Moving Average Convergence/Divergence",
			Kind:     core.Simple,
			Inputs:   series,
			Options:  []string{"short period", "long period", "signal period"},
			Outputs:  []string{"macd", "macd_signal", "macd_histogram"},
			Lookback: macdLookback,
			Kernel: func(in [][]float64, opts []float64, out [][]float64) {
				MACD(out[0], out[1], out[2], in[0], core.Int(opts, 0), core.Int(opts, 1), core.Int(opts, 2))
			},
		},
		{
			Name:     "stoch",
			FullName: "Stochastic Oscillator",
			Kind:     core.Simple,
			Inputs:   hlc,
			Options:  []string{"%k period", "%k slowing period", "%d period"},
			Outputs:  []string{"stoch_k", "stoch_d"},
			Lookback: stochLookback,
			Kernel: func(in [][]float64, opts []float64, out [][]float64) {
				Stoch(out[0], out[1], in[0], in[1], in[2], core.Int(opts, 0), core.Int(opts, 1), core.Int(opts, 2))
			},
		},
		{
			Name:     "ultosc",
			FullName: "Ultimate Oscillator",
			Kind:     core.Simple,
			Inputs:   hlc,
			Options:  []string{"short period", "medium period", "long period"},
			Outputs:  []string{"ultosc"},
			Lookback: ultoscLookback,
			Kernel: func(in [][]float64, opts []float64, out [][]float64) {
				UltOsc(out[0], in[0], in[1], in[2], core.Int(opts, 0), core.Int(opts, 1), core.Int(opts, 2))
			},
		},
		{
			Name:     "ao",
			FullName: "Awesome Oscillator",
			Kind:     core.Simple,
			Inputs:   []string{"high", "low"},
			Outputs:  []string{"ao"},
			Lookback: core.Fixed(AOLookback),
			Kernel: func(in [][]float64, _ []float64, out [][]float64) {
				AO(out[0], in[0], in[1])
			},
		},
		{
			Name:     "bop",
			FullName: "Balance of Power",
			Kind:     core.Simple,
			Inputs:   []string{"open", "high", "low", "close"},
			Outputs:  []string{"bop"},
			Lookback: core.Fixed(0),
			Kernel: func(in [][]float64, _ []float64, out [][]float64) {
				BOP(out[0], in[0], in[1], in[2], in[3])
			},
		},
		{
			Name:     "fisher",
			FullName: "Fisher Transform",
			Kind:     core.Simple,
			Inputs:   []string{"high", "low"},
			Options:  []string{"period"},
			Outputs:  []string{"fisher", "fisher_signal"},
			Lookback: core.SinglePeriod(1, core.Minus1),
			Kernel: func(in [][]float64, opts []float64, out [][]float64) {
				Fisher(out[0], out[1], in[0], in[1], core.Int(opts, 0))
			},
		},
		{
			Name:     "msw",
			FullName: "Mesa Sine Wave",
			Kind:     core.Simple,
			Inputs:   series,
			Options:  []string{"period"},
			Outputs:  []string{"msw_sine", "msw_lead"},
			Lookback: core.SinglePeriod(1, core.Identity),
			Kernel: func(in [][]float64, opts []float64, out [][]float64) {
				MSW(out[0], out[1], in[0], core.Int(opts, 0))
			},
		},
		{
			Name:     "qstick",
			FullName: "Qstick",
			Kind:     core.Simple,
			Inputs:   []string{"open", "close"},
			Options:  []string{"period"},
			Outputs:  []string{"qstick"},
			Lookback: core.SinglePeriod(1, core.Minus1),
			Kernel: func(in [][]float64, opts []float64, out [][]float64) {
				QStick(out[0], in[0], in[1], core.Int(opts, 0))
			},
		},
	}
}
