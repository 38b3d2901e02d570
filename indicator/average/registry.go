package average

import (
	"fmt"

	"github.com/evdnx/tulip/indicator/core"
)

func periodic(name, fullName string, min int, lookback func(int) int, kernel func(dst, src []float64, period int)) *core.Indicator {
	return &core.Indicator{
		Name:     name,
		FullName: fullName,
		Kind:     core.Overlay,
		Inputs:   []string{"real"},
		Options:  []string{"period"},
		Outputs:  []string{name},
		Lookback: core.SinglePeriod(min, lookback),
		Kernel: func(in [][]float64, opts []float64, out [][]float64) {
			kernel(out[0], in[0], core.Int(opts, 0))
		},
	}
}

func vidyaLookback(opts []float64) (int, error) {
	_, long, err := core.ShortLong(opts)
	if err != nil {
		return 0, err
	}
	alpha, err := core.Positive(opts, 2, "alpha")
	if err != nil {
		return 0, err
	}
	if alpha > 1 {
		return 0, fmt.Errorf("%w: alpha must be at most 1, got %v", core.ErrInvalidOption, alpha)
	}
	return VIDYALookback(long), nil
}

// Indicators returns the moving-average descriptors.
func Indicators() []*core.Indicator {
	return []*core.Indicator{
		periodic("sma", "Simple Moving Average", 1, core.Minus1, SMA),
		periodic("wma", "Weighted Moving Average", 1, core.Minus1, WMA),
		periodic("ema", "Exponential Moving Average", 1, core.Minus1, EMA),
		periodic("dema", "Double Exponential Moving Average", 1, DEMALookback, DEMA),
		periodic("tema", "Triple Exponential Moving Average", 1, TEMALookback, TEMA),
		periodic("trima", "Triangular Moving Average", 1, core.Minus1, TRIMA),
		periodic("kama", "Kaufman Adaptive Moving Average", 1, KAMALookback, KAMA),
		periodic("hma", "Hull Moving Average", 2, HMALookback, HMA),
		periodic("zlema", "Zero-Lag Exponential Moving Average", 1, ZLEMALookback, ZLEMA),
		periodic("wilders", "Wilders Smoothing", 1, core.Minus1, Wilders),
		{
			Name:     "vidya",
			FullName: "Variable Index Dynamic Average",
			Kind:     core.Overlay,
			Inputs:   []string{"real"},
			Options:  []string{"short period", "long period", "alpha"},
			Outputs:  []string{"vidya"},
			Lookback: vidyaLookback,
			Kernel: func(in [][]float64, opts []float64, out [][]float64) {
				VIDYA(out[0], in[0], core.Int(opts, 0), core.Int(opts, 1), opts[2])
			},
		},
	}
}
