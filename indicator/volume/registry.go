package volume

import "github.com/evdnx/tulip/indicator/core"

var (
	cv   = []string{"close", "volume"}
	hlv  = []string{"high", "low", "volume"}
	hlcv = []string{"high", "low", "close", "volume"}
)

func shortLong(lookback func(long int) int) core.LookbackFunc {
	return func(opts []float64) (int, error) {
		_, long, err := core.ShortLong(opts)
		if err != nil {
			return 0, err
		}
		return lookback(long), nil
	}
}

// Indicators returns the volume descriptors.
func Indicators() []*core.Indicator {
	shortLongOpts := []string{"short period", "long period"}

	return []*core.Indicator{
		{
			Name: "obv", FullName: "On Balance Volume", Kind: core.Simple,
			Inputs: cv, Outputs: []string{"obv"}, Lookback: core.Fixed(0),
			Kernel: func(in [][]float64, _ []float64, out [][]float64) { OBV(out[0], in[0], in[1]) },
		},
		{
			Name: "ad", FullName: "Accumulation/Distribution Line", Kind: core.Simple,
			Inputs: hlcv, Outputs: []string{"ad"}, Lookback: core.Fixed(0),
			Kernel: func(in [][]float64, _ []float64, out [][]float64) { AD(out[0], in[0], in[1], in[2], in[3]) },
		},
		{
			Name: "adosc", FullName: "Accumulation/Distribution Oscillator", Kind: core.Simple,
			Inputs: hlcv, Options: shortLongOpts, Outputs: []string{"adosc"},
			Lookback: shortLong(core.Minus1),
			Kernel: func(in [][]float64, opts []float64, out [][]float64) {
				ADOSC(out[0], in[0], in[1], in[2], in[3], core.Int(opts, 0), core.Int(opts, 1))
			},
		},
		{
			Name: "mfi", FullName: "Money Flow Index", Kind: core.Simple,
			Inputs: hlcv, Options: []string{"period"}, Outputs: []string{"mfi"},
			Lookback: core.SinglePeriod(1, core.Identity),
			Kernel: func(in [][]float64, opts []float64, out [][]float64) {
				MFI(out[0], in[0], in[1], in[2], in[3], core.Int(opts, 0))
			},
		},
		{
			Name: "pvi", FullName: "Positive Volume Index", Kind: core.Simple,
			Inputs: cv, Outputs: []string{"pvi"}, Lookback: core.Fixed(0),
			Kernel: func(in [][]float64, _ []float64, out [][]float64) { PVI(out[0], in[0], in[1]) },
		},
		{
			Name: "nvi", FullName: "Negative Volume Index", Kind: core.Simple,
			Inputs: cv, Outputs: []string{"nvi"}, Lookback: core.Fixed(0),
			Kernel: func(in [][]float64, _ []float64, out [][]float64) { NVI(out[0], in[0], in[1]) },
		},
		{
			Name: "vwma", FullName: "Volume Weighted Moving Average", Kind: core.Overlay,
			Inputs: cv, Options: []string{"period"}, Outputs: []string{"vwma"},
			Lookback: core.SinglePeriod(1, core.Minus1),
			Kernel: func(in [][]float64, opts []float64, out [][]float64) {
				VWMA(out[0], in[0], in[1], core.Int(opts, 0))
			},
		},
		{
			Name: "kvo", FullName: "Klinger Volume Oscillator", Kind: core.Simple,
			Inputs: hlcv, Options: shortLongOpts, Outputs: []string{"kvo"},
			Lookback: shortLong(core.Identity),
			Kernel: func(in [][]float64, opts []float64, out [][]float64) {
				KVO(out[0], in[0], in[1], in[2], in[3], core.Int(opts, 0), core.Int(opts, 1))
			},
		},
		{
			Name: "emv", FullName: "Ease of Movement", Kind: core.Simple,
			Inputs: hlv, Outputs: []string{"emv"}, Lookback: core.Fixed(1),
			Kernel: func(in [][]float64, _ []float64, out [][]float64) { EMV(out[0], in[0], in[1], in[2]) },
		},
		{
			Name: "marketfi", FullName: "Market Facilitation Index", Kind: core.Simple,
			Inputs: hlv, Outputs: []string{"marketfi"}, Lookback: core.Fixed(0),
			Kernel: func(in [][]float64, _ []float64, out [][]float64) { MarketFI(out[0], in[0], in[1], in[2]) },
		},
		{
			Name: "vosc", FullName: "Volume Oscillator", Kind: core.Simple,
			Inputs: []string{"volume"}, Options: shortLongOpts, Outputs: []string{"vosc"},
			Lookback: shortLong(core.Minus1),
			Kernel: func(in [][]float64, opts []float64, out [][]float64) {
				VOSC(out[0], in[0], core.Int(opts, 0), core.Int(opts, 1))
			},
		},
		{
			Name: "wad", FullName: "Williams Accumulation/Distribution", Kind: core.Simple,
			Inputs: []string{"high", "low", "close"}, Outputs: []string{"wad"}, Lookback: core.Fixed(1),
			Kernel: func(in [][]float64, _ []float64, out [][]float64) { WAD(out[0], in[0], in[1], in[2]) },
		},
	}
}
