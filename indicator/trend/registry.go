package trend

import (
	"fmt"

	"github.com/evdnx/tulip/indicator/core"
)

var (
	hl  = []string{"high", "low"}
	hlc = []string{"high", "low", "close"}
)

func period(min int, lookback func(int) int) core.LookbackFunc {
	return core.SinglePeriod(min, lookback)
}

func psarLookback(opts []float64) (int, error) {
	step, err := core.Positive(opts, 0, "acceleration factor step")
	if err != nil {
		return 0, err
	}
	maxStep, err := core.Positive(opts, 1, "acceleration factor maximum")
	if err != nil {
		return 0, err
	}
	if step > maxStep {
		return 0, fmt.Errorf("%w: acceleration step %v exceeds maximum %v", core.ErrInvalidOption, step, maxStep)
	}
	return 1, nil
}

// Indicators returns the trend and directional-movement descriptors.
func Indicators() []*core.Indicator {
	return []*core.Indicator{
		{
			Name: "adx", FullName: "Average Directional Movement Index", Kind: core.Simple,
			Inputs: hlc, Options: []string{"period"}, Outputs: []string{"adx"},
			Lookback: period(2, ADXLookback),
			Kernel: func(in [][]float64, opts []float64, out [][]float64) {
				ADX(out[0], in[0], in[1], in[2], core.Int(opts, 0))
			},
		},
		{
			Name: "adxr", FullName: "Average Directional Movement Rating", Kind: core.Simple,
			Inputs: hlc, Options: []string{"period"}, Outputs: []string{"adxr"},
			Lookback: period(2, ADXRLookback),
			Kernel: func(in [][]float64, opts []float64, out [][]float64) {
				ADXR(out[0], in[0], in[1], in[2], core.Int(opts, 0))
			},
		},
		{
			Name: "di", FullName: "Directional Indicator", Kind: core.Simple,
			Inputs: hlc, Options: []string{"period"}, Outputs: []string{"plus_di", "minus_di"},
			Lookback: period(2, core.Minus1),
			Kernel: func(in [][]float64, opts []float64, out [][]float64) {
				DI(out[0], out[1], in[0], in[1], in[2], core.Int(opts, 0))
			},
		},
		{
			Name: "dm", FullName: "Directional Movement", Kind: core.Simple,
			Inputs: hl, Options: []string{"period"}, Outputs: []string{"plus_dm", "minus_dm"},
			Lookback: period(2, core.Minus1),
			Kernel: func(in [][]float64, opts []float64, out [][]float64) {
				DM(out[0], out[1], in[0], in[1], core.Int(opts, 0))
			},
		},
		{
			Name: "dx", FullName: "Directional Movement Index", Kind: core.Simple,
			Inputs: hlc, Options: []string{"period"}, Outputs: []string{"dx"},
			Lookback: period(2, core.Minus1),
			Kernel: func(in [][]float64, opts []float64, out [][]float64) {
				DX(out[0], in[0], in[1], in[2], core.Int(opts, 0))
			},
		},
		{
			Name: "aroon", FullName: "Aroon", Kind: core.Simple,
			Inputs: hl, Options: []string{"period"}, Outputs: []string{"aroon_down", "aroon_up"},
			Lookback: period(1, core.Identity),
			Kernel: func(in [][]float64, opts []float64, out [][]float64) {
				Aroon(out[0], out[1], in[0], in[1], core.Int(opts, 0))
			},
		},
		{
			Name: "aroonosc", FullName: "Aroon Oscillator", Kind: core.Simple,
			Inputs: hl, Options: []string{"period"}, Outputs: []string{"aroonosc"},
			Lookback: period(1, core.Identity),
			Kernel: func(in [][]float64, opts []float64, out [][]float64) {
				AroonOsc(out[0], in[0], in[1], core.Int(opts, 0))
			},
		},
		{
			Name: "psar", FullName: "Parabolic SAR", Kind: core.Overlay,
			Inputs: hl, Options: []string{"acceleration factor step", "acceleration factor maximum"}, Outputs: []string{"psar"},
			Lookback: psarLookback,
			Kernel: func(in [][]float64, opts []float64, out [][]float64) {
				PSAR(out[0], in[0], in[1], opts[0], opts[1])
			},
		},
		{
			Name: "vhf", FullName: "Vertical Horizontal Filter", Kind: core.Simple,
			Inputs: []string{"real"}, Options: []string{"period"}, Outputs: []string{"vhf"},
			Lookback: period(1, core.Identity),
			Kernel: func(in [][]float64, opts []float64, out [][]float64) {
				VHF(out[0], in[0], core.Int(opts, 0))
			},
		},
		{
			Name: "mass", FullName: "Mass Index", Kind: core.Simple,
			Inputs: hl, Options: []string{"period"}, Outputs: []string{"mass"},
			Lookback: period(1, MassLookback),
			Kernel: func(in [][]float64, opts []float64, out [][]float64) {
				Mass(out[0], in[0], in[1], core.Int(opts, 0))
			},
		},
		{
			Name: "cvi", FullName: "Chaikins Volatility", Kind: core.Simple,
			Inputs: hl, Options: []string{"period"}, Outputs: []string{"cvi"},
			Lookback: period(1, CVILookback),
			Kernel: func(in [][]float64, opts []float64, out [][]float64) {
				CVI(out[0], in[0], in[1], core.Int(opts, 0))
			},
		},
	}
}
