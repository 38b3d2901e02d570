package vector

import (
	"math"

	"github.com/evdnx/tulip/indicator/core"
)

var (
	real1  = []string{"real"}
	real2  = []string{"real", "real"}
	noOpts = []string{}
)

func unary(name, fullName string, fn func(float64) float64) *core.Indicator {
	return &core.Indicator{
		Name:     name,
		FullName: fullName,
		Kind:     core.Math,
		Inputs:   real1,
		Options:  noOpts,
		Outputs:  []string{name},
		Lookback: core.Fixed(0),
		Kernel: func(in [][]float64, _ []float64, out [][]float64) {
			Map(out[0], in[0], fn)
		},
	}
}

func binary(name, fullName string, kernel func(dst, a, b []float64)) *core.Indicator {
	return &core.Indicator{
		Name:     name,
		FullName: fullName,
		Kind:     core.Comparative,
		Inputs:   real2,
		Options:  noOpts,
		Outputs:  []string{name},
		Lookback: core.Fixed(0),
		Kernel: func(in [][]float64, _ []float64, out [][]float64) {
			kernel(out[0], in[0], in[1])
		},
	}
}

func zipWith(fn func(x, y float64) float64) func(dst, a, b []float64) {
	return func(dst, a, b []float64) { Zip(dst, a, b, fn) }
}

// Indicators returns the vector math descriptors.
func Indicators() []*core.Indicator {
	return []*core.Indicator{
		unary("abs", "Vector Absolute Value", math.Abs),
		unary("acos", "Vector Arccosine", math.Acos),
		unary("asin", "Vector Arcsine", math.Asin),
		unary("atan", "Vector Arctangent", math.Atan),
		unary("ceil", "Vector Ceiling", math.Ceil),
		unary("cos", "Vector Cosine", math.Cos),
		unary("cosh", "Vector Hyperbolic Cosine", math.Cosh),
		unary("exp", "Vector Exponential", math.Exp),
		unary("floor", "Vector Floor", math.Floor),
		unary("ln", "Vector Natural Log", math.Log),
		unary("log10", "Vector Base-10 Log", math.Log10),
		unary("round", "Vector Round", Round),
		unary("sin", "Vector Sine", math.Sin),
		unary("sinh", "Vector Hyperbolic Sine", math.Sinh),
		unary("sqrt", "Vector Square Root", math.Sqrt),
		unary("tan", "Vector Tangent", math.Tan),
		unary("tanh", "Vector Hyperbolic Tangent", math.Tanh),
		unary("todeg", "Vector Degree Conversion", ToDegrees),
		unary("torad", "Vector Radian Conversion", ToRadians),
		unary("trunc", "Vector Truncate", math.Trunc),

		binary("add", "Vector Addition", zipWith(func(x, y float64) float64 { return x + y })),
		binary("sub", "Vector Subtraction", zipWith(func(x, y float64) float64 { return x - y })),
		binary("mul", "Vector Multiplication", zipWith(func(x, y float64) float64 { return x * y })),
		binary("div", "Vector Division", zipWith(div)),
		binary("crossany", "Crossany", Crossany),
		binary("crossover", "Crossover", Crossover),
	}
}
