// Package tulip is a technical-analysis library: 104 batch indicators over
// float64 series, from vector math through moving averages, oscillators,
// trend, volatility and volume studies.
//
// The typed helpers in this package cover the common indicators with named
// results. Every indicator, including those without a helper, is reachable
// by name through Compute or the indicator package.
package tulip

import (
	"github.com/evdnx/tulip/indicator"
	"github.com/evdnx/tulip/indicator/core"
)

// ---- Shared types ----
type (
	Descriptor = indicator.Descriptor
	Result     = indicator.Result
	PlotData   = indicator.PlotData
)

var (
	ErrInvalidOption    = indicator.ErrInvalidOption
	ErrNotFound         = indicator.ErrNotFound
	ErrInvalidInput     = indicator.ErrInvalidInput
	ErrInsufficientData = indicator.ErrInsufficientData
)

// ---- Registry ----

func Lookup(name string) (*Descriptor, error) { return indicator.Lookup(name) }

func Indicators() []*Descriptor { return indicator.All() }

func Names() []string { return indicator.Names() }

// Compute runs the named indicator. Inputs and options are positional, in
// the order listed on its descriptor.
func Compute(name string, inputs [][]float64, options ...float64) (Result, error) {
	return indicator.Run(name, inputs, options)
}

// ---- Series ----

// Series is a single output. Values[i] belongs to input index Lookback+i.
type Series struct {
	Lookback int
	Values   []float64
}

// Last returns the most recent value, or false when the series is empty.
func (s Series) Last() (float64, bool) {
	if len(s.Values) == 0 {
		return 0, false
	}
	return s.Values[len(s.Values)-1], true
}

// Plot lays the series out against input indices.
func (s Series) Plot(name string) PlotData {
	return core.SeriesPlot(name, s.Lookback, s.Values)
}

func single(name string, inputs [][]float64, options ...float64) (Series, error) {
	r, err := indicator.Run(name, inputs, options)
	if err != nil {
		return Series{}, err
	}
	return Series{Lookback: r.Lookback, Values: r.Outputs[0]}, nil
}

func ints(v ...int) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out
}

// ---- Plot export ----

func GenerateTimestamps(startTime int64, count int, interval int64) []int64 {
	out := make([]int64, count)
	for i := range out {
		out[i] = startTime + int64(i)*interval
	}
	return out
}

func FormatPlotDataJSON(data []PlotData) (string, error) { return indicator.FormatPlotDataJSON(data) }

func FormatPlotDataCSV(data []PlotData) (string, error) { return indicator.FormatPlotDataCSV(data) }
