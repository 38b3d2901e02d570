// Package indicator is the engine entry point: it owns the name-keyed
// registry of descriptors and the Compute contract that validates options,
// checks input shape and runs a kernel into freshly allocated outputs.
package indicator

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/evdnx/tulip/indicator/average"
	"github.com/evdnx/tulip/indicator/core"
	"github.com/evdnx/tulip/indicator/momentum"
	"github.com/evdnx/tulip/indicator/stats"
	"github.com/evdnx/tulip/indicator/trend"
	"github.com/evdnx/tulip/indicator/vector"
	"github.com/evdnx/tulip/indicator/volatility"
	"github.com/evdnx/tulip/indicator/volume"
)

// ---- Shared types ----
type (
	Descriptor = core.Indicator
	Kind       = core.Kind
	PlotData   = core.PlotData
)

const (
	Overlay     = core.Overlay
	Math        = core.Math
	Simple      = core.Simple
	Comparative = core.Comparative
)

var (
	ErrInvalidOption    = core.ErrInvalidOption
	ErrNotFound         = core.ErrNotFound
	ErrInvalidInput     = core.ErrInvalidInput
	ErrInsufficientData = core.ErrInsufficientData
)

// ---- Registry ----

type registry struct {
	byName map[string]*Descriptor
	sorted []*Descriptor
}

var families = []func() []*core.Indicator{
	vector.Indicators,
	average.Indicators,
	momentum.Indicators,
	trend.Indicators,
	volatility.Indicators,
	volume.Indicators,
	stats.Indicators,
}

// load is evaluated once; the registry is read-only afterwards.
var load = sync.OnceValue(func() *registry {
	r := &registry{byName: make(map[string]*Descriptor)}
	for _, family := range families {
		for _, d := range family() {
			if _, dup := r.byName[d.Name]; dup {
				panic("indicator: duplicate registration of " + d.Name)
			}
			r.byName[d.Name] = d
			r.sorted = append(r.sorted, d)
		}
	}
	slices.SortFunc(r.sorted, func(a, b *Descriptor) int { return cmp.Compare(a.Name, b.Name) })
	return r
})

func find(name string) (*Descriptor, error) {
	d, ok := load().byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return d, nil
}

// Lookup resolves an indicator by name. The returned descriptor is a copy;
// changing it does not affect the registry.
func Lookup(name string) (*Descriptor, error) {
	d, err := find(name)
	if err != nil {
		return nil, err
	}
	return d.Clone(), nil
}

// All returns a copy of every registered descriptor ordered by name.
func All() []*Descriptor {
	all := load().sorted
	out := make([]*Descriptor, len(all))
	for i, d := range all {
		out[i] = d.Clone()
	}
	return out
}

// Names returns the registered indicator names in order.
func Names() []string {
	all := load().sorted
	names := make([]string, len(all))
	for i, d := range all {
		names[i] = d.Name
	}
	return names
}

// ---- Compute ----

// Result is the outcome of a successful Compute: the number of leading input
// samples that produced no output, and one series per declared output in
// declaration order, each of length len(input)-Lookback.
type Result struct {
	Lookback int
	Outputs  [][]float64
}

// Output returns the output series with the given positional name.
func (r Result) Output(d *Descriptor, name string) ([]float64, bool) {
	i := slices.Index(d.Outputs, name)
	if i < 0 || i >= len(r.Outputs) {
		return nil, false
	}
	return r.Outputs[i], true
}

// Lookback validates options against d and returns its lookback.
func Lookback(d *Descriptor, options []float64) (int, error) {
	if len(options) != d.OptionCount() {
		return 0, fmt.Errorf("%w: %s takes %d options, got %d", ErrInvalidOption, d.Name, d.OptionCount(), len(options))
	}
	lb, err := d.Lookback(options)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", d.Name, err)
	}
	return lb, nil
}

// Compute runs d over inputs. Options are validated before the input shape is
// inspected; on any failure no output is returned. Inputs are never modified.
func Compute(d *Descriptor, inputs [][]float64, options []float64) (Result, error) {
	lb, err := Lookback(d, options)
	if err != nil {
		return Result{}, err
	}
	size, err := inputLength(d, inputs)
	if err != nil {
		return Result{}, err
	}
	if size <= lb {
		return Result{}, fmt.Errorf("%w: %s needs more than %d samples, got %d", ErrInsufficientData, d.Name, lb, size)
	}

	outputs := make([][]float64, d.OutputCount())
	for i := range outputs {
		outputs[i] = make([]float64, size-lb)
	}
	d.Kernel(inputs, options, outputs)
	return Result{Lookback: lb, Outputs: outputs}, nil
}

// Run looks up name and computes it.
func Run(name string, inputs [][]float64, options []float64) (Result, error) {
	d, err := find(name)
	if err != nil {
		return Result{}, err
	}
	return Compute(d, inputs, options)
}

func inputLength(d *Descriptor, inputs [][]float64) (int, error) {
	if len(inputs) != d.InputCount() {
		return 0, fmt.Errorf("%w: %s takes %d inputs %v, got %d", ErrInvalidInput, d.Name, d.InputCount(), d.Inputs, len(inputs))
	}
	size := len(inputs[0])
	for i, in := range inputs[1:] {
		if len(in) != size {
			return 0, fmt.Errorf("%w: %s input %q has length %d, want %d", ErrInvalidInput, d.Name, d.Inputs[i+1], len(in), size)
		}
	}
	return size, nil
}

// ---- Plot export ----

// Plot converts every output of r into plot data. X positions are input
// indices, so the first point of each series sits at r.Lookback.
func (r Result) Plot(d *Descriptor) []PlotData {
	out := make([]PlotData, len(r.Outputs))
	for i, series := range r.Outputs {
		out[i] = core.SeriesPlot(d.Outputs[i], r.Lookback, series)
	}
	return out
}

func FormatPlotDataJSON(data []PlotData) (string, error) { return core.FormatPlotDataJSON(data) }

func FormatPlotDataCSV(data []PlotData) (string, error) { return core.FormatPlotDataCSV(data) }
