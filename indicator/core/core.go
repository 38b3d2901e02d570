package core

import (
	"encoding/json"
	"math"
	"slices"
)

// -----------------------------------------------------------------------------
// Indicator kinds
// -----------------------------------------------------------------------------

// Kind classifies how an indicator's output relates to its input.
type Kind int

const (
	// Overlay output shares the price scale of the input (moving averages, bands).
	Overlay Kind = iota + 1
	// Math is a stateless or windowed numeric transform.
	Math
	// Simple is a single oscillator or indicator line on its own scale.
	Simple
	// Comparative combines two independent series.
	Comparative
)

func (k Kind) String() string {
	switch k {
	case Overlay:
		return "overlay"
	case Math:
		return "math"
	case Simple:
		return "simple"
	case Comparative:
		return "comparative"
	default:
		return "unknown"
	}
}

// MarshalText lets Kind appear by name in JSON metadata.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// -----------------------------------------------------------------------------
// Indicator descriptor
// -----------------------------------------------------------------------------

// LookbackFunc validates an option vector and returns the number of leading
// input samples that produce no output.
type LookbackFunc func(options []float64) (int, error)

// KernelFunc fills outputs from inputs. It is only ever invoked with options
// accepted by the matching LookbackFunc, with len(inputs) equal channels of
// length L and len(outputs) buffers of length L-lookback.
type KernelFunc func(inputs [][]float64, options []float64, outputs [][]float64)

// Indicator describes one entry of the registry. Input, option and output
// names are positional: their lengths are the channel and option counts.
type Indicator struct {
	Name     string
	FullName string
	Kind     Kind
	Inputs   []string
	Options  []string
	Outputs  []string

	Lookback LookbackFunc
	Kernel   KernelFunc
}

// Clone returns a copy of ind whose name slices are not shared.
func (ind *Indicator) Clone() *Indicator {
	c := *ind
	c.Inputs = slices.Clone(ind.Inputs)
	c.Options = slices.Clone(ind.Options)
	c.Outputs = slices.Clone(ind.Outputs)
	return &c
}

// InputCount returns the number of input channels.
func (ind *Indicator) InputCount() int { return len(ind.Inputs) }

// OptionCount returns the number of positional options.
func (ind *Indicator) OptionCount() int { return len(ind.Options) }

// OutputCount returns the number of output channels.
func (ind *Indicator) OutputCount() int { return len(ind.Outputs) }

type indicatorMeta struct {
	Name     string   `json:"name"`
	FullName string   `json:"full_name"`
	Kind     Kind     `json:"kind"`
	Inputs   []string `json:"inputs"`
	Options  []string `json:"options"`
	Outputs  []string `json:"outputs"`
}

// MarshalJSON emits the presentation metadata only.
func (ind *Indicator) MarshalJSON() ([]byte, error) {
	return json.Marshal(indicatorMeta{
		Name:     ind.Name,
		FullName: ind.FullName,
		Kind:     ind.Kind,
		Inputs:   ind.Inputs,
		Options:  ind.Options,
		Outputs:  ind.Outputs,
	})
}

// -----------------------------------------------------------------------------
// Slice helpers
// -----------------------------------------------------------------------------

func copySlice(src []float64) []float64 {
	if src == nil {
		return nil
	}
	dst := make([]float64, len(src))
	copy(dst, src)
	return dst
}

// Tail returns the last n elements of s.
func Tail(s []float64, n int) []float64 {
	if n >= len(s) {
		return s
	}
	return s[len(s)-n:]
}

// -----------------------------------------------------------------------------
// Numeric helpers
// -----------------------------------------------------------------------------

func clamp(value, min, max float64) float64 {
	if min == max {
		return min
	}
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Clamp exposes clamp to other packages.
func Clamp(value, min, max float64) float64 {
	return clamp(value, min, max)
}

// SafeDiv returns num/den, or fallback when den is zero or the quotient is
// not finite.
func SafeDiv(num, den, fallback float64) float64 {
	if den == 0 {
		return fallback
	}
	q := num / den
	if math.IsNaN(q) || math.IsInf(q, 0) {
		return fallback
	}
	return q
}
