// Package quote adapts OHLCV bars to the parallel float64 channels that
// indicator kernels consume.
package quote

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/evdnx/tulip/indicator"
)

// ErrInvalidBar is returned for bars with a non-finite or negative field,
// or a high below the low.
var ErrInvalidBar = errors.New("invalid bar")

// Channel selects one field of a Bar.
type Channel int

const (
	Open Channel = iota
	High
	Low
	Close
	Volume
)

var channelNames = [...]string{"open", "high", "low", "close", "volume"}

func (c Channel) String() string {
	if c < Open || c > Volume {
		return fmt.Sprintf("Channel(%d)", int(c))
	}
	return channelNames[c]
}

// ParseChannel maps an indicator input name to a channel. The generic
// "real" input reads the close.
func ParseChannel(name string) (Channel, error) {
	if name == "real" {
		return Close, nil
	}
	for i, n := range channelNames {
		if n == name {
			return Channel(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown channel %q", indicator.ErrInvalidInput, name)
}

// Bar is one OHLCV sample.
type Bar struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Value returns the field selected by c.
func (b Bar) Value(c Channel) float64 {
	switch c {
	case Open:
		return b.Open
	case High:
		return b.High
	case Low:
		return b.Low
	case Close:
		return b.Close
	case Volume:
		return b.Volume
	}
	return math.NaN()
}

func isValidPrice(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// Validate rejects non-finite or negative fields and a high below the low.
func (b Bar) Validate() error {
	for c := Open; c <= Volume; c++ {
		if !isValidPrice(b.Value(c)) {
			return fmt.Errorf("%w: %s = %v", ErrInvalidBar, c, b.Value(c))
		}
	}
	if b.High < b.Low {
		return fmt.Errorf("%w: high %v below low %v", ErrInvalidBar, b.High, b.Low)
	}
	return nil
}

// Bars is a time-ordered series of bars.
type Bars []Bar

// Validate checks every bar and reports the first bad index.
func (bs Bars) Validate() error {
	for i, b := range bs {
		if err := b.Validate(); err != nil {
			return fmt.Errorf("bar %d: %w", i, err)
		}
	}
	return nil
}

// Channel copies one field of every bar into a new slice.
func (bs Bars) Channel(c Channel) []float64 {
	out := make([]float64, len(bs))
	for i, b := range bs {
		out[i] = b.Value(c)
	}
	return out
}

// Channels returns the five channels in Open..Volume order.
func (bs Bars) Channels() [5][]float64 {
	var out [5][]float64
	for c := Open; c <= Volume; c++ {
		out[c] = bs.Channel(c)
	}
	return out
}

// Inputs lays the bars out as the input series d declares, in order.
func (bs Bars) Inputs(d *indicator.Descriptor) ([][]float64, error) {
	inputs := make([][]float64, d.InputCount())
	cache := map[Channel][]float64{}
	for i, name := range d.Inputs {
		c, err := ParseChannel(name)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", d.Name, err)
		}
		if _, ok := cache[c]; !ok {
			cache[c] = bs.Channel(c)
		}
		inputs[i] = cache[c]
	}
	return inputs, nil
}

// Timestamps returns the bar times as Unix seconds.
func (bs Bars) Timestamps() []int64 {
	out := make([]int64, len(bs))
	for i, b := range bs {
		out[i] = b.Time.Unix()
	}
	return out
}

// Compute runs the named indicator over the bars.
func (bs Bars) Compute(name string, options []float64) (indicator.Result, error) {
	d, err := indicator.Lookup(name)
	if err != nil {
		return indicator.Result{}, err
	}
	inputs, err := bs.Inputs(d)
	if err != nil {
		return indicator.Result{}, err
	}
	return indicator.Compute(d, inputs, options)
}

// Plot converts r into plot data stamped with the time of each bar.
func (bs Bars) Plot(d *indicator.Descriptor, r indicator.Result) []indicator.PlotData {
	ts := bs.Timestamps()
	out := r.Plot(d)
	for i := range out {
		out[i].Timestamp = make([]int64, len(out[i].X))
		for j, x := range out[i].X {
			out[i].Timestamp[j] = ts[int(x)]
		}
	}
	return out
}
