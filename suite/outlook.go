package suite

import (
	"context"
	"fmt"

	"github.com/evdnx/tulip/indicator"
	"github.com/evdnx/tulip/indicator/core"
	"github.com/evdnx/tulip/quote"
)

// Signal labels the strength of a combined outlook.
type Signal string

const (
	StrongBullish Signal = "Strong Bullish"
	Bullish       Signal = "Bullish"
	WeakBullish   Signal = "Weak Bullish"
	Neutral       Signal = "Neutral"
	WeakBearish   Signal = "Weak Bearish"
	Bearish       Signal = "Bearish"
	StrongBearish Signal = "Strong Bearish"
)

// Vote is what one indicator says about the most recent bar.
type Vote struct {
	Indicator string
	Weight    float64
	Bullish   bool
	Bearish   bool
}

// Outlook combines the crossover votes of several indicators on the last
// bar of a series.
type Outlook struct {
	Bullish Signal
	Bearish Signal
	Votes   []Vote
}

type voter struct {
	name    string
	options []float64
	weight  float64
	// decide reads the last two points of the result; closes is aligned
	// with the input.
	decide func(r indicator.Result, closes []float64) (bull, bear bool)
}

func lastTwo(s []float64) (prev, last float64) {
	t := core.Tail(s, 2)
	return t[0], t[1]
}

// bands votes bullish when the series climbs back over the low band and
// bearish when it falls back under the high one.
func bands(low, high float64) func(indicator.Result, []float64) (bool, bool) {
	return func(r indicator.Result, _ []float64) (bool, bool) {
		prev, last := lastTwo(r.Outputs[0])
		return prev < low && last >= low, prev > high && last <= high
	}
}

// zeroCross votes on a sign change of the given output.
func zeroCross(output int) func(indicator.Result, []float64) (bool, bool) {
	return func(r indicator.Result, _ []float64) (bool, bool) {
		prev, last := lastTwo(r.Outputs[output])
		return prev <= 0 && last > 0, prev >= 0 && last < 0
	}
}

// priceCross votes when the close crosses the first output.
func priceCross(r indicator.Result, closes []float64) (bool, bool) {
	prev, last := lastTwo(r.Outputs[0])
	pc, lc := lastTwo(closes)
	return pc <= prev && lc > last, pc >= prev && lc < last
}

func (s *Suite) voters() []voter {
	sig := s.cfg.Signals
	p := float64(sig.Period)
	return []voter{
		{"rsi", []float64{p}, 1.0, bands(sig.RSIOversold, sig.RSIOverbought)},
		{"mfi", []float64{p}, 1.2, bands(sig.MFIOversold, sig.MFIOverbought)},
		{"aroonosc", []float64{p}, 1.0, zeroCross(0)},
		{"hma", []float64{float64(sig.HMAPeriod)}, 1.5, priceCross},
		{"macd", []float64{12, 26, 9}, 0.8, zeroCross(2)},
		{"linregslope", []float64{p}, 0.5, zeroCross(0)},
	}
}

// Outlook computes every voter over bars and labels the bullish and bearish
// sides. At least two indicators must agree before a side is anything but
// Neutral.
func (s *Suite) Outlook(ctx context.Context, bars quote.Bars) (Outlook, error) {
	if err := bars.Validate(); err != nil {
		return Outlook{}, err
	}
	voters := s.voters()
	jobs := make([]Job, len(voters))
	for i, v := range voters {
		d, err := indicator.Lookup(v.name)
		if err != nil {
			return Outlook{}, err
		}
		inputs, err := bars.Inputs(d)
		if err != nil {
			return Outlook{}, err
		}
		jobs[i] = Job{Indicator: v.name, Inputs: inputs, Options: v.options}
	}

	results, err := s.Run(ctx, jobs)
	if err != nil {
		return Outlook{}, fmt.Errorf("outlook: %w", err)
	}
	for i, r := range results {
		if len(r.Outputs[0]) < 2 {
			return Outlook{}, fmt.Errorf("outlook: %w: %s needs two outputs", indicator.ErrInsufficientData, voters[i].name)
		}
	}

	closes := bars.Channel(quote.Close)
	out := Outlook{Votes: make([]Vote, len(voters))}
	var bullWeight, bearWeight float64
	var bullCount, bearCount int
	for i, v := range voters {
		bull, bear := v.decide(results[i], closes)
		out.Votes[i] = Vote{Indicator: v.name, Weight: v.weight, Bullish: bull, Bearish: bear}
		if bull {
			bullWeight += v.weight
			bullCount++
		}
		if bear {
			bearWeight += v.weight
			bearCount++
		}
	}
	out.Bullish = label(bullWeight, bullCount, StrongBullish, Bullish, WeakBullish)
	out.Bearish = label(bearWeight, bearCount, StrongBearish, Bearish, WeakBearish)
	return out, nil
}

// Agreeing weight needed for each label. All six voters together weigh 6;
// the lightest agreeing pair weighs 1.3 and is labelled weak.
const (
	strongWeight = 3.0
	normalWeight = 2.0
)

func label(weight float64, count int, strong, normal, weak Signal) Signal {
	switch {
	case count < 2:
		return Neutral
	case weight >= strongWeight:
		return strong
	case weight >= normalWeight:
		return normal
	default:
		return weak
	}
}
