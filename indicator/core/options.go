package core

import (
	"fmt"
	"math"
)

// MaxPeriod bounds integer options. Anything larger is treated as an error
// rather than silently wrapping when truncated to int.
const MaxPeriod = 1_000_000

func option(options []float64, i int, name string) (float64, error) {
	if i >= len(options) {
		return 0, fmt.Errorf("%w: missing %s", ErrInvalidOption, name)
	}
	v := options[i]
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidOption, name, v)
	}
	return v, nil
}

// Period reads options[i] as a window length (truncated toward zero) and
// checks it lies in [min, MaxPeriod].
func Period(options []float64, i int, name string, min int) (int, error) {
	v, err := option(options, i, name)
	if err != nil {
		return 0, err
	}
	if v > MaxPeriod {
		return 0, fmt.Errorf("%w: %s is unreasonably large (%v); must be ≤ %d", ErrInvalidOption, name, v, MaxPeriod)
	}
	p := int(v)
	if p < min {
		return 0, fmt.Errorf("%w: %s must be at least %d, got %v", ErrInvalidOption, name, min, v)
	}
	return p, nil
}

// Positive reads options[i] and checks it is strictly greater than zero.
func Positive(options []float64, i int, name string) (float64, error) {
	v, err := option(options, i, name)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidOption, name, v)
	}
	return v, nil
}

// Ordered checks short < long for a short/long window pair.
func Ordered(shortName string, short int, longName string, long int) error {
	if short >= long {
		return fmt.Errorf("%w: %s (%d) must be less than %s (%d)", ErrInvalidOption, shortName, short, longName, long)
	}
	return nil
}

// ShortLong validates the common (short, long) option pair found at
// options[0] and options[1].
func ShortLong(options []float64) (short, long int, err error) {
	if short, err = Period(options, 0, "short period", 1); err != nil {
		return 0, 0, err
	}
	if long, err = Period(options, 1, "long period", 2); err != nil {
		return 0, 0, err
	}
	if err = Ordered("short period", short, "long period", long); err != nil {
		return 0, 0, err
	}
	return short, long, nil
}

// Int truncates an already validated option to an int.
func Int(options []float64, i int) int {
	return int(options[i])
}

// Fixed returns a LookbackFunc for indicators without options.
func Fixed(lookback int) LookbackFunc {
	return func([]float64) (int, error) { return lookback, nil }
}

// SinglePeriod returns a LookbackFunc for indicators whose only option is a
// period of at least min.
func SinglePeriod(min int, lookback func(period int) int) LookbackFunc {
	return func(options []float64) (int, error) {
		p, err := Period(options, 0, "period", min)
		if err != nil {
			return 0, err
		}
		return lookback(p), nil
	}
}

// Minus1 is the lookback of a plain trailing window.
func Minus1(period int) int { return period - 1 }

// Identity is the lookback of kernels needing period prior samples.
func Identity(period int) int { return period }
