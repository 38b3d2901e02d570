// Package vector implements elementwise transforms with zero lookback.
package vector

import (
	"math"

	"github.com/evdnx/tulip/indicator/core"
)

// Map writes fn(src[i]) into dst[i].
func Map(dst, src []float64, fn func(float64) float64) {
	for i, v := range src {
		dst[i] = fn(v)
	}
}

// Zip writes fn(a[i], b[i]) into dst[i].
func Zip(dst, a, b []float64, fn func(x, y float64) float64) {
	for i := range a {
		dst[i] = fn(a[i], b[i])
	}
}

// Crossover flags (1) every index where a moves from at-or-below b to
// strictly above it. Index 0 is never flagged.
func Crossover(dst, a, b []float64) {
	if len(dst) == 0 {
		return
	}
	dst[0] = 0
	for i := 1; i < len(a); i++ {
		dst[i] = 0
		if a[i-1] <= b[i-1] && a[i] > b[i] {
			dst[i] = 1
		}
	}
}

// Crossany flags (1) every index where a crosses b in either direction.
// Index 0 is never flagged.
func Crossany(dst, a, b []float64) {
	if len(dst) == 0 {
		return
	}
	dst[0] = 0
	for i := 1; i < len(a); i++ {
		dst[i] = 0
		if (a[i-1] <= b[i-1] && a[i] > b[i]) || (a[i-1] >= b[i-1] && a[i] < b[i]) {
			dst[i] = 1
		}
	}
}

// Round rounds half up, so -2.5 becomes -2.
func Round(v float64) float64 { return math.Floor(v + 0.5) }

// ToDegrees converts radians to degrees.
func ToDegrees(v float64) float64 { return v * (180 / math.Pi) }

// ToRadians converts degrees to radians.
func ToRadians(v float64) float64 { return v * (math.Pi / 180) }

func div(x, y float64) float64 { return core.SafeDiv(x, y, 0) }
