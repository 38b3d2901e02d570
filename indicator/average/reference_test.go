package average

import (
	"math"
	"testing"

	talib "github.com/markcheno/go-talib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wave is a deterministic non-linear price path: two cycles of different
// length on a slow drift.
func wave(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		x := float64(i)
		out[i] = 100 + 0.05*x + 6*math.Sin(x/7) + 2.5*math.Cos(x/2.3)
	}
	return out
}

// TA-Lib pads its outputs to the input length, so its first lookback values
// are placeholders.
func TestAverages_MatchTALib(t *testing.T) {
	src := wave(300)
	const period = 9

	tests := []struct {
		name     string
		kernel   func(dst, src []float64, period int)
		lookback int
		want     []float64
	}{
		{"sma", SMA, period - 1, talib.Sma(src, period)},
		{"wma", WMA, period - 1, talib.Wma(src, period)},
		{"ema", EMA, period - 1, talib.Ema(src, period)},
		{"dema", DEMA, DEMALookback(period), talib.Dema(src, period)},
		{"tema", TEMA, TEMALookback(period), talib.Tema(src, period)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := run(tt.kernel, tt.lookback, src, period)
			require.Len(t, got, len(src)-tt.lookback)
			assert.InDeltaSlice(t, tt.want[tt.lookback:], got, 1e-9)
		})
	}
}
