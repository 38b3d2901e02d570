package trend

import (
	"math"
	"testing"

	talib "github.com/markcheno/go-talib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evdnx/tulip/indicator/core"
)

func waveHLC(n int) (high, low, close []float64) {
	high = make([]float64, n)
	low = make([]float64, n)
	close = make([]float64, n)
	for i := range close {
		x := float64(i)
		close[i] = 100 + 0.05*x + 6*math.Sin(x/7) + 2.5*math.Cos(x/2.3)
		high[i] = close[i] + 1 + 0.5*math.Abs(math.Sin(x/3))
		low[i] = close[i] - 1 - 0.4*math.Abs(math.Cos(x/5))
	}
	return high, low, close
}

// The directional sums are the same recurrence; TA-Lib seeds ADX one bar
// later, so only the converged tail is compared.
func TestADX_ConvergesToTALib(t *testing.T) {
	high, low, close := waveHLC(500)
	const period, tail = 14, 50
	got := core.Make(len(close), ADXLookback(period))
	ADX(got, high, low, close, period)

	want := talib.Adx(high, low, close, period)
	require.Greater(t, len(got), tail)
	assert.InDeltaSlice(t, core.Tail(want, tail), core.Tail(got, tail), 1e-6)
}
