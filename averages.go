package tulip

import (
	"fmt"

	"github.com/evdnx/tulip/indicator"
	"github.com/evdnx/tulip/indicator/volatility"
)

// ---- Moving averages ----

// MovingAverageType names a single-input, single-period moving average.
type MovingAverageType string

const (
	SMAMovingAverage     MovingAverageType = "sma"
	EMAMovingAverage     MovingAverageType = "ema"
	WMAMovingAverage     MovingAverageType = "wma"
	DEMAMovingAverage    MovingAverageType = "dema"
	TEMAMovingAverage    MovingAverageType = "tema"
	TRIMAMovingAverage   MovingAverageType = "trima"
	KAMAMovingAverage    MovingAverageType = "kama"
	HMAMovingAverage     MovingAverageType = "hma"
	ZLEMAMovingAverage   MovingAverageType = "zlema"
	WildersMovingAverage MovingAverageType = "wilders"
)

// MovingAverage computes the average named by kind.
func MovingAverage(kind MovingAverageType, src []float64, period int) (Series, error) {
	d, err := Lookup(string(kind))
	if err != nil {
		return Series{}, err
	}
	if d.Kind != indicator.Overlay || d.InputCount() != 1 || d.OptionCount() != 1 {
		return Series{}, fmt.Errorf("%w: %s is not a single-period moving average", ErrInvalidOption, kind)
	}
	return single(d.Name, [][]float64{src}, ints(period)...)
}

func SMA(src []float64, period int) (Series, error) { return single("sma", [][]float64{src}, ints(period)...) }

func EMA(src []float64, period int) (Series, error) { return single("ema", [][]float64{src}, ints(period)...) }

func WMA(src []float64, period int) (Series, error) { return single("wma", [][]float64{src}, ints(period)...) }

func DEMA(src []float64, period int) (Series, error) {
	return single("dema", [][]float64{src}, ints(period)...)
}

func TEMA(src []float64, period int) (Series, error) {
	return single("tema", [][]float64{src}, ints(period)...)
}

func TRIMA(src []float64, period int) (Series, error) {
	return single("trima", [][]float64{src}, ints(period)...)
}

func KAMA(src []float64, period int) (Series, error) {
	return single("kama", [][]float64{src}, ints(period)...)
}

// HMA is the Hull moving average; period must be at least 2.
func HMA(src []float64, period int) (Series, error) {
	return single("hma", [][]float64{src}, ints(period)...)
}

func ZLEMA(src []float64, period int) (Series, error) {
	return single("zlema", [][]float64{src}, ints(period)...)
}

func Wilders(src []float64, period int) (Series, error) {
	return single("wilders", [][]float64{src}, ints(period)...)
}

// VIDYA needs short < long and 0 < alpha <= 1.
func VIDYA(src []float64, short, long int, alpha float64) (Series, error) {
	return single("vidya", [][]float64{src}, float64(short), float64(long), alpha)
}

func VWMA(close, volume []float64, period int) (Series, error) {
	return single("vwma", [][]float64{close, volume}, ints(period)...)
}

// ---- Bands ----

// BBandsResult holds the three Bollinger bands.
type BBandsResult struct {
	Lookback int
	Lower    []float64
	Middle   []float64
	Upper    []float64
}

// BBands computes Bollinger bands: SMA(period) ± multiplier population
// standard deviations.
func BBands(src []float64, period int, multiplier float64) (BBandsResult, error) {
	r, err := Compute("bbands", [][]float64{src}, float64(period), multiplier)
	if err != nil {
		return BBandsResult{}, err
	}
	return BBandsResult{Lookback: r.Lookback, Lower: r.Outputs[0], Middle: r.Outputs[1], Upper: r.Outputs[2]}, nil
}

// DefaultBBands uses the conventional 20-period, two-deviation bands.
func DefaultBBands(src []float64) (BBandsResult, error) {
	return BBands(src, volatility.DefaultBollingerPeriod, volatility.DefaultBollingerMultiplier)
}

func ATR(high, low, close []float64, period int) (Series, error) {
	return single("atr", [][]float64{high, low, close}, ints(period)...)
}

func NATR(high, low, close []float64, period int) (Series, error) {
	return single("natr", [][]float64{high, low, close}, ints(period)...)
}

func StdDev(src []float64, period int) (Series, error) {
	return single("stddev", [][]float64{src}, ints(period)...)
}
