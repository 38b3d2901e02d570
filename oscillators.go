package tulip

import "github.com/evdnx/tulip/indicator/trend"

// ---- Momentum ----

func RSI(src []float64, period int) (Series, error) { return single("rsi", [][]float64{src}, ints(period)...) }

func ROC(src []float64, period int) (Series, error) { return single("roc", [][]float64{src}, ints(period)...) }

func MOM(src []float64, period int) (Series, error) { return single("mom", [][]float64{src}, ints(period)...) }

func CMO(src []float64, period int) (Series, error) { return single("cmo", [][]float64{src}, ints(period)...) }

func TRIX(src []float64, period int) (Series, error) {
	return single("trix", [][]float64{src}, ints(period)...)
}

func CCI(high, low, close []float64, period int) (Series, error) {
	return single("cci", [][]float64{high, low, close}, ints(period)...)
}

func WillR(high, low, close []float64, period int) (Series, error) {
	return single("willr", [][]float64{high, low, close}, ints(period)...)
}

// UltOsc needs short < medium < long.
func UltOsc(high, low, close []float64, short, medium, long int) (Series, error) {
	return single("ultosc", [][]float64{high, low, close}, ints(short, medium, long)...)
}

// MACDResult holds the MACD line, its signal line and their difference.
type MACDResult struct {
	Lookback  int
	MACD      []float64
	Signal    []float64
	Histogram []float64
}

func MACD(src []float64, short, long, signal int) (MACDResult, error) {
	r, err := Compute("macd", [][]float64{src}, ints(short, long, signal)...)
	if err != nil {
		return MACDResult{}, err
	}
	return MACDResult{Lookback: r.Lookback, MACD: r.Outputs[0], Signal: r.Outputs[1], Histogram: r.Outputs[2]}, nil
}

// StochResult holds the slowed %K line and its %D average.
type StochResult struct {
	Lookback int
	K        []float64
	D        []float64
}

func Stoch(high, low, close []float64, kPeriod, kSlowing, dPeriod int) (StochResult, error) {
	r, err := Compute("stoch", [][]float64{high, low, close}, ints(kPeriod, kSlowing, dPeriod)...)
	if err != nil {
		return StochResult{}, err
	}
	return StochResult{Lookback: r.Lookback, K: r.Outputs[0], D: r.Outputs[1]}, nil
}

// FisherResult holds the Fisher transform and its one-bar lag.
type FisherResult struct {
	Lookback int
	Fisher   []float64
	Signal   []float64
}

func Fisher(high, low []float64, period int) (FisherResult, error) {
	r, err := Compute("fisher", [][]float64{high, low}, ints(period)...)
	if err != nil {
		return FisherResult{}, err
	}
	return FisherResult{Lookback: r.Lookback, Fisher: r.Outputs[0], Signal: r.Outputs[1]}, nil
}

// MSWResult holds the Mesa sine wave and its 45° lead.
type MSWResult struct {
	Lookback int
	Sine     []float64
	Lead     []float64
}

func MSW(src []float64, period int) (MSWResult, error) {
	r, err := Compute("msw", [][]float64{src}, ints(period)...)
	if err != nil {
		return MSWResult{}, err
	}
	return MSWResult{Lookback: r.Lookback, Sine: r.Outputs[0], Lead: r.Outputs[1]}, nil
}

// ---- Trend ----

// DirectionalResult pairs the plus and minus sides of DI or DM.
type DirectionalResult struct {
	Lookback int
	Plus     []float64
	Minus    []float64
}

func directional(name string, inputs [][]float64, period int) (DirectionalResult, error) {
	r, err := Compute(name, inputs, float64(period))
	if err != nil {
		return DirectionalResult{}, err
	}
	return DirectionalResult{Lookback: r.Lookback, Plus: r.Outputs[0], Minus: r.Outputs[1]}, nil
}

func DI(high, low, close []float64, period int) (DirectionalResult, error) {
	return directional("di", [][]float64{high, low, close}, period)
}

func DM(high, low []float64, period int) (DirectionalResult, error) {
	return directional("dm", [][]float64{high, low}, period)
}

func ADX(high, low, close []float64, period int) (Series, error) {
	return single("adx", [][]float64{high, low, close}, ints(period)...)
}

// AroonResult holds the Aroon down and up lines.
type AroonResult struct {
	Lookback int
	Down     []float64
	Up       []float64
}

func Aroon(high, low []float64, period int) (AroonResult, error) {
	r, err := Compute("aroon", [][]float64{high, low}, ints(period)...)
	if err != nil {
		return AroonResult{}, err
	}
	return AroonResult{Lookback: r.Lookback, Down: r.Outputs[0], Up: r.Outputs[1]}, nil
}

func AroonOsc(high, low []float64, period int) (Series, error) {
	return single("aroonosc", [][]float64{high, low}, ints(period)...)
}

// PSAR is the parabolic stop and reverse.
func PSAR(high, low []float64, step, maxStep float64) (Series, error) {
	return single("psar", [][]float64{high, low}, step, maxStep)
}

// DefaultPSAR uses the conventional 0.02 step and 0.2 cap.
func DefaultPSAR(high, low []float64) (Series, error) {
	return PSAR(high, low, trend.DefaultSARStep, trend.DefaultSARMaxStep)
}

// ---- Volume ----

func OBV(close, volume []float64) (Series, error) {
	return single("obv", [][]float64{close, volume})
}

func AD(high, low, close, volume []float64) (Series, error) {
	return single("ad", [][]float64{high, low, close, volume})
}

func MFI(high, low, close, volume []float64, period int) (Series, error) {
	return single("mfi", [][]float64{high, low, close, volume}, ints(period)...)
}
