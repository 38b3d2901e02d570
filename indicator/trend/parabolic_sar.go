package trend

const (
	DefaultSARStep    = 0.02
	DefaultSARMaxStep = 0.2
)

// sarState tracks the current trend, extreme point (EP), acceleration factor
// (AF) and SAR value while walking the bars.
type sarState struct {
	step    float64
	maxStep float64

	af      float64
	ep      float64
	sar     float64
	uptrend bool
}

// PSAR writes Wilder's Parabolic SAR (Stop and Reverse) for every bar after
// the first. The initial trend is up unless the first bar's midpoint is above
// the second's.
func PSAR(dst, high, low []float64, step, maxStep float64) {
	s := sarState{step: step, maxStep: maxStep, af: step}
	s.uptrend = high[0]+low[0] <= high[1]+low[1]
	if s.uptrend {
		s.ep, s.sar = high[0], low[0]
	} else {
		s.ep, s.sar = low[0], high[0]
	}

	for i := 1; i < len(high); i++ {
		dst[i-1] = s.update(high, low, i)
	}
}

func (s *sarState) update(high, low []float64, i int) float64 {
	s.sar += s.af * (s.ep - s.sar)

	if s.uptrend {
		// SAR never rises above the prior two lows.
		if i >= 2 && s.sar > low[i-2] {
			s.sar = low[i-2]
		}
		if s.sar > low[i-1] {
			s.sar = low[i-1]
		}
		if high[i] > s.ep {
			s.ep = high[i]
			s.accelerate()
		}
	} else {
		if i >= 2 && s.sar < high[i-2] {
			s.sar = high[i-2]
		}
		if s.sar < high[i-1] {
			s.sar = high[i-1]
		}
		if low[i] < s.ep {
			s.ep = low[i]
			s.accelerate()
		}
	}

	if (s.uptrend && low[i] < s.sar) || (!s.uptrend && high[i] > s.sar) {
		// Reversal: SAR jumps to the old extreme point.
		s.af = s.step
		s.sar = s.ep
		s.uptrend = !s.uptrend
		if s.uptrend {
			s.ep = high[i]
		} else {
			s.ep = low[i]
		}
	}
	return s.sar
}

func (s *sarState) accelerate() {
	s.af += s.step
	if s.af > s.maxStep {
		s.af = s.maxStep
	}
}
