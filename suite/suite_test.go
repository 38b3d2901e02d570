package suite

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/evdnx/tulip/config"
	"github.com/evdnx/tulip/indicator"
	"github.com/evdnx/tulip/quote"
)

func wave(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 100 + 10*math.Sin(float64(i)/5) + float64(i%4)
	}
	return out
}

func newSuite(t *testing.T, opts ...Option) *Suite {
	t.Helper()
	s, err := New(config.Default(), opts...)
	require.NoError(t, err)
	return s
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Workers = 0
	_, err := New(cfg)
	assert.Error(t, err)
}

func TestCompute(t *testing.T) {
	s := newSuite(t)
	src := wave(50)

	got, err := s.Compute(Job{Indicator: "ema", Inputs: [][]float64{src}, Options: []float64{10}})
	require.NoError(t, err)
	want, err := indicator.Run("ema", [][]float64{src}, []float64{10})
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = s.Compute(Job{Indicator: "nope"})
	assert.ErrorIs(t, err, indicator.ErrNotFound)

	_, err = s.Compute(Job{Indicator: "sma", Inputs: [][]float64{src}, Options: []float64{0}})
	assert.ErrorIs(t, err, indicator.ErrInvalidOption)
}

func TestCompute_MaxInputLength(t *testing.T) {
	cfg := config.Default()
	cfg.MaxInputLength = 10
	s, err := New(cfg)
	require.NoError(t, err)

	_, err = s.Compute(Job{Indicator: "sma", Inputs: [][]float64{wave(11)}, Options: []float64{2}})
	assert.ErrorIs(t, err, indicator.ErrInvalidInput)

	_, err = s.Compute(Job{Indicator: "sma", Inputs: [][]float64{wave(10)}, Options: []float64{2}})
	assert.NoError(t, err)
}

func TestRun_OrderedResults(t *testing.T) {
	cfg := config.Default()
	cfg.Workers = 2
	s, err := New(cfg)
	require.NoError(t, err)

	src := wave(120)
	var jobs []Job
	for p := 2; p < 30; p++ {
		jobs = append(jobs, Job{Indicator: "wma", Inputs: [][]float64{src}, Options: []float64{float64(p)}})
	}
	results, err := s.Run(context.Background(), jobs)
	require.NoError(t, err)
	require.Len(t, results, len(jobs))
	for i, r := range results {
		assert.Equal(t, i+1, r.Lookback, "result %d is out of order", i)
	}
}

func TestRun_FailFast(t *testing.T) {
	s := newSuite(t)
	src := wave(40)
	jobs := []Job{
		{Indicator: "sma", Inputs: [][]float64{src}, Options: []float64{5}},
		{Indicator: "sma", Inputs: [][]float64{src[:3]}, Options: []float64{5}},
		{Indicator: "rsi", Inputs: [][]float64{src}, Options: []float64{14}},
	}
	results, err := s.Run(context.Background(), jobs)
	require.ErrorIs(t, err, indicator.ErrInsufficientData)
	assert.Contains(t, err.Error(), "job 1")
	assert.Nil(t, results)
}

func TestRun_Canceled(t *testing.T) {
	s := newSuite(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Run(ctx, []Job{{Indicator: "sma", Inputs: [][]float64{wave(10)}, Options: []float64{2}}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_Empty(t *testing.T) {
	results, err := newSuite(t).Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := newSuite(t, WithRegisterer(reg))
	m := s.Metrics()
	require.NotNil(t, m)

	src := wave(30)
	for i := 0; i < 2; i++ {
		_, err := s.Compute(Job{Indicator: "sma", Inputs: [][]float64{src}, Options: []float64{5}})
		require.NoError(t, err)
	}
	_, err := s.Compute(Job{Indicator: "sma", Inputs: [][]float64{src[:2]}, Options: []float64{5}})
	require.Error(t, err)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Calls.WithLabelValues("sma", resultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Calls.WithLabelValues("sma", resultError)))
	assert.Equal(t, 60.0, testutil.ToFloat64(m.Samples))
	assert.Equal(t, 1, testutil.CollectAndCount(m.Duration))

	n, err := testutil.GatherAndCount(reg, "tulip_indicator_calls_total", "tulip_indicator_samples_total")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = New(config.Default(), WithRegisterer(reg))
	assert.Error(t, err, "registering twice on one registry fails")
}

func TestFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Level = "error"
	s, err := FromConfig(cfg, prometheus.NewRegistry())
	require.NoError(t, err)
	assert.NotNil(t, s.Metrics())
	assert.Equal(t, cfg, s.Config())

	cfg.Logging.Level = "loud"
	_, err = FromConfig(cfg, prometheus.NewRegistry())
	assert.Error(t, err)
}

func TestMetrics_Disabled(t *testing.T) {
	cfg := config.Default()
	cfg.Metrics.Enabled = false
	reg := prometheus.NewRegistry()
	s, err := New(cfg, WithRegisterer(reg))
	require.NoError(t, err)
	assert.Nil(t, s.Metrics())

	_, err = s.Compute(Job{Indicator: "sma", Inputs: [][]float64{wave(10)}, Options: []float64{2}})
	require.NoError(t, err)
	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Empty(t, families)
}

func TestLogging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	s := newSuite(t, WithLogger(zap.New(core)))

	_, err := s.Compute(Job{Indicator: "sma", Inputs: [][]float64{wave(10)}, Options: []float64{3}})
	require.NoError(t, err)
	_, err = s.Compute(Job{Indicator: "nope"})
	require.Error(t, err)

	computed := logs.FilterMessage("indicator computed").All()
	require.Len(t, computed, 1)
	fields := computed[0].ContextMap()
	assert.Equal(t, "sma", fields["indicator"])
	assert.Equal(t, int64(10), fields["length"])
	assert.Equal(t, int64(2), fields["lookback"])
	assert.IsType(t, time.Duration(0), fields["duration"])

	failed := logs.FilterMessage("indicator failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, zapcore.WarnLevel, failed[0].Level)
}

// crashThenSpike is a steady decline ending in one large up bar on heavy
// volume.
func crashThenSpike() quote.Bars {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	bars := make(quote.Bars, 60)
	for i := range bars {
		c := 200 - float64(i)
		v := 1000.0
		if i == len(bars)-1 {
			c = bars[i-1].Close + 30
			v = 100_000
		}
		bars[i] = quote.Bar{
			Time: start.Add(time.Duration(i) * time.Minute),
			Open: c, High: c + 1, Low: c - 1, Close: c, Volume: v,
		}
	}
	return bars
}

func TestOutlook_Reversal(t *testing.T) {
	s := newSuite(t)
	out, err := s.Outlook(context.Background(), crashThenSpike())
	require.NoError(t, err)

	votes := map[string]Vote{}
	for _, v := range out.Votes {
		votes[v.Indicator] = v
	}
	require.Len(t, votes, 6)
	assert.True(t, votes["rsi"].Bullish)
	assert.True(t, votes["mfi"].Bullish)
	assert.True(t, votes["aroonosc"].Bullish)
	assert.False(t, votes["linregslope"].Bullish)
	for _, v := range out.Votes {
		assert.False(t, v.Bearish, v.Indicator)
	}

	assert.Equal(t, StrongBullish, out.Bullish)
	assert.Equal(t, Neutral, out.Bearish)
}

func TestOutlook_Errors(t *testing.T) {
	s := newSuite(t)
	_, err := s.Outlook(context.Background(), crashThenSpike()[:30])
	assert.ErrorIs(t, err, indicator.ErrInsufficientData)

	bad := crashThenSpike()
	bad[3].Low = bad[3].High + 1
	_, err = s.Outlook(context.Background(), bad)
	assert.ErrorIs(t, err, quote.ErrInvalidBar)
}

func TestLabel(t *testing.T) {
	tests := []struct {
		weight float64
		count  int
		want   Signal
	}{
		{1.5, 1, Neutral},
		{0, 0, Neutral},
		{3.2, 3, StrongBullish},
		{3.0, 2, StrongBullish},
		{2.7, 2, Bullish},
		{2.0, 2, Bullish},
		{1.8, 2, WeakBullish},
		{1.3, 2, WeakBullish},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, label(tt.weight, tt.count, StrongBullish, Bullish, WeakBullish))
	}
}
