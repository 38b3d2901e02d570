package suite

import (
	"context"
	"testing"

	"github.com/evdnx/tulip/config"
)

func BenchmarkSuite_Compute(b *testing.B) {
	s, err := New(config.Default())
	if err != nil {
		b.Fatalf("Failed to create suite: %v", err)
	}
	job := Job{Indicator: "bbands", Inputs: [][]float64{wave(10_000)}, Options: []float64{20, 2}}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Compute(job); err != nil {
			b.Fatalf("Compute failed: %v", err)
		}
	}
}

func BenchmarkSuite_Run(b *testing.B) {
	s, err := New(config.Default())
	if err != nil {
		b.Fatalf("Failed to create suite: %v", err)
	}
	src := wave(10_000)
	jobs := []Job{
		{Indicator: "sma", Inputs: [][]float64{src}, Options: []float64{20}},
		{Indicator: "ema", Inputs: [][]float64{src}, Options: []float64{20}},
		{Indicator: "rsi", Inputs: [][]float64{src}, Options: []float64{14}},
		{Indicator: "macd", Inputs: [][]float64{src}, Options: []float64{12, 26, 9}},
		{Indicator: "kama", Inputs: [][]float64{src}, Options: []float64{10}},
		{Indicator: "trix", Inputs: [][]float64{src}, Options: []float64{15}},
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Run(context.Background(), jobs); err != nil {
			b.Fatalf("Run failed: %v", err)
		}
	}
}

func BenchmarkSuite_Outlook(b *testing.B) {
	s, err := New(config.Default())
	if err != nil {
		b.Fatalf("Failed to create suite: %v", err)
	}
	bars := crashThenSpike()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Outlook(context.Background(), bars); err != nil {
			b.Fatalf("Outlook failed: %v", err)
		}
	}
}
