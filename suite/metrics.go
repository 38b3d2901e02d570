package suite

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Result label values of the calls counter.
const (
	resultOK    = "ok"
	resultError = "error"
)

// Metrics holds the collectors updated by every Suite computation.
type Metrics struct {
	Calls    *prometheus.CounterVec   // labels: indicator, result=ok|error
	Duration *prometheus.HistogramVec // labels: indicator
	Samples  prometheus.Counter       // input samples processed by successful calls
}

// NewMetrics creates the collectors under namespace and registers them on reg.
func NewMetrics(namespace string, reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "indicator_calls_total",
			Help:      "Indicator computations by outcome",
		}, []string{"indicator", "result"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "indicator_compute_duration_seconds",
			Help:      "Kernel latency per indicator computation",
			Buckets:   []float64{0.000001, 0.000005, 0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		}, []string{"indicator"}),
		Samples: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "indicator_samples_total",
			Help:      "Input samples processed by successful computations",
		}),
	}
	for _, c := range []prometheus.Collector{m.Calls, m.Duration, m.Samples} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observe(name string, samples int, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.Calls.WithLabelValues(name, resultError).Inc()
		return
	}
	m.Calls.WithLabelValues(name, resultOK).Inc()
	m.Duration.WithLabelValues(name).Observe(elapsed.Seconds())
	m.Samples.Add(float64(samples))
}
