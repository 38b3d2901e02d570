// Package suite runs batches of indicator computations with bounded
// concurrency, structured logging and Prometheus metrics.
package suite

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/evdnx/tulip/config"
	"github.com/evdnx/tulip/indicator"
	"github.com/evdnx/tulip/internal/logging"
)

// Job is one indicator computation.
type Job struct {
	Indicator string
	Inputs    [][]float64
	Options   []float64
}

// Suite computes jobs against the indicator registry.
type Suite struct {
	cfg     config.Config
	logger  *zap.Logger
	reg     prometheus.Registerer
	metrics *Metrics
}

// Option customises a Suite.
type Option func(*Suite)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(s *Suite) { s.logger = l }
}

// WithRegisterer registers the suite metrics on reg. Without it no metrics
// are recorded, even when cfg.Metrics.Enabled is set.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(s *Suite) { s.reg = reg }
}

// New creates a suite from a validated configuration.
func New(cfg config.Config, opts ...Option) (*Suite, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Suite{cfg: cfg, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	if cfg.Metrics.Enabled && s.reg != nil {
		m, err := NewMetrics(cfg.Metrics.Namespace, s.reg)
		if err != nil {
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
		s.metrics = m
	}
	return s, nil
}

// FromConfig builds a suite whose logger follows cfg.Logging and whose
// metrics are registered on reg.
func FromConfig(cfg config.Config, reg prometheus.Registerer) (*Suite, error) {
	l, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, err
	}
	return New(cfg, WithLogger(l), WithRegisterer(reg))
}

// Metrics returns the registered collectors, or nil when metrics are off.
func (s *Suite) Metrics() *Metrics { return s.metrics }

// Config returns the configuration the suite was built with.
func (s *Suite) Config() config.Config { return s.cfg }

// Compute runs a single job synchronously.
func (s *Suite) Compute(job Job) (indicator.Result, error) {
	started := time.Now()
	res, samples, err := s.compute(job)
	elapsed := time.Since(started)
	s.metrics.observe(job.Indicator, samples, elapsed, err)

	if err != nil {
		s.logger.Warn("indicator failed",
			zap.String("indicator", job.Indicator),
			zap.Int("length", samples),
			zap.Error(err))
		return indicator.Result{}, err
	}
	s.logger.Debug("indicator computed",
		zap.String("indicator", job.Indicator),
		zap.Int("length", samples),
		zap.Int("lookback", res.Lookback),
		zap.Duration("duration", elapsed))
	return res, nil
}

func (s *Suite) compute(job Job) (indicator.Result, int, error) {
	samples := 0
	if len(job.Inputs) > 0 {
		samples = len(job.Inputs[0])
	}
	if samples > s.cfg.MaxInputLength {
		return indicator.Result{}, samples, fmt.Errorf("%w: %s input has %d samples, limit is %d",
			indicator.ErrInvalidInput, job.Indicator, samples, s.cfg.MaxInputLength)
	}
	d, err := indicator.Lookup(job.Indicator)
	if err != nil {
		return indicator.Result{}, samples, err
	}
	res, err := indicator.Compute(d, job.Inputs, job.Options)
	return res, samples, err
}

// Run computes jobs concurrently, at most cfg.Workers at a time, and returns
// their results in job order. The first failure cancels the remaining jobs
// and no results are returned.
func (s *Suite) Run(ctx context.Context, jobs []Job) ([]indicator.Result, error) {
	results := make([]indicator.Result, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Workers)

	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := s.Compute(job)
			if err != nil {
				return fmt.Errorf("job %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	s.logger.Debug("batch computed", zap.Int("jobs", len(jobs)))
	return results, nil
}
