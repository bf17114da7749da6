package forecast

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"golang.org/x/sync/errgroup"
)

// Option customizes a Run.
type Option func(*runOptions)

type runOptions struct {
	seed    uint64
	seeded  bool
	workers int
	level   float64
	bins    int
	logger  *log.Logger
}

// WithSeed makes the run reproducible: the same seed and Config always produce
// the same Summary.
func WithSeed(seed uint64) Option {
	return func(o *runOptions) { o.seed, o.seeded = seed, true }
}

// WithWorkers spreads the trials over n goroutines. The Summary does not depend on n.
func WithWorkers(n int) Option {
	return func(o *runOptions) { o.workers = n }
}

// WithConfidenceLevel sets the level of the confidence interval, DefaultConfidenceLevel otherwise.
func WithConfidenceLevel(level float64) Option {
	return func(o *runOptions) { o.level = level }
}

// WithBins adds a histogram of n buckets to the Summary.
func WithBins(n int) Option {
	return func(o *runOptions) { o.bins = n }
}

// WithLogger reports the run progress to l. Runs are silent by default.
func WithLogger(l *log.Logger) Option {
	return func(o *runOptions) { o.logger = l }
}

func (o *runOptions) logf(format string, args ...any) {
	if o.logger != nil {
		o.logger.Printf(format, args...)
	}
}

// Run simulates cfg.NumSimulations independent trials and summarizes their outcomes.
//
// Trial i draws its returns from a generator seeded with (seed, i), so that the
// sample is the same whatever the number of workers. Invalid configurations
// are rejected before any trial runs. The run fails as a whole: on error, or
// when ctx is done, no Summary is returned.
func Run(ctx context.Context, cfg Config, opts ...Option) (*Summary, error) {
	o := runOptions{workers: 1, level: DefaultConfidenceLevel}
	for _, opt := range opts {
		opt(&o)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if _, _, err := intervalIndices(cfg.NumSimulations, o.level); err != nil {
		return nil, err
	}
	if !o.seeded {
		seed, err := NewSeed()
		if err != nil {
			return nil, err
		}
		o.seed = seed
	}
	o.workers = max(1, min(o.workers, cfg.NumSimulations))

	o.logf("running %d trials over %d years, seed %d, %d workers", cfg.NumSimulations, cfg.Years, o.seed, o.workers)
	start := time.Now()
	sample, err := simulate(ctx, cfg, o)
	if err != nil {
		return nil, err
	}
	o.logf("%d trials done in %v", len(sample), time.Since(start))

	s, err := Summarize(sample, cfg.Goal, o.level)
	if err != nil {
		return nil, err
	}
	s.Seed = o.seed
	if o.bins > 0 {
		s.Distribution = Histogram(sample, o.bins)
	}
	return s, nil
}

// simulate runs all the trials and returns their outcomes indexed by trial.
func simulate(ctx context.Context, cfg Config, o runOptions) ([]float64, error) {
	n := cfg.NumSimulations
	sample := make([]float64, n)

	g, ctx := errgroup.WithContext(ctx)
	for w := range o.workers {
		// worker w owns trials w, w+workers, w+2*workers...
		g.Go(func() error {
			for i := w; i < n; i += o.workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				s := NewReturnSampler(rand.NewPCG(o.seed, uint64(i)))
				v, err := RunTrial(cfg, s)
				if err != nil {
					return fmt.Errorf("trial %d: %w", i, err)
				}
				sample[i] = v
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sample, nil
}
