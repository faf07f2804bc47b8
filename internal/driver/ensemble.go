package driver

import (
	"context"
	"sync"

	"github.com/san-kum/emberfx/internal/emitter"
)

// Ensemble runs the same emitter configuration across consecutive
// seeds in parallel, one goroutine per run.
type Ensemble struct {
	cfg       emitter.Config
	metrics   func() []Metric
	numRuns   int
	seedStart int64
}

// NewEnsemble prepares a seed sweep. metrics builds a fresh metric set
// per run so accumulators are not shared across goroutines; it may be
// nil.
func NewEnsemble(cfg emitter.Config, metrics func() []Metric, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{cfg: cfg, metrics: metrics, numRuns: numRuns, seedStart: seedStart}
}

func (e *Ensemble) Run(ctx context.Context, cfg Config) ([]*Result, error) {
	results := make([]*Result, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			ecfg := e.cfg
			ecfg.Seed = e.seedStart + int64(idx)

			em, err := emitter.New(ecfg)
			if err != nil {
				errs[idx] = err
				return
			}

			d := New(em)
			d.SetCaptureViews(false)
			if e.metrics != nil {
				for _, m := range e.metrics() {
					d.AddMetric(m)
				}
			}

			results[idx], errs[idx] = d.Run(ctx, cfg)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
