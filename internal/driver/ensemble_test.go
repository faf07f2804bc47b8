package driver

import (
	"context"
	"testing"

	"github.com/san-kum/emberfx/internal/emitter"
)

func TestEnsembleRunsAllSeeds(t *testing.T) {
	cfg := emitter.DefaultConfig()
	cfg.Rate = 50
	cfg.PositionVariance.X = 1

	mk := func() []Metric { return []Metric{&countingMetric{}} }
	e := NewEnsemble(cfg, mk, 8, 100)

	results, err := e.Run(context.Background(), Config{Dt: 20, Duration: 400})
	if err != nil {
		t.Fatalf("ensemble run failed: %v", err)
	}
	if len(results) != 8 {
		t.Fatalf("expected 8 results, got %d", len(results))
	}
	for i, r := range results {
		if len(r.Frames) != 20 {
			t.Errorf("run %d: expected 20 frames, got %d", i, len(r.Frames))
		}
		if r.Metrics["frames_seen"] != 20 {
			t.Errorf("run %d: per-run metrics not isolated: %v", i, r.Metrics)
		}
	}
}

func TestEnsembleRejectsInvalid(t *testing.T) {
	cfg := emitter.DefaultConfig()
	cfg.Capacity = 0

	e := NewEnsemble(cfg, nil, 2, 1)
	if _, err := e.Run(context.Background(), Config{Dt: 10, Duration: 100}); err == nil {
		t.Error("invalid emitter config should fail the ensemble")
	}
}
