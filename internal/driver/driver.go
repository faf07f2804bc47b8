package driver

import (
	"context"
	"fmt"

	"github.com/san-kum/emberfx/internal/emitter"
)

// Frame is one tick's worth of observable emitter state.
type Frame struct {
	Time    float64 // ms since the run started
	Live    int
	Spawned int // cumulative
	Expired int // cumulative
	Views   []emitter.View
}

// Metric accumulates a scalar over a run.
type Metric interface {
	Name() string
	Observe(f Frame)
	Value() float64
	Reset()
}

// Observer is notified after every frame.
type Observer interface {
	OnFrame(f Frame)
}

type Config struct {
	Dt       float64 // ms per frame
	Duration float64 // ms total
	Burst    int     // extra particles emitted on the first frame
}

type Result struct {
	Frames  []Frame
	Metrics map[string]float64
}

// Driver steps an emitter at a fixed cadence, recording frames and
// feeding metrics and observers.
type Driver struct {
	em        *emitter.Emitter
	metrics   []Metric
	observers []Observer
	capture   bool
}

func New(em *emitter.Emitter) *Driver {
	return &Driver{em: em, capture: true}
}

func (d *Driver) AddMetric(m Metric)     { d.metrics = append(d.metrics, m) }
func (d *Driver) AddObserver(o Observer) { d.observers = append(d.observers, o) }

// SetCaptureViews controls whether frames carry per-particle views.
// Long headless runs can disable it to keep results small.
func (d *Driver) SetCaptureViews(capture bool) { d.capture = capture }

func (d *Driver) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	steps := int(cfg.Duration / cfg.Dt)
	result := &Result{
		Frames:  make([]Frame, 0, steps),
		Metrics: make(map[string]float64),
	}

	for _, m := range d.metrics {
		m.Reset()
	}

	if cfg.Burst > 0 {
		d.em.Emit(cfg.Burst)
	}

	t := 0.0
	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		d.em.Update(cfg.Dt)
		t += cfg.Dt

		f := Frame{
			Time:    t,
			Live:    d.em.Live(),
			Spawned: d.em.TotalSpawned(),
			Expired: d.em.TotalExpired(),
		}
		if d.capture {
			f.Views = d.em.Snapshot(nil)
		}

		for _, m := range d.metrics {
			m.Observe(f)
		}
		for _, obs := range d.observers {
			obs.OnFrame(f)
		}
		result.Frames = append(result.Frames, f)
	}

	for _, m := range d.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

// RunWithCallback steps the emitter until the duration elapses or the
// callback returns false. Frames are not recorded.
func (d *Driver) RunWithCallback(ctx context.Context, cfg Config, callback func(Frame) bool) error {
	if err := validateConfig(cfg); err != nil {
		return err
	}

	if cfg.Burst > 0 {
		d.em.Emit(cfg.Burst)
	}

	t := 0.0
	for t < cfg.Duration {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		d.em.Update(cfg.Dt)
		t += cfg.Dt

		f := Frame{
			Time:    t,
			Live:    d.em.Live(),
			Spawned: d.em.TotalSpawned(),
			Expired: d.em.TotalExpired(),
		}
		if d.capture {
			f.Views = d.em.Snapshot(nil)
		}
		if !callback(f) {
			return nil
		}
	}

	return nil
}

func validateConfig(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", cfg.Duration)
	}
	if cfg.Burst < 0 {
		return fmt.Errorf("burst must be non-negative, got %d", cfg.Burst)
	}
	return nil
}
