package metrics

import (
	"github.com/san-kum/emberfx/internal/driver"
)

// PeakPopulation tracks the largest live count seen during a run.
type PeakPopulation struct {
	name string
	peak int
}

func NewPeakPopulation() *PeakPopulation {
	return &PeakPopulation{name: "peak_population"}
}

func (p *PeakPopulation) Name() string { return p.name }

func (p *PeakPopulation) Observe(f driver.Frame) {
	if f.Live > p.peak {
		p.peak = f.Live
	}
}

func (p *PeakPopulation) Value() float64 { return float64(p.peak) }

func (p *PeakPopulation) Reset() { p.peak = 0 }

// MeanPopulation averages the live count across all frames.
type MeanPopulation struct {
	name    string
	total   float64
	samples int
}

func NewMeanPopulation() *MeanPopulation {
	return &MeanPopulation{name: "mean_population"}
}

func (m *MeanPopulation) Name() string { return m.name }

func (m *MeanPopulation) Observe(f driver.Frame) {
	m.total += float64(f.Live)
	m.samples++
}

func (m *MeanPopulation) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total / float64(m.samples)
}

func (m *MeanPopulation) Reset() {
	m.total = 0
	m.samples = 0
}

// Throughput reports total particles spawned and expired over a run.
// The counters in Frame are cumulative, so the last observation wins.
type Throughput struct {
	name    string
	expired bool
	last    int
}

func NewSpawned() *Throughput {
	return &Throughput{name: "total_spawned"}
}

func NewExpired() *Throughput {
	return &Throughput{name: "total_expired", expired: true}
}

func (t *Throughput) Name() string { return t.name }

func (t *Throughput) Observe(f driver.Frame) {
	if t.expired {
		t.last = f.Expired
	} else {
		t.last = f.Spawned
	}
}

func (t *Throughput) Value() float64 { return float64(t.last) }

func (t *Throughput) Reset() { t.last = 0 }

// Saturation measures the fraction of frames the emitter spent at or
// above the given live count, typically the pool capacity.
type Saturation struct {
	name      string
	threshold int
	hits      int
	samples   int
}

func NewSaturation(threshold int) *Saturation {
	return &Saturation{name: "saturation", threshold: threshold}
}

func (s *Saturation) Name() string { return s.name }

func (s *Saturation) Observe(f driver.Frame) {
	if f.Live >= s.threshold {
		s.hits++
	}
	s.samples++
}

func (s *Saturation) Value() float64 {
	if s.samples == 0 {
		return 0
	}
	return float64(s.hits) / float64(s.samples)
}

func (s *Saturation) Reset() {
	s.hits = 0
	s.samples = 0
}
