package metrics

import (
	"testing"

	"github.com/san-kum/emberfx/internal/driver"
)

func frames() []driver.Frame {
	return []driver.Frame{
		{Time: 100, Live: 2, Spawned: 2, Expired: 0},
		{Time: 200, Live: 5, Spawned: 6, Expired: 1},
		{Time: 300, Live: 3, Spawned: 7, Expired: 4},
	}
}

func TestPeakPopulation(t *testing.T) {
	m := NewPeakPopulation()
	for _, f := range frames() {
		m.Observe(f)
	}
	if m.Value() != 5 {
		t.Errorf("peak: got %g, want 5", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("reset should clear the peak")
	}
}

func TestMeanPopulation(t *testing.T) {
	m := NewMeanPopulation()
	if m.Value() != 0 {
		t.Error("empty metric should report 0")
	}
	for _, f := range frames() {
		m.Observe(f)
	}
	want := (2.0 + 5 + 3) / 3
	if m.Value() != want {
		t.Errorf("mean: got %g, want %g", m.Value(), want)
	}
}

func TestThroughput(t *testing.T) {
	spawned := NewSpawned()
	expired := NewExpired()
	for _, f := range frames() {
		spawned.Observe(f)
		expired.Observe(f)
	}
	if spawned.Value() != 7 {
		t.Errorf("spawned: got %g, want 7", spawned.Value())
	}
	if expired.Value() != 4 {
		t.Errorf("expired: got %g, want 4", expired.Value())
	}
}

func TestSaturation(t *testing.T) {
	m := NewSaturation(5)
	for _, f := range frames() {
		m.Observe(f)
	}
	want := 1.0 / 3
	if m.Value() != want {
		t.Errorf("saturation: got %g, want %g", m.Value(), want)
	}
}
