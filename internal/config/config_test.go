package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/emberfx/internal/sample"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Domain != "box" {
		t.Errorf("expected domain box, got %s", cfg.Domain)
	}
	if cfg.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if cfg.Duration <= 0 {
		t.Error("duration should be positive")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	cfg := GetPreset("fountain")
	path := filepath.Join(t.TempDir(), "fountain.yaml")

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if loaded.Rate != cfg.Rate {
		t.Errorf("rate: got %g, want %g", loaded.Rate, cfg.Rate)
	}
	if loaded.Velocity.Base.Y != cfg.Velocity.Base.Y {
		t.Errorf("velocity.base.y: got %g, want %g", loaded.Velocity.Base.Y, cfg.Velocity.Base.Y)
	}
	if loaded.Age != cfg.Age {
		t.Errorf("age: got %+v, want %+v", loaded.Age, cfg.Age)
	}
}

func TestLoadKeepsDefaults(t *testing.T) {
	// A partial file overrides only the keys it names.
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("rate: 99\n"), 0644); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Rate != 99 {
		t.Errorf("rate: got %g, want 99", loaded.Rate)
	}
	if loaded.Capacity != DefaultCapacity {
		t.Errorf("capacity should keep default %d, got %d", DefaultCapacity, loaded.Capacity)
	}
}

func TestToEmitter(t *testing.T) {
	cfg := GetPreset("smoke")
	ec, err := cfg.ToEmitter()
	if err != nil {
		t.Fatal(err)
	}
	if ec.Domain != sample.DomainEllipsoid {
		t.Error("smoke preset should map to the ellipsoid domain")
	}
	if ec.AgeMin != 3000 || ec.AgeMax != 6000 {
		t.Errorf("age range: got [%g,%g]", ec.AgeMin, ec.AgeMax)
	}
	if err := ec.Validate(); err != nil {
		t.Errorf("mapped config should validate: %v", err)
	}
}

func TestToEmitterUnknownDomain(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Domain = "torus"
	if _, err := cfg.ToEmitter(); err == nil {
		t.Error("expected error for unknown domain")
	}
}

func TestFromEmitterRoundTrip(t *testing.T) {
	cfg := GetPreset("orbitals")
	ec, err := cfg.ToEmitter()
	if err != nil {
		t.Fatal(err)
	}

	back := DefaultConfig()
	back.FromEmitter(ec)
	ec2, err := back.ToEmitter()
	if err != nil {
		t.Fatal(err)
	}
	if ec2 != ec {
		t.Errorf("round trip changed the config:\n got %+v\nwant %+v", ec2, ec)
	}
}

func TestPresetsValid(t *testing.T) {
	for name, cfg := range Presets {
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Error("expected presets")
	}
}
