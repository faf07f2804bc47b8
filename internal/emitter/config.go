package emitter

import (
	"fmt"

	"github.com/san-kum/emberfx/internal/sample"
	"github.com/san-kum/emberfx/internal/vecmath"
)

// Config holds every randomized-range parameter an emitter samples from.
// All durations are milliseconds; velocities and accelerations are units
// per second; spin and rotation speeds are degrees per second.
type Config struct {
	Rate     float64 // particles per second of continuous emission
	Capacity int     // fixed pool capacity, set at construction

	Domain sample.Domain

	SizeMin, SizeMax float64
	AgeMin, AgeMax   float64 // milliseconds

	Position         vecmath.Vec3
	PositionVariance vecmath.Vec3
	Velocity         vecmath.Vec3
	VelocityVariance vecmath.Vec3

	Acceleration         vecmath.Vec3
	AccelerationVariance vecmath.Vec3

	SpinMin, SpinMax float64 // per-particle billboard spin

	RotationSpeedMin, RotationSpeedMax float64 // shared orbit rotation
	RotationAxis                       vecmath.Vec3
	RotationAxisVariance               vecmath.Vec3

	OrbitPosition     bool
	OrbitVelocity     bool
	OrbitAcceleration bool

	Started bool
	Seed    int64
}

func DefaultConfig() Config {
	return Config{
		Rate:         10,
		Capacity:     256,
		SizeMin:      1,
		SizeMax:      1,
		AgeMin:       1000,
		AgeMax:       1000,
		RotationAxis: vecmath.Vec3{Y: 1},
		Started:      true,
		Seed:         1,
	}
}

// Validate rejects configurations that would make sampling undefined:
// inverted ranges, negative rate, negative variance components.
func (c Config) Validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCapacity, c.Capacity)
	}
	if c.Rate < 0 {
		return fmt.Errorf("%w: %g", ErrNegativeRate, c.Rate)
	}
	ranges := []struct {
		name     string
		min, max float64
	}{
		{"size", c.SizeMin, c.SizeMax},
		{"age", c.AgeMin, c.AgeMax},
		{"spin", c.SpinMin, c.SpinMax},
		{"rotation speed", c.RotationSpeedMin, c.RotationSpeedMax},
	}
	for _, r := range ranges {
		if r.min > r.max {
			return fmt.Errorf("%w: %s [%g, %g]", ErrRangeInverted, r.name, r.min, r.max)
		}
	}
	variances := []struct {
		name string
		v    vecmath.Vec3
	}{
		{"position", c.PositionVariance},
		{"velocity", c.VelocityVariance},
		{"acceleration", c.AccelerationVariance},
		{"rotation axis", c.RotationAxisVariance},
	}
	for _, vv := range variances {
		if vv.v.X < 0 || vv.v.Y < 0 || vv.v.Z < 0 {
			return fmt.Errorf("%w: %s %+v", ErrNegativeVariance, vv.name, vv.v)
		}
	}
	return nil
}
