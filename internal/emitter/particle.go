package emitter

import "github.com/san-kum/emberfx/internal/vecmath"

// Particle is one live slot in the pool. Instances are owned exclusively by
// the pool and reused in place; no identity persists across expiry.
type Particle struct {
	Position     vecmath.Vec3
	Velocity     vecmath.Vec3 // units per second
	Acceleration vecmath.Vec3 // units per second squared
	Size         float64
	Life         float64 // remaining, milliseconds
	TotalLife    float64 // milliseconds
	SpinAngle    float64 // degrees, wrapped into [0, 360)
	SpinSpeed    float64 // degrees per second
}

// View is the read-only per-particle snapshot handed to renderers: enough to
// place, size, and orient a billboard and to interpolate opacity or color
// from the remaining life fraction.
type View struct {
	Position     vecmath.Vec3
	Size         float64
	SpinAngle    float64
	LifeFraction float64 // remaining/total, in (0, 1]
}
