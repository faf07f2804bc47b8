// Package orbit maintains the shared rotation an emitter applies to newly
// sampled particle vectors. The axis and angular speed are sampled once,
// when the emitter is built or reconfigured, and the rotation evolves
// incrementally as simulation time passes.
package orbit

import (
	"math"

	"github.com/san-kum/emberfx/internal/sample"
	"github.com/san-kum/emberfx/internal/vecmath"
)

type Composer struct {
	axis  vecmath.Vec3
	speed float64 // degrees per second
	rot   vecmath.Mat3
}

// New samples the rotation axis from (axis, axisVariance) and the angular
// speed from [speedMin, speedMax]. A degenerate sampled axis falls back to
// +Y so Advance stays well defined.
func New(src *sample.Source, axis, axisVariance vecmath.Vec3, speedMin, speedMax float64) *Composer {
	a := src.VectorInBox(axis, axisVariance).Normalize()
	if a.IsZero() {
		a = vecmath.Vec3{Y: 1}
	}
	return &Composer{
		axis:  a,
		speed: src.Scalar(speedMin, speedMax),
		rot:   vecmath.Identity(),
	}
}

// Advance composes the accumulated rotation with the rotation covered in dt
// milliseconds.
func (c *Composer) Advance(dt float64) {
	if dt <= 0 || c.speed == 0 {
		return
	}
	angle := c.speed * (dt / 1000) * math.Pi / 180
	c.rot = c.rot.Mul(vecmath.AxisAngle(c.axis, angle))
}

// Apply rotates v by the accumulated rotation.
func (c *Composer) Apply(v vecmath.Vec3) vecmath.Vec3 {
	return c.rot.Apply(v)
}

func (c *Composer) Matrix() vecmath.Mat3 { return c.rot }
func (c *Composer) Axis() vecmath.Vec3   { return c.axis }
func (c *Composer) Speed() float64       { return c.speed }
