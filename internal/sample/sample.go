// Package sample draws randomized particle properties from closed scalar
// ranges and from box or ellipsoid vector domains.
package sample

import (
	"math"
	"math/rand"

	"github.com/san-kum/emberfx/internal/vecmath"
)

// Domain selects the geometric region vector properties are drawn from.
type Domain int

const (
	DomainBox Domain = iota
	DomainEllipsoid
)

func (d Domain) String() string {
	if d == DomainEllipsoid {
		return "ellipsoid"
	}
	return "box"
}

// Source is a seedable generator. Not safe for concurrent use; each emitter
// owns one.
type Source struct {
	rng *rand.Rand
}

func New(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// Scalar returns a uniform value in [min, max]. min == max returns exactly
// that constant.
func (s *Source) Scalar(min, max float64) float64 {
	if min == max {
		return min
	}
	return min + s.rng.Float64()*(max-min)
}

// VectorInBox draws each axis independently as base + variance * u with u
// uniform in [-1, 1]. This matches the variance-scaling contract rather
// than uniform density over the box volume.
func (s *Source) VectorInBox(base, variance vecmath.Vec3) vecmath.Vec3 {
	return vecmath.Vec3{
		X: base.X + variance.X*s.signedUnit(),
		Y: base.Y + variance.Y*s.signedUnit(),
		Z: base.Z + variance.Z*s.signedUnit(),
	}
}

// VectorInEllipsoid draws a point uniformly within the ellipsoid centered at
// center with semi-axis lengths scale. A uniform direction on the unit
// sphere is scaled by cbrt(u) for uniform volumetric density, then stretched
// componentwise.
func (s *Source) VectorInEllipsoid(center, scale vecmath.Vec3) vecmath.Vec3 {
	dir := s.unitSphere()
	r := math.Cbrt(s.rng.Float64())
	return center.Add(dir.Scale(r).Mul(scale))
}

// Vector dispatches on the domain using the same base/variance pair for
// either sampler.
func (s *Source) Vector(d Domain, base, variance vecmath.Vec3) vecmath.Vec3 {
	if d == DomainEllipsoid {
		return s.VectorInEllipsoid(base, variance)
	}
	return s.VectorInBox(base, variance)
}

func (s *Source) signedUnit() float64 {
	return 2*s.rng.Float64() - 1
}

// unitSphere returns a uniformly distributed unit direction using normalized
// gaussian deviates.
func (s *Source) unitSphere() vecmath.Vec3 {
	for {
		v := vecmath.Vec3{
			X: s.rng.NormFloat64(),
			Y: s.rng.NormFloat64(),
			Z: s.rng.NormFloat64(),
		}
		if l := v.Length(); l > 1e-12 {
			return v.Scale(1 / l)
		}
	}
}
