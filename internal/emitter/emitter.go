// Package emitter is the particle-emission and per-frame simulation core:
// a capacity-bounded pool, a drift-free emission scheduler, randomized
// sampling of particle properties from box or ellipsoid domains, and the
// shared orbit rotation applied to freshly sampled vectors.
//
// The model is single-threaded and frame-driven. Update, Emit, Snapshot and
// the setters must not be called concurrently on the same instance.
package emitter

import (
	"fmt"

	"github.com/san-kum/emberfx/internal/orbit"
	"github.com/san-kum/emberfx/internal/sample"
	"github.com/san-kum/emberfx/internal/vecmath"
)

// OrientationFunc supplies the owning node's current world orientation. The
// core depends only on this read-only query, never on a scene-graph type.
type OrientationFunc func() vecmath.Mat3

type Option func(*Emitter)

// WithOrientation injects the owning node's orientation query used by the
// orbit flags. Absent, the orientation is the identity.
func WithOrientation(fn OrientationFunc) Option {
	return func(e *Emitter) { e.orientation = fn }
}

// WithSource substitutes the random source, letting tests drive sampling
// from a known seed independent of Config.Seed.
func WithSource(src *sample.Source) Option {
	return func(e *Emitter) { e.src = src }
}

// Emitter orchestrates the scheduler, the sampler, the orbit rotation and
// the pool. One Update(dt) per simulation tick; Snapshot between ticks.
type Emitter struct {
	cfg         Config
	src         *sample.Source
	shared      *orbit.Composer
	orientation OrientationFunc
	clock       Clock
	pool        *Pool

	totalSpawned int
	totalExpired int
}

func New(cfg Config, opts ...Option) (*Emitter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Emitter{
		cfg:   cfg,
		src:   sample.New(cfg.Seed),
		clock: NewClock(cfg.Rate),
		pool:  NewPool(cfg.Capacity),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.resampleRotation()
	return e, nil
}

// resampleRotation rebuilds the shared orbit composer. Called at
// construction and whenever the rotation parameters change; per spec the
// orbit axis and speed are sampled once, not per particle.
func (e *Emitter) resampleRotation() {
	e.shared = orbit.New(e.src,
		e.cfg.RotationAxis, e.cfg.RotationAxisVariance,
		e.cfg.RotationSpeedMin, e.cfg.RotationSpeedMax)
}

// Update advances the emitter by dt milliseconds: schedules continuous
// emission while running, spawns, then ages every live particle including
// the ones spawned this same frame (so a particle's first frame covers the
// dt it was born into). Negative dt is clamped to zero; zero is a no-op
// for aging but still a valid tick.
func (e *Emitter) Update(dt float64) {
	if dt < 0 {
		dt = 0
	}
	e.shared.Advance(dt)
	if e.cfg.Started {
		e.spawn(e.clock.Tick(dt))
	}
	e.totalExpired += e.pool.Age(dt)
}

// Emit spawns up to n particles immediately, bounded by free pool capacity.
// It neither consumes nor resets continuous-emission credit, and works
// whether or not the emitter is running. Returns the number spawned.
func (e *Emitter) Emit(n int) int {
	return e.spawn(n)
}

func (e *Emitter) spawn(n int) int {
	if n <= 0 {
		return 0
	}
	cfg := &e.cfg // immutable for the duration of the tick
	rot := e.orbitRotation()
	spawned := e.pool.Spawn(n, func(p *Particle) {
		e.initParticle(p, cfg, rot)
	})
	e.totalSpawned += spawned
	return spawned
}

func (e *Emitter) initParticle(p *Particle, cfg *Config, rot vecmath.Mat3) {
	p.Size = e.src.Scalar(cfg.SizeMin, cfg.SizeMax)
	p.TotalLife = e.src.Scalar(cfg.AgeMin, cfg.AgeMax)
	p.Life = p.TotalLife
	p.SpinSpeed = e.src.Scalar(cfg.SpinMin, cfg.SpinMax)
	p.SpinAngle = 0

	p.Position = e.src.Vector(cfg.Domain, cfg.Position, cfg.PositionVariance)
	p.Velocity = e.src.Vector(cfg.Domain, cfg.Velocity, cfg.VelocityVariance)
	p.Acceleration = e.src.Vector(cfg.Domain, cfg.Acceleration, cfg.AccelerationVariance)

	if cfg.OrbitPosition {
		p.Position = rot.Apply(p.Position)
	}
	if cfg.OrbitVelocity {
		p.Velocity = rot.Apply(p.Velocity)
	}
	if cfg.OrbitAcceleration {
		p.Acceleration = rot.Apply(p.Acceleration)
	}
}

// orbitRotation is the rotation applied to freshly sampled vectors when an
// orbit flag is set: the owning node's orientation composed with the shared
// rotation, evaluated once per spawn batch.
func (e *Emitter) orbitRotation() vecmath.Mat3 {
	rot := e.shared.Matrix()
	if e.orientation != nil {
		rot = e.orientation().Mul(rot)
	}
	return rot
}

// Snapshot appends a View per live particle to dst and returns it. Passing
// a reused buffer avoids per-frame allocation.
func (e *Emitter) Snapshot(dst []View) []View {
	for i := range e.pool.Particles() {
		p := &e.pool.Particles()[i]
		frac := 0.0
		if p.TotalLife > 0 {
			frac = p.Life / p.TotalLife
		}
		dst = append(dst, View{
			Position:     p.Position,
			Size:         p.Size,
			SpinAngle:    p.SpinAngle,
			LifeFraction: frac,
		})
	}
	return dst
}

// Particles exposes live particles for read-only iteration. Not valid
// across Update/Emit calls.
func (e *Emitter) Particles() []Particle { return e.pool.Particles() }

func (e *Emitter) Start()        { e.cfg.Started = true }
func (e *Emitter) Stop()         { e.cfg.Started = false }
func (e *Emitter) Running() bool { return e.cfg.Started }

func (e *Emitter) Live() int         { return e.pool.Len() }
func (e *Emitter) Capacity() int     { return e.pool.Capacity() }
func (e *Emitter) TotalSpawned() int { return e.totalSpawned }
func (e *Emitter) TotalExpired() int { return e.totalExpired }

// Reset expires all particles and clears counters and emission credit. The
// configuration is untouched.
func (e *Emitter) Reset() {
	e.pool.Reset()
	e.clock = NewClock(e.cfg.Rate)
	e.totalSpawned = 0
	e.totalExpired = 0
}

// Config returns a copy of the current configuration.
func (e *Emitter) Config() Config { return e.cfg }

// SetRate changes the continuous emission rate. Switching between non-zero
// rates preserves accrued emission credit.
func (e *Emitter) SetRate(rate float64) error {
	if rate < 0 {
		return fmt.Errorf("%w: %g", ErrNegativeRate, rate)
	}
	e.cfg.Rate = rate
	e.clock.SetRate(rate)
	return nil
}

// SetEllipsoid switches the sampling domain for all vector properties.
func (e *Emitter) SetEllipsoid(ellipsoid bool) {
	if ellipsoid {
		e.cfg.Domain = sample.DomainEllipsoid
	} else {
		e.cfg.Domain = sample.DomainBox
	}
}

func (e *Emitter) SetSize(min, max float64) error {
	if min > max {
		return fmt.Errorf("%w: size [%g, %g]", ErrRangeInverted, min, max)
	}
	e.cfg.SizeMin, e.cfg.SizeMax = min, max
	return nil
}

func (e *Emitter) SetAge(min, max float64) error {
	if min > max {
		return fmt.Errorf("%w: age [%g, %g]", ErrRangeInverted, min, max)
	}
	e.cfg.AgeMin, e.cfg.AgeMax = min, max
	return nil
}

func (e *Emitter) SetPosition(base, variance vecmath.Vec3) error {
	if err := checkVariance("position", variance); err != nil {
		return err
	}
	e.cfg.Position, e.cfg.PositionVariance = base, variance
	return nil
}

func (e *Emitter) SetVelocity(base, variance vecmath.Vec3) error {
	if err := checkVariance("velocity", variance); err != nil {
		return err
	}
	e.cfg.Velocity, e.cfg.VelocityVariance = base, variance
	return nil
}

func (e *Emitter) SetAcceleration(base, variance vecmath.Vec3) error {
	if err := checkVariance("acceleration", variance); err != nil {
		return err
	}
	e.cfg.Acceleration, e.cfg.AccelerationVariance = base, variance
	return nil
}

// SetSpin configures the per-particle billboard spin speed range.
func (e *Emitter) SetSpin(min, max float64) error {
	if min > max {
		return fmt.Errorf("%w: spin [%g, %g]", ErrRangeInverted, min, max)
	}
	e.cfg.SpinMin, e.cfg.SpinMax = min, max
	return nil
}

// SetRotation reconfigures the shared orbit rotation and resamples its axis
// and speed. The accumulated rotation restarts from identity.
func (e *Emitter) SetRotation(speedMin, speedMax float64, axis, axisVariance vecmath.Vec3) error {
	if speedMin > speedMax {
		return fmt.Errorf("%w: rotation speed [%g, %g]", ErrRangeInverted, speedMin, speedMax)
	}
	if err := checkVariance("rotation axis", axisVariance); err != nil {
		return err
	}
	e.cfg.RotationSpeedMin, e.cfg.RotationSpeedMax = speedMin, speedMax
	e.cfg.RotationAxis, e.cfg.RotationAxisVariance = axis, axisVariance
	e.resampleRotation()
	return nil
}

func (e *Emitter) SetOrbit(position, velocity, acceleration bool) {
	e.cfg.OrbitPosition = position
	e.cfg.OrbitVelocity = velocity
	e.cfg.OrbitAcceleration = acceleration
}

func checkVariance(name string, v vecmath.Vec3) error {
	if v.X < 0 || v.Y < 0 || v.Z < 0 {
		return fmt.Errorf("%w: %s %+v", ErrNegativeVariance, name, v)
	}
	return nil
}
