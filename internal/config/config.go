package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/emberfx/internal/emitter"
	"github.com/san-kum/emberfx/internal/sample"
	"github.com/san-kum/emberfx/internal/vecmath"
)

const (
	DefaultDt       = 1000.0 / 60
	DefaultDuration = 10000.0
	DefaultRate     = 10.0
	DefaultCapacity = 256
	DefaultAge      = 1000.0
)

// Config is the on-disk description of an emitter plus the run settings
// the drivers need. Durations are milliseconds, speeds are per second.
type Config struct {
	Name     string  `yaml:"name"`
	Dt       float64 `yaml:"dt"`
	Duration float64 `yaml:"duration"`
	Seed     int64   `yaml:"seed"`

	Rate     float64 `yaml:"rate"`
	Capacity int     `yaml:"capacity"`
	Domain   string  `yaml:"domain"`
	Started  bool    `yaml:"started"`

	Size Range `yaml:"size"`
	Age  Range `yaml:"age"`
	Spin Range `yaml:"spin"`

	Position     Spread   `yaml:"position"`
	Velocity     Spread   `yaml:"velocity"`
	Acceleration Spread   `yaml:"acceleration"`
	Rotation     Rotation `yaml:"rotation"`
	Orbit        Orbit    `yaml:"orbit"`
}

type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

type Vector struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

type Spread struct {
	Base     Vector `yaml:"base"`
	Variance Vector `yaml:"variance"`
}

type Rotation struct {
	Axis         Vector `yaml:"axis"`
	AxisVariance Vector `yaml:"axis_variance"`
	Speed        Range  `yaml:"speed"`
}

type Orbit struct {
	Position     bool `yaml:"position"`
	Velocity     bool `yaml:"velocity"`
	Acceleration bool `yaml:"acceleration"`
}

func DefaultConfig() *Config {
	return &Config{
		Name:     "default",
		Dt:       DefaultDt,
		Duration: DefaultDuration,
		Seed:     1,
		Rate:     DefaultRate,
		Capacity: DefaultCapacity,
		Domain:   "box",
		Started:  true,
		Size:     Range{Min: 1, Max: 1},
		Age:      Range{Min: DefaultAge, Max: DefaultAge},
		Rotation: Rotation{Axis: Vector{Y: 1}},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ToEmitter maps the file schema onto an emitter configuration. The
// returned config is not yet validated; emitter.New does that.
func (c *Config) ToEmitter() (emitter.Config, error) {
	ec := emitter.DefaultConfig()
	ec.Rate = c.Rate
	ec.Capacity = c.Capacity
	ec.Started = c.Started
	ec.Seed = c.Seed

	switch c.Domain {
	case "", "box":
		ec.Domain = sample.DomainBox
	case "ellipsoid":
		ec.Domain = sample.DomainEllipsoid
	default:
		return emitter.Config{}, fmt.Errorf("unknown domain %q", c.Domain)
	}

	ec.SizeMin, ec.SizeMax = c.Size.Min, c.Size.Max
	ec.AgeMin, ec.AgeMax = c.Age.Min, c.Age.Max
	ec.SpinMin, ec.SpinMax = c.Spin.Min, c.Spin.Max

	ec.Position = c.Position.Base.vec()
	ec.PositionVariance = c.Position.Variance.vec()
	ec.Velocity = c.Velocity.Base.vec()
	ec.VelocityVariance = c.Velocity.Variance.vec()
	ec.Acceleration = c.Acceleration.Base.vec()
	ec.AccelerationVariance = c.Acceleration.Variance.vec()

	ec.RotationAxis = c.Rotation.Axis.vec()
	ec.RotationAxisVariance = c.Rotation.AxisVariance.vec()
	ec.RotationSpeedMin = c.Rotation.Speed.Min
	ec.RotationSpeedMax = c.Rotation.Speed.Max

	ec.OrbitPosition = c.Orbit.Position
	ec.OrbitVelocity = c.Orbit.Velocity
	ec.OrbitAcceleration = c.Orbit.Acceleration
	return ec, nil
}

// FromEmitter fills the emitter fields from a live configuration,
// preserving the run settings already present.
func (c *Config) FromEmitter(ec emitter.Config) {
	c.Rate = ec.Rate
	c.Capacity = ec.Capacity
	c.Started = ec.Started
	c.Seed = ec.Seed

	if ec.Domain == sample.DomainEllipsoid {
		c.Domain = "ellipsoid"
	} else {
		c.Domain = "box"
	}

	c.Size = Range{Min: ec.SizeMin, Max: ec.SizeMax}
	c.Age = Range{Min: ec.AgeMin, Max: ec.AgeMax}
	c.Spin = Range{Min: ec.SpinMin, Max: ec.SpinMax}

	c.Position = Spread{Base: fromVec(ec.Position), Variance: fromVec(ec.PositionVariance)}
	c.Velocity = Spread{Base: fromVec(ec.Velocity), Variance: fromVec(ec.VelocityVariance)}
	c.Acceleration = Spread{Base: fromVec(ec.Acceleration), Variance: fromVec(ec.AccelerationVariance)}

	c.Rotation = Rotation{
		Axis:         fromVec(ec.RotationAxis),
		AxisVariance: fromVec(ec.RotationAxisVariance),
		Speed:        Range{Min: ec.RotationSpeedMin, Max: ec.RotationSpeedMax},
	}
	c.Orbit = Orbit{
		Position:     ec.OrbitPosition,
		Velocity:     ec.OrbitVelocity,
		Acceleration: ec.OrbitAcceleration,
	}
}

// Validate checks the run settings and delegates the emitter fields.
func (c *Config) Validate() error {
	if c.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %g", c.Dt)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %g", c.Duration)
	}
	ec, err := c.ToEmitter()
	if err != nil {
		return err
	}
	return ec.Validate()
}

func (v Vector) vec() vecmath.Vec3 {
	return vecmath.Vec3{X: v.X, Y: v.Y, Z: v.Z}
}

func fromVec(v vecmath.Vec3) Vector {
	return Vector{X: v.X, Y: v.Y, Z: v.Z}
}
