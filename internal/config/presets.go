package config

var Presets = map[string]*Config{
	"fountain": {
		Name: "fountain", Dt: DefaultDt, Duration: 10000, Seed: 1,
		Rate: 120, Capacity: 1024, Domain: "box", Started: true,
		Size: Range{Min: 0.5, Max: 1.2},
		Age:  Range{Min: 1500, Max: 2500},
		Velocity: Spread{
			Base:     Vector{Y: 9},
			Variance: Vector{X: 1.5, Y: 1, Z: 1.5},
		},
		Acceleration: Spread{Base: Vector{Y: -9.8}},
		Rotation:     Rotation{Axis: Vector{Y: 1}},
	},
	"smoke": {
		Name: "smoke", Dt: DefaultDt, Duration: 15000, Seed: 1,
		Rate: 25, Capacity: 512, Domain: "ellipsoid", Started: true,
		Size: Range{Min: 1.5, Max: 4},
		Age:  Range{Min: 3000, Max: 6000},
		Spin: Range{Min: -20, Max: 20},
		Position: Spread{
			Variance: Vector{X: 0.5, Y: 0.1, Z: 0.5},
		},
		Velocity: Spread{
			Base:     Vector{Y: 1.2},
			Variance: Vector{X: 0.3, Y: 0.4, Z: 0.3},
		},
		Rotation: Rotation{Axis: Vector{Y: 1}},
	},
	"explosion": {
		Name: "explosion", Dt: DefaultDt, Duration: 3000, Seed: 1,
		Rate: 0, Capacity: 2048, Domain: "ellipsoid", Started: true,
		Size: Range{Min: 0.3, Max: 1},
		Age:  Range{Min: 400, Max: 1200},
		Spin: Range{Min: -360, Max: 360},
		Velocity: Spread{
			Variance: Vector{X: 12, Y: 12, Z: 12},
		},
		Acceleration: Spread{Base: Vector{Y: -4}},
		Rotation:     Rotation{Axis: Vector{Y: 1}},
	},
	"snow": {
		Name: "snow", Dt: DefaultDt, Duration: 20000, Seed: 1,
		Rate: 40, Capacity: 1024, Domain: "box", Started: true,
		Size: Range{Min: 0.2, Max: 0.6},
		Age:  Range{Min: 8000, Max: 12000},
		Spin: Range{Min: -90, Max: 90},
		Position: Spread{
			Base:     Vector{Y: 10},
			Variance: Vector{X: 15, Z: 15},
		},
		Velocity: Spread{
			Base:     Vector{Y: -1},
			Variance: Vector{X: 0.4, Y: 0.2, Z: 0.4},
		},
		Rotation: Rotation{Axis: Vector{Y: 1}},
	},
	"orbitals": {
		Name: "orbitals", Dt: DefaultDt, Duration: 12000, Seed: 1,
		Rate: 30, Capacity: 512, Domain: "box", Started: true,
		Size: Range{Min: 0.4, Max: 0.8},
		Age:  Range{Min: 4000, Max: 4000},
		Position: Spread{
			Base: Vector{X: 3},
		},
		Rotation: Rotation{
			Axis:         Vector{Y: 1},
			AxisVariance: Vector{X: 0.2, Z: 0.2},
			Speed:        Range{Min: 45, Max: 120},
		},
		Orbit: Orbit{Position: true, Velocity: true},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
