package emitter_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/emberfx/internal/emitter"
	"github.com/san-kum/emberfx/internal/sample"
	"github.com/san-kum/emberfx/internal/vecmath"
)

var _ = Describe("Emitter", func() {
	var cfg emitter.Config

	BeforeEach(func() {
		cfg = emitter.DefaultConfig()
	})

	Describe("continuous emission", func() {
		It("spawns the configured rate, bounded by capacity", func() {
			cfg.Rate = 10
			cfg.Capacity = 5
			cfg.AgeMin, cfg.AgeMax = 1000, 1000
			e, err := emitter.New(cfg)
			Expect(err).NotTo(HaveOccurred())

			for i := 0; i < 6; i++ {
				e.Update(100)
			}

			Expect(e.Live()).To(Equal(5), "5 spawned, capacity-bounded")
			Expect(e.TotalExpired()).To(BeZero())
			for _, p := range e.Particles() {
				Expect(p.Life).To(BeNumerically(">=", 400))
			}
		})

		It("authorizes no spawns while stopped but keeps aging", func() {
			cfg.Rate = 100
			cfg.AgeMin, cfg.AgeMax = 150, 150
			e, err := emitter.New(cfg)
			Expect(err).NotTo(HaveOccurred())

			e.Update(100)
			spawned := e.Live()
			Expect(spawned).To(BeNumerically(">", 0))

			e.Stop()
			e.Update(100) // survivors age to 200ms total
			Expect(e.TotalSpawned()).To(Equal(spawned))
			Expect(e.Live()).To(BeZero(), "existing particles still expire")
		})

		It("holds no credit while the rate is zero", func() {
			cfg.Rate = 0
			e, err := emitter.New(cfg)
			Expect(err).NotTo(HaveOccurred())

			for i := 0; i < 100; i++ {
				e.Update(1000)
			}
			Expect(e.Live()).To(BeZero())

			// Re-enabling does not release banked time.
			Expect(e.SetRate(10)).To(Succeed())
			e.Update(99)
			Expect(e.Live()).To(BeZero())
		})
	})

	Describe("burst emission", func() {
		It("spawns immediately without consuming scheduler credit", func() {
			cfg.Rate = 10
			e, err := emitter.New(cfg)
			Expect(err).NotTo(HaveOccurred())

			e.Update(50) // half a particle of credit
			Expect(e.Emit(3)).To(Equal(3))
			e.Update(50) // credit completes
			Expect(e.TotalSpawned()).To(Equal(4))
		})

		It("truncates to free capacity", func() {
			cfg.Rate = 0
			cfg.Capacity = 8
			e, err := emitter.New(cfg)
			Expect(err).NotTo(HaveOccurred())

			Expect(e.Emit(20)).To(Equal(8))
			Expect(e.Emit(1)).To(BeZero())
			Expect(e.Live()).To(Equal(8))
		})
	})

	Describe("particle lifecycle", func() {
		It("expires strictly by remaining life", func() {
			cfg.Rate = 0
			cfg.AgeMin, cfg.AgeMax = 100, 100
			e, err := emitter.New(cfg)
			Expect(err).NotTo(HaveOccurred())

			e.Emit(1)
			e.Update(50)
			Expect(e.Live()).To(Equal(1), "alive at 50ms of a 100ms life")
			e.Update(60)
			Expect(e.Live()).To(BeZero(), "expired before the 110ms mark")
		})

		It("never exceeds capacity under mixed spawn and age traffic", func() {
			cfg.Rate = 500
			cfg.Capacity = 16
			cfg.AgeMin, cfg.AgeMax = 20, 120
			e, err := emitter.New(cfg)
			Expect(err).NotTo(HaveOccurred())

			for i := 0; i < 500; i++ {
				if i%7 == 0 {
					e.Emit(5)
				}
				e.Update(16)
				Expect(e.Live()).To(BeNumerically("<=", 16))
			}
			Expect(e.TotalSpawned() - e.TotalExpired()).To(Equal(e.Live()))
		})
	})

	Describe("deterministic sampling", func() {
		It("returns exact constants for degenerate ranges", func() {
			cfg.Rate = 0
			cfg.SizeMin, cfg.SizeMax = 2.5, 2.5
			cfg.AgeMin, cfg.AgeMax = 750, 750
			cfg.SpinMin, cfg.SpinMax = 180, 180
			cfg.Position = vecmath.Vec3{X: 1, Y: 2, Z: 3}
			e, err := emitter.New(cfg)
			Expect(err).NotTo(HaveOccurred())

			e.Emit(1)
			p := e.Particles()[0]
			Expect(p.Size).To(Equal(2.5))
			Expect(p.TotalLife).To(Equal(750.0))
			Expect(p.SpinSpeed).To(Equal(180.0))
			Expect(p.Position).To(Equal(vecmath.Vec3{X: 1, Y: 2, Z: 3}))
		})

		It("reproduces a run from the same seed", func() {
			cfg.Rate = 60
			cfg.Seed = 12345
			cfg.SizeMin, cfg.SizeMax = 0.5, 2
			cfg.PositionVariance = vecmath.Vec3{X: 1, Y: 1, Z: 1}

			run := func() []emitter.View {
				e, err := emitter.New(cfg)
				Expect(err).NotTo(HaveOccurred())
				for i := 0; i < 30; i++ {
					e.Update(16)
				}
				return e.Snapshot(nil)
			}
			Expect(run()).To(Equal(run()))
		})
	})

	Describe("orbit rotation", func() {
		// 90 deg/s about Y, advanced 1000ms: maps +X to -Z.
		spinUp := func(e *emitter.Emitter) {
			e.Update(1000)
		}

		It("rotates sampled positions when the flag is set", func() {
			cfg.Rate = 0
			cfg.Position = vecmath.Vec3{X: 1}
			cfg.RotationSpeedMin, cfg.RotationSpeedMax = 90, 90
			cfg.RotationAxis = vecmath.Vec3{Y: 1}
			cfg.OrbitPosition = true
			e, err := emitter.New(cfg)
			Expect(err).NotTo(HaveOccurred())

			spinUp(e)
			e.Emit(1)
			got := e.Particles()[0].Position
			Expect(got.Sub(vecmath.Vec3{Z: -1}).Length()).To(BeNumerically("<", 1e-9))
		})

		It("stores the raw vector when the flag is clear", func() {
			cfg.Rate = 0
			cfg.Position = vecmath.Vec3{X: 1}
			cfg.RotationSpeedMin, cfg.RotationSpeedMax = 90, 90
			cfg.RotationAxis = vecmath.Vec3{Y: 1}
			e, err := emitter.New(cfg)
			Expect(err).NotTo(HaveOccurred())

			spinUp(e)
			e.Emit(1)
			Expect(e.Particles()[0].Position).To(Equal(vecmath.Vec3{X: 1}))
		})

		It("composes the owning node's orientation", func() {
			cfg.Rate = 0
			cfg.Velocity = vecmath.Vec3{X: 1}
			cfg.OrbitVelocity = true
			// Node is turned 90 degrees about Z: +X becomes +Y.
			node := vecmath.AxisAngle(vecmath.Vec3{Z: 1}, 3.141592653589793/2)
			e, err := emitter.New(cfg, emitter.WithOrientation(func() vecmath.Mat3 { return node }))
			Expect(err).NotTo(HaveOccurred())

			e.Emit(1)
			got := e.Particles()[0].Velocity
			Expect(got.Sub(vecmath.Vec3{Y: 1}).Length()).To(BeNumerically("<", 1e-9))
		})
	})

	Describe("domains", func() {
		It("keeps ellipsoid samples inside the scaled unit ball", func() {
			cfg.Rate = 0
			cfg.Capacity = 4096
			cfg.Domain = sample.DomainEllipsoid
			cfg.Position = vecmath.Vec3{X: 10}
			cfg.PositionVariance = vecmath.Vec3{X: 2, Y: 1, Z: 3}
			e, err := emitter.New(cfg)
			Expect(err).NotTo(HaveOccurred())

			e.Emit(4096)
			for _, p := range e.Particles() {
				off := p.Position.Sub(vecmath.Vec3{X: 10})
				n := vecmath.Vec3{X: off.X / 2, Y: off.Y / 1, Z: off.Z / 3}
				Expect(n.Length()).To(BeNumerically("<=", 1+1e-9))
			}
		})
	})

	Describe("update contract", func() {
		It("treats zero and negative dt as no-op ticks", func() {
			cfg.Rate = 0
			cfg.AgeMin, cfg.AgeMax = 100, 100
			e, err := emitter.New(cfg)
			Expect(err).NotTo(HaveOccurred())

			e.Emit(1)
			e.Update(0)
			e.Update(-500)
			Expect(e.Particles()[0].Life).To(Equal(100.0))
		})

		It("resets population and credit without touching configuration", func() {
			cfg.Rate = 10
			e, err := emitter.New(cfg)
			Expect(err).NotTo(HaveOccurred())

			e.Update(350)
			Expect(e.Live()).To(BeNumerically(">", 0))

			e.Reset()
			Expect(e.Live()).To(BeZero())
			Expect(e.TotalSpawned()).To(BeZero())
			Expect(e.Config().Rate).To(Equal(10.0))

			e.Update(99) // credit restarted from zero
			Expect(e.Live()).To(BeZero())
		})
	})

	Describe("snapshot", func() {
		It("exposes position, size, spin, and life fraction", func() {
			cfg.Rate = 0
			cfg.AgeMin, cfg.AgeMax = 1000, 1000
			cfg.SizeMin, cfg.SizeMax = 3, 3
			e, err := emitter.New(cfg)
			Expect(err).NotTo(HaveOccurred())

			e.Emit(2)
			e.Update(250)

			views := e.Snapshot(nil)
			Expect(views).To(HaveLen(2))
			for _, v := range views {
				Expect(v.Size).To(Equal(3.0))
				Expect(v.LifeFraction).To(BeNumerically("~", 0.75, 1e-12))
			}
		})
	})
})
