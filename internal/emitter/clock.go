package emitter

// Clock converts a configured emission rate and accumulated elapsed time
// into whole spawn counts, carrying the fractional remainder between frames
// so long runs do not drift.
type Clock struct {
	timePerEmission float64 // milliseconds per particle; 0 disables emission
	timeRunning     float64 // accrued credit, milliseconds
}

func NewClock(rate float64) Clock {
	c := Clock{}
	c.SetRate(rate)
	return c
}

// SetRate reconfigures the emission rate. Changing between two non-zero
// rates preserves already-accrued credit; transitioning to or from zero
// clears it so credit cannot grow while emission is disabled.
func (c *Clock) SetRate(rate float64) {
	if rate <= 0 {
		c.timePerEmission = 0
		c.timeRunning = 0
		return
	}
	if c.timePerEmission == 0 {
		c.timeRunning = 0
	}
	c.timePerEmission = 1000 / rate
}

// Tick accrues dt milliseconds and returns the whole number of particles
// authorized this frame. The fractional remainder persists.
func (c *Clock) Tick(dt float64) int {
	if c.timePerEmission <= 0 || dt <= 0 {
		return 0
	}
	c.timeRunning += dt
	n := int(c.timeRunning / c.timePerEmission)
	c.timeRunning -= float64(n) * c.timePerEmission
	return n
}

// Credit reports the accrued fraction of the next particle, in [0, 1).
func (c *Clock) Credit() float64 {
	if c.timePerEmission <= 0 {
		return 0
	}
	return c.timeRunning / c.timePerEmission
}
