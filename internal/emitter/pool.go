package emitter

import "math"

// Pool is the fixed-capacity backing store for live particles. Slots are
// reused in place with swap-and-pop compaction on expiry, so the live set
// is unordered and no per-particle allocation happens after construction.
type Pool struct {
	live []Particle
}

func NewPool(capacity int) *Pool {
	return &Pool{live: make([]Particle, 0, capacity)}
}

func (p *Pool) Len() int      { return len(p.live) }
func (p *Pool) Capacity() int { return cap(p.live) }
func (p *Pool) Free() int     { return cap(p.live) - len(p.live) }

// Spawn initializes up to min(n, free slots) particles via init and returns
// how many were actually spawned. Requests beyond capacity are silently
// truncated; that is the contract, not an error.
func (p *Pool) Spawn(n int, init func(*Particle)) int {
	if n <= 0 {
		return 0
	}
	if free := p.Free(); n > free {
		n = free
	}
	for i := 0; i < n; i++ {
		p.live = append(p.live, Particle{})
		init(&p.live[len(p.live)-1])
	}
	return n
}

// Age advances every live particle by dt milliseconds and removes the ones
// whose remaining life reaches zero. Returns the number expired. Expired
// slots are filled by swapping in the last live particle and re-examining
// the slot, so no particle is skipped or double-processed.
func (p *Pool) Age(dt float64) int {
	if dt <= 0 {
		return 0
	}
	sec := dt / 1000
	expired := 0
	for i := 0; i < len(p.live); {
		pt := &p.live[i]
		pt.Life -= dt
		if pt.Life <= 0 {
			last := len(p.live) - 1
			p.live[i] = p.live[last]
			p.live = p.live[:last]
			expired++
			continue
		}
		pt.Velocity = pt.Velocity.Add(pt.Acceleration.Scale(sec))
		pt.Position = pt.Position.Add(pt.Velocity.Scale(sec))
		pt.SpinAngle = wrapDegrees(pt.SpinAngle + pt.SpinSpeed*sec)
		i++
	}
	return expired
}

// Particles exposes the live slice for read-only iteration by the emitter
// and its snapshot. Callers must not retain it across Spawn/Age calls.
func (p *Pool) Particles() []Particle { return p.live }

// Reset expires everything immediately.
func (p *Pool) Reset() { p.live = p.live[:0] }

// wrapDegrees keeps spin angles bounded for numerical stability.
func wrapDegrees(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}
