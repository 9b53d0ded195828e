package bloom

import (
	"math"
	"math/rand/v2"
)

// particle holds per-particle simulation state. Unexported; owned by Engine.
type particle struct {
	x, y   float64
	vx, vy float64
	size   float64
	life   float64 // remaining normalized lifetime, 1 at birth
	decay  float64
	color  Color
	mode   Mode
	// Vortex orbit around (ox, oy).
	ox, oy float64
	angle  float64
	radius float64
}

// update advances the particle by one frame and reports whether it survives.
func (p *particle) update(cfg *Config, width, height float64) bool {
	if p.mode == ModeVortex {
		p.angle += cfg.VortexSpin
		if !cfg.VortexHold {
			p.radius -= cfg.VortexPull
		}
		if p.radius < 0 {
			p.radius = 0
		}
		nx := p.ox + math.Cos(p.angle)*p.radius
		ny := p.oy + math.Sin(p.angle)*p.radius
		p.vx, p.vy = nx-p.x, ny-p.y
		p.x, p.y = nx, ny
	} else {
		p.vx *= cfg.Friction
		p.vy *= cfg.Friction
		if p.mode == ModeGravity && !cfg.Weightless {
			p.vy += cfg.Gravity
		}
		p.x += p.vx
		p.y += p.vy
		if p.mode == ModeBounce {
			p.reflect(cfg.Restitution, width, height)
		}
	}

	p.life -= p.decay
	if p.life <= 0 {
		return false
	}
	if cfg.Modes[p.mode].Cull {
		m := cfg.CullMargin
		if p.x < -m || p.x > width+m || p.y < -m || p.y > height+m {
			return false
		}
	}
	return true
}

// reflect flips and damps the velocity component that crossed an edge and
// clamps the position back inside the canvas.
func (p *particle) reflect(restitution, width, height float64) {
	rx := max(0, math.Min(p.size, width/2))
	if p.x < rx || p.x > width-rx {
		p.vx *= -restitution
		p.x = clamp(p.x, rx, width-rx)
	}
	ry := max(0, math.Min(p.size, height/2))
	if p.y < ry || p.y > height-ry {
		p.vy *= -restitution
		p.y = clamp(p.y, ry, height-ry)
	}
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}

// Random returns a value in [Min, Max) drawn from rng.
func (r Range) Random(rng *rand.Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}
