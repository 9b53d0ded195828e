package bloom

import "math"

// Spawn creates entities of the given mode at (x, y).
//
// Particle modes create count particles. Vine and Lightning create a single
// vine or bolt per call whatever count is, as long as it is positive, so
// MaxSpawn only limits particle modes. A zero count is a successful no-op. On
// error no state changes.
func (e *Engine) Spawn(mode Mode, x, y float64, count int, size float64) error {
	if e == nil {
		return ErrNullPointer
	}
	if !mode.Valid() {
		return ErrInvalidMode
	}
	if count < 0 || (mode.Kind() == KindParticle && count > e.cfg.MaxSpawn) {
		return ErrOutOfMemory
	}
	if count == 0 {
		return nil
	}

	origin := Point{x, y}
	created := 1
	switch mode {
	case ModeVine:
		e.spawnVine(origin, size)
	case ModeLightning:
		e.spawnLightning(origin)
	case ModeGravity:
		e.spawnGravity(origin, count, size)
		created = count
	case ModeBounce:
		e.spawnBounce(origin, count, size)
		created = count
	case ModeBurst:
		e.spawnBurst(origin, count, size)
		created = count
	case ModeConstellation:
		e.spawnConstellation(origin, count, size)
		created = count
	case ModeVortex:
		e.spawnVortex(origin, count, size)
		created = count
	}
	e.emit(Event{Type: EventSpawn, Kind: mode.Kind(), Mode: mode, Origin: origin, Count: created})
	e.limit(mode.Kind())
	return nil
}

func (e *Engine) pickColor(palette []Color) Color {
	if len(palette) == 0 {
		return ColorWhite
	}
	return palette[e.rng.IntN(len(palette))]
}

func (e *Engine) newParticle(mode Mode, x, y, vx, vy, size float64, color Color) particle {
	return particle{
		x:     x,
		y:     y,
		vx:    vx,
		vy:    vy,
		size:  size,
		life:  1,
		decay: e.cfg.Modes[mode].Decay,
		color: color,
		mode:  mode,
		ox:    x,
		oy:    y,
	}
}

func (e *Engine) spawnGravity(o Point, count int, size float64) {
	c := e.pickColor(e.palette)
	for range count {
		vx := (e.rng.Float64() - 0.5) * 4
		vy := -e.rng.Float64()*5 - 2
		e.particles = append(e.particles, e.newParticle(ModeGravity, o.X, o.Y, vx, vy, size*0.5, c))
	}
}

func (e *Engine) spawnBounce(o Point, count int, size float64) {
	c := e.pickColor(e.palette)
	for range count {
		vx := (e.rng.Float64() - 0.5) * 8
		vy := (e.rng.Float64() - 0.5) * 8
		e.particles = append(e.particles, e.newParticle(ModeBounce, o.X, o.Y, vx, vy, size*0.5, c))
	}
}

// spawnBurst spreads particles evenly around the full circle.
func (e *Engine) spawnBurst(o Point, count int, size float64) {
	c := e.pickColor(e.palette)
	for i := range count {
		angle := 2 * math.Pi / float64(count) * float64(i)
		speed := Range{2, 8}.Random(e.rng)
		s := size * Range{0.5, 1}.Random(e.rng) * 0.5
		e.particles = append(e.particles,
			e.newParticle(ModeBurst, o.X, o.Y, math.Cos(angle)*speed, math.Sin(angle)*speed, s, c))
	}
}

func (e *Engine) spawnConstellation(o Point, count int, size float64) {
	c := e.pickColor(e.palette)
	for range count {
		x := o.X + (e.rng.Float64()-0.5)*60
		y := o.Y + (e.rng.Float64()-0.5)*60
		vx := (e.rng.Float64() - 0.5) * 0.5
		vy := (e.rng.Float64() - 0.5) * 0.5
		s := size * Range{0.6, 1.1}.Random(e.rng)
		e.particles = append(e.particles, e.newParticle(ModeConstellation, x, y, vx, vy, s, c))
	}
}

// spawnVortex places particles on a ring around o; each then orbits o while
// its radius shrinks.
func (e *Engine) spawnVortex(o Point, count int, size float64) {
	c := e.pickColor(e.palette)
	for i := range count {
		angle := 2*math.Pi/float64(count)*float64(i) + e.rng.Float64()*0.5
		radius := Range{40, 120}.Random(e.rng)
		p := e.newParticle(ModeVortex,
			o.X+math.Cos(angle)*radius, o.Y+math.Sin(angle)*radius,
			math.Cos(angle)*2, math.Sin(angle)*2,
			size*0.6, c)
		p.ox, p.oy = o.X, o.Y
		p.angle = angle
		p.radius = radius
		e.particles = append(e.particles, p)
	}
}

func (e *Engine) spawnVine(o Point, size float64) {
	v := vine{
		points:     []Point{o},
		x:          o.X,
		y:          o.Y,
		angle:      e.rng.Float64() * 2 * math.Pi,
		speed:      Range{0.5, 2.5}.Random(e.rng),
		turnSpeed:  Range{-0.06, 0.06}.Random(e.rng),
		maxLength:  e.cfg.MinVineLength + e.rng.Float64()*e.cfg.MaxVineLength,
		color:      e.pickColor(e.palette),
		lineWidth:  size*0.5 + e.rng.Float64()*size*0.5,
		life:       1,
		noisePhase: e.rng.Float64() * 1000,
	}
	if e.cfg.VineNoise > 0 {
		v.noise = e.noise
		v.noiseAmp = e.cfg.VineNoise
	}
	e.vines = append(e.vines, v)
}

// spawnLightning strikes from o toward a point below it, scaled by the
// canvas height.
func (e *Engine) spawnLightning(o Point) {
	h := e.canvasHeight()
	end := Point{
		X: o.X + (e.rng.Float64()-0.5)*300,
		Y: o.Y + (e.rng.Float64()*0.6+0.2)*h*0.5,
	}
	e.bolts = append(e.bolts, newBolt(e.rng, o, end, e.pickColor(e.boltPalette), e.cfg.LightningDecay))
}

// limit evicts the oldest entities of kind beyond its cap.
func (e *Engine) limit(kind Kind) {
	var n, limit int
	switch kind {
	case KindParticle:
		limit = e.cfg.MaxParticles
		if n = len(e.particles) - limit; n > 0 {
			e.particles = evictOldest(e.particles, n)
		}
	case KindVine:
		limit = e.cfg.MaxVines
		if n = len(e.vines) - limit; n > 0 {
			e.vines = evictOldest(e.vines, n)
		}
	case KindLightning:
		limit = e.cfg.MaxLightning
		if n = len(e.bolts) - limit; n > 0 {
			e.bolts = evictOldest(e.bolts, n)
		}
	}
	if n > 0 {
		e.emit(Event{Type: EventRetire, Kind: kind, Count: n})
		e.debugLogEvict(kind, n, limit)
	}
}

// evictOldest drops the first n elements, keeping order and capacity.
func evictOldest[T any](s []T, n int) []T {
	m := copy(s, s[n:])
	clear(s[m:])
	return s[:m]
}
