package bloom

import (
	"math/rand/v2"
	"time"

	"github.com/aquilax/go-perlin"
)

// Engine owns every live particle, vine and lightning bolt.
//
// An Engine is not safe for concurrent use. Callers serialize access, for
// example by keeping one Engine per render loop. Nothing runs in the
// background: every method returns once its work is done.
//
// All methods accept a nil receiver. Mutating methods then return
// ErrNullPointer; queries and extractors report zero.
type Engine struct {
	cfg         Config
	rng         *rand.Rand
	noise       *perlin.Perlin
	palette     []Color
	boltPalette []Color

	particles []particle
	vines     []vine
	bolts     []bolt

	// Canvas size of the last Step; zero until then.
	width, height float64
	frame         uint64

	sink  EventSink
	debug bool
}

// New creates an empty Engine. Zero fields of cfg take DefaultConfig values.
func New(cfg Config) *Engine {
	cfg = cfg.withDefaults()
	return &Engine{
		cfg:         cfg,
		rng:         rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
		noise:       perlin.NewPerlin(2, 2, 3, int64(cfg.Seed)),
		palette:     parsePalette(cfg.Palette),
		boltPalette: parsePalette(cfg.LightningPalette),
		particles:   make([]particle, 0, cfg.MaxParticles),
	}
}

// Config returns a copy of the resolved configuration.
func (e *Engine) Config() Config {
	if e == nil {
		return Config{}
	}
	return e.cfg
}

// Destroy releases every entity and detaches the event sink. The engine must
// not be used afterwards; doing so is a caller error that is not detected.
func (e *Engine) Destroy() {
	if e == nil {
		return
	}
	e.particles = nil
	e.vines = nil
	e.bolts = nil
	e.sink = nil
}

// Frame returns the number of completed Step calls.
func (e *Engine) Frame() uint64 {
	if e == nil {
		return 0
	}
	return e.frame
}

// ParticleCount returns the number of live particles.
func (e *Engine) ParticleCount() int {
	if e == nil {
		return 0
	}
	return len(e.particles)
}

// VineCount returns the number of live vines, growing or fading.
func (e *Engine) VineCount() int {
	if e == nil {
		return 0
	}
	return len(e.vines)
}

// LightningCount returns the number of live lightning bolts.
func (e *Engine) LightningCount() int {
	if e == nil {
		return 0
	}
	return len(e.bolts)
}

// Step advances every live entity by one frame on a width x height canvas
// and removes the ones that died. Negative bounds are treated as zero.
func (e *Engine) Step(width, height float64) error {
	if e == nil {
		return ErrNullPointer
	}
	width = max(width, 0)
	height = max(height, 0)
	e.width, e.height = width, height
	e.frame++

	var stats stepStats
	var t0 time.Time
	if e.debug {
		t0 = time.Now()
	}

	// Update in place, compacting survivors to the front to keep order stable.
	alive := 0
	for i := range e.particles {
		if e.particles[i].update(&e.cfg, width, height) {
			e.particles[alive] = e.particles[i]
			alive++
		}
	}
	stats.retired[KindParticle] = len(e.particles) - alive
	clear(e.particles[alive:])
	e.particles = e.particles[:alive]

	if e.debug {
		now := time.Now()
		stats.particleTime = now.Sub(t0)
		t0 = now
	}

	alive = 0
	for i := range e.vines {
		v := &e.vines[i]
		ok, grownNow := v.update(width, height, e.cfg.VineHold)
		if grownNow {
			e.emit(Event{Type: EventVineGrown, Kind: KindVine, Origin: v.points[0], Count: 1})
		}
		if ok {
			e.vines[alive] = *v
			alive++
		}
	}
	stats.retired[KindVine] = len(e.vines) - alive
	clear(e.vines[alive:])
	e.vines = e.vines[:alive]

	if e.debug {
		now := time.Now()
		stats.vineTime = now.Sub(t0)
		t0 = now
	}

	alive = 0
	for i := range e.bolts {
		if e.bolts[i].update() {
			e.bolts[alive] = e.bolts[i]
			alive++
		}
	}
	stats.retired[KindLightning] = len(e.bolts) - alive
	clear(e.bolts[alive:])
	e.bolts = e.bolts[:alive]

	if e.debug {
		stats.lightningTime = time.Since(t0)
	}

	for k, n := range stats.retired {
		if n > 0 {
			e.emit(Event{Type: EventRetire, Kind: Kind(k), Count: n})
		}
	}
	e.debugLog(stats)
	return nil
}

// Clear removes every entity. Configuration, random state and the frame
// counter are kept.
func (e *Engine) Clear() error {
	if e == nil {
		return ErrNullPointer
	}
	clear(e.particles)
	e.particles = e.particles[:0]
	clear(e.vines)
	e.vines = e.vines[:0]
	clear(e.bolts)
	e.bolts = e.bolts[:0]
	e.emit(Event{Type: EventClear})
	return nil
}

// canvasHeight is the height used to size lightning strikes.
func (e *Engine) canvasHeight() float64 {
	if e.height > 0 {
		return e.height
	}
	return e.cfg.LightningCanvas
}
