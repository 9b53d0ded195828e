package bloom

import (
	"math"
	"math/rand/v2"
)

const (
	// MinBrushSize and MaxBrushSize bound Brush.Size.
	MinBrushSize = 1
	MaxBrushSize = 10
	// DefaultBrushSize is the size a new Brush starts with.
	DefaultBrushSize = 4

	defaultMinDrawDistance = 8.0 // pixels
	vineSpawnsPerMove      = 2

	// DefaultZenChance is the per-frame probability of a zen spawn.
	DefaultZenChance = 0.015
)

// Brush turns pointer strokes into spawns. A press spawns once at the
// pointer; while held, every move that travels further than MinDistance
// from the last spawn point spawns again. Vine strokes spawn twice per move
// so a drag leaves a thicket rather than a single strand.
type Brush struct {
	// Mode is the spawn mode for the next stroke.
	Mode Mode
	// MinDistance is the pointer travel in pixels required between spawns.
	MinDistance float64
	// OnDraw is called after each successful spawn. Viewers hook sound here.
	OnDraw func(mode Mode, at Point)

	size    float64
	drawing bool
	last    Point
}

// NewBrush creates a vine brush of DefaultBrushSize.
func NewBrush() *Brush {
	return &Brush{
		Mode:        ModeVine,
		MinDistance: defaultMinDrawDistance,
		size:        DefaultBrushSize,
	}
}

// Size returns the brush size passed to Spawn.
func (b *Brush) Size() float64 { return b.size }

// SetSize sets the brush size, clamped to [MinBrushSize, MaxBrushSize].
func (b *Brush) SetSize(size float64) {
	b.size = math.Max(MinBrushSize, math.Min(MaxBrushSize, size))
}

// Grow changes the brush size by delta, keeping it in range.
func (b *Brush) Grow(delta float64) { b.SetSize(b.size + delta) }

// Drawing reports whether a stroke is in progress.
func (b *Brush) Drawing() bool { return b.drawing }

// Press starts a stroke at (x, y) and spawns once there.
func (b *Brush) Press(e *Engine, x, y float64) error {
	b.drawing = true
	b.last = Point{x, y}
	return b.Draw(e, x, y)
}

// Move continues a stroke. It does nothing unless a stroke is in progress
// and the pointer moved far enough.
func (b *Brush) Move(e *Engine, x, y float64) error {
	if !b.drawing {
		return nil
	}
	if math.Hypot(x-b.last.X, y-b.last.Y) <= b.MinDistance {
		return nil
	}
	n := 1
	if b.Mode == ModeVine {
		n = vineSpawnsPerMove
	}
	for range n {
		if err := b.Draw(e, x, y); err != nil {
			return err
		}
	}
	b.last = Point{x, y}
	return nil
}

// Release ends the stroke.
func (b *Brush) Release() {
	b.drawing = false
}

// Draw spawns the mode's default count at (x, y) without touching stroke
// state.
func (b *Brush) Draw(e *Engine, x, y float64) error {
	if err := e.Spawn(b.Mode, x, y, b.Mode.DefaultCount(), b.size); err != nil {
		return err
	}
	if b.OnDraw != nil {
		b.OnDraw(b.Mode, Point{x, y})
	}
	return nil
}

// Zen draws on its own: each Update has a small chance of a brush spawn at
// a random point of the canvas.
type Zen struct {
	Enabled bool
	// Chance is the per-frame spawn probability.
	Chance float64

	rng *rand.Rand
}

// NewZen creates a disabled Zen with DefaultZenChance, seeded for
// reproducible runs.
func NewZen(seed uint64) *Zen {
	return &Zen{
		Chance: DefaultZenChance,
		rng:    rand.New(rand.NewPCG(seed, seed+1)),
	}
}

// Toggle flips Enabled and returns the new state.
func (z *Zen) Toggle() bool {
	z.Enabled = !z.Enabled
	return z.Enabled
}

// Update rolls the dice once and, on success, draws with b at a random point
// of the width x height canvas.
func (z *Zen) Update(b *Brush, e *Engine, width, height float64) error {
	if !z.Enabled || z.rng.Float64() >= z.Chance {
		return nil
	}
	return b.Draw(e, z.rng.Float64()*width, z.rng.Float64()*height)
}
