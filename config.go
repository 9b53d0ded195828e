package bloom

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/tanema/gween/ease"
)

// ModeRules holds the tunables of one particle-producing mode.
type ModeRules struct {
	// Decay is subtracted from life every frame.
	Decay float64 `json:"decay"`
	// Cull removes particles once they drift further than CullMargin pixels
	// outside the canvas. Life expiry removes them regardless.
	Cull bool `json:"cull"`
}

// Config controls spawning, physics, and caps. Zero fields fall back to the
// values of DefaultConfig when passed to New.
type Config struct {
	// Seed seeds the engine's random source. Zero picks a fixed seed, so two
	// engines built from the same Config evolve identically.
	Seed uint64 `json:"seed"`

	// Palette is a list of "#rrggbb" colors. One is picked per spawn call.
	Palette []string `json:"palette"`
	// LightningPalette is the color list for bolts.
	LightningPalette []string `json:"lightningPalette"`

	// MaxParticles, MaxVines and MaxLightning cap each collection. When a
	// spawn overflows a cap, the oldest entities are evicted.
	MaxParticles int `json:"maxParticles"`
	MaxVines     int `json:"maxVines"`
	MaxLightning int `json:"maxLightning"`
	// MaxSpawn is the largest count a single Spawn accepts. Larger requests
	// fail with ErrOutOfMemory.
	MaxSpawn int `json:"maxSpawn"`

	// Friction scales non-vortex particle velocity every frame. 1 keeps
	// velocity unchanged; 0 selects the default.
	Friction float64 `json:"friction"`
	// Gravity is added to vy of Gravity-mode particles every frame. Negative
	// pulls upward. 0 selects the default; set Weightless for no pull.
	Gravity float64 `json:"gravity"`
	// Weightless disables Gravity entirely.
	Weightless bool `json:"weightless"`
	// Restitution is the fraction of speed kept by a Bounce-mode reflection.
	Restitution float64 `json:"restitution"`
	// CullMargin is the distance outside the canvas at which culled modes are
	// removed.
	CullMargin float64 `json:"cullMargin"`
	// VortexSpin and VortexPull are the per-frame angle and radius change of
	// Vortex-mode particles. Negative values spin the other way and spiral
	// outward. 0 selects the default; set VortexHold for a fixed orbit.
	VortexSpin float64 `json:"vortexSpin"`
	VortexPull float64 `json:"vortexPull"`
	// VortexHold keeps the orbit radius constant, ignoring VortexPull.
	VortexHold bool `json:"vortexHold"`

	// Modes holds per-mode decay and cull policy, indexed by Mode. Entries for
	// ModeVine and ModeLightning are ignored.
	Modes [NumModes]ModeRules `json:"modes"`

	// MinVineLength and MaxVineLength bound a vine's growth budget in points:
	// the budget is drawn from [MinVineLength, MinVineLength+MaxVineLength).
	MinVineLength float64 `json:"minVineLength"`
	MaxVineLength float64 `json:"maxVineLength"`
	// VineHold is the number of frames a grown vine stays on screen while
	// fading out.
	VineHold int `json:"vineHold"`
	// VineNoise is the amplitude in radians of the Perlin heading wobble.
	// Negative disables it.
	VineNoise float64 `json:"vineNoise"`

	// LightningDecay is subtracted from a bolt's life every frame.
	LightningDecay float64 `json:"lightningDecay"`
	// LightningCanvas is the canvas height used to size bolts before the
	// first Step reports real bounds.
	LightningCanvas float64 `json:"lightningCanvas"`

	// Fade shapes how extracted particle sizes and bolt widths shrink as life
	// runs out. It is evaluated as Fade(1-life, 1, -1, 1). Nil is linear.
	Fade ease.TweenFunc `json:"-"`
}

var defaultPalette = []string{
	"#ff69b4", "#00ffff", "#7fff00", "#ff00ff", "#ff8c00", "#adff2f", "#d8bfd8",
}

var defaultLightningPalette = []string{"#ffffff", "#00ffff"}

// DefaultConfig returns the tuning of the touch toy: caps of 500 particles,
// 100 vines and 20 bolts, vines of 50 to 250 points.
func DefaultConfig() Config {
	cfg := Config{
		Seed:             1,
		Palette:          append([]string(nil), defaultPalette...),
		LightningPalette: append([]string(nil), defaultLightningPalette...),
		MaxParticles:     500,
		MaxVines:         100,
		MaxLightning:     20,
		MaxSpawn:         10000,
		Friction:         0.99,
		Gravity:          0.3,
		Restitution:      0.7,
		CullMargin:       50,
		VortexSpin:       0.08,
		VortexPull:       0.5,
		MinVineLength:    50,
		MaxVineLength:    200,
		VineHold:         180,
		VineNoise:        0.05,
		LightningDecay:   0.02,
		LightningCanvas:  400,
		Fade:             ease.Linear,
	}
	cfg.Modes[ModeGravity] = ModeRules{Decay: 0.005, Cull: true}
	cfg.Modes[ModeBounce] = ModeRules{Decay: 0.005}
	cfg.Modes[ModeBurst] = ModeRules{Decay: 0.015, Cull: true}
	cfg.Modes[ModeConstellation] = ModeRules{Decay: 0.002, Cull: true}
	cfg.Modes[ModeVortex] = ModeRules{Decay: 0.003}
	return cfg
}

// LoadConfig parses a JSON config. Fields missing from the document keep
// their DefaultConfig values.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("bloom: failed to parse config JSON: %w", err)
	}
	return cfg, nil
}

// withDefaults fills zero fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Seed == 0 {
		c.Seed = d.Seed
	}
	if len(c.Palette) == 0 {
		c.Palette = d.Palette
	}
	if len(c.LightningPalette) == 0 {
		c.LightningPalette = d.LightningPalette
	}
	if c.MaxParticles <= 0 {
		c.MaxParticles = d.MaxParticles
	}
	if c.MaxVines <= 0 {
		c.MaxVines = d.MaxVines
	}
	if c.MaxLightning <= 0 {
		c.MaxLightning = d.MaxLightning
	}
	if c.MaxSpawn <= 0 {
		c.MaxSpawn = d.MaxSpawn
	}
	if c.Friction == 0 {
		c.Friction = d.Friction
	}
	if c.Gravity == 0 {
		c.Gravity = d.Gravity
	}
	if c.Restitution == 0 {
		c.Restitution = d.Restitution
	}
	if c.CullMargin == 0 {
		c.CullMargin = d.CullMargin
	}
	if c.VortexSpin == 0 {
		c.VortexSpin = d.VortexSpin
	}
	if c.VortexPull == 0 {
		c.VortexPull = d.VortexPull
	}
	// A zero-valued rule table means the caller never touched it.
	if c.Modes == ([NumModes]ModeRules{}) {
		c.Modes = d.Modes
	}
	for m := range c.Modes {
		if c.Modes[m].Decay <= 0 {
			c.Modes[m].Decay = d.Modes[m].Decay
		}
	}
	if c.MinVineLength <= 0 {
		c.MinVineLength = d.MinVineLength
	}
	if c.MaxVineLength <= 0 {
		c.MaxVineLength = d.MaxVineLength
	}
	if c.VineHold <= 0 {
		c.VineHold = d.VineHold
	}
	if c.VineNoise == 0 {
		c.VineNoise = d.VineNoise
	}
	if c.LightningDecay <= 0 {
		c.LightningDecay = d.LightningDecay
	}
	if c.LightningCanvas <= 0 {
		c.LightningCanvas = d.LightningCanvas
	}
	if c.Fade == nil {
		c.Fade = ease.Linear
	}
	return c
}

// ParseHexColor parses "#rrggbb" or "rrggbb". Anything else yields ColorWhite.
func ParseHexColor(hex string) Color {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return ColorWhite
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return ColorWhite
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

func parsePalette(hexes []string) []Color {
	out := make([]Color, len(hexes))
	for i, h := range hexes {
		out[i] = ParseHexColor(h)
	}
	return out
}
