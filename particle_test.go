package bloom

import (
	"math"
	"testing"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Seed = 42
	return cfg
}

func TestBounceStaysInBounds(t *testing.T) {
	e := New(testConfig())
	if err := e.Spawn(ModeBounce, 50, 50, 40, 2); err != nil {
		t.Fatal(err)
	}
	buf := make([]ParticleSnapshot, 64)
	for frame := 0; frame < 300; frame++ {
		if err := e.Step(100, 100); err != nil {
			t.Fatal(err)
		}
		n := e.ExtractParticles(buf)
		for _, p := range buf[:n] {
			if p.X < 0 || p.X > 100 || p.Y < 0 || p.Y > 100 {
				t.Fatalf("frame %d: particle at (%f, %f) escaped 100x100", frame, p.X, p.Y)
			}
		}
	}
}

func TestBounceReflectsVelocity(t *testing.T) {
	e := New(testConfig())
	if err := e.Spawn(ModeBounce, 50, 50, 1, 2); err != nil {
		t.Fatal(err)
	}
	e.particles[0].vx = 9
	e.particles[0].vy = 0

	flipped := false
	buf := make([]ParticleSnapshot, 1)
	for frame := 0; frame < 100; frame++ {
		if err := e.Step(100, 100); err != nil {
			t.Fatal(err)
		}
		if e.ExtractParticles(buf) == 0 {
			break
		}
		if buf[0].X > 100 {
			t.Fatalf("frame %d: x = %f exceeds 100", frame, buf[0].X)
		}
		if e.particles[0].vx < 0 {
			flipped = true
		}
	}
	if !flipped {
		t.Error("velocity x never flipped sign")
	}
}

func TestBounceTinyCanvas(t *testing.T) {
	e := New(testConfig())
	if err := e.Spawn(ModeBounce, 5, 5, 10, 20); err != nil {
		t.Fatal(err)
	}
	// Particle radius (10) exceeds half the canvas; positions still clamp inside.
	for frame := 0; frame < 10; frame++ {
		_ = e.Step(8, 8)
		for _, p := range e.particles {
			if p.x < 0 || p.x > 8 || p.y < 0 || p.y > 8 {
				t.Fatalf("particle at (%f, %f) escaped 8x8", p.x, p.y)
			}
		}
	}
}

func TestGravityPullsDown(t *testing.T) {
	e := New(testConfig())
	_ = e.Spawn(ModeGravity, 50, 50, 1, 2)
	vy0 := e.particles[0].vy
	if vy0 >= 0 {
		t.Fatalf("initial vy = %f, want upward launch", vy0)
	}
	_ = e.Step(1000, 1000)
	want := vy0*0.99 + 0.3
	if math.Abs(e.particles[0].vy-want) > 1e-9 {
		t.Errorf("vy = %f, want %f", e.particles[0].vy, want)
	}
}

func TestVortexSpiralsInward(t *testing.T) {
	e := New(testConfig())
	_ = e.Spawn(ModeVortex, 200, 200, 6, 2)
	r0 := make([]float64, len(e.particles))
	for i, p := range e.particles {
		r0[i] = math.Hypot(p.x-200, p.y-200)
	}
	for range 10 {
		_ = e.Step(400, 400)
	}
	for i, p := range e.particles {
		r := math.Hypot(p.x-200, p.y-200)
		want := math.Max(r0[i]-5, 0)
		if math.Abs(r-want) > 1e-6 {
			t.Errorf("particle %d radius = %f, want %f", i, r, want)
		}
	}
}

func TestLifeNeverIncreases(t *testing.T) {
	e := New(testConfig())
	_ = e.Spawn(ModeBounce, 50, 50, 5, 2)
	_ = e.Spawn(ModeVortex, 50, 50, 5, 2)
	prev := make([]float64, len(e.particles))
	for i, p := range e.particles {
		prev[i] = p.life
	}
	for frame := 0; frame < 50; frame++ {
		_ = e.Step(100, 100)
		if len(e.particles) != len(prev) {
			t.Fatalf("frame %d: %d particles, want %d", frame, len(e.particles), len(prev))
		}
		for i, p := range e.particles {
			if p.life >= prev[i] {
				t.Fatalf("frame %d: particle %d life %f did not decrease from %f", frame, i, p.life, prev[i])
			}
			prev[i] = p.life
		}
	}
}

func TestBurstExpires(t *testing.T) {
	e := New(testConfig())
	if err := e.Spawn(ModeBurst, 5, 5, 20, 3); err != nil {
		t.Fatal(err)
	}
	if got := e.ParticleCount(); got != 20 {
		t.Fatalf("ParticleCount = %d, want 20", got)
	}
	for range 200 {
		_ = e.Step(100, 100)
	}
	if got := e.ParticleCount(); got != 0 {
		t.Errorf("ParticleCount = %d after 200 frames, want 0", got)
	}
}

func TestBurstIsRadial(t *testing.T) {
	e := New(testConfig())
	_ = e.Spawn(ModeBurst, 0, 0, 4, 2)
	// Four particles at 0, 90, 180 and 270 degrees.
	wantDirs := [][2]float64{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
	for i, p := range e.particles {
		speed := math.Hypot(p.vx, p.vy)
		if speed < 2 || speed > 8 {
			t.Errorf("particle %d speed = %f, want [2, 8]", i, speed)
		}
		dx, dy := p.vx/speed, p.vy/speed
		if math.Abs(dx-wantDirs[i][0]) > 1e-9 || math.Abs(dy-wantDirs[i][1]) > 1e-9 {
			t.Errorf("particle %d dir = (%f, %f), want %v", i, dx, dy, wantDirs[i])
		}
	}
}

func TestCullPolicyPerMode(t *testing.T) {
	cases := []struct {
		mode Mode
		kept bool
	}{
		{ModeGravity, false},
		{ModeBurst, false},
		{ModeConstellation, false},
		{ModeVortex, true},
		{ModeBounce, true},
	}
	for _, c := range cases {
		e := New(testConfig())
		_ = e.Spawn(c.mode, -500, -500, 3, 2)
		_ = e.Step(100, 100)
		got := e.ParticleCount() == 3
		if got != c.kept {
			t.Errorf("%v off-canvas kept = %v, want %v", c.mode, got, c.kept)
		}
	}
}

func TestConstellationCullCanBeDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Modes[ModeConstellation].Cull = false
	e := New(cfg)
	_ = e.Spawn(ModeConstellation, -500, -500, 3, 2)
	for range 10 {
		_ = e.Step(100, 100)
	}
	if got := e.ParticleCount(); got != 3 {
		t.Errorf("ParticleCount = %d, want 3", got)
	}
}

func TestRangeRandom(t *testing.T) {
	e := New(testConfig())
	for range 100 {
		v := Range{2, 8}.Random(e.rng)
		if v < 2 || v >= 8 {
			t.Fatalf("Random = %f, want [2, 8)", v)
		}
	}
	if v := (Range{3, 3}).Random(e.rng); v != 3 {
		t.Errorf("degenerate Random = %f, want 3", v)
	}
}

func TestBounceNegativeSizeStaysInBounds(t *testing.T) {
	e := New(testConfig())
	if err := e.Spawn(ModeBounce, 50, 50, 20, -10); err != nil {
		t.Fatal(err)
	}
	buf := make([]ParticleSnapshot, 32)
	for frame := 0; frame < 100; frame++ {
		if err := e.Step(100, 100); err != nil {
			t.Fatal(err)
		}
		n := e.ExtractParticles(buf)
		for _, p := range buf[:n] {
			if p.X < 0 || p.X > 100 || p.Y < 0 || p.Y > 100 {
				t.Fatalf("frame %d: particle at (%f, %f) escaped 100x100", frame, p.X, p.Y)
			}
		}
	}
}

func TestWeightlessGravity(t *testing.T) {
	cfg := testConfig()
	cfg.Weightless = true
	e := New(cfg)
	if err := e.Spawn(ModeGravity, 500, 500, 1, 2); err != nil {
		t.Fatal(err)
	}
	vy := e.particles[0].vy
	if err := e.Step(1000, 1000); err != nil {
		t.Fatal(err)
	}
	if want := vy * cfg.Friction; math.Abs(e.particles[0].vy-want) > 1e-12 {
		t.Errorf("vy = %f, want %f with no gravity", e.particles[0].vy, want)
	}
}

func TestVortexHoldKeepsRadius(t *testing.T) {
	cfg := testConfig()
	cfg.VortexHold = true
	e := New(cfg)
	if err := e.Spawn(ModeVortex, 500, 500, 4, 2); err != nil {
		t.Fatal(err)
	}
	radii := make([]float64, len(e.particles))
	for i, p := range e.particles {
		radii[i] = p.radius
	}
	for range 20 {
		_ = e.Step(1000, 1000)
	}
	for i, p := range e.particles {
		if p.radius != radii[i] {
			t.Errorf("particle %d radius = %f, want %f", i, p.radius, radii[i])
		}
	}
}
