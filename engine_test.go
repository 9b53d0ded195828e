package bloom

import (
	"errors"
	"testing"
)

func TestNilEngine(t *testing.T) {
	var e *Engine
	if err := e.Spawn(ModeBurst, 0, 0, 1, 1); !errors.Is(err, ErrNullPointer) {
		t.Errorf("Spawn on nil = %v, want ErrNullPointer", err)
	}
	if err := e.Step(100, 100); !errors.Is(err, ErrNullPointer) {
		t.Errorf("Step on nil = %v, want ErrNullPointer", err)
	}
	if err := e.Clear(); !errors.Is(err, ErrNullPointer) {
		t.Errorf("Clear on nil = %v, want ErrNullPointer", err)
	}
	if e.ParticleCount() != 0 || e.VineCount() != 0 || e.LightningCount() != 0 || e.Frame() != 0 {
		t.Error("queries on nil engine should report zero")
	}
	if e.ExtractParticles(make([]ParticleSnapshot, 4)) != 0 {
		t.Error("ExtractParticles on nil should return 0")
	}
	if e.ExtractVines(make([]VineSnapshot, 4), make([]Point, 4)) != 0 {
		t.Error("ExtractVines on nil should return 0")
	}
	if e.ExtractLightning(make([]BoltSnapshot, 4), make([]Segment, 4)) != 0 {
		t.Error("ExtractLightning on nil should return 0")
	}
	var f Frame
	e.Snapshot(&f)
	if len(f.Particles) != 0 {
		t.Error("Snapshot on nil should be empty")
	}
	// Must not panic.
	e.Destroy()
	e.SetDebug(true)
	e.SetEventSink(nil)
}

func TestSpawnInvalidMode(t *testing.T) {
	e := New(testConfig())
	_ = e.Spawn(ModeGravity, 10, 10, 3, 2)
	for _, m := range []Mode{7, 42, 255} {
		err := e.Spawn(m, 10, 10, 5, 2)
		if !errors.Is(err, ErrInvalidMode) {
			t.Errorf("Spawn(mode %d) = %v, want ErrInvalidMode", m, err)
		}
		if StatusOf(err) != StatusInvalidMode {
			t.Errorf("StatusOf = %v, want InvalidMode", StatusOf(err))
		}
	}
	if e.ParticleCount() != 3 || e.VineCount() != 0 || e.LightningCount() != 0 {
		t.Errorf("counts = %d/%d/%d, want 3/0/0", e.ParticleCount(), e.VineCount(), e.LightningCount())
	}
}

func TestSpawnZeroCountIsNoop(t *testing.T) {
	e := New(testConfig())
	rec := &recordingSink{}
	e.SetEventSink(rec)
	for m := range Mode(NumModes) {
		if err := e.Spawn(m, 10, 10, 0, 2); err != nil {
			t.Errorf("Spawn(%v, count 0) = %v, want nil", m, err)
		}
	}
	if e.ParticleCount()+e.VineCount()+e.LightningCount() != 0 {
		t.Error("zero-count spawn created entities")
	}
	if len(rec.events) != 0 {
		t.Errorf("zero-count spawn emitted %d events", len(rec.events))
	}
}

func TestSpawnOutOfMemory(t *testing.T) {
	cfg := testConfig()
	cfg.MaxSpawn = 100
	e := New(cfg)
	for _, n := range []int{-1, 101} {
		err := e.Spawn(ModeBurst, 0, 0, n, 2)
		if !errors.Is(err, ErrOutOfMemory) {
			t.Errorf("Spawn(count %d) = %v, want ErrOutOfMemory", n, err)
		}
		if StatusOf(err) != StatusOutOfMemory {
			t.Errorf("StatusOf = %v, want OutOfMemory", StatusOf(err))
		}
	}
	if e.ParticleCount() != 0 {
		t.Errorf("ParticleCount = %d after refused spawns, want 0", e.ParticleCount())
	}
	if err := e.Spawn(ModeBurst, 0, 0, 100, 2); err != nil {
		t.Errorf("Spawn(count 100) = %v, want nil", err)
	}
}

func TestSpawnCountsPerMode(t *testing.T) {
	cases := []struct {
		mode                   Mode
		count                  int
		particles, vines, bolt int
	}{
		{ModeVine, 5, 0, 1, 0},
		{ModeGravity, 5, 5, 0, 0},
		{ModeBounce, 3, 3, 0, 0},
		{ModeBurst, 12, 12, 0, 0},
		{ModeLightning, 4, 0, 0, 1},
		{ModeConstellation, 5, 5, 0, 0},
		{ModeVortex, 8, 8, 0, 0},
	}
	for _, c := range cases {
		t.Run(c.mode.String(), func(t *testing.T) {
			e := New(testConfig())
			if err := e.Spawn(c.mode, 100, 100, c.count, 3); err != nil {
				t.Fatal(err)
			}
			if e.ParticleCount() != c.particles || e.VineCount() != c.vines || e.LightningCount() != c.bolt {
				t.Errorf("counts = %d/%d/%d, want %d/%d/%d",
					e.ParticleCount(), e.VineCount(), e.LightningCount(),
					c.particles, c.vines, c.bolt)
			}
		})
	}
}

func TestSpawnEvictsOldest(t *testing.T) {
	cfg := testConfig()
	cfg.MaxParticles = 10
	e := New(cfg)
	_ = e.Spawn(ModeGravity, 10, 10, 8, 2)
	_ = e.Spawn(ModeBounce, 10, 10, 8, 2)
	if e.ParticleCount() != 10 {
		t.Fatalf("ParticleCount = %d, want cap 10", e.ParticleCount())
	}
	buf := make([]ParticleSnapshot, 10)
	e.ExtractParticles(buf)
	for i, p := range buf {
		want := ModeBounce
		if i < 2 {
			want = ModeGravity
		}
		if p.Mode != want {
			t.Errorf("particle %d mode = %v, want %v", i, p.Mode, want)
		}
	}
}

func TestLightningCap(t *testing.T) {
	e := New(testConfig())
	for range 25 {
		_ = e.Spawn(ModeLightning, 100, 10, 1, 2)
	}
	if e.LightningCount() != 20 {
		t.Errorf("LightningCount = %d, want 20", e.LightningCount())
	}
}

func TestStepAdvancesFrame(t *testing.T) {
	e := New(testConfig())
	for range 3 {
		_ = e.Step(10, 10)
	}
	if e.Frame() != 3 {
		t.Errorf("Frame = %d, want 3", e.Frame())
	}
	if err := e.Step(-5, -5); err != nil {
		t.Errorf("Step with negative bounds = %v, want nil", err)
	}
	if e.width != 0 || e.height != 0 {
		t.Errorf("bounds = %f x %f, want clamped to 0", e.width, e.height)
	}
}

func TestStepEmptyEngine(t *testing.T) {
	e := New(testConfig())
	if err := e.Step(800, 600); err != nil {
		t.Fatal(err)
	}
	if e.ParticleCount()+e.VineCount()+e.LightningCount() != 0 {
		t.Error("empty engine gained entities")
	}
}

func TestDeterministicWithSameSeed(t *testing.T) {
	run := func() Frame {
		e := New(testConfig())
		for m := range Mode(NumModes) {
			_ = e.Spawn(m, 200, 150, m.DefaultCount(), 4)
		}
		for range 30 {
			_ = e.Step(400, 300)
		}
		var f Frame
		e.Snapshot(&f)
		return f
	}
	a, b := run(), run()
	if len(a.Particles) != len(b.Particles) || len(a.VinePoints) != len(b.VinePoints) ||
		len(a.BoltSegments) != len(b.BoltSegments) {
		t.Fatal("two runs with the same seed diverged in size")
	}
	for i := range a.Particles {
		if a.Particles[i] != b.Particles[i] {
			t.Fatalf("particle %d differs: %+v vs %+v", i, a.Particles[i], b.Particles[i])
		}
	}
	for i := range a.VinePoints {
		if a.VinePoints[i] != b.VinePoints[i] {
			t.Fatalf("vine point %d differs", i)
		}
	}
	for i := range a.BoltSegments {
		if a.BoltSegments[i] != b.BoltSegments[i] {
			t.Fatalf("bolt segment %d differs", i)
		}
	}
}

func TestDestroyReleasesEntities(t *testing.T) {
	e := New(testConfig())
	_ = e.Spawn(ModeBurst, 0, 0, 10, 2)
	_ = e.Spawn(ModeVine, 0, 0, 1, 2)
	e.Destroy()
	if e.ParticleCount() != 0 || e.VineCount() != 0 {
		t.Error("Destroy left entities behind")
	}
}

func TestCountsMatchExtraction(t *testing.T) {
	e := New(testConfig())
	for m := range Mode(NumModes) {
		_ = e.Spawn(m, 300, 200, m.DefaultCount(), 3)
	}
	for frame := 0; frame < 120; frame++ {
		_ = e.Step(600, 400)
		var f Frame
		e.Snapshot(&f)
		if len(f.Particles) != e.ParticleCount() || len(f.Vines) != e.VineCount() || len(f.Bolts) != e.LightningCount() {
			t.Fatalf("frame %d: snapshot %d/%d/%d != counts %d/%d/%d", frame,
				len(f.Particles), len(f.Vines), len(f.Bolts),
				e.ParticleCount(), e.VineCount(), e.LightningCount())
		}
		for _, p := range f.Particles {
			if p.Life <= 0 || p.Life > 1 {
				t.Fatalf("frame %d: extracted life %f outside (0, 1]", frame, p.Life)
			}
		}
	}
}

func TestSingleEntityModesIgnoreMaxSpawn(t *testing.T) {
	cfg := testConfig()
	cfg.MaxSpawn = 100
	e := New(cfg)
	if err := e.Spawn(ModeVine, 50, 50, 20000, 2); err != nil {
		t.Errorf("Spawn(vine, count 20000) = %v, want nil", err)
	}
	if err := e.Spawn(ModeLightning, 50, 50, 20000, 2); err != nil {
		t.Errorf("Spawn(lightning, count 20000) = %v, want nil", err)
	}
	if e.VineCount() != 1 || e.LightningCount() != 1 {
		t.Errorf("vines = %d, bolts = %d, want 1 each", e.VineCount(), e.LightningCount())
	}
	for _, m := range []Mode{ModeVine, ModeLightning} {
		if err := e.Spawn(m, 50, 50, -1, 2); !errors.Is(err, ErrOutOfMemory) {
			t.Errorf("Spawn(%v, count -1) = %v, want ErrOutOfMemory", m, err)
		}
	}
}
