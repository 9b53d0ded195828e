package bloom

// ParticleSnapshot is a copy of one particle's render state.
type ParticleSnapshot struct {
	X, Y float64
	// Size is the radius to draw, already shrunk by the configured fade.
	Size  float64
	Life  float64
	Color Color
	Mode  Mode
}

// VineSnapshot describes one vine. Its polyline is
// points[Offset : Offset+Count] of the point buffer passed to ExtractVines.
type VineSnapshot struct {
	Offset    int
	Count     int
	Color     Color
	LineWidth float64
	// Life is 1 while growing and fades to 0 over Config.VineHold frames.
	Life    float64
	Growing bool
}

// BoltSnapshot describes one lightning bolt. Its geometry is
// segments[Offset : Offset+Count] of the segment buffer passed to
// ExtractLightning, trunk first.
type BoltSnapshot struct {
	Offset int
	Count  int
	Color  Color
	// LineWidth is already shrunk by the configured fade.
	LineWidth float64
	Life      float64
}

// fade maps a remaining life in [0, 1] to a size factor through Config.Fade.
func (e *Engine) fade(life float64) float64 {
	return float64(e.cfg.Fade(float32(1-life), 1, -1, 1))
}

// ExtractParticles copies up to len(out) particles into out, oldest first,
// and returns how many were written. Particles beyond len(out) are omitted.
func (e *Engine) ExtractParticles(out []ParticleSnapshot) int {
	if e == nil {
		return 0
	}
	n := min(len(out), len(e.particles))
	for i := range n {
		p := &e.particles[i]
		out[i] = ParticleSnapshot{
			X:     p.x,
			Y:     p.y,
			Size:  p.size * e.fade(p.life),
			Life:  p.life,
			Color: p.color,
			Mode:  p.mode,
		}
	}
	return n
}

// ExtractVines copies vines into out and their polylines into points, in
// order, and returns the number of vines written. Extraction stops at the
// first vine that does not fit in either buffer, so every written vine is
// complete.
func (e *Engine) ExtractVines(out []VineSnapshot, points []Point) int {
	if e == nil {
		return 0
	}
	written, used := 0, 0
	for i := range e.vines {
		v := &e.vines[i]
		if written == len(out) || used+len(v.points) > len(points) {
			break
		}
		copy(points[used:], v.points)
		out[written] = VineSnapshot{
			Offset:    used,
			Count:     len(v.points),
			Color:     v.color,
			LineWidth: v.lineWidth,
			Life:      v.life,
			Growing:   !v.grown,
		}
		used += len(v.points)
		written++
	}
	return written
}

// ExtractLightning copies bolts into out and their segments into segments,
// in order, and returns the number of bolts written. Like ExtractVines it
// never writes a partial bolt.
func (e *Engine) ExtractLightning(out []BoltSnapshot, segments []Segment) int {
	if e == nil {
		return 0
	}
	written, used := 0, 0
	for i := range e.bolts {
		b := &e.bolts[i]
		if written == len(out) || used+len(b.segments) > len(segments) {
			break
		}
		copy(segments[used:], b.segments)
		out[written] = BoltSnapshot{
			Offset:    used,
			Count:     len(b.segments),
			Color:     b.color,
			LineWidth: b.lineWidth * e.fade(b.life),
			Life:      b.life,
		}
		used += len(b.segments)
		written++
	}
	return written
}

// Frame holds reusable snapshot buffers. They only grow, so a Frame reused
// every tick stops allocating once it has seen the busiest frame.
type Frame struct {
	Particles    []ParticleSnapshot
	Vines        []VineSnapshot
	VinePoints   []Point
	Bolts        []BoltSnapshot
	BoltSegments []Segment
}

// Snapshot extracts every live entity into f, growing its buffers as needed.
// The slices in f are resliced to exactly the extracted data.
func (e *Engine) Snapshot(f *Frame) {
	if e == nil {
		*f = Frame{
			Particles:    f.Particles[:0],
			Vines:        f.Vines[:0],
			VinePoints:   f.VinePoints[:0],
			Bolts:        f.Bolts[:0],
			BoltSegments: f.BoltSegments[:0],
		}
		return
	}

	f.Particles = grow(f.Particles, len(e.particles))
	f.Particles = f.Particles[:e.ExtractParticles(f.Particles)]

	pts := 0
	for i := range e.vines {
		pts += len(e.vines[i].points)
	}
	f.Vines = grow(f.Vines, len(e.vines))
	f.VinePoints = grow(f.VinePoints, pts)
	f.Vines = f.Vines[:e.ExtractVines(f.Vines, f.VinePoints)]
	f.VinePoints = f.VinePoints[:pts]

	segs := 0
	for i := range e.bolts {
		segs += len(e.bolts[i].segments)
	}
	f.Bolts = grow(f.Bolts, len(e.bolts))
	f.BoltSegments = grow(f.BoltSegments, segs)
	f.Bolts = f.Bolts[:e.ExtractLightning(f.Bolts, f.BoltSegments)]
	f.BoltSegments = f.BoltSegments[:segs]
}

// grow returns s resliced to length n, reallocating to the high-water mark
// only when its capacity is too small.
func grow[T any](s []T, n int) []T {
	if cap(s) < n {
		return make([]T, n)
	}
	return s[:n]
}
