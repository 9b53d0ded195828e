package bloom

import (
	"math"
	"math/rand/v2"
)

const (
	boltTrunkSegments = 15
	boltTrunkJitter   = 30.0
	boltBranchStep    = 8.0
	boltBranchJitter  = 15.0
)

// bolt is a lightning strike. Its segments never change after generation;
// only life decays.
type bolt struct {
	segments  []Segment // trunk first, then branches
	color     Color
	lineWidth float64
	life      float64
	decay     float64
}

// newBolt builds a jagged trunk from start to end with a few branches forking
// off its first 70%.
func newBolt(rng *rand.Rand, start, end Point, color Color, decay float64) bolt {
	trunk := make([]Point, 0, boltTrunkSegments+1)

	// Unit normal of the strike direction. A zero-length strike gets no jitter.
	dx, dy := end.Y-start.Y, -(end.X - start.X)
	var nx, ny float64
	if l := math.Hypot(dx, dy); l > 0 {
		nx, ny = dx/l, dy/l
	}
	for i := 0; i <= boltTrunkSegments; i++ {
		t := float64(i) / boltTrunkSegments
		off := (rng.Float64() - 0.5) * boltTrunkJitter
		trunk = append(trunk, Point{
			X: start.X + (end.X-start.X)*t + nx*off,
			Y: start.Y + (end.Y-start.Y)*t + ny*off,
		})
	}

	b := bolt{
		color:     color,
		lineWidth: rng.Float64()*2 + 1.5,
		life:      1,
		decay:     decay,
	}
	b.segments = appendPolyline(b.segments, trunk)

	branches := rng.IntN(3) + 2
	for range branches {
		idx := int(rng.Float64()*float64(len(trunk))*0.7) + 1
		if idx >= len(trunk) {
			continue
		}
		from := trunk[idx]
		n := 5 + rng.IntN(5)
		angle := rng.Float64() * 2 * math.Pi
		path := make([]Point, 0, n+1)
		path = append(path, from)
		for j := 1; j <= n; j++ {
			dist := float64(j) * boltBranchStep
			off := (rng.Float64() - 0.5) * boltBranchJitter
			path = append(path, Point{
				X: from.X + math.Cos(angle)*dist + off,
				Y: from.Y + math.Sin(angle)*dist + off,
			})
		}
		b.segments = appendPolyline(b.segments, path)
	}
	return b
}

// appendPolyline appends the segments joining consecutive points.
func appendPolyline(dst []Segment, pts []Point) []Segment {
	for i := 1; i < len(pts); i++ {
		dst = append(dst, Segment{pts[i-1], pts[i]})
	}
	return dst
}

// update decays the bolt and reports whether it is still visible.
func (b *bolt) update() bool {
	b.life -= b.decay
	return b.life > 0
}
