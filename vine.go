package bloom

import (
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// vine is a polyline that grows from its anchor, then holds still while it
// fades out. points[0] is the anchor; points are only ever appended.
type vine struct {
	points    []Point
	x, y      float64 // growing tip
	angle     float64
	speed     float64
	turnSpeed float64
	maxLength float64 // growth budget in points
	color     Color
	lineWidth float64

	grown bool
	life  float64
	fade  *gween.Tween // life 1 -> 0 once grown

	noise      *perlin.Perlin
	noiseAmp   float64
	noisePhase float64
}

// grow appends one point to a growing vine. It reports whether the vine is
// still growing afterwards.
func (v *vine) grow(width, height float64) bool {
	v.angle += v.turnSpeed
	heading := v.angle
	if v.noise != nil {
		heading += v.noise.Noise1D(v.noisePhase+float64(len(v.points))*0.1) * v.noiseAmp
	}
	nx := v.x + math.Cos(heading)*v.speed
	ny := v.y + math.Sin(heading)*v.speed
	if nx < 0 || nx > width || ny < 0 || ny > height {
		return false
	}
	v.x, v.y = nx, ny
	v.points = append(v.points, Point{nx, ny})
	return float64(len(v.points)) <= v.maxLength
}

// update advances the vine by one frame. grownNow is true on the frame growth
// ends; alive is false once the hold fade has run out.
func (v *vine) update(width, height float64, hold int) (alive, grownNow bool) {
	if !v.grown {
		if v.grow(width, height) {
			return true, false
		}
		v.grown = true
		v.fade = gween.New(1, 0, float32(hold), ease.Linear)
		return true, true
	}
	life, done := v.fade.Update(1)
	v.life = float64(life)
	if done || v.life <= 0 {
		v.life = 0
		return false, false
	}
	return true, false
}
