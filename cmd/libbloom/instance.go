package main

import (
	"runtime/cgo"

	"github.com/phanxgames/bloom"
)

// instance is what a C handle points at: an engine plus scratch buffers
// reused across extraction calls.
type instance struct {
	engine    *bloom.Engine
	particles []bloom.ParticleSnapshot
	vines     []bloom.VineSnapshot
	points    []bloom.Point
	bolts     []bloom.BoltSnapshot
	segments  []bloom.Segment
}

func newInstance(cfg bloom.Config) uintptr {
	return uintptr(cgo.NewHandle(&instance{engine: bloom.New(cfg)}))
}

// lookup resolves a handle. Zero yields nil, which every engine method
// reports as ErrNullPointer.
func lookup(h uintptr) *instance {
	if h == 0 {
		return nil
	}
	inst, _ := cgo.Handle(h).Value().(*instance)
	return inst
}

func (i *instance) destroy(h uintptr) {
	if i == nil {
		return
	}
	i.engine.Destroy()
	cgo.Handle(h).Delete()
}

func (i *instance) eng() *bloom.Engine {
	if i == nil {
		return nil
	}
	return i.engine
}

// extractParticles fills the scratch buffer with up to capacity particles.
func (i *instance) extractParticles(capacity int) []bloom.ParticleSnapshot {
	if i == nil || capacity <= 0 {
		return nil
	}
	i.particles = resize(i.particles, min(capacity, i.engine.ParticleCount()))
	return i.particles[:i.engine.ExtractParticles(i.particles)]
}

// extractVines fills the scratch buffers with whole vines only, as limited by
// both capacities.
func (i *instance) extractVines(capacity, pointCapacity int) ([]bloom.VineSnapshot, []bloom.Point) {
	if i == nil || capacity <= 0 || pointCapacity <= 0 {
		return nil, nil
	}
	i.vines = resize(i.vines, min(capacity, i.engine.VineCount()))
	i.points = resize(i.points, pointCapacity)
	n := i.engine.ExtractVines(i.vines, i.points)
	used := 0
	if n > 0 {
		last := i.vines[n-1]
		used = last.Offset + last.Count
	}
	return i.vines[:n], i.points[:used]
}

// extractLightning is extractVines for bolts. The C side stores each segment
// as two points, so pointCapacity holds half as many segments.
func (i *instance) extractLightning(capacity, pointCapacity int) ([]bloom.BoltSnapshot, []bloom.Segment) {
	if i == nil || capacity <= 0 || pointCapacity < 2 {
		return nil, nil
	}
	i.bolts = resize(i.bolts, min(capacity, i.engine.LightningCount()))
	i.segments = resize(i.segments, pointCapacity/2)
	n := i.engine.ExtractLightning(i.bolts, i.segments)
	used := 0
	if n > 0 {
		last := i.bolts[n-1]
		used = last.Offset + last.Count
	}
	return i.bolts[:n], i.segments[:used]
}

func resize[T any](s []T, n int) []T {
	if cap(s) < n {
		return make([]T, n)
	}
	return s[:n]
}
