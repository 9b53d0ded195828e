// Command libbloom builds the bloom engine as a C shared library:
//
//	go build -buildmode=c-shared -o libdigital_bloom.so ./cmd/libbloom
//
// Engines are referred to by opaque non-zero handles. A zero handle is
// reported as NullPointer. Using a destroyed handle is undefined.
package main

/*
#include <stdint.h>

typedef enum DigitalBloomError {
	Success = 0,
	NullPointer = 1,
	InvalidMode = 2,
	OutOfMemory = 3,
} DigitalBloomError;

typedef uintptr_t DigitalBloomHandle;

typedef struct CParticle {
	double x;
	double y;
	double size;
	double life;
	uint8_t color_r;
	uint8_t color_g;
	uint8_t color_b;
} CParticle;

typedef struct CPoint {
	double x;
	double y;
} CPoint;

typedef struct CVine {
	const CPoint *points_ptr;
	uintptr_t points_len;
	uint8_t color_r;
	uint8_t color_g;
	uint8_t color_b;
	double line_width;
	double life;
} CVine;

// segments_ptr holds segments_len points, two per segment.
typedef struct CLightning {
	const CPoint *segments_ptr;
	uintptr_t segments_len;
	uint8_t color_r;
	uint8_t color_g;
	uint8_t color_b;
	double line_width;
	double life;
} CLightning;
*/
import "C"

import (
	"unsafe"

	"github.com/phanxgames/bloom"
)

func main() {}

func status(err error) C.DigitalBloomError {
	return C.DigitalBloomError(bloom.StatusOf(err))
}

//export digital_bloom_create
func digital_bloom_create() C.DigitalBloomHandle {
	return C.DigitalBloomHandle(newInstance(bloom.Config{LightningCanvas: 400}))
}

//export digital_bloom_destroy
func digital_bloom_destroy(h C.DigitalBloomHandle) {
	lookup(uintptr(h)).destroy(uintptr(h))
}

//export digital_bloom_update
func digital_bloom_update(h C.DigitalBloomHandle, width, height C.double) C.DigitalBloomError {
	return status(lookup(uintptr(h)).eng().Step(float64(width), float64(height)))
}

//export digital_bloom_create_particles
func digital_bloom_create_particles(h C.DigitalBloomHandle, mode C.uint8_t, x, y C.double, count C.uintptr_t, size C.double) C.DigitalBloomError {
	n := int(count)
	if n < 0 {
		return C.OutOfMemory
	}
	return status(lookup(uintptr(h)).eng().Spawn(bloom.Mode(mode), float64(x), float64(y), n, float64(size)))
}

//export digital_bloom_get_particle_count
func digital_bloom_get_particle_count(h C.DigitalBloomHandle) C.uintptr_t {
	return C.uintptr_t(lookup(uintptr(h)).eng().ParticleCount())
}

//export digital_bloom_get_vine_count
func digital_bloom_get_vine_count(h C.DigitalBloomHandle) C.uintptr_t {
	return C.uintptr_t(lookup(uintptr(h)).eng().VineCount())
}

//export digital_bloom_get_lightning_count
func digital_bloom_get_lightning_count(h C.DigitalBloomHandle) C.uintptr_t {
	return C.uintptr_t(lookup(uintptr(h)).eng().LightningCount())
}

//export digital_bloom_get_particles
func digital_bloom_get_particles(h C.DigitalBloomHandle, out *C.CParticle, capacity C.uintptr_t) C.uintptr_t {
	if out == nil {
		return 0
	}
	ps := lookup(uintptr(h)).extractParticles(int(capacity))
	dst := unsafe.Slice(out, len(ps))
	for i, p := range ps {
		dst[i] = C.CParticle{
			x:       C.double(p.X),
			y:       C.double(p.Y),
			size:    C.double(p.Size),
			life:    C.double(p.Life),
			color_r: C.uint8_t(p.Color.R),
			color_g: C.uint8_t(p.Color.G),
			color_b: C.uint8_t(p.Color.B),
		}
	}
	return C.uintptr_t(len(ps))
}

//export digital_bloom_get_vines
func digital_bloom_get_vines(h C.DigitalBloomHandle, out *C.CVine, capacity C.uintptr_t, points *C.CPoint, pointCapacity C.uintptr_t) C.uintptr_t {
	if out == nil || points == nil {
		return 0
	}
	vs, pts := lookup(uintptr(h)).extractVines(int(capacity), int(pointCapacity))
	cpts := unsafe.Slice(points, len(pts))
	for i, p := range pts {
		cpts[i] = C.CPoint{x: C.double(p.X), y: C.double(p.Y)}
	}
	dst := unsafe.Slice(out, len(vs))
	for i, v := range vs {
		dst[i] = C.CVine{
			points_ptr: &cpts[v.Offset],
			points_len: C.uintptr_t(v.Count),
			color_r:    C.uint8_t(v.Color.R),
			color_g:    C.uint8_t(v.Color.G),
			color_b:    C.uint8_t(v.Color.B),
			line_width: C.double(v.LineWidth),
			life:       C.double(v.Life),
		}
	}
	return C.uintptr_t(len(vs))
}

//export digital_bloom_get_lightning
func digital_bloom_get_lightning(h C.DigitalBloomHandle, out *C.CLightning, capacity C.uintptr_t, points *C.CPoint, pointCapacity C.uintptr_t) C.uintptr_t {
	if out == nil || points == nil {
		return 0
	}
	bs, segs := lookup(uintptr(h)).extractLightning(int(capacity), int(pointCapacity))
	cpts := unsafe.Slice(points, 2*len(segs))
	for i, s := range segs {
		cpts[2*i] = C.CPoint{x: C.double(s.A.X), y: C.double(s.A.Y)}
		cpts[2*i+1] = C.CPoint{x: C.double(s.B.X), y: C.double(s.B.Y)}
	}
	dst := unsafe.Slice(out, len(bs))
	for i, b := range bs {
		dst[i] = C.CLightning{
			segments_ptr: &cpts[2*b.Offset],
			segments_len: C.uintptr_t(2 * b.Count),
			color_r:      C.uint8_t(b.Color.R),
			color_g:      C.uint8_t(b.Color.G),
			color_b:      C.uint8_t(b.Color.B),
			line_width:   C.double(b.LineWidth),
			life:         C.double(b.Life),
		}
	}
	return C.uintptr_t(len(bs))
}

//export digital_bloom_clear
func digital_bloom_clear(h C.DigitalBloomHandle) {
	_ = lookup(uintptr(h)).eng().Clear()
}
