package main

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/phanxgames/bloom"
)

const (
	sampleRate   = beep.SampleRate(44100)
	noteDuration = 180 * time.Millisecond
	noteVolume   = -4.0 // log2 gain
)

// pentatonic holds C3 to A4 of the C major pentatonic scale, low to high.
var pentatonic = [...]float64{
	130.81, 146.83, 164.81, 196.00, 220.00,
	261.63, 293.66, 329.63, 392.00, 440.00,
}

// noteFor maps a canvas height to a scale index: the top of the canvas plays
// the highest note.
func noteFor(y, height float64) int {
	if height <= 0 {
		return 0
	}
	i := int(math.Floor((1 - y/height) * float64(len(pentatonic))))
	return max(0, min(len(pentatonic)-1, i))
}

// chime plays a short sine note for every brush spawn while enabled.
type chime struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	ready   bool
	enabled bool
	height  float64
}

func newChime() *chime {
	return &chime{mixer: &beep.Mixer{}}
}

// init opens the audio device. Without one the chime stays silent.
func (c *chime) init() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ready {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(c.mixer)
	c.ready = true
	return nil
}

func (c *chime) toggle() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enabled = !c.enabled
	return c.enabled
}

func (c *chime) setHeight(h float64) {
	c.mu.Lock()
	c.height = h
	c.mu.Unlock()
}

// onDraw is installed as the brush's OnDraw hook. Vortex and lightning are
// silent.
func (c *chime) onDraw(mode bloom.Mode, at bloom.Point) {
	if mode == bloom.ModeVortex || mode == bloom.ModeLightning {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.ready || !c.enabled {
		return
	}
	tone, err := generators.SineTone(sampleRate, pentatonic[noteFor(at.Y, c.height)])
	if err != nil {
		return
	}
	n := sampleRate.N(noteDuration)
	note := &effects.Volume{
		Streamer: &decay{Streamer: beep.Take(n, tone), total: n},
		Base:     2,
		Volume:   noteVolume,
	}
	speaker.Lock()
	c.mixer.Add(note)
	speaker.Unlock()
}

func (c *chime) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ready {
		speaker.Close()
		c.ready = false
	}
}

// decay fades a streamer linearly to silence over total samples.
type decay struct {
	beep.Streamer
	pos, total int
}

func (d *decay) Stream(samples [][2]float64) (int, bool) {
	n, ok := d.Streamer.Stream(samples)
	for i := range samples[:n] {
		g := 1 - float64(d.pos)/float64(d.total)
		samples[i][0] *= g
		samples[i][1] *= g
		d.pos++
	}
	return n, ok
}
