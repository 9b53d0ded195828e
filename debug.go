package bloom

import (
	"fmt"
	"io"
	"os"
	"time"
)

// debugOutput receives debug lines. Tests swap it for a buffer.
var debugOutput io.Writer = os.Stderr

// stepStats holds per-step timing and population metrics.
// Only populated when the engine is in debug mode.
type stepStats struct {
	particleTime  time.Duration
	vineTime      time.Duration
	lightningTime time.Duration
	retired       [3]int
}

// SetDebug enables per-step timing and population lines on stderr.
func (e *Engine) SetDebug(on bool) {
	if e == nil {
		return
	}
	e.debug = on
}

// debugLog prints step timing and live counts.
func (e *Engine) debugLog(stats stepStats) {
	if !e.debug {
		return
	}
	total := stats.particleTime + stats.vineTime + stats.lightningTime
	_, _ = fmt.Fprintf(debugOutput,
		"[bloom] frame %d | particles: %v | vines: %v | lightning: %v | total: %v\n",
		e.frame, stats.particleTime, stats.vineTime, stats.lightningTime, total)
	_, _ = fmt.Fprintf(debugOutput,
		"[bloom] live: %d/%d/%d | retired: %d/%d/%d\n",
		len(e.particles), len(e.vines), len(e.bolts),
		stats.retired[KindParticle], stats.retired[KindVine], stats.retired[KindLightning])
}

// debugLogEvict warns when a spawn pushed a collection past its cap.
func (e *Engine) debugLogEvict(kind Kind, n, limit int) {
	if !e.debug || n == 0 {
		return
	}
	_, _ = fmt.Fprintf(debugOutput, "[bloom] warning: evicted %d oldest %s entities (cap %d)\n",
		n, kind, limit)
}
