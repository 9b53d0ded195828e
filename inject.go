package bloom

// pointerEvent is a single synthetic pointer sample fed to a Brush.
type pointerEvent struct {
	at      Point
	pressed bool
	moved   bool // held and moving, as opposed to the initial press
}

// injectPress queues a press at (x, y).
func (r *Runner) injectPress(x, y float64) {
	r.injectQueue = append(r.injectQueue, pointerEvent{at: Point{x, y}, pressed: true})
}

// injectMove queues a held move to (x, y). Use between injectPress and
// injectRelease to simulate a stroke.
func (r *Runner) injectMove(x, y float64) {
	r.injectQueue = append(r.injectQueue, pointerEvent{at: Point{x, y}, pressed: true, moved: true})
}

// injectRelease queues the end of a stroke at (x, y).
func (r *Runner) injectRelease(x, y float64) {
	r.injectQueue = append(r.injectQueue, pointerEvent{at: Point{x, y}})
}

// injectClick queues a press followed by a release at the same point.
// Consumes two frames.
func (r *Runner) injectClick(x, y float64) {
	r.injectPress(x, y)
	r.injectRelease(x, y)
}

// injectDrag queues a full stroke: press at from, linearly interpolated
// moves over frames-2 intermediate frames, and release at to. The sequence
// consumes frames frames, at least 2.
func (r *Runner) injectDrag(from, to Point, frames int) {
	frames = max(frames, 2)
	r.injectPress(from.X, from.Y)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		r.injectMove(from.X+(to.X-from.X)*t, from.Y+(to.Y-from.Y)*t)
	}
	r.injectRelease(to.X, to.Y)
}

// processInjected pops one queued event and feeds it to the runner's brush.
// It reports whether an event was consumed.
func (r *Runner) processInjected(e *Engine) (bool, error) {
	if len(r.injectQueue) == 0 {
		return false, nil
	}
	ev := r.injectQueue[0]
	copy(r.injectQueue, r.injectQueue[1:])
	r.injectQueue = r.injectQueue[:len(r.injectQueue)-1]

	switch {
	case !ev.pressed:
		if err := r.brush.Move(e, ev.at.X, ev.at.Y); err != nil {
			return true, err
		}
		r.brush.Release()
	case ev.moved:
		return true, r.brush.Move(e, ev.at.X, ev.at.Y)
	default:
		return true, r.brush.Press(e, ev.at.X, ev.at.Y)
	}
	return true, nil
}
