package bloom

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in a replay script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	Mode   Mode    `json:"mode,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Count  int     `json:"count,omitempty"`
	Size   float64 `json:"size,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// script is the top-level JSON structure for a replay script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// Runner replays a scripted sequence of spawns, brush strokes, waits and
// clears against an Engine, one frame per Step call. Useful for demos and
// reproducible tests.
type Runner struct {
	steps       []scriptStep
	cursor      int
	waitCount   int
	done        bool
	brush       *Brush
	injectQueue []pointerEvent

	screenshotQueue []string
}

// LoadScript parses a JSON replay script:
//
//	{"steps": [
//		{"action": "spawn", "mode": "burst", "x": 50, "y": 50, "count": 12, "size": 4},
//		{"action": "drag", "mode": "vine", "fromX": 10, "fromY": 10, "toX": 200, "toY": 90, "frames": 20},
//		{"action": "click", "mode": "lightning", "x": 300, "y": 20},
//		{"action": "wait", "frames": 30},
//		{"action": "screenshot", "label": "storm"},
//		{"action": "clear"}
//	]}
//
// A spawn without a count uses the mode's DefaultCount. Click and drag go
// through a Brush, so they spawn exactly what a pointer would; size sets the
// brush size for that stroke. Screenshot only queues its label; see
// PendingScreenshots.
func LoadScript(jsonData []byte) (*Runner, error) {
	var s script
	if err := json.Unmarshal(jsonData, &s); err != nil {
		return nil, fmt.Errorf("bloom: parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("bloom: parse script: no steps")
	}
	for i, st := range s.Steps {
		switch st.Action {
		case "spawn":
			if st.Count == 0 {
				s.Steps[i].Count = st.Mode.DefaultCount()
			}
		case "click", "drag", "wait", "clear", "screenshot":
		default:
			return nil, fmt.Errorf("bloom: parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Runner{steps: s.Steps, brush: NewBrush()}, nil
}

// Done reports whether every step has run, every wait has elapsed and every
// injected stroke has been drawn.
func (r *Runner) Done() bool {
	return r.done
}

// Step runs actions until it reaches a wait, a stroke or the end of the
// script, then advances e by one frame on a width x height canvas. Once Done,
// Step only advances e.
func (r *Runner) Step(e *Engine, width, height float64) error {
	if err := r.run(e); err != nil {
		return err
	}
	return e.Step(width, height)
}

func (r *Runner) run(e *Engine) error {
	if r.done {
		return nil
	}
	// Pending strokes are drawn one sample per frame.
	if ok, err := r.processInjected(e); ok {
		r.checkDone()
		return err
	}
	if r.waitCount > 0 {
		r.waitCount--
		r.checkDone()
		return nil
	}
	for r.cursor < len(r.steps) {
		st := r.steps[r.cursor]
		r.cursor++

		switch st.Action {
		case "spawn":
			if err := e.Spawn(st.Mode, st.X, st.Y, st.Count, st.Size); err != nil {
				return fmt.Errorf("bloom: script step %d: %w", r.cursor-1, err)
			}
		case "clear":
			if err := e.Clear(); err != nil {
				return fmt.Errorf("bloom: script step %d: %w", r.cursor-1, err)
			}
		case "screenshot":
			r.Screenshot(st.Label)
		case "click", "drag":
			r.brush.Mode = st.Mode
			if st.Size > 0 {
				r.brush.SetSize(st.Size)
			}
			if st.Action == "click" {
				r.injectClick(st.X, st.Y)
			} else {
				r.injectDrag(Point{st.FromX, st.FromY}, Point{st.ToX, st.ToY}, st.Frames)
			}
			_, err := r.processInjected(e)
			if err != nil {
				err = fmt.Errorf("bloom: script step %d: %w", r.cursor-1, err)
			}
			r.checkDone()
			return err
		case "wait":
			if st.Frames > 0 {
				r.waitCount = st.Frames - 1 // this frame counts as one
				r.checkDone()
				return nil
			}
		}
	}
	r.done = true
	return nil
}

func (r *Runner) checkDone() {
	r.done = r.cursor >= len(r.steps) && r.waitCount == 0 && len(r.injectQueue) == 0
}
