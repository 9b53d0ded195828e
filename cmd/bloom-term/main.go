// Command bloom-term runs the bloom engine in a terminal. Drag with the mouse
// to draw; 1-7 pick the mode, +/- change the brush size, z toggles zen
// autopilot, s toggles the chime, c clears and q or Esc quits.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/bloom"
)

type app struct {
	screen tcell.Screen
	engine *bloom.Engine
	brush  *bloom.Brush
	zen    *bloom.Zen
	runner *bloom.Runner
	chime  *chime
	frame  bloom.Frame

	cols, rows int
	status     string
}

func main() {
	configPath := flag.String("config", "", "JSON engine config")
	scriptPath := flag.String("script", "", "JSON replay script")
	fps := flag.Int("fps", 30, "frames per second")
	sound := flag.Bool("sound", false, "start with the chime enabled")
	flag.Parse()

	cfg := bloom.DefaultConfig()
	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		if cfg, err = bloom.LoadConfig(data); err != nil {
			log.Fatal(err)
		}
	}

	a, err := newApp(cfg)
	if err != nil {
		log.Fatalf("failed to initialize: %v", err)
	}
	if *scriptPath != "" {
		data, err := os.ReadFile(*scriptPath)
		if err != nil {
			a.screen.Fini()
			log.Fatal(err)
		}
		if a.runner, err = bloom.LoadScript(data); err != nil {
			a.screen.Fini()
			log.Fatal(err)
		}
	}
	if *sound {
		a.toggleSound()
	}

	err = a.run(time.Second / time.Duration(max(*fps, 1)))
	a.cleanup()
	if err != nil {
		log.Fatal(err)
	}
}

func newApp(cfg bloom.Config) (*app, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	screen.HideCursor()

	a := &app{
		screen: screen,
		engine: bloom.New(cfg),
		brush:  bloom.NewBrush(),
		zen:    bloom.NewZen(cfg.Seed),
		chime:  newChime(),
	}
	a.brush.OnDraw = a.chime.onDraw
	a.handleResize()
	return a, nil
}

func (a *app) canvas() (float64, float64) {
	return float64(a.cols) * cellW, float64(a.rows-1) * cellH
}

func (a *app) handleResize() {
	a.cols, a.rows = a.screen.Size()
	_, h := a.canvas()
	a.chime.setHeight(h)
	a.screen.Sync()
}

func (a *app) toggleSound() {
	if err := a.chime.init(); err != nil {
		a.status = fmt.Sprintf("audio unavailable: %v", err)
		return
	}
	if a.chime.toggle() {
		a.status = "sound on"
	} else {
		a.status = "sound off"
	}
}

// handleInput reacts to one terminal event and reports whether to keep running.
func (a *app) handleInput(ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false, nil
		}
		if ev.Key() != tcell.KeyRune {
			return true, nil
		}
		switch r := ev.Rune(); {
		case r >= '1' && r <= '7':
			a.brush.Mode = bloom.Mode(r - '1')
		case r == '+' || r == '=':
			a.brush.Grow(1)
		case r == '-':
			a.brush.Grow(-1)
		case r == 'z':
			a.zen.Toggle()
		case r == 's':
			a.toggleSound()
		case r == 'c':
			return true, a.engine.Clear()
		case r == 'q':
			return false, nil
		}

	case *tcell.EventMouse:
		cx, cy := ev.Position()
		x := (float64(cx) + 0.5) * cellW
		y := (float64(cy) + 0.5) * cellH
		pressed := ev.Buttons()&tcell.Button1 != 0
		switch {
		case pressed && !a.brush.Drawing():
			return true, a.brush.Press(a.engine, x, y)
		case pressed:
			return true, a.brush.Move(a.engine, x, y)
		case a.brush.Drawing():
			a.brush.Release()
		}

	case *tcell.EventResize:
		a.handleResize()
	}
	return true, nil
}

func (a *app) tick() error {
	w, h := a.canvas()
	if a.runner != nil {
		if err := a.runner.Step(a.engine, w, h); err != nil {
			return err
		}
	} else {
		if err := a.zen.Update(a.brush, a.engine, w, h); err != nil {
			return err
		}
		if err := a.engine.Step(w, h); err != nil {
			return err
		}
	}
	a.draw()
	return nil
}

func (a *app) draw() {
	a.engine.Snapshot(&a.frame)
	drawFrame(a.screen, &a.frame)

	zen := "off"
	if a.zen.Enabled {
		zen = "on"
	}
	line := fmt.Sprintf(" %s  brush %.0f  zen %s  p:%d v:%d l:%d  %s",
		a.brush.Mode, a.brush.Size(), zen,
		len(a.frame.Particles), len(a.frame.Vines), len(a.frame.Bolts), a.status)
	st := tcell.StyleDefault.Reverse(true)
	for x := 0; x < a.cols; x++ {
		r := ' '
		if x < len(line) {
			r = rune(line[x])
		}
		a.screen.SetContent(x, a.rows-1, r, nil, st)
	}
	a.screen.Show()
}

func (a *app) run(interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			ok, err := a.handleInput(ev)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
		case <-ticker.C:
			if err := a.tick(); err != nil {
				return err
			}
		}
	}
}

func (a *app) cleanup() {
	a.chime.close()
	a.engine.Destroy()
	a.screen.Fini()
}
