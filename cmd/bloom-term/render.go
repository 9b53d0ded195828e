package main

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/bloom"
)

// Each terminal cell stands for a cellW x cellH block of engine canvas, so
// the simulation keeps roughly the proportions it has in a window.
const (
	cellW = 8.0
	cellH = 16.0
)

var background = tcell.StyleDefault.Background(tcell.ColorBlack)

// toCell converts a canvas point to a cell, reporting false when it falls
// outside the screen.
func toCell(p bloom.Point, cols, rows int) (int, int, bool) {
	x := int(math.Floor(p.X / cellW))
	y := int(math.Floor(p.Y / cellH))
	return x, y, x >= 0 && y >= 0 && x < cols && y < rows
}

func styleFor(c bloom.Color, life float64) tcell.Style {
	a := max(0.15, min(1, life))
	fg := tcell.NewRGBColor(int32(float64(c.R)*a), int32(float64(c.G)*a), int32(float64(c.B)*a))
	return background.Foreground(fg)
}

// drawFrame paints f onto s. Vines go first, then bolts, then particles on top.
func drawFrame(s tcell.Screen, f *bloom.Frame) {
	cols, rows := s.Size()
	s.Fill(' ', background)

	for _, v := range f.Vines {
		st := styleFor(v.Color, v.Life)
		pts := f.VinePoints[v.Offset : v.Offset+v.Count]
		for i := 1; i < len(pts); i++ {
			drawLine(s, pts[i-1], pts[i], '░', st, cols, rows)
		}
		if len(pts) == 1 {
			if x, y, ok := toCell(pts[0], cols, rows); ok {
				s.SetContent(x, y, '░', nil, st)
			}
		}
	}

	for _, b := range f.Bolts {
		st := styleFor(b.Color, b.Life).Bold(true)
		for _, seg := range f.BoltSegments[b.Offset : b.Offset+b.Count] {
			drawLine(s, seg.A, seg.B, '#', st, cols, rows)
		}
	}

	for _, p := range f.Particles {
		x, y, ok := toCell(bloom.Point{X: p.X, Y: p.Y}, cols, rows)
		if !ok {
			continue
		}
		r := '·'
		switch {
		case p.Size >= 4:
			r = '●'
		case p.Size >= 2:
			r = '•'
		}
		s.SetContent(x, y, r, nil, styleFor(p.Color, p.Life))
	}
}

// drawLine samples the segment a-b at half-cell steps.
func drawLine(s tcell.Screen, a, b bloom.Point, r rune, st tcell.Style, cols, rows int) {
	steps := int(math.Max(math.Abs(b.X-a.X)/(cellW/2), math.Abs(b.Y-a.Y)/(cellH/2))) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		p := bloom.Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
		if x, y, ok := toCell(p, cols, rows); ok {
			s.SetContent(x, y, r, nil, st)
		}
	}
}
