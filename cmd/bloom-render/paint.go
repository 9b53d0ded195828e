package main

import (
	"github.com/gogpu/gg"

	"github.com/phanxgames/bloom"
)

// backdrop is the canvas color behind every frame.
var backdrop = gg.RGB(10.0/255, 10.0/255, 10.0/255)

func setColor(dc *gg.Context, c bloom.Color, life float64) {
	a := max(0, min(1, life))
	dc.SetRGBA(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255, a)
}

// paint draws f onto dc: vines, then bolts, then particles on top.
func paint(dc *gg.Context, f *bloom.Frame) error {
	dc.ClearWithColor(backdrop)
	dc.SetLineCap(gg.LineCapRound)

	for _, v := range f.Vines {
		if v.Count < 2 {
			continue
		}
		pts := f.VinePoints[v.Offset : v.Offset+v.Count]
		dc.MoveTo(pts[0].X, pts[0].Y)
		for _, p := range pts[1:] {
			dc.LineTo(p.X, p.Y)
		}
		setColor(dc, v.Color, v.Life)
		dc.SetLineWidth(v.LineWidth)
		if err := dc.Stroke(); err != nil {
			return err
		}
	}

	for _, b := range f.Bolts {
		for _, s := range f.BoltSegments[b.Offset : b.Offset+b.Count] {
			dc.MoveTo(s.A.X, s.A.Y)
			dc.LineTo(s.B.X, s.B.Y)
		}
		setColor(dc, b.Color, b.Life)
		dc.SetLineWidth(max(b.LineWidth, 0.5))
		if err := dc.Stroke(); err != nil {
			return err
		}
	}

	for _, p := range f.Particles {
		if p.Size <= 0 {
			continue
		}
		dc.DrawCircle(p.X, p.Y, p.Size)
		setColor(dc, p.Color, p.Life)
		if err := dc.Fill(); err != nil {
			return err
		}
	}
	return nil
}
