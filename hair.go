package figure

import "github.com/gogpu/gg"

// sidePart is a short cap hugging the top of the head with the parting
// offset to the figure's right.
func sidePart(h gg.Point, r float64) *gg.Path {
	p := gg.NewPath()
	p.MoveTo(h.X-r*1.02, h.Y+r*0.05)
	p.CubicTo(h.X-r*1.1, h.Y-r*0.9, h.X-r*0.3, h.Y-r*1.25, h.X+r*0.35, h.Y-r*1.1)
	p.QuadraticTo(h.X+r*1.1, h.Y-r*0.95, h.X+r*1.02, h.Y-r*0.1)
	p.QuadraticTo(h.X+r*0.7, h.Y-r*0.55, h.X+r*0.25, h.Y-r*0.72)
	p.QuadraticTo(h.X-r*0.55, h.Y-r*0.6, h.X-r*0.78, h.Y+r*0.05)
	p.Close()
	return p
}

// bob frames the face and falls to about jaw height on both sides.
func bob(h gg.Point, r float64) *gg.Path {
	p := gg.NewPath()
	p.MoveTo(h.X-r*1.15, h.Y+r*0.75)
	p.CubicTo(h.X-r*1.35, h.Y-r*0.6, h.X-r*0.75, h.Y-r*1.3, h.X, h.Y-r*1.2)
	p.CubicTo(h.X+r*0.75, h.Y-r*1.3, h.X+r*1.35, h.Y-r*0.6, h.X+r*1.15, h.Y+r*0.75)
	p.QuadraticTo(h.X+r*0.95, h.Y+r*0.8, h.X+r*0.82, h.Y+r*0.6)
	p.QuadraticTo(h.X+r*0.6, h.Y-r*0.55, h.X, h.Y-r*0.62)
	p.QuadraticTo(h.X-r*0.6, h.Y-r*0.55, h.X-r*0.82, h.Y+r*0.6)
	p.QuadraticTo(h.X-r*0.95, h.Y+r*0.8, h.X-r*1.15, h.Y+r*0.75)
	p.Close()
	return p
}

// strand is a loose lock trailing below the bob on one side; sign is -1 for
// the left side and 1 for the right.
func strand(h gg.Point, r, sign float64) *gg.Path {
	p := gg.NewPath()
	p.MoveTo(h.X+sign*r*1.05, h.Y+r*0.5)
	p.QuadraticTo(h.X+sign*r*1.3, h.Y+r*1.0, h.X+sign*r*1.05, h.Y+r*1.35)
	return p
}
