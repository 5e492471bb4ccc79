package figure

import "github.com/gogpu/gg"

// minLength is the segment length below which a segment is treated as
// degenerate and its length replaced by 1.
const minLength = 1e-9

// axis returns the unit direction u of p1->p2 and its left-hand normal n.
// For coincident points both come back as zero vectors, which collapses any
// outline built from them onto the joints instead of dividing by zero.
func axis(p1, p2 gg.Point) (u, n gg.Point) {
	d := p2.Sub(p1)
	l := d.Length()
	if l < minLength {
		l = 1
	}
	u = d.Div(l)
	n = gg.Pt(-d.Y, d.X).Div(l)
	return u, n
}

// Limb returns the closed outline of a tapered segment running from p1 to
// p2 with half-width w1 at p1 and w2 at p2. The sides bulge slightly along
// the normal and the ends round off along the segment, so consecutive
// segments read as one smooth limb.
func Limb(p1, p2 gg.Point, w1, w2 float64) *gg.Path {
	u, n := axis(p1, p2)

	a := p1.Add(n.Mul(w1))
	b := p2.Add(n.Mul(w2))
	c := p2.Sub(n.Mul(w2))
	e := p1.Sub(n.Mul(w1))
	bulge := (w1 + w2) * 0.12

	side1 := a.Lerp(b, 0.5).Add(n.Mul(bulge))
	cap2 := p2.Add(u.Mul(w2))
	side2 := c.Lerp(e, 0.5).Sub(n.Mul(bulge))
	cap1 := p1.Sub(u.Mul(w1))

	path := gg.NewPath()
	path.MoveTo(a.X, a.Y)
	path.QuadraticTo(side1.X, side1.Y, b.X, b.Y)
	path.QuadraticTo(cap2.X, cap2.Y, c.X, c.Y)
	path.QuadraticTo(side2.X, side2.Y, e.X, e.Y)
	path.QuadraticTo(cap1.X, cap1.Y, a.X, a.Y)
	path.Close()
	return path
}
