package figure

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/figure/drawing"
)

// Scene is everything needed to compose one figure.
type Scene struct {
	Pose      Pose
	Highlight Parts
	Props     Props
	Gender    Gender

	// IDPrefix is unique per rendered instance. Gradient and marker ids are
	// derived from it so figures sharing a document do not collide.
	IDPrefix string
}

// side selects the left or right limb of a pair.
type side struct {
	name        string
	elbow, hand Joint
	knee, foot  Joint
	arm, leg    Part
	outward     float64 // sign applied to the torso normal
}

var (
	leftSide  = side{name: "l", elbow: LElbow, hand: LHand, knee: LKnee, foot: LFoot, arm: PartLArm, leg: PartLLeg, outward: 1}
	rightSide = side{name: "r", elbow: RElbow, hand: RHand, knee: RKnee, foot: RFoot, arm: PartRArm, leg: PartRLeg, outward: -1}
)

// Compose builds the drawing of a figure in the workspace coordinate space.
//
// Paint order, back to front: background glow, furniture behind the
// figure, shadow, left leg, right leg, left arm, torso, right arm, neck,
// head, hair, and finally the motion arrow.
func Compose(s Scene) *drawing.Drawing {
	d := drawing.New(s.IDPrefix, WorkspaceWidth, WorkspaceHeight)
	c := composer{
		d:   d,
		pal: newPalette(s.IDPrefix),
		pr:  ProportionsFor(s.Gender),
		s:   s,
	}
	c.u, c.n = axis(s.Pose[Shoulder], s.Pose[Hip])

	c.glow()
	c.furniture()
	c.shadow()
	c.leg(leftSide)
	c.leg(rightSide)
	c.arm(leftSide)
	c.torso()
	c.arm(rightSide)
	c.neck()
	c.head()
	c.arrow()
	return d
}

// composer carries the per-figure state while the layers are emitted.
type composer struct {
	d   *drawing.Drawing
	pal palette
	pr  Proportions
	s   Scene

	// torso axis (shoulder to hip) and its normal
	u, n gg.Point
}

func (c *composer) at(j Joint) gg.Point {
	return c.s.Pose[j]
}

func (c *composer) glow() {
	p := gg.NewPath()
	p.Ellipse(WorkspaceWidth/2, WorkspaceHeight/2, WorkspaceWidth/2, WorkspaceHeight/2)
	c.d.Fill("glow", p, c.pal.glow)
}

func (c *composer) furniture() {
	props := c.s.Props
	if m := props.Mat; m != nil {
		p := gg.NewPath()
		p.RoundedRectangle(m.X, m.Y, m.W, m.H, math.Min(m.H/2, 2))
		c.d.Fill("mat", p, drawing.NewSolidBrush(MatColor))
	}
	if sf := props.Surface; sf != nil {
		p := gg.NewPath()
		p.MoveTo(sf.X1, sf.Y)
		p.LineTo(sf.X2, sf.Y)
		c.d.Stroke("surface", p, drawing.NewSolidBrush(SurfaceTint), lineStroke(1.2))
	}
	if w := props.Wall; w != nil {
		p := gg.NewPath()
		p.Rectangle(w.X-1.5, w.Y1, 3, w.Y2-w.Y1)
		c.d.Fill("wall", p, drawing.NewSolidBrush(WallColor))
	}
	if ch := props.Chair; ch != nil && len(ch.Points) > 1 {
		c.d.Stroke("chair", polyline(ch.Points), drawing.NewSolidBrush(ChairColor), lineStroke(2.2))
	}
}

// shadow lays a soft ellipse under the lowest point of the figure.
func (c *composer) shadow() {
	minX, maxX := math.Inf(1), math.Inf(-1)
	maxY := math.Inf(-1)
	for _, p := range c.s.Pose {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	rx := math.Max((maxX-minX)/2+4, 10)
	p := gg.NewPath()
	p.Ellipse((minX+maxX)/2, maxY+3, rx, 2.2)
	c.d.Fill("shadow", p, c.pal.shadow)
}

// root returns where a limb attaches: the torso corner on the given side,
// inset by the limb's own width so the limb overlaps the torso outline.
func (c *composer) root(center gg.Point, halfWidth, limbWidth, outward float64) gg.Point {
	return center.Add(c.n.Mul(outward * math.Max(halfWidth-limbWidth, 0)))
}

func (c *composer) leg(sd side) {
	hl := c.s.Highlight
	brush := c.pal.fill(hl, sd.leg)
	hip := c.root(c.at(Hip), c.pr.HipWidth, c.pr.Thigh[0], sd.outward)
	knee, foot := c.at(sd.knee), c.at(sd.foot)
	prefix := "leg." + sd.name

	c.d.Fill(prefix+".thigh", Limb(hip, knee, c.pr.Thigh[0], c.pr.Thigh[1]), brush)
	c.d.Fill(prefix+".calf", Limb(knee, foot, c.pr.Calf[0], c.pr.Calf[1]), brush)
	toe := foot.Add(forward(knee, foot).Mul(c.pr.FootLength))
	c.d.Fill(prefix+".foot", Limb(foot, toe, c.pr.Calf[1]*0.9, c.pr.Calf[1]*0.55), brush)
	c.d.Fill(prefix+".knee", circle(knee, c.pr.JointRadius), c.pal.jointFill(hl, sd.leg))
}

func (c *composer) arm(sd side) {
	hl := c.s.Highlight
	brush := c.pal.fill(hl, sd.arm)
	shoulder := c.root(c.at(Shoulder), c.pr.ShoulderWidth, c.pr.UpperArm[0], sd.outward)
	elbow, hand := c.at(sd.elbow), c.at(sd.hand)
	prefix := "arm." + sd.name

	c.d.Fill(prefix+".upper", Limb(shoulder, elbow, c.pr.UpperArm[0], c.pr.UpperArm[1]), brush)
	c.d.Fill(prefix+".fore", Limb(elbow, hand, c.pr.Forearm[0], c.pr.Forearm[1]), brush)
	c.d.Fill(prefix+".hand", circle(hand, c.pr.HandRadius), brush)
	c.d.Fill(prefix+".elbow", circle(elbow, c.pr.JointRadius), c.pal.jointFill(hl, sd.arm))
}

// torso is one closed curved polygon through the two shoulder and two hip
// corners. When shoulder and hip coincide the axis is zero and the outline
// collapses onto that point.
func (c *composer) torso() {
	sh, hip := c.at(Shoulder), c.at(Hip)
	sw, hw := c.pr.ShoulderWidth, c.pr.HipWidth

	sL := sh.Sub(c.n.Mul(sw))
	sR := sh.Add(c.n.Mul(sw))
	hL := hip.Sub(c.n.Mul(hw))
	hR := hip.Add(c.n.Mul(hw))
	waist := (sw + hw) * 0.04

	p := gg.NewPath()
	p.MoveTo(sL.X, sL.Y)
	q := sL.Lerp(hL, 0.5).Sub(c.n.Mul(waist))
	p.QuadraticTo(q.X, q.Y, hL.X, hL.Y)
	q = hip.Add(c.u.Mul(hw * 0.45))
	p.QuadraticTo(q.X, q.Y, hR.X, hR.Y)
	q = hR.Lerp(sR, 0.5).Add(c.n.Mul(waist))
	p.QuadraticTo(q.X, q.Y, sR.X, sR.Y)
	q = sh.Sub(c.u.Mul(sw * 0.35))
	p.QuadraticTo(q.X, q.Y, sL.X, sL.Y)
	p.Close()

	c.d.Fill("torso", p, c.pal.fill(c.s.Highlight, PartBack))
}

func (c *composer) neck() {
	w := c.pr.NeckWidth
	c.d.Fill("neck", Limb(c.at(Shoulder), c.at(Neck), w, w*0.9), c.pal.fill(c.s.Highlight, PartNeck))
}

func (c *composer) head() {
	h := c.at(Head)
	c.d.Fill("head", circle(h, c.pr.HeadRadius), c.pal.body)

	switch c.s.Gender {
	case Male:
		c.d.Fill("hair", sidePart(h, c.pr.HeadRadius), c.pal.hair)
	case Female:
		r := c.pr.HeadRadius
		c.d.Fill("hair", bob(h, r), c.pal.hair)
		for _, sign := range []float64{-1, 1} {
			c.d.Stroke("hair.strand", strand(h, r, sign), c.pal.hair, lineStroke(r*0.16))
		}
	}
}

func (c *composer) arrow() {
	a := c.s.Props.Arrow
	if a == nil || len(a.Points) < 2 {
		return
	}
	s := lineStroke(1.6)
	s.EndMarker = c.pal.arrowMarker()
	c.d.Stroke("arrow", polyline(a.Points), drawing.NewSolidBrush(ArrowColor), s)
}

// forward returns the unit direction toes point for a calf running from
// knee to foot: perpendicular to the calf, preferring right and up.
func forward(knee, foot gg.Point) gg.Point {
	u, _ := axis(knee, foot)
	f := gg.Pt(-u.Y, u.X)
	if f.X-f.Y < -f.X+f.Y {
		f = f.Mul(-1)
	}
	return f
}

func circle(center gg.Point, r float64) *gg.Path {
	p := gg.NewPath()
	p.Circle(center.X, center.Y, r)
	return p
}

func polyline(pts []gg.Point) *gg.Path {
	p := gg.NewPath()
	p.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		p.LineTo(pt.X, pt.Y)
	}
	return p
}

func lineStroke(width float64) drawing.Stroke {
	s := drawing.DefaultStroke()
	s.Width = width
	return s
}
