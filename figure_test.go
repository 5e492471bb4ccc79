package figure

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
)

// standing is a neutral upright pose used across the package tests.
func standing() Pose {
	var p Pose
	p[Head] = gg.Pt(50, 16)
	p[Neck] = gg.Pt(50, 24)
	p[Shoulder] = gg.Pt(50, 30)
	p[Hip] = gg.Pt(50, 62)
	p[LElbow] = gg.Pt(42, 46)
	p[LHand] = gg.Pt(40, 60)
	p[RElbow] = gg.Pt(58, 46)
	p[RHand] = gg.Pt(60, 60)
	p[LKnee] = gg.Pt(45, 84)
	p[LFoot] = gg.Pt(45, 106)
	p[RKnee] = gg.Pt(55, 84)
	p[RFoot] = gg.Pt(55, 106)
	return p
}

// armsUp raises both arms above the head.
func armsUp() Pose {
	return standing().
		With(LElbow, gg.Pt(40, 20)).
		With(LHand, gg.Pt(36, 4)).
		With(RElbow, gg.Pt(60, 20)).
		With(RHand, gg.Pt(64, 4))
}

// pathPoints returns every point referenced by a path's elements.
func pathPoints(p *gg.Path) []gg.Point {
	var pts []gg.Point
	for _, el := range p.Elements() {
		switch e := el.(type) {
		case gg.MoveTo:
			pts = append(pts, e.Point)
		case gg.LineTo:
			pts = append(pts, e.Point)
		case gg.QuadTo:
			pts = append(pts, e.Control, e.Point)
		case gg.CubicTo:
			pts = append(pts, e.Control1, e.Control2, e.Point)
		}
	}
	return pts
}

func finite(p gg.Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

func TestJointString(t *testing.T) {
	tests := []struct {
		j    Joint
		want string
	}{
		{Head, "head"},
		{Shoulder, "shoulder"},
		{LElbow, "lElbow"},
		{RFoot, "rFoot"},
		{NumJoints, "unknown"},
	}
	for _, tt := range tests {
		if got := tt.j.String(); got != tt.want {
			t.Errorf("Joint(%d).String() = %q, want %q", tt.j, got, tt.want)
		}
	}
}

func TestPoseWithAndShift(t *testing.T) {
	p := standing()
	moved := p.With(Head, gg.Pt(1, 2))
	if p.At(Head) != gg.Pt(50, 16) {
		t.Errorf("With mutated the receiver: head = %v", p.At(Head))
	}
	if moved.At(Head) != gg.Pt(1, 2) {
		t.Errorf("With: head = %v, want (1,2)", moved.At(Head))
	}

	shifted := p.Shift(10, -5)
	for j := Joint(0); j < NumJoints; j++ {
		want := p.At(j).Add(gg.Pt(10, -5))
		if shifted.At(j) != want {
			t.Errorf("Shift: %s = %v, want %v", j, shifted.At(j), want)
		}
	}
}
