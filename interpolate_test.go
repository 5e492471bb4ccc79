package figure

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
)

func between(v, a, b float64) bool {
	const eps = 1e-9
	lo, hi := math.Min(a, b), math.Max(a, b)
	return v >= lo-eps && v <= hi+eps
}

func TestInterpolateEndpoints(t *testing.T) {
	from, to := standing(), armsUp()
	// Non-representable coordinates catch a lerp that drifts at t == 1.
	from[Head] = gg.Pt(0.1, 0.7)
	to[Head] = gg.Pt(0.3, 0.2)

	if got := Interpolate(from, to, 0); got != from {
		t.Errorf("t=0: got %v, want start pose", got)
	}
	if got := Interpolate(from, to, 1); got != to {
		t.Errorf("t=1: got %v, want end pose", got)
	}
}

func TestInterpolateBounds(t *testing.T) {
	from, to := standing(), armsUp()
	for i := 0; i <= 100; i++ {
		tt := float64(i) / 100
		got := Interpolate(from, to, tt)
		for j := Joint(0); j < NumJoints; j++ {
			if !between(got[j].X, from[j].X, to[j].X) || !between(got[j].Y, from[j].Y, to[j].Y) {
				t.Fatalf("t=%v: %s = %v outside [%v, %v]", tt, j, got[j], from[j], to[j])
			}
		}
	}
}

func TestInterpolateMidpoint(t *testing.T) {
	got := Interpolate(standing(), armsUp(), 0.5)
	want := gg.Pt(38, 32) // halfway between (40,60) and (36,4)
	if d := got[LHand].Distance(want); d > 1e-9 {
		t.Errorf("LHand at t=0.5 = %v, want %v", got[LHand], want)
	}
}

func TestInterpolateUnclamped(t *testing.T) {
	from, to := standing(), armsUp()
	got := Interpolate(from, to, 2)
	want := to[LHand].Add(to[LHand].Sub(from[LHand]))
	if d := got[LHand].Distance(want); d > 1e-9 {
		t.Errorf("LHand at t=2 = %v, want %v", got[LHand], want)
	}
}

func TestBetween(t *testing.T) {
	arrow := &Arrow{Points: []gg.Point{gg.Pt(30, 50), gg.Pt(30, 20)}}
	start := Frame{Pose: standing(), Props: Props{Surface: &Surface{Y: 108, X1: 10, X2: 90}}}
	end := Frame{
		Pose:      armsUp(),
		Highlight: PartsOf(PartLArm, PartRArm),
		Props:     Props{Arrow: arrow},
	}

	f := Between(start, end, 0.5, false)
	if f.Highlight != end.Highlight {
		t.Errorf("highlight = %v, want fallback to end frame %v", f.Highlight, end.Highlight)
	}
	if f.Props.Surface == nil {
		t.Error("surface from start frame missing")
	}
	if f.Props.Arrow != nil {
		t.Error("arrow shown while showArrow is false")
	}

	f = Between(start, end, 0.9, true)
	if f.Props.Arrow != arrow {
		t.Error("arrow missing while showArrow is true")
	}

	start.Highlight = PartsOf(PartBack)
	if f := Between(start, end, 0.2, false); f.Highlight != start.Highlight {
		t.Errorf("highlight = %v, want start frame %v", f.Highlight, start.Highlight)
	}
}
