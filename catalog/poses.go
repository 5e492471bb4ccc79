package catalog

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/figure"
)

// Base poses in workspace units. Exercises start from one of these and move
// a few joints.

// Floor line under standing and seated figures.
const floorY = 108

func standingFront() figure.Pose {
	return figure.Pose{
		figure.Head:     gg.Pt(50, 16),
		figure.Neck:     gg.Pt(50, 25),
		figure.Shoulder: gg.Pt(50, 30),
		figure.Hip:      gg.Pt(50, 62),
		figure.LElbow:   gg.Pt(41, 46),
		figure.LHand:    gg.Pt(39, 61),
		figure.RElbow:   gg.Pt(59, 46),
		figure.RHand:    gg.Pt(61, 61),
		figure.LKnee:    gg.Pt(46, 85),
		figure.LFoot:    gg.Pt(46, 106),
		figure.RKnee:    gg.Pt(54, 85),
		figure.RFoot:    gg.Pt(54, 106),
	}
}

// standingSide faces right.
func standingSide() figure.Pose {
	return figure.Pose{
		figure.Head:     gg.Pt(50, 16),
		figure.Neck:     gg.Pt(49, 25),
		figure.Shoulder: gg.Pt(49, 30),
		figure.Hip:      gg.Pt(49, 62),
		figure.LElbow:   gg.Pt(51, 46),
		figure.LHand:    gg.Pt(53, 61),
		figure.RElbow:   gg.Pt(48, 46),
		figure.RHand:    gg.Pt(50, 61),
		figure.LKnee:    gg.Pt(50, 85),
		figure.LFoot:    gg.Pt(49, 106),
		figure.RKnee:    gg.Pt(48, 85),
		figure.RFoot:    gg.Pt(48, 106),
	}
}

// supine lies on the back, head to the left, legs straight.
func supine() figure.Pose {
	return figure.Pose{
		figure.Head:     gg.Pt(14, 92),
		figure.Neck:     gg.Pt(22, 94),
		figure.Shoulder: gg.Pt(28, 95),
		figure.Hip:      gg.Pt(56, 95),
		figure.LElbow:   gg.Pt(38, 99),
		figure.LHand:    gg.Pt(50, 100),
		figure.RElbow:   gg.Pt(38, 97),
		figure.RHand:    gg.Pt(50, 98),
		figure.LKnee:    gg.Pt(72, 95),
		figure.LFoot:    gg.Pt(88, 95),
		figure.RKnee:    gg.Pt(72, 96),
		figure.RFoot:    gg.Pt(88, 96),
	}
}

// hookLying is supine with both knees bent and feet flat.
func hookLying() figure.Pose {
	return supine().
		With(figure.LKnee, gg.Pt(68, 82)).
		With(figure.LFoot, gg.Pt(80, 95)).
		With(figure.RKnee, gg.Pt(67, 83)).
		With(figure.RFoot, gg.Pt(79, 96))
}

// seated sits upright on a chair, facing right.
func seated() figure.Pose {
	return figure.Pose{
		figure.Head:     gg.Pt(40, 30),
		figure.Neck:     gg.Pt(40, 38),
		figure.Shoulder: gg.Pt(40, 43),
		figure.Hip:      gg.Pt(40, 74),
		figure.LElbow:   gg.Pt(42, 58),
		figure.LHand:    gg.Pt(52, 68),
		figure.RElbow:   gg.Pt(40, 58),
		figure.RHand:    gg.Pt(50, 69),
		figure.LKnee:    gg.Pt(62, 74),
		figure.LFoot:    gg.Pt(62, 106),
		figure.RKnee:    gg.Pt(60, 75),
		figure.RFoot:    gg.Pt(60, 106),
	}
}

// sideLying lies on the right side, head to the left; the left leg is on
// top.
func sideLying() figure.Pose {
	return figure.Pose{
		figure.Head:     gg.Pt(14, 88),
		figure.Neck:     gg.Pt(21, 91),
		figure.Shoulder: gg.Pt(27, 93),
		figure.Hip:      gg.Pt(56, 93),
		figure.LElbow:   gg.Pt(40, 90),
		figure.LHand:    gg.Pt(52, 89),
		figure.RElbow:   gg.Pt(24, 100),
		figure.RHand:    gg.Pt(14, 98),
		figure.LKnee:    gg.Pt(72, 93),
		figure.LFoot:    gg.Pt(88, 93),
		figure.RKnee:    gg.Pt(72, 95),
		figure.RFoot:    gg.Pt(88, 95),
	}
}

func floor() *figure.Surface {
	return &figure.Surface{Y: floorY, X1: 4, X2: 96}
}

func mat() *figure.Mat {
	return &figure.Mat{X: 4, Y: 101, W: 92, H: 4}
}

func chair() *figure.Chair {
	return &figure.Chair{Points: points(30, 40, 30, 80, 60, 80, 60, floorY)}
}

func arrow(xy ...float64) *figure.Arrow {
	return &figure.Arrow{Points: points(xy...)}
}

// points pairs up a flat x, y list.
func points(xy ...float64) []gg.Point {
	pts := make([]gg.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		pts = append(pts, gg.Pt(xy[i], xy[i+1]))
	}
	return pts
}

func frame(p figure.Pose, hl figure.Parts, props figure.Props) figure.Frame {
	return figure.Frame{Pose: p, Highlight: hl, Props: props}
}
