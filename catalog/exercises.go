package catalog

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/figure"
)

// shorthand for joint names and highlight sets in the table below
const (
	head     = figure.Head
	neck     = figure.Neck
	shoulder = figure.Shoulder
	hip      = figure.Hip
	lElbow   = figure.LElbow
	lHand    = figure.LHand
	rElbow   = figure.RElbow
	rHand    = figure.RHand
	lKnee    = figure.LKnee
	lFoot    = figure.LFoot
	rKnee    = figure.RKnee
	rFoot    = figure.RFoot
)

var (
	lArm  = figure.PartsOf(figure.PartLArm)
	arms  = figure.PartsOf(figure.PartLArm, figure.PartRArm)
	lLeg  = figure.PartsOf(figure.PartLLeg)
	legs  = figure.PartsOf(figure.PartLLeg, figure.PartRLeg)
	back  = figure.PartsOf(figure.PartBack)
	neckP = figure.PartsOf(figure.PartNeck)
)

func seed() []Exercise {
	return []Exercise{
		// knee
		{
			ID: "straight_leg_raise", Name: "Straight Leg Raise", BodyPart: Knee,
			Sets: 3, Reps: 10, HoldSeconds: 5,
			Start: frame(supine().
				With(rKnee, gg.Pt(68, 82)).
				With(rFoot, gg.Pt(80, 96)),
				lLeg, figure.Props{Mat: mat()}),
			End: frame(supine().
				With(rKnee, gg.Pt(68, 82)).
				With(rFoot, gg.Pt(80, 96)).
				With(lKnee, gg.Pt(68, 85)).
				With(lFoot, gg.Pt(81, 74)),
				lLeg, figure.Props{Mat: mat(), Arrow: arrow(92, 90, 90, 80, 86, 71)}),
		},
		{
			ID: "heel_slide", Name: "Heel Slide", BodyPart: Knee,
			Sets: 2, Reps: 15,
			Start: frame(supine(), lLeg, figure.Props{Mat: mat()}),
			End: frame(supine().
				With(lKnee, gg.Pt(64, 81)).
				With(lFoot, gg.Pt(74, 94)),
				lLeg, figure.Props{Mat: mat(), Arrow: arrow(90, 90, 78, 90)}),
		},
		{
			ID: "mini_squat", Name: "Mini Squat", BodyPart: Knee,
			Sets: 3, Reps: 12,
			Start: frame(standingSide(), legs, figure.Props{Surface: floor()}),
			End: frame(standingSide().
				With(head, gg.Pt(54, 26)).
				With(neck, gg.Pt(53, 35)).
				With(shoulder, gg.Pt(52, 40)).
				With(hip, gg.Pt(42, 70)).
				With(lElbow, gg.Pt(62, 44)).
				With(lHand, gg.Pt(76, 44)).
				With(rElbow, gg.Pt(60, 45)).
				With(rHand, gg.Pt(74, 45)).
				With(lKnee, gg.Pt(58, 86)).
				With(rKnee, gg.Pt(56, 87)),
				legs, figure.Props{Surface: floor(), Arrow: arrow(24, 40, 24, 64)}),
		},
		{
			ID: "seated_knee_extension", Name: "Seated Knee Extension", BodyPart: Knee,
			Sets: 3, Reps: 10, HoldSeconds: 3,
			Start: frame(seated(), lLeg, figure.Props{Chair: chair(), Surface: floor()}),
			End: frame(seated().
				With(lFoot, gg.Pt(92, 72)),
				lLeg, figure.Props{Chair: chair(), Surface: floor(), Arrow: arrow(70, 100, 84, 92, 92, 80)}),
		},

		// shoulder
		{
			ID: "pendulum", Name: "Pendulum Swing", BodyPart: Shoulder,
			Sets: 2, Reps: 10,
			Start: frame(leaning(), lArm, figure.Props{Surface: floor(), Chair: table()}),
			End: frame(leaning().
				With(lElbow, gg.Pt(58, 56)).
				With(lHand, gg.Pt(53, 71)),
				lArm, figure.Props{Surface: floor(), Chair: table(), Arrow: arrow(68, 80, 60, 82, 52, 80)}),
		},
		{
			ID: "wall_slide", Name: "Wall Slide", BodyPart: Shoulder,
			Sets: 2, Reps: 10, HoldSeconds: 2,
			Start: frame(standingSide().
				With(lElbow, gg.Pt(58, 38)).
				With(lHand, gg.Pt(66, 30)).
				With(rElbow, gg.Pt(57, 39)).
				With(rHand, gg.Pt(65, 31)),
				arms, figure.Props{Surface: floor(), Wall: wall()}),
			End: frame(standingSide().
				With(lElbow, gg.Pt(60, 22)).
				With(lHand, gg.Pt(66, 8)).
				With(rElbow, gg.Pt(59, 23)).
				With(rHand, gg.Pt(65, 9)),
				arms, figure.Props{Surface: floor(), Wall: wall(), Arrow: arrow(76, 34, 76, 12)}),
		},
		{
			ID: "shoulder_abduction", Name: "Shoulder Abduction", BodyPart: Shoulder,
			Sets: 3, Reps: 10,
			Start: frame(standingFront(), arms, figure.Props{Surface: floor()}),
			End: frame(standingFront().
				With(lElbow, gg.Pt(34, 30)).
				With(lHand, gg.Pt(20, 28)).
				With(rElbow, gg.Pt(66, 30)).
				With(rHand, gg.Pt(80, 28)),
				arms, figure.Props{Surface: floor(), Arrow: arrow(22, 58, 14, 44, 16, 34)}),
		},
		{
			ID: "external_rotation", Name: "Shoulder External Rotation", BodyPart: Shoulder,
			Sets: 3, Reps: 12,
			Start: frame(standingFront().
				With(lElbow, gg.Pt(41, 48)).
				With(lHand, gg.Pt(48, 52)),
				lArm, figure.Props{Surface: floor()}),
			End: frame(standingFront().
				With(lElbow, gg.Pt(41, 48)).
				With(lHand, gg.Pt(27, 50)),
				lArm, figure.Props{Surface: floor(), Arrow: arrow(44, 58, 36, 60, 28, 57)}),
		},

		// back
		{
			ID: "bridge", Name: "Bridge", BodyPart: Back,
			Sets: 3, Reps: 10, HoldSeconds: 5,
			Start: frame(hookLying(), back, figure.Props{Mat: mat()}),
			End: frame(hookLying().
				With(hip, gg.Pt(56, 84)).
				With(lKnee, gg.Pt(70, 78)).
				With(rKnee, gg.Pt(69, 79)),
				back, figure.Props{Mat: mat(), Arrow: arrow(58, 76, 58, 64)}),
		},
		{
			ID: "knee_to_chest", Name: "Knee to Chest", BodyPart: Back,
			Sets: 2, Reps: 8, HoldSeconds: 20,
			Start: frame(hookLying(), figure.PartsOf(figure.PartBack, figure.PartLLeg), figure.Props{Mat: mat()}),
			End: frame(hookLying().
				With(lKnee, gg.Pt(52, 74)).
				With(lFoot, gg.Pt(66, 80)).
				With(lElbow, gg.Pt(40, 84)).
				With(lHand, gg.Pt(52, 76)),
				figure.PartsOf(figure.PartBack, figure.PartLLeg), figure.Props{Mat: mat(), Arrow: arrow(74, 70, 64, 64, 54, 64)}),
		},
		{
			ID: "pelvic_tilt", Name: "Pelvic Tilt", BodyPart: Back,
			Sets: 2, Reps: 12, HoldSeconds: 5,
			Start: frame(hookLying(), back, figure.Props{Mat: mat()}),
			End: frame(hookLying().
				With(hip, gg.Pt(56, 92)),
				back, figure.Props{Mat: mat(), Arrow: arrow(44, 82, 52, 78)}),
		},
		{
			ID: "standing_back_extension", Name: "Standing Back Extension", BodyPart: Back,
			Sets: 2, Reps: 10,
			Start: frame(handsOnBack(), back, figure.Props{Surface: floor()}),
			End: frame(handsOnBack().
				With(head, gg.Pt(38, 18)).
				With(neck, gg.Pt(41, 26)).
				With(shoulder, gg.Pt(44, 31)).
				With(lElbow, gg.Pt(38, 50)).
				With(rElbow, gg.Pt(37, 51)),
				back, figure.Props{Surface: floor(), Arrow: arrow(56, 12, 44, 6, 34, 8)}),
		},

		// neck
		{
			ID: "chin_tuck", Name: "Chin Tuck", BodyPart: Neck,
			Sets: 2, Reps: 10, HoldSeconds: 5,
			Start: frame(standingSide(), neckP, figure.Props{Surface: floor()}),
			End: frame(standingSide().
				With(head, gg.Pt(46, 16)).
				With(neck, gg.Pt(48, 25)),
				neckP, figure.Props{Surface: floor(), Arrow: arrow(66, 16, 58, 16)}),
		},
		{
			ID: "neck_side_bend", Name: "Neck Side Bend", BodyPart: Neck,
			Sets: 2, Reps: 5, HoldSeconds: 15,
			Start: frame(standingFront(), neckP, figure.Props{Surface: floor()}),
			End: frame(standingFront().
				With(head, gg.Pt(42, 18)).
				With(neck, gg.Pt(48, 25)),
				neckP, figure.Props{Surface: floor(), Arrow: arrow(58, 5, 46, 5)}),
		},
		{
			ID: "neck_flexion", Name: "Neck Flexion", BodyPart: Neck,
			Sets: 2, Reps: 10,
			Start: frame(standingSide(), neckP, figure.Props{Surface: floor()}),
			End: frame(standingSide().
				With(head, gg.Pt(57, 22)).
				With(neck, gg.Pt(51, 26)),
				neckP, figure.Props{Surface: floor(), Arrow: arrow(60, 6, 68, 10, 70, 18)}),
		},

		// ankle
		{
			ID: "ankle_pumps", Name: "Ankle Pumps", BodyPart: Ankle,
			Sets: 3, Reps: 20,
			Start: frame(supine(), legs, figure.Props{Mat: mat()}),
			End: frame(supine().
				With(lFoot, gg.Pt(88, 92)).
				With(rFoot, gg.Pt(88, 93)),
				legs, figure.Props{Mat: mat(), Arrow: arrow(96, 92, 96, 82)}),
		},
		{
			ID: "calf_raise", Name: "Calf Raise", BodyPart: Ankle,
			Sets: 3, Reps: 15, HoldSeconds: 2,
			Start: frame(standingSide(), legs, figure.Props{Surface: floor(), Wall: wall()}),
			End: frame(standingSide().Shift(0, -5),
				legs, figure.Props{Surface: floor(), Wall: wall(), Arrow: arrow(36, 100, 36, 88)}),
		},

		// hip
		{
			ID: "side_lying_abduction", Name: "Side-Lying Hip Abduction", BodyPart: Hip,
			Sets: 3, Reps: 10,
			Start: frame(sideLying(), lLeg, figure.Props{Mat: mat()}),
			End: frame(sideLying().
				With(lKnee, gg.Pt(71, 84)).
				With(lFoot, gg.Pt(86, 74)),
				lLeg, figure.Props{Mat: mat(), Arrow: arrow(94, 88, 94, 72)}),
		},
		{
			ID: "clamshell", Name: "Clamshell", BodyPart: Hip,
			Sets: 3, Reps: 12,
			Start: frame(clamshellPose(), lLeg, figure.Props{Mat: mat()}),
			End: frame(clamshellPose().
				With(lKnee, gg.Pt(66, 84)),
				lLeg, figure.Props{Mat: mat(), Arrow: arrow(74, 96, 76, 88, 72, 80)}),
		},
		{
			ID: "standing_hip_extension", Name: "Standing Hip Extension", BodyPart: Hip,
			Sets: 3, Reps: 10,
			Start: frame(supported(), lLeg, figure.Props{Surface: floor(), Chair: chairAhead()}),
			End: frame(supported().
				With(lKnee, gg.Pt(42, 84)).
				With(lFoot, gg.Pt(34, 104)),
				lLeg, figure.Props{Surface: floor(), Chair: chairAhead(), Arrow: arrow(40, 100, 24, 98)}),
		},

		// wrist / hand
		{
			ID: "wrist_flexion", Name: "Wrist Flexion", BodyPart: WristHand,
			Sets: 2, Reps: 15,
			Start: frame(forearmRest(), lArm, figure.Props{Chair: chair(), Surface: floor()}),
			End: frame(forearmRest().
				With(lHand, gg.Pt(62, 75)),
				lArm, figure.Props{Chair: chair(), Surface: floor(), Arrow: arrow(72, 62, 74, 70, 70, 78)}),
		},
		{
			ID: "wrist_extension", Name: "Wrist Extension", BodyPart: WristHand,
			Sets: 2, Reps: 15,
			Start: frame(forearmRest(), lArm, figure.Props{Chair: chair(), Surface: floor()}),
			End: frame(forearmRest().
				With(lHand, gg.Pt(63, 57)),
				lArm, figure.Props{Chair: chair(), Surface: floor(), Arrow: arrow(70, 68, 72, 60, 68, 52)}),
		},

		// elbow
		{
			ID: "bicep_curl", Name: "Bicep Curl", BodyPart: Elbow,
			Sets: 3, Reps: 12,
			Start: frame(standingFront(), lArm, figure.Props{Surface: floor()}),
			End: frame(standingFront().
				With(lHand, gg.Pt(42, 32)),
				lArm, figure.Props{Surface: floor(), Arrow: arrow(32, 58, 30, 46, 34, 36)}),
		},
		{
			ID: "overhead_triceps_extension", Name: "Overhead Triceps Extension", BodyPart: Elbow,
			Sets: 3, Reps: 10,
			Start: frame(standingSide().
				With(lElbow, gg.Pt(54, 10)).
				With(lHand, gg.Pt(44, 22)),
				lArm, figure.Props{Surface: floor()}),
			End: frame(standingSide().
				With(lElbow, gg.Pt(54, 10)).
				With(lHand, gg.Pt(58, -5)),
				lArm, figure.Props{Surface: floor(), Arrow: arrow(40, 12, 44, 0, 52, -6)}),
		},
	}
}

// leaning bends forward with the right hand on a table and the left arm
// hanging.
func leaning() figure.Pose {
	return figure.Pose{
		figure.Head:     gg.Pt(73, 30),
		figure.Neck:     gg.Pt(67, 36),
		figure.Shoulder: gg.Pt(62, 40),
		figure.Hip:      gg.Pt(44, 62),
		figure.LElbow:   gg.Pt(62, 56),
		figure.LHand:    gg.Pt(62, 72),
		figure.RElbow:   gg.Pt(72, 50),
		figure.RHand:    gg.Pt(82, 59),
		figure.LKnee:    gg.Pt(46, 85),
		figure.LFoot:    gg.Pt(44, 106),
		figure.RKnee:    gg.Pt(52, 85),
		figure.RFoot:    gg.Pt(54, 106),
	}
}

// handsOnBack stands side-on with both hands on the lower back.
func handsOnBack() figure.Pose {
	return standingSide().
		With(lElbow, gg.Pt(40, 50)).
		With(lHand, gg.Pt(44, 60)).
		With(rElbow, gg.Pt(39, 51)).
		With(rHand, gg.Pt(43, 61))
}

// clamshellPose is side-lying with both knees bent forward.
func clamshellPose() figure.Pose {
	return sideLying().
		With(lKnee, gg.Pt(68, 100)).
		With(lFoot, gg.Pt(82, 96)).
		With(rKnee, gg.Pt(68, 102)).
		With(rFoot, gg.Pt(82, 98))
}

// supported stands side-on holding a chair back in front.
func supported() figure.Pose {
	return standingSide().
		With(lElbow, gg.Pt(60, 44)).
		With(lHand, gg.Pt(70, 50)).
		With(rElbow, gg.Pt(59, 45)).
		With(rHand, gg.Pt(69, 51))
}

// forearmRest sits with the left forearm on the thigh, hand past the knee.
func forearmRest() figure.Pose {
	return seated().
		With(lElbow, gg.Pt(48, 64)).
		With(lHand, gg.Pt(66, 66))
}

func wall() *figure.Wall {
	return &figure.Wall{X: 69, Y1: 0, Y2: floorY}
}

func table() *figure.Chair {
	return &figure.Chair{Points: points(76, 61, 96, 61, 96, floorY)}
}

func chairAhead() *figure.Chair {
	return &figure.Chair{Points: points(72, 48, 72, 80, 92, 80, 92, floorY)}
}
