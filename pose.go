package figure

import "github.com/gogpu/gg"

// Workspace dimensions. Every Pose and Prop is authored in this fixed
// coordinate space; backends scale it to the requested pixel size.
const (
	WorkspaceWidth  = 100.0
	WorkspaceHeight = 120.0
)

// Joint names one of the points of a Pose.
type Joint uint8

// Joints of the figure. Shoulder is the point where the arms attach and the
// torso begins; Neck is the base of the head.
const (
	Head Joint = iota
	Neck
	Shoulder
	Hip
	LElbow
	LHand
	RElbow
	RHand
	LKnee
	LFoot
	RKnee
	RFoot

	// NumJoints is the number of joints in a Pose.
	NumJoints
)

var jointNames = [...]string{
	Head:     "head",
	Neck:     "neck",
	Shoulder: "shoulder",
	Hip:      "hip",
	LElbow:   "lElbow",
	LHand:    "lHand",
	RElbow:   "rElbow",
	RHand:    "rHand",
	LKnee:    "lKnee",
	LFoot:    "lFoot",
	RKnee:    "rKnee",
	RFoot:    "rFoot",
}

// String returns the joint's camel-case name.
func (j Joint) String() string {
	if int(j) < len(jointNames) {
		return jointNames[j]
	}
	return "unknown"
}

// Pose is the full set of joint coordinates describing the figure at one
// instant. Coordinates are in workspace units and are not clamped.
type Pose [NumJoints]gg.Point

// At returns the position of joint j.
func (p Pose) At(j Joint) gg.Point {
	return p[j]
}

// With returns a copy of p with joint j moved to pt.
func (p Pose) With(j Joint, pt gg.Point) Pose {
	p[j] = pt
	return p
}

// Shift returns a copy of p with every joint translated by (dx, dy).
func (p Pose) Shift(dx, dy float64) Pose {
	for i := range p {
		p[i] = p[i].Add(gg.Pt(dx, dy))
	}
	return p
}

// Frame is one authored keyframe: a Pose plus what to emphasise and what
// furniture surrounds the figure.
type Frame struct {
	Pose      Pose
	Highlight Parts
	Props     Props
}
