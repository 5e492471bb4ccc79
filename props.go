package figure

import "github.com/gogpu/gg"

// Mat is an exercise mat drawn as a rounded rectangle.
type Mat struct {
	X, Y, W, H float64
}

// Surface is a floor line at height Y spanning X1..X2.
type Surface struct {
	Y, X1, X2 float64
}

// Wall is a vertical bar at X spanning Y1..Y2.
type Wall struct {
	X, Y1, Y2 float64
}

// Chair is an open polyline outlining a chair in profile.
type Chair struct {
	Points []gg.Point
}

// Arrow is a motion-direction polyline with an arrowhead at its last point.
type Arrow struct {
	Points []gg.Point
}

// Props is the optional scene furniture composited with a figure.
// Nil fields are absent.
type Props struct {
	Mat     *Mat
	Surface *Surface
	Wall    *Wall
	Chair   *Chair
	Arrow   *Arrow
}

// MergeProps combines the furniture of two keyframes. Each furniture slot
// comes from from, replaced by to's when both frames specify it. The arrow
// is end-frame only and is included when showArrow is set.
func MergeProps(from, to Props, showArrow bool) Props {
	out := Props{
		Mat:     from.Mat,
		Surface: from.Surface,
		Wall:    from.Wall,
		Chair:   from.Chair,
	}
	if from.Mat != nil && to.Mat != nil {
		out.Mat = to.Mat
	}
	if from.Surface != nil && to.Surface != nil {
		out.Surface = to.Surface
	}
	if from.Wall != nil && to.Wall != nil {
		out.Wall = to.Wall
	}
	if from.Chair != nil && to.Chair != nil {
		out.Chair = to.Chair
	}
	if showArrow {
		out.Arrow = to.Arrow
	}
	return out
}
