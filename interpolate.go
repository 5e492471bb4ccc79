package figure

// Interpolate returns the pose a fraction t of the way from from to to.
// Every coordinate is interpolated linearly. t is not clamped; callers that
// need a pose between the keyframes keep t within [0, 1]. The keyframes are
// returned unchanged at t == 0 and t == 1.
func Interpolate(from, to Pose, t float64) Pose {
	switch t {
	case 0:
		return from
	case 1:
		return to
	}
	var out Pose
	for j := range out {
		out[j] = from[j].Lerp(to[j], t)
	}
	return out
}

// Between builds the in-between frame shown at progress t of an exercise
// that moves from start to end. The highlight set is the start frame's,
// falling back to the end frame's when the start frame has none. Props are
// merged with MergeProps; the end frame's arrow is included only when
// showArrow is set.
func Between(start, end Frame, t float64, showArrow bool) Frame {
	hl := start.Highlight
	if hl.Empty() {
		hl = end.Highlight
	}
	return Frame{
		Pose:      Interpolate(start.Pose, end.Pose, t),
		Highlight: hl,
		Props:     MergeProps(start.Props, end.Props, showArrow),
	}
}
