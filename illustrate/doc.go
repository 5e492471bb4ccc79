// Package illustrate renders catalog exercises and keeps mounted figures
// animated.
//
// A [Context] replaces process-wide state: it carries the gender used for
// rendering, a monotonic instance counter, the exercise source, the
// [Registry] of mounted targets and the animation scheduler. A view layer
// renders a static [Illustration], wraps it in a [Target] and mounts it;
// while animations run every mounted target has its content replaced each
// frame with the same progress, so all figures move in lockstep.
//
//	ctx := illustrate.New(illustrate.WithGender(figure.Female))
//	ill, ok := ctx.Render("straight_leg_raise", 240)
//	if !ok {
//		return
//	}
//	tg, err := illustrate.NewSVGTarget(ill)
//	if err != nil {
//		return err
//	}
//	ctx.Mount(tg)
//	ctx.StartAnimations()
//
// Per-render options such as [ForGender] and [WithCaption] are kept in the
// illustration's [Style]; targets implementing [StyledTarget] are redrawn
// with them.
package illustrate
