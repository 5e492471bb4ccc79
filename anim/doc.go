// Package anim drives the looping exercise animations.
//
// One [Scheduler] owns a shared clock. Every frame it maps the wall-clock
// time since [Scheduler.Start] onto a ping-pong [Wave], eases it with
// [Ease] and hands the resulting progress t to a draw callback, which
// redraws every visible figure with the same t so they stay in phase.
// Frames arrive through a [FrameHost]; [TickerHost] is a timer-driven host
// for programs without a display refresh callback.
package anim
