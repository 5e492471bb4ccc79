package anim

import (
	"math"
	"time"
)

// Default timing.
const (
	// CycleLength is one full forward and return motion.
	CycleLength = 2200 * time.Millisecond

	// MinRedrawInterval caps redraws at about 30 Hz.
	MinRedrawInterval = 33 * time.Millisecond
)

// Wave maps elapsed time onto a triangle wave of period cycle: 0 at the
// start of each cycle, 1 at its midpoint and back to 0 at its end.
// A non-positive cycle yields 0.
func Wave(elapsed, cycle time.Duration) float64 {
	if cycle <= 0 {
		return 0
	}
	e := elapsed % cycle
	if e < 0 {
		e += cycle
	}
	u := float64(e) / (float64(cycle) / 2)
	if u > 1 {
		u = 2 - u
	}
	return u
}

// Ease is the cosine ease-in-out (1 - cos(u*pi)) / 2. It is monotonic on
// [0, 1] with Ease(0) = 0, Ease(0.5) = 0.5 and Ease(1) = 1.
func Ease(u float64) float64 {
	return (1 - math.Cos(u*math.Pi)) / 2
}

// Progress is the eased animation progress at elapsed into the loop.
func Progress(elapsed, cycle time.Duration) float64 {
	return Ease(Wave(elapsed, cycle))
}
