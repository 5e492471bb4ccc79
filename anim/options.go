package anim

import (
	"log/slog"
	"time"
)

// Option configures a Scheduler.
type Option func(*options)

type options struct {
	cycle       time.Duration
	minInterval time.Duration
	clock       Clock
	logger      *slog.Logger
}

func defaultOptions() options {
	return options{
		cycle:       CycleLength,
		minInterval: MinRedrawInterval,
		clock:       SystemClock{},
	}
}

// WithCycle sets the length of one forward and return motion. Non-positive
// values are ignored.
func WithCycle(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.cycle = d
		}
	}
}

// WithMinInterval sets the minimum time between two redraws. Zero redraws
// on every frame.
func WithMinInterval(d time.Duration) Option {
	return func(o *options) {
		if d >= 0 {
			o.minInterval = d
		}
	}
}

// WithClock sets the time source.
func WithClock(c Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithLogger sets the logger used for loop lifecycle messages. By default
// the scheduler logs through figure.Logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
