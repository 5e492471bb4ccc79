package main

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const cueRate = beep.SampleRate(44100)

// cue is a short tone played when a figure reaches the top of its motion.
// A nil cue is silent.
type cue struct {
	freq     float64
	duration time.Duration
}

// newCue opens the audio device.
func newCue() (*cue, error) {
	if err := speaker.Init(cueRate, cueRate.N(100*time.Millisecond)); err != nil {
		return nil, err
	}
	return &cue{freq: 660, duration: 120 * time.Millisecond}, nil
}

// Play starts the tone without waiting for it to finish.
func (c *cue) Play() {
	if c == nil {
		return
	}
	s := beep.Take(cueRate.N(c.duration), sine(cueRate, c.freq))
	speaker.Play(&effects.Volume{Streamer: s, Base: 2, Volume: -2})
}

// sine is an endless sine wave.
func sine(sr beep.SampleRate, freq float64) beep.Streamer {
	step := 2 * math.Pi * freq / float64(sr)
	phase := 0.0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := math.Sin(phase)
			samples[i][0], samples[i][1] = v, v
			phase += step
		}
		return len(samples), true
	})
}
