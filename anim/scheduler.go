package anim

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gogpu/figure"
)

// DrawFunc redraws everything animated by a Scheduler at progress t.
type DrawFunc func(t float64)

// Scheduler runs one animation loop on a FrameHost. Every frame it computes
// the eased progress from the time elapsed since Start and, unless the
// previous redraw is too recent, calls the draw function with it. It always
// requests the next frame, even when there is nothing to draw; only Stop
// ends the loop.
//
// Start and Stop may be called from any goroutine. A frame that is already
// drawing completes; frames requested by a cancelled loop are dropped.
type Scheduler struct {
	host FrameHost
	draw DrawFunc
	opts options

	mu         sync.Mutex
	gen        uint64
	running    bool
	cycleStart time.Time
	lastRedraw time.Time
	drawn      bool
	cancel     func()
	redraws    uint64
}

// NewScheduler creates a stopped scheduler.
func NewScheduler(host FrameHost, draw DrawFunc, opts ...Option) *Scheduler {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Scheduler{host: host, draw: draw, opts: o}
}

func (s *Scheduler) log() *slog.Logger {
	if s.opts.logger != nil {
		return s.opts.logger
	}
	return figure.Logger()
}

// Start begins a new loop at progress 0. A loop that is already running is
// cancelled first.
func (s *Scheduler) Start() {
	s.mu.Lock()
	restarted := s.stopLocked()
	s.running = true
	s.cycleStart = s.opts.clock.Now()
	s.drawn = false
	s.requestLocked()
	s.mu.Unlock()

	s.log().Info("anim: loop started", slog.Bool("restarted", restarted), slog.Duration("cycle", s.opts.cycle))
}

// Stop halts the loop. Stopping a stopped scheduler does nothing.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	stopped := s.stopLocked()
	s.mu.Unlock()

	if stopped {
		s.log().Info("anim: loop stopped")
	}
}

// Running reports whether a loop is active.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Redraws returns how many times the draw function has been called.
func (s *Scheduler) Redraws() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.redraws
}

// Progress returns the progress the next redraw would use.
func (s *Scheduler) Progress() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return 0
	}
	return Progress(s.opts.clock.Now().Sub(s.cycleStart), s.opts.cycle)
}

// stopLocked cancels the active loop and reports whether there was one.
func (s *Scheduler) stopLocked() bool {
	was := s.running
	s.gen++
	s.running = false
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	return was
}

func (s *Scheduler) requestLocked() {
	gen := s.gen
	s.cancel = s.host.RequestFrame(func() { s.frame(gen) })
}

func (s *Scheduler) frame(gen uint64) {
	s.mu.Lock()
	if gen != s.gen || !s.running {
		s.mu.Unlock()
		return
	}
	now := s.opts.clock.Now()
	redraw := !s.drawn || now.Sub(s.lastRedraw) >= s.opts.minInterval
	var t float64
	if redraw {
		s.lastRedraw = now
		s.drawn = true
		s.redraws++
		t = Progress(now.Sub(s.cycleStart), s.opts.cycle)
	}
	s.mu.Unlock()

	if redraw && s.draw != nil {
		s.draw(t)
	}

	s.mu.Lock()
	if gen == s.gen && s.running {
		s.requestLocked()
	}
	s.mu.Unlock()
}
