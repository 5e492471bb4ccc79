package anim

import "time"

// FrameHost delivers frame callbacks, the way a display's next-paint
// callback does. RequestFrame arranges for fn to run once, later, and
// returns a function that cancels it if it has not run yet.
//
// fn must not be invoked synchronously from within RequestFrame.
type FrameHost interface {
	RequestFrame(fn func()) (cancel func())
}

// TickerHost is a FrameHost that fires each requested frame after a fixed
// interval on its own goroutine.
type TickerHost struct {
	interval time.Duration
}

// NewTickerHost creates a host firing frames interval apart. A
// non-positive interval uses 16ms.
func NewTickerHost(interval time.Duration) *TickerHost {
	if interval <= 0 {
		interval = 16 * time.Millisecond
	}
	return &TickerHost{interval: interval}
}

// Interval returns the delay between a request and its frame.
func (h *TickerHost) Interval() time.Duration {
	return h.interval
}

// RequestFrame schedules fn after the host interval.
func (h *TickerHost) RequestFrame(fn func()) func() {
	t := time.AfterFunc(h.interval, fn)
	return func() { t.Stop() }
}
