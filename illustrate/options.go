package illustrate

import (
	"log/slog"

	"github.com/gogpu/figure"
	"github.com/gogpu/figure/anim"
	"github.com/gogpu/figure/catalog"
)

// Source resolves exercise ids. *catalog.Catalog implements it.
type Source interface {
	Get(id string) (catalog.Exercise, bool)
}

// Option configures a Context.
type Option func(*contextOptions)

type contextOptions struct {
	gender    figure.Gender
	source    Source
	host      anim.FrameHost
	logger    *slog.Logger
	animation []anim.Option
}

func defaultOptions() contextOptions {
	return contextOptions{
		gender: figure.Neutral,
		source: catalog.Default(),
	}
}

// WithGender sets the initial gender variant.
func WithGender(g figure.Gender) Option {
	return func(o *contextOptions) {
		o.gender = g
	}
}

// WithCatalog sets the exercise source. The default is the compiled-in
// catalog.
func WithCatalog(src Source) Option {
	return func(o *contextOptions) {
		if src != nil {
			o.source = src
		}
	}
}

// WithHost sets the frame host driving animations. The default fires a
// frame every 16ms from a timer.
func WithHost(h anim.FrameHost) Option {
	return func(o *contextOptions) {
		o.host = h
	}
}

// WithClock sets the animation time source.
func WithClock(c anim.Clock) Option {
	return func(o *contextOptions) {
		o.animation = append(o.animation, anim.WithClock(c))
	}
}

// WithAnimation passes options through to the scheduler.
func WithAnimation(opts ...anim.Option) Option {
	return func(o *contextOptions) {
		o.animation = append(o.animation, opts...)
	}
}

// WithLogger sets the logger. The default is figure.Logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *contextOptions) {
		o.logger = l
	}
}

// Style is the per-figure variant chosen at render time.
type Style struct {
	// Gender overrides the context variant when non-nil.
	Gender *figure.Gender
	// Caption prints the exercise name under the figure.
	Caption bool
}

func (st Style) gender(fallback figure.Gender) figure.Gender {
	if st.Gender != nil {
		return *st.Gender
	}
	return fallback
}

// RenderOption configures a single Render call.
type RenderOption func(*renderOptions)

type renderOptions struct {
	instanceID string
	style      Style
}

// WithInstanceID uses id instead of the next counter value.
func WithInstanceID(id string) RenderOption {
	return func(o *renderOptions) {
		o.instanceID = id
	}
}

// WithCaption adds the exercise name under the figure.
func WithCaption() RenderOption {
	return func(o *renderOptions) {
		o.style.Caption = true
	}
}

// ForGender renders with g instead of the context's current variant.
func ForGender(g figure.Gender) RenderOption {
	return func(o *renderOptions) {
		o.style.Gender = &g
	}
}
