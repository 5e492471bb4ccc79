package illustrate

import (
	"log/slog"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gogpu/figure"
	"github.com/gogpu/figure/anim"
	"github.com/gogpu/figure/catalog"
	"github.com/gogpu/figure/drawing"
)

// ArrowRevealThreshold is the progress above which the end frame's motion
// arrow is shown during animation.
const ArrowRevealThreshold = 0.75

// DefaultSize is the pixel width used when Render is given a non-positive
// size.
const DefaultSize = 200

// Context is the explicit state of an illustration session.
type Context struct {
	mu     sync.RWMutex
	gender figure.Gender

	source  Source
	counter atomic.Uint64
	targets *Registry
	sched   *anim.Scheduler
	logger  *slog.Logger
}

// New creates a Context.
func New(opts ...Option) *Context {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.host == nil {
		o.host = anim.NewTickerHost(16 * time.Millisecond)
	}
	c := &Context{
		gender:  o.gender,
		source:  o.source,
		targets: NewRegistry(),
		logger:  o.logger,
	}
	animOpts := o.animation
	if o.logger != nil {
		animOpts = append([]anim.Option{anim.WithLogger(o.logger)}, animOpts...)
	}
	c.sched = anim.NewScheduler(o.host, c.redraw, animOpts...)
	return c
}

func (c *Context) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return figure.Logger()
}

// SetGender sets the variant used by later renders and frames.
func (c *Context) SetGender(g figure.Gender) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gender = g
}

// Gender returns the current variant.
func (c *Context) Gender() figure.Gender {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.gender
}

// Targets returns the registry of mounted targets.
func (c *Context) Targets() *Registry {
	return c.targets
}

// Render draws the first frame of an exercise at the given pixel width.
// It reports false when the exercise is unknown.
func (c *Context) Render(exerciseID string, size int, opts ...RenderOption) (Illustration, bool) {
	return c.RenderAt(exerciseID, size, 0, opts...)
}

// RenderAt draws an exercise at animation progress t, exactly as the
// animation shows it at that progress.
func (c *Context) RenderAt(exerciseID string, size int, t float64, opts ...RenderOption) (Illustration, bool) {
	ex, ok := c.source.Get(exerciseID)
	if !ok {
		c.log().Debug("illustrate: unknown exercise", slog.String("exercise", exerciseID))
		return Illustration{}, false
	}
	var ro renderOptions
	for _, opt := range opts {
		opt(&ro)
	}
	if ro.instanceID == "" {
		ro.instanceID = c.nextID()
	}
	if size <= 0 {
		size = DefaultSize
	}
	return Illustration{
		InstanceID: ro.instanceID,
		ExerciseID: ex.ID,
		Size:       size,
		Style:      ro.style,
		Drawing:    compose(ex, ro.instanceID, ro.style.gender(c.Gender()), ro.style.Caption, t),
	}, true
}

func (c *Context) nextID() string {
	return "fig-" + strconv.FormatUint(c.counter.Add(1), 10)
}

func compose(ex catalog.Exercise, instanceID string, gender figure.Gender, caption bool, t float64) *drawing.Drawing {
	f := figure.Between(ex.Start, ex.End, t, t > ArrowRevealThreshold)
	d := figure.Compose(figure.Scene{
		Pose:      f.Pose,
		Highlight: f.Highlight,
		Props:     f.Props,
		Gender:    gender,
		IDPrefix:  instanceID,
	})
	if caption {
		d.Text("caption", ex.Name, figure.WorkspaceWidth/2, figure.WorkspaceHeight-2, 5.5,
			drawing.AnchorMiddle, drawing.NewSolidBrush(figure.JointColor))
	}
	return d
}

// Mount registers a target with the animation.
func (c *Context) Mount(t Target) {
	c.targets.Register(t)
}

// Unmount removes a target and reports whether it was mounted.
func (c *Context) Unmount(instanceID string) bool {
	return c.targets.Unregister(instanceID)
}

// StartAnimations starts, or restarts, the shared animation loop.
func (c *Context) StartAnimations() {
	c.sched.Start()
}

// StopAnimations halts the animation loop.
func (c *Context) StopAnimations() {
	c.sched.Stop()
}

// Running reports whether the animation loop is active.
func (c *Context) Running() bool {
	return c.sched.Running()
}

// redraw replaces the content of every mounted target with its frame at
// progress t.
func (c *Context) redraw(t float64) {
	gender := c.Gender()
	c.targets.Each(func(tg Target) {
		ex, ok := c.source.Get(tg.ExerciseID())
		if !ok {
			c.log().Debug("illustrate: skipping target",
				slog.String("instance", tg.InstanceID()),
				slog.String("exercise", tg.ExerciseID()))
			return
		}
		var st Style
		if styled, ok := tg.(StyledTarget); ok {
			st = styled.Style()
		}
		d := compose(ex, tg.InstanceID(), st.gender(gender), st.Caption, t)
		if err := tg.Replace(d); err != nil {
			c.log().Warn("illustrate: replace failed",
				slog.String("instance", tg.InstanceID()),
				slog.String("error", err.Error()))
		}
	})
}
