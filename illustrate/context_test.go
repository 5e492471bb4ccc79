package illustrate

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/figure"
	"github.com/gogpu/figure/anim"
	"github.com/gogpu/figure/catalog"
	"github.com/gogpu/figure/drawing"
)

var epoch = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

// queueHost holds frame requests until Flush.
type queueHost struct {
	mu      sync.Mutex
	pending []*queuedFrame
}

type queuedFrame struct {
	fn        func()
	cancelled bool
}

func (h *queueHost) RequestFrame(fn func()) func() {
	h.mu.Lock()
	defer h.mu.Unlock()
	f := &queuedFrame{fn: fn}
	h.pending = append(h.pending, f)
	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		f.cancelled = true
	}
}

func (h *queueHost) Flush() {
	h.mu.Lock()
	frames := h.pending
	h.pending = nil
	h.mu.Unlock()
	for _, f := range frames {
		h.mu.Lock()
		cancelled := f.cancelled
		h.mu.Unlock()
		if !cancelled {
			f.fn()
		}
	}
}

func (h *queueHost) Live() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, f := range h.pending {
		if !f.cancelled {
			n++
		}
	}
	return n
}

// recordingTarget keeps every drawing it is given.
type recordingTarget struct {
	id, exercise string
	err          error

	mu       sync.Mutex
	drawings []*drawing.Drawing
}

func (r *recordingTarget) InstanceID() string { return r.id }
func (r *recordingTarget) ExerciseID() string { return r.exercise }

func (r *recordingTarget) Replace(d *drawing.Drawing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.drawings = append(r.drawings, d)
	return r.err
}

func (r *recordingTarget) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.drawings)
}

func (r *recordingTarget) last() *drawing.Drawing {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.drawings[len(r.drawings)-1]
}

func newTestContext(opts ...Option) (*Context, *queueHost, *anim.ManualClock) {
	host := &queueHost{}
	clock := anim.NewManualClock(epoch)
	opts = append([]Option{WithHost(host), WithClock(clock)}, opts...)
	return New(opts...), host, clock
}

func handPath(t *testing.T, d *drawing.Drawing) []gg.PathElement {
	t.Helper()
	cmds := d.Find("arm.l.hand")
	require.Len(t, cmds, 1)
	return cmds[0].(drawing.FillPathCommand).Path.Elements()
}

func TestRenderInstanceIDs(t *testing.T) {
	ctx, _, _ := newTestContext()

	a, ok := ctx.Render("straight_leg_raise", 240)
	require.True(t, ok)
	assert.Equal(t, "fig-1", a.InstanceID)
	assert.Equal(t, "straight_leg_raise", a.ExerciseID)
	assert.Equal(t, 240, a.Size)
	assert.Equal(t, 288, a.Height())

	_, ok = ctx.Render("does_not_exist", 240)
	assert.False(t, ok)

	b, ok := ctx.Render("bridge", 0)
	require.True(t, ok)
	assert.Equal(t, "fig-2", b.InstanceID, "unknown ids must not consume the counter")
	assert.Equal(t, DefaultSize, b.Size)

	c, ok := ctx.Render("bridge", 100, WithInstanceID("patient-7"))
	require.True(t, ok)
	assert.Equal(t, "patient-7", c.InstanceID)
	assert.Equal(t, "patient-7", c.Drawing.ID)
}

func TestRenderSVG(t *testing.T) {
	ctx, _, _ := newTestContext()
	ill, ok := ctx.Render("straight_leg_raise", 240)
	require.True(t, ok)

	doc := ill.SVG()
	assert.True(t, strings.HasPrefix(doc, "<svg "))
	assert.Contains(t, doc, `id="fig-1"`)
	assert.Contains(t, doc, `data-exercise="straight_leg_raise"`)
	assert.Contains(t, doc, `width="240"`)
	assert.Contains(t, doc, `height="288"`)
	assert.Contains(t, doc, `viewBox="0 0 100 120"`)
	assert.Contains(t, doc, `id="fig-1-body"`)
	assert.Contains(t, doc, `id="fig-1-accent"`)

	var buf bytes.Buffer
	require.NoError(t, ill.WriteSVG(&buf))
	assert.Equal(t, doc, buf.String())
}

func TestRenderPNG(t *testing.T) {
	ctx, _, _ := newTestContext()
	ill, ok := ctx.Render("bicep_curl", 50)
	require.True(t, ok)

	var buf bytes.Buffer
	require.NoError(t, ill.WritePNG(&buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")))
}

func TestRenderGender(t *testing.T) {
	ctx, _, _ := newTestContext(WithGender(figure.Male))
	assert.Equal(t, figure.Male, ctx.Gender())
	male, _ := ctx.Render("bridge", 200, WithInstanceID("x"))

	ctx.SetGender(figure.Female)
	female, _ := ctx.Render("bridge", 200, WithInstanceID("x"))

	assert.NotEqual(t, male.SVG(), female.SVG())
	assert.Contains(t, female.Drawing.Layers(), "hair.strand")
	assert.NotContains(t, male.Drawing.Layers(), "hair.strand")
}

func TestRenderCaption(t *testing.T) {
	ctx, _, _ := newTestContext()
	ill, ok := ctx.Render("knee_to_chest", 200, WithCaption())
	require.True(t, ok)
	assert.Equal(t, "caption", ill.Drawing.Layers()[ill.Drawing.Len()-1])
	assert.Contains(t, ill.SVG(), "Knee to Chest")
}

func TestRenderAtArrowThreshold(t *testing.T) {
	ctx, _, _ := newTestContext()
	tests := []struct {
		t         float64
		wantArrow bool
	}{
		{0, false},
		{0.5, false},
		{ArrowRevealThreshold, false},
		{0.8, true},
		{1, true},
	}
	for _, tt := range tests {
		ill, ok := ctx.RenderAt("straight_leg_raise", 200, tt.t)
		require.True(t, ok)
		assert.Equal(t, tt.wantArrow, slices.Contains(ill.Drawing.Layers(), "arrow"), "t=%v", tt.t)
	}
}

func TestAnimationPhaseLocked(t *testing.T) {
	ctx, host, clock := newTestContext()
	a := &recordingTarget{id: "a", exercise: "straight_leg_raise"}
	b := &recordingTarget{id: "b", exercise: "straight_leg_raise"}
	ctx.Mount(a)
	ctx.Mount(b)

	ctx.StartAnimations()
	require.True(t, ctx.Running())
	for i := 0; i < 6; i++ {
		clock.Advance(300 * time.Millisecond)
		host.Flush()
		require.Equal(t, i+1, a.count())
		require.Equal(t, i+1, b.count())
		assert.Equal(t, handPath(t, a.last()), handPath(t, b.last()), "frame %d", i)
		assert.Equal(t, "a", a.last().ID)
		assert.Equal(t, "b", b.last().ID)
	}
}

func TestAnimationArrowReveal(t *testing.T) {
	ctx, host, clock := newTestContext()
	tg := &recordingTarget{id: "a", exercise: "straight_leg_raise"}
	ctx.Mount(tg)
	ctx.StartAnimations()

	host.Flush() // t = 0
	assert.NotContains(t, tg.last().Layers(), "arrow")

	clock.Advance(anim.CycleLength / 2) // t = 1
	host.Flush()
	assert.Contains(t, tg.last().Layers(), "arrow")
}

func TestAnimationSkipsUnknownExercise(t *testing.T) {
	ex, ok := catalog.Get("bridge")
	require.True(t, ok)
	src, err := catalog.New(ex)
	require.NoError(t, err)

	ctx, host, clock := newTestContext(WithCatalog(src))
	gone := &recordingTarget{id: "gone", exercise: "straight_leg_raise"}
	kept := &recordingTarget{id: "kept", exercise: "bridge"}
	failing := &recordingTarget{id: "failing", exercise: "bridge", err: errors.New("detached")}
	ctx.Mount(gone)
	ctx.Mount(failing)
	ctx.Mount(kept)

	ctx.StartAnimations()
	clock.Advance(40 * time.Millisecond)
	host.Flush()

	assert.Zero(t, gone.count())
	assert.Equal(t, 1, failing.count())
	assert.Equal(t, 1, kept.count(), "a failing target must not stop the others")
	assert.Equal(t, 1, host.Live())
}

func TestAnimationZeroTargets(t *testing.T) {
	ctx, host, clock := newTestContext()
	ctx.StartAnimations()
	for i := 0; i < 3; i++ {
		clock.Advance(50 * time.Millisecond)
		assert.NotPanics(t, host.Flush)
		assert.Equal(t, 1, host.Live(), "next frame must be requested")
	}
	assert.True(t, ctx.Running())
}

func TestAnimationDoubleStart(t *testing.T) {
	ctx, host, clock := newTestContext()
	tg := &recordingTarget{id: "a", exercise: "bridge"}
	ctx.Mount(tg)

	ctx.StartAnimations()
	ctx.StartAnimations()
	for i := 1; i <= 3; i++ {
		clock.Advance(40 * time.Millisecond)
		host.Flush()
		assert.Equal(t, i, tg.count())
	}

	ctx.StopAnimations()
	assert.False(t, ctx.Running())
	clock.Advance(time.Second)
	host.Flush()
	assert.Equal(t, 3, tg.count())
}

func TestMountUnmount(t *testing.T) {
	ctx, host, clock := newTestContext()
	tg := &recordingTarget{id: "a", exercise: "bridge"}
	ctx.Mount(tg)
	assert.Equal(t, 1, ctx.Targets().Len())

	assert.True(t, ctx.Unmount("a"))
	assert.False(t, ctx.Unmount("a"))

	ctx.StartAnimations()
	clock.Advance(40 * time.Millisecond)
	host.Flush()
	assert.Zero(t, tg.count())
}

func TestRenderForGender(t *testing.T) {
	ctx, _, _ := newTestContext(WithGender(figure.Male))
	ill, ok := ctx.Render("bridge", 200, ForGender(figure.Female))
	require.True(t, ok)
	assert.Contains(t, ill.Drawing.Layers(), "hair.strand")
	assert.Equal(t, figure.Male, ctx.Gender(), "a per-render gender must not change the context")
}
