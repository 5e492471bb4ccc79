package illustrate

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"sync"

	"github.com/gogpu/figure"
	"github.com/gogpu/figure/drawing"
	_ "github.com/gogpu/figure/drawing/backends/raster" // "png"
	"github.com/gogpu/figure/drawing/backends/svg"
)

// Illustration is one rendered figure.
type Illustration struct {
	InstanceID string
	ExerciseID string
	// Size is the pixel width; the height follows the workspace aspect.
	Size int
	// Style holds the per-render options, so animation frames of a
	// mounted target keep the look of the static render.
	Style   Style
	Drawing *drawing.Drawing
}

// Height returns the pixel height for Size.
func (ill Illustration) Height() int {
	return int(math.Round(float64(ill.Size) * ill.Drawing.ViewBox.Height() / ill.Drawing.ViewBox.Width()))
}

// tag labels backends that carry root attributes with the figure's ids.
func (ill Illustration) tag(b drawing.Backend) {
	if ab, ok := b.(drawing.AttrBackend); ok {
		ab.SetAttr("id", ill.InstanceID)
		ab.SetAttr("data-exercise", ill.ExerciseID)
	}
}

func (ill Illustration) document() (*svg.Backend, error) {
	b := svg.NewBackend()
	b.SetSize(ill.Size, ill.Height())
	ill.tag(b)
	if err := ill.Drawing.Playback(b); err != nil {
		return nil, err
	}
	return b, nil
}

// SVG returns the illustration as a self-contained SVG document tagged
// with its instance and exercise ids. It returns "" and logs when the
// drawing cannot be played back.
func (ill Illustration) SVG() string {
	b, err := ill.document()
	if err != nil {
		figure.Logger().Warn("illustrate: svg",
			slog.String("instance", ill.InstanceID),
			slog.String("error", err.Error()))
		return ""
	}
	return b.String()
}

// Encode writes the illustration to w in the named output format, one of
// drawing.Formats().
func (ill Illustration) Encode(w io.Writer, format string) error {
	f, err := drawing.LookupFormat(format)
	if err != nil {
		return fmt.Errorf("illustrate: %w", err)
	}
	b := f.New(ill.Size, ill.Height())
	ill.tag(b)
	if err := ill.Drawing.Playback(b); err != nil {
		return fmt.Errorf("illustrate: %s: %w", f.Name, err)
	}
	if _, err := b.WriteTo(w); err != nil {
		return fmt.Errorf("illustrate: %s: %w", f.Name, err)
	}
	return nil
}

// WriteSVG writes the SVG document to w.
func (ill Illustration) WriteSVG(w io.Writer) error {
	return ill.Encode(w, "svg")
}

// WritePNG rasterises the illustration and writes it to w as PNG.
func (ill Illustration) WritePNG(w io.Writer) error {
	return ill.Encode(w, "png")
}

// SVGTarget is a Target backed by SVG markup. Its opening tag is fixed at
// construction; Replace swaps only the content between the tags.
type SVGTarget struct {
	instanceID string
	exerciseID string
	style      Style
	open       string

	mu       sync.RWMutex
	inner    string
	replaced int
}

// NewSVGTarget wraps a rendered illustration. Later frames keep the
// illustration's Style.
func NewSVGTarget(ill Illustration) (*SVGTarget, error) {
	b, err := ill.document()
	if err != nil {
		return nil, fmt.Errorf("illustrate: target %s: %w", ill.InstanceID, err)
	}
	inner, err := fragment(ill.Drawing)
	if err != nil {
		return nil, fmt.Errorf("illustrate: target %s: %w", ill.InstanceID, err)
	}
	return &SVGTarget{
		instanceID: ill.InstanceID,
		exerciseID: ill.ExerciseID,
		style:      ill.Style,
		open:       b.Open(),
		inner:      inner,
	}, nil
}

func fragment(d *drawing.Drawing) (string, error) {
	b := svg.NewBackend(svg.WithFragment())
	if err := d.Playback(b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// InstanceID implements Target.
func (t *SVGTarget) InstanceID() string { return t.instanceID }

// ExerciseID implements Target.
func (t *SVGTarget) ExerciseID() string { return t.exerciseID }

// Style implements StyledTarget.
func (t *SVGTarget) Style() Style { return t.style }

// Replace implements Target.
func (t *SVGTarget) Replace(d *drawing.Drawing) error {
	inner, err := fragment(d)
	if err != nil {
		return fmt.Errorf("illustrate: replace %s: %w", t.instanceID, err)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.inner = inner
	t.replaced++
	return nil
}

// Open returns the wrapper's opening tag.
func (t *SVGTarget) Open() string { return t.open }

// Inner returns the current content.
func (t *SVGTarget) Inner() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.inner
}

// Document returns the full current SVG document.
func (t *SVGTarget) Document() string {
	return t.Open() + t.Inner() + "</svg>"
}

// Replaced returns how many times the content has been replaced.
func (t *SVGTarget) Replaced() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.replaced
}
