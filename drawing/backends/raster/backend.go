// Package raster provides a raster backend for drawings.
// It renders drawings to pixel images using gg.Context.
//
// The raster backend serves PNG export, terminal output (where each pixel
// pair becomes a half-block cell) and pixel-level tests.
//
// # Example
//
//	import _ "github.com/gogpu/figure/drawing/backends/raster"
//
//	b := raster.NewBackend(raster.WithBackground(gg.White))
//	b.SetSize(240, 288)
//	_ = d.Playback(b)
//	_, _ = b.WriteTo(w)
package raster

import (
	"fmt"
	"image"
	"io"
	"math"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/figure/drawing"
)

func init() {
	drawing.RegisterFormat(drawing.Format{
		Name:        "png",
		ContentType: "image/png",
		New: func(width, height int) drawing.WriterBackend {
			return NewBackend(WithSize(width, height))
		},
	})
}

// Default output size, twice the figure workspace.
const (
	DefaultWidth  = 200
	DefaultHeight = 240
)

// Backend renders drawings to a pixel image using gg.Context.
type Backend struct {
	ctx        *gg.Context
	width      int
	height     int
	background *gg.RGBA

	// view box to pixel mapping
	m     gg.Matrix
	scale float64
}

// Ensure Backend implements all required interfaces.
var (
	_ drawing.WriterBackend = (*Backend)(nil)
	_ drawing.SizedBackend  = (*Backend)(nil)
)

// Option configures a Backend.
type Option func(*Backend)

// WithBackground clears every new image to c instead of transparent.
func WithBackground(c gg.RGBA) Option {
	return func(b *Backend) {
		b.background = &c
	}
}

// WithSize sets the output size in pixels.
func WithSize(width, height int) Option {
	return func(b *Backend) {
		b.SetSize(width, height)
	}
}

// NewBackend creates a new raster backend.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{width: DefaultWidth, height: DefaultHeight}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// SetSize sets the output size used by the next Begin.
// Non-positive sizes are ignored.
func (b *Backend) SetSize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	b.width = width
	b.height = height
}

// Begin allocates a new image and maps viewBox onto it.
func (b *Backend) Begin(viewBox drawing.Rect) error {
	if viewBox.Width() <= 0 || viewBox.Height() <= 0 {
		return fmt.Errorf("raster: empty view box %+v", viewBox)
	}
	b.ctx = gg.NewContext(b.width, b.height)
	if b.background != nil {
		b.ctx.ClearWithColor(*b.background)
	}
	sx := float64(b.width) / viewBox.Width()
	sy := float64(b.height) / viewBox.Height()
	b.m = gg.Scale(sx, sy).Multiply(gg.Translate(-viewBox.MinX, -viewBox.MinY))
	b.scale = math.Sqrt(sx * sy)
	return nil
}

// End finalizes the rendering.
func (b *Backend) End() error {
	if b.ctx == nil {
		return drawing.ErrNotBegun
	}
	return nil
}

// FillPath fills the given path with the brush.
func (b *Backend) FillPath(path *gg.Path, brush drawing.Brush) {
	if path == nil || b.ctx == nil {
		return
	}
	b.applyBrush(brush, true)
	b.ctx.SetFillRule(gg.FillRuleNonZero)
	b.setPath(path)
	_ = b.ctx.Fill()
}

// StrokePath strokes the given path, then draws its end marker if any.
func (b *Backend) StrokePath(path *gg.Path, brush drawing.Brush, stroke drawing.Stroke) {
	if path == nil || b.ctx == nil {
		return
	}
	b.applyBrush(brush, false)
	b.applyStroke(stroke)
	b.setPath(path)
	_ = b.ctx.Stroke()

	if stroke.EndMarker != nil {
		if head := arrowhead(path, stroke.EndMarker); head != nil {
			b.ctx.SetFillBrush(gg.Solid(drawing.BrushColor(brush)))
			b.setPath(head)
			_ = b.ctx.Fill()
		}
	}
}

var (
	fontOnce   sync.Once
	fontSource *text.FontSource
	fontErr    error
)

func captionFont() (*text.FontSource, error) {
	fontOnce.Do(func() {
		fontSource, fontErr = text.NewFontSource(goregular.TTF)
	})
	return fontSource, fontErr
}

// DrawText draws a caption with the embedded Go Regular font.
func (b *Backend) DrawText(s string, x, y, size float64, anchor drawing.Anchor, brush drawing.Brush) {
	if b.ctx == nil || s == "" {
		return
	}
	src, err := captionFont()
	if err != nil {
		return
	}
	b.ctx.SetFont(src.Face(size * b.scale))
	b.ctx.SetColor(drawing.BrushColor(brush).Color())

	p := b.m.TransformPoint(gg.Pt(x, y))
	w, _ := b.ctx.MeasureString(s)
	switch anchor {
	case drawing.AnchorMiddle:
		p.X -= w / 2
	case drawing.AnchorEnd:
		p.X -= w
	}
	b.ctx.DrawString(s, p.X, p.Y)
}

// WriteTo writes the rendered content as PNG to the given writer.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.ctx == nil {
		return 0, drawing.ErrNotBegun
	}
	cw := &countingWriter{w: w}
	if err := b.ctx.EncodePNG(cw); err != nil {
		return cw.n, fmt.Errorf("raster: encode png: %w", err)
	}
	return cw.n, nil
}

// Image returns the rendered image, or nil before Begin.
func (b *Backend) Image() image.Image {
	if b.ctx == nil {
		return nil
	}
	return b.ctx.Image()
}

// Width returns the output width in pixels.
func (b *Backend) Width() int {
	return b.width
}

// Height returns the output height in pixels.
func (b *Backend) Height() int {
	return b.height
}

// setPath maps path from view box to pixel space and sets it on the context.
func (b *Backend) setPath(path *gg.Path) {
	b.ctx.ClearPath()
	for _, elem := range path.Transform(b.m).Elements() {
		switch e := elem.(type) {
		case gg.MoveTo:
			b.ctx.MoveTo(e.Point.X, e.Point.Y)
		case gg.LineTo:
			b.ctx.LineTo(e.Point.X, e.Point.Y)
		case gg.QuadTo:
			b.ctx.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case gg.CubicTo:
			b.ctx.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case gg.Close:
			b.ctx.ClosePath()
		}
	}
}

// applyBrush converts a drawing brush into a gg brush in pixel space.
func (b *Backend) applyBrush(brush drawing.Brush, fill bool) {
	var out gg.Brush
	switch br := brush.(type) {
	case drawing.SolidBrush:
		out = gg.Solid(br.Color)

	case *drawing.LinearGradientBrush:
		p0 := b.m.TransformPoint(br.Start)
		p1 := b.m.TransformPoint(br.End)
		grad := gg.NewLinearGradientBrush(p0.X, p0.Y, p1.X, p1.Y)
		for _, stop := range br.Stops {
			grad.AddColorStop(stop.Offset, stop.Color)
		}
		out = grad

	case *drawing.RadialGradientBrush:
		c := b.m.TransformPoint(br.Center)
		grad := gg.NewRadialGradientBrush(c.X, c.Y, 0, br.Radius*b.scale)
		for _, stop := range br.Stops {
			grad.AddColorStop(stop.Offset, stop.Color)
		}
		out = grad

	default:
		out = gg.Solid(gg.Black)
	}
	if fill {
		b.ctx.SetFillBrush(out)
	} else {
		b.ctx.SetStrokeBrush(out)
	}
}

// applyStroke applies the stroke settings to the context.
func (b *Backend) applyStroke(stroke drawing.Stroke) {
	b.ctx.SetLineWidth(stroke.Width * b.scale)
	b.ctx.SetLineCap(convertLineCap(stroke.Cap))
	b.ctx.SetLineJoin(convertLineJoin(stroke.Join))
}

// arrowhead builds a closed triangle at the end of path, pointing along the
// direction of its last segment. It returns nil for paths with no direction.
func arrowhead(path *gg.Path, m *drawing.Marker) *gg.Path {
	var prev, last gg.Point
	n := 0
	for _, elem := range path.Elements() {
		switch e := elem.(type) {
		case gg.MoveTo:
			prev, last = last, e.Point
		case gg.LineTo:
			prev, last = last, e.Point
		case gg.QuadTo:
			prev, last = e.Control, e.Point
		case gg.CubicTo:
			prev, last = e.Control2, e.Point
		default:
			continue
		}
		n++
	}
	dir := last.Sub(prev)
	if n < 2 || dir.Length() < 1e-9 {
		return nil
	}
	u := dir.Normalize()
	nrm := gg.Pt(-u.Y, u.X)
	tip := last.Add(u.Mul(m.Length * 0.2))
	base := tip.Sub(u.Mul(m.Length))

	head := gg.NewPath()
	head.MoveTo(tip.X, tip.Y)
	l := base.Add(nrm.Mul(m.Width / 2))
	r := base.Sub(nrm.Mul(m.Width / 2))
	head.LineTo(l.X, l.Y)
	head.LineTo(r.X, r.Y)
	head.Close()
	return head
}

func convertLineCap(lineCap drawing.LineCap) gg.LineCap {
	switch lineCap {
	case drawing.LineCapRound:
		return gg.LineCapRound
	case drawing.LineCapSquare:
		return gg.LineCapSquare
	default:
		return gg.LineCapButt
	}
}

func convertLineJoin(join drawing.LineJoin) gg.LineJoin {
	switch join {
	case drawing.LineJoinRound:
		return gg.LineJoinRound
	case drawing.LineJoinBevel:
		return gg.LineJoinBevel
	default:
		return gg.LineJoinMiter
	}
}

// countingWriter wraps an io.Writer and counts bytes written.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
