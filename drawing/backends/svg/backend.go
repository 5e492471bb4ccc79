// Package svg provides an SVG backend for drawings.
//
// The backend can emit either a complete <svg> document or only the inner
// fragment (definitions plus shapes). Fragments are what a host swaps into
// an already mounted element when a figure is redrawn: the element keeps its
// identity and only its content changes.
//
// # Example
//
//	import _ "github.com/gogpu/figure/drawing/backends/svg"
//
//	b := svg.NewBackend(svg.WithAttr("id", "fig-1"))
//	b.SetSize(240, 288)
//	_ = d.Playback(b)
//	_, _ = b.WriteTo(w)
package svg

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/gogpu/gg"

	"github.com/gogpu/figure/drawing"
)

func init() {
	drawing.RegisterFormat(drawing.Format{
		Name:        "svg",
		ContentType: "image/svg+xml",
		New: func(width, height int) drawing.WriterBackend {
			b := NewBackend()
			b.SetSize(width, height)
			return b
		},
	})
}

// Backend renders drawings to SVG markup.
type Backend struct {
	fragment bool
	attrs    [][2]string
	width    int
	height   int

	viewBox drawing.Rect
	begun   bool
	ended   bool

	defs    bytes.Buffer
	body    bytes.Buffer
	defined map[string]bool
	out     []byte
}

// Ensure Backend implements the extended interfaces.
var (
	_ drawing.WriterBackend = (*Backend)(nil)
	_ drawing.SizedBackend  = (*Backend)(nil)
	_ drawing.AttrBackend   = (*Backend)(nil)
)

// Option configures a Backend.
type Option func(*Backend)

// WithFragment makes the backend emit only the inner content of the
// document, without the enclosing <svg> element.
func WithFragment() Option {
	return func(b *Backend) {
		b.fragment = true
	}
}

// WithAttr adds an attribute to the root <svg> element.
func WithAttr(name, value string) Option {
	return func(b *Backend) {
		b.SetAttr(name, value)
	}
}

// NewBackend creates a new SVG backend.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// SetAttr sets an attribute of the root <svg> element. Attributes keep
// the order in which they were first set.
func (b *Backend) SetAttr(name, value string) {
	for i := range b.attrs {
		if b.attrs[i][0] == name {
			b.attrs[i][1] = value
			return
		}
	}
	b.attrs = append(b.attrs, [2]string{name, value})
}

// SetSize sets the width and height attributes of the root element.
// A zero size leaves them out so the view box alone decides.
func (b *Backend) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Begin starts a new document covering viewBox.
func (b *Backend) Begin(viewBox drawing.Rect) error {
	if viewBox.Width() <= 0 || viewBox.Height() <= 0 {
		return fmt.Errorf("svg: empty view box %+v", viewBox)
	}
	b.viewBox = viewBox
	b.defs.Reset()
	b.body.Reset()
	b.defined = make(map[string]bool)
	b.out = nil
	b.begun = true
	b.ended = false
	return nil
}

// End assembles the output.
func (b *Backend) End() error {
	if !b.begun {
		return drawing.ErrNotBegun
	}
	var buf bytes.Buffer
	if !b.fragment {
		b.openTag(&buf)
	}
	if b.defs.Len() > 0 {
		buf.WriteString("<defs>")
		buf.Write(b.defs.Bytes())
		buf.WriteString("</defs>")
	}
	buf.Write(b.body.Bytes())
	if !b.fragment {
		buf.WriteString("</svg>")
	}
	b.out = buf.Bytes()
	b.ended = true
	return nil
}

// Open returns the root element's opening tag as it would be written for the
// current size and attributes.
func (b *Backend) Open() string {
	var buf bytes.Buffer
	b.openTag(&buf)
	return buf.String()
}

func (b *Backend) openTag(buf *bytes.Buffer) {
	buf.WriteString(`<svg xmlns="http://www.w3.org/2000/svg"`)
	for _, a := range b.attrs {
		writeAttr(buf, a[0], a[1])
	}
	if b.width > 0 && b.height > 0 {
		writeAttr(buf, "width", strconv.Itoa(b.width))
		writeAttr(buf, "height", strconv.Itoa(b.height))
	}
	vb := b.viewBox
	writeAttr(buf, "viewBox", fmt.Sprintf("%s %s %s %s", num(vb.MinX), num(vb.MinY), num(vb.Width()), num(vb.Height())))
	buf.WriteString(">")
}

// FillPath writes a <path> filled with brush.
func (b *Backend) FillPath(path *gg.Path, brush drawing.Brush) {
	if path == nil {
		return
	}
	b.body.WriteString(`<path d="`)
	writePathData(&b.body, path)
	b.body.WriteString(`"`)
	b.paint("fill", brush)
	b.body.WriteString("/>")
}

// StrokePath writes an unfilled <path> stroked with brush.
func (b *Backend) StrokePath(path *gg.Path, brush drawing.Brush, stroke drawing.Stroke) {
	if path == nil {
		return
	}
	b.body.WriteString(`<path d="`)
	writePathData(&b.body, path)
	b.body.WriteString(`" fill="none"`)
	b.paint("stroke", brush)
	writeAttr(&b.body, "stroke-width", num(stroke.Width))
	writeAttr(&b.body, "stroke-linecap", lineCapName(stroke.Cap))
	writeAttr(&b.body, "stroke-linejoin", lineJoinName(stroke.Join))
	if m := stroke.EndMarker; m != nil && m.ID != "" {
		b.defineMarker(m, drawing.BrushColor(brush))
		writeAttr(&b.body, "marker-end", "url(#"+m.ID+")")
	}
	b.body.WriteString("/>")
}

// DrawText writes a <text> element.
func (b *Backend) DrawText(s string, x, y, size float64, anchor drawing.Anchor, brush drawing.Brush) {
	b.body.WriteString("<text")
	writeAttr(&b.body, "x", num(x))
	writeAttr(&b.body, "y", num(y))
	writeAttr(&b.body, "font-size", num(size))
	writeAttr(&b.body, "font-family", "sans-serif")
	writeAttr(&b.body, "text-anchor", anchorName(anchor))
	b.paint("fill", brush)
	b.body.WriteString(">")
	_ = xml.EscapeText(&b.body, []byte(s))
	b.body.WriteString("</text>")
}

// Bytes returns the markup produced by the last End.
func (b *Backend) Bytes() []byte {
	return b.out
}

// String returns the markup produced by the last End.
func (b *Backend) String() string {
	return string(b.out)
}

// WriteTo writes the markup to w.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if !b.ended {
		return 0, drawing.ErrNotBegun
	}
	n, err := w.Write(b.out)
	if err != nil {
		return int64(n), fmt.Errorf("svg: write: %w", err)
	}
	return int64(n), nil
}

// paint writes the fill or stroke attributes for brush, registering any
// gradient definition it references.
func (b *Backend) paint(attr string, brush drawing.Brush) {
	switch br := brush.(type) {
	case drawing.SolidBrush:
		writeAttr(&b.body, attr, hexColor(br.Color))
		if br.Color.A < 1 {
			writeAttr(&b.body, attr+"-opacity", num(br.Color.A))
		}
	case *drawing.LinearGradientBrush:
		b.defineLinear(br)
		writeAttr(&b.body, attr, "url(#"+br.ID+")")
	case *drawing.RadialGradientBrush:
		b.defineRadial(br)
		writeAttr(&b.body, attr, "url(#"+br.ID+")")
	default:
		writeAttr(&b.body, attr, "#000000")
	}
}

func (b *Backend) defineLinear(g *drawing.LinearGradientBrush) {
	if b.defined[g.ID] {
		return
	}
	b.defined[g.ID] = true
	b.defs.WriteString("<linearGradient")
	writeAttr(&b.defs, "id", g.ID)
	writeAttr(&b.defs, "gradientUnits", "userSpaceOnUse")
	writeAttr(&b.defs, "x1", num(g.Start.X))
	writeAttr(&b.defs, "y1", num(g.Start.Y))
	writeAttr(&b.defs, "x2", num(g.End.X))
	writeAttr(&b.defs, "y2", num(g.End.Y))
	b.defs.WriteString(">")
	writeStops(&b.defs, g.Stops)
	b.defs.WriteString("</linearGradient>")
}

func (b *Backend) defineRadial(g *drawing.RadialGradientBrush) {
	if b.defined[g.ID] {
		return
	}
	b.defined[g.ID] = true
	b.defs.WriteString("<radialGradient")
	writeAttr(&b.defs, "id", g.ID)
	writeAttr(&b.defs, "gradientUnits", "userSpaceOnUse")
	writeAttr(&b.defs, "cx", num(g.Center.X))
	writeAttr(&b.defs, "cy", num(g.Center.Y))
	writeAttr(&b.defs, "r", num(g.Radius))
	b.defs.WriteString(">")
	writeStops(&b.defs, g.Stops)
	b.defs.WriteString("</radialGradient>")
}

func (b *Backend) defineMarker(m *drawing.Marker, color gg.RGBA) {
	if b.defined[m.ID] {
		return
	}
	b.defined[m.ID] = true
	b.defs.WriteString("<marker")
	writeAttr(&b.defs, "id", m.ID)
	writeAttr(&b.defs, "markerUnits", "userSpaceOnUse")
	writeAttr(&b.defs, "markerWidth", num(m.Length))
	writeAttr(&b.defs, "markerHeight", num(m.Width))
	writeAttr(&b.defs, "refX", num(m.Length*0.8))
	writeAttr(&b.defs, "refY", num(m.Width/2))
	writeAttr(&b.defs, "orient", "auto")
	b.defs.WriteString(`><path d="M0,0 L`)
	b.defs.WriteString(num(m.Length) + "," + num(m.Width/2) + " L0," + num(m.Width) + ` Z"`)
	writeAttr(&b.defs, "fill", hexColor(color))
	b.defs.WriteString("/></marker>")
}

func writeStops(buf *bytes.Buffer, stops []drawing.GradientStop) {
	for _, s := range stops {
		buf.WriteString("<stop")
		writeAttr(buf, "offset", num(s.Offset))
		writeAttr(buf, "stop-color", hexColor(s.Color))
		if s.Color.A < 1 {
			writeAttr(buf, "stop-opacity", num(s.Color.A))
		}
		buf.WriteString("/>")
	}
}

// writePathData writes the d attribute value for path.
func writePathData(buf *bytes.Buffer, path *gg.Path) {
	for i, elem := range path.Elements() {
		if i > 0 {
			buf.WriteByte(' ')
		}
		switch e := elem.(type) {
		case gg.MoveTo:
			buf.WriteString("M" + pt(e.Point))
		case gg.LineTo:
			buf.WriteString("L" + pt(e.Point))
		case gg.QuadTo:
			buf.WriteString("Q" + pt(e.Control) + " " + pt(e.Point))
		case gg.CubicTo:
			buf.WriteString("C" + pt(e.Control1) + " " + pt(e.Control2) + " " + pt(e.Point))
		case gg.Close:
			buf.WriteString("Z")
		}
	}
}

func writeAttr(buf *bytes.Buffer, name, value string) {
	buf.WriteByte(' ')
	buf.WriteString(name)
	buf.WriteString(`="`)
	_ = xml.EscapeText(buf, []byte(value))
	buf.WriteByte('"')
}

func pt(p gg.Point) string {
	return num(p.X) + "," + num(p.Y)
}

// num formats v with at most two decimals and no trailing zeros.
func num(v float64) string {
	r := math.Round(v*100) / 100
	if r == 0 {
		r = 0 // normalise -0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

func hexColor(c gg.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

func lineCapName(c drawing.LineCap) string {
	switch c {
	case drawing.LineCapRound:
		return "round"
	case drawing.LineCapSquare:
		return "square"
	default:
		return "butt"
	}
}

func lineJoinName(j drawing.LineJoin) string {
	switch j {
	case drawing.LineJoinRound:
		return "round"
	case drawing.LineJoinBevel:
		return "bevel"
	default:
		return "miter"
	}
}

func anchorName(a drawing.Anchor) string {
	switch a {
	case drawing.AnchorMiddle:
		return "middle"
	case drawing.AnchorEnd:
		return "end"
	default:
		return "start"
	}
}
