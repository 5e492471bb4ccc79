package drawing

import "github.com/gogpu/gg"

// Brush represents a fill/stroke style.
// This is a sealed interface - only types in this package implement it.
type Brush interface {
	brushMarker()
}

// SolidBrush is a solid color brush.
type SolidBrush struct {
	Color gg.RGBA
}

func (SolidBrush) brushMarker() {}

// NewSolidBrush creates a solid color brush.
func NewSolidBrush(color gg.RGBA) SolidBrush {
	return SolidBrush{Color: color}
}

// GradientStop defines a color at a specific position in a gradient.
type GradientStop struct {
	Offset float64 // Position in gradient (0.0 to 1.0)
	Color  gg.RGBA
}

// LinearGradientBrush is a linear gradient in view box coordinates.
type LinearGradientBrush struct {
	ID    string
	Start gg.Point
	End   gg.Point
	Stops []GradientStop
}

func (*LinearGradientBrush) brushMarker() {}

// NewLinearGradientBrush creates a linear gradient from (x0, y0) to (x1, y1).
func NewLinearGradientBrush(id string, x0, y0, x1, y1 float64) *LinearGradientBrush {
	return &LinearGradientBrush{
		ID:    id,
		Start: gg.Pt(x0, y0),
		End:   gg.Pt(x1, y1),
	}
}

// AddColorStop adds a color stop at the specified offset.
// Returns the gradient for method chaining.
func (g *LinearGradientBrush) AddColorStop(offset float64, color gg.RGBA) *LinearGradientBrush {
	g.Stops = append(g.Stops, GradientStop{Offset: offset, Color: color})
	return g
}

// RadialGradientBrush is a radial gradient in view box coordinates.
type RadialGradientBrush struct {
	ID     string
	Center gg.Point
	Radius float64
	Stops  []GradientStop
}

func (*RadialGradientBrush) brushMarker() {}

// NewRadialGradientBrush creates a radial gradient of radius r around (cx, cy).
func NewRadialGradientBrush(id string, cx, cy, r float64) *RadialGradientBrush {
	return &RadialGradientBrush{
		ID:     id,
		Center: gg.Pt(cx, cy),
		Radius: r,
	}
}

// AddColorStop adds a color stop at the specified offset.
// Returns the gradient for method chaining.
func (g *RadialGradientBrush) AddColorStop(offset float64, color gg.RGBA) *RadialGradientBrush {
	g.Stops = append(g.Stops, GradientStop{Offset: offset, Color: color})
	return g
}

// BrushID returns the definition id of a gradient brush, or "" for brushes
// that need no shared definition.
func BrushID(b Brush) string {
	switch br := b.(type) {
	case *LinearGradientBrush:
		return br.ID
	case *RadialGradientBrush:
		return br.ID
	default:
		return ""
	}
}

// BrushColor returns a representative color for b: the solid color, or the
// first stop of a gradient. Backends without gradient support use it as a
// fallback.
func BrushColor(b Brush) gg.RGBA {
	switch br := b.(type) {
	case SolidBrush:
		return br.Color
	case *LinearGradientBrush:
		if len(br.Stops) > 0 {
			return br.Stops[0].Color
		}
	case *RadialGradientBrush:
		if len(br.Stops) > 0 {
			return br.Stops[0].Color
		}
	}
	return gg.Black
}
