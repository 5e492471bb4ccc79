package drawing

import "github.com/gogpu/gg"

// Command is the interface implemented by all command types.
type Command interface {
	// LayerName returns the name of the figure layer that produced the
	// command, e.g. "torso" or "leg.l.calf".
	LayerName() string
}

// FillPathCommand fills a path with a brush using the non-zero rule.
type FillPathCommand struct {
	Layer string
	Path  *gg.Path
	Brush Brush
}

// LayerName implements Command.
func (c FillPathCommand) LayerName() string { return c.Layer }

// StrokePathCommand strokes a path with a brush and stroke style.
type StrokePathCommand struct {
	Layer  string
	Path   *gg.Path
	Brush  Brush
	Stroke Stroke
}

// LayerName implements Command.
func (c StrokePathCommand) LayerName() string { return c.Layer }

// TextCommand draws a single line of text. (X, Y) is the anchor point on the
// baseline.
type TextCommand struct {
	Layer  string
	Text   string
	X, Y   float64
	Size   float64
	Anchor Anchor
	Brush  Brush
}

// LayerName implements Command.
func (c TextCommand) LayerName() string { return c.Layer }

// Anchor is the horizontal alignment of a text command.
type Anchor uint8

const (
	AnchorStart Anchor = iota
	AnchorMiddle
	AnchorEnd
)

// LineCap specifies the shape of line endpoints.
type LineCap uint8

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin uint8

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// Marker is an arrowhead placed at the final point of a stroked path,
// oriented along the path's last segment.
type Marker struct {
	// ID names the marker definition in formats that share definitions.
	ID string
	// Length and Width of the arrowhead in view box units.
	Length, Width float64
}

// Stroke defines the style for stroking paths.
type Stroke struct {
	// Width is the line width in view box units.
	Width float64
	Cap   LineCap
	Join  LineJoin
	// EndMarker, when set, draws an arrowhead at the end of the path.
	EndMarker *Marker
}

// DefaultStroke returns a Stroke with default settings.
func DefaultStroke() Stroke {
	return Stroke{
		Width: 1.0,
		Cap:   LineCapRound,
		Join:  LineJoinRound,
	}
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// NewRect creates a rectangle from position and size.
func NewRect(x, y, width, height float64) Rect {
	return Rect{MinX: x, MinY: y, MaxX: x + width, MaxY: y + height}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the height of the rectangle.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }
