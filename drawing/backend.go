package drawing

import (
	"io"

	"github.com/gogpu/gg"
)

// Backend is the interface that all output backends implement.
// Backends receive drawing commands in paint order and translate them to
// their output format (SVG elements, raster pixels, terminal cells, ...).
//
// # Implementation Contract
//
// Each backend must:
//  1. Register its output format in init() using drawing.RegisterFormat()
//  2. Handle all Backend methods (even if no-op for some)
//  3. Map the view box passed to Begin onto its own output size
type Backend interface {
	// Begin starts a new output covering viewBox. Calling Begin again
	// discards any previous output.
	Begin(viewBox Rect) error

	// End finalizes the output.
	End() error

	// FillPath fills a closed path with the brush.
	FillPath(path *gg.Path, brush Brush)

	// StrokePath strokes a path with the brush and stroke style.
	StrokePath(path *gg.Path, brush Brush, stroke Stroke)

	// DrawText draws a single line of text anchored at (x, y).
	DrawText(s string, x, y, size float64, anchor Anchor, brush Brush)
}

// WriterBackend extends Backend with the ability to write its output.
type WriterBackend interface {
	Backend

	// WriteTo writes the rendered content to w. Valid only after End.
	WriteTo(w io.Writer) (int64, error)
}

// SizedBackend is implemented by backends whose output size in pixels can
// differ from the view box.
type SizedBackend interface {
	Backend

	// SetSize sets the output size used by the next Begin.
	SetSize(width, height int)
}

// AttrBackend is implemented by backends whose output carries named
// attributes on its root element, such as the instance id of a figure.
type AttrBackend interface {
	Backend

	// SetAttr sets a root attribute, replacing an earlier value.
	SetAttr(name, value string)
}
