// Package drawing provides the typed drawing primitives that figures are
// composed into, and the backends that serialize them.
//
// A Drawing is an ordered list of commands (fill a path, stroke a path,
// draw a caption) over a fixed view box. Nothing in a Drawing depends on the
// output format: the same Drawing can be played back to the SVG backend for
// the web, to the raster backend for PNG or terminal output, or to any
// custom Backend.
//
// # Basic Usage
//
//	d := drawing.New("fig-1", 100, 120)
//	d.Fill("head", headPath, drawing.NewSolidBrush(gg.Hex("#f2c9a0")))
//	d.Stroke("surface", floor, drawing.NewSolidBrush(gg.Hex("#9aa5b1")), drawing.DefaultStroke())
//
//	f, _ := drawing.LookupFormat("svg")
//	b := f.New(240, 288)
//	if err := d.Playback(b); err != nil {
//	    // handle
//	}
//	b.WriteTo(os.Stdout)
//
// # Output Formats
//
// Each backend package registers its output format on import, the way
// database/sql drivers register themselves. Import one with a blank
// identifier to make its format available to LookupFormat:
//
//	import (
//	    _ "github.com/gogpu/figure/drawing/backends/raster" // "raster"
//	    _ "github.com/gogpu/figure/drawing/backends/svg"    // "svg"
//	)
//
// # Gradient and marker ids
//
// Gradient brushes and stroke markers carry an ID. When several drawings are
// embedded in one document their ids must not collide, so composers derive
// them from a per-instance prefix.
//
// # Thread Safety
//
// A Drawing is not safe for concurrent mutation. Once built it is only read
// by Playback and may be played back from multiple goroutines.
package drawing
