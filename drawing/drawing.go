package drawing

import "github.com/gogpu/gg"

// Drawing is an ordered list of commands over a view box. Later commands
// are painted on top of earlier ones.
type Drawing struct {
	// ID identifies the drawing; composers use it as the prefix of the
	// gradient and marker ids they create.
	ID       string
	ViewBox  Rect
	Commands []Command
}

// New creates an empty drawing with a view box of width x height anchored
// at the origin.
func New(id string, width, height float64) *Drawing {
	return &Drawing{
		ID:       id,
		ViewBox:  NewRect(0, 0, width, height),
		Commands: make([]Command, 0, 32),
	}
}

// Fill appends a fill of path with brush.
func (d *Drawing) Fill(layer string, path *gg.Path, brush Brush) {
	d.Commands = append(d.Commands, FillPathCommand{Layer: layer, Path: path, Brush: brush})
}

// Stroke appends a stroke of path.
func (d *Drawing) Stroke(layer string, path *gg.Path, brush Brush, stroke Stroke) {
	d.Commands = append(d.Commands, StrokePathCommand{Layer: layer, Path: path, Brush: brush, Stroke: stroke})
}

// Text appends a caption.
func (d *Drawing) Text(layer, s string, x, y, size float64, anchor Anchor, brush Brush) {
	d.Commands = append(d.Commands, TextCommand{
		Layer: layer, Text: s, X: x, Y: y, Size: size, Anchor: anchor, Brush: brush,
	})
}

// Len returns the number of commands.
func (d *Drawing) Len() int {
	return len(d.Commands)
}

// Layers returns the layer name of every command, in paint order.
func (d *Drawing) Layers() []string {
	names := make([]string, len(d.Commands))
	for i, c := range d.Commands {
		names[i] = c.LayerName()
	}
	return names
}

// Find returns the commands painted for layer.
func (d *Drawing) Find(layer string) []Command {
	var out []Command
	for _, c := range d.Commands {
		if c.LayerName() == layer {
			out = append(out, c)
		}
	}
	return out
}

// Playback replays the drawing to a backend, bracketed by Begin and End.
func (d *Drawing) Playback(b Backend) error {
	if err := b.Begin(d.ViewBox); err != nil {
		return err
	}
	for _, cmd := range d.Commands {
		switch c := cmd.(type) {
		case FillPathCommand:
			b.FillPath(c.Path, c.Brush)
		case StrokePathCommand:
			b.StrokePath(c.Path, c.Brush, c.Stroke)
		case TextCommand:
			b.DrawText(c.Text, c.X, c.Y, c.Size, c.Anchor, c.Brush)
		}
	}
	return b.End()
}
