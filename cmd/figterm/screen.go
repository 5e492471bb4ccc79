package main

import (
	"image"
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/gg"

	"github.com/gogpu/figure"
	"github.com/gogpu/figure/drawing"
	"github.com/gogpu/figure/drawing/backends/raster"
)

var background = gg.RGB(0.06, 0.07, 0.09)

// region is a rectangle of terminal cells.
type region struct {
	x, y, cols, rows int
}

// pixels returns the image size that fits the region keeping the workspace
// aspect. Each cell holds two vertically stacked pixels.
func (r region) pixels() (w, h int) {
	w = r.cols
	h = w * figure.WorkspaceHeight / figure.WorkspaceWidth
	if h > 2*r.rows {
		h = 2 * r.rows
		w = h * figure.WorkspaceWidth / figure.WorkspaceHeight
	}
	return max(w, 1), max(h, 1)
}

// screenTarget draws a figure into a region of a tcell screen with half
// block characters.
type screenTarget struct {
	id, exercise, label string

	screen tcell.Screen
	lock   *sync.Mutex
	area   region
	onPeak func()

	// arrow is swapped per frame so only one of two overlapping frames
	// sees the rising edge.
	arrow atomic.Bool
}

func (t *screenTarget) InstanceID() string { return t.id }
func (t *screenTarget) ExerciseID() string { return t.exercise }

// Replace rasterises d and paints it. The peak callback fires when the
// motion arrow appears.
func (t *screenTarget) Replace(d *drawing.Drawing) error {
	w, h := t.area.pixels()
	b := raster.NewBackend(raster.WithSize(w, h), raster.WithBackground(background))
	if err := d.Playback(b); err != nil {
		return err
	}

	t.lock.Lock()
	t.paint(b.Image(), w, h)
	t.screen.Show()
	t.lock.Unlock()

	shown := len(d.Find("arrow")) > 0
	if was := t.arrow.Swap(shown); shown && !was && t.onPeak != nil {
		t.onPeak()
	}
	return nil
}

func (t *screenTarget) paint(img image.Image, w, h int) {
	a := t.area
	left := a.x + (a.cols-w)/2
	bg := tcell.StyleDefault.Background(cellColor(background.Color()))
	for row := 0; row < a.rows; row++ {
		for col := 0; col < a.cols; col++ {
			t.screen.SetContent(a.x+col, a.y+row, ' ', nil, bg)
		}
	}
	for py := 0; py+1 < h; py += 2 {
		for px := 0; px < w; px++ {
			style := tcell.StyleDefault.
				Foreground(cellColor(img.At(px, py))).
				Background(cellColor(img.At(px, py+1)))
			t.screen.SetContent(left+px, a.y+py/2, '▀', nil, style)
		}
	}
	label := []rune(t.label)
	start := a.x + (a.cols-len(label))/2
	for i, r := range label {
		if start+i >= a.x && start+i < a.x+a.cols {
			t.screen.SetContent(start+i, a.y+a.rows, r, nil, tcell.StyleDefault.Foreground(tcell.ColorSilver))
		}
	}
}

func cellColor(c interface{ RGBA() (r, g, b, a uint32) }) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
