package raster

import (
	"bytes"
	"errors"
	"image"
	"testing"

	"github.com/gogpu/gg"

	"github.com/gogpu/figure/drawing"
)

func TestFormatRegistration(t *testing.T) {
	f, err := drawing.LookupFormat("png")
	if err != nil {
		t.Fatalf("LookupFormat(png) failed: %v", err)
	}
	if f.ContentType != "image/png" {
		t.Errorf("ContentType = %q, want image/png", f.ContentType)
	}
	b, ok := f.New(50, 60).(*Backend)
	if !ok {
		t.Fatal("backend is not *raster.Backend")
	}
	if b.width != 50 || b.height != 60 {
		t.Errorf("size = %dx%d, want 50x60", b.width, b.height)
	}
}

func TestBackendLifecycle(t *testing.T) {
	backend := NewBackend(WithSize(100, 120))
	if err := backend.Begin(drawing.NewRect(0, 0, 100, 120)); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	if err := backend.End(); err != nil {
		t.Fatalf("End failed: %v", err)
	}
	img := backend.Image()
	if img == nil {
		t.Fatal("Image() returned nil")
	}
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 120 {
		t.Errorf("Image bounds = %v, want 100x120", b)
	}
}

func TestBackendEmptyViewBox(t *testing.T) {
	backend := NewBackend()
	if err := backend.Begin(drawing.Rect{}); err == nil {
		t.Error("Begin with empty view box should fail")
	}
	if err := backend.End(); !errors.Is(err, drawing.ErrNotBegun) {
		t.Errorf("End = %v, want ErrNotBegun", err)
	}
}

func TestBackendScalesViewBox(t *testing.T) {
	// A 10x10 square at (10,10) in a 100x120 view box lands at (20,20)-(40,40)
	// in a 200x240 image.
	d := drawing.New("fig-1", 100, 120)
	sq := gg.NewPath()
	sq.Rectangle(10, 10, 10, 10)
	d.Fill("mat", sq, drawing.NewSolidBrush(gg.Red))

	backend := NewBackend(WithBackground(gg.White))
	if err := d.Playback(backend); err != nil {
		t.Fatalf("Playback failed: %v", err)
	}
	rgba, ok := backend.Image().(*image.RGBA)
	if !ok {
		t.Fatal("expected *image.RGBA")
	}
	if p := rgba.RGBAAt(30, 30); p.R < 200 || p.G > 50 || p.B > 50 {
		t.Errorf("pixel at (30,30) = %v, expected red", p)
	}
	if p := rgba.RGBAAt(60, 60); p.R < 200 || p.G < 200 || p.B < 200 {
		t.Errorf("pixel at (60,60) = %v, expected white background", p)
	}
}

func TestBackendWriteToPNG(t *testing.T) {
	backend := NewBackend(WithSize(20, 24))
	var buf bytes.Buffer
	if _, err := backend.WriteTo(&buf); !errors.Is(err, drawing.ErrNotBegun) {
		t.Errorf("WriteTo before Begin = %v, want ErrNotBegun", err)
	}

	if err := drawing.New("x", 100, 120).Playback(backend); err != nil {
		t.Fatal(err)
	}
	n, err := backend.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo returned %d, buffer has %d bytes", n, buf.Len())
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("output is not a PNG")
	}
}

func TestArrowhead(t *testing.T) {
	p := gg.NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	head := arrowhead(p, &drawing.Marker{Length: 4, Width: 2})
	if head == nil {
		t.Fatal("arrowhead returned nil")
	}
	tip, ok := head.Elements()[0].(gg.MoveTo)
	if !ok {
		t.Fatal("arrowhead should start with MoveTo")
	}
	if tip.Point.X <= 10 || tip.Point.Y != 0 {
		t.Errorf("tip = %v, want just past (10,0) on the x axis", tip.Point)
	}

	single := gg.NewPath()
	single.MoveTo(5, 5)
	if arrowhead(single, &drawing.Marker{Length: 4, Width: 2}) != nil {
		t.Error("arrowhead of a single point should be nil")
	}
}

func TestSetSizeIgnoresNonPositive(t *testing.T) {
	b := NewBackend()
	b.SetSize(0, 50)
	if b.Width() != DefaultWidth || b.Height() != DefaultHeight {
		t.Errorf("size = %dx%d, want defaults", b.Width(), b.Height())
	}
}
