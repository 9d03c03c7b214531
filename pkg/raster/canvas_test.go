package raster

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/go-drift/colorring/pkg/graphics"
)

var ringOval = graphics.Rect{Left: 8, Top: 8, Right: 92, Bottom: 92}

func assertPixel(t *testing.T, c *Canvas, x, y int, want color.RGBA) {
	t.Helper()
	if got := c.Image().RGBAAt(x, y); got != want {
		t.Errorf("pixel (%d, %d) = %v, want %v", x, y, got, want)
	}
}

var (
	red         = color.RGBA{R: 0xFF, A: 0xFF}
	blue        = color.RGBA{B: 0xFF, A: 0xFF}
	transparent = color.RGBA{}
)

func TestCanvas_FullRing(t *testing.T) {
	c := NewCanvas(100, 100)
	c.DrawArc(ringOval, -90, 360, false, graphics.ArcPaint(graphics.ColorRed, 8))

	assertPixel(t, c, 55, 9, red)
	assertPixel(t, c, 91, 50, red)
	assertPixel(t, c, 50, 91, red)
	assertPixel(t, c, 8, 50, red)
	assertPixel(t, c, 50, 50, transparent)
	assertPixel(t, c, 0, 0, transparent)
}

func TestCanvas_HalfRingWithRoundCaps(t *testing.T) {
	c := NewCanvas(100, 100)
	c.DrawArc(ringOval, -90, 180, false, graphics.ArcPaint(graphics.ColorBlue, 8))

	assertPixel(t, c, 91, 50, blue)
	assertPixel(t, c, 8, 50, transparent)
	// The round cap at 12 o'clock reaches past the arc start.
	assertPixel(t, c, 47, 8, blue)
}

func TestCanvas_ButtCapStopsAtStart(t *testing.T) {
	c := NewCanvas(100, 100)
	paint := graphics.ArcPaint(graphics.ColorBlue, 8)
	paint.StrokeCap = graphics.CapButt
	c.DrawArc(ringOval, -90, 180, false, paint)

	assertPixel(t, c, 53, 8, blue)
	assertPixel(t, c, 46, 8, transparent)
}

func TestCanvas_NegativeSweepMatchesPositive(t *testing.T) {
	a := NewCanvas(100, 100)
	b := NewCanvas(100, 100)
	paint := graphics.ArcPaint(graphics.ColorRed, 6)

	a.DrawArc(ringOval, 0, 90, false, paint)
	b.DrawArc(ringOval, 90, -90, false, paint)

	if !bytes.Equal(a.Image().Pix, b.Image().Pix) {
		t.Error("negative sweep should draw the same pixels as the equivalent positive sweep")
	}
}

func TestCanvas_IgnoresAntiAliasAndJoin(t *testing.T) {
	want := NewCanvas(100, 100)
	want.DrawArc(ringOval, -90, 200, false, graphics.ArcPaint(graphics.ColorBlue, 8))

	p := graphics.ArcPaint(graphics.ColorBlue, 8)
	p.AntiAlias = false
	p.StrokeJoin = graphics.JoinMiter
	got := NewCanvas(100, 100)
	got.DrawArc(ringOval, -90, 200, false, p)

	if !bytes.Equal(got.Image().Pix, want.Image().Pix) {
		t.Error("AntiAlias and StrokeJoin should not change the rendered pixels")
	}
}

func TestCanvas_ZeroSweepDrawsNothing(t *testing.T) {
	c := NewCanvas(50, 50)
	c.DrawArc(graphics.RectFromLTWH(5, 5, 40, 40), 0, 0, false, graphics.ArcPaint(graphics.ColorRed, 8))
	for _, v := range c.Image().Pix {
		if v != 0 {
			t.Fatal("zero sweep should leave the canvas untouched")
		}
	}
}

func TestCanvas_FilledPie(t *testing.T) {
	c := NewCanvas(100, 100)
	paint := graphics.DefaultPaint()
	paint.Color = graphics.ColorRed
	c.DrawArc(ringOval, 0, 90, true, paint)

	// The quarter below and right of the center is filled.
	assertPixel(t, c, 70, 70, red)
	assertPixel(t, c, 30, 30, transparent)
}

func TestCanvas_ClearAndSize(t *testing.T) {
	c := NewCanvas(20, 10)
	if got := c.Size(); got.Width != 20 || got.Height != 10 {
		t.Errorf("Size() = %+v, want 20x10", got)
	}
	c.Clear(graphics.ColorWhite)
	assertPixel(t, c, 19, 9, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
}

func TestCanvas_WritePNG(t *testing.T) {
	c := NewCanvas(16, 16)
	c.DrawArc(graphics.RectFromLTWH(2, 2, 12, 12), -90, 270, false, graphics.ArcPaint(graphics.ColorGreen, 2))

	var buf bytes.Buffer
	if err := c.WritePNG(&buf); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 16 {
		t.Errorf("decoded bounds = %v", img.Bounds())
	}
}
