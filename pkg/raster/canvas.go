// Package raster draws rings into in-memory images.
//
// Canvas implements graphics.Canvas on top of golang.org/x/image/vector.
// Arcs are converted to closed outlines made of cubic curves and filled with
// the rasterizer, which always anti-aliases.
//
// Not every Paint field is honored: AntiAlias and StrokeJoin are ignored,
// and CapSquare is drawn like CapButt.
package raster

import (
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"

	"github.com/go-drift/colorring/pkg/graphics"
)

// Canvas is a software graphics.Canvas backed by an *image.RGBA.
type Canvas struct {
	img *image.RGBA
	z   *vector.Rasterizer
}

// NewCanvas returns a transparent canvas of the given pixel size.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		z:   vector.NewRasterizer(width, height),
	}
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Size implements graphics.Canvas.
func (c *Canvas) Size() graphics.Size {
	b := c.img.Bounds()
	return graphics.Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

// Clear implements graphics.Canvas.
func (c *Canvas) Clear(color graphics.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(color.NRGBA()), image.Point{}, draw.Src)
}

// DrawArc implements graphics.Canvas. Zero sweeps draw nothing and sweeps
// beyond a full turn are clamped to 360 degrees.
func (c *Canvas) DrawArc(oval graphics.Rect, startAngle, sweepAngle float64, useCenter bool, paint graphics.Paint) {
	if sweepAngle == 0 {
		return
	}
	if sweepAngle < 0 {
		startAngle += sweepAngle
		sweepAngle = -sweepAngle
	}
	sweepAngle = math.Min(sweepAngle, 360)

	var path *graphics.Path
	if paint.Style == graphics.PaintStyleStroke {
		path = strokedArc(oval, startAngle, sweepAngle, paint)
	} else {
		path = filledArc(oval, startAngle, sweepAngle, useCenter)
	}
	c.fill(path, paint.Color)
}

// WritePNG encodes the canvas as PNG.
func (c *Canvas) WritePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

func (c *Canvas) fill(path *graphics.Path, color graphics.Color) {
	if path.IsEmpty() {
		return
	}
	b := c.img.Bounds()
	c.z.Reset(b.Dx(), b.Dy())
	c.z.DrawOp = draw.Over
	for _, cmd := range path.Commands {
		a := cmd.Args
		switch cmd.Op {
		case graphics.PathOpMoveTo:
			c.z.MoveTo(float32(a[0]), float32(a[1]))
		case graphics.PathOpLineTo:
			c.z.LineTo(float32(a[0]), float32(a[1]))
		case graphics.PathOpCubicTo:
			c.z.CubeTo(float32(a[0]), float32(a[1]), float32(a[2]), float32(a[3]), float32(a[4]), float32(a[5]))
		case graphics.PathOpClose:
			c.z.ClosePath()
		}
	}
	c.z.Draw(c.img, b, image.NewUniform(color.NRGBA()), image.Point{})
}

// strokedArc outlines an arc stroke: the outer edge runs forward, the inner
// edge runs back, and round caps add a disc at each end. All contours wind
// the same way so overlaps do not cancel.
func strokedArc(oval graphics.Rect, start, sweep float64, paint graphics.Paint) *graphics.Path {
	half := paint.StrokeWidth / 2
	path := graphics.NewPath()
	if half <= 0 {
		return path
	}

	outer := oval.Deflate(-half)
	inner := oval.Deflate(half)
	path.AddArc(outer, start, sweep, true)
	path.AddArc(inner, start+sweep, -sweep, false)
	path.Close()

	if paint.StrokeCap == graphics.CapRound && sweep < 360 {
		for _, angle := range []float64{start, start + sweep} {
			p := graphics.ArcPoint(oval, angle)
			disc := graphics.Rect{Left: p.X - half, Top: p.Y - half, Right: p.X + half, Bottom: p.Y + half}
			path.AddArc(disc, 0, 360, true)
			path.Close()
		}
	}
	return path
}

func filledArc(oval graphics.Rect, start, sweep float64, useCenter bool) *graphics.Path {
	path := graphics.NewPath()
	if useCenter {
		center := oval.Center()
		path.MoveTo(center.X, center.Y)
		path.AddArc(oval, start, sweep, false)
	} else {
		path.AddArc(oval, start, sweep, true)
	}
	path.Close()
	return path
}
