// Package plot rasterizes 2D segments and rectangles to images, mainly to
// preview clipping results.
package plot

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"golang.org/x/image/vector"

	"github.com/taigrr/vecmath/pkg/math3d"
)

// Canvas maps a world-space window onto an RGBA image. World Y grows up,
// image Y grows down.
type Canvas struct {
	Image  *image.RGBA
	window math3d.Rectd
}

// NewCanvas creates a width x height canvas showing window, filled with bg.
func NewCanvas(width, height int, window math3d.Rectd, bg color.Color) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d: %w", width, height, math3d.ErrInvalidArgument)
	}
	if window.Width <= 0 || window.Height <= 0 {
		return nil, fmt.Errorf("invalid window %v: %w", window, math3d.ErrInvalidArgument)
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	return &Canvas{Image: img, window: window}, nil
}

// ToPixel converts a world-space point to image coordinates.
func (c *Canvas) ToPixel(p math3d.Vec2d) (float32, float32) {
	b := c.Image.Bounds()
	x := (p.X - c.window.MinX) / c.window.Width * float64(b.Dx())
	y := (1 - (p.Y-c.window.MinY)/c.window.Height) * float64(b.Dy())
	return float32(x), float32(y)
}

// Stroke draws a segment as a quad width pixels wide.
func (c *Canvas) Stroke(s math3d.Segment2d, col color.Color, width float32) {
	x0, y0 := c.ToPixel(s.Start)
	x1, y1 := c.ToPixel(s.End)

	d := math3d.V2(x1-x0, y1-y0)
	if d.LenSq() == 0 {
		d = math3d.V2[float32](1, 0)
	}
	n := d.Normalize().Perpendicular().Scale(width / 2)

	b := c.Image.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	r.MoveTo(x0+n.X, y0+n.Y)
	r.LineTo(x1+n.X, y1+n.Y)
	r.LineTo(x1-n.X, y1-n.Y)
	r.LineTo(x0-n.X, y0-n.Y)
	r.ClosePath()
	r.Draw(c.Image, b, image.NewUniform(col), image.Point{})
}

// StrokeRect outlines a rectangle.
func (c *Canvas) StrokeRect(rect math3d.Rectd, col color.Color, width float32) {
	lo := rect.Min()
	hi := math3d.V2(rect.MinX+rect.Width, rect.MinY+rect.Height)
	corners := []math3d.Vec2d{lo, {X: hi.X, Y: lo.Y}, hi, {X: lo.X, Y: hi.Y}}
	for i, p := range corners {
		c.Stroke(math3d.Seg(p, corners[(i+1)%len(corners)]), col, width)
	}
}

// SavePNG writes the canvas to path.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, c.Image); err != nil {
		f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	return f.Close()
}
