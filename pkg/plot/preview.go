package plot

import (
	"image/color"

	"github.com/taigrr/vecmath/pkg/math3d"
)

var (
	ColorBackground = color.RGBA{20, 20, 28, 255}
	ColorClipBox    = color.RGBA{90, 160, 255, 255}
	ColorOriginal   = color.RGBA{110, 110, 110, 255}
	ColorClipped    = color.RGBA{255, 170, 40, 255}
)

// ClipPreview draws rect, every segment in grey and the visible part of
// each segment on top in colour. The view is rect padded by half its size
// on every side. It also returns the clipped segments; segments fully
// outside rect are dropped.
func ClipPreview(rect math3d.Rectd, segs []math3d.Segment2d, size int) (*Canvas, []math3d.Segment2d, error) {
	window := math3d.R(
		rect.MinX-rect.Width/2,
		rect.MinY-rect.Height/2,
		rect.Width*2,
		rect.Height*2,
	)
	c, err := NewCanvas(size, size, window, ColorBackground)
	if err != nil {
		return nil, nil, err
	}

	c.StrokeRect(rect, ColorClipBox, 2)
	var clipped []math3d.Segment2d
	for _, s := range segs {
		c.Stroke(s, ColorOriginal, 1.5)
		if cs, ok := s.Clip(rect); ok {
			clipped = append(clipped, cs)
		}
	}
	for _, cs := range clipped {
		c.Stroke(cs, ColorClipped, 3)
	}
	return c, clipped, nil
}
