package math3d

// Rect is an axis-aligned rectangle. The far edges are exclusive: a point
// at exactly MinX+Width or MinY+Height lies outside, so rectangles that
// tile the plane never share a boundary.
type Rect[T Float] struct {
	MinX, MinY    T
	Width, Height T
}

type (
	Rectd = Rect[float64]
	Rectf = Rect[float32]
)

// R creates a new Rect.
func R[T Float](minX, minY, width, height T) Rect[T] {
	return Rect[T]{minX, minY, width, height}
}

// Min returns the lower-left corner.
func (r Rect[T]) Min() Vec2[T] {
	return Vec2[T]{r.MinX, r.MinY}
}

// Max returns the largest point still inside the rectangle: the next
// representable value below each far edge.
func (r Rect[T]) Max() Vec2[T] {
	return Vec2[T]{nextBelow(r.MinX + r.Width), nextBelow(r.MinY + r.Height)}
}

// Contains reports whether p lies inside r.
func (r Rect[T]) Contains(p Vec2[T]) bool {
	return r.outcode(p) == outcodeInside
}

// Cohen-Sutherland outcodes. Lower bits win when choosing which boundary
// to clip against next.
const (
	outcodeInside = 0
	outcodeLeft   = 1
	outcodeRight  = 2
	outcodeBottom = 4
	outcodeTop    = 8
)

func (r Rect[T]) outcode(p Vec2[T]) int {
	hi := r.Max()
	code := outcodeInside

	if p.X < r.MinX {
		code |= outcodeLeft
	} else if p.X > hi.X {
		code |= outcodeRight
	}

	if p.Y < r.MinY {
		code |= outcodeBottom
	} else if p.Y > hi.Y {
		code |= outcodeTop
	}

	return code
}

// Segment2 is an immutable 2D line segment.
type Segment2[T Float] struct {
	Start, End Vec2[T]
}

type (
	Segment2d = Segment2[float64]
	Segment2f = Segment2[float32]
)

// Seg creates a segment from two points.
func Seg[T Float](start, end Vec2[T]) Segment2[T] {
	return Segment2[T]{start, end}
}

// Len returns the length of the segment.
func (s Segment2[T]) Len() T {
	return s.Start.Distance(s.End)
}

// Reverse returns the segment with its endpoints swapped.
func (s Segment2[T]) Reverse() Segment2[T] {
	return Segment2[T]{s.End, s.Start}
}

// PointAt returns Start + (End-Start)*alpha. alpha must lie in [0, 1].
func (s Segment2[T]) PointAt(alpha T) (Vec2[T], error) {
	return s.Start.Lerp(s.End, alpha)
}

// Clip returns the part of s inside r, with the endpoints in their
// original order. ok is false when s lies entirely outside r.
func (s Segment2[T]) Clip(r Rect[T]) (clipped Segment2[T], ok bool) {
	p0, p1 := s.Start, s.End
	code0, code1 := r.outcode(p0), r.outcode(p1)

	for code0|code1 != 0 {
		if code0&code1 != 0 {
			// both beyond the same boundary
			return Segment2[T]{}, false
		}
		if code0 != 0 {
			p0 = r.clipTo(p0, p1, code0)
			code0 = r.outcode(p0)
		} else {
			p1 = r.clipTo(p1, p0, code1)
			code1 = r.outcode(p1)
		}
	}
	return Segment2[T]{p0, p1}, true
}

// Intersects reports whether any part of s lies inside r. It runs the same
// outcode walk as Clip but stops at the first trivial accept or reject.
func (s Segment2[T]) Intersects(r Rect[T]) bool {
	p0, p1 := s.Start, s.End
	code0, code1 := r.outcode(p0), r.outcode(p1)

	for {
		if code0 == outcodeInside || code1 == outcodeInside {
			return true
		}
		if code0&code1 != 0 {
			return false
		}
		p0 = r.clipTo(p0, p1, code0)
		code0 = r.outcode(p0)
	}
}

// clipTo moves p along the line through p and q onto the boundary named
// by the lowest set bit of code.
func (r Rect[T]) clipTo(p, q Vec2[T], code int) Vec2[T] {
	hi := r.Max()
	d := q.Sub(p)

	switch {
	case code&outcodeLeft != 0:
		return Vec2[T]{r.MinX, p.Y + d.Y*(r.MinX-p.X)/d.X}
	case code&outcodeRight != 0:
		return Vec2[T]{hi.X, p.Y + d.Y*(hi.X-p.X)/d.X}
	case code&outcodeBottom != 0:
		return Vec2[T]{p.X + d.X*(r.MinY-p.Y)/d.Y, r.MinY}
	default:
		return Vec2[T]{p.X + d.X*(hi.Y-p.Y)/d.Y, hi.Y}
	}
}
