package math3d

import (
	"fmt"
	"math"
)

// Vec2 represents a 2D vector or point.
type Vec2[T Float] struct {
	X, Y T
}

type (
	Vec2d = Vec2[float64]
	Vec2f = Vec2[float32]
)

// V2 creates a new Vec2.
func V2[T Float](x, y T) Vec2[T] {
	return Vec2[T]{x, y}
}

// Vec2FromSlice builds a Vec2 from exactly two components.
func Vec2FromSlice[T Float](s []T) (Vec2[T], error) {
	if len(s) != 2 {
		return Vec2[T]{}, fmt.Errorf("vec2 from %d components: %w", len(s), ErrInvalidArgument)
	}
	return Vec2[T]{s[0], s[1]}, nil
}

// Add returns the vector sum a + b.
func (a Vec2[T]) Add(b Vec2[T]) Vec2[T] {
	return Vec2[T]{a.X + b.X, a.Y + b.Y}
}

// Sub returns the vector difference a - b.
func (a Vec2[T]) Sub(b Vec2[T]) Vec2[T] {
	return Vec2[T]{a.X - b.X, a.Y - b.Y}
}

// Scale returns the scalar product a * s.
func (a Vec2[T]) Scale(s T) Vec2[T] {
	return Vec2[T]{a.X * s, a.Y * s}
}

// Mul returns the component-wise product a * b.
func (a Vec2[T]) Mul(b Vec2[T]) Vec2[T] {
	return Vec2[T]{a.X * b.X, a.Y * b.Y}
}

// Dot returns the dot product a · b.
func (a Vec2[T]) Dot(b Vec2[T]) T {
	return a.X*b.X + a.Y*b.Y
}

// Len returns the length of the vector.
func (a Vec2[T]) Len() T {
	return sqrt(a.LenSq())
}

// LenSq returns the squared length.
func (a Vec2[T]) LenSq() T {
	return a.X*a.X + a.Y*a.Y
}

// Normalize returns the unit vector, or the zero vector for a zero input.
func (a Vec2[T]) Normalize() Vec2[T] {
	l := a.Len()
	if l == 0 {
		return Vec2[T]{}
	}
	return Vec2[T]{a.X / l, a.Y / l}
}

// Negate returns the negated vector.
func (a Vec2[T]) Negate() Vec2[T] {
	return Vec2[T]{-a.X, -a.Y}
}

// Lerp returns the linear interpolation between a and b.
// alpha must lie in [0, 1].
func (a Vec2[T]) Lerp(b Vec2[T], alpha T) (Vec2[T], error) {
	if err := checkAlpha(alpha); err != nil {
		return Vec2[T]{}, err
	}
	return a.lerp(b, alpha), nil
}

func (a Vec2[T]) lerp(b Vec2[T], t T) Vec2[T] {
	return Vec2[T]{
		a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
	}
}

// Rotate rotates the vector by angle (radians).
func (a Vec2[T]) Rotate(angle float64) Vec2[T] {
	c, s := T(math.Cos(angle)), T(math.Sin(angle))
	return Vec2[T]{
		a.X*c - a.Y*s,
		a.X*s + a.Y*c,
	}
}

// Perpendicular returns a perpendicular vector (90° counter-clockwise).
func (a Vec2[T]) Perpendicular() Vec2[T] {
	return Vec2[T]{-a.Y, a.X}
}

// Angle returns the angle of the vector in radians.
func (a Vec2[T]) Angle() float64 {
	return math.Atan2(float64(a.Y), float64(a.X))
}

// Distance returns the distance between two points.
func (a Vec2[T]) Distance(b Vec2[T]) T {
	return a.Sub(b).Len()
}

// Component returns the i-th component (0 = X, 1 = Y).
func (a Vec2[T]) Component(i int) (T, error) {
	switch i {
	case 0:
		return a.X, nil
	case 1:
		return a.Y, nil
	}
	return 0, fmt.Errorf("vec2 component %d: %w", i, ErrIndexOutOfRange)
}

// SetComponent writes the i-th component in place.
func (a *Vec2[T]) SetComponent(i int, v T) error {
	switch i {
	case 0:
		a.X = v
	case 1:
		a.Y = v
	default:
		return fmt.Errorf("vec2 component %d: %w", i, ErrIndexOutOfRange)
	}
	return nil
}

// ApproxEqual reports whether every component differs by at most eps.
func (a Vec2[T]) ApproxEqual(b Vec2[T], eps T) bool {
	return approx(a.X, b.X, eps) && approx(a.Y, b.Y, eps)
}

func checkAlpha[T Float](alpha T) error {
	if !(alpha >= 0 && alpha <= 1) {
		return fmt.Errorf("lerp alpha %v outside [0, 1]: %w", alpha, ErrInvalidArgument)
	}
	return nil
}
