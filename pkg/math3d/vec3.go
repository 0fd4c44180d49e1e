package math3d

import "fmt"

// Vec3 represents a 3D vector.
type Vec3[T Float] struct {
	X, Y, Z T
}

type (
	Vec3d = Vec3[float64]
	Vec3f = Vec3[float32]
)

// V3 creates a new Vec3.
func V3[T Float](x, y, z T) Vec3[T] {
	return Vec3[T]{x, y, z}
}

// Vec3FromSlice builds a Vec3 from exactly three components.
func Vec3FromSlice[T Float](s []T) (Vec3[T], error) {
	if len(s) != 3 {
		return Vec3[T]{}, fmt.Errorf("vec3 from %d components: %w", len(s), ErrInvalidArgument)
	}
	return Vec3[T]{s[0], s[1], s[2]}, nil
}

// Add returns the vector sum a + b.
func (a Vec3[T]) Add(b Vec3[T]) Vec3[T] {
	return Vec3[T]{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns the vector difference a - b.
func (a Vec3[T]) Sub(b Vec3[T]) Vec3[T] {
	return Vec3[T]{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Scale returns the scalar product a * s.
func (a Vec3[T]) Scale(s T) Vec3[T] {
	return Vec3[T]{a.X * s, a.Y * s, a.Z * s}
}

// Mul returns the component-wise product.
func (a Vec3[T]) Mul(b Vec3[T]) Vec3[T] {
	return Vec3[T]{a.X * b.X, a.Y * b.Y, a.Z * b.Z}
}

// Dot returns the dot product a · b.
func (a Vec3[T]) Dot(b Vec3[T]) T {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product a × b.
func (a Vec3[T]) Cross(b Vec3[T]) Vec3[T] {
	return Vec3[T]{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Len returns the length of the vector.
func (a Vec3[T]) Len() T {
	return sqrt(a.LenSq())
}

// LenSq returns the squared length.
func (a Vec3[T]) LenSq() T {
	return a.X*a.X + a.Y*a.Y + a.Z*a.Z
}

// Normalize returns the unit vector, or the zero vector for a zero input.
func (a Vec3[T]) Normalize() Vec3[T] {
	l := a.Len()
	if l == 0 {
		return Vec3[T]{}
	}
	return Vec3[T]{a.X / l, a.Y / l, a.Z / l}
}

// Negate returns the negated vector.
func (a Vec3[T]) Negate() Vec3[T] {
	return Vec3[T]{-a.X, -a.Y, -a.Z}
}

// Lerp returns the linear interpolation between a and b.
// alpha must lie in [0, 1].
func (a Vec3[T]) Lerp(b Vec3[T], alpha T) (Vec3[T], error) {
	if err := checkAlpha(alpha); err != nil {
		return Vec3[T]{}, err
	}
	return a.lerp(b, alpha), nil
}

func (a Vec3[T]) lerp(b Vec3[T], t T) Vec3[T] {
	return Vec3[T]{
		a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
		a.Z + (b.Z-a.Z)*t,
	}
}

// Distance returns the distance between two points.
func (a Vec3[T]) Distance(b Vec3[T]) T {
	return a.Sub(b).Len()
}

// Min returns the component-wise minimum.
func (a Vec3[T]) Min(b Vec3[T]) Vec3[T] {
	return Vec3[T]{min(a.X, b.X), min(a.Y, b.Y), min(a.Z, b.Z)}
}

// Max returns the component-wise maximum.
func (a Vec3[T]) Max(b Vec3[T]) Vec3[T] {
	return Vec3[T]{max(a.X, b.X), max(a.Y, b.Y), max(a.Z, b.Z)}
}

// Component returns the i-th component (0 = X, 1 = Y, 2 = Z).
func (a Vec3[T]) Component(i int) (T, error) {
	switch i {
	case 0:
		return a.X, nil
	case 1:
		return a.Y, nil
	case 2:
		return a.Z, nil
	}
	return 0, fmt.Errorf("vec3 component %d: %w", i, ErrIndexOutOfRange)
}

// SetComponent writes the i-th component in place.
func (a *Vec3[T]) SetComponent(i int, v T) error {
	switch i {
	case 0:
		a.X = v
	case 1:
		a.Y = v
	case 2:
		a.Z = v
	default:
		return fmt.Errorf("vec3 component %d: %w", i, ErrIndexOutOfRange)
	}
	return nil
}

// ApproxEqual reports whether every component differs by at most eps.
func (a Vec3[T]) ApproxEqual(b Vec3[T], eps T) bool {
	return approx(a.X, b.X, eps) && approx(a.Y, b.Y, eps) && approx(a.Z, b.Z, eps)
}
