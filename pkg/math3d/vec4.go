package math3d

import "fmt"

// Vec4 represents a 4D vector (or homogeneous 3D point).
type Vec4[T Float] struct {
	X, Y, Z, W T
}

type (
	Vec4d = Vec4[float64]
	Vec4f = Vec4[float32]
)

// V4 creates a new Vec4.
func V4[T Float](x, y, z, w T) Vec4[T] {
	return Vec4[T]{x, y, z, w}
}

// V4FromV3 creates a Vec4 from Vec3 with specified W.
func V4FromV3[T Float](v Vec3[T], w T) Vec4[T] {
	return Vec4[T]{v.X, v.Y, v.Z, w}
}

// Vec4FromSlice builds a Vec4 from exactly four components.
func Vec4FromSlice[T Float](s []T) (Vec4[T], error) {
	if len(s) != 4 {
		return Vec4[T]{}, fmt.Errorf("vec4 from %d components: %w", len(s), ErrInvalidArgument)
	}
	return Vec4[T]{s[0], s[1], s[2], s[3]}, nil
}

// Vec3 returns the Vec3 portion (ignoring W).
func (v Vec4[T]) Vec3() Vec3[T] {
	return Vec3[T]{v.X, v.Y, v.Z}
}

// PerspectiveDivide returns Vec3 after dividing by W.
func (v Vec4[T]) PerspectiveDivide() Vec3[T] {
	if v.W == 0 {
		return Vec3[T]{v.X, v.Y, v.Z}
	}
	return Vec3[T]{v.X / v.W, v.Y / v.W, v.Z / v.W}
}

// Add returns the vector sum.
func (v Vec4[T]) Add(b Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X + b.X, v.Y + b.Y, v.Z + b.Z, v.W + b.W}
}

// Sub returns the vector difference.
func (v Vec4[T]) Sub(b Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X - b.X, v.Y - b.Y, v.Z - b.Z, v.W - b.W}
}

// Scale returns the scalar product.
func (v Vec4[T]) Scale(s T) Vec4[T] {
	return Vec4[T]{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Dot returns the dot product.
func (v Vec4[T]) Dot(b Vec4[T]) T {
	return v.X*b.X + v.Y*b.Y + v.Z*b.Z + v.W*b.W
}

// Len returns the length.
func (v Vec4[T]) Len() T {
	return sqrt(v.Dot(v))
}

// Normalize returns the unit vector.
func (v Vec4[T]) Normalize() Vec4[T] {
	l := v.Len()
	if l == 0 {
		return Vec4[T]{}
	}
	return Vec4[T]{v.X / l, v.Y / l, v.Z / l, v.W / l}
}

// Lerp returns the linear interpolation between v and b.
// alpha must lie in [0, 1].
func (v Vec4[T]) Lerp(b Vec4[T], alpha T) (Vec4[T], error) {
	if err := checkAlpha(alpha); err != nil {
		return Vec4[T]{}, err
	}
	return Vec4[T]{
		v.X + (b.X-v.X)*alpha,
		v.Y + (b.Y-v.Y)*alpha,
		v.Z + (b.Z-v.Z)*alpha,
		v.W + (b.W-v.W)*alpha,
	}, nil
}

// Component returns the i-th component (0 = X ... 3 = W).
func (v Vec4[T]) Component(i int) (T, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	case 2:
		return v.Z, nil
	case 3:
		return v.W, nil
	}
	return 0, fmt.Errorf("vec4 component %d: %w", i, ErrIndexOutOfRange)
}

// SetComponent writes the i-th component in place.
func (v *Vec4[T]) SetComponent(i int, c T) error {
	switch i {
	case 0:
		v.X = c
	case 1:
		v.Y = c
	case 2:
		v.Z = c
	case 3:
		v.W = c
	default:
		return fmt.Errorf("vec4 component %d: %w", i, ErrIndexOutOfRange)
	}
	return nil
}
