// Package math3d provides 2D, 3D and 4D math primitives: vectors,
// 3x3 and 4x4 matrices, quaternions and 2D line segments.
//
// Every type is generic over the scalar precision. The d and f aliases
// (Vec3d, Mat4f, ...) name the float64 and float32 instantiations.
//
// Value receivers never modify their operand. Methods that write into a
// value take a pointer receiver and say so in their name (Set, Invert).
package math3d

import "math"

// Float is the scalar constraint shared by all types in this package.
type Float interface {
	~float32 | ~float64
}

func sqrt[T Float](v T) T {
	return T(math.Sqrt(float64(v)))
}

func abs[T Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// nextBelow returns the largest value of type T strictly less than v.
func nextBelow[T Float](v T) T {
	if r := T(math.Nextafter(float64(v), math.Inf(-1))); r < v {
		return r
	}
	// float32: the float64 step rounds back to v
	return T(math.Nextafter32(float32(v), float32(math.Inf(-1))))
}

func approx[T Float](a, b, eps T) bool {
	return abs(a-b) <= eps
}
