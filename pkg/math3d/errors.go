package math3d

import "errors"

var (
	// ErrSingularMatrix is returned when inverting a matrix whose
	// determinant is exactly zero.
	ErrSingularMatrix = errors.New("math3d: singular matrix")

	// ErrIndexOutOfRange is returned by index based accessors.
	ErrIndexOutOfRange = errors.New("math3d: index out of range")

	// ErrInvalidArgument is returned when a parameter falls outside its
	// documented domain, e.g. a lerp factor outside [0, 1] or a slice of
	// the wrong length.
	ErrInvalidArgument = errors.New("math3d: invalid argument")
)
