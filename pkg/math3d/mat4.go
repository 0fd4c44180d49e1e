package math3d

import (
	"fmt"
	"math"
)

// Mat4 is a 4x4 matrix stored row-major in named fields.
//
// Vectors are columns, so for an affine transform:
//
// | Xx Yx Zx Tx |   X,Y,Z = basis vectors (rotation/scale)
// | Xy Yy Zy Ty |   T = translation
// | Xz Yz Zz Tz |
// | 0  0  0  1  |
type Mat4[T Float] struct {
	M00, M01, M02, M03 T
	M10, M11, M12, M13 T
	M20, M21, M22, M23 T
	M30, M31, M32, M33 T
}

type (
	Mat4d = Mat4[float64]
	Mat4f = Mat4[float32]
)

// Identity4 returns the 4x4 identity matrix.
func Identity4[T Float]() Mat4[T] {
	return Mat4[T]{
		M00: 1,
		M11: 1,
		M22: 1,
		M33: 1,
	}
}

// Mat4FromSlice builds a matrix from sixteen row-major values.
func Mat4FromSlice[T Float](s []T) (Mat4[T], error) {
	if len(s) != 16 {
		return Mat4[T]{}, fmt.Errorf("mat4 from %d values: %w", len(s), ErrInvalidArgument)
	}
	return Mat4[T]{
		s[0], s[1], s[2], s[3],
		s[4], s[5], s[6], s[7],
		s[8], s[9], s[10], s[11],
		s[12], s[13], s[14], s[15],
	}, nil
}

// Mat4FromColumnMajor builds a matrix from sixteen column-major values,
// the layout used by OpenGL and glTF.
func Mat4FromColumnMajor[T Float](s []T) (Mat4[T], error) {
	m, err := Mat4FromSlice(s)
	if err != nil {
		return m, err
	}
	return m.Transpose(), nil
}

// Mat4FromMat3 embeds a 3x3 matrix into the upper-left block of an
// identity 4x4 matrix.
func Mat4FromMat3[T Float](m Mat3[T]) Mat4[T] {
	return Mat4[T]{
		m.M00, m.M01, m.M02, 0,
		m.M10, m.M11, m.M12, 0,
		m.M20, m.M21, m.M22, 0,
		0, 0, 0, 1,
	}
}

// Slice returns the sixteen values in row-major order.
func (m Mat4[T]) Slice() []T {
	return []T{
		m.M00, m.M01, m.M02, m.M03,
		m.M10, m.M11, m.M12, m.M13,
		m.M20, m.M21, m.M22, m.M23,
		m.M30, m.M31, m.M32, m.M33,
	}
}

// Mat3 returns the upper-left 3x3 block.
func (m Mat4[T]) Mat3() Mat3[T] {
	return Mat3[T]{
		m.M00, m.M01, m.M02,
		m.M10, m.M11, m.M12,
		m.M20, m.M21, m.M22,
	}
}

// Translate creates a translation matrix.
func Translate[T Float](v Vec3[T]) Mat4[T] {
	m := Identity4[T]()
	m.M03, m.M13, m.M23 = v.X, v.Y, v.Z
	return m
}

// Scale creates a scaling matrix.
func Scale[T Float](v Vec3[T]) Mat4[T] {
	return Mat4[T]{
		M00: v.X,
		M11: v.Y,
		M22: v.Z,
		M33: 1,
	}
}

// ScaleUniform creates a uniform scaling matrix.
func ScaleUniform[T Float](s T) Mat4[T] {
	return Scale(V3(s, s, s))
}

// RotateX creates a rotation matrix around the X axis.
func RotateX[T Float](angle float64) Mat4[T] {
	c, s := T(math.Cos(angle)), T(math.Sin(angle))
	return Mat4[T]{
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	}
}

// RotateY creates a rotation matrix around the Y axis.
func RotateY[T Float](angle float64) Mat4[T] {
	c, s := T(math.Cos(angle)), T(math.Sin(angle))
	return Mat4[T]{
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotateZ creates a rotation matrix around the Z axis.
func RotateZ[T Float](angle float64) Mat4[T] {
	c, s := T(math.Cos(angle)), T(math.Sin(angle))
	return Mat4[T]{
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Rotate creates a rotation matrix around an arbitrary axis.
func Rotate[T Float](axis Vec3[T], angle float64) Mat4[T] {
	axis = axis.Normalize()
	c, s := T(math.Cos(angle)), T(math.Sin(angle))
	t := 1 - c
	x, y, z := axis.X, axis.Y, axis.Z

	return Mat4[T]{
		t*x*x + c, t*x*y - s*z, t*x*z + s*y, 0,
		t*x*y + s*z, t*y*y + c, t*y*z - s*x, 0,
		t*x*z - s*y, t*y*z + s*x, t*z*z + c, 0,
		0, 0, 0, 1,
	}
}

// LookAt creates a view matrix looking from eye towards center.
func LookAt[T Float](eye, center, up Vec3[T]) Mat4[T] {
	f := center.Sub(eye).Normalize() // Forward
	s := f.Cross(up).Normalize()     // Right
	u := s.Cross(f)                  // Up (recomputed)

	return Mat4[T]{
		s.X, s.Y, s.Z, -s.Dot(eye),
		u.X, u.Y, u.Z, -u.Dot(eye),
		-f.X, -f.Y, -f.Z, f.Dot(eye),
		0, 0, 0, 1,
	}
}

// Perspective creates a perspective projection matrix.
// fovy is vertical field of view in radians.
// aspect is width/height.
// near and far are clipping planes.
func Perspective[T Float](fovy, aspect, near, far T) Mat4[T] {
	f := 1 / T(math.Tan(float64(fovy)/2))
	nf := 1 / (near - far)

	return Mat4[T]{
		M00: f / aspect,
		M11: f,
		M22: (far + near) * nf,
		M23: 2 * far * near * nf,
		M32: -1,
	}
}

// Orthographic creates an orthographic projection matrix.
func Orthographic[T Float](left, right, bottom, top, near, far T) Mat4[T] {
	rl := 1 / (right - left)
	tb := 1 / (top - bottom)
	fn := 1 / (far - near)

	return Mat4[T]{
		M00: 2 * rl,
		M03: -(right + left) * rl,
		M11: 2 * tb,
		M13: -(top + bottom) * tb,
		M22: -2 * fn,
		M23: -(far + near) * fn,
		M33: 1,
	}
}

// Mul multiplies two matrices: a * b.
//
//nolint:st1016 // a*b naming convention is clearer for matrix multiplication
func (a Mat4[T]) Mul(b Mat4[T]) Mat4[T] {
	return Mat4[T]{
		M00: a.M00*b.M00 + a.M01*b.M10 + a.M02*b.M20 + a.M03*b.M30,
		M01: a.M00*b.M01 + a.M01*b.M11 + a.M02*b.M21 + a.M03*b.M31,
		M02: a.M00*b.M02 + a.M01*b.M12 + a.M02*b.M22 + a.M03*b.M32,
		M03: a.M00*b.M03 + a.M01*b.M13 + a.M02*b.M23 + a.M03*b.M33,

		M10: a.M10*b.M00 + a.M11*b.M10 + a.M12*b.M20 + a.M13*b.M30,
		M11: a.M10*b.M01 + a.M11*b.M11 + a.M12*b.M21 + a.M13*b.M31,
		M12: a.M10*b.M02 + a.M11*b.M12 + a.M12*b.M22 + a.M13*b.M32,
		M13: a.M10*b.M03 + a.M11*b.M13 + a.M12*b.M23 + a.M13*b.M33,

		M20: a.M20*b.M00 + a.M21*b.M10 + a.M22*b.M20 + a.M23*b.M30,
		M21: a.M20*b.M01 + a.M21*b.M11 + a.M22*b.M21 + a.M23*b.M31,
		M22: a.M20*b.M02 + a.M21*b.M12 + a.M22*b.M22 + a.M23*b.M32,
		M23: a.M20*b.M03 + a.M21*b.M13 + a.M22*b.M23 + a.M23*b.M33,

		M30: a.M30*b.M00 + a.M31*b.M10 + a.M32*b.M20 + a.M33*b.M30,
		M31: a.M30*b.M01 + a.M31*b.M11 + a.M32*b.M21 + a.M33*b.M31,
		M32: a.M30*b.M02 + a.M31*b.M12 + a.M32*b.M22 + a.M33*b.M32,
		M33: a.M30*b.M03 + a.M31*b.M13 + a.M32*b.M23 + a.M33*b.M33,
	}
}

// MulVec3 transforms a Vec3 as a point (w=1).
func (m Mat4[T]) MulVec3(v Vec3[T]) Vec3[T] {
	w := m.M30*v.X + m.M31*v.Y + m.M32*v.Z + m.M33
	if w == 0 {
		w = 1
	}
	return Vec3[T]{
		(m.M00*v.X + m.M01*v.Y + m.M02*v.Z + m.M03) / w,
		(m.M10*v.X + m.M11*v.Y + m.M12*v.Z + m.M13) / w,
		(m.M20*v.X + m.M21*v.Y + m.M22*v.Z + m.M23) / w,
	}
}

// MulVec3Dir transforms a Vec3 as a direction (w=0, no translation).
func (m Mat4[T]) MulVec3Dir(v Vec3[T]) Vec3[T] {
	return m.Mat3().MulVec3(v)
}

// MulVec4 transforms a Vec4.
func (m Mat4[T]) MulVec4(v Vec4[T]) Vec4[T] {
	return Vec4[T]{
		m.M00*v.X + m.M01*v.Y + m.M02*v.Z + m.M03*v.W,
		m.M10*v.X + m.M11*v.Y + m.M12*v.Z + m.M13*v.W,
		m.M20*v.X + m.M21*v.Y + m.M22*v.Z + m.M23*v.W,
		m.M30*v.X + m.M31*v.Y + m.M32*v.Z + m.M33*v.W,
	}
}

// Transpose returns the transposed matrix.
func (m Mat4[T]) Transpose() Mat4[T] {
	return Mat4[T]{
		m.M00, m.M10, m.M20, m.M30,
		m.M01, m.M11, m.M21, m.M31,
		m.M02, m.M12, m.M22, m.M32,
		m.M03, m.M13, m.M23, m.M33,
	}
}

// minors4 holds the 2x2 minors of rows 0-1 (s) and rows 2-3 (c) that both
// the determinant and the adjugate are built from.
type minors4[T Float] struct {
	s0, s1, s2, s3, s4, s5 T
	c0, c1, c2, c3, c4, c5 T
}

func (m Mat4[T]) minors() minors4[T] {
	return minors4[T]{
		s0: m.M00*m.M11 - m.M10*m.M01,
		s1: m.M00*m.M12 - m.M10*m.M02,
		s2: m.M00*m.M13 - m.M10*m.M03,
		s3: m.M01*m.M12 - m.M11*m.M02,
		s4: m.M01*m.M13 - m.M11*m.M03,
		s5: m.M02*m.M13 - m.M12*m.M03,

		c0: m.M20*m.M31 - m.M30*m.M21,
		c1: m.M20*m.M32 - m.M30*m.M22,
		c2: m.M20*m.M33 - m.M30*m.M23,
		c3: m.M21*m.M32 - m.M31*m.M22,
		c4: m.M21*m.M33 - m.M31*m.M23,
		c5: m.M22*m.M33 - m.M32*m.M23,
	}
}

func (n minors4[T]) det() T {
	return n.s0*n.c5 - n.s1*n.c4 + n.s2*n.c3 + n.s3*n.c2 - n.s4*n.c1 + n.s5*n.c0
}

// Determinant returns the determinant of the matrix.
func (m Mat4[T]) Determinant() T {
	return m.minors().det()
}

// Inverse returns the inverse of the matrix. A matrix whose determinant is
// exactly zero yields ErrSingularMatrix, for both precisions.
func (m Mat4[T]) Inverse() (Mat4[T], error) {
	n := m.minors()
	det := n.det()
	if det == 0 {
		return Mat4[T]{}, fmt.Errorf("invert 4x4: %w", ErrSingularMatrix)
	}
	invDet := 1 / det

	return Mat4[T]{
		M00: (m.M11*n.c5 - m.M12*n.c4 + m.M13*n.c3) * invDet,
		M01: (-m.M01*n.c5 + m.M02*n.c4 - m.M03*n.c3) * invDet,
		M02: (m.M31*n.s5 - m.M32*n.s4 + m.M33*n.s3) * invDet,
		M03: (-m.M21*n.s5 + m.M22*n.s4 - m.M23*n.s3) * invDet,

		M10: (-m.M10*n.c5 + m.M12*n.c2 - m.M13*n.c1) * invDet,
		M11: (m.M00*n.c5 - m.M02*n.c2 + m.M03*n.c1) * invDet,
		M12: (-m.M30*n.s5 + m.M32*n.s2 - m.M33*n.s1) * invDet,
		M13: (m.M20*n.s5 - m.M22*n.s2 + m.M23*n.s1) * invDet,

		M20: (m.M10*n.c4 - m.M11*n.c2 + m.M13*n.c0) * invDet,
		M21: (-m.M00*n.c4 + m.M01*n.c2 - m.M03*n.c0) * invDet,
		M22: (m.M30*n.s4 - m.M31*n.s2 + m.M33*n.s0) * invDet,
		M23: (-m.M20*n.s4 + m.M21*n.s2 - m.M23*n.s0) * invDet,

		M30: (-m.M10*n.c3 + m.M11*n.c1 - m.M12*n.c0) * invDet,
		M31: (m.M00*n.c3 - m.M01*n.c1 + m.M02*n.c0) * invDet,
		M32: (-m.M30*n.s3 + m.M31*n.s1 - m.M32*n.s0) * invDet,
		M33: (m.M20*n.s3 - m.M21*n.s1 + m.M22*n.s0) * invDet,
	}, nil
}

// Invert replaces m with its inverse. On error m is left unchanged.
func (m *Mat4[T]) Invert() error {
	inv, err := m.Inverse()
	if err != nil {
		return err
	}
	*m = inv
	return nil
}

// Get returns the element at (row, col).
func (m Mat4[T]) Get(row, col int) (T, error) {
	p, err := m.cell(row, col)
	if err != nil {
		return 0, err
	}
	return *p, nil
}

// Set sets the element at (row, col).
func (m *Mat4[T]) Set(row, col int, val T) error {
	p, err := m.cell(row, col)
	if err != nil {
		return err
	}
	*p = val
	return nil
}

func (m *Mat4[T]) cell(row, col int) (*T, error) {
	if row < 0 || row > 3 || col < 0 || col > 3 {
		return nil, fmt.Errorf("mat4 element (%d, %d): %w", row, col, ErrIndexOutOfRange)
	}
	cells := [4][4]*T{
		{&m.M00, &m.M01, &m.M02, &m.M03},
		{&m.M10, &m.M11, &m.M12, &m.M13},
		{&m.M20, &m.M21, &m.M22, &m.M23},
		{&m.M30, &m.M31, &m.M32, &m.M33},
	}
	return cells[row][col], nil
}

// Row returns row i as a vector.
func (m Mat4[T]) Row(i int) (Vec4[T], error) {
	switch i {
	case 0:
		return Vec4[T]{m.M00, m.M01, m.M02, m.M03}, nil
	case 1:
		return Vec4[T]{m.M10, m.M11, m.M12, m.M13}, nil
	case 2:
		return Vec4[T]{m.M20, m.M21, m.M22, m.M23}, nil
	case 3:
		return Vec4[T]{m.M30, m.M31, m.M32, m.M33}, nil
	}
	return Vec4[T]{}, fmt.Errorf("mat4 row %d: %w", i, ErrIndexOutOfRange)
}

// Col returns column i as a vector.
func (m Mat4[T]) Col(i int) (Vec4[T], error) {
	r, err := m.Transpose().Row(i)
	if err != nil {
		return r, fmt.Errorf("mat4 column %d: %w", i, ErrIndexOutOfRange)
	}
	return r, nil
}

// Translation extracts the translation component.
func (m Mat4[T]) Translation() Vec3[T] {
	return Vec3[T]{m.M03, m.M13, m.M23}
}

// SetTranslation sets the translation component.
func (m *Mat4[T]) SetTranslation(v Vec3[T]) {
	m.M03 = v.X
	m.M13 = v.Y
	m.M23 = v.Z
}

// ApproxEqual reports whether every entry differs by at most eps.
func (a Mat4[T]) ApproxEqual(b Mat4[T], eps T) bool {
	as, bs := a.Slice(), b.Slice()
	for i := range as {
		if !approx(as[i], bs[i], eps) {
			return false
		}
	}
	return true
}
