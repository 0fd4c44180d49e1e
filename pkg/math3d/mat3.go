package math3d

import "fmt"

// Mat3 is a 3x3 matrix stored row-major in named fields.
//
// | M00 M01 M02 |
// | M10 M11 M12 |
// | M20 M21 M22 |
//
// Vectors are columns: MulVec3 computes M * v.
type Mat3[T Float] struct {
	M00, M01, M02 T
	M10, M11, M12 T
	M20, M21, M22 T
}

type (
	Mat3d = Mat3[float64]
	Mat3f = Mat3[float32]
)

// Identity3 returns the 3x3 identity matrix.
func Identity3[T Float]() Mat3[T] {
	return Mat3[T]{
		M00: 1,
		M11: 1,
		M22: 1,
	}
}

// Mat3FromSlice builds a matrix from nine row-major values.
func Mat3FromSlice[T Float](s []T) (Mat3[T], error) {
	if len(s) != 9 {
		return Mat3[T]{}, fmt.Errorf("mat3 from %d values: %w", len(s), ErrInvalidArgument)
	}
	return Mat3[T]{
		s[0], s[1], s[2],
		s[3], s[4], s[5],
		s[6], s[7], s[8],
	}, nil
}

// Mat3FromRows builds a matrix from three row vectors.
func Mat3FromRows[T Float](r0, r1, r2 Vec3[T]) Mat3[T] {
	return Mat3[T]{
		r0.X, r0.Y, r0.Z,
		r1.X, r1.Y, r1.Z,
		r2.X, r2.Y, r2.Z,
	}
}

// Slice returns the nine values in row-major order.
func (m Mat3[T]) Slice() []T {
	return []T{
		m.M00, m.M01, m.M02,
		m.M10, m.M11, m.M12,
		m.M20, m.M21, m.M22,
	}
}

// Mul multiplies two matrices: a * b.
func (a Mat3[T]) Mul(b Mat3[T]) Mat3[T] {
	return Mat3[T]{
		M00: a.M00*b.M00 + a.M01*b.M10 + a.M02*b.M20,
		M01: a.M00*b.M01 + a.M01*b.M11 + a.M02*b.M21,
		M02: a.M00*b.M02 + a.M01*b.M12 + a.M02*b.M22,

		M10: a.M10*b.M00 + a.M11*b.M10 + a.M12*b.M20,
		M11: a.M10*b.M01 + a.M11*b.M11 + a.M12*b.M21,
		M12: a.M10*b.M02 + a.M11*b.M12 + a.M12*b.M22,

		M20: a.M20*b.M00 + a.M21*b.M10 + a.M22*b.M20,
		M21: a.M20*b.M01 + a.M21*b.M11 + a.M22*b.M21,
		M22: a.M20*b.M02 + a.M21*b.M12 + a.M22*b.M22,
	}
}

// MulVec3 returns M * v.
func (m Mat3[T]) MulVec3(v Vec3[T]) Vec3[T] {
	return Vec3[T]{
		m.M00*v.X + m.M01*v.Y + m.M02*v.Z,
		m.M10*v.X + m.M11*v.Y + m.M12*v.Z,
		m.M20*v.X + m.M21*v.Y + m.M22*v.Z,
	}
}

// Scale returns every entry multiplied by s.
func (m Mat3[T]) Scale(s T) Mat3[T] {
	return Mat3[T]{
		m.M00 * s, m.M01 * s, m.M02 * s,
		m.M10 * s, m.M11 * s, m.M12 * s,
		m.M20 * s, m.M21 * s, m.M22 * s,
	}
}

// Transpose returns the transposed matrix.
func (m Mat3[T]) Transpose() Mat3[T] {
	return Mat3[T]{
		m.M00, m.M10, m.M20,
		m.M01, m.M11, m.M21,
		m.M02, m.M12, m.M22,
	}
}

// Determinant returns the determinant by cofactor expansion along the
// first row.
func (m Mat3[T]) Determinant() T {
	return m.M00*(m.M11*m.M22-m.M12*m.M21) -
		m.M01*(m.M10*m.M22-m.M12*m.M20) +
		m.M02*(m.M10*m.M21-m.M11*m.M20)
}

// Inverse returns the inverse of the matrix. A matrix whose determinant is
// exactly zero yields ErrSingularMatrix; nearly singular matrices are not
// detected.
func (m Mat3[T]) Inverse() (Mat3[T], error) {
	// first-row cofactors double as the determinant terms
	c00 := m.M11*m.M22 - m.M12*m.M21
	c01 := m.M12*m.M20 - m.M10*m.M22
	c02 := m.M10*m.M21 - m.M11*m.M20

	det := m.M00*c00 + m.M01*c01 + m.M02*c02
	if det == 0 {
		return Mat3[T]{}, fmt.Errorf("invert 3x3: %w", ErrSingularMatrix)
	}
	invDet := 1 / det

	// adjugate = transpose of the cofactor matrix
	return Mat3[T]{
		M00: c00 * invDet,
		M01: (m.M02*m.M21 - m.M01*m.M22) * invDet,
		M02: (m.M01*m.M12 - m.M02*m.M11) * invDet,

		M10: c01 * invDet,
		M11: (m.M00*m.M22 - m.M02*m.M20) * invDet,
		M12: (m.M02*m.M10 - m.M00*m.M12) * invDet,

		M20: c02 * invDet,
		M21: (m.M01*m.M20 - m.M00*m.M21) * invDet,
		M22: (m.M00*m.M11 - m.M01*m.M10) * invDet,
	}, nil
}

// Invert replaces m with its inverse. On error m is left unchanged.
func (m *Mat3[T]) Invert() error {
	inv, err := m.Inverse()
	if err != nil {
		return err
	}
	*m = inv
	return nil
}

// Get returns the element at (row, col).
func (m Mat3[T]) Get(row, col int) (T, error) {
	p, err := m.cell(row, col)
	if err != nil {
		return 0, err
	}
	return *p, nil
}

// Set sets the element at (row, col).
func (m *Mat3[T]) Set(row, col int, val T) error {
	p, err := m.cell(row, col)
	if err != nil {
		return err
	}
	*p = val
	return nil
}

func (m *Mat3[T]) cell(row, col int) (*T, error) {
	if row < 0 || row > 2 || col < 0 || col > 2 {
		return nil, fmt.Errorf("mat3 element (%d, %d): %w", row, col, ErrIndexOutOfRange)
	}
	cells := [3][3]*T{
		{&m.M00, &m.M01, &m.M02},
		{&m.M10, &m.M11, &m.M12},
		{&m.M20, &m.M21, &m.M22},
	}
	return cells[row][col], nil
}

// Row returns row i as a vector.
func (m Mat3[T]) Row(i int) (Vec3[T], error) {
	switch i {
	case 0:
		return Vec3[T]{m.M00, m.M01, m.M02}, nil
	case 1:
		return Vec3[T]{m.M10, m.M11, m.M12}, nil
	case 2:
		return Vec3[T]{m.M20, m.M21, m.M22}, nil
	}
	return Vec3[T]{}, fmt.Errorf("mat3 row %d: %w", i, ErrIndexOutOfRange)
}

// Col returns column i as a vector.
func (m Mat3[T]) Col(i int) (Vec3[T], error) {
	switch i {
	case 0:
		return Vec3[T]{m.M00, m.M10, m.M20}, nil
	case 1:
		return Vec3[T]{m.M01, m.M11, m.M21}, nil
	case 2:
		return Vec3[T]{m.M02, m.M12, m.M22}, nil
	}
	return Vec3[T]{}, fmt.Errorf("mat3 column %d: %w", i, ErrIndexOutOfRange)
}

// ApproxEqual reports whether every entry differs by at most eps.
func (a Mat3[T]) ApproxEqual(b Mat3[T], eps T) bool {
	as, bs := a.Slice(), b.Slice()
	for i := range as {
		if !approx(as[i], bs[i], eps) {
			return false
		}
	}
	return true
}
