package math3d

import "math"

const (
	// shepperdEps is the smallest squared component the matrix to
	// quaternion cascade will take a square root of and divide by.
	shepperdEps = 1e-30

	// slerpEps is the 1-|dot| below which Slerp blends linearly.
	slerpEps = 1e-12
)

// Quat is a quaternion x*i + y*j + z*k + w. It represents a rotation when
// normalized; nothing here normalizes it implicitly.
type Quat[T Float] struct {
	X, Y, Z, W T
}

type (
	Quatd = Quat[float64]
	Quatf = Quat[float32]
)

// QuatIdentity returns the identity rotation (0, 0, 0, 1).
func QuatIdentity[T Float]() Quat[T] {
	return Quat[T]{W: 1}
}

// QuatFromAxisAngle returns the rotation of angle radians around axis.
func QuatFromAxisAngle[T Float](axis Vec3[T], angle float64) Quat[T] {
	axis = axis.Normalize()
	s, c := math.Sincos(angle / 2)
	return Quat[T]{axis.X * T(s), axis.Y * T(s), axis.Z * T(s), T(c)}
}

// QuatFromMat3 extracts the rotation of a 3x3 rotation matrix using
// Shepperd's cascade: of w, x, y and z, the component with the largest
// magnitude is solved first from the diagonal and the other three are
// derived from off-diagonal sums and differences divided by it, so the
// divisor is never small. Ties go to w, then x, then y.
func QuatFromMat3[T Float](m Mat3[T]) Quat[T] {
	return quatFromRotation(m, 1)
}

// QuatFromMat4 extracts the rotation of the upper-left block of a
// homogeneous 4x4 matrix. M33 takes the place of 1 in the diagonal terms,
// so ww is a quarter of the full trace.
func QuatFromMat4[T Float](m Mat4[T]) Quat[T] {
	return quatFromRotation(m.Mat3(), m.M33)
}

func quatFromRotation[T Float](m Mat3[T], one T) Quat[T] {
	ww := 0.25 * (one + m.M00 + m.M11 + m.M22)
	xx := 0.25 * (one + m.M00 - m.M11 - m.M22)
	yy := 0.25 * (one - m.M00 + m.M11 - m.M22)
	zz := 0.25 * (one - m.M00 - m.M11 + m.M22)

	var q Quat[T]
	switch {
	case ww >= xx && ww >= yy && ww >= zz && ww >= shepperdEps:
		q.W = sqrt(ww)
		d := 0.25 / q.W
		q.X = (m.M21 - m.M12) * d
		q.Y = (m.M02 - m.M20) * d
		q.Z = (m.M10 - m.M01) * d
	case xx >= yy && xx >= zz && xx >= shepperdEps:
		q.X = sqrt(xx)
		d := 0.25 / q.X
		q.W = (m.M21 - m.M12) * d
		q.Y = (m.M01 + m.M10) * d
		q.Z = (m.M02 + m.M20) * d
	case yy >= zz && yy >= shepperdEps:
		q.Y = sqrt(yy)
		d := 0.25 / q.Y
		q.W = (m.M02 - m.M20) * d
		q.X = (m.M01 + m.M10) * d
		q.Z = (m.M12 + m.M21) * d
	case zz >= shepperdEps:
		q.Z = sqrt(zz)
		d := 0.25 / q.Z
		q.W = (m.M10 - m.M01) * d
		q.X = (m.M02 + m.M20) * d
		q.Y = (m.M12 + m.M21) * d
	default:
		// no usable diagonal, e.g. an all-zero homogeneous matrix
		q.Z = 1
	}
	return q
}

// QuatToMat4 creates a rotation matrix from quaternion components.
func QuatToMat4[T Float](x, y, z, w T) Mat4[T] {
	return Mat4FromMat3(Quat[T]{x, y, z, w}.Mat3())
}

// Mat3 returns the rotation matrix of q. q is assumed to be unit length;
// a non-unit q yields a non-orthonormal matrix.
func (q Quat[T]) Mat3() Mat3[T] {
	x, y, z, w := q.X, q.Y, q.Z, q.W
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	return Mat3[T]{
		1 - 2*(yy+zz), 2 * (xy - wz), 2 * (xz + wy),
		2 * (xy + wz), 1 - 2*(xx+zz), 2 * (yz - wx),
		2 * (xz - wy), 2 * (yz + wx), 1 - 2*(xx+yy),
	}
}

// Mat4 returns the homogeneous rotation matrix of q.
func (q Quat[T]) Mat4() Mat4[T] {
	return Mat4FromMat3(q.Mat3())
}

// Mul returns the Hamilton product q * r (apply r, then q).
func (q Quat[T]) Mul(r Quat[T]) Quat[T] {
	return Quat[T]{
		q.W*r.X + q.X*r.W + q.Y*r.Z - q.Z*r.Y,
		q.W*r.Y - q.X*r.Z + q.Y*r.W + q.Z*r.X,
		q.W*r.Z + q.X*r.Y - q.Y*r.X + q.Z*r.W,
		q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
	}
}

// Conjugate returns (-x, -y, -z, w), the inverse of a unit quaternion.
func (q Quat[T]) Conjugate() Quat[T] {
	return Quat[T]{-q.X, -q.Y, -q.Z, q.W}
}

// Negate returns -q, which represents the same rotation.
func (q Quat[T]) Negate() Quat[T] {
	return Quat[T]{-q.X, -q.Y, -q.Z, -q.W}
}

// Dot returns the 4-component dot product.
func (q Quat[T]) Dot(r Quat[T]) T {
	return q.X*r.X + q.Y*r.Y + q.Z*r.Z + q.W*r.W
}

// Len returns the quaternion norm.
func (q Quat[T]) Len() T {
	return sqrt(q.Dot(q))
}

// Normalize returns q scaled to unit length. The zero quaternion has no
// direction and maps to the identity.
func (q Quat[T]) Normalize() Quat[T] {
	l := q.Len()
	if l == 0 {
		return QuatIdentity[T]()
	}
	return Quat[T]{q.X / l, q.Y / l, q.Z / l, q.W / l}
}

// Rotate applies the rotation to v.
func (q Quat[T]) Rotate(v Vec3[T]) Vec3[T] {
	u := Vec3[T]{q.X, q.Y, q.Z}
	t := u.Cross(v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(u.Cross(t))
}

// Slerp interpolates from q towards r along the shorter great arc. When
// the two are nearly parallel it falls back to a linear blend. alpha is
// not range checked, so values outside [0, 1] extrapolate. The result is
// not renormalized.
//
// When q·r < 0 it is r that gets negated, not q, so Slerp(q, r, 0) is
// exactly q. Negating q instead gives the negated result, which is the
// same rotation.
func (q Quat[T]) Slerp(r Quat[T], alpha T) Quat[T] {
	dot := q.Dot(r)
	if dot < 0 {
		// q and -q are the same rotation; flip so the arc is the short one
		r = r.Negate()
		dot = -dot
	}

	var s1, s2 T
	if 1-dot > slerpEps {
		omega := math.Acos(math.Min(float64(dot), 1))
		sinOmega := math.Sin(omega)
		s1 = T(math.Sin((1-float64(alpha))*omega) / sinOmega)
		s2 = T(math.Sin(float64(alpha)*omega) / sinOmega)
	} else {
		s1 = 1 - alpha
		s2 = alpha
	}

	return Quat[T]{
		s1*q.X + s2*r.X,
		s1*q.Y + s2*r.Y,
		s1*q.Z + s2*r.Z,
		s1*q.W + s2*r.W,
	}
}

// Slerp is the function form of q1.Slerp(q2, alpha).
func Slerp[T Float](q1, q2 Quat[T], alpha T) Quat[T] {
	return q1.Slerp(q2, alpha)
}

// Nlerp blends linearly along the shorter arc and renormalizes. It is
// cheaper than Slerp but does not keep a constant angular velocity.
func (q Quat[T]) Nlerp(r Quat[T], alpha T) Quat[T] {
	if q.Dot(r) < 0 {
		r = r.Negate()
	}
	return Quat[T]{
		q.X + (r.X-q.X)*alpha,
		q.Y + (r.Y-q.Y)*alpha,
		q.Z + (r.Z-q.Z)*alpha,
		q.W + (r.W-q.W)*alpha,
	}.Normalize()
}

// ApproxEqual reports whether every component differs by at most eps.
func (q Quat[T]) ApproxEqual(r Quat[T], eps T) bool {
	return approx(q.X, r.X, eps) && approx(q.Y, r.Y, eps) &&
		approx(q.Z, r.Z, eps) && approx(q.W, r.W, eps)
}

// SameRotation reports whether q and r are equal up to sign.
func (q Quat[T]) SameRotation(r Quat[T], eps T) bool {
	return q.ApproxEqual(r, eps) || q.ApproxEqual(r.Negate(), eps)
}
