package math3d

import (
	"math"
	"testing"
)

func TestQuatIdentityRoundTrip(t *testing.T) {
	q := QuatIdentity[float64]()
	if m := q.Mat3(); m != Identity3[float64]() {
		t.Errorf("QuatIdentity().Mat3() = %v, want identity", m)
	}
	if got := QuatFromMat3(Identity3[float64]()); got != q {
		t.Errorf("QuatFromMat3(identity) = %v, want %v", got, q)
	}
	if got := QuatFromMat4(Identity4[float32]()); got != QuatIdentity[float32]() {
		t.Errorf("QuatFromMat4(identity) = %v, want (0,0,0,1)", got)
	}
}

func TestQuatMatrixRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		axis  Vec3d
		angle float64
	}{
		{"small x", V3(1.0, 0, 0), 0.1},
		{"quarter y", V3(0.0, 1, 0), halfPi},
		{"oblique", V3(1.0, 2, 3), 1.2},
		{"negative angle", V3(-2.0, 0.5, 1), -2.5},
		{"near half turn", V3(0.0, 0, 1), math.Pi - 0.01},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := QuatFromAxisAngle(tt.axis, tt.angle)
			if got := QuatFromMat3(q.Mat3()); !got.SameRotation(q, 1e-9) {
				t.Errorf("QuatFromMat3(q.Mat3()) = %v, want ±%v", got, q)
			}
			if got := QuatFromMat4(q.Mat4()); !got.SameRotation(q, 1e-9) {
				t.Errorf("QuatFromMat4(q.Mat4()) = %v, want ±%v", got, q)
			}
		})
	}
}

// Half turns have w = 0 and force the cascade past its first branch.
func TestQuatFromMat3HalfTurns(t *testing.T) {
	tests := []struct {
		name string
		q    Quatd
	}{
		{"about x", Quatd{X: 1}},
		{"about y", Quatd{Y: 1}},
		{"about z", Quatd{Z: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.q.Mat3()
			if got := QuatFromMat3(m); got != tt.q {
				t.Errorf("QuatFromMat3(%v) = %v, want %v", m, got, tt.q)
			}
		})
	}
}

// Half turns about oblique axes have w = 0 with rounding noise on the
// diagonal, and no single axis component dominates.
func TestQuatFromMatrixObliqueHalfTurns(t *testing.T) {
	axes := []Vec3d{
		V3(1.0, 2, 3),
		V3(1.0, 1, 0),
		V3(0.0, 1, 1),
		V3(-1.0, 0.5, 2),
		V3(1.0, 1, 1),
	}
	for _, axis := range axes {
		q := QuatFromAxisAngle(axis, math.Pi)
		if got := QuatFromMat3(q.Mat3()); !got.SameRotation(q, 1e-12) {
			t.Errorf("QuatFromMat3(half turn about %v) = %v, want ±%v", axis, got, q)
		}
		if got := QuatFromMat4(q.Mat4()); !got.SameRotation(q, 1e-12) {
			t.Errorf("QuatFromMat4(half turn about %v) = %v, want ±%v", axis, got, q)
		}

		qf := QuatFromAxisAngle(V3(float32(axis.X), float32(axis.Y), float32(axis.Z)), math.Pi)
		if got := QuatFromMat3(qf.Mat3()); !got.SameRotation(qf, 1e-5) {
			t.Errorf("float32 QuatFromMat3(half turn about %v) = %v, want ±%v", axis, got, qf)
		}
		if got := QuatFromMat4(qf.Mat4()); !got.SameRotation(qf, 1e-5) {
			t.Errorf("float32 QuatFromMat4(half turn about %v) = %v, want ±%v", axis, got, qf)
		}
	}
}

func TestQuatFromMatrixSweep(t *testing.T) {
	for i := range 200 {
		// deterministic spread of axes and angles, half of them half turns
		a := float64(i)
		axis := V3(math.Sin(a*0.7), math.Cos(a*1.3), math.Sin(a*2.9)+0.1)
		angle := math.Pi
		if i%2 == 1 {
			angle = math.Mod(a*0.37, 2*math.Pi) - math.Pi
		}
		q := QuatFromAxisAngle(axis, angle)
		if got := QuatFromMat3(q.Mat3()); !got.SameRotation(q, 1e-9) {
			t.Fatalf("QuatFromMat3(q.Mat3()) = %v, want ±%v (axis %v, angle %v)", got, q, axis, angle)
		}
	}
}

func TestQuatFromMat4Degenerate(t *testing.T) {
	if got := QuatFromMat4(Mat4d{}); got != (Quatd{Z: 1}) {
		t.Errorf("QuatFromMat4(zero) = %v, want (0,0,1,0)", got)
	}
}

func TestQuatFromMat3Float32(t *testing.T) {
	q := QuatFromAxisAngle(V3[float32](0, 0, 1), halfPi)
	got := QuatFromMat3(q.Mat3())
	if !got.SameRotation(q, 1e-6) {
		t.Errorf("QuatFromMat3(q.Mat3()) = %v, want ±%v", got, q)
	}
}

func TestQuatMat3IsRotation(t *testing.T) {
	q := QuatFromAxisAngle(V3(1.0, 2, 3), 0.7)
	m := q.Mat3()
	if det := m.Determinant(); math.Abs(det-1) > 1e-12 {
		t.Errorf("Determinant() = %v, want 1", det)
	}
	if got := m.Mul(m.Transpose()); !got.ApproxEqual(Identity3[float64](), 1e-12) {
		t.Errorf("M*Mᵀ = %v, want identity", got)
	}
	v := V3(0.5, -1, 2)
	if a, b := m.MulVec3(v), q.Rotate(v); !a.ApproxEqual(b, 1e-12) {
		t.Errorf("Mat3().MulVec3(v) = %v, Rotate(v) = %v", a, b)
	}
}

func TestQuatMatchesMatrixRotation(t *testing.T) {
	q := QuatFromAxisAngle(V3(0.0, 0, 1), halfPi)
	if got := q.Mat4(); !got.ApproxEqual(RotateZ[float64](halfPi), 1e-12) {
		t.Errorf("Mat4() = %v, want RotateZ(π/2)", got)
	}
	if got := QuatToMat4(q.X, q.Y, q.Z, q.W); got != q.Mat4() {
		t.Errorf("QuatToMat4() = %v, want %v", got, q.Mat4())
	}
}

func TestQuatMul(t *testing.T) {
	z90 := QuatFromAxisAngle(V3(0.0, 0, 1), halfPi)
	z180 := QuatFromAxisAngle(V3(0.0, 0, 1), math.Pi)
	if got := z90.Mul(z90); !got.ApproxEqual(z180, 1e-12) {
		t.Errorf("z90*z90 = %v, want %v", got, z180)
	}
	if got := z90.Mul(z90.Conjugate()); !got.ApproxEqual(QuatIdentity[float64](), 1e-12) {
		t.Errorf("q*conj(q) = %v, want identity", got)
	}
	if got := (Quatd{}).Normalize(); got != QuatIdentity[float64]() {
		t.Errorf("zero.Normalize() = %v, want identity", got)
	}
}

func TestSlerpBoundaries(t *testing.T) {
	q1 := QuatFromAxisAngle(V3(1.0, 0, 0), 0.3)
	q2 := QuatFromAxisAngle(V3(0.0, 1, 1), 1.7)

	if got := Slerp(q1, q2, 0); !got.ApproxEqual(q1, 1e-12) {
		t.Errorf("Slerp(q1, q2, 0) = %v, want %v", got, q1)
	}
	if got := Slerp(q1, q2, 1); !got.SameRotation(q2, 1e-12) {
		t.Errorf("Slerp(q1, q2, 1) = %v, want ±%v", got, q2)
	}
	if got := Slerp(q1, q1, 0.5); !got.ApproxEqual(q1, 1e-12) {
		t.Errorf("Slerp(q, q, 0.5) = %v, want %v", got, q1)
	}
}

func TestSlerpMidpoint(t *testing.T) {
	from := QuatIdentity[float64]()
	to := QuatFromAxisAngle(V3(0.0, 0, 1), halfPi)
	want := QuatFromAxisAngle(V3(0.0, 0, 1), halfPi/2)

	if got := from.Slerp(to, 0.5); !got.ApproxEqual(want, 1e-12) {
		t.Errorf("Slerp(0.5) = %v, want %v", got, want)
	}
	if got := from.Slerp(to, 0.5).Len(); math.Abs(got-1) > 1e-12 {
		t.Errorf("Slerp(0.5).Len() = %v, want 1", got)
	}
}

func TestSlerpShortestPath(t *testing.T) {
	q1 := QuatFromAxisAngle(V3(0.0, 1, 0), 0.2)
	q2 := QuatFromAxisAngle(V3(0.0, 1, 0), 1.4)
	neg := q2.Negate()
	if q1.Dot(neg) >= 0 {
		t.Fatalf("test setup: dot(q1, -q2) = %v, want negative", q1.Dot(neg))
	}
	for _, alpha := range []float64{0, 0.25, 0.5, 0.75, 1} {
		a := Slerp(q1, q2, alpha)
		b := Slerp(q1, neg, alpha)
		if a != b {
			t.Errorf("alpha %v: Slerp(q1, -q2) = %v, want %v", alpha, b, a)
		}
	}

	// The path stays on the short arc: the midpoint is 0.8 rad from each end.
	mid := Slerp(q1, neg, 0.5)
	want := QuatFromAxisAngle(V3(0.0, 1, 0), 0.8)
	if !mid.ApproxEqual(want, 1e-12) {
		t.Errorf("Slerp(q1, -q2, 0.5) = %v, want %v", mid, want)
	}
}

// Flipping the first operand instead of the second yields the negated
// quaternion, the same rotation.
func TestSlerpFlipsSecondOperand(t *testing.T) {
	q1 := QuatFromAxisAngle(V3(1.0, 2, 0), 0.4)
	q2 := QuatFromAxisAngle(V3(0.0, 1, 3), 2.2).Negate()
	if q1.Dot(q2) >= 0 {
		t.Fatalf("test setup: dot(q1, q2) = %v, want negative", q1.Dot(q2))
	}
	if got := Slerp(q1, q2, 0); got != q1 {
		t.Errorf("Slerp(q1, q2, 0) = %v, want exactly %v", got, q1)
	}
	for _, alpha := range []float64{0.1, 0.5, 0.9} {
		got := Slerp(q1, q2, alpha)
		flipFirst := Slerp(q1.Negate(), q2, alpha).Negate()
		if got != flipFirst {
			t.Errorf("alpha %v: Slerp(q1, q2) = %v, -Slerp(-q1, q2) = %v", alpha, got, flipFirst)
		}
	}
}

func TestSlerpExtrapolates(t *testing.T) {
	from := QuatIdentity[float64]()
	to := QuatFromAxisAngle(V3(0.0, 0, 1), halfPi)
	want := QuatFromAxisAngle(V3(0.0, 0, 1), math.Pi)
	if got := from.Slerp(to, 2); !got.ApproxEqual(want, 1e-12) {
		t.Errorf("Slerp(2) = %v, want %v", got, want)
	}
}

func TestSlerpFloat32(t *testing.T) {
	from := QuatIdentity[float32]()
	to := QuatFromAxisAngle(V3[float32](1, 0, 0), halfPi)
	want := QuatFromAxisAngle(V3[float32](1, 0, 0), halfPi/2)
	if got := Slerp(from, to, 0.5); !got.ApproxEqual(want, 1e-6) {
		t.Errorf("Slerp(0.5) = %v, want %v", got, want)
	}
}

func TestNlerp(t *testing.T) {
	from := QuatIdentity[float64]()
	to := QuatFromAxisAngle(V3(0.0, 0, 1), halfPi)
	got := from.Nlerp(to.Negate(), 0.5)
	want := QuatFromAxisAngle(V3(0.0, 0, 1), halfPi/2)
	if !got.ApproxEqual(want, 1e-12) {
		t.Errorf("Nlerp(0.5) = %v, want %v", got, want)
	}
}
