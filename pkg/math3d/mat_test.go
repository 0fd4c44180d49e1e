package math3d

import (
	"errors"
	"math"
	"testing"
)

const halfPi = math.Pi / 2

func TestDeterminantIdentity(t *testing.T) {
	if got := Identity3[float64]().Determinant(); got != 1 {
		t.Errorf("Identity3[float64]().Determinant() = %v, want 1", got)
	}
	if got := Identity3[float32]().Determinant(); got != 1 {
		t.Errorf("Identity3[float32]().Determinant() = %v, want 1", got)
	}
	if got := Identity4[float64]().Determinant(); got != 1 {
		t.Errorf("Identity4[float64]().Determinant() = %v, want 1", got)
	}
	if got := Identity4[float32]().Determinant(); got != 1 {
		t.Errorf("Identity4[float32]().Determinant() = %v, want 1", got)
	}
}

func TestMat3Determinant(t *testing.T) {
	tests := []struct {
		name string
		m    Mat3d
		want float64
	}{
		{"diagonal", Mat3d{2, 0, 0, 0, 1, 0, 0, 0, 4}, 8},
		{"general", Mat3d{3, 0, 2, 2, 0, -2, 0, 1, 1}, 10},
		{"repeated row", Mat3d{1, 2, 3, 1, 2, 3, 4, 5, 6}, 0},
		{"swapped rows negate", Mat3d{2, 0, -2, 3, 0, 2, 0, 1, 1}, -10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Determinant(); got != tt.want {
				t.Errorf("Determinant() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMat4DeterminantMatchesCofactorExpansion(t *testing.T) {
	m := Mat4d{
		4, 7, 2, 3,
		0, 5, 1, 8,
		2, 3, 9, 1,
		6, 1, 0, 2,
	}
	if got := m.Determinant(); got != 2064 {
		t.Errorf("Determinant() = %v, want 2064", got)
	}
	if got := m.Transpose().Determinant(); got != 2064 {
		t.Errorf("Transpose().Determinant() = %v, want 2064", got)
	}
}

func TestMat3Inverse(t *testing.T) {
	tests := []struct {
		name string
		m    Mat3d
		want Mat3d
	}{
		{"diagonal", Mat3d{2, 0, 0, 0, 1, 0, 0, 0, 4}, Mat3d{0.5, 0, 0, 0, 1, 0, 0, 0, 0.25}},
		{"general", Mat3d{3, 0, 2, 2, 0, -2, 0, 1, 1}, Mat3d{0.2, 0.2, 0, -0.2, 0.3, 1, 0.2, -0.3, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, err := tt.m.Inverse()
			if err != nil {
				t.Fatalf("Inverse() error = %v", err)
			}
			if !inv.ApproxEqual(tt.want, 1e-12) {
				t.Errorf("Inverse() = %v, want %v", inv, tt.want)
			}
			if got := inv.Mul(tt.m); !got.ApproxEqual(Identity3[float64](), 1e-6) {
				t.Errorf("Inverse()*M = %v, want identity", got)
			}
		})
	}
}

func TestMat3InverseFloat32(t *testing.T) {
	m := Mat3f{2, 0, 0, 0, 1, 0, 0, 0, 4}
	inv, err := m.Inverse()
	if err != nil {
		t.Fatalf("Inverse() error = %v", err)
	}
	want := Mat3f{0.5, 0, 0, 0, 1, 0, 0, 0, 0.25}
	if inv != want {
		t.Errorf("Inverse() = %v, want %v", inv, want)
	}
}

func TestMat4InverseRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4d
	}{
		{"affine", Translate(V3(1.0, 2, 3)).Mul(RotateY[float64](0.5)).Mul(Scale(V3(2.0, 2, 2)))},
		{"general", Mat4d{4, 7, 2, 3, 0, 5, 1, 8, 2, 3, 9, 1, 6, 1, 0, 2}},
		{"perspective", Perspective(1.0, 1.5, 0.1, 100)},
		{"look at", LookAt(V3(3.0, 4, 5), V3(0.0, 0, 0), V3(0.0, 1, 0))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, err := tt.m.Inverse()
			if err != nil {
				t.Fatalf("Inverse() error = %v", err)
			}
			if got := inv.Mul(tt.m); !got.ApproxEqual(Identity4[float64](), 1e-6) {
				t.Errorf("Inverse()*M = %v, want identity", got)
			}
			if got := tt.m.Mul(inv); !got.ApproxEqual(Identity4[float64](), 1e-6) {
				t.Errorf("M*Inverse() = %v, want identity", got)
			}
		})
	}
}

func TestMat4InverseFloat32(t *testing.T) {
	m := Translate(V3[float32](1, 2, 3)).Mul(ScaleUniform[float32](2))
	inv, err := m.Inverse()
	if err != nil {
		t.Fatalf("Inverse() error = %v", err)
	}
	if got := inv.Mul(m); !got.ApproxEqual(Identity4[float32](), 1e-6) {
		t.Errorf("Inverse()*M = %v, want identity", got)
	}
	p := inv.MulVec3(V3[float32](3, 4, 5))
	if want := V3[float32](1, 1, 1); !p.ApproxEqual(want, 1e-6) {
		t.Errorf("Inverse().MulVec3() = %v, want %v", p, want)
	}
}

func TestSingularMatrix(t *testing.T) {
	m3 := Mat3d{1, 2, 3, 1, 2, 3, 4, 5, 6}
	if _, err := m3.Inverse(); !errors.Is(err, ErrSingularMatrix) {
		t.Errorf("Mat3d.Inverse() error = %v, want ErrSingularMatrix", err)
	}

	m4 := Mat4d{1, 2, 3, 4, 1, 2, 3, 4, 5, 6, 7, 8, 9, 1, 2, 3}
	if det := m4.Determinant(); det != 0 {
		t.Errorf("Determinant() = %v, want 0", det)
	}
	if _, err := m4.Inverse(); !errors.Is(err, ErrSingularMatrix) {
		t.Errorf("Mat4d.Inverse() error = %v, want ErrSingularMatrix", err)
	}

	// float32 follows the same policy as float64
	m4f := Mat4f{1, 2, 3, 4, 1, 2, 3, 4, 5, 6, 7, 8, 9, 1, 2, 3}
	if _, err := m4f.Inverse(); !errors.Is(err, ErrSingularMatrix) {
		t.Errorf("Mat4f.Inverse() error = %v, want ErrSingularMatrix", err)
	}
	m3f := Mat3f{}
	if _, err := m3f.Inverse(); !errors.Is(err, ErrSingularMatrix) {
		t.Errorf("Mat3f{}.Inverse() error = %v, want ErrSingularMatrix", err)
	}
}

func TestInvertInPlace(t *testing.T) {
	m := Mat3d{2, 0, 0, 0, 1, 0, 0, 0, 4}
	if err := m.Invert(); err != nil {
		t.Fatalf("Invert() error = %v", err)
	}
	if want := (Mat3d{0.5, 0, 0, 0, 1, 0, 0, 0, 0.25}); m != want {
		t.Errorf("after Invert() m = %v, want %v", m, want)
	}

	singular := Mat4d{1, 2, 3, 4, 1, 2, 3, 4, 5, 6, 7, 8, 9, 1, 2, 3}
	orig := singular
	if err := singular.Invert(); !errors.Is(err, ErrSingularMatrix) {
		t.Fatalf("Invert() error = %v, want ErrSingularMatrix", err)
	}
	if singular != orig {
		t.Errorf("failed Invert() modified receiver: %v", singular)
	}
}

func TestMatrixIndexOutOfRange(t *testing.T) {
	m3 := Identity3[float64]()
	m4 := Identity4[float64]()

	if _, err := m3.Get(3, 0); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Mat3.Get(3, 0) error = %v, want ErrIndexOutOfRange", err)
	}
	if _, err := m3.Row(-1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Mat3.Row(-1) error = %v, want ErrIndexOutOfRange", err)
	}
	if _, err := m3.Col(3); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Mat3.Col(3) error = %v, want ErrIndexOutOfRange", err)
	}
	if err := m4.Set(0, 4, 1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Mat4.Set(0, 4) error = %v, want ErrIndexOutOfRange", err)
	}
	if m4 != Identity4[float64]() {
		t.Errorf("failed Set modified matrix: %v", m4)
	}
	if _, err := m4.Col(4); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Mat4.Col(4) error = %v, want ErrIndexOutOfRange", err)
	}
}

func TestMatrixAccessors(t *testing.T) {
	m := Mat4d{
		0, 1, 2, 3,
		4, 5, 6, 7,
		8, 9, 10, 11,
		12, 13, 14, 15,
	}
	for row := range 4 {
		for col := range 4 {
			got, err := m.Get(row, col)
			if err != nil {
				t.Fatalf("Get(%d, %d) error = %v", row, col, err)
			}
			if want := float64(row*4 + col); got != want {
				t.Errorf("Get(%d, %d) = %v, want %v", row, col, got, want)
			}
		}
	}

	if err := m.Set(2, 1, 42); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if m.M21 != 42 {
		t.Errorf("after Set(2, 1, 42) M21 = %v", m.M21)
	}

	col, _ := m.Col(3)
	if want := V4(3.0, 7, 11, 15); col != want {
		t.Errorf("Col(3) = %v, want %v", col, want)
	}
	row, _ := m.Row(1)
	if want := V4(4.0, 5, 6, 7); row != want {
		t.Errorf("Row(1) = %v, want %v", row, want)
	}
}

func TestMatFromSlice(t *testing.T) {
	if _, err := Mat3FromSlice([]float64{1, 2, 3}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Mat3FromSlice(3 values) error = %v, want ErrInvalidArgument", err)
	}
	if _, err := Mat4FromSlice(make([]float32, 9)); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Mat4FromSlice(9 values) error = %v, want ErrInvalidArgument", err)
	}

	cm := []float64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 5, 6, 7, 1}
	m, err := Mat4FromColumnMajor(cm)
	if err != nil {
		t.Fatalf("Mat4FromColumnMajor() error = %v", err)
	}
	if got, want := m.Translation(), V3(5.0, 6, 7); got != want {
		t.Errorf("Translation() = %v, want %v", got, want)
	}

	m3, err := Mat3FromSlice([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	if err != nil {
		t.Fatalf("Mat3FromSlice() error = %v", err)
	}
	if got := m3.Slice(); got[5] != 6 || m3.M12 != 6 {
		t.Errorf("Mat3FromSlice round trip: M12 = %v, Slice()[5] = %v", m3.M12, got[5])
	}
}

func TestMat4Transforms(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4d
		in   Vec3d
		want Vec3d
	}{
		{"translate", Translate(V3(1.0, 2, 3)), V3(1.0, 1, 1), V3(2.0, 3, 4)},
		{"scale", Scale(V3(2.0, 3, 4)), V3(1.0, 1, 1), V3(2.0, 3, 4)},
		{"rotate x", RotateX[float64](halfPi), V3(0.0, 1, 0), V3(0.0, 0, 1)},
		{"rotate y", RotateY[float64](halfPi), V3(0.0, 0, 1), V3(1.0, 0, 0)},
		{"rotate z", RotateZ[float64](halfPi), V3(1.0, 0, 0), V3(0.0, 1, 0)},
		{"rotate axis", Rotate(V3(0.0, 0, 2), halfPi), V3(1.0, 0, 0), V3(0.0, 1, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.MulVec3(tt.in); !got.ApproxEqual(tt.want, 1e-12) {
				t.Errorf("MulVec3(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMat4TranslationDoesNotMoveDirections(t *testing.T) {
	m := Translate(V3(5.0, 5, 5))
	if got := m.MulVec3Dir(V3(1.0, 2, 3)); got != V3(1.0, 2, 3) {
		t.Errorf("MulVec3Dir() = %v, want unchanged", got)
	}
	v := m.MulVec4(V4(1.0, 2, 3, 0))
	if v != V4(1.0, 2, 3, 0) {
		t.Errorf("MulVec4(w=0) = %v, want unchanged", v)
	}

	var n Mat4d = Identity4[float64]()
	n.SetTranslation(V3(1.0, 2, 3))
	if n != Translate(V3(1.0, 2, 3)) {
		t.Errorf("SetTranslation() = %v", n)
	}
}
