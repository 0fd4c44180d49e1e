package scene

import (
	"github.com/qmuntal/gltf"

	"github.com/taigrr/vecmath/pkg/math3d"
)

// Pose is a translation, rotation, scale triple.
type Pose struct {
	Translation math3d.Vec3d
	Rotation    math3d.Quatd
	Scale       math3d.Vec3d
}

// IdentityPose returns the pose with no translation, rotation or scale.
func IdentityPose() Pose {
	return Pose{
		Rotation: math3d.QuatIdentity[float64](),
		Scale:    math3d.V3(1.0, 1, 1),
	}
}

// Matrix returns T * R * S.
func (p Pose) Matrix() math3d.Mat4d {
	return math3d.Translate(p.Translation).
		Mul(p.Rotation.Mat4()).
		Mul(math3d.Scale(p.Scale))
}

// PoseFromMatrix decomposes an affine matrix without shear into TRS. The
// scale is the length of each basis column; the rotation is recovered from
// the normalized basis. A negative determinant flips the X scale.
func PoseFromMatrix(m math3d.Mat4d) Pose {
	b := m.Mat3()
	x, _ := b.Col(0)
	y, _ := b.Col(1)
	z, _ := b.Col(2)

	sx, sy, sz := x.Len(), y.Len(), z.Len()
	if b.Determinant() < 0 {
		sx = -sx
	}

	var rot math3d.Mat3d
	if sx != 0 && sy != 0 && sz != 0 {
		rot = math3d.Mat3FromRows(x.Scale(1/sx), y.Scale(1/sy), z.Scale(1/sz)).Transpose()
	} else {
		rot = math3d.Identity3[float64]()
	}

	return Pose{
		Translation: m.Translation(),
		Rotation:    math3d.QuatFromMat3(rot).Normalize(),
		Scale:       math3d.V3(sx, sy, sz),
	}
}

// poseFromNode reads a node's TRS properties. Zero rotation and scale are
// what an in-memory gltf.Node carries when they were never set, and are
// read as identity.
func poseFromNode(gn *gltf.Node) Pose {
	p := IdentityPose()
	p.Translation = math3d.V3(gn.Translation[0], gn.Translation[1], gn.Translation[2])
	if gn.Rotation != [4]float64{} {
		p.Rotation = math3d.Quatd{X: gn.Rotation[0], Y: gn.Rotation[1], Z: gn.Rotation[2], W: gn.Rotation[3]}
	}
	if gn.Scale != [3]float64{} {
		p.Scale = math3d.V3(gn.Scale[0], gn.Scale[1], gn.Scale[2])
	}
	return p
}
