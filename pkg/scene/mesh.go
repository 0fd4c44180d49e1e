package scene

import (
	"fmt"

	"github.com/qmuntal/gltf"

	"github.com/taigrr/vecmath/pkg/math3d"
)

// Mesh is the triangle geometry of one glTF mesh in its local space.
type Mesh struct {
	Name      string
	Positions []math3d.Vec3d
	Normals   []math3d.Vec3d // empty when the source has none
	Faces     [][3]int

	BoundsMin math3d.Vec3d
	BoundsMax math3d.Vec3d
}

func readMesh(doc *gltf.Document, gm *gltf.Mesh) (*Mesh, error) {
	m := &Mesh{Name: gm.Name}
	for _, prim := range gm.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles {
			continue
		}
		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}
		positions, err := readVectors(doc, posIdx)
		if err != nil {
			return nil, fmt.Errorf("read positions: %w", err)
		}
		var normals []math3d.Vec4d
		if normIdx, ok := prim.Attributes[gltf.NORMAL]; ok {
			if normals, err = readVectors(doc, normIdx); err != nil {
				return nil, fmt.Errorf("read normals: %w", err)
			}
			if len(normals) != len(positions) {
				return nil, fmt.Errorf("%d normals for %d positions", len(normals), len(positions))
			}
		}

		base := len(m.Positions)
		var indices []int
		if prim.Indices != nil {
			if indices, err = readIndices(doc, *prim.Indices); err != nil {
				return nil, fmt.Errorf("read indices: %w", err)
			}
		} else {
			indices = make([]int, len(positions))
			for i := range indices {
				indices[i] = i
			}
		}
		for i := 0; i+2 < len(indices); i += 3 {
			f := [3]int{indices[i], indices[i+1], indices[i+2]}
			for _, v := range f {
				if v >= len(positions) {
					return nil, fmt.Errorf("index %d out of range (%d vertices)", v, len(positions))
				}
			}
			m.Faces = append(m.Faces, [3]int{base + f[0], base + f[1], base + f[2]})
		}

		for i, p := range positions {
			m.Positions = append(m.Positions, p.Vec3())
			if normals != nil {
				m.Normals = append(m.Normals, normals[i].Vec3())
			}
		}
	}
	// a mesh mixing primitives with and without normals drops them all
	if len(m.Normals) != len(m.Positions) {
		m.Normals = nil
	}
	m.CalculateBounds()
	return m, nil
}

// CalculateBounds recomputes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Positions) == 0 {
		m.BoundsMin, m.BoundsMax = math3d.Vec3d{}, math3d.Vec3d{}
		return
	}
	m.BoundsMin, m.BoundsMax = m.Positions[0], m.Positions[0]
	for _, p := range m.Positions[1:] {
		m.BoundsMin = m.BoundsMin.Min(p)
		m.BoundsMax = m.BoundsMax.Max(p)
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3d {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3d {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// FaceNormal returns the unit normal of face i from its winding.
func (m *Mesh) FaceNormal(i int) (math3d.Vec3d, error) {
	if i < 0 || i >= len(m.Faces) {
		return math3d.Vec3d{}, fmt.Errorf("face %d of %d: %w", i, len(m.Faces), math3d.ErrIndexOutOfRange)
	}
	f := m.Faces[i]
	v0 := m.Positions[f[0]]
	return m.Positions[f[1]].Sub(v0).Cross(m.Positions[f[2]].Sub(v0)).Normalize(), nil
}

// Transform returns a copy of the mesh with positions moved by mat and
// normals by the inverse transpose of its linear part, so non-uniform
// scale keeps them perpendicular to the surface. A singular mat fails.
func (m *Mesh) Transform(mat math3d.Mat4d) (*Mesh, error) {
	normalMat, err := mat.Mat3().Inverse()
	if err != nil {
		return nil, fmt.Errorf("mesh %q: normal matrix: %w", m.Name, err)
	}
	normalMat = normalMat.Transpose()

	out := &Mesh{
		Name:      m.Name,
		Positions: make([]math3d.Vec3d, len(m.Positions)),
		Faces:     make([][3]int, len(m.Faces)),
	}
	copy(out.Faces, m.Faces)
	for i, p := range m.Positions {
		out.Positions[i] = mat.MulVec3(p)
	}
	if m.Normals != nil {
		out.Normals = make([]math3d.Vec3d, len(m.Normals))
		for i, n := range m.Normals {
			out.Normals[i] = normalMat.MulVec3(n).Normalize()
		}
	}
	out.CalculateBounds()
	return out, nil
}

// WorldMesh returns the node's mesh in world space, or nil when the node
// has no mesh.
func (n *Node) WorldMesh() (*Mesh, error) {
	if n.Mesh == nil {
		return nil, nil
	}
	return n.Mesh.Transform(n.World)
}
