package scene

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/qmuntal/gltf"

	"github.com/taigrr/vecmath/pkg/math3d"
)

// meshDoc holds one indexed triangle on the plane x + y = 1, instanced by
// a node scaled 2x along X.
func meshDoc() *gltf.Document {
	pos := float32Bytes(1, 0, 0, 0, 1, 0, 0, 1, 1)
	r := float32(1 / math.Sqrt2)
	nrm := float32Bytes(r, r, 0, r, r, 0, r, r, 0)
	idx := make([]byte, 8)
	for i, v := range []uint16{0, 1, 2} {
		binary.LittleEndian.PutUint16(idx[i*2:], v)
	}
	data := append(append(append([]byte{}, pos...), nrm...), idx...)

	return &gltf.Document{
		Buffers: []*gltf.Buffer{{ByteLength: len(data), Data: data}},
		BufferViews: []*gltf.BufferView{
			{Buffer: 0, ByteOffset: 0, ByteLength: len(pos)},
			{Buffer: 0, ByteOffset: len(pos), ByteLength: len(nrm)},
			{Buffer: 0, ByteOffset: len(pos) + len(nrm), ByteLength: 6},
		},
		Accessors: []*gltf.Accessor{
			{BufferView: gltf.Index(0), ComponentType: gltf.ComponentFloat, Count: 3, Type: gltf.AccessorVec3},
			{BufferView: gltf.Index(1), ComponentType: gltf.ComponentFloat, Count: 3, Type: gltf.AccessorVec3},
			{BufferView: gltf.Index(2), ComponentType: gltf.ComponentUshort, Count: 3, Type: gltf.AccessorScalar},
		},
		Meshes: []*gltf.Mesh{{
			Name: "tri",
			Primitives: []*gltf.Primitive{{
				Attributes: gltf.PrimitiveAttributes{gltf.POSITION: 0, gltf.NORMAL: 1},
				Indices:    gltf.Index(2),
			}},
		}},
		Nodes: []*gltf.Node{{Name: "stretched", Mesh: gltf.Index(0), Scale: [3]float64{2, 1, 1}}},
	}
}

func TestReadMesh(t *testing.T) {
	sc, err := FromDocument(meshDoc())
	if err != nil {
		t.Fatalf("FromDocument() error = %v", err)
	}
	if len(sc.Meshes) != 1 {
		t.Fatalf("got %d meshes, want 1", len(sc.Meshes))
	}
	m := sc.Meshes[0]
	if len(m.Positions) != 3 || len(m.Normals) != 3 || len(m.Faces) != 1 {
		t.Fatalf("mesh = %d positions, %d normals, %d faces", len(m.Positions), len(m.Normals), len(m.Faces))
	}
	if m.Faces[0] != [3]int{0, 1, 2} {
		t.Errorf("face = %v", m.Faces[0])
	}
	if want := math3d.V3(0.0, 0, 0); m.BoundsMin != want {
		t.Errorf("BoundsMin = %v, want %v", m.BoundsMin, want)
	}
	if want := math3d.V3(1.0, 1, 1); m.BoundsMax != want {
		t.Errorf("BoundsMax = %v, want %v", m.BoundsMax, want)
	}
	if sc.Nodes[0].Mesh != m {
		t.Error("node does not reference its mesh")
	}
}

func TestWorldMeshNormals(t *testing.T) {
	sc, err := FromDocument(meshDoc())
	if err != nil {
		t.Fatalf("FromDocument() error = %v", err)
	}
	wm, err := sc.Nodes[0].WorldMesh()
	if err != nil {
		t.Fatalf("WorldMesh() error = %v", err)
	}
	if want := math3d.V3(2.0, 0, 0); !wm.Positions[0].ApproxEqual(want, 1e-12) {
		t.Errorf("Positions[0] = %v, want %v", wm.Positions[0], want)
	}

	// the stretched plane is x/2 + y = 1
	want := math3d.V3(1.0, 2, 0).Normalize()
	for i, n := range wm.Normals {
		if !n.ApproxEqual(want, 1e-6) {
			t.Errorf("Normals[%d] = %v, want %v", i, n, want)
		}
	}
	fn, err := wm.FaceNormal(0)
	if err != nil {
		t.Fatal(err)
	}
	if !fn.ApproxEqual(want, 1e-12) {
		t.Errorf("FaceNormal(0) = %v, want %v", fn, want)
	}
	if got := wm.Size(); !got.ApproxEqual(math3d.V3(2.0, 1, 1), 1e-12) {
		t.Errorf("Size() = %v", got)
	}
}

func TestMeshTransformSingular(t *testing.T) {
	sc, err := FromDocument(meshDoc())
	if err != nil {
		t.Fatalf("FromDocument() error = %v", err)
	}
	flat := math3d.Scale(math3d.V3(1.0, 1, 0))
	if _, err := sc.Meshes[0].Transform(flat); !errors.Is(err, math3d.ErrSingularMatrix) {
		t.Errorf("Transform(flat) error = %v, want ErrSingularMatrix", err)
	}
	if _, err := sc.Meshes[0].FaceNormal(5); !errors.Is(err, math3d.ErrIndexOutOfRange) {
		t.Errorf("FaceNormal(5) error = %v, want ErrIndexOutOfRange", err)
	}
}

func TestReadMeshBadIndex(t *testing.T) {
	doc := meshDoc()
	binary.LittleEndian.PutUint16(doc.Buffers[0].Data[72+4:], 9)
	if _, err := FromDocument(doc); err == nil {
		t.Error("FromDocument() accepted an out of range vertex index")
	}
}
