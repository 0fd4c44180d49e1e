package scene

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/qmuntal/gltf"

	"github.com/taigrr/vecmath/pkg/math3d"
)

// readScalars reads a SCALAR float accessor (keyframe times).
func readScalars(doc *gltf.Document, idx int) ([]float64, error) {
	acc, data, stride, err := accessorBytes(doc, idx, gltf.AccessorScalar)
	if err != nil {
		return nil, err
	}
	out := make([]float64, acc.Count)
	for i := range out {
		out[i] = float64(readFloat32(data[i*stride:]))
	}
	return out, nil
}

// readVectors reads a VEC3 or VEC4 float accessor. VEC3 values come back
// with W = 0.
func readVectors(doc *gltf.Document, idx int) ([]math3d.Vec4d, error) {
	if idx < 0 || idx >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor %d out of range", idx)
	}
	typ := doc.Accessors[idx].Type
	if typ != gltf.AccessorVec3 && typ != gltf.AccessorVec4 {
		return nil, fmt.Errorf("expected VEC3 or VEC4, got %v", typ)
	}
	acc, data, stride, err := accessorBytes(doc, idx, typ)
	if err != nil {
		return nil, err
	}
	n := 3
	if typ == gltf.AccessorVec4 {
		n = 4
	}
	out := make([]math3d.Vec4d, acc.Count)
	for i := range out {
		var c [4]float64
		for j := range n {
			c[j] = float64(readFloat32(data[i*stride+j*4:]))
		}
		out[i] = math3d.V4(c[0], c[1], c[2], c[3])
	}
	return out, nil
}

// accessorBytes validates a float accessor and returns the bytes starting
// at its first element plus the element stride.
func accessorBytes(doc *gltf.Document, idx int, want gltf.AccessorType) (*gltf.Accessor, []byte, int, error) {
	if idx < 0 || idx >= len(doc.Accessors) {
		return nil, nil, 0, fmt.Errorf("accessor %d out of range", idx)
	}
	acc := doc.Accessors[idx]
	if acc.Type != want {
		return nil, nil, 0, fmt.Errorf("accessor %d: expected %v, got %v", idx, want, acc.Type)
	}
	if acc.ComponentType != gltf.ComponentFloat {
		return nil, nil, 0, fmt.Errorf("accessor %d: unsupported component type %v", idx, acc.ComponentType)
	}
	data, stride, err := viewBytes(doc, idx, 4*componentsOf(acc.Type))
	if err != nil {
		return nil, nil, 0, err
	}
	return acc, data, stride, nil
}

// readIndices reads an unsigned SCALAR accessor of vertex indices.
func readIndices(doc *gltf.Document, idx int) ([]int, error) {
	if idx < 0 || idx >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor %d out of range", idx)
	}
	acc := doc.Accessors[idx]
	if acc.Type != gltf.AccessorScalar {
		return nil, fmt.Errorf("accessor %d: expected SCALAR indices, got %v", idx, acc.Type)
	}
	var size int
	switch acc.ComponentType {
	case gltf.ComponentUbyte:
		size = 1
	case gltf.ComponentUshort:
		size = 2
	case gltf.ComponentUint:
		size = 4
	default:
		return nil, fmt.Errorf("accessor %d: unsupported index type %v", idx, acc.ComponentType)
	}
	data, stride, err := viewBytes(doc, idx, size)
	if err != nil {
		return nil, err
	}
	out := make([]int, acc.Count)
	for i := range out {
		b := data[i*stride:]
		switch size {
		case 1:
			out[i] = int(b[0])
		case 2:
			out[i] = int(binary.LittleEndian.Uint16(b))
		case 4:
			out[i] = int(binary.LittleEndian.Uint32(b))
		}
	}
	return out, nil
}

// viewBytes resolves accessor idx to its buffer bytes given the size of
// one element, checking every range along the way.
func viewBytes(doc *gltf.Document, idx, elem int) ([]byte, int, error) {
	acc := doc.Accessors[idx]
	if acc.BufferView == nil {
		return nil, 0, fmt.Errorf("accessor %d has no buffer view", idx)
	}
	if *acc.BufferView < 0 || *acc.BufferView >= len(doc.BufferViews) {
		return nil, 0, fmt.Errorf("accessor %d: buffer view %d out of range", idx, *acc.BufferView)
	}
	view := doc.BufferViews[*acc.BufferView]
	if view.Buffer < 0 || view.Buffer >= len(doc.Buffers) {
		return nil, 0, fmt.Errorf("buffer view %d: buffer %d out of range", *acc.BufferView, view.Buffer)
	}
	buf := doc.Buffers[view.Buffer]
	if buf.Data == nil {
		return nil, 0, fmt.Errorf("buffer %d has no data", view.Buffer)
	}

	stride := view.ByteStride
	if stride == 0 {
		stride = elem
	}
	start := view.ByteOffset + acc.ByteOffset
	end := start
	if acc.Count > 0 {
		end = start + (acc.Count-1)*stride + elem
	}
	if end > len(buf.Data) || end > view.ByteOffset+view.ByteLength {
		return nil, 0, fmt.Errorf("accessor %d overruns its buffer view", idx)
	}
	return buf.Data[start:end], stride, nil
}

func componentsOf(t gltf.AccessorType) int {
	switch t {
	case gltf.AccessorVec2:
		return 2
	case gltf.AccessorVec3:
		return 3
	case gltf.AccessorVec4:
		return 4
	}
	return 1
}

// readFloat32 reads a little-endian float32.
func readFloat32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}
