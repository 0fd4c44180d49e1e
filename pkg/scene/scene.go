// Package scene reads the transform hierarchy and animation curves of a
// glTF document and evaluates them with the math3d kernel.
package scene

import (
	"fmt"

	"fortio.org/log"
	"github.com/qmuntal/gltf"

	"github.com/taigrr/vecmath/pkg/math3d"
)

// Scene is the node hierarchy of a glTF document. It is read-only after
// loading and safe for concurrent use.
type Scene struct {
	Name       string
	Nodes      []*Node
	Roots      []*Node
	Meshes     []*Mesh
	Animations []*Animation
}

// Node is one glTF node with its rest pose and accumulated world matrix.
type Node struct {
	Index    int
	Name     string
	Parent   *Node
	Children []*Node

	// Rest is the node's local transform decomposed into TRS.
	Rest  Pose
	Local math3d.Mat4d
	World math3d.Mat4d

	Mesh *Mesh
}

// Load opens a .gltf or .glb file.
func Load(path string) (*Scene, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}
	return FromDocument(doc)
}

// FromDocument builds a Scene from an already decoded glTF document.
func FromDocument(doc *gltf.Document) (*Scene, error) {
	s := &Scene{Nodes: make([]*Node, len(doc.Nodes))}

	for i, gm := range doc.Meshes {
		m, err := readMesh(doc, gm)
		if err != nil {
			return nil, fmt.Errorf("mesh %d: %w", i, err)
		}
		s.Meshes = append(s.Meshes, m)
	}

	for i, gn := range doc.Nodes {
		rest, local, err := localTransform(gn)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
		s.Nodes[i] = &Node{
			Index: i,
			Name:  gn.Name,
			Rest:  rest,
			Local: local,
		}
		if gn.Mesh != nil {
			if *gn.Mesh < 0 || *gn.Mesh >= len(s.Meshes) {
				return nil, fmt.Errorf("node %d: mesh %d out of range", i, *gn.Mesh)
			}
			s.Nodes[i].Mesh = s.Meshes[*gn.Mesh]
		}
	}

	for i, gn := range doc.Nodes {
		for _, c := range gn.Children {
			if c < 0 || c >= len(s.Nodes) {
				return nil, fmt.Errorf("node %d: child index %d out of range", i, c)
			}
			child := s.Nodes[c]
			if child.Parent != nil {
				return nil, fmt.Errorf("node %d has two parents (%d, %d)", c, child.Parent.Index, i)
			}
			child.Parent = s.Nodes[i]
			s.Nodes[i].Children = append(s.Nodes[i].Children, child)
		}
	}

	roots, name, err := sceneRoots(doc, s.Nodes)
	if err != nil {
		return nil, err
	}
	s.Roots, s.Name = roots, name

	for _, r := range s.Roots {
		r.updateWorld(math3d.Identity4[float64]())
	}

	for i, ga := range doc.Animations {
		a, err := readAnimation(doc, ga)
		if err != nil {
			return nil, fmt.Errorf("animation %d: %w", i, err)
		}
		s.Animations = append(s.Animations, a)
	}

	log.Debugf("scene %q: %d nodes, %d roots, %d meshes, %d animations",
		s.Name, len(s.Nodes), len(s.Roots), len(s.Meshes), len(s.Animations))
	return s, nil
}

// sceneRoots returns the root nodes of the default scene, or every
// parentless node when the document has no scenes.
func sceneRoots(doc *gltf.Document, nodes []*Node) ([]*Node, string, error) {
	if len(doc.Scenes) == 0 {
		var roots []*Node
		for _, n := range nodes {
			if n.Parent == nil {
				roots = append(roots, n)
			}
		}
		return roots, "", nil
	}

	sceneIdx := 0
	if doc.Scene != nil {
		sceneIdx = *doc.Scene
	}
	if sceneIdx < 0 || sceneIdx >= len(doc.Scenes) {
		return nil, "", fmt.Errorf("default scene %d out of range", sceneIdx)
	}
	gs := doc.Scenes[sceneIdx]
	roots := make([]*Node, 0, len(gs.Nodes))
	for _, idx := range gs.Nodes {
		if idx < 0 || idx >= len(nodes) {
			return nil, "", fmt.Errorf("scene root %d out of range", idx)
		}
		roots = append(roots, nodes[idx])
	}
	return roots, gs.Name, nil
}

func (n *Node) updateWorld(parent math3d.Mat4d) {
	n.World = parent.Mul(n.Local)
	for _, c := range n.Children {
		c.updateWorld(n.World)
	}
}

// WorldInverse returns the inverse of the node's world matrix, the
// transform from world space into the node's local space.
func (n *Node) WorldInverse() (math3d.Mat4d, error) {
	inv, err := n.World.Inverse()
	if err != nil {
		log.Warnf("node %d (%s) has a singular world matrix", n.Index, n.Name)
		return math3d.Mat4d{}, fmt.Errorf("node %q: %w", n.Name, err)
	}
	return inv, nil
}

// WorldRotation returns the node's world-space orientation.
func (n *Node) WorldRotation() math3d.Quatd {
	return PoseFromMatrix(n.World).Rotation
}

// Find returns the first node with the given name.
func (s *Scene) Find(name string) (*Node, bool) {
	for _, n := range s.Nodes {
		if n.Name == name {
			return n, true
		}
	}
	return nil, false
}

// RestPoses returns a copy of every node's rest pose, indexed like Nodes.
func (s *Scene) RestPoses() []Pose {
	poses := make([]Pose, len(s.Nodes))
	for i, n := range s.Nodes {
		poses[i] = n.Rest
	}
	return poses
}

// WorldMatrices composes per-node poses down the hierarchy and returns the
// resulting world matrices, indexed like Nodes.
func (s *Scene) WorldMatrices(poses []Pose) ([]math3d.Mat4d, error) {
	if len(poses) != len(s.Nodes) {
		return nil, fmt.Errorf("got %d poses for %d nodes", len(poses), len(s.Nodes))
	}
	world := make([]math3d.Mat4d, len(s.Nodes))
	var walk func(n *Node, parent math3d.Mat4d)
	walk = func(n *Node, parent math3d.Mat4d) {
		world[n.Index] = parent.Mul(poses[n.Index].Matrix())
		for _, c := range n.Children {
			walk(c, world[n.Index])
		}
	}
	for _, r := range s.Roots {
		walk(r, math3d.Identity4[float64]())
	}
	return world, nil
}

var identityMatrix = [16]float64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}

// localTransform returns a node's rest pose and T * R * S, or the
// decomposition of its explicit matrix when one is set.
func localTransform(gn *gltf.Node) (Pose, math3d.Mat4d, error) {
	if gn.Matrix != identityMatrix && gn.Matrix != [16]float64{} {
		m, err := math3d.Mat4FromColumnMajor(gn.Matrix[:])
		if err != nil {
			return Pose{}, m, err
		}
		return PoseFromMatrix(m), m, nil
	}
	p := poseFromNode(gn)
	return p, p.Matrix(), nil
}
