package scene

import (
	"fmt"
	"math"
	"sort"

	"fortio.org/log"
	"github.com/qmuntal/gltf"

	"github.com/taigrr/vecmath/pkg/math3d"
)

// Path names the node property a channel drives.
type Path int

const (
	PathTranslation Path = iota
	PathRotation
	PathScale
)

func (p Path) String() string {
	switch p {
	case PathTranslation:
		return "translation"
	case PathRotation:
		return "rotation"
	case PathScale:
		return "scale"
	}
	return fmt.Sprintf("Path(%d)", int(p))
}

// Interpolation is the keyframe blending mode of a channel.
type Interpolation int

const (
	Linear Interpolation = iota
	Step
)

// Channel is one animated property of one node. Values holds xyz for
// translation and scale, xyzw for rotation.
type Channel struct {
	Node          int
	Path          Path
	Interpolation Interpolation
	Times         []float64
	Values        []math3d.Vec4d
}

// Animation is a named set of channels.
type Animation struct {
	Name     string
	Channels []Channel
	Duration float64
}

func readAnimation(doc *gltf.Document, ga *gltf.Animation) (*Animation, error) {
	a := &Animation{Name: ga.Name}
	for ci, gc := range ga.Channels {
		if gc.Target.Node == nil {
			log.Debugf("animation %q channel %d: no target node, skipping", ga.Name, ci)
			continue
		}
		var path Path
		switch gc.Target.Path {
		case gltf.TRSTranslation:
			path = PathTranslation
		case gltf.TRSRotation:
			path = PathRotation
		case gltf.TRSScale:
			path = PathScale
		default:
			log.Debugf("animation %q channel %d: morph weights not supported, skipping", ga.Name, ci)
			continue
		}
		if gc.Sampler < 0 || gc.Sampler >= len(ga.Samplers) {
			return nil, fmt.Errorf("channel %d: sampler %d out of range", ci, gc.Sampler)
		}
		gs := ga.Samplers[gc.Sampler]

		var interp Interpolation
		switch gs.Interpolation {
		case gltf.InterpolationLinear:
			interp = Linear
		case gltf.InterpolationStep:
			interp = Step
		default:
			log.Warnf("animation %q channel %d: cubic spline interpolation not supported, skipping", ga.Name, ci)
			continue
		}

		times, err := readScalars(doc, gs.Input)
		if err != nil {
			return nil, fmt.Errorf("channel %d input: %w", ci, err)
		}
		values, err := readVectors(doc, gs.Output)
		if err != nil {
			return nil, fmt.Errorf("channel %d output: %w", ci, err)
		}
		if len(times) == 0 || len(times) != len(values) {
			return nil, fmt.Errorf("channel %d: %d keyframe times for %d values", ci, len(times), len(values))
		}
		if !sort.Float64sAreSorted(times) {
			return nil, fmt.Errorf("channel %d: keyframe times not increasing", ci)
		}

		a.Channels = append(a.Channels, Channel{
			Node:          *gc.Target.Node,
			Path:          path,
			Interpolation: interp,
			Times:         times,
			Values:        values,
		})
		a.Duration = max(a.Duration, times[len(times)-1])
	}
	return a, nil
}

// Sample evaluates animation anim at time t (seconds) on top of the rest
// poses and returns the per-node poses. Times outside the keyframe range
// hold the first or last key. t must be finite.
func (s *Scene) Sample(anim int, t float64) ([]Pose, error) {
	if anim < 0 || anim >= len(s.Animations) {
		return nil, fmt.Errorf("animation %d out of range (have %d)", anim, len(s.Animations))
	}
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return nil, fmt.Errorf("sample time %v: %w", t, math3d.ErrInvalidArgument)
	}
	poses := s.RestPoses()
	for _, c := range s.Animations[anim].Channels {
		if c.Node < 0 || c.Node >= len(poses) {
			return nil, fmt.Errorf("channel targets node %d out of range", c.Node)
		}
		v, err := c.sample(t)
		if err != nil {
			return nil, err
		}
		p := &poses[c.Node]
		switch c.Path {
		case PathTranslation:
			p.Translation = v.Vec3()
		case PathScale:
			p.Scale = v.Vec3()
		case PathRotation:
			p.Rotation = math3d.Quatd{X: v.X, Y: v.Y, Z: v.Z, W: v.W}
		}
	}
	return poses, nil
}

// keyframe returns the index i with Times[i] <= t < Times[i+1] and the
// blend factor between them, clamped to the first and last key.
func (c Channel) keyframe(t float64) (int, float64) {
	n := len(c.Times)
	if t <= c.Times[0] || n == 1 {
		return 0, 0
	}
	if t >= c.Times[n-1] {
		return n - 1, 0
	}
	i := sort.SearchFloat64s(c.Times, t)
	if c.Times[i] > t {
		i--
	}
	span := c.Times[i+1] - c.Times[i]
	if span <= 0 {
		return i, 0
	}
	return i, (t - c.Times[i]) / span
}

func (c Channel) sample(t float64) (math3d.Vec4d, error) {
	i, alpha := c.keyframe(t)
	if alpha == 0 || c.Interpolation == Step {
		return c.Values[i], nil
	}
	a, b := c.Values[i], c.Values[i+1]

	if c.Path == PathRotation {
		qa := math3d.Quatd{X: a.X, Y: a.Y, Z: a.Z, W: a.W}
		qb := math3d.Quatd{X: b.X, Y: b.Y, Z: b.Z, W: b.W}
		q := qa.Slerp(qb, alpha).Normalize()
		return math3d.V4(q.X, q.Y, q.Z, q.W), nil
	}

	v, err := a.Vec3().Lerp(b.Vec3(), alpha)
	if err != nil {
		return math3d.Vec4d{}, fmt.Errorf("%s channel: %w", c.Path, err)
	}
	return math3d.V4FromV3(v, 0), nil
}
