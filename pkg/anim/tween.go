// Package anim animates rotations between two orientations with spring
// physics.
package anim

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/taigrr/vecmath/pkg/math3d"
)

// settleEps is how close to the target, in both position and velocity,
// the spring has to be before the tween reports Done.
const settleEps = 1e-4

// RotationTween eases from one orientation to another. A spring drives the
// blend factor from 0 towards 1 and the orientation is the Slerp of the
// endpoints at that factor. Under-damped springs overshoot past 1, which
// carries the rotation slightly beyond the target before settling back.
//
// A RotationTween is not safe for concurrent use.
type RotationTween struct {
	From, To math3d.Quatd

	spring harmonica.Spring
	alpha  float64
	vel    float64
}

// NewRotationTween creates a tween updated fps times per second.
// frequency controls speed, damping controls overshoot (1 = critically
// damped, no overshoot).
func NewRotationTween(from, to math3d.Quatd, fps int, frequency, damping float64) *RotationTween {
	return &RotationTween{
		From:   from,
		To:     to,
		spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
	}
}

// Update advances the spring by one frame and returns the new orientation.
func (r *RotationTween) Update() math3d.Quatd {
	r.alpha, r.vel = r.spring.Update(r.alpha, r.vel, 1)
	return r.Current()
}

// Current returns the orientation at the current blend factor.
func (r *RotationTween) Current() math3d.Quatd {
	return r.From.Slerp(r.To, r.alpha)
}

// Alpha returns the current blend factor. It can leave [0, 1] while an
// under-damped spring overshoots.
func (r *RotationTween) Alpha() float64 {
	return r.alpha
}

// Done reports whether the spring has settled on the target.
func (r *RotationTween) Done() bool {
	return math.Abs(1-r.alpha) < settleEps && math.Abs(r.vel) < settleEps
}

// Retarget starts a new tween from the current orientation to to, keeping
// the spring's momentum out of the blend.
func (r *RotationTween) Retarget(to math3d.Quatd) {
	r.From = r.Current().Normalize()
	r.To = to
	r.alpha, r.vel = 0, 0
}

// Run advances until the tween settles or maxFrames have elapsed, calling
// fn with every frame's orientation. It returns the number of frames run.
func (r *RotationTween) Run(maxFrames int, fn func(frame int, q math3d.Quatd)) int {
	for i := range maxFrames {
		q := r.Update()
		if fn != nil {
			fn(i, q)
		}
		if r.Done() {
			return i + 1
		}
	}
	return maxFrames
}
