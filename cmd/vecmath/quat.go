package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/taigrr/vecmath/pkg/anim"
	"github.com/taigrr/vecmath/pkg/math3d"
)

func newQuatCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quat",
		Short: "Quaternion <-> rotation matrix conversion",
	}

	var m []float64
	fromMatrix := &cobra.Command{
		Use:   "from-matrix",
		Short: "Extract the rotation quaternion of a 3x3 or 4x4 matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.precision == 32 {
				return runQuatFromMatrix[float32](cmd.OutOrStdout(), m)
			}
			return runQuatFromMatrix[float64](cmd.OutOrStdout(), m)
		},
	}
	fromMatrix.Flags().Float64SliceVar(&m, "m", nil, "Matrix values, row-major (9 or 16)")
	_ = fromMatrix.MarkFlagRequired("m")

	var q []float64
	var size int
	toMatrix := &cobra.Command{
		Use:   "to-matrix",
		Short: "Rotation matrix of a unit quaternion",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.precision == 32 {
				return runQuatToMatrix[float32](cmd.OutOrStdout(), q, size)
			}
			return runQuatToMatrix[float64](cmd.OutOrStdout(), q, size)
		},
	}
	toMatrix.Flags().Float64SliceVar(&q, "q", nil, "Quaternion x,y,z,w")
	toMatrix.Flags().IntVar(&size, "size", 3, "Output matrix size (3 or 4)")
	_ = toMatrix.MarkFlagRequired("q")

	cmd.AddCommand(fromMatrix, toMatrix)
	return cmd
}

func runQuatFromMatrix[T math3d.Float](w io.Writer, vals []float64) error {
	var q math3d.Quat[T]
	switch len(vals) {
	case 9:
		m, _ := math3d.Mat3FromSlice(convert[T](vals))
		q = math3d.QuatFromMat3(m)
	case 16:
		m, _ := math3d.Mat4FromSlice(convert[T](vals))
		q = math3d.QuatFromMat4(m)
	default:
		return fmt.Errorf("--m wants 9 or 16 values, got %d: %w", len(vals), math3d.ErrInvalidArgument)
	}
	printQuat(w, q)
	return nil
}

func runQuatToMatrix[T math3d.Float](w io.Writer, vals []float64, size int) error {
	v, err := math3d.Vec4FromSlice(convert[T](vals))
	if err != nil {
		return fmt.Errorf("--q wants x,y,z,w: %w", err)
	}
	q := math3d.Quat[T]{X: v.X, Y: v.Y, Z: v.Z, W: v.W}
	switch size {
	case 3:
		printMatrix(w, 3, q.Mat3().Slice())
	case 4:
		printMatrix(w, 4, q.Mat4().Slice())
	default:
		return fmt.Errorf("--size must be 3 or 4, got %d: %w", size, math3d.ErrInvalidArgument)
	}
	return nil
}

type slerpFlags struct {
	from, to  []float64
	alpha     float64
	steps     int
	spring    bool
	fps       int
	frequency float64
	damping   float64
}

func newSlerpCmd(opts *options) *cobra.Command {
	f := &slerpFlags{}
	cmd := &cobra.Command{
		Use:   "slerp",
		Short: "Spherical interpolation between two quaternions",
		Long: `Spherical interpolation between two quaternions along the shorter arc.

--alpha is not limited to [0, 1]; values outside extrapolate.
--steps N prints N+1 evenly spaced samples from 0 to 1 instead.
--spring prints one sample per frame of a spring-driven tween until it settles.
The spring always runs in float64; --precision does not apply to it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.precision == 32 {
				return runSlerp[float32](cmd.OutOrStdout(), f)
			}
			return runSlerp[float64](cmd.OutOrStdout(), f)
		},
	}
	cmd.Flags().Float64SliceVar(&f.from, "from", []float64{0, 0, 0, 1}, "Start quaternion x,y,z,w")
	cmd.Flags().Float64SliceVar(&f.to, "to", nil, "End quaternion x,y,z,w")
	cmd.Flags().Float64Var(&f.alpha, "alpha", 0.5, "Blend factor")
	cmd.Flags().IntVar(&f.steps, "steps", 0, "Print this many evenly spaced intervals instead of one sample")
	cmd.Flags().BoolVar(&f.spring, "spring", false, "Animate with a spring instead of a fixed alpha (always float64)")
	cmd.Flags().IntVar(&f.fps, "fps", 60, "Spring update rate")
	cmd.Flags().Float64Var(&f.frequency, "frequency", 6, "Spring angular frequency")
	cmd.Flags().Float64Var(&f.damping, "damping", 1, "Spring damping ratio (1 = no overshoot)")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func runSlerp[T math3d.Float](w io.Writer, f *slerpFlags) error {
	from, err := parseQuat(f.from, "from")
	if err != nil {
		return err
	}
	to, err := parseQuat(f.to, "to")
	if err != nil {
		return err
	}

	if f.spring {
		if f.fps <= 0 {
			return fmt.Errorf("--fps must be positive: %w", math3d.ErrInvalidArgument)
		}
		tw := anim.NewRotationTween(from, to, f.fps, f.frequency, f.damping)
		tw.Run(f.fps*30, func(frame int, q math3d.Quatd) {
			fmt.Fprintf(w, "%4d alpha=%-9.4f ", frame, tw.Alpha())
			printQuat(w, q)
		})
		return nil
	}

	q1 := math3d.Quat[T]{X: T(from.X), Y: T(from.Y), Z: T(from.Z), W: T(from.W)}
	q2 := math3d.Quat[T]{X: T(to.X), Y: T(to.Y), Z: T(to.Z), W: T(to.W)}
	if f.steps <= 0 {
		printQuat(w, q1.Slerp(q2, T(f.alpha)))
		return nil
	}
	for i := 0; i <= f.steps; i++ {
		a := T(i) / T(f.steps)
		fmt.Fprintf(w, "%.4f ", float64(a))
		printQuat(w, q1.Slerp(q2, a))
	}
	return nil
}
