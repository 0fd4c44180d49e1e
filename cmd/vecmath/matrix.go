package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/taigrr/vecmath/pkg/math3d"
)

func newDetCmd(opts *options) *cobra.Command {
	var m []float64
	cmd := &cobra.Command{
		Use:   "det",
		Short: "Determinant of a 3x3 or 4x4 matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.precision == 32 {
				return runDet[float32](cmd.OutOrStdout(), m)
			}
			return runDet[float64](cmd.OutOrStdout(), m)
		},
	}
	cmd.Flags().Float64SliceVar(&m, "m", nil, "Matrix values, row-major (9 or 16)")
	_ = cmd.MarkFlagRequired("m")
	return cmd
}

func runDet[T math3d.Float](w io.Writer, vals []float64) error {
	switch len(vals) {
	case 9:
		m, _ := math3d.Mat3FromSlice(convert[T](vals))
		fmt.Fprintf(w, "%.6g\n", float64(m.Determinant()))
	case 16:
		m, _ := math3d.Mat4FromSlice(convert[T](vals))
		fmt.Fprintf(w, "%.6g\n", float64(m.Determinant()))
	default:
		return fmt.Errorf("--m wants 9 or 16 values, got %d: %w", len(vals), math3d.ErrInvalidArgument)
	}
	return nil
}

func newInvertCmd(opts *options) *cobra.Command {
	var m []float64
	cmd := &cobra.Command{
		Use:   "invert",
		Short: "Inverse of a 3x3 or 4x4 matrix",
		Long:  "Inverse of a 3x3 or 4x4 matrix. Fails when the determinant is exactly zero.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.precision == 32 {
				return runInvert[float32](cmd.OutOrStdout(), m)
			}
			return runInvert[float64](cmd.OutOrStdout(), m)
		},
	}
	cmd.Flags().Float64SliceVar(&m, "m", nil, "Matrix values, row-major (9 or 16)")
	_ = cmd.MarkFlagRequired("m")
	return cmd
}

func runInvert[T math3d.Float](w io.Writer, vals []float64) error {
	switch len(vals) {
	case 9:
		m, _ := math3d.Mat3FromSlice(convert[T](vals))
		inv, err := m.Inverse()
		if err != nil {
			return err
		}
		printMatrix(w, 3, inv.Slice())
	case 16:
		m, _ := math3d.Mat4FromSlice(convert[T](vals))
		inv, err := m.Inverse()
		if err != nil {
			return err
		}
		printMatrix(w, 4, inv.Slice())
	default:
		return fmt.Errorf("--m wants 9 or 16 values, got %d: %w", len(vals), math3d.ErrInvalidArgument)
	}
	return nil
}
