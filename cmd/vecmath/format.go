package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/taigrr/vecmath/pkg/math3d"
)

func convert[T math3d.Float](s []float64) []T {
	out := make([]T, len(s))
	for i, v := range s {
		out[i] = T(v)
	}
	return out
}

func formatValues[T math3d.Float](vals []T) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprintf("%.6g", float64(v))
	}
	return strings.Join(parts, ", ")
}

// printMatrix writes a row-major n x n matrix one row per line.
func printMatrix[T math3d.Float](w io.Writer, n int, vals []T) {
	for r := range n {
		fmt.Fprintf(w, "[%s]\n", formatValues(vals[r*n:(r+1)*n]))
	}
}

func printQuat[T math3d.Float](w io.Writer, q math3d.Quat[T]) {
	fmt.Fprintf(w, "(%s)\n", formatValues([]T{q.X, q.Y, q.Z, q.W}))
}

func parseQuat(vals []float64, name string) (math3d.Quatd, error) {
	v, err := math3d.Vec4FromSlice(vals)
	if err != nil {
		return math3d.Quatd{}, fmt.Errorf("--%s wants x,y,z,w: %w", name, err)
	}
	return math3d.Quatd{X: v.X, Y: v.Y, Z: v.Z, W: v.W}, nil
}
