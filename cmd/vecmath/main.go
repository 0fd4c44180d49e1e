// vecmath - geometry kernel from the command line.
//
// Subcommands:
//
//	det          Determinant of a 3x3 or 4x4 matrix
//	invert       Inverse of a 3x3 or 4x4 matrix
//	quat         Quaternion <-> rotation matrix conversion
//	slerp        Spherical interpolation between two quaternions
//	clip         Clip 2D segments against a rectangle (optionally to PNG)
//	scene        Print node transforms and animation poses of a glTF file
package main

import (
	"context"
	"fmt"
	"os"

	"fortio.org/log"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/taigrr/vecmath/pkg/math3d"
)

var version = "dev"

// options holds the persistent flags shared by every subcommand.
type options struct {
	precision int
	logLevel  string
}

func main() {
	if err := fang.Execute(context.Background(), newRootCmd(), fang.WithVersion(version)); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "vecmath",
		Short: "Matrix, quaternion and clipping kernel",
		Long: `vecmath - geometry kernel from the command line.

Matrices are given row-major as comma separated values (9 for 3x3, 16 for 4x4).
Quaternions are given as x,y,z,w.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.precision != 32 && opts.precision != 64 {
				return fmt.Errorf("--precision must be 32 or 64, got %d: %w", opts.precision, math3d.ErrInvalidArgument)
			}
			if err := log.SetLogLevelStr(opts.logLevel); err != nil {
				return fmt.Errorf("--log-level: %w", err)
			}
			return nil
		},
	}

	cmd.PersistentFlags().IntVar(&opts.precision, "precision", 64, "Scalar precision in bits (32 or 64)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, verbose, info, warning, error)")

	cmd.AddCommand(
		newDetCmd(opts),
		newInvertCmd(opts),
		newQuatCmd(opts),
		newSlerpCmd(opts),
		newClipCmd(opts),
		newSceneCmd(),
	)
	return cmd
}
