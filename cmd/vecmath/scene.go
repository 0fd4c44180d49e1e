package main

import (
	"fmt"
	"io"
	"strings"

	"fortio.org/log"
	"github.com/spf13/cobra"

	"github.com/taigrr/vecmath/pkg/scene"
)

func newSceneCmd() *cobra.Command {
	var (
		t         float64
		animation int
	)
	cmd := &cobra.Command{
		Use:   "scene <file.gltf|file.glb>",
		Short: "Print node world transforms and mesh bounds of a glTF file",
		Long: `Print the node hierarchy of a glTF file with each node's world
translation and rotation.

With --time, the selected animation is sampled at that time and the
animated world transforms are printed instead of the rest pose.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scene.Load(args[0])
			if err != nil {
				return err
			}
			sampled := cmd.Flags().Changed("time")
			return printScene(cmd.OutOrStdout(), s, sampled, animation, t)
		},
	}
	cmd.Flags().Float64Var(&t, "time", 0, "Sample the animation at this time in seconds")
	cmd.Flags().IntVar(&animation, "animation", 0, "Animation index used with --time")
	return cmd
}

func printScene(w io.Writer, s *scene.Scene, sampled bool, anim int, t float64) error {
	poses := s.RestPoses()
	if sampled {
		var err error
		if poses, err = s.Sample(anim, t); err != nil {
			return err
		}
		fmt.Fprintf(w, "Animation %d %q at t=%.3f\n", anim, s.Animations[anim].Name, t)
	}
	worlds, err := s.WorldMatrices(poses)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Nodes: %d, Animations: %d\n", len(s.Nodes), len(s.Animations))
	var walk func(n *scene.Node, depth int)
	walk = func(n *scene.Node, depth int) {
		m := worlds[n.Index]
		// strip scale before reading the rotation
		q := scene.PoseFromMatrix(m).Rotation
		name := n.Name
		if name == "" {
			name = fmt.Sprintf("node%d", n.Index)
		}
		tr := m.Translation()
		fmt.Fprintf(w, "%s%s  t=(%s) r=(%s)\n", strings.Repeat("  ", depth), name,
			formatValues([]float64{tr.X, tr.Y, tr.Z}),
			formatValues([]float64{q.X, q.Y, q.Z, q.W}))
		if n.Mesh != nil {
			if wm, err := n.Mesh.Transform(m); err != nil {
				log.Warnf("Skipping bounds of %s: %v", name, err)
			} else {
				fmt.Fprintf(w, "%s  mesh %q: %d faces, bounds (%s) .. (%s)\n", strings.Repeat("  ", depth), wm.Name, len(wm.Faces),
					formatValues([]float64{wm.BoundsMin.X, wm.BoundsMin.Y, wm.BoundsMin.Z}),
					formatValues([]float64{wm.BoundsMax.X, wm.BoundsMax.Y, wm.BoundsMax.Z}))
			}
		}
		for _, c := range n.Children {
			walk(c, depth+1)
		}
	}
	for _, r := range s.Roots {
		walk(r, 0)
	}
	return nil
}
