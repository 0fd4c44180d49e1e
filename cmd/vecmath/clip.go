package main

import (
	"fmt"
	"io"

	"fortio.org/log"
	"github.com/spf13/cobra"

	"github.com/taigrr/vecmath/pkg/math3d"
	"github.com/taigrr/vecmath/pkg/plot"
)

type clipFlags struct {
	rect []float64
	segs []float64
	png  string
	size int
}

func newClipCmd(opts *options) *cobra.Command {
	f := &clipFlags{}
	cmd := &cobra.Command{
		Use:   "clip",
		Short: "Clip 2D segments against a rectangle",
		Long: `Clip 2D segments against an axis-aligned rectangle.

The rectangle covers [minX, minX+width) x [minY, minY+height).
Each segment prints its clipped endpoints, or "outside" when no part is visible.`,
		Example: `  vecmath clip --rect 0,0,10,10 --seg -5,5,5,5 --seg 2,2,20,8
  vecmath clip --rect 0,0,10,10 --seg -5,5,5,5 --png preview.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.precision == 32 {
				return runClip[float32](cmd.OutOrStdout(), f)
			}
			return runClip[float64](cmd.OutOrStdout(), f)
		},
	}
	cmd.Flags().Float64SliceVar(&f.rect, "rect", nil, "Clip rectangle minX,minY,width,height")
	cmd.Flags().Float64SliceVar(&f.segs, "seg", nil, "Segment x0,y0,x1,y1 (repeatable)")
	cmd.Flags().StringVar(&f.png, "png", "", "Also write a preview image to this path")
	cmd.Flags().IntVar(&f.size, "size", 512, "Preview image size in pixels")
	_ = cmd.MarkFlagRequired("rect")
	_ = cmd.MarkFlagRequired("seg")
	return cmd
}

func parseSegments[T math3d.Float](vals []float64) ([]math3d.Segment2[T], error) {
	if len(vals) == 0 || len(vals)%4 != 0 {
		return nil, fmt.Errorf("--seg wants groups of 4 values, got %d: %w", len(vals), math3d.ErrInvalidArgument)
	}
	segs := make([]math3d.Segment2[T], 0, len(vals)/4)
	for i := 0; i < len(vals); i += 4 {
		segs = append(segs, math3d.Seg(
			math3d.V2(T(vals[i]), T(vals[i+1])),
			math3d.V2(T(vals[i+2]), T(vals[i+3])),
		))
	}
	return segs, nil
}

func parseRect[T math3d.Float](vals []float64) (math3d.Rect[T], error) {
	if len(vals) != 4 {
		return math3d.Rect[T]{}, fmt.Errorf("--rect wants minX,minY,width,height: %w", math3d.ErrInvalidArgument)
	}
	if vals[2] <= 0 || vals[3] <= 0 {
		return math3d.Rect[T]{}, fmt.Errorf("--rect needs a positive width and height: %w", math3d.ErrInvalidArgument)
	}
	return math3d.R(T(vals[0]), T(vals[1]), T(vals[2]), T(vals[3])), nil
}

func runClip[T math3d.Float](w io.Writer, f *clipFlags) error {
	rect, err := parseRect[T](f.rect)
	if err != nil {
		return err
	}
	segs, err := parseSegments[T](f.segs)
	if err != nil {
		return err
	}

	for i, s := range segs {
		cs, ok := s.Clip(rect)
		if !ok {
			fmt.Fprintf(w, "%d: outside\n", i)
			continue
		}
		fmt.Fprintf(w, "%d: (%s) -> (%s)\n", i,
			formatValues([]T{cs.Start.X, cs.Start.Y}),
			formatValues([]T{cs.End.X, cs.End.Y}))
	}

	if f.png == "" {
		return nil
	}
	// The preview always renders in float64.
	rectd, _ := parseRect[float64](f.rect)
	segsd, _ := parseSegments[float64](f.segs)
	c, clipped, err := plot.ClipPreview(rectd, segsd, f.size)
	if err != nil {
		return err
	}
	if err := c.SavePNG(f.png); err != nil {
		return err
	}
	log.Infof("Wrote %s (%d of %d segments visible)", f.png, len(clipped), len(segsd))
	return nil
}
