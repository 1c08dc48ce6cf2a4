package main

import (
	"fmt"
	"os"

	"github.com/EKlimova/rk9students/mesh"
	"github.com/EKlimova/rk9students/pov"
	"github.com/EKlimova/rk9students/preview"
	"github.com/EKlimova/rk9students/stl"
	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info FILE",
		Short: "Print mesh statistics and problem edge count",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := load(args[0], false)
			if err != nil {
				return err
			}
			bb := m.Bounds()
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "File: %s\n", args[0])
			fmt.Fprintf(w, "Triangles: %d\n", m.NumTriangles())
			fmt.Fprintf(w, "Vertices: %d (%d rogue)\n", m.NumVertices(), len(m.RogueVertices()))
			if !bb.Empty() {
				fmt.Fprintf(w, "Bounding box: %v - %v\n", bb.Min, bb.Max)
			}
			fmt.Fprintf(w, "Problem edges: %d\n", len(m.ProblemEdges()))
			return nil
		},
	}
}

func newFixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fix FILE",
		Short: "Stitch cracks by merging duplicated seam vertices",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := load(args[0], false)
			if err != nil {
				return err
			}
			report, err := m.FixCracks()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d problem edges, %d vertex pairs merged\n", report.ProblemEdges, report.MergedPairs)
			return stl.WriteFile(outPath, m, bufferWidth)
		},
	}
	addOutputFlags(cmd, false)
	return cmd
}

func newSmoothCmd() *cobra.Command {
	var (
		lambda, mu float64
		steps      int
	)
	cmd := &cobra.Command{
		Use:   "smooth FILE",
		Short: "Apply Taubin lambda|mu smoothing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := load(args[0], false)
			if err != nil {
				return err
			}
			m.TaubinSmooth(lambda, mu, steps)
			return stl.WriteFile(outPath, m, bufferWidth)
		},
	}
	addOutputFlags(cmd, true)
	cmd.Flags().Float64Var(&lambda, "lambda", 0.5, "shrinking pass scale")
	cmd.Flags().Float64Var(&mu, "mu", -0.53, "inflating pass scale")
	cmd.Flags().IntVar(&steps, "steps", 10, "number of lambda|mu rounds")
	return cmd
}

func newScaleCmd() *cobra.Command {
	var extent float64
	cmd := &cobra.Command{
		Use:   "scale FILE",
		Short: "Scale the mesh so its longest bounding box side has a given length",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := load(args[0], false)
			if err != nil {
				return err
			}
			if err := m.SetMaxExtent(extent); err != nil {
				return err
			}
			return stl.WriteFile(outPath, m, bufferWidth)
		},
	}
	addOutputFlags(cmd, true)
	cmd.Flags().Float64Var(&extent, "extent", 1, "length of the longest side")
	return cmd
}

func newPovCmd() *cobra.Command {
	var normals bool
	cmd := &cobra.Command{
		Use:   "pov FILE",
		Short: "Export as a POV-Ray mesh2 block",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := load(args[0], normals)
			if err != nil {
				return err
			}
			return pov.WriteFile(outPath, m, normals)
		},
	}
	addOutputFlags(cmd, true)
	cmd.Flags().BoolVar(&normals, "normals", false, "write vertex normals")
	return cmd
}

func newPreviewCmd() *cobra.Command {
	opts := preview.DefaultOptions()
	cmd := &cobra.Command{
		Use:   "preview FILE",
		Short: "Render a shaded PNG preview",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := load(args[0], false)
			if err != nil {
				return err
			}
			fp, err := os.Create(outPath)
			if err != nil {
				return &mesh.IOError{Op: "create", Path: outPath, Err: err}
			}
			defer fp.Close()
			if err := preview.WritePNG(fp, m, opts); err != nil {
				return err
			}
			if err := fp.Close(); err != nil {
				return &mesh.IOError{Op: "close", Path: outPath, Err: err}
			}
			return nil
		},
	}
	addOutputFlags(cmd, true)
	cmd.Flags().IntVar(&opts.Width, "width", opts.Width, "image width in pixels")
	cmd.Flags().IntVar(&opts.Height, "height", opts.Height, "image height in pixels")
	cmd.Flags().IntVar(&opts.Supersample, "supersample", opts.Supersample, "supersampling factor")
	return cmd
}
