// Command meshfix loads binary STL meshes, repairs cracks left by
// duplicated seam vertices, smooths and rescales them, and exports the
// result as binary STL, POV-Ray mesh2 or a PNG preview.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/EKlimova/rk9students/mesh"
	"github.com/EKlimova/rk9students/stl"
	"github.com/spf13/cobra"
)

var (
	bufferWidth int
	quiet       bool
	strict      bool
	fixCracks   bool
	outPath     string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "meshfix:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	fixCracks, outPath = false, ""
	root := &cobra.Command{
		Use:           "meshfix",
		Short:         "Repair, smooth and convert binary STL meshes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.IntVar(&bufferWidth, "buffer", stl.DefaultBufferWidth, "triangles per read/write chunk")
	pf.BoolVarP(&quiet, "quiet", "q", false, "suppress progress output")
	pf.BoolVar(&strict, "strict", false, "reject NaN/Inf vertex coordinates")
	root.AddCommand(
		newInfoCmd(),
		newFixCmd(),
		newSmoothCmd(),
		newScaleCmd(),
		newPovCmd(),
		newPreviewCmd(),
	)
	return root
}

func observer() mesh.Observer {
	if quiet {
		return mesh.Discard
	}
	return log.New(os.Stderr, "meshfix: ", 0)
}

// load reads the STL file at path, repairing cracks first when
// --fix-cracks is set on the running command.
func load(path string, normals bool) (*mesh.Mesh, error) {
	m, err := stl.ReadFile(path, stl.ReadOptions{
		GenerateNormals: normals,
		BufferWidth:     bufferWidth,
		Strict:          strict,
		Observer:        observer(),
	})
	if err != nil {
		return nil, err
	}
	if fixCracks {
		if _, err := m.FixCracks(); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// addOutputFlags registers the flags shared by commands writing a mesh.
func addOutputFlags(cmd *cobra.Command, fix bool) {
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "output file")
	cmd.MarkFlagRequired("output")
	if fix {
		cmd.Flags().BoolVar(&fixCracks, "fix-cracks", false, "repair cracks before processing")
	}
}
