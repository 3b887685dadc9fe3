// spheretool is a CLI utility for inspecting and exporting sphere meshes.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Faultbox/spherewire/pkg/sphere"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "info":
		err = cmdInfo(args, os.Stdout)
	case "obj", "export":
		err = cmdOBJ(args, os.Stdout)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`spheretool - UV sphere mesh utility

Usage:
  spheretool <command> [options]

Commands:
  info [-stacks N] [-slices N] [-radius R]           Show mesh statistics
  obj  [-stacks N] [-slices N] [-radius R] [-o file]  Export mesh as Wavefront OBJ

Examples:
  spheretool info
  spheretool info -stacks 8 -slices 4
  spheretool obj -stacks 32 -slices 16 -radius 1 -o sphere.obj`)
}

// paramFlags registers the tessellation flags on fs, defaulting to the viewer sphere.
func paramFlags(fs *flag.FlagSet) func() sphere.Params {
	def := sphere.DefaultParams()
	stacks := fs.Int("stacks", def.Stacks, "Divisions around each ring")
	slices := fs.Int("slices", def.Slices, "Divisions from pole to pole")
	radius := fs.Float64("radius", float64(def.Radius), "Sphere radius")

	return func() sphere.Params {
		return sphere.Params{Stacks: *stacks, Slices: *slices, Radius: float32(*radius)}
	}
}

func cmdInfo(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("info", flag.ContinueOnError)
	params := paramFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	p := params()
	m, err := sphere.Generate(p)
	if err != nil {
		return err
	}

	lo, hi := m.Bounds()
	fmt.Fprintf(out, "Stacks:    %d\n", p.Stacks)
	fmt.Fprintf(out, "Slices:    %d\n", p.Slices)
	fmt.Fprintf(out, "Radius:    %g\n", p.Radius)
	fmt.Fprintf(out, "Rings:     %d\n", p.Slices+1)
	fmt.Fprintf(out, "Vertices:  %d (%d bytes)\n", m.VertexCount(), len(m.Vertices)*4)
	fmt.Fprintf(out, "Indices:   %d (%d bytes)\n", m.IndexCount(), len(m.Indices)*4)
	fmt.Fprintf(out, "Triangles: %d\n", m.TriangleCount())
	fmt.Fprintf(out, "Bounds:    (%.4f, %.4f, %.4f) - (%.4f, %.4f, %.4f)\n",
		lo[0], lo[1], lo[2], hi[0], hi[1], hi[2])
	return nil
}

func cmdOBJ(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("obj", flag.ContinueOnError)
	params := paramFlags(fs)
	output := fs.String("o", "", "Output file (default stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	m, err := sphere.Generate(params())
	if err != nil {
		return err
	}

	if *output == "" {
		return m.WriteOBJ(stdout)
	}

	f, err := os.Create(*output)
	if err != nil {
		return err
	}
	if err := m.WriteOBJ(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Wrote %d vertices, %d triangles to %s\n", m.VertexCount(), m.TriangleCount(), *output)
	return nil
}
