// Command mesh_to_sculptr converts a triangle mesh into a
// SculptrVR Data.csv voxel point cloud.
//
// The mesh is scaled to fit the cube [-1, 1]^3 and split
// into resolution voxels along each axis. The mesh is
// assumed to be Y-up.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/unixpickle/essentials"
	"github.com/unixpickle/mesh2sculptr/mesh"
	"github.com/unixpickle/mesh2sculptr/sculptr"
	"github.com/unixpickle/mesh2sculptr/voxels"
)

const (
	CSVFilename = "Data.csv"
	OBJFilename = "out.obj"
)

type Options struct {
	InputPath  string
	Resolution int
	Fill       bool
	OBJViz     bool
	OutputDir  string
}

func main() {
	opts, err := parseArgs(os.Args[1:], os.Stderr)
	if err != nil {
		if err != flag.ErrHelp {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
	essentials.Must(Run(opts))
}

// parseArgs parses flags both before and after the input
// path. Everything after a "--" terminator is positional.
func parseArgs(args []string, output io.Writer) (*Options, error) {
	opts := &Options{}
	fs := flag.NewFlagSet("mesh_to_sculptr", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.IntVar(&opts.Resolution, "resolution", 100, "number of voxels along each axis")
	fs.BoolVar(&opts.Fill, "fill", false, "attempt to fill the inside of the mesh with voxels")
	fs.BoolVar(&opts.OBJViz, "objviz", false, "also output "+OBJFilename+" showing the voxelization")
	fs.StringVar(&opts.OutputDir, "output-dir", ".", "directory for output files")
	fs.Usage = func() {
		fmt.Fprintln(output, "Usage: mesh_to_sculptr [flags] <input.obj|.off|.stl>")
		fmt.Fprintln(output)
		fs.PrintDefaults()
	}

	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		if consumed := len(args) - fs.NArg(); consumed > 0 && args[consumed-1] == "--" {
			positional = append(positional, fs.Args()...)
			break
		}
		if fs.NArg() == 0 {
			break
		}
		positional = append(positional, fs.Arg(0))
		args = fs.Args()[1:]
	}

	if len(positional) != 1 {
		fs.Usage()
		return nil, errors.Errorf("expected exactly one input file, got %d", len(positional))
	}
	opts.InputPath = positional[0]
	if opts.Resolution <= 0 {
		return nil, errors.Wrapf(voxels.ErrInvalidResolution, "resolution must be positive, got %d",
			opts.Resolution)
	}
	return opts, nil
}

// Run performs a full conversion, writing outputs into
// opts.OutputDir.
func Run(opts *Options) error {
	subs, err := mesh.Load(opts.InputPath)
	if err != nil {
		return err
	}

	log.Println("Gathering mesh data for", len(subs), "models...")
	m, err := mesh.Assemble(subs)
	if err != nil {
		return err
	}

	log.Println("Scaling model to fit -1..1 bounding box...")
	if _, err := m.Normalize(); err != nil {
		return err
	}

	log.Println("Voxelizing...")
	boxSize, err := voxels.BoxSize(opts.Resolution)
	if err != nil {
		return err
	}
	grid, err := voxels.VoxelizeIndices(m.Vertices, m.Indices(), boxSize)
	if err != nil {
		return err
	}

	if opts.Fill {
		log.Println("Filling gaps...")
		grid.Fill()
	}

	if opts.OBJViz {
		log.Println("Outputting OBJ visualization...")
		vertices, indices := grid.VerticesIndices()
		err := writeFile(filepath.Join(opts.OutputDir, OBJFilename), func(w io.Writer) error {
			return sculptr.WriteOBJ(w, vertices, indices)
		})
		if err != nil {
			return err
		}
	}

	log.Println("Writing", CSVFilename+"...")
	level, err := sculptr.GridLevel(grid)
	if err != nil {
		return err
	}
	records := sculptr.Records(grid, level, sculptr.DefaultColor)
	return writeFile(filepath.Join(opts.OutputDir, CSVFilename), func(w io.Writer) error {
		return sculptr.WriteCSV(w, records)
	})
}

func writeFile(path string, write func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	bw := bufio.NewWriter(f)
	if err := write(bw); err != nil {
		f.Close()
		return errors.Wrapf(err, "write %s", path)
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return errors.Wrapf(err, "write %s", path)
	}
	return errors.Wrapf(f.Close(), "write %s", path)
}
