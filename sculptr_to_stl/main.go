// Command sculptr_to_stl converts a SculptrVR Data.csv point
// cloud back into a triangle mesh and saves it as an STL
// file.
//
// By default the exact boundary of the voxels is saved.
// With -smooth, the occupancy is interpolated and meshed
// with marching cubes instead.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model3d"
)

func main() {
	var outputPath string
	var boxSize float64
	var smooth bool
	var threshold float64
	flag.StringVar(&outputPath, "output", "output.stl", "output STL file")
	flag.Float64Var(&boxSize, "box-size", 1, "edge length of a voxel in the output mesh")
	flag.BoolVar(&smooth, "smooth", false, "mesh an interpolated surface with marching cubes")
	flag.Float64Var(&threshold, "threshold", 0.5, "minimum interpolated value for containment")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage:", os.Args[0], "[flags] <Data.csv>")
		flag.PrintDefaults()
		os.Exit(1)
	}
	flag.Parse()
	if len(flag.Args()) != 1 || boxSize <= 0 {
		flag.Usage()
	}

	r, err := os.Open(flag.Arg(0))
	essentials.Must(err)
	grid, err := ReadVoxelGrid(r, boxSize)
	r.Close()
	essentials.Must(err)
	log.Println("Loaded", grid.Len(), "voxels")

	var mesh *model3d.Mesh
	if smooth {
		solid := &VoxelSolid{Grid: grid, Threshold: threshold}
		mesh = model3d.MarchingCubesSearch(solid, boxSize/2, 8)
	} else {
		mesh = grid.Mesh()
	}
	log.Println("Saving", len(mesh.TriangleSlice()), "triangles to", outputPath)
	essentials.Must(mesh.SaveGroupedSTL(outputPath))
}
