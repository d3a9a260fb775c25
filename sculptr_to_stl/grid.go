package main

import (
	"io"
	"math"

	"github.com/pkg/errors"
	"github.com/unixpickle/mesh2sculptr/sculptr"
	"github.com/unixpickle/mesh2sculptr/voxels"
	"github.com/unixpickle/model3d/model3d"
)

// A VoxelSolid is a smoothed model3d.Solid built from an
// occupancy grid.
type VoxelSolid struct {
	Grid *voxels.Grid

	// Threshold can be set to change the behavior of the
	// solid containment check.
	Threshold float64
}

// ReadVoxelGrid reads the cells of a Data.csv point cloud,
// converting them back to the Y-up convention.
func ReadVoxelGrid(r io.Reader, boxSize float64) (*voxels.Grid, error) {
	records, err := sculptr.ReadCSV(r)
	if err != nil {
		return nil, errors.Wrap(err, "read voxel grid")
	}
	if len(records) == 0 {
		return nil, errors.New("read voxel grid: no voxels")
	}
	grid := voxels.NewGrid(boxSize)
	for _, rec := range records {
		grid.Add(rec.Coord())
	}
	return grid, nil
}

// Min gets the minimum of the bounding box, padded by one
// cell so the surface is closed.
func (v *VoxelSolid) Min() model3d.Coord3D {
	return v.Grid.Min().Sub(v.padding())
}

// Max gets the maximum of the bounding box, padded by one
// cell.
func (v *VoxelSolid) Max() model3d.Coord3D {
	return v.Grid.Max().Add(v.padding())
}

// Contains checks if the value at the point is greater
// than the threshold.
func (v *VoxelSolid) Contains(c model3d.Coord3D) bool {
	return v.Interp(c) >= v.Threshold
}

// Interp gets a trilinear interpolated occupancy for the
// grid at the given point, treating cell centers as
// samples.
func (v *VoxelSolid) Interp(c model3d.Coord3D) float64 {
	c = c.Scale(1 / v.Grid.BoxSize).Sub(model3d.Coord3D{X: 0.5, Y: 0.5, Z: 0.5})

	xs, xFracs := roundedCoords(c.X)
	ys, yFracs := roundedCoords(c.Y)
	zs, zFracs := roundedCoords(c.Z)
	var value float64
	for i, x := range xs {
		xFrac := xFracs[i]
		for j, y := range ys {
			yFrac := yFracs[j]
			for k, z := range zs {
				zFrac := zFracs[k]
				if v.Grid.Contains(voxels.Coord{x, y, z}) {
					value += xFrac * yFrac * zFrac
				}
			}
		}
	}
	return value
}

func (v *VoxelSolid) padding() model3d.Coord3D {
	s := v.Grid.BoxSize
	return model3d.Coord3D{X: s, Y: s, Z: s}
}

func roundedCoords(c float64) (vals [2]int, fracs [2]float64) {
	min := int(math.Floor(c))
	max := min + 1
	minFrac := float64(max) - c
	maxFrac := 1 - minFrac
	return [2]int{min, max}, [2]float64{minFrac, maxFrac}
}
