package voxels

import (
	"math"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

// ErrInvalidResolution is returned for resolutions that do
// not describe at least one cell per axis.
var ErrInvalidResolution = errors.New("invalid resolution")

// BoxSize computes the cell size that splits the cube
// [-1, 1]^3 into resolution cells along each axis.
func BoxSize(resolution int) (float64, error) {
	if resolution <= 0 {
		return 0, errors.Wrapf(ErrInvalidResolution, "resolution must be positive, got %d", resolution)
	}
	return 2 / float64(resolution), nil
}

// ErrInvalidMesh is returned for vertex or index buffers
// that cannot be rasterized.
var ErrInvalidMesh = errors.New("invalid mesh")

// Voxelize marks every cell of size boxSize that touches
// at least one triangle of a mesh.
//
// The resulting grid only covers the surface; use Fill to
// add interior cells.
func Voxelize(vertices []model3d.Coord3D, triangles [][3]int, boxSize float64) (*Grid, error) {
	if !(boxSize > 0) || math.IsInf(boxSize, 0) {
		return nil, errors.Wrapf(ErrInvalidResolution, "box size %v", boxSize)
	}
	for i, v := range vertices {
		if !finite(v) {
			return nil, errors.Wrapf(ErrInvalidMesh, "vertex %d is not finite: %v", i, v)
		}
	}
	for i, t := range triangles {
		for _, idx := range t {
			if idx < 0 || idx >= len(vertices) {
				return nil, errors.Wrapf(ErrInvalidMesh, "triangle %d references vertex %d of %d",
					i, idx, len(vertices))
			}
		}
	}

	grid := NewGrid(boxSize)
	half := boxSize / 2
	halfSize := model3d.Coord3D{X: half, Y: half, Z: half}
	for _, t := range triangles {
		tri := [3]model3d.Coord3D{vertices[t[0]], vertices[t[1]], vertices[t[2]]}
		lo, hi := grid.candidateCells(tri)
		for x := lo[0]; x <= hi[0]; x++ {
			for y := lo[1]; y <= hi[1]; y++ {
				for z := lo[2]; z <= hi[2]; z++ {
					cell := Coord{x, y, z}
					if grid.Contains(cell) {
						continue
					}
					center := grid.Corner(cell).Add(halfSize)
					if triangleBoxOverlap(tri, center, half) {
						grid.Add(cell)
					}
				}
			}
		}
	}
	return grid, nil
}

// VoxelizeIndices is like Voxelize, but takes triangles as
// a flat list of vertex indices.
func VoxelizeIndices(vertices []model3d.Coord3D, indices []int, boxSize float64) (*Grid, error) {
	if len(indices)%3 != 0 {
		return nil, errors.Wrapf(ErrInvalidMesh, "index count %d is not a multiple of 3", len(indices))
	}
	triangles := make([][3]int, len(indices)/3)
	for i := range triangles {
		copy(triangles[i][:], indices[i*3:i*3+3])
	}
	return Voxelize(vertices, triangles, boxSize)
}

// candidateCells finds the cells overlapping the bounding
// box of a triangle.
//
// Cells that merely touch the upper bound are skipped,
// unless the triangle is flat along that axis.
func (g *Grid) candidateCells(tri [3]model3d.Coord3D) (lo, hi Coord) {
	min := tri[0].Min(tri[1]).Min(tri[2])
	max := tri[0].Max(tri[1]).Max(tri[2])
	lo = g.CellOf(min)
	maxArr := [3]float64{max.X, max.Y, max.Z}
	for i := 0; i < 3; i++ {
		hi[i] = int(math.Ceil(maxArr[i]/g.BoxSize)) - 1
		if hi[i] < lo[i] {
			hi[i] = lo[i]
		}
	}
	return
}

func finite(c model3d.Coord3D) bool {
	for _, x := range [3]float64{c.X, c.Y, c.Z} {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

func cellIndex(x, boxSize float64) int {
	return int(math.Floor(x / boxSize))
}

// triangleBoxOverlap runs a separating axis test between a
// triangle and an axis-aligned cube.
//
// Touching counts as overlap.
func triangleBoxOverlap(tri [3]model3d.Coord3D, center model3d.Coord3D, half float64) bool {
	v0 := tri[0].Sub(center)
	v1 := tri[1].Sub(center)
	v2 := tri[2].Sub(center)

	// Box face normals.
	if v0.Min(v1).Min(v2).MaxCoord() > half {
		return false
	}
	if v0.Max(v1).Max(v2).Scale(-1).MaxCoord() > half {
		return false
	}

	edges := [3]model3d.Coord3D{v1.Sub(v0), v2.Sub(v1), v0.Sub(v2)}

	// Triangle normal.
	normal := edges[0].Cross(edges[1])
	if math.Abs(normal.Dot(v0)) > half*absSum(normal) {
		return false
	}

	// Edge/axis cross products.
	axes := [3]model3d.Coord3D{{X: 1}, {Y: 1}, {Z: 1}}
	for _, e := range edges {
		for _, a := range axes {
			axis := e.Cross(a)
			p0, p1, p2 := axis.Dot(v0), axis.Dot(v1), axis.Dot(v2)
			r := half * absSum(axis)
			if math.Min(p0, math.Min(p1, p2)) > r || math.Max(p0, math.Max(p1, p2)) < -r {
				return false
			}
		}
	}

	return true
}

func absSum(c model3d.Coord3D) float64 {
	return math.Abs(c.X) + math.Abs(c.Y) + math.Abs(c.Z)
}
