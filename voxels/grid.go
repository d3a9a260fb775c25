// Package voxels rasterizes triangle meshes into sparse
// sets of occupied grid cells.
package voxels

import "github.com/unixpickle/model3d/model3d"

// A Coord is the integer address of a grid cell.
//
// Cell c spans [c*BoxSize, (c+1)*BoxSize] on each axis.
type Coord [3]int

// Add returns the component-wise sum of c and c1.
func (c Coord) Add(c1 Coord) Coord {
	return Coord{c[0] + c1[0], c[1] + c1[1], c[2] + c1[2]}
}

// Neighbors6 lists the offsets of the face-adjacent cells.
var Neighbors6 = [6]Coord{
	{1, 0, 0}, {-1, 0, 0},
	{0, 1, 0}, {0, -1, 0},
	{0, 0, 1}, {0, 0, -1},
}

// A Grid is a set of occupied cells of a fixed size.
//
// Cells are kept in the order they were first added, so
// iterating over Positions is deterministic for a given
// input mesh.
type Grid struct {
	BoxSize float64

	cells map[Coord]struct{}
	order []Coord
}

// NewGrid creates an empty grid with the given cell size.
func NewGrid(boxSize float64) *Grid {
	return &Grid{
		BoxSize: boxSize,
		cells:   map[Coord]struct{}{},
	}
}

// Add marks a cell as occupied, returning false if it was
// already occupied.
func (g *Grid) Add(c Coord) bool {
	if _, ok := g.cells[c]; ok {
		return false
	}
	g.cells[c] = struct{}{}
	g.order = append(g.order, c)
	return true
}

// Contains checks if a cell is occupied.
func (g *Grid) Contains(c Coord) bool {
	_, ok := g.cells[c]
	return ok
}

// Len returns the number of occupied cells.
func (g *Grid) Len() int {
	return len(g.order)
}

// Positions returns the occupied cells in insertion order.
//
// The result is owned by the grid and must not be
// modified.
func (g *Grid) Positions() []Coord {
	return g.order
}

// MinMax computes the inclusive bounding box of the
// occupied cells.
//
// If the grid is empty, ok is false.
func (g *Grid) MinMax() (min, max Coord, ok bool) {
	if len(g.order) == 0 {
		return min, max, false
	}
	min, max = g.order[0], g.order[0]
	for _, c := range g.order[1:] {
		for i := 0; i < 3; i++ {
			if c[i] < min[i] {
				min[i] = c[i]
			}
			if c[i] > max[i] {
				max[i] = c[i]
			}
		}
	}
	return min, max, true
}

// Min returns the minimum corner of the occupied cells in
// mesh coordinates.
func (g *Grid) Min() model3d.Coord3D {
	min, _, _ := g.MinMax()
	return g.Corner(min)
}

// Max returns the maximum corner of the occupied cells in
// mesh coordinates.
func (g *Grid) Max() model3d.Coord3D {
	_, max, _ := g.MinMax()
	return g.Corner(max.Add(Coord{1, 1, 1}))
}

// Corner returns the minimum corner of a cell in mesh
// coordinates.
func (g *Grid) Corner(c Coord) model3d.Coord3D {
	return model3d.Coord3D{
		X: float64(c[0]) * g.BoxSize,
		Y: float64(c[1]) * g.BoxSize,
		Z: float64(c[2]) * g.BoxSize,
	}
}

// CellOf returns the cell containing a point in mesh
// coordinates.
func (g *Grid) CellOf(c model3d.Coord3D) Coord {
	return Coord{
		cellIndex(c.X, g.BoxSize),
		cellIndex(c.Y, g.BoxSize),
		cellIndex(c.Z, g.BoxSize),
	}
}
