package voxels

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unixpickle/model3d/model3d"
)

// testCube returns the corners and face triangles of the
// cube [-1, 1]^3.
func testCube() ([]model3d.Coord3D, [][3]int) {
	var vertices []model3d.Coord3D
	for i := 0; i < 8; i++ {
		vertices = append(vertices, model3d.Coord3D{
			X: float64((i&1)*2 - 1),
			Y: float64(((i>>1)&1)*2 - 1),
			Z: float64(((i>>2)&1)*2 - 1),
		})
	}
	triangles := [][3]int{
		{0, 2, 3}, {0, 3, 1}, // z=-1
		{4, 5, 7}, {4, 7, 6}, // z=+1
		{0, 1, 5}, {0, 5, 4}, // y=-1
		{2, 6, 7}, {2, 7, 3}, // y=+1
		{0, 4, 6}, {0, 6, 2}, // x=-1
		{1, 3, 7}, {1, 7, 5}, // x=+1
	}
	return vertices, triangles
}

func mustVoxelize(t *testing.T, vertices []model3d.Coord3D, triangles [][3]int,
	boxSize float64) *Grid {
	g, err := Voxelize(vertices, triangles, boxSize)
	require.NoError(t, err)
	return g
}

func TestBoxSize(t *testing.T) {
	size, err := BoxSize(2)
	require.NoError(t, err)
	assert.Equal(t, 1.0, size)

	size, err = BoxSize(100)
	require.NoError(t, err)
	assert.Equal(t, 0.02, size)

	for _, res := range []int{0, -5} {
		_, err := BoxSize(res)
		assert.True(t, errors.Is(err, ErrInvalidResolution))
	}
}

func TestGridOrderAndBounds(t *testing.T) {
	g := NewGrid(1)
	_, _, ok := g.MinMax()
	assert.False(t, ok)

	assert.True(t, g.Add(Coord{3, -2, 0}))
	assert.True(t, g.Add(Coord{-1, 5, 2}))
	assert.False(t, g.Add(Coord{3, -2, 0}))
	assert.True(t, g.Add(Coord{0, 0, -7}))

	assert.Equal(t, 3, g.Len())
	assert.Equal(t, []Coord{{3, -2, 0}, {-1, 5, 2}, {0, 0, -7}}, g.Positions())

	min, max, ok := g.MinMax()
	require.True(t, ok)
	assert.Equal(t, Coord{-1, -2, -7}, min)
	assert.Equal(t, Coord{3, 5, 2}, max)
}

func TestCellOf(t *testing.T) {
	g := NewGrid(0.5)
	assert.Equal(t, Coord{0, -1, 2}, g.CellOf(model3d.Coord3D{X: 0.1, Y: -0.1, Z: 1.2}))
	assert.Equal(t, Coord{2, -2, 0}, g.CellOf(model3d.Coord3D{X: 1, Y: -1, Z: 0}))
	assert.False(t, NewGrid(1).Contains(Coord{}))
}

func TestVoxelizeSmallTriangle(t *testing.T) {
	vertices := []model3d.Coord3D{
		{X: 0.1, Y: 0.1, Z: 0.5},
		{X: 0.9, Y: 0.1, Z: 0.5},
		{X: 0.1, Y: 0.9, Z: 0.5},
	}
	g := mustVoxelize(t, vertices, [][3]int{{0, 1, 2}}, 1)
	assert.Equal(t, []Coord{{0, 0, 0}}, g.Positions())
}

func TestVoxelizeDiagonalTriangle(t *testing.T) {
	// The triangle's bounding box covers four cells in the
	// XY plane, but the hypotenuse stays clear of (1, 1).
	vertices := []model3d.Coord3D{
		{X: 0.1, Y: 0.1, Z: 0.5},
		{X: 1.5, Y: 0.1, Z: 0.5},
		{X: 0.1, Y: 1.5, Z: 0.5},
	}
	g := mustVoxelize(t, vertices, [][3]int{{0, 1, 2}}, 1)
	assert.Equal(t, 3, g.Len())
	assert.False(t, g.Contains(Coord{1, 1, 0}))
	assert.True(t, g.Contains(Coord{1, 0, 0}))
	assert.True(t, g.Contains(Coord{0, 1, 0}))
}

func TestVoxelizeIndices(t *testing.T) {
	vertices, triangles := testCube()
	var indices []int
	for _, tri := range triangles {
		indices = append(indices, tri[:]...)
	}
	g, err := VoxelizeIndices(vertices, indices, 1)
	require.NoError(t, err)
	assert.Equal(t, mustVoxelize(t, vertices, triangles, 1).Positions(), g.Positions())

	_, err = VoxelizeIndices(vertices, indices[:4], 1)
	assert.True(t, errors.Is(err, ErrInvalidMesh))
}

func TestVoxelizeInvalid(t *testing.T) {
	vertices, triangles := testCube()

	_, err := Voxelize(vertices, [][3]int{{0, 1, 8}}, 1)
	assert.True(t, errors.Is(err, ErrInvalidMesh))
	_, err = Voxelize(vertices, [][3]int{{0, -1, 2}}, 1)
	assert.True(t, errors.Is(err, ErrInvalidMesh))

	for _, boxSize := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err = Voxelize(vertices, triangles, boxSize)
		assert.True(t, errors.Is(err, ErrInvalidResolution), "box size %v", boxSize)
	}

	// Non-finite corners would otherwise make the candidate
	// cell range unbounded.
	for _, bad := range []model3d.Coord3D{
		{X: math.NaN()},
		{Y: math.NaN()},
		{Z: math.Inf(1)},
		{X: math.Inf(-1)},
	} {
		tri := []model3d.Coord3D{bad, {X: 1}, {Y: 1}}
		_, err = Voxelize(tri, [][3]int{{0, 1, 2}}, 0.02)
		assert.True(t, errors.Is(err, ErrInvalidMesh), "vertex %v", bad)
	}
}

func TestVoxelizeCube(t *testing.T) {
	vertices, triangles := testCube()

	g := mustVoxelize(t, vertices, triangles, 1)
	assert.Equal(t, 19, g.Len())
	assert.False(t, g.Contains(Coord{0, 0, 0}))
	min, max, ok := g.MinMax()
	require.True(t, ok)
	assert.Equal(t, Coord{-1, -1, -1}, min)
	assert.Equal(t, Coord{1, 1, 1}, max)

	g = mustVoxelize(t, vertices, triangles, 0.25)
	assert.Equal(t, 361, g.Len())
}

func TestFillCube(t *testing.T) {
	vertices, triangles := testCube()

	g := mustVoxelize(t, vertices, triangles, 1)
	assert.Equal(t, 1, g.Fill())
	assert.Equal(t, 20, g.Len())
	assert.True(t, g.Contains(Coord{0, 0, 0}))

	g = mustVoxelize(t, vertices, triangles, 0.25)
	assert.Equal(t, 343, g.Fill())
	assert.Equal(t, 704, g.Len())
	assert.Equal(t, 0, g.Fill())
}

func TestFillSuperset(t *testing.T) {
	vertices, triangles := testCube()
	for _, res := range []int{1, 2, 3, 5, 8, 13} {
		boxSize, err := BoxSize(res)
		require.NoError(t, err)
		surface := mustVoxelize(t, vertices, triangles, boxSize)
		filled := mustVoxelize(t, vertices, triangles, boxSize)
		filled.Fill()

		assert.GreaterOrEqual(t, filled.Len(), surface.Len(), "resolution %d", res)
		for _, c := range surface.Positions() {
			assert.True(t, filled.Contains(c), "resolution %d missing %v", res, c)
		}
		assert.Equal(t, surface.Positions(), filled.Positions()[:surface.Len()])
	}
}

func TestFillOpenSurface(t *testing.T) {
	// A single flat triangle encloses nothing.
	vertices := []model3d.Coord3D{{X: -1, Y: -1}, {X: 1, Y: -1}, {X: -1, Y: 1}}
	g := mustVoxelize(t, vertices, [][3]int{{0, 1, 2}}, 0.5)
	before := g.Len()
	assert.Equal(t, 0, g.Fill())
	assert.Equal(t, before, g.Len())

	assert.Equal(t, 0, NewGrid(1).Fill())
}

func TestVerticesIndices(t *testing.T) {
	g := NewGrid(0.5)
	g.Add(Coord{1, 2, 3})
	vertices, indices := g.VerticesIndices()
	assert.Len(t, vertices, 24)
	assert.Len(t, indices, 36)

	center := model3d.Coord3D{X: 0.75, Y: 1.25, Z: 1.75}
	for i := 0; i < len(indices); i += 3 {
		v0, v1, v2 := vertices[indices[i]], vertices[indices[i+1]], vertices[indices[i+2]]
		normal := v1.Sub(v0).Cross(v2.Sub(v0))
		mid := v0.Add(v1).Add(v2).Scale(1.0 / 3)
		assert.Greater(t, normal.Dot(mid.Sub(center)), 0.0, "triangle %d faces inward", i/3)
	}
	for _, v := range vertices {
		assert.InDelta(t, 0.25, v.Sub(center).Abs().MaxCoord(), 1e-12)
	}

	g.Add(Coord{2, 2, 3})
	vertices, indices = g.VerticesIndices()
	assert.Len(t, vertices, 40)
	assert.Len(t, indices, 60)
	assert.Len(t, g.Mesh().TriangleSlice(), 20)
}
