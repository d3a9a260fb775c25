package voxels

import "github.com/unixpickle/model3d/model3d"

// faceCorners lists, for each entry of Neighbors6, the unit
// cube corners of the face pointing in that direction.
// Corners are counter-clockwise when viewed from outside.
var faceCorners = [6][4]Coord{
	{{1, 0, 0}, {1, 1, 0}, {1, 1, 1}, {1, 0, 1}},
	{{0, 0, 0}, {0, 0, 1}, {0, 1, 1}, {0, 1, 0}},
	{{0, 1, 0}, {0, 1, 1}, {1, 1, 1}, {1, 1, 0}},
	{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}},
	{{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}},
	{{0, 0, 0}, {0, 1, 0}, {1, 1, 0}, {1, 0, 0}},
}

// VerticesIndices triangulates the boundary of the grid.
//
// Every cell face without an occupied neighbor produces
// four vertices and two triangles. Vertices are in mesh
// coordinates and indices are a flat list of triangle
// corners.
func (g *Grid) VerticesIndices() ([]model3d.Coord3D, []int) {
	var vertices []model3d.Coord3D
	var indices []int
	for _, c := range g.order {
		for i, d := range Neighbors6 {
			if g.Contains(c.Add(d)) {
				continue
			}
			base := len(vertices)
			for _, corner := range faceCorners[i] {
				vertices = append(vertices, g.Corner(c.Add(corner)))
			}
			indices = append(indices, base, base+1, base+2, base, base+2, base+3)
		}
	}
	return vertices, indices
}

// Mesh converts the boundary of the grid into a mesh.
func (g *Grid) Mesh() *model3d.Mesh {
	vertices, indices := g.VerticesIndices()
	res := model3d.NewMesh()
	for i := 0; i < len(indices); i += 3 {
		res.Add(&model3d.Triangle{
			vertices[indices[i]],
			vertices[indices[i+1]],
			vertices[indices[i+2]],
		})
	}
	return res
}
