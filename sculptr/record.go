package sculptr

import "github.com/unixpickle/mesh2sculptr/voxels"

// A Color is an RGB color paired with a material id.
type Color struct {
	R, G, B  uint8
	Material uint8
}

// DefaultColor is assigned to every exported voxel.
var DefaultColor = Color{R: 233, G: 163, B: 201, Material: 255}

// A Record is one row of a SculptrVR point cloud.
type Record struct {
	X, Y, Z int
	Level   int
	Color   Color
}

// RemapAxes converts a Y-up cell coordinate into SculptrVR's
// Z-up convention by swapping the Y and Z components.
//
// The swap is its own inverse.
func RemapAxes(c voxels.Coord) voxels.Coord {
	return voxels.Coord{c[0], c[2], c[1]}
}

// Records creates one record per occupied cell, in the
// grid's iteration order.
func Records(g *voxels.Grid, level int, color Color) []Record {
	res := make([]Record, 0, g.Len())
	for _, c := range g.Positions() {
		p := RemapAxes(c)
		res = append(res, Record{
			X:     p[0],
			Y:     p[1],
			Z:     p[2],
			Level: level,
			Color: color,
		})
	}
	return res
}

// Coord returns the record's cell in the Y-up convention of
// the source mesh.
func (r *Record) Coord() voxels.Coord {
	return RemapAxes(voxels.Coord{r.X, r.Y, r.Z})
}
