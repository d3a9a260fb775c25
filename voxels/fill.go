package voxels

// Fill marks every cell that cannot be reached from outside
// the grid's bounding box without crossing an occupied
// cell.
//
// Cells are only ever added, so the result is a superset of
// the original grid. The number of added cells is returned.
func (g *Grid) Fill() int {
	min, max, ok := g.MinMax()
	if !ok {
		return 0
	}
	reachable := newBorderVoxels(min, max)

	// Start in the border, which is empty by construction.
	start := min.Add(Coord{-1, -1, -1})
	*reachable.At(start) = true
	queue := []Coord{start}
	for len(queue) > 0 {
		coord := queue[0]
		queue = queue[1:]
		for _, d := range Neighbors6 {
			neighbor := coord.Add(d)
			if !reachable.InBounds(neighbor) || g.Contains(neighbor) {
				continue
			}
			if r := reachable.At(neighbor); !*r {
				*r = true
				queue = append(queue, neighbor)
			}
		}
	}

	var added int
	for x := min[0]; x <= max[0]; x++ {
		for y := min[1]; y <= max[1]; y++ {
			for z := min[2]; z <= max[2]; z++ {
				c := Coord{x, y, z}
				if !*reachable.At(c) && g.Add(c) {
					added++
				}
			}
		}
	}
	return added
}

// borderVoxels is a dense boolean volume covering a
// bounding box plus one cell of padding on every side.
type borderVoxels struct {
	min  Coord
	size Coord
	data []bool
}

func newBorderVoxels(min, max Coord) *borderVoxels {
	var size Coord
	for i := range size {
		size[i] = max[i] - min[i] + 3
	}
	return &borderVoxels{
		min:  min,
		size: size,
		data: make([]bool, size[0]*size[1]*size[2]),
	}
}

func (b *borderVoxels) At(c Coord) *bool {
	x := c[0] - b.min[0] + 1
	y := c[1] - b.min[1] + 1
	z := c[2] - b.min[2] + 1
	return &b.data[z+(y+x*b.size[1])*b.size[2]]
}

func (b *borderVoxels) InBounds(c Coord) bool {
	for i, x := range c {
		local := x - b.min[i] + 1
		if local < 0 || local >= b.size[i] {
			return false
		}
	}
	return true
}
