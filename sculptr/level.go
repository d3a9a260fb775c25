// Package sculptr encodes voxel grids as SculptrVR point
// cloud records.
package sculptr

import (
	"math"

	"github.com/pkg/errors"
	"github.com/unixpickle/essentials"
	"github.com/unixpickle/mesh2sculptr/voxels"
)

// MaxLevel is the level of the smallest addressable grid.
// Each step down doubles the addressable extent.
const MaxLevel = 19

var (
	// ErrGridTooLarge is returned when a grid extends past
	// what level 0 can address.
	ErrGridTooLarge = errors.New("voxel grid is too large")

	// ErrEmptyGrid is returned when a grid has no cells to
	// measure.
	ErrEmptyGrid = errors.New("could not determine voxelization size")
)

// Level finds the level for a grid whose largest absolute
// cell coordinate is maxVal.
//
// The level counts down from MaxLevel, so larger grids get
// smaller levels: 1 maps to 19, 2 to 18, and 1<<19 to 0.
func Level(maxVal uint32) (int, error) {
	maxDim := uint32(1)
	for level := MaxLevel; level >= 0; level-- {
		if maxVal <= maxDim {
			return level, nil
		}
		maxDim <<= 1
	}
	return 0, errors.Wrapf(ErrGridTooLarge, "max coordinate %d", maxVal)
}

// Magnitude returns the largest absolute component of
// either corner of a bounding box.
func Magnitude(min, max voxels.Coord) uint32 {
	var res int
	for _, c := range [2]voxels.Coord{min, max} {
		for _, x := range c {
			if x < 0 {
				x = -x
			}
			res = essentials.MaxInt(res, x)
		}
	}
	if uint64(res) > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(res)
}

// GridLevel computes the level shared by every record
// exported from a grid.
func GridLevel(g *voxels.Grid) (int, error) {
	min, max, ok := g.MinMax()
	if !ok {
		return 0, ErrEmptyGrid
	}
	return Level(Magnitude(min, max))
}
