package sculptr

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

// WriteOBJ writes a triangle mesh as a minimal Wavefront
// OBJ file, for visualizing a voxelization.
//
// Each consecutive group of three indices becomes a face.
func WriteOBJ(w io.Writer, vertices []model3d.Coord3D, indices []int) error {
	if len(indices)%3 != 0 {
		return errors.Errorf("write OBJ: index count %d is not a multiple of 3", len(indices))
	}
	bw := bufio.NewWriter(w)
	for _, v := range vertices {
		if _, err := fmt.Fprintf(bw, "v %0.6f %0.6f %0.6f\n", v.X, v.Y, v.Z); err != nil {
			return errors.Wrap(err, "write OBJ")
		}
	}
	for i := 0; i < len(indices); i += 3 {
		_, err := fmt.Fprintf(bw, "f %d %d %d\n", indices[i]+1, indices[i+1]+1, indices[i+2]+1)
		if err != nil {
			return errors.Wrap(err, "write OBJ")
		}
	}
	return errors.Wrap(bw.Flush(), "write OBJ")
}
