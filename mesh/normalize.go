package mesh

import (
	"math"

	"github.com/pkg/errors"
)

// ErrDegenerateGeometry is returned when a mesh has no
// extent to normalize.
var ErrDegenerateGeometry = errors.New("degenerate geometry")

// MaxAbs returns the largest absolute coordinate of any
// vertex in the mesh, or 0 for an empty mesh.
//
// A NaN in any component makes the result NaN.
func (m *Mesh) MaxAbs() float64 {
	var res float64
	for _, v := range m.Vertices {
		res = math.Max(res, math.Abs(v.X))
		res = math.Max(res, math.Abs(v.Y))
		res = math.Max(res, math.Abs(v.Z))
	}
	return res
}

// Normalize scales the mesh in place so that the largest
// absolute coordinate becomes 1.
//
// The mesh is not translated, so the result lies inside the
// cube [-1, 1]^3 but is not necessarily centered.
//
// The returned scale is the factor that was applied.
func (m *Mesh) Normalize() (float64, error) {
	if len(m.Vertices) == 0 {
		return 0, errors.Wrap(ErrDegenerateGeometry, "normalize: mesh has no vertices")
	}
	maxAbs := m.MaxAbs()
	if maxAbs == 0 {
		return 0, errors.Wrap(ErrDegenerateGeometry, "normalize: all vertices are at the origin")
	}
	scale := 1 / maxAbs
	if math.IsInf(maxAbs, 0) || math.IsNaN(maxAbs) || math.IsInf(scale, 0) {
		return 0, errors.Wrapf(ErrDegenerateGeometry, "normalize: invalid extent %v", maxAbs)
	}
	for i, v := range m.Vertices {
		m.Vertices[i] = v.Scale(scale)
	}
	return scale, nil
}
