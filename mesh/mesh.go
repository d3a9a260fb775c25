// Package mesh merges loader output into a single
// triangle mesh and rescales it into the [-1, 1] cube.
package mesh

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

// ErrMalformedMesh is the cause of every error returned
// for loader output that cannot be merged.
var ErrMalformedMesh = errors.New("malformed mesh")

// A SubMesh is raw loader output for one object in a file.
//
// Positions is a flat list of xyz triples, and Indices is a
// flat list of triangle corners referencing Positions.
type SubMesh struct {
	Name      string
	Positions []float64
	Indices   []int
}

// NumVertices returns the number of complete xyz triples.
func (s *SubMesh) NumVertices() int {
	return len(s.Positions) / 3
}

// A Mesh is the merged vertex and triangle buffer for an
// entire input file.
type Mesh struct {
	Vertices  []model3d.Coord3D
	Triangles [][3]int
}

// A FormatError describes where a sub-mesh was malformed.
type FormatError struct {
	SubMesh int
	Name    string
	Reason  string
}

func (f *FormatError) Error() string {
	if f.Name != "" {
		return fmt.Sprintf("malformed mesh: sub-mesh %d (%s): %s", f.SubMesh, f.Name, f.Reason)
	}
	return fmt.Sprintf("malformed mesh: sub-mesh %d: %s", f.SubMesh, f.Reason)
}

// Unwrap allows errors.Is(err, ErrMalformedMesh).
func (f *FormatError) Unwrap() error {
	return ErrMalformedMesh
}

// Assemble concatenates sub-meshes into one Mesh.
//
// Indices of each sub-mesh are offset by the number of
// vertices contributed by the sub-meshes before it.
// Vertices are never merged, even if they coincide.
func Assemble(subs []SubMesh) (*Mesh, error) {
	var numVertices, numTriangles int
	for _, s := range subs {
		numVertices += s.NumVertices()
		numTriangles += len(s.Indices) / 3
	}
	res := &Mesh{
		Vertices:  make([]model3d.Coord3D, 0, numVertices),
		Triangles: make([][3]int, 0, numTriangles),
	}

	for i, s := range subs {
		fail := func(format string, args ...interface{}) error {
			return &FormatError{SubMesh: i, Name: s.Name, Reason: fmt.Sprintf(format, args...)}
		}
		if len(s.Positions)%3 != 0 {
			return nil, fail("position count %d is not a multiple of 3", len(s.Positions))
		}
		if len(s.Indices)%3 != 0 {
			return nil, fail("index count %d is not a multiple of 3", len(s.Indices))
		}

		base := len(res.Vertices)
		local := s.NumVertices()
		for j := 0; j < len(s.Positions); j += 3 {
			res.Vertices = append(res.Vertices, model3d.Coord3D{
				X: s.Positions[j],
				Y: s.Positions[j+1],
				Z: s.Positions[j+2],
			})
		}
		for j := 0; j < len(s.Indices); j += 3 {
			var t [3]int
			for k, idx := range s.Indices[j : j+3] {
				if idx < 0 || idx >= local {
					return nil, fail("index %d out of range after offset (%d >= %d)",
						idx, idx+base, base+local)
				}
				t[k] = idx + base
			}
			res.Triangles = append(res.Triangles, t)
		}
	}

	return res, nil
}

// Indices returns the triangle buffer as a flat list.
func (m *Mesh) Indices() []int {
	res := make([]int, 0, len(m.Triangles)*3)
	for _, t := range m.Triangles {
		res = append(res, t[:]...)
	}
	return res
}
