package mesh

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

// ErrUnsupportedFormat is returned by Load for file
// extensions it cannot decode.
var ErrUnsupportedFormat = errors.New("unsupported mesh format")

// Load reads the sub-meshes of a mesh file, choosing a
// decoder based on the file extension.
//
// OBJ files keep their object structure. OFF and STL files
// are triangle soups and produce a single SubMesh.
func Load(path string) ([]SubMesh, error) {
	ext := strings.ToLower(filepath.Ext(path))
	var decode func(r io.Reader) ([]SubMesh, error)
	switch ext {
	case ".obj":
		decode = ReadOBJ
	case ".off":
		decode = triangleDecoder(model3d.ReadOFF)
	case ".stl":
		decode = triangleDecoder(model3d.ReadSTL)
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "load %s", path)
	}

	r, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "load mesh")
	}
	defer r.Close()
	subs, err := decode(r)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return subs, nil
}

func triangleDecoder(read func(r io.Reader) ([]*model3d.Triangle, error)) func(io.Reader) ([]SubMesh, error) {
	return func(r io.Reader) ([]SubMesh, error) {
		triangles, err := read(r)
		if err != nil {
			return nil, err
		}
		return []SubMesh{TriangleSubMesh(triangles)}, nil
	}
}

// TriangleSubMesh converts a triangle soup into a SubMesh
// with three unshared vertices per triangle.
func TriangleSubMesh(triangles []*model3d.Triangle) SubMesh {
	res := SubMesh{
		Positions: make([]float64, 0, len(triangles)*9),
		Indices:   make([]int, 0, len(triangles)*3),
	}
	for _, t := range triangles {
		for _, c := range t {
			res.Indices = append(res.Indices, res.NumVertices())
			res.Positions = append(res.Positions, c.X, c.Y, c.Z)
		}
	}
	return res
}
