package mesh

import (
	"io"

	"github.com/pkg/errors"
	"github.com/udhos/gwob"
)

// ReadOBJ decodes the geometry of a Wavefront OBJ file.
//
// Each group becomes its own SubMesh, holding only the
// vertices that its faces reference. Polygons are
// triangulated by the decoder. Texture coordinates,
// normals and materials are ignored.
func ReadOBJ(r io.Reader) ([]SubMesh, error) {
	obj, err := gwob.NewObjFromReader("obj", r, &gwob.ObjParserOptions{
		IgnoreNormals: true,
		Logger:        func(string) {},
	})
	if err != nil {
		return nil, errors.Wrap(err, "read OBJ")
	}
	return objSubMeshes(obj)
}

// objSubMeshes splits a decoded file into one SubMesh per
// non-empty group.
func objSubMeshes(obj *gwob.Obj) ([]SubMesh, error) {
	var subs []SubMesh
	for _, g := range obj.Groups {
		if g.IndexCount == 0 {
			continue
		}
		end := g.IndexBegin + g.IndexCount
		if g.IndexBegin < 0 || end > len(obj.Indices) {
			return nil, errors.Errorf("read OBJ: group %q index range [%d, %d) out of bounds",
				g.Name, g.IndexBegin, end)
		}
		sub := SubMesh{Name: g.Name}
		mapping := map[int]int{}
		for _, element := range obj.Indices[g.IndexBegin:end] {
			local, ok := mapping[element]
			if !ok {
				x, y, z, err := obj.VertexCoordinates(element)
				if err != nil {
					return nil, errors.Wrapf(err, "read OBJ: group %q", g.Name)
				}
				local = sub.NumVertices()
				sub.Positions = append(sub.Positions, float64(x), float64(y), float64(z))
				mapping[element] = local
			}
			sub.Indices = append(sub.Indices, local)
		}
		subs = append(subs, sub)
	}
	return subs, nil
}
