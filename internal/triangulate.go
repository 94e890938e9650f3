package internal

import (
	"github.com/fogleman/delaunay"
	"github.com/pkg/errors"
)

// Delaunay triangulate the points into an open mesh. The triangulator's
// halfedges use -1 for hull sides, which is exactly Unpaired.
//
// Duplicate points are kept as regions but belong to no triangle.
func Triangulate(points []Point) (*RawMesh, error) {
	input := make([]delaunay.Point, len(points))
	for i, p := range points {
		input[i] = delaunay.Point{X: p.X, Y: p.Y}
	}
	triangulation, err := delaunay.Triangulate(input)
	if err != nil {
		return nil, errors.Wrapf(ErrTriangulationFailed, "%d points: %v", len(points), err)
	}
	if len(triangulation.Triangles) == 0 {
		return nil, errors.Wrapf(ErrTriangulationFailed, "%d points produced no triangles", len(points))
	}
	return &RawMesh{
		Regions:          points,
		SideStartRegion:  triangulation.Triangles,
		SideOppositeSide: triangulation.Halfedges,
	}, nil
}
