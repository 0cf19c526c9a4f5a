package arrow

import (
	"fmt"

	"github.com/rclancey/earcut"

	"github.com/slickdexic/layers-kernel/internal/geometry"
)

// Triangulate converts a closed outline (as produced by BuildVertices, or a
// polygon/star vertex list) into a triangle list using ear clipping.
// Rendering backends that fill polygons by triangle — GPU pipelines in
// particular — consume this instead of re-deriving the geometry.
func Triangulate(outline []geometry.Point) ([][3]geometry.Point, error) {
	if len(outline) < 3 {
		return nil, fmt.Errorf("cannot triangulate a %d-vertex outline", len(outline))
	}

	// Flatten to the [x0, y0, x1, y1, ...] layout earcut expects.
	coords := make([]float64, len(outline)*2)
	for i, p := range outline {
		coords[i*2] = p.X
		coords[i*2+1] = p.Y
	}

	indices, err := earcut.Earcut(coords, nil, 2)
	if err != nil {
		return nil, fmt.Errorf("triangulation failed for %d-vertex outline: %w", len(outline), err)
	}
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("triangulation produced %d indices, not a multiple of 3", len(indices))
	}

	triangles := make([][3]geometry.Point, len(indices)/3)
	for i := range triangles {
		for corner := 0; corner < 3; corner++ {
			idx := indices[i*3+corner]
			triangles[i][corner] = geometry.Point{
				X: coords[idx*2],
				Y: coords[idx*2+1],
			}
		}
	}
	return triangles, nil
}
