package internal

import "math"

// Place points evenly along the four sides of the square [0,size]², with a
// slight inward curve so the triangulation doesn't make long thin triangles
// along the boundary. The points also keep the Poisson sampler from producing
// uneven spacing near the edges.
//
// For N = ceil(size/spacing), this returns 4*(N+1) points, four per step: one
// on each side of the square.
func BoundaryPoints(spacing, size float64) []Point {
	if math.IsInf(spacing, 1) {
		return nil
	}
	n := int(math.Ceil(size / spacing))
	points := make([]Point, 0, 4*(n+1))
	for i := 0; i <= n; i++ {
		t := (float64(i) + 0.5) / float64(n+1)
		w := size * t
		// Zero at the midpoint of each side, 0.25 at the corners
		offset := (t - 0.5) * (t - 0.5)
		points = append(points,
			Point{offset, w},
			Point{size - offset, w},
			Point{w, offset},
			Point{w, size - offset},
		)
	}
	return points
}
