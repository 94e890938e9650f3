package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundaryPoints(t *testing.T) {
	points := BoundaryPoints(100, 1000)
	require.Len(t, points, 4*(10+1))

	for _, p := range points {
		assert.True(t, p.X >= 0 && p.X <= 1000, "x out of domain: %v", p)
		assert.True(t, p.Y >= 0 && p.Y <= 1000, "y out of domain: %v", p)
	}

	// Every point has a mirror image through the center of the domain
	for _, p := range points {
		mirror := Point{1000 - p.X, 1000 - p.Y}
		found := false
		for _, q := range points {
			if Equal(q.X, mirror.X) && Equal(q.Y, mirror.Y) {
				found = true
				break
			}
		}
		assert.True(t, found, "no reflection of %v", p)
	}
}

func TestBoundaryPoints_Curvature(t *testing.T) {
	// N = 2, so t takes the values 1/6, 1/2, 5/6
	points := BoundaryPoints(500, 1000)
	require.Len(t, points, 12)

	// The middle step sits exactly on the sides of the square
	middle := points[4:8]
	assert.Equal(t, Point{0, 500}, middle[0])
	assert.Equal(t, Point{1000, 500}, middle[1])
	assert.Equal(t, Point{500, 0}, middle[2])
	assert.Equal(t, Point{500, 1000}, middle[3])

	// The outer steps are pulled inward by (t - 1/2)²
	offset := (1.0/6 - 0.5) * (1.0/6 - 0.5)
	assert.InDelta(t, offset, points[0].X, Tolerance)
	assert.InDelta(t, 1000.0/6, points[0].Y, 1e-6)
	assert.InDelta(t, 1000-offset, points[1].X, Tolerance)
	assert.InDelta(t, offset, points[2].Y, Tolerance)
	assert.InDelta(t, 1000-offset, points[3].Y, Tolerance)
}

func TestBoundaryPoints_Infinite(t *testing.T) {
	assert.Empty(t, BoundaryPoints(posInf, 1000))
}

func TestBoundaryPoints_SpacingLargerThanSize(t *testing.T) {
	// N = 1 still gives a ring of eight points
	assert.Len(t, BoundaryPoints(5000, 1000), 8)
}
