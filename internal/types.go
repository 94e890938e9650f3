package internal

import "github.com/golang/geo/r2"

// Unpaired is the opposite-side value the triangulator uses for a side on the
// open boundary. No side of a closed mesh carries it.
const Unpaired = -1

type Point struct {
	X float64
	Y float64
}

func (p Point) Vec() r2.Point {
	return r2.Point{X: p.X, Y: p.Y}
}

// An open triangulation, straight out of the triangulator. Sides 3k, 3k+1 and
// 3k+2 form triangle k. Sides on the hull have Unpaired as their opposite.
type RawMesh struct {
	Regions          []Point
	SideStartRegion  []int
	SideOppositeSide []int
}

// A closed triangle mesh. Every side has an opposite, and every region,
// including those on the hull, can be circulated with NextSide(Opposite(s)).
//
// The last region is the ghost region, which stands for "outside the mesh".
// Sides below NumSolidSides came from the triangulation; the rest belong to
// ghost triangles, which each have one solid side on the hull and a vertex at
// the ghost region.
//
// Meshes are never modified once built, so they may be shared between
// goroutines. Meshes from Create and Close carry an index that makes region
// circulation start in constant time; a Mesh assembled field by field still
// circulates, but each circulation searches the sides first.
type Mesh struct {
	RegionVertex     []Point
	SideStartRegion  []int
	SideOppositeSide []int

	NumSolidSides      int
	NumBoundaryRegions int

	// An incoming side for every region, used as the starting point for
	// circulation. For hull regions this is a ghost side.
	regionInSide []int
}
