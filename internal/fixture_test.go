package internal

import (
	"embed"
	"log"
	"math"
)

// Meshes used across the tests. SVG fixtures live in fixtures/ and are loaded
// by name, sans extension.

//go:embed fixtures
var fixtures embed.FS

var posInf = math.Inf(1)

func LoadFixture(name string) []Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	points, err := LoadSVGPoints(fixture)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	return points
}

// The unit square split along its diagonal from (0,0) to (1,1). Both triangles
// are counterclockwise; sides 2 and 3 are the diagonal.
func UnitSquare() *RawMesh {
	return &RawMesh{
		Regions:          []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
		SideStartRegion:  []int{0, 1, 2, 0, 2, 3},
		SideOppositeSide: []int{-1, -1, 3, 2, -1, -1},
	}
}

// Link opposite sides by looking up each directed edge's reverse. Sides with
// no reverse are left Unpaired.
func pairSides(triangles []int) []int {
	type directedEdge struct{ from, to int }
	sides := make(map[directedEdge]int, len(triangles))
	for s := range triangles {
		sides[directedEdge{triangles[s], triangles[NextSide(s)]}] = s
	}
	opposites := make([]int, len(triangles))
	for s := range triangles {
		opposite, ok := sides[directedEdge{triangles[NextSide(s)], triangles[s]}]
		if !ok {
			opposite = Unpaired
		}
		opposites[s] = opposite
	}
	return opposites
}

// A parallelogram patch of the triangular lattice, with cols*rows regions and
// unit length edges. Region (i, j) has index j*cols+i. Every interior region
// has exactly six neighbors.
func HexLattice(cols, rows int) *RawMesh {
	height := math.Sqrt(3) / 2
	regions := make([]Point, 0, cols*rows)
	for j := 0; j < rows; j++ {
		for i := 0; i < cols; i++ {
			regions = append(regions, Point{float64(i) + 0.5*float64(j), height * float64(j)})
		}
	}

	index := func(i, j int) int { return j*cols + i }
	var triangles []int
	for j := 0; j < rows-1; j++ {
		for i := 0; i < cols-1; i++ {
			triangles = append(triangles,
				index(i, j), index(i+1, j), index(i, j+1),
				index(i+1, j), index(i+1, j+1), index(i, j+1),
			)
		}
	}

	return &RawMesh{
		Regions:          regions,
		SideStartRegion:  triangles,
		SideOppositeSide: pairSides(triangles),
	}
}

// n thin triangles around a center region, which ends up with degree n
func Fan(n int) *RawMesh {
	regions := []Point{{0, 0}}
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		regions = append(regions, Point{100 * math.Cos(angle), 100 * math.Sin(angle)})
	}
	var triangles []int
	for i := 0; i < n; i++ {
		triangles = append(triangles, 0, 1+i, 1+(i+1)%n)
	}
	return &RawMesh{
		Regions:          regions,
		SideStartRegion:  triangles,
		SideOppositeSide: pairSides(triangles),
	}
}

func countUnpaired(raw *RawMesh) int {
	count := 0
	for _, o := range raw.SideOppositeSide {
		if o == Unpaired {
			count++
		}
	}
	return count
}

// Number of steps for NextSide(Opposite(s)) to come back to s0, or -1 if it
// takes more steps than there are sides.
func circulationLength(m *Mesh, s0 int) int {
	s := s0
	for steps := 1; steps <= m.NumSides(); steps++ {
		s = NextSide(m.SideOppositeSide[s])
		if s == s0 {
			return steps
		}
	}
	return -1
}
