package internal

import "math"

// Candidates tried around an active point before it is retired
const poissonTries = 30

// Blue noise point sampler for the square [0,size]², using Bridson's
// algorithm. No two generated points are closer than spacing to each other or
// to any seeded point inside the domain.
//
// With infinite spacing nothing is generated and Fill returns the seeds.
type PoissonSampler struct {
	size    float64
	spacing float64
	random  func() float64

	cellSize  float64
	gridWidth int
	// Indices into points, per background grid cell
	grid [][]int

	points []Point
	active []int
}

// random must return values uniformly distributed in [0,1).
func NewPoissonSampler(size, spacing float64, random func() float64) *PoissonSampler {
	sampler := &PoissonSampler{
		size:    size,
		spacing: spacing,
		random:  random,
	}
	if !math.IsInf(spacing, 1) {
		// One point per cell at most, for points generated by the sampler
		sampler.cellSize = spacing / math.Sqrt2
		sampler.gridWidth = int(math.Ceil(size/sampler.cellSize)) + 1
		sampler.grid = make([][]int, sampler.gridWidth*sampler.gridWidth)
	}
	return sampler
}

// Add a fixed point. Seeds come first in the output of Fill, in the order
// they were added. Seeds outside the domain are kept but not grown from.
func (ps *PoissonSampler) AddPoint(p Point) {
	ps.points = append(ps.points, p)
	if ps.grid == nil || !ps.inDomain(p) {
		return
	}
	i := len(ps.points) - 1
	cell := ps.cell(p)
	ps.grid[cell] = append(ps.grid[cell], i)
	ps.active = append(ps.active, i)
}

// Generate points until no more fit, and return all points, seeds first.
func (ps *PoissonSampler) Fill() []Point {
	if ps.grid == nil {
		return ps.points
	}
	if len(ps.points) == 0 {
		ps.AddPoint(Point{ps.random() * ps.size, ps.random() * ps.size})
	}

	for len(ps.active) > 0 {
		a := int(ps.random() * float64(len(ps.active)))
		if a >= len(ps.active) {
			a = len(ps.active) - 1
		}
		center := ps.points[ps.active[a]]

		found := false
		for k := 0; k < poissonTries; k++ {
			angle := 2 * math.Pi * ps.random()
			radius := ps.spacing * (1 + ps.random())
			candidate := Point{
				X: center.X + radius*math.Cos(angle),
				Y: center.Y + radius*math.Sin(angle),
			}
			if ps.inDomain(candidate) && ps.isFarEnough(candidate) {
				ps.AddPoint(candidate)
				found = true
				break
			}
		}

		if !found {
			last := len(ps.active) - 1
			ps.active[a] = ps.active[last]
			ps.active = ps.active[:last]
		}
	}
	return ps.points
}

func (ps *PoissonSampler) inDomain(p Point) bool {
	return p.X >= 0 && p.X <= ps.size && p.Y >= 0 && p.Y <= ps.size
}

func (ps *PoissonSampler) cellCoords(p Point) (int, int) {
	clamp := func(v float64) int {
		i := int(v / ps.cellSize)
		if i < 0 {
			return 0
		}
		if i >= ps.gridWidth {
			return ps.gridWidth - 1
		}
		return i
	}
	return clamp(p.X), clamp(p.Y)
}

func (ps *PoissonSampler) cell(p Point) int {
	x, y := ps.cellCoords(p)
	return y*ps.gridWidth + x
}

// Any point closer than spacing lies within two cells in each direction
func (ps *PoissonSampler) isFarEnough(p Point) bool {
	cx, cy := ps.cellCoords(p)
	minDistance := ps.spacing * ps.spacing
	for y := max(cy-2, 0); y <= min(cy+2, ps.gridWidth-1); y++ {
		for x := max(cx-2, 0); x <= min(cx+2, ps.gridWidth-1); x++ {
			for _, i := range ps.grid[y*ps.gridWidth+x] {
				q := ps.points[i]
				dx, dy := q.X-p.X, q.Y-p.Y
				if dx*dx+dy*dy < minDistance {
					return false
				}
			}
		}
	}
	return true
}
