package internal

import "github.com/golang/geo/r2"

// Counts. Solid elements come from the triangulation; the rest were added to
// close the hull.

func (m *Mesh) NumSides() int          { return len(m.SideStartRegion) }
func (m *Mesh) NumRegions() int        { return len(m.RegionVertex) }
func (m *Mesh) NumSolidRegions() int   { return len(m.RegionVertex) - 1 }
func (m *Mesh) NumTriangles() int      { return len(m.SideStartRegion) / 3 }
func (m *Mesh) NumSolidTriangles() int { return m.NumSolidSides / 3 }
func (m *Mesh) NumGhostTriangles() int { return m.NumTriangles() - m.NumSolidTriangles() }
func (m *Mesh) GhostRegion() int       { return len(m.RegionVertex) - 1 }

func (m *Mesh) SideBeginRegion(s int) int   { return m.SideStartRegion[s] }
func (m *Mesh) SideEndRegion(s int) int     { return m.SideStartRegion[NextSide(s)] }
func (m *Mesh) SideOpposite(s int) int      { return m.SideOppositeSide[s] }
func (m *Mesh) SideInnerTriangle(s int) int { return TriangleOfSide(s) }
func (m *Mesh) SideOuterTriangle(s int) int { return TriangleOfSide(m.SideOppositeSide[s]) }

func (m *Mesh) IsGhostSide(s int) bool     { return s >= m.NumSolidSides }
func (m *Mesh) IsGhostRegion(r int) bool   { return r == m.GhostRegion() }
func (m *Mesh) IsGhostTriangle(t int) bool { return 3*t >= m.NumSolidSides }

// Boundary regions are the seed points placed along the domain edge. They are
// the first NumBoundaryRegions regions.
func (m *Mesh) IsBoundaryRegion(r int) bool { return r < m.NumBoundaryRegions }

// A solid side on the hull, paired with a ghost side
func (m *Mesh) IsBoundarySide(s int) bool {
	return !m.IsGhostSide(s) && m.IsGhostSide(m.SideOppositeSide[s])
}

// Sides leaving r, in circulation order. A region the triangulator dropped
// (a duplicate point) has no sides.
func (m *Mesh) RegionCirculateSides(out []int, r int) []int {
	out = out[:0]
	s0 := m.incomingSide(r)
	if s0 == Unpaired {
		return out
	}
	incoming := s0
	for {
		out = append(out, m.SideOppositeSide[incoming])
		incoming = m.SideOppositeSide[NextSide(incoming)]
		if incoming == s0 {
			break
		}
	}
	return out
}

// Regions adjacent to r. For hull regions this includes the ghost region.
func (m *Mesh) RegionCirculateRegions(out []int, r int) []int {
	out = out[:0]
	s0 := m.incomingSide(r)
	if s0 == Unpaired {
		return out
	}
	incoming := s0
	for {
		out = append(out, m.SideStartRegion[incoming])
		incoming = m.SideOppositeSide[NextSide(incoming)]
		if incoming == s0 {
			break
		}
	}
	return out
}

// Triangles around r. For hull regions this includes two ghost triangles.
func (m *Mesh) RegionCirculateTriangles(out []int, r int) []int {
	out = out[:0]
	s0 := m.incomingSide(r)
	if s0 == Unpaired {
		return out
	}
	incoming := s0
	for {
		out = append(out, TriangleOfSide(incoming))
		incoming = m.SideOppositeSide[NextSide(incoming)]
		if incoming == s0 {
			break
		}
	}
	return out
}

func (m *Mesh) TriangleCirculateSides(out []int, t int) []int {
	out = out[:0]
	for i := 0; i < 3; i++ {
		out = append(out, 3*t+i)
	}
	return out
}

func (m *Mesh) TriangleCirculateRegions(out []int, t int) []int {
	out = out[:0]
	for i := 0; i < 3; i++ {
		out = append(out, m.SideStartRegion[3*t+i])
	}
	return out
}

// How far a ghost triangle's vertex sits outside its hull side
const ghostVertexDistance = 10

// The dual vertex of triangle t. Solid triangles use their centroid. Ghost
// triangles have no real center, so their vertex is placed just outside the
// middle of the hull side they close.
func (m *Mesh) TriangleVertex(t int) Point {
	s0 := SideOfTriangle(t)
	if !m.IsGhostTriangle(t) {
		a := m.RegionVertex[m.SideStartRegion[s0]].Vec()
		b := m.RegionVertex[m.SideStartRegion[s0+1]].Vec()
		c := m.RegionVertex[m.SideStartRegion[s0+2]].Vec()
		center := a.Add(b).Add(c).Mul(1.0 / 3)
		return Point{center.X, center.Y}
	}

	// Side s0 of a ghost triangle runs end(s) -> start(s) along the hull, with
	// the solid triangle on its right.
	a := m.RegionVertex[m.SideStartRegion[s0]].Vec()
	b := m.RegionVertex[m.SideStartRegion[s0+1]].Vec()
	out := ghostOutward(m, s0, b.Sub(a).Normalize())
	mid := a.Add(b).Mul(0.5).Add(out.Mul(ghostVertexDistance))
	return Point{mid.X, mid.Y}
}

// The unit normal of a ghost triangle's hull side pointing away from the solid
// triangle across it. The winding of the triangulation is not fixed, so the
// direction is chosen by looking at the solid triangle's third vertex.
func ghostOutward(m *Mesh, ghostSide int, unit r2.Point) r2.Point {
	normal := unit.Ortho()
	solid := m.SideOppositeSide[ghostSide]
	inner := m.RegionVertex[m.SideStartRegion[PrevSide(solid)]].Vec()
	from := m.RegionVertex[m.SideStartRegion[solid]].Vec()
	if inner.Sub(from).Dot(normal) > 0 {
		return normal.Mul(-1)
	}
	return normal
}

// The side circulation around r starts from. Meshes from AddGhostStructure
// carry an index; a Mesh assembled by hand is searched instead.
func (m *Mesh) incomingSide(r int) int {
	if m.regionInSide != nil {
		return m.regionInSide[r]
	}
	in := Unpaired
	for s := 0; s < m.NumSides(); s++ {
		if m.SideEndRegion(s) == r && (in == Unpaired || m.IsGhostSide(s)) {
			in = s
		}
	}
	return in
}

func (m *Mesh) buildRegionInSide() {
	m.regionInSide = make([]int, m.NumRegions())
	for r := range m.regionInSide {
		m.regionInSide[r] = Unpaired
	}
	for s := 0; s < m.NumSides(); s++ {
		r := m.SideEndRegion(s)
		if m.regionInSide[r] == Unpaired || m.IsGhostSide(s) {
			m.regionInSide[r] = s
		}
	}
}
