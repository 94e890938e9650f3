package internal

import "math"

// Circulating around any region except the ghost region should come back to
// the starting side well within this many steps.
const maxCirculationSteps = 100

// Run sanity checks over a closed mesh. Nothing is modified or corrected;
// problems are collected into the returned report and streamed to sink, which
// may be nil.
//
// The checks are:
//  1. Every side's opposite leads back to it.
//  2. Circulating around each side's start region returns to that side.
//  3. No solid triangle has an angle below BadAngleLimit (a warning only).
func Validate(m *Mesh, sink Sink) *Report {
	report := &Report{}
	checkPointInequality(m, report, sink)
	checkTriangleInequality(m, report, sink)
	checkMeshConnectivity(m, report, sink)
	return report
}

// TODO: report collinear neighbors. Around each region P, two neighbors Q and
// R in exactly opposite directions mean the sampler produced collinear points.
func checkPointInequality(m *Mesh, report *Report, sink Sink) {}

func checkTriangleInequality(m *Mesh, report *Report, sink Sink) {
	numSolidSides := min(m.NumSolidSides, m.NumSides()-m.NumSides()%3)
	for s := 0; s < numSolidSides; s++ {
		r0, r1, r2 := m.SideStartRegion[s], m.SideStartRegion[NextSide(s)], m.SideStartRegion[PrevSide(s)]
		if !m.hasRegion(r0) || !m.hasRegion(r1) || !m.hasRegion(r2) {
			continue
		}
		angle := cornerAngle(m.RegionVertex[r0], m.RegionVertex[r1], m.RegionVertex[r2])
		if angle < BadAngleLimit {
			report.BadAngles[int(angle)]++
			report.BadAngleCount++
		}
	}

	if report.BadAngleCount > 0 {
		report.add(sink, Diagnostic{
			Kind:      SkinnyTriangles,
			Side:      -1,
			Region:    -1,
			EndRegion: -1,
			Opposite:  -1,
			BadAngles: report.BadAngleCount,
			Histogram: report.BadAngles,
		})
	}
}

// Angle in degrees at p1, between the edges to p0 and p2. A zero length edge
// makes a zero degree angle.
func cornerAngle(p0, p1, p2 Point) float64 {
	d0 := p0.Vec().Sub(p1.Vec())
	d2 := p2.Vec().Sub(p1.Vec())
	lengths := d0.Norm() * d2.Norm()
	if Equal(lengths, 0) {
		return 0
	}
	cos := math.Max(-1, math.Min(1, d0.Dot(d2)/lengths))
	return math.Acos(cos) * 180 / math.Pi
}

func checkMeshConnectivity(m *Mesh, report *Report, sink Sink) {
	numSides := m.NumSides() - m.NumSides()%3
	ghostRegion := m.GhostRegion()
	var visited []int
	for s0 := 0; s0 < numSides; s0++ {
		region := m.SideStartRegion[s0]
		opposite := m.SideOppositeSide[s0]
		if opposite < 0 || opposite >= numSides {
			report.add(sink, Diagnostic{
				Kind:      UnpairedSide,
				Side:      s0,
				Region:    region,
				EndRegion: m.SideEndRegion(s0),
				Opposite:  opposite,
			})
			continue
		}
		if m.SideOppositeSide[opposite] != s0 {
			report.add(sink, Diagnostic{
				Kind:      OppositeMismatch,
				Side:      s0,
				Region:    region,
				EndRegion: m.SideEndRegion(s0),
				Opposite:  opposite,
			})
		}

		// The ghost region touches every hull side, so it gets no small limit,
		// but a broken ring still must not loop forever.
		limit := maxCirculationSteps
		if region == ghostRegion {
			limit = numSides
		}

		visited = visited[:0]
		s := s0
		for {
			visited = append(visited, s)
			o := m.SideOppositeSide[s]
			if o < 0 || o >= numSides {
				// Reported when s0 reaches this side
				break
			}
			s = NextSide(o)
			if s == s0 {
				break
			}
			if len(visited) > limit {
				report.add(sink, Diagnostic{
					Kind:      CirculationOverflow,
					Side:      s0,
					Region:    region,
					EndRegion: m.SideEndRegion(s0),
					Opposite:  opposite,
					Visited:   append([]int(nil), visited...),
				})
				break
			}
		}
	}
}

func (m *Mesh) hasRegion(r int) bool {
	return r >= 0 && r < len(m.RegionVertex)
}
