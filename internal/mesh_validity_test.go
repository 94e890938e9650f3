package internal

// This contains no actual tests. It is just a helper for checking the closure
// invariants directly, without going through Validate.

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The rules are:
// 1. opposite(opposite(s)) == s for every side, and no side is Unpaired.
// 2. There is one ghost region, the last one, at the given position.
// 3. One ghost triangle per unpaired side of the raw mesh, each with exactly
// one vertex at the ghost region.
// 4. The solid part of the mesh is unchanged.
// 5. Circulating from any side comes back to it.
func AssertClosedMesh(t *testing.T, raw *RawMesh, mesh *Mesh, ghost Point) {
	numUnpaired := countUnpaired(raw)
	numSolidSides := len(raw.SideStartRegion)

	require.Equal(t, numSolidSides, mesh.NumSolidSides)
	require.Equal(t, numSolidSides+3*numUnpaired, mesh.NumSides())
	require.Len(t, mesh.SideOppositeSide, mesh.NumSides())
	require.Equal(t, len(raw.Regions)+1, mesh.NumRegions())
	assert.Equal(t, ghost, mesh.RegionVertex[mesh.GhostRegion()])
	assert.Equal(t, raw.Regions, mesh.RegionVertex[:len(raw.Regions)])
	assert.Equal(t, raw.SideStartRegion, mesh.SideStartRegion[:numSolidSides])
	assert.Equal(t, numUnpaired, mesh.NumGhostTriangles())

	for s := 0; s < mesh.NumSides(); s++ {
		opposite := mesh.SideOppositeSide[s]
		require.NotEqual(t, Unpaired, opposite, "side %d is unpaired", s)
		require.Equal(t, s, mesh.SideOppositeSide[opposite], "opposite of side %d doesn't lead back", s)
		// Opposite sides run between the same regions in reverse
		assert.Equal(t, mesh.SideBeginRegion(s), mesh.SideEndRegion(opposite))
		if s < numSolidSides && raw.SideOppositeSide[s] != Unpaired {
			assert.Equal(t, raw.SideOppositeSide[s], opposite, "paired side %d was relinked", s)
		}
	}

	for t_ := mesh.NumSolidTriangles(); t_ < mesh.NumTriangles(); t_++ {
		ghostCorners := 0
		for _, r := range mesh.TriangleCirculateRegions(nil, t_) {
			if mesh.IsGhostRegion(r) {
				ghostCorners++
			}
		}
		assert.Equal(t, 1, ghostCorners, "ghost triangle %d", t_)
		// The first side closes a hull side
		assert.False(t, mesh.IsGhostSide(mesh.SideOppositeSide[SideOfTriangle(t_)]))
	}

	for s := 0; s < mesh.NumSides(); s++ {
		assert.Positive(t, circulationLength(mesh, s), "side %d does not circulate", s)
	}
}
