package internal

// Close an open triangulation by adding a ghost region and one ghost triangle
// per unpaired side. Each ghost triangle shares its first side with the hull
// side it closes, and its last two sides link it to its neighbors in a ring
// around the ghost region:
//
//	ghost side g   : end(s) -> start(s)   (opposite of hull side s)
//	ghost side g+1 : start(s) -> ghost
//	ghost side g+2 : ghost -> end(s)      (opposite of g+1 of the next ghost triangle)
//
// The ghost region is placed at ghostVertex. Its position has no geometric
// meaning, but renderers want somewhere sensible, so callers pass the domain
// center.
//
// The raw mesh is not modified. Panics with a MeshError if the arrays are
// inconsistent or the unpaired sides do not form a single loop.
func AddGhostStructure(raw *RawMesh, ghostVertex Point, numBoundaryRegions int) *Mesh {
	checkRawMesh(raw)

	numSolidSides := len(raw.SideStartRegion)
	numRegions := len(raw.Regions)
	ghostRegion := numRegions

	// Find the unpaired side leaving each hull region, so we can walk the hull
	numUnpairedSides := 0
	firstUnpairedSide := Unpaired
	regionUnpairedSide := make([]int, numRegions)
	for r := range regionUnpairedSide {
		regionUnpairedSide[r] = Unpaired
	}
	for s := 0; s < numSolidSides; s++ {
		if raw.SideOppositeSide[s] != Unpaired {
			continue
		}
		r := raw.SideStartRegion[s]
		if regionUnpairedSide[r] != Unpaired {
			fatalf(ErrHullNotClosed, "region %d starts unpaired sides %d and %d", r, regionUnpairedSide[r], s)
		}
		regionUnpairedSide[r] = s
		if firstUnpairedSide == Unpaired {
			firstUnpairedSide = s
		}
		numUnpairedSides++
	}

	numSides := numSolidSides + 3*numUnpairedSides
	regionVertex := make([]Point, numRegions+1)
	copy(regionVertex, raw.Regions)
	regionVertex[ghostRegion] = ghostVertex
	sideStartRegion := make([]int, numSides)
	copy(sideStartRegion, raw.SideStartRegion)
	sideOppositeSide := make([]int, numSides)
	copy(sideOppositeSide, raw.SideOppositeSide)

	s := firstUnpairedSide
	for i := 0; i < numUnpairedSides; i++ {
		if s == Unpaired {
			fatalf(ErrHullNotClosed, "hull walk ended after %d of %d unpaired sides", i, numUnpairedSides)
		}
		if sideOppositeSide[s] != Unpaired {
			fatalf(ErrHullNotClosed, "hull walk returned to side %d after %d of %d unpaired sides", s, i, numUnpairedSides)
		}

		ghostSide := numSolidSides + 3*i
		sideOppositeSide[s] = ghostSide
		sideOppositeSide[ghostSide] = s
		sideStartRegion[ghostSide] = sideStartRegion[NextSide(s)]

		sideStartRegion[ghostSide+1] = sideStartRegion[s]
		sideStartRegion[ghostSide+2] = ghostRegion
		k := numSolidSides + CircularIndex(3*i+4, 3*numUnpairedSides)
		sideOppositeSide[ghostSide+2] = k
		sideOppositeSide[k] = ghostSide + 2

		s = regionUnpairedSide[sideStartRegion[NextSide(s)]]
	}
	if s != firstUnpairedSide {
		fatalf(ErrHullNotClosed, "hull walk did not return to side %d after %d unpaired sides", firstUnpairedSide, numUnpairedSides)
	}

	mesh := &Mesh{
		RegionVertex:       regionVertex,
		SideStartRegion:    sideStartRegion,
		SideOppositeSide:   sideOppositeSide,
		NumSolidSides:      numSolidSides,
		NumBoundaryRegions: numBoundaryRegions,
	}
	mesh.buildRegionInSide()
	return mesh
}

// Make sure every index in the raw mesh can be followed without going out of
// bounds. Pairing consistency is left to the validator.
func checkRawMesh(raw *RawMesh) {
	numSides := len(raw.SideStartRegion)
	if len(raw.SideOppositeSide) != numSides {
		fatalf(ErrMalformedTriangulation, "%d start regions but %d opposites", numSides, len(raw.SideOppositeSide))
	}
	if numSides%3 != 0 {
		fatalf(ErrMalformedTriangulation, "side count %d is not a multiple of 3", numSides)
	}
	for s := 0; s < numSides; s++ {
		if r := raw.SideStartRegion[s]; r < 0 || r >= len(raw.Regions) {
			fatalf(ErrMalformedTriangulation, "side %d starts at region %d of %d", s, r, len(raw.Regions))
		}
		if o := raw.SideOppositeSide[s]; o < Unpaired || o >= numSides {
			fatalf(ErrMalformedTriangulation, "side %d has opposite %d of %d", s, o, numSides)
		}
	}
}
