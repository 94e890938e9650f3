// Closed triangle meshes for procedural map generation.
//
// This package turns a set of 2D points into a Delaunay triangle mesh whose
// hull has been closed off with a ghost region and a ring of ghost triangles.
// Every side has an opposite, so every region, including those on the hull,
// can be circulated the same way. The mesh is stored as flat index arrays:
// sides 3t, 3t+1 and 3t+2 make up triangle t.
//
// Mesh construction runs sanity checks but never corrects the points. Problems
// are returned in a Report, and streamed to a Sink if one is given.
package dualmesh

import (
	"io"
	"math"
	"math/rand"

	"github.com/osuushi/dualmesh/internal"
	"github.com/pkg/errors"
)

type Point = internal.Point
type RawMesh = internal.RawMesh
type Mesh = internal.Mesh
type DrawOptions = internal.DrawOptions

type Report = internal.Report
type Diagnostic = internal.Diagnostic
type DiagnosticKind = internal.DiagnosticKind
type AngleHistogram = internal.AngleHistogram
type Sink = internal.Sink
type SinkFunc = internal.SinkFunc
type NopSink = internal.NopSink
type ZerologSink = internal.ZerologSink

const (
	OppositeMismatch    = internal.OppositeMismatch
	UnpairedSide        = internal.UnpairedSide
	CirculationOverflow = internal.CirculationOverflow
	SkinnyTriangles     = internal.SkinnyTriangles

	BadAngleLimit = internal.BadAngleLimit
	Unpaired      = internal.Unpaired
)

var (
	ErrInvalidSpacing         = internal.ErrInvalidSpacing
	ErrInvalidSize            = internal.ErrInvalidSize
	ErrInvalidPoint           = internal.ErrInvalidPoint
	ErrTriangulationFailed    = internal.ErrTriangulationFailed
	ErrMalformedTriangulation = internal.ErrMalformedTriangulation
	ErrHullNotClosed          = internal.ErrHullNotClosed
	ErrStructuralDefect       = internal.ErrStructuralDefect
)

// Side length of the default square domain
const DefaultSize = 1000

// Largest Size/Spacing accepted by Create. The sampler's background grid has
// about 2*ratio² cells, so this keeps it to a few million.
const MaxSizeSpacingRatio = 1000

type Options struct {
	// Minimum distance between sampled points. Zero or +Inf means no sampling
	// and no boundary points, so only Points are triangulated. Size/Spacing
	// may not exceed MaxSizeSpacingRatio.
	Spacing float64
	// Side length of the square domain [0,Size]². Zero means DefaultSize.
	Size float64
	// Fixed points to include in the mesh
	Points []Point
	// Uniform source in [0,1) for the sampler. Nil means math/rand.
	Random func() float64
	// Receives diagnostics as the mesh is validated. May be nil.
	Sink Sink
}

func (opts Options) withDefaults() (Options, error) {
	if opts.Spacing == 0 {
		opts.Spacing = math.Inf(1)
	}
	if math.IsNaN(opts.Spacing) || opts.Spacing <= 0 {
		return opts, errors.Wrapf(ErrInvalidSpacing, "spacing %v", opts.Spacing)
	}
	if opts.Size == 0 {
		opts.Size = DefaultSize
	}
	if math.IsNaN(opts.Size) || math.IsInf(opts.Size, 0) || opts.Size <= 0 {
		return opts, errors.Wrapf(ErrInvalidSize, "size %v", opts.Size)
	}
	if opts.Size/opts.Spacing > MaxSizeSpacingRatio {
		return opts, errors.Wrapf(ErrInvalidSpacing, "spacing %v is too small for size %v (at most %d spacings across)", opts.Spacing, opts.Size, MaxSizeSpacingRatio)
	}
	for i, p := range opts.Points {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return opts, errors.Wrapf(ErrInvalidPoint, "point %d is %v", i, p)
		}
	}
	if opts.Random == nil {
		opts.Random = rand.Float64
	}
	return opts, nil
}

// Build a closed, validated mesh.
//
// With a finite spacing, boundary points are placed around the domain, then
// the Poisson sampler fills the domain around them and the given points. The
// boundary points become the first Mesh.NumBoundaryRegions regions. The ghost
// region is placed at the center of the domain.
//
// An error is returned only for invalid options or input that cannot be
// triangulated. Structural defects found by validation are in the report; use
// Report.Err to treat them as fatal.
func Create(opts Options) (mesh *Mesh, report *Report, err error) {
	opts, err = opts.withDefaults()
	if err != nil {
		return nil, nil, err
	}
	defer func() {
		recoveredErr := internal.HandleMeshPanicRecover(recover())
		if recoveredErr != nil {
			mesh = nil
			report = nil
			err = recoveredErr
		}
	}()

	sampler := internal.NewPoissonSampler(opts.Size, opts.Spacing, opts.Random)
	boundaryPoints := internal.BoundaryPoints(opts.Spacing, opts.Size)
	for _, p := range boundaryPoints {
		sampler.AddPoint(p)
	}
	for _, p := range opts.Points {
		sampler.AddPoint(p)
	}
	points := sampler.Fill()

	raw, err := internal.Triangulate(points)
	if err != nil {
		return nil, nil, err
	}

	center := Point{X: opts.Size / 2, Y: opts.Size / 2}
	mesh = internal.AddGhostStructure(raw, center, len(boundaryPoints))
	report = internal.Validate(mesh, opts.Sink)
	return mesh, report, nil
}

// Close an existing triangulation, such as one read from disk or produced by
// another triangulator. Unpaired sides must use Unpaired (-1) as their
// opposite. The raw mesh is not modified.
func Close(raw *RawMesh, ghost Point) (mesh *Mesh, err error) {
	defer func() {
		recoveredErr := internal.HandleMeshPanicRecover(recover())
		if recoveredErr != nil {
			mesh = nil
			err = recoveredErr
		}
	}()
	return internal.AddGhostStructure(raw, ghost, 0), nil
}

// Run the mesh checks on a closed mesh. sink may be nil.
func Validate(mesh *Mesh, sink Sink) *Report {
	return internal.Validate(mesh, sink)
}

// The boundary seed points Create uses for a given spacing and domain size.
func BoundaryPoints(spacing, size float64) []Point {
	return internal.BoundaryPoints(spacing, size)
}

// Read points from the circles, polygons and polylines of an SVG document.
func LoadSVGPoints(r io.Reader) ([]Point, error) {
	return internal.LoadSVGPoints(r)
}
