package internal

import "github.com/pkg/errors"

var (
	// ErrInvalidSpacing is returned for a sampling distance that is zero,
	// negative or NaN. Infinity is valid and disables sampling.
	ErrInvalidSpacing = errors.New("dualmesh: spacing must be positive")
	// ErrInvalidSize is returned when the domain size is not a positive finite number.
	ErrInvalidSize = errors.New("dualmesh: size must be positive and finite")
	// ErrInvalidPoint is returned for an input point with a NaN or infinite coordinate.
	ErrInvalidPoint = errors.New("dualmesh: point coordinates must be finite")

	ErrTriangulationFailed = errors.New("dualmesh: triangulation failed")

	// ErrMalformedTriangulation means the side arrays handed to the ghost
	// builder are not a consistent triangulation.
	ErrMalformedTriangulation = errors.New("dualmesh: malformed triangulation")
	// ErrHullNotClosed means the unpaired sides do not form a single closed
	// loop, so the ghost triangles could not be linked into one ring.
	ErrHullNotClosed = errors.New("dualmesh: hull is not a single closed loop")

	// ErrStructuralDefect wraps the first structural diagnostic of a Report.
	ErrStructuralDefect = errors.New("dualmesh: structural defect")
)
