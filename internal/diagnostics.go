package internal

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
)

type DiagnosticKind int

const (
	// opposite(opposite(s)) != s
	OppositeMismatch DiagnosticKind = iota
	// A side with no opposite, or one pointing outside the mesh
	UnpairedSide
	// Circulating around a region did not come back to the starting side
	CirculationOverflow
	// Summary of angles below BadAngleLimit
	SkinnyTriangles
)

func (k DiagnosticKind) String() string {
	switch k {
	case OppositeMismatch:
		return "opposite-mismatch"
	case UnpairedSide:
		return "unpaired-side"
	case CirculationOverflow:
		return "circulation-overflow"
	case SkinnyTriangles:
		return "skinny-triangles"
	}
	return fmt.Sprintf("DiagnosticKind(%d)", int(k))
}

// Structural defects mean the mesh cannot be trusted for navigation. Anything
// else is a quality warning.
func (k DiagnosticKind) Structural() bool {
	return k != SkinnyTriangles
}

// Angles (in degrees) below this are reported as skinny
const BadAngleLimit = 30

// Count of bad angles, bucketed by whole degree
type AngleHistogram [BadAngleLimit]int

func (h AngleHistogram) String() string {
	counts := make([]string, len(h))
	for i, n := range h {
		counts[i] = fmt.Sprint(n)
	}
	return strings.Join(counts, " ")
}

type Diagnostic struct {
	Kind DiagnosticKind
	// The side the problem was found at, and the regions it joins. -1 for
	// summaries.
	Side      int
	Region    int
	EndRegion int
	// For OppositeMismatch and UnpairedSide
	Opposite int
	// Sides visited before a circulation was abandoned
	Visited []int
	// For SkinnyTriangles
	BadAngles int
	Histogram AngleHistogram
}

func (d Diagnostic) Message() string {
	switch d.Kind {
	case OppositeMismatch:
		return fmt.Sprintf("opposite of side %d is %d, whose opposite is not %d", d.Side, d.Opposite, d.Side)
	case UnpairedSide:
		return fmt.Sprintf("side %d from region %d has no valid opposite (%d)", d.Side, d.Region, d.Opposite)
	case CirculationOverflow:
		return fmt.Sprintf("failed to circulate around region %d starting at side %d (to region %d) after %d steps", d.Region, d.Side, d.EndRegion, len(d.Visited))
	case SkinnyTriangles:
		return fmt.Sprintf("%d bad angles: %s", d.BadAngles, d.Histogram)
	}
	return d.Kind.String()
}

// Colorized one-liner for terminals
func (d Diagnostic) String() string {
	label := d.Kind.String()
	if d.Kind.Structural() {
		label = aurora.Red(label).String()
	} else {
		label = aurora.Yellow(label).String()
	}
	return fmt.Sprintf("[%s] %s", label, d.Message())
}

// Somewhere to send diagnostics as they are found. Validate always collects
// them into its Report as well, so a sink is only needed for streaming output.
type Sink interface {
	Emit(Diagnostic)
}

type SinkFunc func(Diagnostic)

func (f SinkFunc) Emit(d Diagnostic) {
	f(d)
}

type NopSink struct{}

func (NopSink) Emit(Diagnostic) {}

type Report struct {
	Diagnostics   []Diagnostic
	BadAngleCount int
	BadAngles     AngleHistogram
}

func (r *Report) add(sink Sink, d Diagnostic) {
	r.Diagnostics = append(r.Diagnostics, d)
	if sink != nil {
		sink.Emit(d)
	}
}

func (r *Report) Structural() []Diagnostic {
	return r.filter(true)
}

func (r *Report) Warnings() []Diagnostic {
	return r.filter(false)
}

func (r *Report) filter(structural bool) []Diagnostic {
	var result []Diagnostic
	for _, d := range r.Diagnostics {
		if d.Kind.Structural() == structural {
			result = append(result, d)
		}
	}
	return result
}

func (r *Report) HasStructuralDefects() bool {
	for _, d := range r.Diagnostics {
		if d.Kind.Structural() {
			return true
		}
	}
	return false
}

// Nil unless there is a structural defect. Quality warnings never make an
// error; the caller decides whether to escalate those.
func (r *Report) Err() error {
	structural := r.Structural()
	if len(structural) == 0 {
		return nil
	}
	return errors.Wrapf(ErrStructuralDefect, "%s (%d structural defects)", structural[0].Message(), len(structural))
}
