package internal

import "github.com/rs/zerolog"

// Writes diagnostics to a zerolog logger: structural defects at error level,
// quality warnings at warn level.
type ZerologSink struct {
	Logger zerolog.Logger
}

func (s ZerologSink) Emit(d Diagnostic) {
	var event *zerolog.Event
	if d.Kind.Structural() {
		event = s.Logger.Error()
	} else {
		event = s.Logger.Warn()
	}
	event = event.Str("kind", d.Kind.String())

	switch d.Kind {
	case OppositeMismatch, UnpairedSide:
		event = event.Int("side", d.Side).Int("region", d.Region).Int("opposite", d.Opposite)
	case CirculationOverflow:
		event = event.
			Int("side", d.Side).
			Int("region", d.Region).
			Int("end_region", d.EndRegion).
			Ints("visited", d.Visited)
	case SkinnyTriangles:
		event = event.Int("bad_angles", d.BadAngles).Ints("histogram", d.Histogram[:])
	}
	event.Msg(d.Message())
}
