package internal

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnosticKind(t *testing.T) {
	assert.Equal(t, "opposite-mismatch", OppositeMismatch.String())
	assert.Equal(t, "circulation-overflow", CirculationOverflow.String())
	assert.Equal(t, "DiagnosticKind(42)", DiagnosticKind(42).String())

	assert.True(t, OppositeMismatch.Structural())
	assert.True(t, UnpairedSide.Structural())
	assert.True(t, CirculationOverflow.Structural())
	assert.False(t, SkinnyTriangles.Structural())
}

func TestDiagnosticMessages(t *testing.T) {
	d := Diagnostic{Kind: CirculationOverflow, Side: 4, Region: 2, EndRegion: 3, Visited: []int{4, 5, 6}}
	assert.Equal(t, "failed to circulate around region 2 starting at side 4 (to region 3) after 3 steps", d.Message())
	assert.Contains(t, d.String(), d.Message())
	assert.Contains(t, d.String(), "circulation-overflow")

	var histogram AngleHistogram
	histogram[2] = 3
	d = Diagnostic{Kind: SkinnyTriangles, BadAngles: 3, Histogram: histogram}
	assert.Equal(t, "3 bad angles: 0 0 3 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0", d.Message())
}

func TestReport(t *testing.T) {
	report := &Report{}
	assert.NoError(t, report.Err())

	var sunk int
	sink := SinkFunc(func(Diagnostic) { sunk++ })
	report.add(sink, Diagnostic{Kind: SkinnyTriangles})
	report.add(nil, Diagnostic{Kind: UnpairedSide, Side: 1, Opposite: -1})
	report.add(NopSink{}, Diagnostic{Kind: OppositeMismatch, Side: 2, Opposite: 5})

	assert.Equal(t, 1, sunk)
	assert.Len(t, report.Diagnostics, 3)
	assert.Len(t, report.Warnings(), 1)
	assert.Len(t, report.Structural(), 2)
	require.Error(t, report.Err())
	assert.Contains(t, report.Err().Error(), "side 1 from region 0 has no valid opposite")
	assert.Contains(t, report.Err().Error(), "2 structural defects")
}

func TestZerologSink(t *testing.T) {
	var buffer bytes.Buffer
	mesh := closedSquare()
	mesh.SideOppositeSide[3] = Unpaired
	Validate(mesh, ZerologSink{Logger: zerolog.New(&buffer)})

	lines := bytes.Split(bytes.TrimSpace(buffer.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)

	var found bool
	for _, line := range lines {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(line, &entry))
		assert.Equal(t, "error", entry["level"])
		if entry["kind"] == "unpaired-side" {
			found = true
			assert.Equal(t, 3.0, entry["side"])
			assert.Equal(t, -1.0, entry["opposite"])
			assert.Contains(t, entry["message"], "side 3")
		}
	}
	assert.True(t, found)
}

func TestZerologSink_Warning(t *testing.T) {
	var buffer bytes.Buffer
	var histogram AngleHistogram
	histogram[5] = 1
	ZerologSink{Logger: zerolog.New(&buffer)}.Emit(Diagnostic{Kind: SkinnyTriangles, BadAngles: 1, Histogram: histogram})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buffer.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, 1.0, entry["bad_angles"])
	assert.Len(t, entry["histogram"], BadAngleLimit)
}
