package design

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Potable/internal/calc/compliance"
	"Potable/internal/calc/quality"
	"Potable/internal/calc/selection"
	"Potable/internal/calc/sizing"
	"Potable/internal/calc/stage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ruralRiver() Input {
	return Input{
		Origin:  selection.OriginSurfaceStream,
		Profile: selection.ProfileRural,
		FlowLps: 5,
		Raw: quality.Quality{
			PH: 7.5, Turbidity: 50, Color: 1000,
			TotalColiforms: 5000, FecalColiforms: 1200, Iron: 1.2, Alkalinity: 60, Hardness: 90,
		},
		Disinfection: &compliance.Disinfection{ContactMin: 30, DoseMgL: 1.5},
		TemperatureC: 20,
	}
}

func TestRunRuralRiverFIME(t *testing.T) {
	res := Run(ruralRiver())

	assert.Equal(t, selection.TechFIME, res.Technology)
	require.Len(t, res.Stages, 4)
	for _, s := range res.Stages {
		assert.NotNil(t, s.Sizing, s.Stage)
	}
	require.NotNil(t, res.Stages[3].Tank)
	assert.InDelta(t, 9.0, res.Stages[3].Tank.VolumeM3, 1e-9)

	assert.InDelta(t, 0.5, res.Trace.Final.Turbidity, 1e-9)
	assert.InDelta(t, 4.0, res.Trace.CumulativeLog, 1e-9)
	assert.True(t, res.Compliance.Compliant)
	assert.Len(t, res.Compliance.Checks, 3)
	require.NotNil(t, res.Compliance.CT)
	assert.Equal(t, 7.5, res.Compliance.CT.PHBand)

	require.Len(t, res.Memoranda, 4)
	assert.InDelta(t, 20.0, res.Memoranda[0].Results["final_turbidity"], 1e-9)
	assert.InDelta(t, 0.5, res.Memoranda[2].Results["final_turbidity"], 1e-9)
	assert.Contains(t, res.Notes, "cumple normatividad: sí")
}

func TestRunStageOverrideDropsSlowSand(t *testing.T) {
	in := ruralRiver()
	in.Stages = []stage.ID{stage.AscendingRoughing, stage.DynamicRoughing}
	in.Disinfection = nil
	res := Run(in)

	require.Len(t, res.Stages, 2)
	assert.Equal(t, stage.DynamicRoughing, res.Stages[0].Stage)
	assert.InDelta(t, 2.0, res.Trace.CumulativeLog, 1e-9)
	assert.False(t, res.Compliance.Compliant)
}

func TestRunSeawater(t *testing.T) {
	in := ruralRiver()
	in.Origin = selection.OriginSeawater
	res := Run(in)

	assert.Equal(t, selection.TechOsmosis, res.Technology)
	require.Len(t, res.Stages, 1)
	assert.Equal(t, stage.Disinfection, res.Stages[0].Stage)
	assert.Zero(t, res.Trace.CumulativeLog)
	assert.False(t, res.Compliance.Compliant)
}

func TestRunSizingOverrides(t *testing.T) {
	in := ruralRiver()
	in.Overrides = map[stage.ID]sizing.Input{stage.SlowSand: {Units: 4, Velocity: 0.1}}
	res := Run(in)
	require.Len(t, res.Stages, 4)
	sz := res.Stages[2].Sizing
	require.NotNil(t, sz)
	assert.Equal(t, 4, sz.Units)
	assert.InDelta(t, 45.0, sz.AreaPerUnitM2, 1e-6)
}

func TestRunZeroFlow(t *testing.T) {
	in := ruralRiver()
	in.FlowLps = 0
	res := Run(in)
	for _, s := range res.Stages {
		assert.Nil(t, s.Sizing)
	}
	assert.Contains(t, res.Notes, "datos incompletos")
	assert.Len(t, res.Memoranda, 4)
}

func TestRunDeterministic(t *testing.T) {
	assert.Equal(t, Run(ruralRiver()), Run(ruralRiver()))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, ruralRiver().Validate())

	in := ruralRiver()
	in.Origin = "lake"
	assert.ErrorIs(t, in.Validate(), ErrSource)

	in = ruralRiver()
	in.Raw.Turbidity = -3
	assert.ErrorIs(t, in.Validate(), ErrQuality)
}

func TestHandler(t *testing.T) {
	h := &Handler{}
	body := `{"origin":"surface_stream","user_profile":"rural","flow_lps":5,
		"raw":{"ph":7.5,"turbidity":50,"color":1000,"fecal_coliforms":1200}}`

	rec := httptest.NewRecorder()
	h.Calc(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"technology":"fime"`)
	assert.Contains(t, rec.Body.String(), `"cumple_normatividad":true`)

	rec = httptest.NewRecorder()
	h.Calc(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"origin":"lake"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
