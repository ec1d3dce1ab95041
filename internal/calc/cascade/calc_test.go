package cascade

import (
	"testing"

	"Potable/internal/calc/quality"
	"Potable/internal/calc/stage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func riverWater() quality.Quality {
	return quality.Quality{
		PH: 7.1, Turbidity: 50, Color: 1000,
		TotalColiforms: 5000, FecalColiforms: 1200,
		Iron: 1.2, Alkalinity: 80, Hardness: 120,
	}
}

var fime = []stage.ID{stage.DynamicRoughing, stage.AscendingRoughing, stage.SlowSand}

func TestEvolveFullTrain(t *testing.T) {
	tr := Evolve(riverWater(), fime)

	require.Len(t, tr.Steps, 3)
	assert.InDelta(t, 20.0, tr.Steps[0].Output.Turbidity, 1e-9)
	assert.InDelta(t, 5.0, tr.Steps[1].Output.Turbidity, 1e-9)
	assert.InDelta(t, 0.5, tr.Final.Turbidity, 1e-9)
	assert.InDelta(t, 48.0, tr.Final.Color, 1e-9)
	assert.InDelta(t, 0.6, tr.Final.FecalColiforms, 1e-9)
	assert.InDelta(t, 4.0, tr.CumulativeLog, 1e-9)

	assert.Equal(t, []float64{0.5, 2.0, 4.0}, []float64{
		tr.Steps[0].CumulativeLog, tr.Steps[1].CumulativeLog, tr.Steps[2].CumulativeLog,
	})
}

func TestEvolveWithoutSlowSand(t *testing.T) {
	tr := Evolve(riverWater(), []stage.ID{stage.DynamicRoughing, stage.AscendingRoughing})
	assert.InDelta(t, 2.0, tr.CumulativeLog, 1e-9)
	assert.InDelta(t, 5.0, tr.Final.Turbidity, 1e-9)
}

func TestEvolveChainsStages(t *testing.T) {
	tr := Evolve(riverWater(), append(fime, stage.Disinfection))
	require.Len(t, tr.Steps, 4)
	for i := 1; i < len(tr.Steps); i++ {
		assert.Equal(t, tr.Steps[i-1].Output, tr.Steps[i].Input)
	}
	assert.Equal(t, riverWater(), tr.Steps[0].Input)
	assert.Equal(t, tr.Steps[3].Output, tr.Final)
}

func TestEvolveCanonicalOrder(t *testing.T) {
	shuffled := []stage.ID{stage.SlowSand, stage.Disinfection, stage.DynamicRoughing, stage.AscendingRoughing, stage.SlowSand}
	tr := Evolve(riverWater(), shuffled)

	var got []stage.ID
	for _, s := range tr.Steps {
		got = append(got, s.Stage)
	}
	assert.Equal(t, stage.Order[:], got)
	assert.Equal(t, Evolve(riverWater(), stage.Order[:]), tr)
}

func TestEvolveDeterministic(t *testing.T) {
	a := Evolve(riverWater(), fime)
	b := Evolve(riverWater(), fime)
	assert.Equal(t, a, b)
}

func TestEvolveKeepsPH(t *testing.T) {
	tr := Evolve(riverWater(), stage.Order[:])
	for _, s := range tr.Steps {
		assert.Equal(t, 7.1, s.Output.PH)
	}
}

func TestEvolveClampsTraceConcentrations(t *testing.T) {
	raw := riverWater()
	raw.FecalColiforms = 1
	tr := Evolve(raw, stage.Order[:])
	assert.Equal(t, 0.0, tr.Final.FecalColiforms)
	for _, s := range tr.Steps {
		assert.GreaterOrEqual(t, s.Output.FecalColiforms, 0.0)
		assert.GreaterOrEqual(t, s.Output.TotalColiforms, 0.0)
	}
}

func TestEvolveRiskImproves(t *testing.T) {
	tr := Evolve(riverWater(), stage.Order[:])
	assert.Equal(t, quality.RiskInviable, tr.RawRisk.Level)
	last, ok := tr.Last()
	require.True(t, ok)
	assert.Less(t, last.Risk.Index, tr.RawRisk.Index)
}

func TestEvolveNoStages(t *testing.T) {
	tr := Evolve(riverWater(), []stage.ID{"sedimentador"})
	assert.Empty(t, tr.Steps)
	assert.Equal(t, riverWater(), tr.Final)
	assert.Zero(t, tr.CumulativeLog)
	_, ok := tr.Last()
	assert.False(t, ok)
}

func TestTraceAllRestartable(t *testing.T) {
	tr := Evolve(riverWater(), fime)
	count := func() int {
		n := 0
		for range tr.All() {
			n++
		}
		return n
	}
	assert.Equal(t, 3, count())
	assert.Equal(t, 3, count())

	for i, s := range tr.All() {
		assert.Equal(t, stage.DynamicRoughing, s.Stage)
		assert.Equal(t, 0, i)
		break
	}
}

func TestTraceThrough(t *testing.T) {
	tr := Evolve(riverWater(), stage.Order[:])

	up := tr.Through(stage.AscendingRoughing)
	require.Len(t, up.Steps, 2)
	assert.InDelta(t, 5.0, up.Final.Turbidity, 1e-9)
	assert.InDelta(t, 2.0, up.CumulativeLog, 1e-9)
	assert.Len(t, tr.Steps, 4)

	none := Evolve(riverWater(), fime).Through(stage.Disinfection)
	assert.Empty(t, none.Steps)
	assert.Equal(t, riverWater(), none.Final)
}
