package cascade

import (
	"iter"

	"Potable/internal/calc/quality"
	"Potable/internal/calc/stage"
)

const (
	concentrationDecimals = 4
	logDecimals           = 2
)

type Step struct {
	Stage         stage.ID        `json:"stage"`
	Name          string          `json:"name"`
	Input         quality.Quality `json:"input"`
	Output        quality.Quality `json:"output"`
	Removal       Removal         `json:"removal"`
	LogCredit     float64         `json:"log_credit"`
	CumulativeLog float64         `json:"cumulative_log"`
	Risk          quality.Risk    `json:"risk"`
}

type Trace struct {
	Raw           quality.Quality `json:"raw"`
	RawRisk       quality.Risk    `json:"raw_risk"`
	Steps         []Step          `json:"steps"`
	Final         quality.Quality `json:"final"`
	CumulativeLog float64         `json:"cumulative_log"`
}

// All yields the steps in processing order. The sequence can be ranged over
// any number of times.
func (t Trace) All() iter.Seq2[int, Step] {
	return func(yield func(int, Step) bool) {
		for i, s := range t.Steps {
			if !yield(i, s) {
				return
			}
		}
	}
}

// Last returns the final step, if any stage was applied.
func (t Trace) Last() (Step, bool) {
	if len(t.Steps) == 0 {
		return Step{}, false
	}
	return t.Steps[len(t.Steps)-1], true
}

// Through returns the trace cut after the given stage, as seen by that
// stage's outlet. An absent stage yields a trace with no steps.
func (t Trace) Through(id stage.ID) Trace {
	out := Trace{Raw: t.Raw, RawRisk: t.RawRisk, Final: t.Raw, Steps: []Step{}}
	for i, s := range t.Steps {
		if s.Stage == id {
			out.Steps = t.Steps[: i+1 : i+1]
			out.Final = s.Output
			out.CumulativeLog = s.CumulativeLog
			return out
		}
	}
	return out
}

// Evolve passes raw water through the given stages in processing order.
func Evolve(raw quality.Quality, stages []stage.ID) Trace {
	tr := Trace{Raw: raw, RawRisk: quality.IRCA(raw), Final: raw, Steps: []Step{}}

	current := raw
	cumulative := 0.0
	for _, id := range stage.Canonical(stages) {
		m, ok := ModelFor(id)
		if !ok {
			continue
		}
		out := apply(current, m.Removal)
		cumulative = quality.Round(cumulative+m.LogCredit, logDecimals)
		tr.Steps = append(tr.Steps, Step{
			Stage:         id,
			Name:          id.Name(),
			Input:         current,
			Output:        out,
			Removal:       m.Removal,
			LogCredit:     m.LogCredit,
			CumulativeLog: cumulative,
			Risk:          quality.IRCA(out),
		})
		current = out
	}
	tr.Final = current
	tr.CumulativeLog = cumulative
	return tr
}

func apply(in quality.Quality, r Removal) quality.Quality {
	return quality.Quality{
		PH:             in.PH,
		Turbidity:      reduce(in.Turbidity, r.Turbidity),
		Color:          reduce(in.Color, r.Color),
		TotalColiforms: reduce(in.TotalColiforms, r.TotalColiforms),
		FecalColiforms: reduce(in.FecalColiforms, r.FecalColiforms),
		Iron:           reduce(in.Iron, r.Iron),
		Alkalinity:     reduce(in.Alkalinity, r.Alkalinity),
		Hardness:       reduce(in.Hardness, r.Hardness),
	}
}

func reduce(v, efficiency float64) float64 {
	return quality.Round(v*(1-efficiency), concentrationDecimals)
}
