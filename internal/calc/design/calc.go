package design

import (
	"fmt"

	"Potable/internal/calc/cascade"
	"Potable/internal/calc/compliance"
	"Potable/internal/calc/memo"
	"Potable/internal/calc/quality"
	"Potable/internal/calc/selection"
	"Potable/internal/calc/sizing"
	"Potable/internal/calc/stage"
)

// Trains are the stage sequences modelled for each technology. Technologies
// whose chemical or membrane processes are outside the cascade model only get
// the final disinfection.
var Trains = map[string][]stage.ID{
	selection.TechFIME:         {stage.DynamicRoughing, stage.AscendingRoughing, stage.SlowSand, stage.Disinfection},
	selection.TechConventional: {stage.Disinfection},
	selection.TechCompact:      {stage.Disinfection},
	selection.TechMembranes:    {stage.Disinfection},
	selection.TechOsmosis:      {stage.Disinfection},
}

type Input struct {
	Origin       selection.Origin          `json:"origin" yaml:"origin"`
	Profile      selection.UserProfile     `json:"user_profile" yaml:"user_profile"`
	FlowLps      float64                   `json:"flow_lps" yaml:"flow_lps"`
	Raw          quality.Quality           `json:"raw" yaml:"raw"`
	Technology   string                    `json:"technology,omitempty" yaml:"technology,omitempty"`
	Stages       []stage.ID                `json:"stages,omitempty" yaml:"stages,omitempty"`
	Overrides    map[stage.ID]sizing.Input `json:"overrides,omitempty" yaml:"overrides,omitempty"`
	Disinfection *compliance.Disinfection  `json:"disinfection,omitempty" yaml:"disinfection,omitempty"`
	TemperatureC float64                   `json:"temperature_c" yaml:"temperature_c"`
}

type StageDesign struct {
	Stage  stage.ID           `json:"stage"`
	Sizing *sizing.Result     `json:"sizing"`
	Tank   *sizing.TankResult `json:"tank,omitempty"`
}

type Result struct {
	Selection  selection.Result  `json:"selection"`
	Technology string            `json:"technology"`
	Stages     []StageDesign     `json:"stages"`
	Trace      cascade.Trace     `json:"trace"`
	Compliance compliance.Report `json:"compliance"`
	Memoranda  []memo.Memorandum `json:"memoranda"`
	Notes      string            `json:"notes"`
}

// Run scores the catalog, picks a technology and carries its train through
// sizing, the quality cascade and the compliance checks.
func Run(in Input) Result {
	sel := selection.Score(selection.Input{
		Origin:    in.Origin,
		Profile:   in.Profile,
		FlowLps:   in.FlowLps,
		Turbidity: in.Raw.Turbidity,
	})
	res := Result{Selection: sel, Stages: []StageDesign{}, Memoranda: []memo.Memorandum{}}

	tech := in.Technology
	if tech == "" && sel.Best != nil {
		tech = sel.Best.ID
	}
	stages := in.Stages
	if len(stages) == 0 {
		stages = Trains[tech]
	}
	if tech == "" && len(stages) == 0 {
		res.Notes = selection.NoneChosen
		res.Trace = cascade.Evolve(in.Raw, nil)
		return res
	}
	res.Technology = tech
	stages = stage.Canonical(stages)

	res.Trace = cascade.Evolve(in.Raw, stages)
	res.Compliance = compliance.Evaluate(compliance.Input{
		Influent:      in.Raw,
		Final:         res.Trace.Final,
		CumulativeLog: res.Trace.CumulativeLog,
		Disinfection:  disinfectionFor(in, stages),
		TemperatureC:  in.TemperatureC,
	})

	incomplete := 0
	for _, id := range stages {
		si := in.Overrides[id]
		si.Stage = id
		si.FlowLps = in.FlowLps
		if id == stage.Disinfection && in.Disinfection != nil && si.ContactMin == 0 {
			si.ContactMin = in.Disinfection.ContactMin
		}
		sz, tank := sizing.Calculate(si)
		if sz == nil {
			incomplete++
		}
		res.Stages = append(res.Stages, StageDesign{Stage: id, Sizing: sz, Tank: tank})

		res.Memoranda = append(res.Memoranda, memo.Build(memo.Input{
			Module: memo.Module(id),
			Sizing: sz,
			Tank:   tank,
			Trace:  res.Trace.Through(id),
			Report: res.Compliance,
		}))
	}

	res.Notes = fmt.Sprintf("Tecnología %s con %d etapas; cumple normatividad: %s.", tech, len(stages), yesNo(res.Compliance.Compliant))
	if incomplete > 0 {
		res.Notes += fmt.Sprintf(" %d etapas sin dimensionar por datos incompletos.", incomplete)
	}
	return res
}

// disinfectionFor only asks for the CT check when the train chlorinates.
func disinfectionFor(in Input, stages []stage.ID) *compliance.Disinfection {
	if in.Disinfection == nil {
		return nil
	}
	for _, id := range stages {
		if id == stage.Disinfection {
			return in.Disinfection
		}
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "sí"
	}
	return "no"
}
