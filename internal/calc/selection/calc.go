package selection

import (
	"fmt"
	"slices"
	"strings"
)

type Origin string

const (
	OriginSurfaceStream Origin = "surface_stream"
	OriginWell          Origin = "well"
	OriginRainwater     Origin = "rainwater"
	OriginSeawater      Origin = "seawater"
)

type UserProfile string

const (
	ProfileRural       UserProfile = "rural"
	ProfileMunicipal   UserProfile = "municipal"
	ProfileResidential UserProfile = "residential"
	ProfileIndustrial  UserProfile = "industrial"
)

// Turbidity limits for multi-stage filtration, UNT.
const (
	FIMEMaxTurbidity     = 70.0
	FIMEPenaltyTurbidity = 50.0
)

const (
	NoAdvisory = "Sin advertencias"
	NoneChosen = "Ninguna tecnología aplicable para las condiciones dadas."
)

type Input struct {
	Origin    Origin      `json:"origin" yaml:"origin"`
	Profile   UserProfile `json:"user_profile" yaml:"user_profile"`
	FlowLps   float64     `json:"flow_lps" yaml:"flow_lps"`
	Turbidity float64     `json:"turbidity" yaml:"turbidity"`
}

type Result struct {
	Catalog   []Technology `json:"catalog"`
	Best      *Technology  `json:"best"`
	Rationale string       `json:"rationale"`
	Advisory  string       `json:"advisory"`
}

// adjust adds delta to the named dimensions. Clamping happens once at the end.
type adjust func(s *Scores)

func plus(delta float64, dims ...func(*Scores) *float64) adjust {
	return func(s *Scores) {
		for _, d := range dims {
			*d(s) += delta
		}
	}
}

func quality(s *Scores) *float64    { return &s.Quality }
func cost(s *Scores) *float64       { return &s.Cost }
func simplicity(s *Scores) *float64 { return &s.Simplicity }
func robustness(s *Scores) *float64 { return &s.Robustness }

// originRule disables and boosts technologies for one water origin.
type originRule struct {
	disable []string
	boost   map[string]adjust
	all     adjust
}

var originRules = map[Origin]originRule{
	OriginSurfaceStream: {
		disable: []string{TechOsmosis},
		boost: map[string]adjust{
			TechFIME:         plus(10, robustness),
			TechConventional: plus(10, robustness),
		},
	},
	OriginWell: {
		disable: []string{TechFIME, TechOsmosis},
		boost: map[string]adjust{
			TechCompact:   plus(10, quality, robustness),
			TechMembranes: plus(10, quality, robustness),
		},
	},
	OriginRainwater: {
		disable: []string{TechConventional, TechOsmosis},
		all:     plus(10, simplicity),
	},
}

var profileRules = map[UserProfile]map[string]adjust{
	ProfileRural: {
		TechFIME:         plus(15, cost, simplicity),
		TechConventional: needsOperator,
		TechCompact:      needsOperator,
		TechMembranes:    needsOperator,
		TechOsmosis:      needsOperator,
	},
	ProfileMunicipal: {
		TechConventional: plus(10, cost, robustness),
		TechFIME:         plus(-10, cost),
	},
	ProfileResidential: {
		TechCompact:   plus(10, simplicity, cost),
		TechMembranes: plus(10, simplicity, cost),
	},
	ProfileIndustrial: {
		TechMembranes: plus(10, quality, cost),
		TechOsmosis:   plus(10, quality, cost),
		TechCompact:   plus(10, robustness),
	},
}

func chain(fs ...adjust) adjust {
	return func(s *Scores) {
		for _, f := range fs {
			f(s)
		}
	}
}

var (
	// chemical dosing or membrane replacement in low-infrastructure settings
	needsOperator = chain(plus(-10, simplicity), plus(-5, cost))

	belowRange = plus(-10, cost, simplicity)
	aboveRange = plus(-15, cost, robustness)
	turbidFIME = plus(-10, cost, simplicity)
)

// Score ranks the reference catalog for the given source and flow.
func Score(in Input) Result {
	return ScoreCatalog(in, Catalog())
}

// ScoreCatalog ranks a copy of catalog; the argument is left untouched.
func ScoreCatalog(in Input, catalog []Technology) Result {
	techs := make([]Technology, len(catalog))
	for i, t := range catalog {
		t.Tags = append([]string(nil), t.Tags...)
		t.Applicable = true
		techs[i] = t
	}

	if in.Origin == OriginSeawater {
		for i := range techs {
			if techs[i].ID == TechOsmosis {
				continue
			}
			techs[i].Applicable = false
			techs[i].Scores = Scores{ScoreFloor, ScoreFloor, ScoreFloor, ScoreFloor, ScoreFloor}
		}
		return finish(techs, "ADVERTENCIA: el agua de mar solo admite ósmosis inversa; "+
			"prever alto consumo energético (3-6 kWh/m³) y disposición de salmuera.")
	}

	var advisories []string
	if rule, ok := originRules[in.Origin]; ok {
		for i := range techs {
			t := &techs[i]
			if slices.Contains(rule.disable, t.ID) {
				t.Applicable = false
			}
			if rule.all != nil {
				rule.all(&t.Scores)
			}
			if f, ok := rule.boost[t.ID]; ok {
				f(&t.Scores)
			}
		}
	}

	if rules, ok := profileRules[in.Profile]; ok {
		for i := range techs {
			if f, ok := rules[techs[i].ID]; ok {
				f(&techs[i].Scores)
			}
		}
	}

	for i := range techs {
		t := &techs[i]
		if !t.Applicable {
			continue
		}
		switch {
		case in.FlowLps < t.MinFlowLps:
			belowRange(&t.Scores)
		case in.FlowLps > t.MaxFlowLps:
			aboveRange(&t.Scores)
		}
	}

	for i := range techs {
		t := &techs[i]
		if t.ID != TechFIME {
			continue
		}
		switch {
		case in.Turbidity > FIMEMaxTurbidity:
			t.Applicable = false
			advisories = append(advisories, fmt.Sprintf(
				"FiME fuera de rango: turbiedad %.1f UNT supera el máximo de %.0f UNT.", in.Turbidity, FIMEMaxTurbidity))
		case in.Turbidity > FIMEPenaltyTurbidity:
			turbidFIME(&t.Scores)
			advisories = append(advisories, fmt.Sprintf(
				"Turbiedad %.1f UNT mayor a %.0f UNT: FiME requiere pretratamiento reforzado.", in.Turbidity, FIMEPenaltyTurbidity))
		}
	}

	advisory := NoAdvisory
	if len(advisories) > 0 {
		advisory = strings.Join(advisories, " ")
	}
	return finish(techs, advisory)
}

func finish(techs []Technology, advisory string) Result {
	var best *Technology
	for i := range techs {
		t := &techs[i]
		t.Scores = t.Scores.clamp()
		t.Mean = t.Scores.Mean()
		if t.Applicable && (best == nil || t.Mean > best.Mean) {
			best = t
		}
	}

	res := Result{Catalog: techs, Advisory: advisory, Rationale: NoneChosen}
	if best != nil {
		pick := *best
		pick.Tags = append([]string(nil), best.Tags...)
		res.Best = &pick
		res.Rationale = fmt.Sprintf("Se recomienda %s con puntaje promedio de %.1f sobre 100.", pick.Name, pick.Mean)
	}
	return res
}

func (o Origin) Valid() bool {
	switch o {
	case OriginSurfaceStream, OriginWell, OriginRainwater, OriginSeawater:
		return true
	}
	return false
}

func (p UserProfile) Valid() bool {
	switch p {
	case ProfileRural, ProfileMunicipal, ProfileResidential, ProfileIndustrial:
		return true
	}
	return false
}
