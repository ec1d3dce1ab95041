package compliance

import (
	"fmt"

	"Potable/internal/calc/quality"
)

// Regulatory limits.
const (
	MaxFinalTurbidity = 2.0 // UNT
	MinLogRemoval     = 4.0
)

const (
	TagSafe  = "DISEÑO SEGURO"
	TagAlert = "ALERTA"
)

type Rule string

const (
	RuleTurbidity    Rule = "turbidez_final"
	RulePathogens    Rule = "remocion_patogenos"
	RuleDisinfection Rule = "ct_desinfeccion"
)

type Disinfection struct {
	ContactMin float64 `json:"contact_min" yaml:"contact_min"`
	DoseMgL    float64 `json:"dose_mg_l" yaml:"dose_mg_l"`
	PH         float64 `json:"ph" yaml:"ph"`
}

type Input struct {
	Influent      quality.Quality `json:"influent" yaml:"influent"`
	Final         quality.Quality `json:"final" yaml:"final"`
	CumulativeLog float64         `json:"cumulative_log" yaml:"cumulative_log"`
	Disinfection  *Disinfection   `json:"disinfection,omitempty" yaml:"disinfection,omitempty"`
	TemperatureC  float64         `json:"temperature_c" yaml:"temperature_c"`
}

type Check struct {
	Rule        Rule    `json:"rule"`
	Description string  `json:"description"`
	Value       float64 `json:"value"`
	Limit       float64 `json:"limit"`
	Unit        string  `json:"unit"`
	Compliant   bool    `json:"compliant"`
	Observation string  `json:"observation"`
}

type Report struct {
	Checks    []Check   `json:"checks"`
	CT        *CTLookup `json:"ct,omitempty"`
	Compliant bool      `json:"cumple_normatividad"`
}

// Evaluate runs every applicable check. All of them are reported even when
// an earlier one fails. A disinfection without pH is looked up at the
// influent pH.
func Evaluate(in Input) Report {
	checks := []Check{turbidity(in.Final), pathogens(in.Influent, in.CumulativeLog)}

	var lookup *CTLookup
	if in.Disinfection != nil {
		d := *in.Disinfection
		if d.PH <= 0 {
			d.PH = in.Influent.PH
		}
		c, l := disinfection(d, in.TemperatureC)
		checks = append(checks, c)
		lookup = &l
	}

	ok := true
	for _, c := range checks {
		ok = ok && c.Compliant
	}
	return Report{Checks: checks, CT: lookup, Compliant: ok}
}

func turbidity(final quality.Quality) Check {
	c := Check{
		Rule:        RuleTurbidity,
		Description: "Turbiedad del efluente final",
		Value:       final.Turbidity,
		Limit:       MaxFinalTurbidity,
		Unit:        "UNT",
		Compliant:   final.Turbidity <= MaxFinalTurbidity,
	}
	if c.Compliant {
		c.Observation = fmt.Sprintf("%s: turbiedad final %.2f UNT <= %.1f UNT.", TagSafe, c.Value, c.Limit)
	} else {
		c.Observation = fmt.Sprintf("%s: turbiedad final %.2f UNT supera %.1f UNT; revisar el tren de filtración.", TagAlert, c.Value, c.Limit)
	}
	return c
}

func pathogens(influent quality.Quality, logRemoval float64) Check {
	c := Check{
		Rule:        RulePathogens,
		Description: "Remoción acumulada de patógenos",
		Value:       logRemoval,
		Limit:       MinLogRemoval,
		Unit:        "log",
	}
	switch {
	case influent.FecalColiforms == 0:
		c.Compliant = true
		c.Observation = "Sin carga patógena en el afluente (coliformes fecales = 0)."
	case logRemoval >= MinLogRemoval:
		c.Compliant = true
		c.Observation = fmt.Sprintf("%s: %.2f log >= %.1f log.", TagSafe, logRemoval, MinLogRemoval)
	default:
		c.Observation = fmt.Sprintf("%s: %.2f log < %.1f log; falta una barrera de filtración.", TagAlert, logRemoval, MinLogRemoval)
	}
	return c
}

func disinfection(d Disinfection, temperatureC float64) (Check, CTLookup) {
	l := LookupCT(d.PH, temperatureC)
	provided := d.ContactMin * d.DoseMgL
	c := Check{
		Rule:        RuleDisinfection,
		Description: fmt.Sprintf("CT provisto frente a CT requerido (pH %.1f, %.0f °C)", l.PHBand, l.TempBand),
		Value:       provided,
		Limit:       l.Required,
		Unit:        "mg·min/L",
		Compliant:   provided >= l.Required,
	}
	if c.Compliant {
		c.Observation = fmt.Sprintf("%s: CT %.1f >= %.1f.", TagSafe, provided, l.Required)
	} else {
		c.Observation = fmt.Sprintf("%s: CT %.1f < %.1f; aumentar tiempo de contacto o dosis.", TagAlert, provided, l.Required)
	}
	return c, l
}
