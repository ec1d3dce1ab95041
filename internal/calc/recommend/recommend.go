package recommend

import (
	"fmt"
	"math"

	"Potable/internal/calc/compliance"
)

type CTInput struct {
	PH           float64 `json:"ph"`
	TemperatureC float64 `json:"temperature_c"`
	DoseMgL      float64 `json:"dose_mg_l"`
	ContactMin   float64 `json:"contact_min"`
}

type CTResult struct {
	Lookup        compliance.CTLookup `json:"lookup"`
	MinContactMin float64             `json:"min_contact_min,omitempty"`
	MinDoseMgL    float64             `json:"min_dose_mg_l,omitempty"`
	Notes         string              `json:"notes"`
}

// Practical bounds for free chlorine dosing.
const (
	MaxDoseMgL    = 5.0
	MinContactMin = 30.0
)

// CT returns the contact time that satisfies the CT table for a given dose,
// or the dose for a given contact time. With both given the dose wins.
func CT(in CTInput) (CTResult, error) {
	if in.DoseMgL <= 0 && in.ContactMin <= 0 {
		return CTResult{}, fmt.Errorf("dose or contact time required")
	}
	l := compliance.LookupCT(in.PH, in.TemperatureC)
	res := CTResult{Lookup: l}

	if in.DoseMgL > 0 {
		t := math.Ceil(l.Required / in.DoseMgL)
		if t < MinContactMin {
			t = MinContactMin
		}
		res.MinContactMin = t
		res.Notes = fmt.Sprintf("Con %.2f mg/L se requieren al menos %.0f min de contacto.", in.DoseMgL, t)
		return res, nil
	}

	dose := math.Ceil(l.Required/in.ContactMin*100) / 100
	res.MinDoseMgL = dose
	res.Notes = fmt.Sprintf("Con %.0f min de contacto se requiere una dosis mínima de %.2f mg/L.", in.ContactMin, dose)
	if dose > MaxDoseMgL {
		res.Notes += " La dosis supera el máximo práctico; ampliar el tanque de contacto."
	}
	return res, nil
}
