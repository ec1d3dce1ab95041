package quality

import "math"

// Quality is one water sample. Concentrations are per litre unless stated,
// coliforms are UFC/100 mL.
type Quality struct {
	PH             float64 `json:"ph" yaml:"ph"`
	Turbidity      float64 `json:"turbidity" yaml:"turbidity"`             // UNT
	Color          float64 `json:"color" yaml:"color"`                     // UPC
	TotalColiforms float64 `json:"total_coliforms" yaml:"total_coliforms"` // UFC/100 mL
	FecalColiforms float64 `json:"fecal_coliforms" yaml:"fecal_coliforms"` // UFC/100 mL
	Iron           float64 `json:"iron" yaml:"iron"`                       // mg/L Fe
	Alkalinity     float64 `json:"alkalinity" yaml:"alkalinity"`           // mg/L CaCO3
	Hardness       float64 `json:"hardness" yaml:"hardness"`               // mg/L CaCO3
}

// Valid reports whether every field is a finite, non-negative number.
func (q Quality) Valid() bool {
	for _, v := range q.values() {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (q Quality) values() []float64 {
	return []float64{q.PH, q.Turbidity, q.Color, q.TotalColiforms, q.FecalColiforms, q.Iron, q.Alkalinity, q.Hardness}
}

// Round returns v rounded to the given number of decimals, clamped at zero.
func Round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	r := math.Round(v*p) / p
	if r <= 0 {
		return 0
	}
	return r
}
