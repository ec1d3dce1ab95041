package cascade

import "Potable/internal/calc/stage"

// Removal holds the fractional reductions a stage applies (0.6 = 60 %).
type Removal struct {
	Turbidity      float64 `json:"turbidity"`
	Color          float64 `json:"color"`
	TotalColiforms float64 `json:"total_coliforms"`
	FecalColiforms float64 `json:"fecal_coliforms"`
	Iron           float64 `json:"iron"`
	Alkalinity     float64 `json:"alkalinity"`
	Hardness       float64 `json:"hardness"`
}

// Model is the removal behaviour of one stage. LogCredit is the pathogen
// log-removal the stage contributes, tracked apart from the concentration
// reduction.
type Model struct {
	Removal   Removal `json:"removal"`
	LogCredit float64 `json:"log_credit"`
}

var models = map[stage.ID]Model{
	stage.DynamicRoughing: {
		Removal:   Removal{Turbidity: 0.60, Color: 0.40, TotalColiforms: 0.50, FecalColiforms: 0.50, Iron: 0.30},
		LogCredit: 0.5,
	},
	stage.AscendingRoughing: {
		Removal:   Removal{Turbidity: 0.75, Color: 0.60, TotalColiforms: 0.90, FecalColiforms: 0.90, Iron: 0.50},
		LogCredit: 1.5,
	},
	stage.SlowSand: {
		Removal:   Removal{Turbidity: 0.90, Color: 0.80, TotalColiforms: 0.99, FecalColiforms: 0.99, Iron: 0.60},
		LogCredit: 2.0,
	},
	// chlorination inactivates rather than removes; its credit is judged by CT
	stage.Disinfection: {
		Removal: Removal{TotalColiforms: 0.9999, FecalColiforms: 0.9999},
	},
}

// ModelFor returns the removal model of a stage. Unknown stages remove nothing.
func ModelFor(id stage.ID) (Model, bool) {
	m, ok := models[id]
	return m, ok
}
