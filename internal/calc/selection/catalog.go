package selection

// Technology identifiers of the reference catalog.
const (
	TechFIME         = "fime"
	TechConventional = "convencional"
	TechCompact      = "compacta"
	TechMembranes    = "membranas"
	TechOsmosis      = "osmosis"
)

const (
	ScoreFloor   = 5.0
	ScoreCeiling = 100.0
)

type Scores struct {
	Quality    float64 `json:"quality"`
	Cost       float64 `json:"cost"`
	Simplicity float64 `json:"simplicity"`
	Robustness float64 `json:"robustness"`
	Energy     float64 `json:"energy"`
}

// Mean is the unweighted average of the five dimensions.
func (s Scores) Mean() float64 {
	return (s.Quality + s.Cost + s.Simplicity + s.Robustness + s.Energy) / 5
}

func (s Scores) clamp() Scores {
	return Scores{
		Quality:    clamp(s.Quality),
		Cost:       clamp(s.Cost),
		Simplicity: clamp(s.Simplicity),
		Robustness: clamp(s.Robustness),
		Energy:     clamp(s.Energy),
	}
}

func clamp(v float64) float64 {
	if v < ScoreFloor {
		return ScoreFloor
	}
	if v > ScoreCeiling {
		return ScoreCeiling
	}
	return v
}

type Technology struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Scores     Scores   `json:"scores"`
	Mean       float64  `json:"mean"`
	Applicable bool     `json:"applicable"`
	MinFlowLps float64  `json:"min_flow_lps"`
	MaxFlowLps float64  `json:"max_flow_lps"`
	Tags       []string `json:"tags"`
	CapexRange string   `json:"capex_range"`
}

var reference = []Technology{
	{
		ID:         TechFIME,
		Name:       "Filtración en Múltiples Etapas (FiME)",
		Scores:     Scores{Quality: 80, Cost: 75, Simplicity: 85, Robustness: 70, Energy: 95},
		MinFlowLps: 0.5,
		MaxFlowLps: 50,
		Tags:       []string{"sin químicos", "gravedad", "rural"},
		CapexRange: "USD 40.000 - 250.000",
	},
	{
		ID:         TechConventional,
		Name:       "Planta convencional (coagulación, floculación, sedimentación, filtración rápida)",
		Scores:     Scores{Quality: 85, Cost: 60, Simplicity: 50, Robustness: 75, Energy: 65},
		MinFlowLps: 10,
		MaxFlowLps: 1000,
		Tags:       []string{"químicos", "operador calificado", "municipal"},
		CapexRange: "USD 300.000 - 3.000.000",
	},
	{
		ID:         TechCompact,
		Name:       "Planta compacta prefabricada",
		Scores:     Scores{Quality: 80, Cost: 65, Simplicity: 70, Robustness: 60, Energy: 60},
		MinFlowLps: 1,
		MaxFlowLps: 50,
		Tags:       []string{"modular", "químicos", "instalación rápida"},
		CapexRange: "USD 60.000 - 400.000",
	},
	{
		ID:         TechMembranes,
		Name:       "Ultrafiltración por membranas",
		Scores:     Scores{Quality: 92, Cost: 50, Simplicity: 60, Robustness: 65, Energy: 50},
		MinFlowLps: 0.5,
		MaxFlowLps: 100,
		Tags:       []string{"membranas", "energía", "alta calidad"},
		CapexRange: "USD 100.000 - 800.000",
	},
	{
		ID:         TechOsmosis,
		Name:       "Ósmosis inversa",
		Scores:     Scores{Quality: 95, Cost: 35, Simplicity: 40, Robustness: 55, Energy: 25},
		MinFlowLps: 0.1,
		MaxFlowLps: 20,
		Tags:       []string{"desalinización", "membranas", "alto consumo energético"},
		CapexRange: "USD 150.000 - 1.500.000",
	},
}

// Catalog returns a fresh copy of the reference technologies. Callers may
// mutate the result freely.
func Catalog() []Technology {
	out := make([]Technology, len(reference))
	for i, t := range reference {
		t.Tags = append([]string(nil), t.Tags...)
		t.Applicable = true
		t.Mean = t.Scores.Mean()
		out[i] = t
	}
	return out
}
