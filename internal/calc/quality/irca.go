package quality

// Risk level names follow the IRCA classification bands.
type RiskLevel string

const (
	RiskNone     RiskLevel = "sin riesgo"
	RiskLow      RiskLevel = "bajo"
	RiskMedium   RiskLevel = "medio"
	RiskHigh     RiskLevel = "alto"
	RiskInviable RiskLevel = "inviable sanitariamente"
)

// parameter is one IRCA term: its weight and the acceptance test for a sample.
type parameter struct {
	name   string
	weight float64
	ok     func(Quality) bool
}

// Maximum acceptable values for drinking water.
const (
	MaxTurbidity  = 2.0
	MaxColor      = 15.0
	MinPH         = 6.5
	MaxPH         = 9.0
	MaxIron       = 0.3
	MaxAlkalinity = 200.0
	MaxHardness   = 300.0
)

var parameters = []parameter{
	{"ph", 1.5, func(q Quality) bool { return q.PH >= MinPH && q.PH <= MaxPH }},
	{"turbidity", 15, func(q Quality) bool { return q.Turbidity <= MaxTurbidity }},
	{"color", 6, func(q Quality) bool { return q.Color <= MaxColor }},
	{"total_coliforms", 15, func(q Quality) bool { return q.TotalColiforms == 0 }},
	{"fecal_coliforms", 25, func(q Quality) bool { return q.FecalColiforms == 0 }},
	{"iron", 1.5, func(q Quality) bool { return q.Iron <= MaxIron }},
	{"alkalinity", 1, func(q Quality) bool { return q.Alkalinity <= MaxAlkalinity }},
	{"hardness", 1, func(q Quality) bool { return q.Hardness <= MaxHardness }},
}

// Risk is the weighted IRCA score for a sample together with the parameters
// that failed their limit.
type Risk struct {
	Index  float64   `json:"index"`
	Level  RiskLevel `json:"level"`
	Failed []string  `json:"failed,omitempty"`
}

// IRCA computes the water-risk index: the weight of failing parameters over
// the total weight of the analysed ones, as a percentage.
func IRCA(q Quality) Risk {
	var total, failed float64
	var names []string
	for _, p := range parameters {
		total += p.weight
		if !p.ok(q) {
			failed += p.weight
			names = append(names, p.name)
		}
	}
	index := Round(failed/total*100, 2)
	return Risk{Index: index, Level: Classify(index), Failed: names}
}

// Classify maps an IRCA index onto its risk band.
func Classify(index float64) RiskLevel {
	switch {
	case index <= 5:
		return RiskNone
	case index <= 14:
		return RiskLow
	case index <= 35:
		return RiskMedium
	case index <= 80:
		return RiskHigh
	default:
		return RiskInviable
	}
}
