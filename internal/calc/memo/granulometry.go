package memo

// Layer is one bed of filter media, listed from the top of the filter down.
type Layer struct {
	Name       string  `json:"name"`
	ThicknessM float64 `json:"thickness_m"`
	GrainSize  string  `json:"grain_size"`
}

var granulometry = map[Module][]Layer{
	ModuleDynamicRoughing: {
		{Name: "Grava fina", ThicknessM: 0.20, GrainSize: "3 - 6 mm"},
		{Name: "Grava media", ThicknessM: 0.20, GrainSize: "6 - 13 mm"},
		{Name: "Grava gruesa (soporte)", ThicknessM: 0.20, GrainSize: "13 - 25 mm"},
	},
	ModuleAscendingRoughing: {
		{Name: "Grava fina superior", ThicknessM: 0.15, GrainSize: "1.6 - 3 mm"},
		{Name: "Grava fina", ThicknessM: 0.30, GrainSize: "3 - 6 mm"},
		{Name: "Grava media", ThicknessM: 0.30, GrainSize: "6 - 13 mm"},
		{Name: "Grava gruesa", ThicknessM: 0.20, GrainSize: "13 - 19 mm"},
		{Name: "Soporte", ThicknessM: 0.30, GrainSize: "19 - 25 mm"},
	},
	ModuleSlowSand: {
		{Name: "Arena fina", ThicknessM: 0.80, GrainSize: "d10 0.15 - 0.30 mm, CU < 4"},
		{Name: "Arena gruesa", ThicknessM: 0.05, GrainSize: "1 - 2 mm"},
		{Name: "Grava fina", ThicknessM: 0.05, GrainSize: "2 - 5 mm"},
		{Name: "Grava de soporte", ThicknessM: 0.15, GrainSize: "5 - 25 mm"},
	},
}

// Granulometry returns a copy of the media specification of a module, or
// nil when the module has no filter bed.
func Granulometry(m Module) []Layer {
	layers, ok := granulometry[m]
	if !ok {
		return nil
	}
	return append([]Layer(nil), layers...)
}
