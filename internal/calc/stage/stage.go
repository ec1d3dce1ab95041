// Package stage names the treatment stages of a multi-stage filtration train
// and fixes the order in which water passes through them.
package stage

type ID string

const (
	DynamicRoughing   ID = "fgdi"         // filtro grueso dinámico
	AscendingRoughing ID = "fgac"         // filtro grueso ascendente en capas
	SlowSand          ID = "fla"          // filtro lento de arena
	Disinfection      ID = "desinfeccion" // tanque de contacto de cloro
)

// Order is the processing sequence. Removal models assume every stage
// receives the effluent of the one before it in this list.
var Order = [...]ID{DynamicRoughing, AscendingRoughing, SlowSand, Disinfection}

var names = map[ID]string{
	DynamicRoughing:   "Filtro grueso dinámico (FGDi)",
	AscendingRoughing: "Filtro grueso ascendente (FGAC)",
	SlowSand:          "Filtro lento de arena (FLA)",
	Disinfection:      "Desinfección (tanque de contacto)",
}

func (id ID) Valid() bool {
	_, ok := names[id]
	return ok
}

// Name is the display name, or the raw identifier for unknown stages.
func (id ID) Name() string {
	if n, ok := names[id]; ok {
		return n
	}
	return string(id)
}

// Canonical drops unknown and repeated identifiers and returns the rest in
// processing order.
func Canonical(ids []ID) []ID {
	seen := make(map[ID]bool, len(ids))
	for _, id := range ids {
		seen[id] = true
	}
	out := make([]ID, 0, len(Order))
	for _, id := range Order {
		if seen[id] {
			out = append(out, id)
		}
	}
	return out
}
