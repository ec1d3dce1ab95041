package memo

import (
	"encoding/json"
	"net/http"

	"Potable/internal/calc/cascade"
	"Potable/internal/calc/compliance"
	"Potable/internal/calc/quality"
	"Potable/internal/calc/sizing"
	"Potable/internal/calc/stage"
)

// Request carries the raw inputs of one module memorandum. Stages defaults to
// the module's own stage and everything upstream of it.
type Request struct {
	Module       Module                   `json:"module"`
	Sizing       sizing.Input             `json:"sizing"`
	Raw          quality.Quality          `json:"raw"`
	Stages       []stage.ID               `json:"stages"`
	Disinfection *compliance.Disinfection `json:"disinfection,omitempty"`
	TemperatureC float64                  `json:"temperature_c"`
}

// Compute runs sizing, the quality cascade and the compliance checks for a
// request and builds its memorandum.
func Compute(req Request) Memorandum {
	if _, ok := modules[req.Module]; !ok {
		return Build(Input{Module: req.Module})
	}
	req.Sizing.Stage = stage.ID(req.Module)
	sz, tank := sizing.Calculate(req.Sizing)

	stages := req.Stages
	if len(stages) == 0 {
		stages = upstreamOf(stage.ID(req.Module))
	}
	tr := cascade.Evolve(req.Raw, stages)
	rep := compliance.Evaluate(compliance.Input{
		Influent:      req.Raw,
		Final:         tr.Final,
		CumulativeLog: tr.CumulativeLog,
		Disinfection:  req.Disinfection,
		TemperatureC:  req.TemperatureC,
	})
	return Build(Input{Module: req.Module, Sizing: sz, Tank: tank, Trace: tr, Report: rep})
}

func upstreamOf(id stage.ID) []stage.ID {
	var out []stage.ID
	for _, s := range stage.Order {
		out = append(out, s)
		if s == id {
			break
		}
	}
	return out
}

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if !req.Raw.Valid() {
		http.Error(w, "Invalid water quality", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Compute(req))
}
