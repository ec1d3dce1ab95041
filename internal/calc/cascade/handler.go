package cascade

import (
	"encoding/json"
	"net/http"

	"Potable/internal/calc/quality"
	"Potable/internal/calc/stage"
)

type Input struct {
	Raw    quality.Quality `json:"raw" yaml:"raw"`
	Stages []stage.ID      `json:"stages" yaml:"stages"`
}

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if !input.Raw.Valid() {
		http.Error(w, "Invalid water quality", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Evolve(input.Raw, input.Stages))
}
