package compliance

import (
	"encoding/json"
	"net/http"
)

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Evaluate(input))
}

type ctRequest struct {
	PH           float64 `json:"ph"`
	TemperatureC float64 `json:"temperature_c"`
}

func (h *Handler) CT(w http.ResponseWriter, r *http.Request) {
	var req ctRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(LookupCT(req.PH, req.TemperatureC))
}
