package sizing

import (
	"encoding/json"
	"net/http"
)

type Handler struct{}

type Response struct {
	Sizing *Result     `json:"sizing"`
	Tank   *TankResult `json:"tank,omitempty"`
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, tank := Calculate(input)
	if res == nil {
		http.Error(w, "Incomplete data", http.StatusUnprocessableEntity)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Response{Sizing: res, Tank: tank})
}
