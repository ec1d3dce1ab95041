package importer

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"Potable/internal/calc/cascade"
	"Potable/internal/calc/stage"
)

const MaxUploadSize = 10 << 20 // 10MB

type Handler struct{}

type SampleResult struct {
	Sample
	Trace cascade.Trace `json:"trace"`
}

type ImportResult struct {
	Count   int            `json:"count"`
	Stages  []stage.ID     `json:"stages"`
	Results []SampleResult `json:"results"`
	Errors  []RowError     `json:"errors,omitempty"`
}

// Quality takes a multipart "file" with raw samples and an optional "stages"
// form value (comma separated) and returns the cascade of every sample.
func (h *Handler) Quality(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	samples, bad, err := ReadSamples(file)
	if errors.Is(err, ErrEmptySheet) {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}

	stages := parseStages(r.FormValue("stages"))
	out := ImportResult{Stages: stages, Results: make([]SampleResult, 0, len(samples)), Errors: bad}
	for _, s := range samples {
		out.Results = append(out.Results, SampleResult{Sample: s, Trace: cascade.Evolve(s.Quality, stages)})
	}
	out.Count = len(out.Results)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

// parseStages defaults to the whole train when nothing is given.
func parseStages(v string) []stage.ID {
	if strings.TrimSpace(v) == "" {
		return stage.Canonical(stage.Order[:])
	}
	var ids []stage.ID
	for _, p := range strings.Split(v, ",") {
		ids = append(ids, stage.ID(strings.TrimSpace(p)))
	}
	return stage.Canonical(ids)
}
