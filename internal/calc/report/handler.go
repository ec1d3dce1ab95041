package report

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"

	"Potable/internal/calc/design"
	"Potable/internal/calc/memo"
)

type Input struct {
	Project   string            `json:"project"`
	Author    string            `json:"author"`
	Title     string            `json:"title"`
	Notes     string            `json:"notes"`
	Design    *design.Input     `json:"design,omitempty"`
	Memoranda []memo.Memorandum `json:"memoranda,omitempty"`
}

type Handler struct {
	Logger *slog.Logger
}

func NewHandler(logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handler{Logger: logger}
}

// Generate renders the memoranda of the request, running the design first
// when one is attached.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	doc := Document{
		Project:   input.Project,
		Author:    input.Author,
		Title:     input.Title,
		Notes:     input.Notes,
		Memoranda: input.Memoranda,
	}
	if input.Design != nil {
		if err := input.Design.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		res := design.Run(*input.Design)
		doc.Memoranda = append(doc.Memoranda, res.Memoranda...)
		if doc.Notes == "" {
			doc.Notes = res.Selection.Rationale + " " + res.Notes
		}
	}
	if len(doc.Memoranda) == 0 {
		http.Error(w, "Incomplete data", http.StatusUnprocessableEntity)
		return
	}

	var buf bytes.Buffer
	if err := Render(&buf, doc); err != nil {
		h.logger().Error("report generation failed", slog.String("project", doc.Project), slog.Any("error", err))
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
	h.logger().Info("report generated", slog.String("project", doc.Project), slog.Int("memoranda", len(doc.Memoranda)))

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"memoria.pdf\"")
	w.Write(buf.Bytes())
}

func (h *Handler) logger() *slog.Logger {
	if h.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return h.Logger
}
