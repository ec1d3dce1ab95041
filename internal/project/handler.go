// Package project stores plant designs per authenticated user.
package project

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"Potable/internal/auth"
	"Potable/internal/calc/design"
	"Potable/internal/repo"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type Store interface {
	CreateDesign(ctx context.Context, d repo.Design) (repo.Design, error)
	ListDesigns(ctx context.Context, userID int) ([]repo.DesignSummary, error)
	GetDesign(ctx context.Context, userID int, id uuid.UUID) (repo.Design, error)
	DeleteDesign(ctx context.Context, userID int, id uuid.UUID) error
}

type Handler struct {
	Store  Store
	Logger *slog.Logger
}

type SaveRequest struct {
	Name  string       `json:"name"`
	Input design.Input `json:"input"`
}

func NewHandler(store Store, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handler{Store: store, Logger: logger}
}

// Save runs the design and stores both the request and its result.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		http.Error(w, "Name required", http.StatusBadRequest)
		return
	}
	if err := req.Input.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res := design.Run(req.Input)
	input, err := json.Marshal(req.Input)
	if err != nil {
		http.Error(w, "Encoding error", http.StatusInternalServerError)
		return
	}
	result, err := json.Marshal(res)
	if err != nil {
		http.Error(w, "Encoding error", http.StatusInternalServerError)
		return
	}

	saved, err := h.Store.CreateDesign(r.Context(), repo.Design{
		UserID:     userID,
		Name:       req.Name,
		Technology: res.Technology,
		Compliant:  res.Compliance.Compliant,
		Input:      input,
		Result:     result,
	})
	if err != nil {
		h.Logger.Error("save design", "user_id", userID, "error", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	h.Logger.Info("design saved", "user_id", userID, "id", saved.ID, "technology", saved.Technology)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(saved)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	list, err := h.Store.ListDesigns(r.Context(), userID)
	if err != nil {
		h.Logger.Error("list designs", "user_id", userID, "error", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := h.target(w, r)
	if !ok {
		return
	}
	d, err := h.Store.GetDesign(r.Context(), userID, id)
	if errors.Is(err, repo.ErrNotFound) {
		http.Error(w, "Design not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.Logger.Error("get design", "user_id", userID, "id", id, "error", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(d)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := h.target(w, r)
	if !ok {
		return
	}
	err := h.Store.DeleteDesign(r.Context(), userID, id)
	if errors.Is(err, repo.ErrNotFound) {
		http.Error(w, "Design not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.Logger.Error("delete design", "user_id", userID, "id", id, "error", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// target resolves the caller and the {id} route variable, writing the error
// response itself when either is missing.
func (h *Handler) target(w http.ResponseWriter, r *http.Request) (int, uuid.UUID, bool) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return 0, uuid.Nil, false
	}
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return 0, uuid.Nil, false
	}
	return userID, id, true
}
