package statements

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fiscaladmin/reconcile/internal/pipeline"
	"github.com/fiscaladmin/reconcile/internal/statement"
)

type Handler struct {
	svc          *statement.Service
	orchestrator *pipeline.Orchestrator
}

func NewHandler(svc *statement.Service, orchestrator *pipeline.Orchestrator) *Handler {
	return &Handler{svc: svc, orchestrator: orchestrator}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/{id}", h.get)
	r.Post("/{id}/process", h.process)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, statement.ErrNotFound) {
			http.Error(w, "statement not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(st)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) process(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	summary, err := h.orchestrator.Process(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, statement.ErrNotFound):
			http.Error(w, "statement not found", http.StatusNotFound)
		case errors.Is(err, statement.ErrTransitionDenied):
			http.Error(w, "statement is busy", http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(summary); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
