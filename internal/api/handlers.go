package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/scottidler/obsidian-bookmark/internal/bookmark"
)

// Handler holds API route handlers.
type Handler struct {
	svc *bookmark.Service
}

// NewHandler creates a new Handler.
func NewHandler(svc *bookmark.Service) *Handler {
	return &Handler{svc: svc}
}

// Bookmark handles POST /bookmark. Every pipeline failure is surfaced as a
// single error response carrying a human-readable message.
func (h *Handler) Bookmark(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req bookmark.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if req.URL == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("url is required"))
		return
	}

	slog.Info("bookmark received",
		slog.String("title", req.Title),
		slog.String("url", req.URL))

	if err := h.svc.Process(r.Context(), req); err != nil {
		slog.Error("bookmark failed",
			slog.String("url", req.URL),
			slog.String("title", req.Title),
			slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, successBody())
}

// Health handles GET /health.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
