package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/scottidler/obsidian-bookmark/internal/bookmark"
)

// NewRouter creates a chi router with the bookmark routes mounted.
func NewRouter(svc *bookmark.Service) chi.Router {
	h := NewHandler(svc)

	r := chi.NewRouter()
	r.Use(CORSMiddleware())

	r.Post("/bookmark", h.Bookmark)
	r.Get("/health", h.Health)

	return r
}
