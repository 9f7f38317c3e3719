package review

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eduolivag5/backmarket-api/internal/web"
)

// Handler exposes the review listing endpoint.
type Handler struct{ repo Repository }

func NewHandler(repo Repository) *Handler { return &Handler{repo: repo} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Get("/reviews", h.list)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.repo.List(r.Context())
	if err != nil {
		web.Fail(w, err)
		return
	}
	web.OK(w, reviews)
}
